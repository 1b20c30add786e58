package services

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/venturepath/venturepath-backend/internal/apierr"
	"github.com/venturepath/venturepath-backend/internal/repos/testutil"
	"github.com/venturepath/venturepath-backend/internal/types"
)

func newPlanService(t *testing.T, d *deps) PlanService {
	t.Helper()
	return NewPlanService(testutil.Logger(t), d.planRepo, d.progressRepo, d.refinementRepo, d.milestoneRepo, d.checkInRepo, d.reminderRepo)
}

func TestPlanCreateAndGet(t *testing.T) {
	d := newDeps(t)
	svc := newPlanService(t, d)
	userID := uuid.New()

	title := "My venture"
	plan, err := svc.Create(context.Background(), userID, types.PlanTypeGTM, &title)
	require.NoError(t, err)
	assert.Equal(t, types.PlanStatusDraft, plan.Status)
	assert.Equal(t, types.PlanTypeGTM, plan.PlanType)

	found, err := svc.Get(context.Background(), userID, plan.ID)
	require.NoError(t, err)
	require.NotNil(t, found.Title)
	assert.Equal(t, "My venture", *found.Title)

	_, err = svc.Get(context.Background(), uuid.New(), plan.ID)
	assert.ErrorIs(t, err, apierr.ErrNotFound)
}

func TestPlanCreateRejectsUnknownType(t *testing.T) {
	d := newDeps(t)
	svc := newPlanService(t, d)

	_, err := svc.Create(context.Background(), uuid.New(), "pitch_deck", nil)
	assert.ErrorIs(t, err, apierr.ErrValidation)
}

func TestPlanRename(t *testing.T) {
	d := newDeps(t)
	svc := newPlanService(t, d)
	userID := uuid.New()
	plan := d.seedPlan(t, userID, types.PlanTypeBusiness, types.PlanStatusDraft, nil)

	require.NoError(t, svc.Rename(context.Background(), userID, plan.ID, "Renamed"))

	stored, err := svc.Get(context.Background(), userID, plan.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.Title)
	assert.Equal(t, "Renamed", *stored.Title)

	err = svc.Rename(context.Background(), uuid.New(), plan.ID, "Hijacked")
	assert.ErrorIs(t, err, apierr.ErrNotFound)
}

func TestPlanUpdateSection(t *testing.T) {
	d := newDeps(t)
	svc := newPlanService(t, d)
	userID := uuid.New()

	_, raw := fullSectionContent(t, types.PlanTypeBusiness)
	plan := d.seedPlan(t, userID, types.PlanTypeBusiness, types.PlanStatusReview, func(p *types.Plan) {
		p.GeneratedContent = datatypes.JSON(raw)
	})

	require.NoError(t, svc.UpdateSection(context.Background(), userID, plan.ID, "executive_summary", "Rewritten by hand."))

	stored, err := svc.Get(context.Background(), userID, plan.ID)
	require.NoError(t, err)
	sections := map[string]string{}
	require.NoError(t, json.Unmarshal(stored.GeneratedContent, &sections))
	assert.Equal(t, "Rewritten by hand.", sections["executive_summary"])
	assert.Len(t, sections, 12)
}

func TestPlanUpdateSectionGuards(t *testing.T) {
	d := newDeps(t)
	svc := newPlanService(t, d)
	userID := uuid.New()

	empty := d.seedPlan(t, userID, types.PlanTypeBusiness, types.PlanStatusDraft, nil)
	err := svc.UpdateSection(context.Background(), userID, empty.ID, "executive_summary", "text")
	assert.ErrorIs(t, err, apierr.ErrNoContent)

	err = svc.UpdateSection(context.Background(), userID, empty.ID, "", "text")
	assert.ErrorIs(t, err, apierr.ErrValidation)

	_, raw := fullSectionContent(t, types.PlanTypeBusiness)
	finalizedAt := time.Now().UTC()
	finalized := d.seedPlan(t, userID, types.PlanTypeBusiness, types.PlanStatusFinalized, func(p *types.Plan) {
		p.GeneratedContent = datatypes.JSON(raw)
		p.FinalizedAt = &finalizedAt
	})
	err = svc.UpdateSection(context.Background(), userID, finalized.ID, "executive_summary", "text")
	assert.ErrorIs(t, err, apierr.ErrAlreadyFinalized)
}

func TestPlanDeleteCascades(t *testing.T) {
	d := newDeps(t)
	svc := newPlanService(t, d)
	ctx := context.Background()
	userID := uuid.New()

	_, raw := fullSectionContent(t, types.PlanTypeBusiness)
	plan := d.seedPlan(t, userID, types.PlanTypeBusiness, types.PlanStatusFinalized, func(p *types.Plan) {
		p.GeneratedContent = datatypes.JSON(raw)
	})

	milestone := &types.Milestone{
		ID: uuid.New(), PlanID: plan.ID, UserID: userID,
		Title: "Ship", Category: types.MilestoneCategoryProduct,
		Priority: types.MilestonePriorityHigh, Status: types.MilestoneStatusNotStarted,
	}
	_, err := d.milestoneRepo.Create(ctx, nil, []*types.Milestone{milestone})
	require.NoError(t, err)

	checkIn := &types.CheckIn{
		ID: uuid.New(), UserID: userID, PlanID: &plan.ID,
		ScheduledFor: time.Now().UTC().AddDate(0, 0, 3),
		Status:       types.CheckInStatusScheduled,
	}
	_, err = d.checkInRepo.Create(ctx, nil, []*types.CheckIn{checkIn})
	require.NoError(t, err)

	_, err = d.refinementRepo.Create(ctx, nil, []*types.Refinement{{
		ID: uuid.New(), PlanID: plan.ID,
		SectionKey: "executive_summary", UserFeedback: "Make it tighter",
		Status: types.RefinementStatusCompleted,
	}})
	require.NoError(t, err)

	_, err = d.progressRepo.Upsert(ctx, nil, &types.QuestionnaireProgress{
		ID: uuid.New(), PlanID: plan.ID, CurrentStep: 2, TotalSteps: 6,
		StepData: datatypes.JSON([]byte("{}")), LastActiveAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	_, err = d.reminderRepo.Create(ctx, nil, []*types.Reminder{
		{
			ID: uuid.New(), UserID: userID, MilestoneID: &milestone.ID,
			ReminderType: types.ReminderTypeMilestoneDue, Message: "Due soon",
			ScheduledFor: time.Now().UTC(), Channel: types.ReminderChannelInApp,
			Status: types.ReminderStatusPending,
		},
		{
			ID: uuid.New(), UserID: userID, CheckInID: &checkIn.ID,
			ReminderType: types.ReminderTypeCheckInDue, Message: "Check in",
			ScheduledFor: time.Now().UTC(), Channel: types.ReminderChannelInApp,
			Status: types.ReminderStatusPending,
		},
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, userID, plan.ID))

	_, err = svc.Get(ctx, userID, plan.ID)
	assert.ErrorIs(t, err, apierr.ErrNotFound)

	milestones, err := d.milestoneRepo.GetByPlanID(ctx, nil, plan.ID)
	require.NoError(t, err)
	assert.Empty(t, milestones)

	checkIns, err := d.checkInRepo.GetByPlanIDs(ctx, nil, []uuid.UUID{plan.ID})
	require.NoError(t, err)
	assert.Empty(t, checkIns)

	refinements, err := d.refinementRepo.GetByPlanID(ctx, nil, plan.ID)
	require.NoError(t, err)
	assert.Empty(t, refinements)

	progress, err := d.progressRepo.GetByPlanID(ctx, nil, plan.ID)
	require.NoError(t, err)
	assert.Nil(t, progress)

	reminders, err := d.reminderRepo.GetDuePending(ctx, nil, time.Now().UTC().AddDate(0, 0, 30))
	require.NoError(t, err)
	assert.Empty(t, reminders)
}

func TestPlanDeleteScopesToOwner(t *testing.T) {
	d := newDeps(t)
	svc := newPlanService(t, d)
	userID := uuid.New()
	plan := d.seedPlan(t, userID, types.PlanTypeBusiness, types.PlanStatusDraft, nil)

	err := svc.Delete(context.Background(), uuid.New(), plan.ID)
	assert.ErrorIs(t, err, apierr.ErrNotFound)

	_, err = svc.Get(context.Background(), userID, plan.ID)
	assert.NoError(t, err)
}
