package services

import (
	"context"
	"errors"
	"fmt"
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

func newFinalizationService(t *testing.T, d *deps, ai *fakeAI, now time.Time) *finalizationService {
	t.Helper()
	svc := NewFinalizationService(testutil.Logger(t), d.planRepo, d.milestoneRepo, d.checkInRepo, d.reminderRepo, ai).(*finalizationService)
	svc.now = func() time.Time { return now }
	return svc
}

func seedReviewPlan(t *testing.T, d *deps, userID uuid.UUID) *types.Plan {
	t.Helper()
	_, raw := fullSectionContent(t, types.PlanTypeBusiness)
	return d.seedPlan(t, userID, types.PlanTypeBusiness, types.PlanStatusReview, func(p *types.Plan) {
		p.GeneratedContent = datatypes.JSON(raw)
	})
}

func TestFinalizeFreezesContentAndSchedulesCheckIn(t *testing.T) {
	d := newDeps(t)
	userID := uuid.New()
	plan := seedReviewPlan(t, d, userID)

	now := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC) // a Wednesday
	future := now.AddDate(0, 0, 45).Format("2006-01-02")
	ai := (&fakeAI{}).respond(fmt.Sprintf(
		`[{"title": "Launch MVP", "description": "Ship it", "target_date": "%s", "category": "product", "priority": 1}]`, future))

	svc := newFinalizationService(t, d, ai, now)
	result, err := svc.Finalize(context.Background(), userID, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.MilestonesCreated)

	stored, err := d.planRepo.GetByIDForUser(context.Background(), nil, plan.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, types.PlanStatusFinalized, stored.Status)
	require.NotNil(t, stored.FinalizedAt)
	assert.JSONEq(t, string(stored.GeneratedContent), string(stored.FinalizedContent))

	checkIns, err := d.checkInRepo.GetByPlanIDs(context.Background(), nil, []uuid.UUID{plan.ID})
	require.NoError(t, err)
	require.Len(t, checkIns, 1)
	assert.Equal(t, types.CheckInStatusScheduled, checkIns[0].Status)
	// Wednesday the 4th -> Sunday the 8th at 10:00.
	assert.Equal(t, time.Date(2026, 3, 8, 10, 0, 0, 0, time.UTC), checkIns[0].ScheduledFor.UTC())

	reminders, err := d.reminderRepo.GetDuePending(context.Background(), nil, now.AddDate(0, 0, 14))
	require.NoError(t, err)
	require.Len(t, reminders, 1)
	assert.Equal(t, types.ReminderTypeCheckInDue, reminders[0].ReminderType)
	assert.Equal(t, checkIns[0].ID, *reminders[0].CheckInID)
}

func TestFinalizeRejectsDoubleInvocation(t *testing.T) {
	d := newDeps(t)
	userID := uuid.New()
	plan := seedReviewPlan(t, d, userID)

	now := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
	ai := (&fakeAI{}).respond(`[]`).respond(`[]`)
	svc := newFinalizationService(t, d, ai, now)

	_, err := svc.Finalize(context.Background(), userID, plan.ID)
	require.NoError(t, err)

	_, err = svc.Finalize(context.Background(), userID, plan.ID)
	assert.ErrorIs(t, err, apierr.ErrAlreadyFinalized)

	checkIns, err := d.checkInRepo.GetByPlanIDs(context.Background(), nil, []uuid.UUID{plan.ID})
	require.NoError(t, err)
	assert.Len(t, checkIns, 1)

	milestones, err := d.milestoneRepo.GetByPlanID(context.Background(), nil, plan.ID)
	require.NoError(t, err)
	assert.Empty(t, milestones)
}

func TestFinalizeRequiresContent(t *testing.T) {
	d := newDeps(t)
	userID := uuid.New()
	plan := d.seedPlan(t, userID, types.PlanTypeBusiness, types.PlanStatusDraft, nil)

	svc := newFinalizationService(t, d, &fakeAI{}, time.Now())
	_, err := svc.Finalize(context.Background(), userID, plan.ID)
	assert.ErrorIs(t, err, apierr.ErrNoContent)
}

func TestFinalizeSurvivesExtractionFailure(t *testing.T) {
	d := newDeps(t)
	userID := uuid.New()
	plan := seedReviewPlan(t, d, userID)

	ai := (&fakeAI{}).fail(errors.New("model offline"))
	svc := newFinalizationService(t, d, ai, time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC))

	result, err := svc.Finalize(context.Background(), userID, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, result.MilestonesCreated)

	checkIns, err := d.checkInRepo.GetByPlanIDs(context.Background(), nil, []uuid.UUID{plan.ID})
	require.NoError(t, err)
	assert.Len(t, checkIns, 1)
}

func TestFinalizeAcceptsWrappedMilestoneObject(t *testing.T) {
	d := newDeps(t)
	userID := uuid.New()
	plan := seedReviewPlan(t, d, userID)

	now := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
	future := now.AddDate(0, 0, 20).Format("2006-01-02")
	ai := (&fakeAI{}).respond(fmt.Sprintf(
		`{"milestones": [{"title": "Reach 100 customers", "target_date": "%s", "category": "revenue", "priority": 2}]}`, future))

	svc := newFinalizationService(t, d, ai, now)
	result, err := svc.Finalize(context.Background(), userID, plan.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, result.MilestonesCreated)
}

func TestRepairMilestoneDates(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	plan := &types.Plan{ID: uuid.New(), UserID: uuid.New()}

	// Unparseable date at index 2 gets a synthetic date 90 days out.
	m := repairMilestone(extractedMilestone{Title: "x", TargetDate: "sometime soon"}, 2, now, plan)
	assert.Equal(t, now.AddDate(0, 0, 90), *m.TargetDate)

	// Past date at index 0 is reassigned 7 days out.
	m = repairMilestone(extractedMilestone{Title: "x", TargetDate: "2020-01-01"}, 0, now, plan)
	assert.Equal(t, now.AddDate(0, 0, 7), *m.TargetDate)

	// Past date at index 3 lands at 7 + 14*3 = 49 days out.
	m = repairMilestone(extractedMilestone{Title: "x", TargetDate: "2020-01-01"}, 3, now, plan)
	assert.Equal(t, now.AddDate(0, 0, 49), *m.TargetDate)

	// A valid future date passes through untouched.
	m = repairMilestone(extractedMilestone{Title: "x", TargetDate: "2026-06-01"}, 0, now, plan)
	assert.Equal(t, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC), *m.TargetDate)
}

func TestRepairMilestoneCoercions(t *testing.T) {
	now := time.Date(2026, 3, 4, 12, 0, 0, 0, time.UTC)
	plan := &types.Plan{ID: uuid.New(), UserID: uuid.New()}

	m := repairMilestone(extractedMilestone{Category: "growth", Priority: float64(7)}, 0, now, plan)
	assert.Equal(t, types.MilestoneCategoryOther, m.Category)
	assert.Equal(t, types.MilestonePriorityMedium, m.Priority)
	assert.Equal(t, "Milestone 1", m.Title)
	assert.Equal(t, "", m.Description)
	assert.Equal(t, types.MilestoneStatusNotStarted, m.Status)

	m = repairMilestone(extractedMilestone{Title: "t", Category: "hiring", Priority: "3"}, 4, now, plan)
	assert.Equal(t, types.MilestoneCategoryHiring, m.Category)
	assert.Equal(t, 3, m.Priority)

	m = repairMilestone(extractedMilestone{Title: "t", Priority: nil}, 0, now, plan)
	assert.Equal(t, types.MilestonePriorityMedium, m.Priority)
}

func TestNextSunday(t *testing.T) {
	loc := time.UTC

	// Wednesday -> upcoming Sunday.
	wednesday := time.Date(2026, 3, 4, 23, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 3, 8, 10, 0, 0, 0, loc), nextSunday(wednesday))

	// Sunday -> a full week out, never same-day.
	sunday := time.Date(2026, 3, 8, 9, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 3, 15, 10, 0, 0, 0, loc), nextSunday(sunday))

	// Saturday -> next day.
	saturday := time.Date(2026, 3, 7, 9, 0, 0, 0, loc)
	assert.Equal(t, time.Date(2026, 3, 8, 10, 0, 0, 0, loc), nextSunday(saturday))
}

func TestParseExtractedMilestonesShapes(t *testing.T) {
	list, err := parseExtractedMilestones(`[{"title": "a"}]`)
	require.NoError(t, err)
	require.Len(t, list, 1)

	list, err = parseExtractedMilestones("Here you go:\n```json\n{\"milestones\": [{\"title\": \"b\"}]}\n```")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "b", list[0].Title)

	_, err = parseExtractedMilestones(`{"unexpected": true}`)
	assert.Error(t, err)
}
