package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturepath/venturepath-backend/internal/apierr"
	"github.com/venturepath/venturepath-backend/internal/repos/testutil"
	"github.com/venturepath/venturepath-backend/internal/types"
)

func newMilestoneService(t *testing.T, d *deps) MilestoneService {
	t.Helper()
	return NewMilestoneService(testutil.Logger(t), d.planRepo, d.milestoneRepo, d.reminderRepo)
}

func seedMilestone(t *testing.T, d *deps, userID, planID uuid.UUID, status string) *types.Milestone {
	t.Helper()
	milestone := &types.Milestone{
		ID:       uuid.New(),
		PlanID:   planID,
		UserID:   userID,
		Title:    "Reach 50 users",
		Category: types.MilestoneCategoryMarketing,
		Priority: types.MilestonePriorityMedium,
		Status:   status,
	}
	if status == types.MilestoneStatusCompleted {
		now := time.Now().UTC()
		milestone.CompletedAt = &now
	}
	_, err := d.milestoneRepo.Create(context.Background(), nil, []*types.Milestone{milestone})
	require.NoError(t, err)
	return milestone
}

func TestMilestoneUpdateStampsCompletedAt(t *testing.T) {
	d := newDeps(t)
	svc := newMilestoneService(t, d)
	userID := uuid.New()
	plan := d.seedPlan(t, userID, types.PlanTypeBusiness, types.PlanStatusFinalized, nil)
	milestone := seedMilestone(t, d, userID, plan.ID, types.MilestoneStatusInProgress)

	status := types.MilestoneStatusCompleted
	updated, err := svc.Update(context.Background(), userID, milestone.ID, UpdateMilestoneInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, types.MilestoneStatusCompleted, updated.Status)
	assert.NotNil(t, updated.CompletedAt)

	// Reopening clears the stamp.
	status = types.MilestoneStatusInProgress
	updated, err = svc.Update(context.Background(), userID, milestone.ID, UpdateMilestoneInput{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, types.MilestoneStatusInProgress, updated.Status)
	assert.Nil(t, updated.CompletedAt)
}

func TestMilestoneUpdateFields(t *testing.T) {
	d := newDeps(t)
	svc := newMilestoneService(t, d)
	userID := uuid.New()
	plan := d.seedPlan(t, userID, types.PlanTypeBusiness, types.PlanStatusFinalized, nil)
	milestone := seedMilestone(t, d, userID, plan.ID, types.MilestoneStatusNotStarted)

	title := "Reach 100 users"
	priority := types.MilestonePriorityHigh
	target := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)
	notes := "stretch goal"
	updated, err := svc.Update(context.Background(), userID, milestone.ID, UpdateMilestoneInput{
		Title:           &title,
		Priority:        &priority,
		TargetDate:      &target,
		CompletionNotes: &notes,
	})
	require.NoError(t, err)
	assert.Equal(t, "Reach 100 users", updated.Title)
	assert.Equal(t, types.MilestonePriorityHigh, updated.Priority)
	require.NotNil(t, updated.TargetDate)
	assert.Equal(t, target, updated.TargetDate.UTC())
}

func TestMilestoneUpdateValidation(t *testing.T) {
	d := newDeps(t)
	svc := newMilestoneService(t, d)
	userID := uuid.New()
	plan := d.seedPlan(t, userID, types.PlanTypeBusiness, types.PlanStatusFinalized, nil)
	milestone := seedMilestone(t, d, userID, plan.ID, types.MilestoneStatusNotStarted)

	badStatus := "done"
	_, err := svc.Update(context.Background(), userID, milestone.ID, UpdateMilestoneInput{Status: &badStatus})
	assert.ErrorIs(t, err, apierr.ErrValidation)

	badPriority := 4
	_, err = svc.Update(context.Background(), userID, milestone.ID, UpdateMilestoneInput{Priority: &badPriority})
	assert.ErrorIs(t, err, apierr.ErrValidation)

	_, err = svc.Update(context.Background(), uuid.New(), milestone.ID, UpdateMilestoneInput{Title: &milestone.Title})
	assert.ErrorIs(t, err, apierr.ErrNotFound)
}

func TestMilestoneListByPlanChecksOwnership(t *testing.T) {
	d := newDeps(t)
	svc := newMilestoneService(t, d)
	userID := uuid.New()
	plan := d.seedPlan(t, userID, types.PlanTypeBusiness, types.PlanStatusFinalized, nil)
	seedMilestone(t, d, userID, plan.ID, types.MilestoneStatusNotStarted)

	listed, err := svc.ListByPlan(context.Background(), userID, plan.ID)
	require.NoError(t, err)
	assert.Len(t, listed, 1)

	_, err = svc.ListByPlan(context.Background(), uuid.New(), plan.ID)
	assert.ErrorIs(t, err, apierr.ErrNotFound)
}

func TestMilestoneDeleteRemovesReminders(t *testing.T) {
	d := newDeps(t)
	svc := newMilestoneService(t, d)
	ctx := context.Background()
	userID := uuid.New()
	plan := d.seedPlan(t, userID, types.PlanTypeBusiness, types.PlanStatusFinalized, nil)
	milestone := seedMilestone(t, d, userID, plan.ID, types.MilestoneStatusNotStarted)

	_, err := d.reminderRepo.Create(ctx, nil, []*types.Reminder{{
		ID: uuid.New(), UserID: userID, MilestoneID: &milestone.ID,
		ReminderType: types.ReminderTypeMilestoneDue, Message: "Due soon",
		ScheduledFor: time.Now().UTC(), Channel: types.ReminderChannelInApp,
		Status: types.ReminderStatusPending,
	}})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, userID, milestone.ID))

	stored, err := d.milestoneRepo.GetByIDForUser(ctx, nil, milestone.ID, userID)
	require.NoError(t, err)
	assert.Nil(t, stored)

	reminders, err := d.reminderRepo.GetDuePending(ctx, nil, time.Now().UTC().AddDate(0, 0, 1))
	require.NoError(t, err)
	assert.Empty(t, reminders)
}
