package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturepath/venturepath-backend/internal/repos/testutil"
	"github.com/venturepath/venturepath-backend/internal/types"
)

func seedReminder(t *testing.T, d *deps, channel string, scheduledFor time.Time) *types.Reminder {
	t.Helper()
	reminder := &types.Reminder{
		ID:           uuid.New(),
		UserID:       uuid.New(),
		ReminderType: types.ReminderTypeCustom,
		Message:      "Review your plan",
		ScheduledFor: scheduledFor,
		Channel:      channel,
		Status:       types.ReminderStatusPending,
	}
	_, err := d.reminderRepo.Create(context.Background(), nil, []*types.Reminder{reminder})
	require.NoError(t, err)
	return reminder
}

func TestSweepOnceMarksDueInAppRemindersSent(t *testing.T) {
	d := newDeps(t)
	ctx := context.Background()
	now := time.Now().UTC()

	due := seedReminder(t, d, types.ReminderChannelInApp, now.Add(-time.Hour))
	future := seedReminder(t, d, types.ReminderChannelInApp, now.Add(24*time.Hour))
	email := seedReminder(t, d, types.ReminderChannelEmail, now.Add(-time.Hour))

	svc := NewReminderService(testutil.Logger(t), d.reminderRepo, "")
	sent, err := svc.SweepOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	// The future and email reminders remain pending.
	pending, err := d.reminderRepo.GetDuePending(ctx, nil, now.AddDate(0, 0, 2))
	require.NoError(t, err)
	require.Len(t, pending, 2)
	ids := []uuid.UUID{pending[0].ID, pending[1].ID}
	assert.Contains(t, ids, future.ID)
	assert.Contains(t, ids, email.ID)
	assert.NotContains(t, ids, due.ID)
}

func TestSweepOnceIdempotent(t *testing.T) {
	d := newDeps(t)
	ctx := context.Background()
	seedReminder(t, d, types.ReminderChannelInApp, time.Now().UTC().Add(-time.Minute))

	svc := NewReminderService(testutil.Logger(t), d.reminderRepo, "")

	sent, err := svc.SweepOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	sent, err = svc.SweepOnce(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, sent)
}
