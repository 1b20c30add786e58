package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/venturepath/venturepath-backend/internal/apierr"
	"github.com/venturepath/venturepath-backend/internal/repos/testutil"
	"github.com/venturepath/venturepath-backend/internal/types"
)

func seedCheckIn(t *testing.T, d *deps, userID uuid.UUID, planID *uuid.UUID, status string) *types.CheckIn {
	t.Helper()
	checkIn := &types.CheckIn{
		ID:           uuid.New(),
		UserID:       userID,
		PlanID:       planID,
		ScheduledFor: time.Now().UTC().AddDate(0, 0, -1),
		Status:       status,
	}
	_, err := d.checkInRepo.Create(context.Background(), nil, []*types.CheckIn{checkIn})
	require.NoError(t, err)
	return checkIn
}

func validCompleteInput() CompleteCheckInInput {
	return CompleteCheckInInput{
		Wins:               []string{"Signed first paying customer"},
		Challenges:         []string{"Onboarding took too long"},
		Blockers:           []string{},
		NextWeekPriorities: []string{"Automate onboarding"},
		MoodScore:          4,
	}
}

func TestCompleteCheckInStoresInsights(t *testing.T) {
	d := newDeps(t)
	userID := uuid.New()
	checkIn := seedCheckIn(t, d, userID, nil, types.CheckInStatusScheduled)

	ai := (&fakeAI{}).respond(`{
		"encouragement": "Your first customer is a huge step.",
		"suggestions": ["Write down what worked in the sales call"],
		"potential_risks": ["Onboarding friction may slow the next deals"],
		"celebration_worthy": true
	}`)
	svc := NewCheckInService(testutil.Logger(t), d.checkInRepo, d.milestoneRepo, ai)

	completed, err := svc.Complete(context.Background(), userID, checkIn.ID, validCompleteInput())
	require.NoError(t, err)
	assert.Equal(t, types.CheckInStatusCompleted, completed.Status)
	require.NotNil(t, completed.CompletedAt)
	require.NotNil(t, completed.MoodScore)
	assert.Equal(t, 4, *completed.MoodScore)
	assert.Contains(t, string(completed.AIInsights), "huge step")
	assert.Equal(t, []string{"Signed first paying customer"}, []string(completed.Wins))
}

func TestCompleteCheckInFallsBackWhenModelFails(t *testing.T) {
	d := newDeps(t)
	userID := uuid.New()
	checkIn := seedCheckIn(t, d, userID, nil, types.CheckInStatusScheduled)

	ai := (&fakeAI{}).fail(errors.New("timeout"))
	svc := NewCheckInService(testutil.Logger(t), d.checkInRepo, d.milestoneRepo, ai)

	completed, err := svc.Complete(context.Background(), userID, checkIn.ID, validCompleteInput())
	require.NoError(t, err)
	assert.Contains(t, string(completed.AIInsights), "Consistent reflection is key to growth")
	assert.Contains(t, string(completed.AIInsights), "Celebrate small wins")
}

func TestCompleteCheckInValidation(t *testing.T) {
	d := newDeps(t)
	userID := uuid.New()
	svc := NewCheckInService(testutil.Logger(t), d.checkInRepo, d.milestoneRepo, &fakeAI{})

	checkIn := seedCheckIn(t, d, userID, nil, types.CheckInStatusScheduled)

	in := validCompleteInput()
	in.Wins = []string{"   ", ""}
	_, err := svc.Complete(context.Background(), userID, checkIn.ID, in)
	assert.ErrorIs(t, err, apierr.ErrValidation)

	in = validCompleteInput()
	in.MoodScore = 6
	_, err = svc.Complete(context.Background(), userID, checkIn.ID, in)
	assert.ErrorIs(t, err, apierr.ErrValidation)

	in = validCompleteInput()
	in.MoodScore = 0
	_, err = svc.Complete(context.Background(), userID, checkIn.ID, in)
	assert.ErrorIs(t, err, apierr.ErrValidation)
}

func TestCompleteCheckInRejectsAlreadyCompleted(t *testing.T) {
	d := newDeps(t)
	userID := uuid.New()
	checkIn := seedCheckIn(t, d, userID, nil, types.CheckInStatusCompleted)

	svc := NewCheckInService(testutil.Logger(t), d.checkInRepo, d.milestoneRepo, &fakeAI{})
	_, err := svc.Complete(context.Background(), userID, checkIn.ID, validCompleteInput())
	assert.ErrorIs(t, err, apierr.ErrValidation)
}

func TestCompleteCheckInMarksReferencedMilestones(t *testing.T) {
	d := newDeps(t)
	userID := uuid.New()
	plan := d.seedPlan(t, userID, types.PlanTypeBusiness, types.PlanStatusFinalized, nil)
	checkIn := seedCheckIn(t, d, userID, &plan.ID, types.CheckInStatusScheduled)

	milestone := &types.Milestone{
		ID:       uuid.New(),
		PlanID:   plan.ID,
		UserID:   userID,
		Title:    "Ship beta",
		Category: types.MilestoneCategoryProduct,
		Priority: types.MilestonePriorityHigh,
		Status:   types.MilestoneStatusInProgress,
	}
	_, err := d.milestoneRepo.Create(context.Background(), nil, []*types.Milestone{milestone})
	require.NoError(t, err)

	ai := (&fakeAI{}).respond(`{"encouragement": "Nice", "suggestions": [], "potential_risks": [], "celebration_worthy": true}`)
	svc := NewCheckInService(testutil.Logger(t), d.checkInRepo, d.milestoneRepo, ai)

	in := validCompleteInput()
	in.CompletedMilestoneIDs = []uuid.UUID{milestone.ID}
	_, err = svc.Complete(context.Background(), userID, checkIn.ID, in)
	require.NoError(t, err)

	stored, err := d.milestoneRepo.GetByIDForUser(context.Background(), nil, milestone.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, types.MilestoneStatusCompleted, stored.Status)
	assert.NotNil(t, stored.CompletedAt)
}

func TestCheckInGetScopesToUser(t *testing.T) {
	d := newDeps(t)
	owner := uuid.New()
	checkIn := seedCheckIn(t, d, owner, nil, types.CheckInStatusScheduled)

	svc := NewCheckInService(testutil.Logger(t), d.checkInRepo, d.milestoneRepo, &fakeAI{})
	_, err := svc.Get(context.Background(), uuid.New(), checkIn.ID)
	assert.ErrorIs(t, err, apierr.ErrNotFound)

	found, err := svc.Get(context.Background(), owner, checkIn.ID)
	require.NoError(t, err)
	assert.Equal(t, checkIn.ID, found.ID)
}

func TestInsightsParsesFencedPayload(t *testing.T) {
	d := newDeps(t)
	ai := (&fakeAI{}).respond("```json\n{\"encouragement\": \"Well done\", \"suggestions\": [\"Keep going\"], \"potential_risks\": [], \"celebration_worthy\": false}\n```")
	svc := NewCheckInService(testutil.Logger(t), d.checkInRepo, d.milestoneRepo, ai)

	insights := svc.Insights(context.Background(), []string{"win"}, nil, nil, nil, 3)
	assert.Equal(t, "Well done", insights.Encouragement)
	assert.Equal(t, []string{"Keep going"}, insights.Suggestions)
}

func TestInsightsFallsBackOnGarbage(t *testing.T) {
	d := newDeps(t)
	ai := (&fakeAI{}).respond("not even close to json")
	svc := NewCheckInService(testutil.Logger(t), d.checkInRepo, d.milestoneRepo, ai)

	insights := svc.Insights(context.Background(), []string{"win"}, nil, nil, nil, 3)
	assert.Equal(t, fallbackInsights.Encouragement, insights.Encouragement)
	assert.False(t, insights.CelebrationWorthy)
}

func TestAnalyzeJournal(t *testing.T) {
	d := newDeps(t)
	ai := (&fakeAI{}).respond(`{
		"extractedWins": ["Closed a deal"],
		"extractedChallenges": ["Ran out of runway planning time"],
		"suggestedPriorities": ["Fundraising prep"],
		"suggestedMilestones": [{"title": "Open a seed round", "description": "Start investor outreach"}]
	}`)
	svc := NewCheckInService(testutil.Logger(t), d.checkInRepo, d.milestoneRepo, ai)

	analysis, err := svc.AnalyzeJournal(context.Background(), "This week we closed a deal but...")
	require.NoError(t, err)
	assert.Equal(t, []string{"Closed a deal"}, analysis.ExtractedWins)
	require.Len(t, analysis.SuggestedMilestones, 1)
	assert.Equal(t, "Open a seed round", analysis.SuggestedMilestones[0].Title)
}

func TestAnalyzeJournalErrors(t *testing.T) {
	d := newDeps(t)
	svc := NewCheckInService(testutil.Logger(t), d.checkInRepo, d.milestoneRepo, (&fakeAI{}).fail(errors.New("down")))

	_, err := svc.AnalyzeJournal(context.Background(), "  ")
	assert.ErrorIs(t, err, apierr.ErrValidation)

	_, err = svc.AnalyzeJournal(context.Background(), "some journal text")
	assert.Error(t, err)

	svc = NewCheckInService(testutil.Logger(t), d.checkInRepo, d.milestoneRepo, (&fakeAI{}).respond("no json here"))
	_, err = svc.AnalyzeJournal(context.Background(), "some journal text")
	assert.ErrorIs(t, err, apierr.ErrGenerationParse)
}
