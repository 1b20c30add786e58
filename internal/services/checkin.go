package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/venturepath/venturepath-backend/internal/apierr"
	"github.com/venturepath/venturepath-backend/internal/clients/anthropic"
	"github.com/venturepath/venturepath-backend/internal/jsonrepair"
	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/prompts"
	"github.com/venturepath/venturepath-backend/internal/repos"
	"github.com/venturepath/venturepath-backend/internal/types"
)

const (
	insightsMaxTokens   = 500
	insightsTemperature = 0.7

	journalMaxTokens   = 1500
	journalTemperature = 0.5
)

// fallbackInsights is substituted whenever the insight call fails so a
// check-in submission never fails on the model's account.
var fallbackInsights = types.CheckInInsights{
	Encouragement:     "Great job completing your check-in! Consistent reflection is key to growth.",
	Suggestions:       []string{"Keep tracking your progress", "Celebrate small wins"},
	PotentialRisks:    []string{},
	CelebrationWorthy: false,
}

type CompleteCheckInInput struct {
	Wins                  []string
	Challenges            []string
	Blockers              []string
	NextWeekPriorities    []string
	MoodScore             int
	Notes                 *string
	CompletedMilestoneIDs []uuid.UUID
}

type SuggestedMilestone struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type JournalAnalysis struct {
	ExtractedWins       []string             `json:"extractedWins"`
	ExtractedChallenges []string             `json:"extractedChallenges"`
	SuggestedPriorities []string             `json:"suggestedPriorities"`
	SuggestedMilestones []SuggestedMilestone `json:"suggestedMilestones"`
}

type CheckInService interface {
	List(ctx context.Context, userID uuid.UUID) ([]*types.CheckIn, error)
	Get(ctx context.Context, userID, checkInID uuid.UUID) (*types.CheckIn, error)
	Complete(ctx context.Context, userID, checkInID uuid.UUID, in CompleteCheckInInput) (*types.CheckIn, error)
	Insights(ctx context.Context, wins, challenges, blockers, priorities []string, moodScore int) *types.CheckInInsights
	AnalyzeJournal(ctx context.Context, journalContent string) (*JournalAnalysis, error)
}

type checkInService struct {
	log           *logger.Logger
	checkInRepo   repos.CheckInRepo
	milestoneRepo repos.MilestoneRepo
	ai            anthropic.Client
}

func NewCheckInService(
	baseLog *logger.Logger,
	checkInRepo repos.CheckInRepo,
	milestoneRepo repos.MilestoneRepo,
	ai anthropic.Client,
) CheckInService {
	return &checkInService{
		log:           baseLog.With("service", "CheckInService"),
		checkInRepo:   checkInRepo,
		milestoneRepo: milestoneRepo,
		ai:            ai,
	}
}

func (s *checkInService) List(ctx context.Context, userID uuid.UUID) ([]*types.CheckIn, error) {
	return s.checkInRepo.GetByUserID(ctx, nil, userID)
}

func (s *checkInService) Get(ctx context.Context, userID, checkInID uuid.UUID) (*types.CheckIn, error) {
	checkIn, err := s.checkInRepo.GetByIDForUser(ctx, nil, checkInID, userID)
	if err != nil {
		return nil, fmt.Errorf("get check-in: %w", err)
	}
	if checkIn == nil {
		return nil, apierr.ErrNotFound
	}
	return checkIn, nil
}

func hasNonEmpty(items []string) bool {
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			return true
		}
	}
	return false
}

// Complete submits a check-in: validates the wins/mood invariants, stores
// insights (falling back to a canned payload if the model call fails), and
// marks the cross-referenced milestones completed.
func (s *checkInService) Complete(ctx context.Context, userID, checkInID uuid.UUID, in CompleteCheckInInput) (*types.CheckIn, error) {
	checkIn, err := s.Get(ctx, userID, checkInID)
	if err != nil {
		return nil, err
	}
	if checkIn.Status == types.CheckInStatusCompleted {
		return nil, fmt.Errorf("check-in already completed: %w", apierr.ErrValidation)
	}
	if !hasNonEmpty(in.Wins) {
		return nil, fmt.Errorf("at least one win is required: %w", apierr.ErrValidation)
	}
	if in.MoodScore < 1 || in.MoodScore > 5 {
		return nil, fmt.Errorf("mood score must be between 1 and 5: %w", apierr.ErrValidation)
	}

	insights := s.Insights(ctx, in.Wins, in.Challenges, in.Blockers, in.NextWeekPriorities, in.MoodScore)
	rawInsights, err := json.Marshal(insights)
	if err != nil {
		return nil, fmt.Errorf("encode insights: %w", err)
	}

	now := time.Now().UTC()
	rows, err := s.checkInRepo.UpdateFields(ctx, nil, checkInID, userID, map[string]interface{}{
		"wins":                 datatypes.NewJSONSlice(in.Wins),
		"challenges":           datatypes.NewJSONSlice(in.Challenges),
		"blockers":             datatypes.NewJSONSlice(in.Blockers),
		"next_week_priorities": datatypes.NewJSONSlice(in.NextWeekPriorities),
		"mood_score":           in.MoodScore,
		"notes":                in.Notes,
		"ai_insights":          datatypes.JSON(rawInsights),
		"status":               types.CheckInStatusCompleted,
		"completed_at":         now,
	})
	if err != nil {
		return nil, fmt.Errorf("complete check-in: %w", err)
	}
	if rows == 0 {
		return nil, apierr.ErrNotFound
	}

	for _, milestoneID := range in.CompletedMilestoneIDs {
		if _, err := s.milestoneRepo.UpdateFields(ctx, nil, milestoneID, userID, map[string]interface{}{
			"status":       types.MilestoneStatusCompleted,
			"completed_at": now,
			"updated_at":   now,
		}); err != nil {
			s.log.Error("failed to complete milestone from check-in",
				"check_in_id", checkInID,
				"milestone_id", milestoneID,
				"error", err,
			)
		}
	}

	return s.Get(ctx, userID, checkInID)
}

// Insights never fails; model errors degrade to the fallback payload.
func (s *checkInService) Insights(ctx context.Context, wins, challenges, blockers, priorities []string, moodScore int) *types.CheckInInsights {
	raw, err := s.ai.Generate(ctx,
		prompts.CheckInInsightsSystemPrompt,
		prompts.BuildCheckInInsightsPrompt(wins, challenges, blockers, priorities, moodScore),
		anthropic.GenerateOptions{MaxTokens: insightsMaxTokens, Temperature: insightsTemperature},
	)
	if err != nil {
		s.log.Warn("insight generation failed, using fallback", "error", err)
		fallback := fallbackInsights
		return &fallback
	}

	var insights types.CheckInInsights
	if err := jsonrepair.ParseInto(raw, &insights); err != nil {
		s.log.Warn("insight response unparseable, using fallback", "raw", truncate(raw, 300), "error", err)
		fallback := fallbackInsights
		return &fallback
	}
	return &insights
}

// AnalyzeJournal has no fallback: a failed call surfaces to the caller and
// the feature is simply unavailable for that attempt.
func (s *checkInService) AnalyzeJournal(ctx context.Context, journalContent string) (*JournalAnalysis, error) {
	if strings.TrimSpace(journalContent) == "" {
		return nil, fmt.Errorf("journal content is required: %w", apierr.ErrValidation)
	}

	raw, err := s.ai.Generate(ctx,
		prompts.JournalAnalysisSystemPrompt,
		prompts.BuildJournalAnalysisPrompt(journalContent),
		anthropic.GenerateOptions{MaxTokens: journalMaxTokens, Temperature: journalTemperature},
	)
	if err != nil {
		return nil, err
	}

	var analysis JournalAnalysis
	if err := jsonrepair.ParseInto(raw, &analysis); err != nil {
		return nil, fmt.Errorf("%w: %w", apierr.ErrGenerationParse, err)
	}
	return &analysis, nil
}
