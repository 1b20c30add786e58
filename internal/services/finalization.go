package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/venturepath/venturepath-backend/internal/apierr"
	"github.com/venturepath/venturepath-backend/internal/clients/anthropic"
	"github.com/venturepath/venturepath-backend/internal/jsonrepair"
	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/prompts"
	"github.com/venturepath/venturepath-backend/internal/repos"
	"github.com/venturepath/venturepath-backend/internal/types"
)

const (
	extractionMaxTokens   = 2000
	extractionTemperature = 0.3

	checkInHour = 10
)

// Historical key aliases for the two sections fed into milestone extraction.
var (
	milestoneSectionKeys = []string{"milestones_and_metrics", "traction_milestones", "launch_timeline"}
	actionItemKeys       = []string{"immediate_action_items", "action_plan", "quick_wins"}
)

type FinalizeResult struct {
	MilestonesCreated int
	CheckInID         uuid.UUID
}

type FinalizationService interface {
	Finalize(ctx context.Context, userID, planID uuid.UUID) (*FinalizeResult, error)
}

type finalizationService struct {
	log           *logger.Logger
	planRepo      repos.PlanRepo
	milestoneRepo repos.MilestoneRepo
	checkInRepo   repos.CheckInRepo
	reminderRepo  repos.ReminderRepo
	ai            anthropic.Client

	now func() time.Time
}

func NewFinalizationService(
	baseLog *logger.Logger,
	planRepo repos.PlanRepo,
	milestoneRepo repos.MilestoneRepo,
	checkInRepo repos.CheckInRepo,
	reminderRepo repos.ReminderRepo,
	ai anthropic.Client,
) FinalizationService {
	return &finalizationService{
		log:           baseLog.With("service", "FinalizationService"),
		planRepo:      planRepo,
		milestoneRepo: milestoneRepo,
		checkInRepo:   checkInRepo,
		reminderRepo:  reminderRepo,
		ai:            ai,
		now:           time.Now,
	}
}

// Finalize freezes the plan's content, extracts trackable milestones
// (best-effort) and schedules the first weekly check-in. Milestone
// extraction failures never block finalization.
func (s *finalizationService) Finalize(ctx context.Context, userID, planID uuid.UUID) (*FinalizeResult, error) {
	plan, err := s.planRepo.GetByIDForUser(ctx, nil, planID, userID)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if plan == nil {
		return nil, apierr.ErrNotFound
	}
	if plan.FinalizedAt != nil {
		return nil, apierr.ErrAlreadyFinalized
	}
	if len(plan.GeneratedContent) == 0 {
		return nil, apierr.ErrNoContent
	}

	content := map[string]string{}
	if err := jsonrepair.ParseInto(string(plan.GeneratedContent), &content); err != nil {
		return nil, fmt.Errorf("decode generated content: %w", err)
	}

	now := s.now()
	if _, err := s.planRepo.UpdateFields(ctx, nil, planID, userID, map[string]interface{}{
		"finalized_content": plan.GeneratedContent,
		"finalized_at":      now.UTC(),
		"status":            types.PlanStatusFinalized,
		"updated_at":        now.UTC(),
	}); err != nil {
		return nil, fmt.Errorf("finalize plan: %w", err)
	}

	milestones := s.extractMilestones(ctx, plan, content, now)
	if len(milestones) > 0 {
		if _, err := s.milestoneRepo.Create(ctx, nil, milestones); err != nil {
			s.log.Error("failed to persist extracted milestones", "plan_id", planID, "error", err)
			milestones = nil
		}
	}

	checkIn, err := s.scheduleCheckIn(ctx, plan, now)
	if err != nil {
		return nil, err
	}

	s.log.Info("plan finalized",
		"plan_id", planID,
		"milestones_created", len(milestones),
		"check_in_scheduled_for", checkIn.ScheduledFor,
	)
	return &FinalizeResult{MilestonesCreated: len(milestones), CheckInID: checkIn.ID}, nil
}

type extractedMilestone struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	TargetDate  string      `json:"target_date"`
	Category    string      `json:"category"`
	Priority    interface{} `json:"priority"`
}

func firstSection(content map[string]string, keys []string) string {
	for _, key := range keys {
		if v := strings.TrimSpace(content[key]); v != "" {
			return v
		}
	}
	return ""
}

// extractMilestones is best-effort end to end: any model or parse failure
// yields zero milestones, never an error.
func (s *finalizationService) extractMilestones(ctx context.Context, plan *types.Plan, content map[string]string, now time.Time) []*types.Milestone {
	milestonesSection := firstSection(content, milestoneSectionKeys)
	actionItems := firstSection(content, actionItemKeys)

	raw, err := s.ai.Generate(ctx,
		prompts.MilestoneExtractionSystemPrompt,
		prompts.BuildMilestoneExtractionPrompt(now, milestonesSection, actionItems),
		anthropic.GenerateOptions{MaxTokens: extractionMaxTokens, Temperature: extractionTemperature},
	)
	if err != nil {
		s.log.Error("milestone extraction call failed", "plan_id", plan.ID, "error", err)
		return nil
	}

	extracted, err := parseExtractedMilestones(raw)
	if err != nil {
		s.log.Error("milestone extraction unparseable",
			"plan_id", plan.ID,
			"raw", truncate(raw, 500),
			"error", err,
		)
		return nil
	}

	out := make([]*types.Milestone, 0, len(extracted))
	for i, e := range extracted {
		out = append(out, repairMilestone(e, i, now, plan))
	}
	return out
}

// parseExtractedMilestones accepts both a bare array and an object wrapping
// the array under a "milestones" key.
func parseExtractedMilestones(raw string) ([]extractedMilestone, error) {
	var list []extractedMilestone
	if err := jsonrepair.ParseInto(raw, &list); err == nil {
		return list, nil
	}

	var wrapped struct {
		Milestones []extractedMilestone `json:"milestones"`
	}
	if err := jsonrepair.ParseInto(raw, &wrapped); err != nil {
		return nil, err
	}
	if wrapped.Milestones == nil {
		return nil, fmt.Errorf("no milestones array in response")
	}
	return wrapped.Milestones, nil
}

var targetDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

func parseTargetDate(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range targetDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// repairMilestone applies the fixed repair policy: synthetic 30-day-spaced
// dates for unparseable input, future reassignment at 7+14*i days, closed-set
// coercion for category and priority, positional default titles.
func repairMilestone(e extractedMilestone, index int, now time.Time, plan *types.Plan) *types.Milestone {
	target, ok := parseTargetDate(e.TargetDate)
	if !ok {
		target = now.AddDate(0, 0, 30*(index+1))
	}
	if !target.After(now) {
		target = now.AddDate(0, 0, 7+14*index)
	}

	category := e.Category
	if !types.ValidMilestoneCategory(category) {
		category = types.MilestoneCategoryOther
	}

	priority := coercePriority(e.Priority)

	title := strings.TrimSpace(e.Title)
	if title == "" {
		title = fmt.Sprintf("Milestone %d", index+1)
	}

	return &types.Milestone{
		ID:          uuid.New(),
		PlanID:      plan.ID,
		UserID:      plan.UserID,
		Title:       title,
		Description: e.Description,
		TargetDate:  &target,
		Category:    category,
		Priority:    priority,
		Status:      types.MilestoneStatusNotStarted,
	}
}

func coercePriority(v interface{}) int {
	switch p := v.(type) {
	case float64:
		if n := int(p); n >= 1 && n <= 3 {
			return n
		}
	case string:
		if n, err := strconv.Atoi(strings.TrimSpace(p)); err == nil && n >= 1 && n <= 3 {
			return n
		}
	}
	return types.MilestonePriorityMedium
}

// nextSunday returns the upcoming Sunday at the fixed check-in hour, a full
// week out when called on a Sunday.
func nextSunday(now time.Time) time.Time {
	days := 7 - int(now.Weekday())
	d := now.AddDate(0, 0, days)
	return time.Date(d.Year(), d.Month(), d.Day(), checkInHour, 0, 0, 0, now.Location())
}

func (s *finalizationService) scheduleCheckIn(ctx context.Context, plan *types.Plan, now time.Time) (*types.CheckIn, error) {
	scheduledFor := nextSunday(now)

	planID := plan.ID
	checkIn := &types.CheckIn{
		ID:           uuid.New(),
		UserID:       plan.UserID,
		PlanID:       &planID,
		ScheduledFor: scheduledFor,
		Status:       types.CheckInStatusScheduled,
	}
	if _, err := s.checkInRepo.Create(ctx, nil, []*types.CheckIn{checkIn}); err != nil {
		return nil, fmt.Errorf("schedule check-in: %w", err)
	}

	checkInID := checkIn.ID
	reminder := &types.Reminder{
		ID:           uuid.New(),
		UserID:       plan.UserID,
		CheckInID:    &checkInID,
		ReminderType: types.ReminderTypeCheckInDue,
		Message:      "Your weekly check-in is ready. Take five minutes to reflect on the week.",
		ScheduledFor: scheduledFor,
		Channel:      types.ReminderChannelInApp,
		Status:       types.ReminderStatusPending,
	}
	if _, err := s.reminderRepo.Create(ctx, nil, []*types.Reminder{reminder}); err != nil {
		// The check-in itself is scheduled; a missing reminder row only
		// degrades notification delivery.
		s.log.Error("failed to create check-in reminder", "check_in_id", checkIn.ID, "error", err)
	}

	return checkIn, nil
}
