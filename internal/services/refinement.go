package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/venturepath/venturepath-backend/internal/apierr"
	"github.com/venturepath/venturepath-backend/internal/clients/anthropic"
	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/prompts"
	"github.com/venturepath/venturepath-backend/internal/repos"
	"github.com/venturepath/venturepath-backend/internal/types"
)

const (
	refinementMaxTokens   = 2000
	refinementTemperature = 0.6
)

type RefineInput struct {
	PlanID         uuid.UUID
	SectionKey     string
	SectionTitle   string
	CurrentContent string
	Feedback       string
}

type RefinementService interface {
	Refine(ctx context.Context, userID uuid.UUID, in RefineInput) (string, error)
}

type refinementService struct {
	log            *logger.Logger
	planRepo       repos.PlanRepo
	refinementRepo repos.RefinementRepo
	ai             anthropic.Client
}

func NewRefinementService(
	baseLog *logger.Logger,
	planRepo repos.PlanRepo,
	refinementRepo repos.RefinementRepo,
	ai anthropic.Client,
) RefinementService {
	return &refinementService{
		log:            baseLog.With("service", "RefinementService"),
		planRepo:       planRepo,
		refinementRepo: refinementRepo,
		ai:             ai,
	}
}

// Refine rewrites one section based on user feedback. A failed model call
// leaves the audit record at "processing" and generated content untouched;
// there is no automatic retry.
func (s *refinementService) Refine(ctx context.Context, userID uuid.UUID, in RefineInput) (string, error) {
	if in.SectionKey == "" || in.CurrentContent == "" || in.Feedback == "" {
		return "", fmt.Errorf("sectionKey, currentContent and feedback are required: %w", apierr.ErrValidation)
	}

	plan, err := s.planRepo.GetByIDForUser(ctx, nil, in.PlanID, userID)
	if err != nil {
		return "", fmt.Errorf("load plan: %w", err)
	}
	if plan == nil {
		return "", apierr.ErrNotFound
	}
	if plan.FinalizedAt != nil {
		return "", apierr.ErrAlreadyFinalized
	}
	if len(plan.GeneratedContent) == 0 {
		return "", apierr.ErrNoContent
	}

	record := &types.Refinement{
		ID:              uuid.New(),
		PlanID:          plan.ID,
		SectionKey:      in.SectionKey,
		UserFeedback:    in.Feedback,
		PreviousContent: in.CurrentContent,
		Status:          types.RefinementStatusProcessing,
	}
	if _, err := s.refinementRepo.Create(ctx, nil, []*types.Refinement{record}); err != nil {
		return "", fmt.Errorf("create refinement record: %w", err)
	}

	if _, err := s.planRepo.UpdateFields(ctx, nil, plan.ID, userID, map[string]interface{}{
		"status": types.PlanStatusRefining,
	}); err != nil {
		return "", fmt.Errorf("mark plan refining: %w", err)
	}

	title := in.SectionTitle
	if title == "" {
		title = prompts.SectionTitle(plan.PlanType, in.SectionKey)
	}

	refined, err := s.ai.Generate(ctx,
		prompts.RefinementSystemPrompt,
		prompts.BuildRefinementPrompt(title, in.CurrentContent, in.Feedback, ""),
		anthropic.GenerateOptions{MaxTokens: refinementMaxTokens, Temperature: refinementTemperature},
	)
	if err != nil {
		s.log.Error("section refinement failed",
			"plan_id", plan.ID,
			"section_key", in.SectionKey,
			"refinement_id", record.ID,
			"error", err,
		)
		return "", err
	}

	now := time.Now().UTC()
	if err := s.refinementRepo.UpdateFields(ctx, nil, record.ID, map[string]interface{}{
		"refined_content": refined,
		"status":          types.RefinementStatusCompleted,
		"completed_at":    now,
	}); err != nil {
		return "", fmt.Errorf("complete refinement record: %w", err)
	}

	sections := map[string]string{}
	if err := json.Unmarshal(plan.GeneratedContent, &sections); err != nil {
		return "", fmt.Errorf("decode generated content: %w", err)
	}
	sections[in.SectionKey] = refined

	raw, err := json.Marshal(sections)
	if err != nil {
		return "", fmt.Errorf("encode generated content: %w", err)
	}
	if _, err := s.planRepo.UpdateFields(ctx, nil, plan.ID, userID, map[string]interface{}{
		"generated_content": datatypes.JSON(raw),
		"status":            types.PlanStatusReview,
		"updated_at":        now,
	}); err != nil {
		return "", fmt.Errorf("store refined section: %w", err)
	}

	return refined, nil
}
