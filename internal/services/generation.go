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
	"github.com/venturepath/venturepath-backend/internal/questionnaire"
	"github.com/venturepath/venturepath-backend/internal/repos"
	"github.com/venturepath/venturepath-backend/internal/types"
)

const (
	generationMaxTokens   = 8000
	generationTemperature = 0.7
)

type GenerationService interface {
	Generate(ctx context.Context, userID, planID uuid.UUID) (map[string]string, error)
}

type generationService struct {
	log      *logger.Logger
	planRepo repos.PlanRepo
	ai       anthropic.Client
}

func NewGenerationService(baseLog *logger.Logger, planRepo repos.PlanRepo, ai anthropic.Client) GenerationService {
	return &generationService{
		log:      baseLog.With("service", "GenerationService"),
		planRepo: planRepo,
		ai:       ai,
	}
}

// Generate builds the kind-specific prompt from the stored answers, calls the
// model, and installs the parsed section map. Status moves to "generating"
// before the external call so a crash mid-call leaves the plan visibly
// pending rather than silently stuck.
func (s *generationService) Generate(ctx context.Context, userID, planID uuid.UUID) (map[string]string, error) {
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

	responses := questionnaire.Responses{}
	if len(plan.QuestionnaireResponses) > 0 {
		if err := json.Unmarshal(plan.QuestionnaireResponses, &responses); err != nil {
			return nil, fmt.Errorf("decode questionnaire responses: %w", err)
		}
	}
	if len(responses) == 0 {
		return nil, fmt.Errorf("no questionnaire answers to generate from: %w", apierr.ErrValidation)
	}

	var system, user string
	switch plan.PlanType {
	case types.PlanTypeBusiness:
		system = prompts.BusinessPlanSystemPrompt
		user = prompts.BuildBusinessPlanPrompt(prompts.BusinessPlanContextFromResponses(responses))
	case types.PlanTypeGTM:
		system = prompts.GTMPlanSystemPrompt
		user = prompts.BuildGTMPlanPrompt(prompts.GTMPlanContextFromResponses(responses))
	default:
		return nil, fmt.Errorf("unsupported plan type %q: %w", plan.PlanType, apierr.ErrValidation)
	}

	if _, err := s.planRepo.UpdateFields(ctx, nil, planID, userID, map[string]interface{}{
		"status": types.PlanStatusGenerating,
	}); err != nil {
		return nil, fmt.Errorf("mark plan generating: %w", err)
	}

	content, genErr := s.generateContent(ctx, plan.PlanType, system, user)
	if genErr != nil {
		s.rollbackStatus(ctx, userID, planID)
		return nil, genErr
	}

	raw, err := json.Marshal(content)
	if err != nil {
		s.rollbackStatus(ctx, userID, planID)
		return nil, fmt.Errorf("encode generated content: %w", err)
	}

	now := time.Now().UTC()
	if _, err := s.planRepo.UpdateFields(ctx, nil, planID, userID, map[string]interface{}{
		"generated_content":          datatypes.JSON(raw),
		"status":                     types.PlanStatusReview,
		"generation_version":         plan.GenerationVersion + 1,
		"questionnaire_completed_at": now,
		"updated_at":                 now,
	}); err != nil {
		return nil, fmt.Errorf("store generated content: %w", err)
	}

	s.log.Info("plan generated",
		"plan_id", planID,
		"plan_type", plan.PlanType,
		"generation_version", plan.GenerationVersion+1,
	)
	return content, nil
}

func (s *generationService) generateContent(ctx context.Context, planType, system, user string) (map[string]string, error) {
	text, err := s.ai.Generate(ctx, system, user, anthropic.GenerateOptions{
		MaxTokens:   generationMaxTokens,
		Temperature: generationTemperature,
	})
	if err != nil {
		return nil, err
	}

	content := map[string]string{}
	if err := jsonrepair.ParseInto(text, &content); err != nil {
		s.log.Error("generated content unparseable",
			"plan_type", planType,
			"raw", truncate(text, 500),
			"error", err,
		)
		return nil, fmt.Errorf("%w: %w", apierr.ErrGenerationParse, err)
	}

	var missing []string
	for _, section := range prompts.SectionsForPlanType(planType) {
		if strings.TrimSpace(content[section.Key]) == "" {
			missing = append(missing, section.Key)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing sections %s", apierr.ErrGenerationParse, strings.Join(missing, ", "))
	}
	return content, nil
}

// rollbackStatus is best-effort: the original generation error is the one
// surfaced to the caller.
func (s *generationService) rollbackStatus(ctx context.Context, userID, planID uuid.UUID) {
	if _, err := s.planRepo.UpdateFields(ctx, nil, planID, userID, map[string]interface{}{
		"status": types.PlanStatusQuestionnaire,
	}); err != nil {
		s.log.Error("status rollback failed", "plan_id", planID, "error", err)
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
