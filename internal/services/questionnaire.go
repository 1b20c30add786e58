package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/venturepath/venturepath-backend/internal/apierr"
	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/questionnaire"
	"github.com/venturepath/venturepath-backend/internal/repos"
	"github.com/venturepath/venturepath-backend/internal/types"
)

type StepState struct {
	CurrentStep int  `json:"current_step"`
	TotalSteps  int  `json:"total_steps"`
	Valid       bool `json:"valid"`
}

// QuestionnaireService fronts per-plan questionnaire engines. Engines are
// kept in-process keyed by plan id so the debounce window spans requests;
// the map is the only cross-request state in the service layer.
type QuestionnaireService interface {
	Definition(planType string) (*questionnaire.Questionnaire, error)
	UpdateAnswers(ctx context.Context, userID, planID uuid.UUID, answers questionnaire.Responses) error
	Flush(ctx context.Context, userID, planID uuid.UUID) error
	RecordStep(ctx context.Context, userID, planID uuid.UUID, currentStep int) (*StepState, error)
	ImportPreview(ctx context.Context, userID, sourcePlanID uuid.UUID) ([]questionnaire.ImportableField, error)
	Import(ctx context.Context, userID, sourcePlanID, targetPlanID uuid.UUID) error
	Evict(planID uuid.UUID)
}

type questionnaireService struct {
	log          *logger.Logger
	planRepo     repos.PlanRepo
	progressRepo repos.QuestionnaireProgressRepo
	debounce     time.Duration

	mu      sync.Mutex
	engines map[uuid.UUID]*questionnaire.Engine
}

func NewQuestionnaireService(
	baseLog *logger.Logger,
	planRepo repos.PlanRepo,
	progressRepo repos.QuestionnaireProgressRepo,
	debounce time.Duration,
) QuestionnaireService {
	return &questionnaireService{
		log:          baseLog.With("service", "QuestionnaireService"),
		planRepo:     planRepo,
		progressRepo: progressRepo,
		debounce:     debounce,
		engines:      map[uuid.UUID]*questionnaire.Engine{},
	}
}

func (s *questionnaireService) Definition(planType string) (*questionnaire.Questionnaire, error) {
	def, ok := questionnaire.ForPlanType(planType)
	if !ok {
		return nil, fmt.Errorf("unsupported plan type %q: %w", planType, apierr.ErrValidation)
	}
	return def, nil
}

func (s *questionnaireService) engine(ctx context.Context, userID, planID uuid.UUID) (*questionnaire.Engine, error) {
	s.mu.Lock()
	eng, ok := s.engines[planID]
	s.mu.Unlock()
	if ok {
		return eng, nil
	}

	plan, err := s.planRepo.GetByIDForUser(ctx, nil, planID, userID)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if plan == nil {
		return nil, apierr.ErrNotFound
	}

	eng, err = questionnaire.NewEngine(s.log, s.planRepo, s.progressRepo, planID, userID, plan.PlanType, s.debounce)
	if err != nil {
		return nil, err
	}
	if err := eng.Load(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	if existing, ok := s.engines[planID]; ok {
		// Another request won the race; its engine carries the live state.
		s.mu.Unlock()
		eng.Stop()
		return existing, nil
	}
	s.engines[planID] = eng
	s.mu.Unlock()
	return eng, nil
}

func (s *questionnaireService) UpdateAnswers(ctx context.Context, userID, planID uuid.UUID, answers questionnaire.Responses) error {
	if len(answers) == 0 {
		return fmt.Errorf("no answers provided: %w", apierr.ErrValidation)
	}
	eng, err := s.engine(ctx, userID, planID)
	if err != nil {
		return err
	}
	for questionID, value := range answers {
		eng.UpdateAnswer(questionID, value)
	}
	return nil
}

func (s *questionnaireService) Flush(ctx context.Context, userID, planID uuid.UUID) error {
	eng, err := s.engine(ctx, userID, planID)
	if err != nil {
		return err
	}
	return eng.Flush(ctx)
}

// RecordStep flushes pending answers, validates the step the user is leaving
// and persists the step position.
func (s *questionnaireService) RecordStep(ctx context.Context, userID, planID uuid.UUID, currentStep int) (*StepState, error) {
	eng, err := s.engine(ctx, userID, planID)
	if err != nil {
		return nil, err
	}
	if err := eng.RecordStep(ctx, currentStep); err != nil {
		return nil, err
	}
	return &StepState{
		CurrentStep: currentStep,
		TotalSteps:  len(eng.Definition().Steps),
		Valid:       eng.ValidateStep(currentStep),
	}, nil
}

func (s *questionnaireService) sourceAnswers(ctx context.Context, userID, sourcePlanID uuid.UUID) (questionnaire.Responses, error) {
	eng, err := s.engine(ctx, userID, sourcePlanID)
	if err != nil {
		return nil, err
	}
	return eng.Answers(), nil
}

func (s *questionnaireService) ImportPreview(ctx context.Context, userID, sourcePlanID uuid.UUID) ([]questionnaire.ImportableField, error) {
	answers, err := s.sourceAnswers(ctx, userID, sourcePlanID)
	if err != nil {
		return nil, err
	}
	return questionnaire.ImportableFields(answers), nil
}

// Import seeds a GTM plan's answers from a business plan via the static
// field mapping. Nil mapped values never blank out existing target answers.
func (s *questionnaireService) Import(ctx context.Context, userID, sourcePlanID, targetPlanID uuid.UUID) error {
	source, err := s.planRepo.GetByIDForUser(ctx, nil, sourcePlanID, userID)
	if err != nil {
		return fmt.Errorf("load source plan: %w", err)
	}
	if source == nil {
		return apierr.ErrNotFound
	}
	if source.PlanType != types.PlanTypeBusiness {
		return fmt.Errorf("import source must be a business plan: %w", apierr.ErrValidation)
	}

	answers, err := s.sourceAnswers(ctx, userID, sourcePlanID)
	if err != nil {
		return err
	}

	target, err := s.engine(ctx, userID, targetPlanID)
	if err != nil {
		return err
	}
	if target.Definition().PlanType != types.PlanTypeGTM {
		return fmt.Errorf("import target must be a GTM plan: %w", apierr.ErrValidation)
	}

	target.ImportAnswers(questionnaire.MapBusinessPlanToGTM(answers))
	return target.Flush(ctx)
}

func (s *questionnaireService) Evict(planID uuid.UUID) {
	s.mu.Lock()
	eng, ok := s.engines[planID]
	if ok {
		delete(s.engines, planID)
	}
	s.mu.Unlock()
	if ok {
		eng.Stop()
	}
}
