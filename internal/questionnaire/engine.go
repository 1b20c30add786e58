package questionnaire

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/venturepath/venturepath-backend/internal/apierr"
	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/repos"
	"github.com/venturepath/venturepath-backend/internal/types"
)

const DefaultDebounce = 2 * time.Second

// Engine holds the in-memory answer state for one plan's questionnaire.
// Answer updates are cheap in-memory merges; persistence is coalesced behind
// a debounce window. Navigation handlers must call Flush before moving on so
// a pending debounce can never be lost to routing.
type Engine struct {
	mu sync.Mutex

	log          *logger.Logger
	planRepo     repos.PlanRepo
	progressRepo repos.QuestionnaireProgressRepo

	planID   uuid.UUID
	userID   uuid.UUID
	def      *Questionnaire
	answers  Responses
	dirty    bool
	debounce time.Duration
	timer    *time.Timer
	saveWait time.Duration
}

func NewEngine(
	baseLog *logger.Logger,
	planRepo repos.PlanRepo,
	progressRepo repos.QuestionnaireProgressRepo,
	planID, userID uuid.UUID,
	planType string,
	debounce time.Duration,
) (*Engine, error) {
	def, ok := ForPlanType(planType)
	if !ok {
		return nil, fmt.Errorf("unsupported plan type %q: %w", planType, apierr.ErrValidation)
	}
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Engine{
		log:          baseLog.With("engine", "Questionnaire", "plan_id", planID),
		planRepo:     planRepo,
		progressRepo: progressRepo,
		planID:       planID,
		userID:       userID,
		def:          def,
		answers:      Responses{},
		debounce:     debounce,
		saveWait:     30 * time.Second,
	}, nil
}

func (e *Engine) Definition() *Questionnaire { return e.def }

// Load fetches persisted answers for the plan, replacing in-memory state.
func (e *Engine) Load(ctx context.Context) error {
	plan, err := e.planRepo.GetByIDForUser(ctx, nil, e.planID, e.userID)
	if err != nil {
		return fmt.Errorf("load plan: %w", err)
	}
	if plan == nil {
		return apierr.ErrNotFound
	}

	answers := Responses{}
	if len(plan.QuestionnaireResponses) > 0 {
		if err := json.Unmarshal(plan.QuestionnaireResponses, &answers); err != nil {
			return fmt.Errorf("decode questionnaire responses: %w", err)
		}
	}

	e.mu.Lock()
	e.answers = answers
	e.dirty = false
	e.mu.Unlock()
	return nil
}

// UpdateAnswer merges one answer into memory and (re)arms the debounce
// timer. No storage I/O happens on this path.
func (e *Engine) UpdateAnswer(questionID string, value interface{}) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.answers[questionID] = value
	e.dirty = true
	e.armTimerLocked()
}

// ImportAnswers merges a partial answer map, skipping nil values so an
// import can never blank out an existing answer. Defined values, including
// empty strings, do overwrite.
func (e *Engine) ImportAnswers(partial Responses) {
	e.mu.Lock()
	defer e.mu.Unlock()
	changed := false
	for key, value := range partial {
		if value == nil {
			continue
		}
		e.answers[key] = value
		changed = true
	}
	if changed {
		e.dirty = true
		e.armTimerLocked()
	}
}

func (e *Engine) armTimerLocked() {
	if e.timer != nil {
		e.timer.Stop()
	}
	e.timer = time.AfterFunc(e.debounce, e.saveDebounced)
}

func (e *Engine) saveDebounced() {
	ctx, cancel := context.WithTimeout(context.Background(), e.saveWait)
	defer cancel()
	if err := e.SaveProgress(ctx); err != nil {
		e.log.Error("debounced save failed", "error", err)
	}
}

// Answers returns a copy of the current in-memory answers.
func (e *Engine) Answers() Responses {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(Responses, len(e.answers))
	for k, v := range e.answers {
		out[k] = v
	}
	return out
}

// SaveProgress persists the full answer map and marks the plan as
// questionnaire-in-progress. Safe to call repeatedly.
func (e *Engine) SaveProgress(ctx context.Context) error {
	e.mu.Lock()
	raw, err := json.Marshal(e.answers)
	if err != nil {
		e.mu.Unlock()
		return fmt.Errorf("encode answers: %w", err)
	}
	e.dirty = false
	e.mu.Unlock()

	rows, err := e.planRepo.UpdateFields(ctx, nil, e.planID, e.userID, map[string]interface{}{
		"questionnaire_responses": datatypes.JSON(raw),
		"status":                  types.PlanStatusQuestionnaire,
		"updated_at":              time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("save questionnaire responses: %w", err)
	}
	if rows == 0 {
		return apierr.ErrNotFound
	}
	return nil
}

// Flush cancels any pending debounce and persists immediately if there are
// unsaved changes. Callers invoke it before any forward navigation.
func (e *Engine) Flush(ctx context.Context) error {
	e.mu.Lock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
	dirty := e.dirty
	e.mu.Unlock()

	if !dirty {
		return nil
	}
	return e.SaveProgress(ctx)
}

// RecordStep upserts the step position a user has reached.
func (e *Engine) RecordStep(ctx context.Context, currentStep int) error {
	if err := e.Flush(ctx); err != nil {
		return err
	}
	_, err := e.progressRepo.Upsert(ctx, nil, &types.QuestionnaireProgress{
		ID:           uuid.New(),
		PlanID:       e.planID,
		CurrentStep:  currentStep,
		TotalSteps:   len(e.def.Steps),
		StepData:     datatypes.JSON([]byte("{}")),
		LastActiveAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("record questionnaire step: %w", err)
	}
	return nil
}

// ValidateStep reports whether every visible required question in the step
// has a usable answer. It never returns an error; out-of-range steps fail.
func (e *Engine) ValidateStep(stepIndex int) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if stepIndex < 0 || stepIndex >= len(e.def.Steps) {
		return false
	}
	step := e.def.Steps[stepIndex]

	for i := range step.Questions {
		q := &step.Questions[i]
		if !q.Visible(e.answers) {
			continue
		}

		value := e.answers[q.ID]
		if q.Required && !Answered(value) {
			return false
		}

		if q.Validation != nil {
			if s, ok := value.(string); ok && s != "" {
				if q.Validation.MinLength > 0 && len(s) < q.Validation.MinLength {
					return false
				}
				if q.Validation.MaxLength > 0 && len(s) > q.Validation.MaxLength {
					return false
				}
			}
		}
	}
	return true
}

// Stop cancels any pending debounce without saving. For teardown paths.
func (e *Engine) Stop() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}
