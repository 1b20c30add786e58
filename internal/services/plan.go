package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/venturepath/venturepath-backend/internal/apierr"
	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/questionnaire"
	"github.com/venturepath/venturepath-backend/internal/repos"
	"github.com/venturepath/venturepath-backend/internal/types"
)

type PlanService interface {
	Create(ctx context.Context, userID uuid.UUID, planType string, title *string) (*types.Plan, error)
	List(ctx context.Context, userID uuid.UUID) ([]*types.Plan, error)
	Get(ctx context.Context, userID, planID uuid.UUID) (*types.Plan, error)
	GetProgress(ctx context.Context, userID, planID uuid.UUID) (*types.QuestionnaireProgress, error)
	Rename(ctx context.Context, userID, planID uuid.UUID, title string) error
	UpdateSection(ctx context.Context, userID, planID uuid.UUID, sectionKey, content string) error
	Delete(ctx context.Context, userID, planID uuid.UUID) error
}

type planService struct {
	log            *logger.Logger
	planRepo       repos.PlanRepo
	progressRepo   repos.QuestionnaireProgressRepo
	refinementRepo repos.RefinementRepo
	milestoneRepo  repos.MilestoneRepo
	checkInRepo    repos.CheckInRepo
	reminderRepo   repos.ReminderRepo
}

func NewPlanService(
	baseLog *logger.Logger,
	planRepo repos.PlanRepo,
	progressRepo repos.QuestionnaireProgressRepo,
	refinementRepo repos.RefinementRepo,
	milestoneRepo repos.MilestoneRepo,
	checkInRepo repos.CheckInRepo,
	reminderRepo repos.ReminderRepo,
) PlanService {
	return &planService{
		log:            baseLog.With("service", "PlanService"),
		planRepo:       planRepo,
		progressRepo:   progressRepo,
		refinementRepo: refinementRepo,
		milestoneRepo:  milestoneRepo,
		checkInRepo:    checkInRepo,
		reminderRepo:   reminderRepo,
	}
}

func (s *planService) Create(ctx context.Context, userID uuid.UUID, planType string, title *string) (*types.Plan, error) {
	if _, ok := questionnaire.ForPlanType(planType); !ok {
		return nil, fmt.Errorf("unsupported plan type %q: %w", planType, apierr.ErrValidation)
	}

	plan := &types.Plan{
		ID:       uuid.New(),
		UserID:   userID,
		PlanType: planType,
		Status:   types.PlanStatusDraft,
		Title:    title,
	}
	created, err := s.planRepo.Create(ctx, nil, []*types.Plan{plan})
	if err != nil {
		return nil, fmt.Errorf("create plan: %w", err)
	}
	return created[0], nil
}

func (s *planService) List(ctx context.Context, userID uuid.UUID) ([]*types.Plan, error) {
	return s.planRepo.GetByUserID(ctx, nil, userID)
}

func (s *planService) Get(ctx context.Context, userID, planID uuid.UUID) (*types.Plan, error) {
	plan, err := s.planRepo.GetByIDForUser(ctx, nil, planID, userID)
	if err != nil {
		return nil, fmt.Errorf("get plan: %w", err)
	}
	if plan == nil {
		return nil, apierr.ErrNotFound
	}
	return plan, nil
}

func (s *planService) GetProgress(ctx context.Context, userID, planID uuid.UUID) (*types.QuestionnaireProgress, error) {
	if _, err := s.Get(ctx, userID, planID); err != nil {
		return nil, err
	}
	return s.progressRepo.GetByPlanID(ctx, nil, planID)
}

func (s *planService) Rename(ctx context.Context, userID, planID uuid.UUID, title string) error {
	rows, err := s.planRepo.UpdateFields(ctx, nil, planID, userID, map[string]interface{}{
		"title":      title,
		"updated_at": time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("rename plan: %w", err)
	}
	if rows == 0 {
		return apierr.ErrNotFound
	}
	return nil
}

// UpdateSection applies a manual single-section edit to generated content.
// Finalized plans are read-only.
func (s *planService) UpdateSection(ctx context.Context, userID, planID uuid.UUID, sectionKey, content string) error {
	if sectionKey == "" {
		return fmt.Errorf("section key required: %w", apierr.ErrValidation)
	}

	plan, err := s.Get(ctx, userID, planID)
	if err != nil {
		return err
	}
	if plan.FinalizedAt != nil {
		return apierr.ErrAlreadyFinalized
	}
	if len(plan.GeneratedContent) == 0 {
		return apierr.ErrNoContent
	}

	sections := map[string]string{}
	if err := json.Unmarshal(plan.GeneratedContent, &sections); err != nil {
		return fmt.Errorf("decode generated content: %w", err)
	}
	sections[sectionKey] = content

	raw, err := json.Marshal(sections)
	if err != nil {
		return fmt.Errorf("encode generated content: %w", err)
	}

	rows, err := s.planRepo.UpdateFields(ctx, nil, planID, userID, map[string]interface{}{
		"generated_content": datatypes.JSON(raw),
		"updated_at":        time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("update section: %w", err)
	}
	if rows == 0 {
		return apierr.ErrNotFound
	}
	return nil
}

// Delete removes the plan and all dependent rows. The deletes run as an
// explicit ordered sequence of single-table statements, child tables first.
// There is no wrapping transaction; a failure mid-sequence can orphan rows.
func (s *planService) Delete(ctx context.Context, userID, planID uuid.UUID) error {
	plan, err := s.Get(ctx, userID, planID)
	if err != nil {
		return err
	}

	planIDs := []uuid.UUID{plan.ID}

	milestones, err := s.milestoneRepo.GetByPlanIDs(ctx, nil, planIDs)
	if err != nil {
		return fmt.Errorf("list plan milestones: %w", err)
	}
	checkIns, err := s.checkInRepo.GetByPlanIDs(ctx, nil, planIDs)
	if err != nil {
		return fmt.Errorf("list plan check-ins: %w", err)
	}

	milestoneIDs := make([]uuid.UUID, 0, len(milestones))
	for _, m := range milestones {
		milestoneIDs = append(milestoneIDs, m.ID)
	}
	checkInIDs := make([]uuid.UUID, 0, len(checkIns))
	for _, c := range checkIns {
		checkInIDs = append(checkInIDs, c.ID)
	}

	if err := s.milestoneRepo.DeleteByPlanIDs(ctx, nil, planIDs); err != nil {
		return fmt.Errorf("delete plan milestones: %w", err)
	}
	if err := s.checkInRepo.DeleteByPlanIDs(ctx, nil, planIDs); err != nil {
		return fmt.Errorf("delete plan check-ins: %w", err)
	}
	if err := s.refinementRepo.DeleteByPlanIDs(ctx, nil, planIDs); err != nil {
		return fmt.Errorf("delete plan refinements: %w", err)
	}
	if err := s.progressRepo.DeleteByPlanIDs(ctx, nil, planIDs); err != nil {
		return fmt.Errorf("delete questionnaire progress: %w", err)
	}
	if err := s.reminderRepo.DeleteByMilestoneIDs(ctx, nil, milestoneIDs); err != nil {
		return fmt.Errorf("delete milestone reminders: %w", err)
	}
	if err := s.reminderRepo.DeleteByCheckInIDs(ctx, nil, checkInIDs); err != nil {
		return fmt.Errorf("delete check-in reminders: %w", err)
	}
	if err := s.planRepo.DeleteByID(ctx, nil, plan.ID); err != nil {
		return fmt.Errorf("delete plan: %w", err)
	}

	s.log.Info("plan deleted",
		"plan_id", plan.ID,
		"milestones", len(milestoneIDs),
		"check_ins", len(checkInIDs),
	)
	return nil
}
