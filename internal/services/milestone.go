package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/venturepath/venturepath-backend/internal/apierr"
	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/repos"
	"github.com/venturepath/venturepath-backend/internal/types"
)

type UpdateMilestoneInput struct {
	Title           *string
	Description     *string
	Status          *string
	TargetDate      *time.Time
	Priority        *int
	CompletionNotes *string
}

type MilestoneService interface {
	ListByPlan(ctx context.Context, userID, planID uuid.UUID) ([]*types.Milestone, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.Milestone, error)
	Update(ctx context.Context, userID, milestoneID uuid.UUID, in UpdateMilestoneInput) (*types.Milestone, error)
	Delete(ctx context.Context, userID, milestoneID uuid.UUID) error
}

type milestoneService struct {
	log           *logger.Logger
	planRepo      repos.PlanRepo
	milestoneRepo repos.MilestoneRepo
	reminderRepo  repos.ReminderRepo
}

func NewMilestoneService(
	baseLog *logger.Logger,
	planRepo repos.PlanRepo,
	milestoneRepo repos.MilestoneRepo,
	reminderRepo repos.ReminderRepo,
) MilestoneService {
	return &milestoneService{
		log:           baseLog.With("service", "MilestoneService"),
		planRepo:      planRepo,
		milestoneRepo: milestoneRepo,
		reminderRepo:  reminderRepo,
	}
}

func (s *milestoneService) ListByPlan(ctx context.Context, userID, planID uuid.UUID) ([]*types.Milestone, error) {
	plan, err := s.planRepo.GetByIDForUser(ctx, nil, planID, userID)
	if err != nil {
		return nil, fmt.Errorf("load plan: %w", err)
	}
	if plan == nil {
		return nil, apierr.ErrNotFound
	}
	return s.milestoneRepo.GetByPlanID(ctx, nil, planID)
}

func (s *milestoneService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*types.Milestone, error) {
	return s.milestoneRepo.GetByUserID(ctx, nil, userID)
}

// Update applies user edits. Entering "completed" stamps completed_at;
// leaving it clears the stamp again.
func (s *milestoneService) Update(ctx context.Context, userID, milestoneID uuid.UUID, in UpdateMilestoneInput) (*types.Milestone, error) {
	milestone, err := s.milestoneRepo.GetByIDForUser(ctx, nil, milestoneID, userID)
	if err != nil {
		return nil, fmt.Errorf("get milestone: %w", err)
	}
	if milestone == nil {
		return nil, apierr.ErrNotFound
	}

	now := time.Now().UTC()
	fields := map[string]interface{}{"updated_at": now}

	if in.Title != nil {
		fields["title"] = *in.Title
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.TargetDate != nil {
		fields["target_date"] = *in.TargetDate
	}
	if in.Priority != nil {
		if *in.Priority < types.MilestonePriorityHigh || *in.Priority > types.MilestonePriorityLow {
			return nil, fmt.Errorf("priority must be 1, 2 or 3: %w", apierr.ErrValidation)
		}
		fields["priority"] = *in.Priority
	}
	if in.CompletionNotes != nil {
		fields["completion_notes"] = *in.CompletionNotes
	}
	if in.Status != nil {
		status := *in.Status
		if !types.ValidMilestoneStatus(status) {
			return nil, fmt.Errorf("invalid milestone status %q: %w", status, apierr.ErrValidation)
		}
		fields["status"] = status
		switch {
		case status == types.MilestoneStatusCompleted && milestone.Status != types.MilestoneStatusCompleted:
			fields["completed_at"] = now
		case status != types.MilestoneStatusCompleted && milestone.Status == types.MilestoneStatusCompleted:
			fields["completed_at"] = nil
		}
	}

	rows, err := s.milestoneRepo.UpdateFields(ctx, nil, milestoneID, userID, fields)
	if err != nil {
		return nil, fmt.Errorf("update milestone: %w", err)
	}
	if rows == 0 {
		return nil, apierr.ErrNotFound
	}

	return s.milestoneRepo.GetByIDForUser(ctx, nil, milestoneID, userID)
}

func (s *milestoneService) Delete(ctx context.Context, userID, milestoneID uuid.UUID) error {
	milestone, err := s.milestoneRepo.GetByIDForUser(ctx, nil, milestoneID, userID)
	if err != nil {
		return fmt.Errorf("get milestone: %w", err)
	}
	if milestone == nil {
		return apierr.ErrNotFound
	}

	if err := s.reminderRepo.DeleteByMilestoneIDs(ctx, nil, []uuid.UUID{milestoneID}); err != nil {
		return fmt.Errorf("delete milestone reminders: %w", err)
	}
	return s.milestoneRepo.DeleteByID(ctx, nil, milestoneID)
}
