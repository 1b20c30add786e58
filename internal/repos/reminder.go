package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/types"
)

type ReminderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, reminders []*types.Reminder) ([]*types.Reminder, error)
	GetDuePending(ctx context.Context, tx *gorm.DB, before time.Time) ([]*types.Reminder, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, reminderID uuid.UUID, fields map[string]interface{}) error
	DeleteByCheckInIDs(ctx context.Context, tx *gorm.DB, checkInIDs []uuid.UUID) error
	DeleteByMilestoneIDs(ctx context.Context, tx *gorm.DB, milestoneIDs []uuid.UUID) error
}

type reminderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReminderRepo(db *gorm.DB, baseLog *logger.Logger) ReminderRepo {
	repoLog := baseLog.With("repo", "ReminderRepo")
	return &reminderRepo{db: db, log: repoLog}
}

func (r *reminderRepo) Create(ctx context.Context, tx *gorm.DB, reminders []*types.Reminder) ([]*types.Reminder, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(reminders) == 0 {
		return []*types.Reminder{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&reminders).Error; err != nil {
		return nil, err
	}
	return reminders, nil
}

func (r *reminderRepo) GetDuePending(ctx context.Context, tx *gorm.DB, before time.Time) ([]*types.Reminder, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Reminder
	if err := transaction.WithContext(ctx).
		Where("status = ? AND scheduled_for <= ?", types.ReminderStatusPending, before).
		Order("scheduled_for ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *reminderRepo) UpdateFields(ctx context.Context, tx *gorm.DB, reminderID uuid.UUID, fields map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Reminder{}).
		Where("id = ?", reminderID).
		Updates(fields).Error
}

func (r *reminderRepo) DeleteByCheckInIDs(ctx context.Context, tx *gorm.DB, checkInIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(checkInIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("check_in_id IN ?", checkInIDs).
		Delete(&types.Reminder{}).Error
}

func (r *reminderRepo) DeleteByMilestoneIDs(ctx context.Context, tx *gorm.DB, milestoneIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(milestoneIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("milestone_id IN ?", milestoneIDs).
		Delete(&types.Reminder{}).Error
}
