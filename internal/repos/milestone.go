package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/types"
)

type MilestoneRepo interface {
	Create(ctx context.Context, tx *gorm.DB, milestones []*types.Milestone) ([]*types.Milestone, error)
	GetByIDForUser(ctx context.Context, tx *gorm.DB, milestoneID, userID uuid.UUID) (*types.Milestone, error)
	GetByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) ([]*types.Milestone, error)
	GetByPlanIDs(ctx context.Context, tx *gorm.DB, planIDs []uuid.UUID) ([]*types.Milestone, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Milestone, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, milestoneID, userID uuid.UUID, fields map[string]interface{}) (int64, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, milestoneID uuid.UUID) error
	DeleteByPlanIDs(ctx context.Context, tx *gorm.DB, planIDs []uuid.UUID) error
}

type milestoneRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMilestoneRepo(db *gorm.DB, baseLog *logger.Logger) MilestoneRepo {
	repoLog := baseLog.With("repo", "MilestoneRepo")
	return &milestoneRepo{db: db, log: repoLog}
}

func (r *milestoneRepo) Create(ctx context.Context, tx *gorm.DB, milestones []*types.Milestone) ([]*types.Milestone, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(milestones) == 0 {
		return []*types.Milestone{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&milestones).Error; err != nil {
		return nil, err
	}
	return milestones, nil
}

func (r *milestoneRepo) GetByIDForUser(ctx context.Context, tx *gorm.DB, milestoneID, userID uuid.UUID) (*types.Milestone, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Milestone
	if err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", milestoneID, userID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (r *milestoneRepo) GetByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) ([]*types.Milestone, error) {
	return r.GetByPlanIDs(ctx, tx, []uuid.UUID{planID})
}

func (r *milestoneRepo) GetByPlanIDs(ctx context.Context, tx *gorm.DB, planIDs []uuid.UUID) ([]*types.Milestone, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Milestone
	if len(planIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("plan_id IN ?", planIDs).
		Order("target_date ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *milestoneRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.Milestone, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Milestone
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("target_date ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *milestoneRepo) UpdateFields(ctx context.Context, tx *gorm.DB, milestoneID, userID uuid.UUID, fields map[string]interface{}) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.Milestone{}).
		Where("id = ? AND user_id = ?", milestoneID, userID).
		Updates(fields)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *milestoneRepo) DeleteByID(ctx context.Context, tx *gorm.DB, milestoneID uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Where("id = ?", milestoneID).
		Delete(&types.Milestone{}).Error
}

func (r *milestoneRepo) DeleteByPlanIDs(ctx context.Context, tx *gorm.DB, planIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(planIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("plan_id IN ?", planIDs).
		Delete(&types.Milestone{}).Error
}
