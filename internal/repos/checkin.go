package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/types"
)

type CheckInRepo interface {
	Create(ctx context.Context, tx *gorm.DB, checkIns []*types.CheckIn) ([]*types.CheckIn, error)
	GetByIDForUser(ctx context.Context, tx *gorm.DB, checkInID, userID uuid.UUID) (*types.CheckIn, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.CheckIn, error)
	GetByPlanIDs(ctx context.Context, tx *gorm.DB, planIDs []uuid.UUID) ([]*types.CheckIn, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, checkInID, userID uuid.UUID, fields map[string]interface{}) (int64, error)
	DeleteByPlanIDs(ctx context.Context, tx *gorm.DB, planIDs []uuid.UUID) error
}

type checkInRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCheckInRepo(db *gorm.DB, baseLog *logger.Logger) CheckInRepo {
	repoLog := baseLog.With("repo", "CheckInRepo")
	return &checkInRepo{db: db, log: repoLog}
}

func (r *checkInRepo) Create(ctx context.Context, tx *gorm.DB, checkIns []*types.CheckIn) ([]*types.CheckIn, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(checkIns) == 0 {
		return []*types.CheckIn{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&checkIns).Error; err != nil {
		return nil, err
	}
	return checkIns, nil
}

func (r *checkInRepo) GetByIDForUser(ctx context.Context, tx *gorm.DB, checkInID, userID uuid.UUID) (*types.CheckIn, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CheckIn
	if err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", checkInID, userID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (r *checkInRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]*types.CheckIn, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CheckIn
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("scheduled_for DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *checkInRepo) GetByPlanIDs(ctx context.Context, tx *gorm.DB, planIDs []uuid.UUID) ([]*types.CheckIn, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.CheckIn
	if len(planIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("plan_id IN ?", planIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *checkInRepo) UpdateFields(ctx context.Context, tx *gorm.DB, checkInID, userID uuid.UUID, fields map[string]interface{}) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Model(&types.CheckIn{}).
		Where("id = ? AND user_id = ?", checkInID, userID).
		Updates(fields)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *checkInRepo) DeleteByPlanIDs(ctx context.Context, tx *gorm.DB, planIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(planIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("plan_id IN ?", planIDs).
		Delete(&types.CheckIn{}).Error
}
