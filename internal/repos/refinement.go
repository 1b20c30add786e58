package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/types"
)

type RefinementRepo interface {
	Create(ctx context.Context, tx *gorm.DB, refinements []*types.Refinement) ([]*types.Refinement, error)
	GetByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) ([]*types.Refinement, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, refinementID uuid.UUID, fields map[string]interface{}) error
	DeleteByPlanIDs(ctx context.Context, tx *gorm.DB, planIDs []uuid.UUID) error
}

type refinementRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRefinementRepo(db *gorm.DB, baseLog *logger.Logger) RefinementRepo {
	repoLog := baseLog.With("repo", "RefinementRepo")
	return &refinementRepo{db: db, log: repoLog}
}

func (r *refinementRepo) Create(ctx context.Context, tx *gorm.DB, refinements []*types.Refinement) ([]*types.Refinement, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(refinements) == 0 {
		return []*types.Refinement{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&refinements).Error; err != nil {
		return nil, err
	}
	return refinements, nil
}

func (r *refinementRepo) GetByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) ([]*types.Refinement, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.Refinement
	if err := transaction.WithContext(ctx).
		Where("plan_id = ?", planID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *refinementRepo) UpdateFields(ctx context.Context, tx *gorm.DB, refinementID uuid.UUID, fields map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	return transaction.WithContext(ctx).
		Model(&types.Refinement{}).
		Where("id = ?", refinementID).
		Updates(fields).Error
}

func (r *refinementRepo) DeleteByPlanIDs(ctx context.Context, tx *gorm.DB, planIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(planIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("plan_id IN ?", planIDs).
		Delete(&types.Refinement{}).Error
}
