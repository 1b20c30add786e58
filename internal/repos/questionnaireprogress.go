package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/types"
)

type QuestionnaireProgressRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, progress *types.QuestionnaireProgress) (*types.QuestionnaireProgress, error)
	GetByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) (*types.QuestionnaireProgress, error)
	DeleteByPlanIDs(ctx context.Context, tx *gorm.DB, planIDs []uuid.UUID) error
}

type questionnaireProgressRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewQuestionnaireProgressRepo(db *gorm.DB, baseLog *logger.Logger) QuestionnaireProgressRepo {
	repoLog := baseLog.With("repo", "QuestionnaireProgressRepo")
	return &questionnaireProgressRepo{db: db, log: repoLog}
}

func (r *questionnaireProgressRepo) Upsert(ctx context.Context, tx *gorm.DB, progress *types.QuestionnaireProgress) (*types.QuestionnaireProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if err := transaction.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "plan_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"current_step", "total_steps", "step_data", "last_active_at"}),
		}).
		Create(progress).Error; err != nil {
		return nil, err
	}
	return progress, nil
}

func (r *questionnaireProgressRepo) GetByPlanID(ctx context.Context, tx *gorm.DB, planID uuid.UUID) (*types.QuestionnaireProgress, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.QuestionnaireProgress
	if err := transaction.WithContext(ctx).
		Where("plan_id = ?", planID).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

func (r *questionnaireProgressRepo) DeleteByPlanIDs(ctx context.Context, tx *gorm.DB, planIDs []uuid.UUID) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(planIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("plan_id IN ?", planIDs).
		Delete(&types.QuestionnaireProgress{}).Error
}
