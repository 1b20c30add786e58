package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// QuestionnaireProgress is upserted on every step navigation; one row per plan.
type QuestionnaireProgress struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PlanID       uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"plan_id"`
	Plan         *Plan          `gorm:"constraint:OnDelete:CASCADE;foreignKey:PlanID;references:ID" json:"plan,omitempty"`
	CurrentStep  int            `gorm:"column:current_step;not null;default:0" json:"current_step"`
	TotalSteps   int            `gorm:"column:total_steps;not null;default:0" json:"total_steps"`
	StepData     datatypes.JSON `gorm:"column:step_data;type:jsonb" json:"step_data"`
	LastActiveAt time.Time      `gorm:"column:last_active_at;not null;default:CURRENT_TIMESTAMP" json:"last_active_at"`
}

func (QuestionnaireProgress) TableName() string { return "questionnaire_progress" }
