package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	PlanTypeBusiness = "business_plan"
	PlanTypeGTM      = "gtm_plan"
)

// Lifecycle states. finalized is terminal; generating falls back to
// questionnaire_in_progress when a generation attempt fails.
const (
	PlanStatusDraft         = "draft"
	PlanStatusQuestionnaire = "questionnaire_in_progress"
	PlanStatusGenerating    = "generating"
	PlanStatusReview        = "review"
	PlanStatusRefining      = "refining"
	PlanStatusFinalized     = "finalized"
)

type Plan struct {
	ID                       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	UserID                   uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanType                 string         `gorm:"column:plan_type;not null;index" json:"plan_type"`
	Status                   string         `gorm:"column:status;not null;default:'draft';index" json:"status"`
	Title                    *string        `gorm:"column:title" json:"title,omitempty"`
	QuestionnaireResponses   datatypes.JSON `gorm:"column:questionnaire_responses;type:jsonb" json:"questionnaire_responses"`
	QuestionnaireCompletedAt *time.Time     `gorm:"column:questionnaire_completed_at" json:"questionnaire_completed_at,omitempty"`
	GeneratedContent         datatypes.JSON `gorm:"column:generated_content;type:jsonb" json:"generated_content,omitempty"`
	GenerationVersion        int            `gorm:"column:generation_version;not null;default:0" json:"generation_version"`
	FinalizedContent         datatypes.JSON `gorm:"column:finalized_content;type:jsonb" json:"finalized_content,omitempty"`
	FinalizedAt              *time.Time     `gorm:"column:finalized_at" json:"finalized_at,omitempty"`
	CreatedAt                time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt                time.Time      `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Plan) TableName() string { return "plans" }
