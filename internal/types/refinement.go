package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	RefinementStatusPending    = "pending"
	RefinementStatusProcessing = "processing"
	RefinementStatusCompleted  = "completed"
)

// Refinement is an audit record per section-rewrite request. It is written by
// the refinement pipeline and never read back by it; a row stuck at
// "processing" marks a failed call.
type Refinement struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PlanID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"plan_id"`
	Plan            *Plan      `gorm:"constraint:OnDelete:CASCADE;foreignKey:PlanID;references:ID" json:"plan,omitempty"`
	SectionKey      string     `gorm:"column:section_key" json:"section_key"`
	UserFeedback    string     `gorm:"column:user_feedback;not null" json:"user_feedback"`
	PreviousContent string     `gorm:"column:previous_content" json:"previous_content"`
	RefinedContent  *string    `gorm:"column:refined_content" json:"refined_content,omitempty"`
	Status          string     `gorm:"column:status;not null;default:'pending'" json:"status"`
	CreatedAt       time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	CompletedAt     *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
}

func (Refinement) TableName() string { return "refinements" }
