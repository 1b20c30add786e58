package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	MilestoneCategoryRevenue    = "revenue"
	MilestoneCategoryProduct    = "product"
	MilestoneCategoryMarketing  = "marketing"
	MilestoneCategoryOperations = "operations"
	MilestoneCategoryHiring     = "hiring"
	MilestoneCategoryOther      = "other"
)

const (
	MilestoneStatusNotStarted = "not_started"
	MilestoneStatusInProgress = "in_progress"
	MilestoneStatusCompleted  = "completed"
	MilestoneStatusBlocked    = "blocked"
	MilestoneStatusDeferred   = "deferred"
)

const (
	MilestonePriorityHigh   = 1
	MilestonePriorityMedium = 2
	MilestonePriorityLow    = 3
)

type Milestone struct {
	ID              uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PlanID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"plan_id"`
	Plan            *Plan      `gorm:"constraint:OnDelete:CASCADE;foreignKey:PlanID;references:ID" json:"plan,omitempty"`
	UserID          uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Title           string     `gorm:"column:title;not null" json:"title"`
	Description     string     `gorm:"column:description" json:"description"`
	TargetDate      *time.Time `gorm:"column:target_date;index" json:"target_date,omitempty"`
	Category        string     `gorm:"column:category;not null;default:'other'" json:"category"`
	Priority        int        `gorm:"column:priority;not null;default:2" json:"priority"`
	Status          string     `gorm:"column:status;not null;default:'not_started';index" json:"status"`
	CompletionNotes *string    `gorm:"column:completion_notes" json:"completion_notes,omitempty"`
	CompletedAt     *time.Time `gorm:"column:completed_at" json:"completed_at,omitempty"`
	CreatedAt       time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (Milestone) TableName() string { return "milestones" }

func ValidMilestoneCategory(category string) bool {
	switch category {
	case MilestoneCategoryRevenue, MilestoneCategoryProduct, MilestoneCategoryMarketing,
		MilestoneCategoryOperations, MilestoneCategoryHiring, MilestoneCategoryOther:
		return true
	}
	return false
}

func ValidMilestoneStatus(status string) bool {
	switch status {
	case MilestoneStatusNotStarted, MilestoneStatusInProgress, MilestoneStatusCompleted,
		MilestoneStatusBlocked, MilestoneStatusDeferred:
		return true
	}
	return false
}
