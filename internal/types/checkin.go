package types

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	CheckInStatusScheduled = "scheduled"
	CheckInStatusPending   = "pending"
	CheckInStatusCompleted = "completed"
	CheckInStatusSkipped   = "skipped"
)

// CheckInInsights is the AI-generated payload stored after completion.
type CheckInInsights struct {
	Encouragement     string   `json:"encouragement"`
	Suggestions       []string `json:"suggestions"`
	PotentialRisks    []string `json:"potential_risks"`
	CelebrationWorthy bool     `json:"celebration_worthy"`
}

type CheckIn struct {
	ID                 uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID             uuid.UUID                   `gorm:"type:uuid;not null;index" json:"user_id"`
	PlanID             *uuid.UUID                  `gorm:"type:uuid;index" json:"plan_id,omitempty"`
	Plan               *Plan                       `gorm:"constraint:OnDelete:CASCADE;foreignKey:PlanID;references:ID" json:"plan,omitempty"`
	ScheduledFor       time.Time                   `gorm:"column:scheduled_for;not null;index" json:"scheduled_for"`
	CompletedAt        *time.Time                  `gorm:"column:completed_at" json:"completed_at,omitempty"`
	Wins               datatypes.JSONSlice[string] `gorm:"column:wins;type:jsonb" json:"wins"`
	Challenges         datatypes.JSONSlice[string] `gorm:"column:challenges;type:jsonb" json:"challenges"`
	Blockers           datatypes.JSONSlice[string] `gorm:"column:blockers;type:jsonb" json:"blockers"`
	NextWeekPriorities datatypes.JSONSlice[string] `gorm:"column:next_week_priorities;type:jsonb" json:"next_week_priorities"`
	MoodScore          *int                        `gorm:"column:mood_score" json:"mood_score,omitempty"`
	Notes              *string                     `gorm:"column:notes" json:"notes,omitempty"`
	AIInsights         datatypes.JSON              `gorm:"column:ai_insights;type:jsonb" json:"ai_insights,omitempty"`
	Status             string                      `gorm:"column:status;not null;default:'scheduled';index" json:"status"`
	CreatedAt          time.Time                   `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (CheckIn) TableName() string { return "check_ins" }
