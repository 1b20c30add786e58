package types

import (
	"time"

	"github.com/google/uuid"
)

const (
	ReminderTypeMilestoneDue     = "milestone_due"
	ReminderTypeMilestoneOverdue = "milestone_overdue"
	ReminderTypeCheckInDue       = "check_in_due"
	ReminderTypePlanIncomplete   = "plan_incomplete"
	ReminderTypeCustom           = "custom"
)

const (
	ReminderChannelEmail = "email"
	ReminderChannelPush  = "push"
	ReminderChannelInApp = "in_app"
)

const (
	ReminderStatusPending   = "pending"
	ReminderStatusSent      = "sent"
	ReminderStatusFailed    = "failed"
	ReminderStatusCancelled = "cancelled"
)

type Reminder struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	MilestoneID  *uuid.UUID `gorm:"type:uuid;index" json:"milestone_id,omitempty"`
	CheckInID    *uuid.UUID `gorm:"type:uuid;index" json:"check_in_id,omitempty"`
	ReminderType string     `gorm:"column:reminder_type;not null" json:"reminder_type"`
	Message      string     `gorm:"column:message;not null" json:"message"`
	ScheduledFor time.Time  `gorm:"column:scheduled_for;not null;index" json:"scheduled_for"`
	SentAt       *time.Time `gorm:"column:sent_at" json:"sent_at,omitempty"`
	Channel      string     `gorm:"column:channel;not null;default:'in_app'" json:"channel"`
	Status       string     `gorm:"column:status;not null;default:'pending';index" json:"status"`
	CreatedAt    time.Time  `gorm:"not null;default:CURRENT_TIMESTAMP" json:"created_at"`
}

func (Reminder) TableName() string { return "reminders" }
