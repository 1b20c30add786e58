package services

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/repos"
	"github.com/venturepath/venturepath-backend/internal/types"
)

// ReminderService sweeps due reminders on a cron schedule. Only the in_app
// channel is deliverable today: marking the row sent is what surfaces it to
// the client. Other channels stay pending until a delivery provider exists.
type ReminderService interface {
	Start() error
	Stop()
	SweepOnce(ctx context.Context) (int, error)
}

type reminderService struct {
	log          *logger.Logger
	reminderRepo repos.ReminderRepo
	schedule     string
	cron         *cron.Cron
}

func NewReminderService(baseLog *logger.Logger, reminderRepo repos.ReminderRepo, schedule string) ReminderService {
	if schedule == "" {
		schedule = "@every 1m"
	}
	return &reminderService{
		log:          baseLog.With("service", "ReminderService"),
		reminderRepo: reminderRepo,
		schedule:     schedule,
		cron:         cron.New(),
	}
}

func (s *reminderService) Start() error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if _, err := s.SweepOnce(ctx); err != nil {
			s.log.Error("reminder sweep failed", "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("schedule reminder sweep: %w", err)
	}
	s.cron.Start()
	s.log.Info("reminder sweep started", "schedule", s.schedule)
	return nil
}

func (s *reminderService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *reminderService) SweepOnce(ctx context.Context) (int, error) {
	now := time.Now().UTC()
	due, err := s.reminderRepo.GetDuePending(ctx, nil, now)
	if err != nil {
		return 0, fmt.Errorf("list due reminders: %w", err)
	}

	sent := 0
	for _, reminder := range due {
		if reminder.Channel != types.ReminderChannelInApp {
			continue
		}
		if err := s.reminderRepo.UpdateFields(ctx, nil, reminder.ID, map[string]interface{}{
			"status":  types.ReminderStatusSent,
			"sent_at": now,
		}); err != nil {
			s.log.Error("failed to mark reminder sent", "reminder_id", reminder.ID, "error", err)
			continue
		}
		sent++
	}

	if sent > 0 {
		s.log.Info("reminders delivered", "count", sent)
	}
	return sent, nil
}
