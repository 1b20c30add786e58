package app

import (
	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/services"
)

type Services struct {
	Plan          services.PlanService
	Questionnaire services.QuestionnaireService
	Generation    services.GenerationService
	Refinement    services.RefinementService
	Finalization  services.FinalizationService
	Milestone     services.MilestoneService
	CheckIn       services.CheckInService
	Reminder      services.ReminderService
}

func wireServices(log *logger.Logger, cfg Config, r Repos, clients Clients) Services {
	log.Info("Wiring services...")
	return Services{
		Plan:          services.NewPlanService(log, r.Plan, r.QuestionnaireProgress, r.Refinement, r.Milestone, r.CheckIn, r.Reminder),
		Questionnaire: services.NewQuestionnaireService(log, r.Plan, r.QuestionnaireProgress, cfg.AnswerDebounce),
		Generation:    services.NewGenerationService(log, r.Plan, clients.AI),
		Refinement:    services.NewRefinementService(log, r.Plan, r.Refinement, clients.AI),
		Finalization:  services.NewFinalizationService(log, r.Plan, r.Milestone, r.CheckIn, r.Reminder, clients.AI),
		Milestone:     services.NewMilestoneService(log, r.Plan, r.Milestone, r.Reminder),
		CheckIn:       services.NewCheckInService(log, r.CheckIn, r.Milestone, clients.AI),
		Reminder:      services.NewReminderService(log, r.Reminder, cfg.ReminderSchedule),
	}
}
