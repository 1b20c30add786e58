package app

import (
	"github.com/venturepath/venturepath-backend/internal/handlers"
	"github.com/venturepath/venturepath-backend/internal/logger"
)

type Handlers struct {
	Plan          *handlers.PlanHandler
	Questionnaire *handlers.QuestionnaireHandler
	Generation    *handlers.GenerationHandler
	Refinement    *handlers.RefinementHandler
	Finalization  *handlers.FinalizationHandler
	Milestone     *handlers.MilestoneHandler
	CheckIn       *handlers.CheckInHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Plan:          handlers.NewPlanHandler(log, services.Plan, services.Questionnaire),
		Questionnaire: handlers.NewQuestionnaireHandler(log, services.Questionnaire),
		Generation:    handlers.NewGenerationHandler(log, services.Generation),
		Refinement:    handlers.NewRefinementHandler(log, services.Refinement),
		Finalization:  handlers.NewFinalizationHandler(log, services.Finalization),
		Milestone:     handlers.NewMilestoneHandler(log, services.Milestone),
		CheckIn:       handlers.NewCheckInHandler(log, services.CheckIn),
	}
}
