package app

import (
	"github.com/gin-gonic/gin"

	"github.com/venturepath/venturepath-backend/internal/server"
)

func wireRouter(cfg Config, handlers Handlers, middleware Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		ServiceName:    cfg.ServiceName,
		AllowedOrigins: cfg.AllowedOrigins,

		AuthMiddleware:       middleware.Auth,
		PlanHandler:          handlers.Plan,
		QuestionnaireHandler: handlers.Questionnaire,
		GenerationHandler:    handlers.Generation,
		RefinementHandler:    handlers.Refinement,
		FinalizationHandler:  handlers.Finalization,
		MilestoneHandler:     handlers.Milestone,
		CheckInHandler:       handlers.CheckIn,
	})
}
