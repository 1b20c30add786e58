package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/venturepath/venturepath-backend/internal/handlers"
	"github.com/venturepath/venturepath-backend/internal/middleware"
)

type RouterConfig struct {
	ServiceName    string
	AllowedOrigins []string

	AuthMiddleware       *middleware.AuthMiddleware
	PlanHandler          *handlers.PlanHandler
	QuestionnaireHandler *handlers.QuestionnaireHandler
	GenerationHandler    *handlers.GenerationHandler
	RefinementHandler    *handlers.RefinementHandler
	FinalizationHandler  *handlers.FinalizationHandler
	MilestoneHandler     *handlers.MilestoneHandler
	CheckInHandler       *handlers.CheckInHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()
	router.Use(otelgin.Middleware(cfg.ServiceName))

	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// ===============
	// || Public    ||
	// ===============
	router.GET("/healthcheck", handlers.HealthCheck)

	// ===============
	// || Protected ||
	// ===============
	api := router.Group("/api")
	api.Use(cfg.AuthMiddleware.RequireAuth())

	// Plans
	api.POST("/plans", cfg.PlanHandler.Create)
	api.GET("/plans", cfg.PlanHandler.List)
	api.GET("/plans/:planId", cfg.PlanHandler.Get)
	api.PATCH("/plans/:planId", cfg.PlanHandler.Rename)
	api.DELETE("/plans/:planId/delete", cfg.PlanHandler.Delete)
	api.POST("/plans/:planId/update-section", cfg.PlanHandler.UpdateSection)
	api.GET("/plans/:planId/progress", cfg.PlanHandler.GetProgress)

	// Questionnaire
	api.POST("/plans/:planId/answers", cfg.QuestionnaireHandler.UpdateAnswers)
	api.POST("/plans/:planId/progress", cfg.QuestionnaireHandler.RecordStep)
	api.GET("/plans/:planId/import/preview", cfg.QuestionnaireHandler.ImportPreview)
	api.POST("/plans/:planId/import", cfg.QuestionnaireHandler.Import)

	// Pipelines
	api.POST("/generate", cfg.GenerationHandler.Generate)
	api.POST("/refine", cfg.RefinementHandler.Refine)
	api.POST("/plans/:planId/finalize", cfg.FinalizationHandler.Finalize)

	// Milestones
	api.GET("/plans/:planId/milestones", cfg.MilestoneHandler.ListByPlan)
	api.GET("/milestones", cfg.MilestoneHandler.ListByUser)
	api.PATCH("/milestones/:milestoneId", cfg.MilestoneHandler.Update)
	api.DELETE("/milestones/:milestoneId", cfg.MilestoneHandler.Delete)

	// Check-ins
	api.GET("/check-ins", cfg.CheckInHandler.List)
	api.GET("/check-ins/:checkInId", cfg.CheckInHandler.Get)
	api.POST("/check-ins/complete", cfg.CheckInHandler.Complete)
	api.POST("/check-ins/insights", cfg.CheckInHandler.Insights)
	api.POST("/check-ins/analyze-journal", cfg.CheckInHandler.AnalyzeJournal)

	return router
}
