package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/services"
)

type RefinementHandler struct {
	log               *logger.Logger
	refinementService services.RefinementService
}

func NewRefinementHandler(log *logger.Logger, refinementService services.RefinementService) *RefinementHandler {
	return &RefinementHandler{
		log:               log.With("handler", "RefinementHandler"),
		refinementService: refinementService,
	}
}

type refineRequest struct {
	PlanID         uuid.UUID `json:"planId" binding:"required"`
	SectionKey     string    `json:"sectionKey" binding:"required"`
	SectionTitle   string    `json:"sectionTitle"`
	CurrentContent string    `json:"currentContent" binding:"required"`
	Feedback       string    `json:"feedback" binding:"required"`
}

func (h *RefinementHandler) Refine(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req refineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	refined, err := h.refinementService.Refine(c.Request.Context(), userID, services.RefineInput{
		PlanID:         req.PlanID,
		SectionKey:     req.SectionKey,
		SectionTitle:   req.SectionTitle,
		CurrentContent: req.CurrentContent,
		Feedback:       req.Feedback,
	})
	if err != nil {
		h.log.Error("Refine failed", "error", err, "plan_id", req.PlanID, "section_key", req.SectionKey)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"refinedContent": refined})
}
