package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/services"
)

type FinalizationHandler struct {
	log                 *logger.Logger
	finalizationService services.FinalizationService
}

func NewFinalizationHandler(log *logger.Logger, finalizationService services.FinalizationService) *FinalizationHandler {
	return &FinalizationHandler{
		log:                 log.With("handler", "FinalizationHandler"),
		finalizationService: finalizationService,
	}
}

func (h *FinalizationHandler) Finalize(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, ok := pathUUID(c, "planId")
	if !ok {
		return
	}
	result, err := h.finalizationService.Finalize(c.Request.Context(), userID, planID)
	if err != nil {
		h.log.Error("Finalize failed", "error", err, "plan_id", planID, "user_id", userID)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{
		"milestonesCreated": result.MilestonesCreated,
		"checkInId":         result.CheckInID,
	})
}
