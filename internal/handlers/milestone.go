package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/services"
)

type MilestoneHandler struct {
	log              *logger.Logger
	milestoneService services.MilestoneService
}

func NewMilestoneHandler(log *logger.Logger, milestoneService services.MilestoneService) *MilestoneHandler {
	return &MilestoneHandler{
		log:              log.With("handler", "MilestoneHandler"),
		milestoneService: milestoneService,
	}
}

func (h *MilestoneHandler) ListByPlan(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, ok := pathUUID(c, "planId")
	if !ok {
		return
	}
	milestones, err := h.milestoneService.ListByPlan(c.Request.Context(), userID, planID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"milestones": milestones})
}

func (h *MilestoneHandler) ListByUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	milestones, err := h.milestoneService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"milestones": milestones})
}

type updateMilestoneRequest struct {
	Title           *string    `json:"title"`
	Description     *string    `json:"description"`
	Status          *string    `json:"status"`
	TargetDate      *time.Time `json:"targetDate"`
	Priority        *int       `json:"priority"`
	CompletionNotes *string    `json:"completionNotes"`
}

func (h *MilestoneHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	milestoneID, ok := pathUUID(c, "milestoneId")
	if !ok {
		return
	}
	var req updateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	milestone, err := h.milestoneService.Update(c.Request.Context(), userID, milestoneID, services.UpdateMilestoneInput{
		Title:           req.Title,
		Description:     req.Description,
		Status:          req.Status,
		TargetDate:      req.TargetDate,
		Priority:        req.Priority,
		CompletionNotes: req.CompletionNotes,
	})
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"milestone": milestone})
}

func (h *MilestoneHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	milestoneID, ok := pathUUID(c, "milestoneId")
	if !ok {
		return
	}
	if err := h.milestoneService.Delete(c.Request.Context(), userID, milestoneID); err != nil {
		h.log.Error("Delete failed", "error", err, "milestone_id", milestoneID)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"deleted": true})
}
