package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/services"
)

type PlanHandler struct {
	log                  *logger.Logger
	planService          services.PlanService
	questionnaireService services.QuestionnaireService
}

func NewPlanHandler(log *logger.Logger, planService services.PlanService, questionnaireService services.QuestionnaireService) *PlanHandler {
	return &PlanHandler{
		log:                  log.With("handler", "PlanHandler"),
		planService:          planService,
		questionnaireService: questionnaireService,
	}
}

type createPlanRequest struct {
	PlanType string  `json:"planType" binding:"required"`
	Title    *string `json:"title"`
}

func (h *PlanHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req createPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	plan, err := h.planService.Create(c.Request.Context(), userID, req.PlanType, req.Title)
	if err != nil {
		h.log.Error("Create failed", "error", err, "user_id", userID)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"plan": plan})
}

func (h *PlanHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	plans, err := h.planService.List(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("List failed", "error", err, "user_id", userID)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"plans": plans})
}

func (h *PlanHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, ok := pathUUID(c, "planId")
	if !ok {
		return
	}
	plan, err := h.planService.Get(c.Request.Context(), userID, planID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"plan": plan})
}

func (h *PlanHandler) GetProgress(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, ok := pathUUID(c, "planId")
	if !ok {
		return
	}
	progress, err := h.planService.GetProgress(c.Request.Context(), userID, planID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"progress": progress})
}

type renamePlanRequest struct {
	Title string `json:"title" binding:"required"`
}

func (h *PlanHandler) Rename(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, ok := pathUUID(c, "planId")
	if !ok {
		return
	}
	var req renamePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.planService.Rename(c.Request.Context(), userID, planID, req.Title); err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"renamed": true})
}

type updateSectionRequest struct {
	SectionKey string `json:"sectionKey" binding:"required"`
	Content    string `json:"content"`
}

func (h *PlanHandler) UpdateSection(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, ok := pathUUID(c, "planId")
	if !ok {
		return
	}
	var req updateSectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.planService.UpdateSection(c.Request.Context(), userID, planID, req.SectionKey, req.Content); err != nil {
		h.log.Error("UpdateSection failed", "error", err, "plan_id", planID, "section_key", req.SectionKey)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"updated": true})
}

func (h *PlanHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, ok := pathUUID(c, "planId")
	if !ok {
		return
	}
	if err := h.planService.Delete(c.Request.Context(), userID, planID); err != nil {
		h.log.Error("Delete failed", "error", err, "plan_id", planID)
		RespondServiceError(c, err)
		return
	}
	h.questionnaireService.Evict(planID)
	RespondOK(c, gin.H{"deleted": true})
}
