package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/questionnaire"
	"github.com/venturepath/venturepath-backend/internal/services"
)

type QuestionnaireHandler struct {
	log                  *logger.Logger
	questionnaireService services.QuestionnaireService
}

func NewQuestionnaireHandler(log *logger.Logger, questionnaireService services.QuestionnaireService) *QuestionnaireHandler {
	return &QuestionnaireHandler{
		log:                  log.With("handler", "QuestionnaireHandler"),
		questionnaireService: questionnaireService,
	}
}

type updateAnswersRequest struct {
	Answers questionnaire.Responses `json:"answers" binding:"required"`
	Flush   bool                    `json:"flush"`
}

// UpdateAnswers merges the payload into the plan's working answers. The save
// is debounced; pass flush to persist before returning.
func (h *QuestionnaireHandler) UpdateAnswers(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, ok := pathUUID(c, "planId")
	if !ok {
		return
	}
	var req updateAnswersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.questionnaireService.UpdateAnswers(c.Request.Context(), userID, planID, req.Answers); err != nil {
		RespondServiceError(c, err)
		return
	}
	if req.Flush {
		if err := h.questionnaireService.Flush(c.Request.Context(), userID, planID); err != nil {
			h.log.Error("Flush failed", "error", err, "plan_id", planID)
			RespondServiceError(c, err)
			return
		}
	}
	RespondOK(c, gin.H{"saved": true})
}

type recordStepRequest struct {
	CurrentStep int `json:"currentStep"`
}

func (h *QuestionnaireHandler) RecordStep(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, ok := pathUUID(c, "planId")
	if !ok {
		return
	}
	var req recordStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	state, err := h.questionnaireService.RecordStep(c.Request.Context(), userID, planID, req.CurrentStep)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"state": state})
}

// ImportPreview lists the business plan fields an import into a GTM plan
// would carry over. planId is the source business plan.
func (h *QuestionnaireHandler) ImportPreview(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	planID, ok := pathUUID(c, "planId")
	if !ok {
		return
	}
	fields, err := h.questionnaireService.ImportPreview(c.Request.Context(), userID, planID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"fields": fields})
}

type importRequest struct {
	SourcePlanID uuid.UUID `json:"sourcePlanId" binding:"required"`
}

// Import seeds the target GTM plan (planId) from a business plan's answers.
func (h *QuestionnaireHandler) Import(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	targetID, ok := pathUUID(c, "planId")
	if !ok {
		return
	}
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	if err := h.questionnaireService.Import(c.Request.Context(), userID, req.SourcePlanID, targetID); err != nil {
		h.log.Error("Import failed", "error", err, "source_plan_id", req.SourcePlanID, "target_plan_id", targetID)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"imported": true})
}
