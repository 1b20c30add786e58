package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/venturepath/venturepath-backend/internal/logger"
	"github.com/venturepath/venturepath-backend/internal/services"
)

type CheckInHandler struct {
	log            *logger.Logger
	checkInService services.CheckInService
}

func NewCheckInHandler(log *logger.Logger, checkInService services.CheckInService) *CheckInHandler {
	return &CheckInHandler{
		log:            log.With("handler", "CheckInHandler"),
		checkInService: checkInService,
	}
}

func (h *CheckInHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	checkIns, err := h.checkInService.List(c.Request.Context(), userID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"checkIns": checkIns})
}

func (h *CheckInHandler) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	checkInID, ok := pathUUID(c, "checkInId")
	if !ok {
		return
	}
	checkIn, err := h.checkInService.Get(c.Request.Context(), userID, checkInID)
	if err != nil {
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"checkIn": checkIn})
}

type completeCheckInRequest struct {
	CheckInID             uuid.UUID   `json:"checkInId" binding:"required"`
	Wins                  []string    `json:"wins"`
	Challenges            []string    `json:"challenges"`
	Blockers              []string    `json:"blockers"`
	NextWeekPriorities    []string    `json:"nextWeekPriorities"`
	MoodScore             int         `json:"moodScore"`
	Notes                 *string     `json:"notes"`
	CompletedMilestoneIDs []uuid.UUID `json:"completedMilestoneIds"`
}

func (h *CheckInHandler) Complete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req completeCheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	checkIn, err := h.checkInService.Complete(c.Request.Context(), userID, req.CheckInID, services.CompleteCheckInInput{
		Wins:                  req.Wins,
		Challenges:            req.Challenges,
		Blockers:              req.Blockers,
		NextWeekPriorities:    req.NextWeekPriorities,
		MoodScore:             req.MoodScore,
		Notes:                 req.Notes,
		CompletedMilestoneIDs: req.CompletedMilestoneIDs,
	})
	if err != nil {
		h.log.Error("Complete failed", "error", err, "check_in_id", req.CheckInID)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"checkIn": checkIn})
}

type insightsRequest struct {
	Wins               []string `json:"wins"`
	Challenges         []string `json:"challenges"`
	Blockers           []string `json:"blockers"`
	NextWeekPriorities []string `json:"nextWeekPriorities"`
	MoodScore          int      `json:"moodScore"`
}

func (h *CheckInHandler) Insights(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	var req insightsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	insights := h.checkInService.Insights(c.Request.Context(),
		req.Wins, req.Challenges, req.Blockers, req.NextWeekPriorities, req.MoodScore)
	RespondOK(c, gin.H{"insights": insights})
}

type analyzeJournalRequest struct {
	JournalContent string `json:"journalContent" binding:"required"`
}

func (h *CheckInHandler) AnalyzeJournal(c *gin.Context) {
	if _, ok := currentUserID(c); !ok {
		return
	}
	var req analyzeJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "invalid_body", err)
		return
	}
	analysis, err := h.checkInService.AnalyzeJournal(c.Request.Context(), req.JournalContent)
	if err != nil {
		h.log.Error("AnalyzeJournal failed", "error", err)
		RespondServiceError(c, err)
		return
	}
	RespondOK(c, gin.H{"analysis": analysis})
}
