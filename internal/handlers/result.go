package handlers

import (
	"net/http"

	"github.com/HumoyunMamasodiqov/level-test/internal/services"

	"github.com/gin-gonic/gin"
)

type ResultHandler struct {
	scoringService *services.ScoringService
	statsService   *services.StatsService
}

func NewResultHandler(scoringService *services.ScoringService, statsService *services.StatsService) *ResultHandler {
	return &ResultHandler{scoringService: scoringService, statsService: statsService}
}

type SubmitTestRequest struct {
	SessionID string                     `json:"session_id"`
	Answers   []services.SubmittedAnswer `json:"answers"`
	TimeTaken int                        `json:"time_taken"`
}

type SubmitTestResponse struct {
	Success       bool    `json:"success"`
	SessionID     string  `json:"session_id"`
	Correct       int     `json:"correct"`
	Total         int     `json:"total"`
	Score         float64 `json:"score"`
	TimeTaken     int     `json:"time_taken"`
	TelegramSent  bool    `json:"telegram_sent"`
	AdminNotified bool    `json:"admin_notified"`
}

// SubmitTest godoc
// @Summary      Submit answers for grading
// @Description  Grades the submission, stores the result and sends notifications
// @Tags         results
// @Accept       json
// @Produce      json
// @Param        request body SubmitTestRequest true "Submission"
// @Success      200 {object} SubmitTestResponse
// @Failure      404 {object} ErrorResponse
// @Failure      409 {object} ErrorResponse
// @Router       /api/submit-test/ [post]
func (h *ResultHandler) SubmitTest(c *gin.Context) {
	var req SubmitTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}
	if req.SessionID == "" {
		c.JSON(http.StatusBadRequest, errorResponse("session_id is required"))
		return
	}

	result, err := h.scoringService.SubmitTest(req.SessionID, req.Answers, req.TimeTaken)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, SubmitTestResponse{
		Success:       true,
		SessionID:     result.SessionID,
		Correct:       result.Correct,
		Total:         result.Total,
		Score:         result.Score,
		TimeTaken:     result.TimeTaken,
		TelegramSent:  result.TelegramSent,
		AdminNotified: result.AdminNotified,
	})
}

type ResultDetailResponse struct {
	Success bool                   `json:"success"`
	Result  services.ResultSummary `json:"result"`
}

// GetTestResult godoc
// @Summary      Result for a session
// @Tags         results
// @Produce      json
// @Param        session_id path string true "Session ID"
// @Success      200 {object} ResultDetailResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/test-results/{session_id}/ [get]
func (h *ResultHandler) GetTestResult(c *gin.Context) {
	summary, err := h.statsService.ResultDetail(c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ResultDetailResponse{Success: true, Result: *summary})
}
