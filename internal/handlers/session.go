package handlers

import (
	"net/http"

	"github.com/HumoyunMamasodiqov/level-test/internal/services"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	sessionService *services.SessionService
}

func NewSessionHandler(sessionService *services.SessionService) *SessionHandler {
	return &SessionHandler{sessionService: sessionService}
}

type StartSessionRequest struct {
	LevelID     uint   `json:"level_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
}

type StartSessionResponse struct {
	Success       bool   `json:"success"`
	SessionID     string `json:"session_id"`
	TimeLimit     int    `json:"time_limit"`
	QuestionCount int    `json:"question_count"`
}

// StartSession godoc
// @Summary      Start a test session
// @Description  Registers the candidate, creates a session and returns its token
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        request body StartSessionRequest true "Candidate data"
// @Success      200 {object} StartSessionResponse
// @Failure      400 {object} ErrorResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/start-session/ [post]
func (h *SessionHandler) StartSession(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	result, err := h.sessionService.StartSession(services.StartSessionInput{
		LevelID:     req.LevelID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StartSessionResponse{
		Success:       true,
		SessionID:     result.SessionID,
		TimeLimit:     result.TimeLimit,
		QuestionCount: result.QuestionCount,
	})
}
