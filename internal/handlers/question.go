package handlers

import (
	"net/http"

	"github.com/HumoyunMamasodiqov/level-test/internal/services"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	questionService *services.QuestionService
}

func NewQuestionHandler(questionService *services.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

type QuestionSetResponse struct {
	Success   bool                         `json:"success"`
	Questions []services.DeliveredQuestion `json:"questions"`
	LevelName string                       `json:"level_name"`
	TimeLimit int                          `json:"time_limit"`
}

// GetQuestions godoc
// @Summary      Questions for a session
// @Description  Random sample of active questions for the session's level
// @Tags         questions
// @Produce      json
// @Param        session_id path string true "Session ID"
// @Success      200 {object} QuestionSetResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/questions/{session_id}/ [get]
func (h *QuestionHandler) GetQuestions(c *gin.Context) {
	set, err := h.questionService.GetQuestionsForSession(c.Param("session_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, QuestionSetResponse{
		Success:   true,
		Questions: set.Questions,
		LevelName: set.LevelName,
		TimeLimit: set.TimeLimit,
	})
}

type QuestionRequest struct {
	QuestionText string                 `json:"question_text" binding:"required"`
	Explanation  string                 `json:"explanation"`
	Image        string                 `json:"image"`
	IsActive     bool                   `json:"is_active"`
	Answers      []services.AnswerInput `json:"answers"`
}

func (r QuestionRequest) toInput() services.QuestionInput {
	return services.QuestionInput{
		QuestionText: r.QuestionText,
		Explanation:  r.Explanation,
		Image:        r.Image,
		IsActive:     &r.IsActive,
		Answers:      r.Answers,
	}
}

// CreateQuestion godoc
// @Summary      Add a question to a level
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id path int true "Level ID"
// @Param        request body QuestionRequest true "Question data"
// @Success      201 {object} Question
// @Failure      400 {object} ErrorResponse
// @Router       /api/admin/levels/{id}/questions [post]
func (h *QuestionHandler) CreateQuestion(c *gin.Context) {
	levelID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	question, err := h.questionService.CreateQuestion(levelID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, question)
}

// UpdateQuestion godoc
// @Summary      Update a question
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id path int true "Question ID"
// @Param        request body QuestionRequest true "Question data"
// @Success      200 {object} Question
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/questions/{id} [put]
func (h *QuestionHandler) UpdateQuestion(c *gin.Context) {
	questionID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req QuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	question, err := h.questionService.UpdateQuestion(questionID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, question)
}

// DeleteQuestion godoc
// @Summary      Delete a question
// @Tags         admin
// @Param        id path int true "Question ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/questions/{id} [delete]
func (h *QuestionHandler) DeleteQuestion(c *gin.Context) {
	questionID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.questionService.DeleteQuestion(questionID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "question deleted"})
}
