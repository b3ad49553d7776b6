package handlers

import (
	"net/http"

	"github.com/HumoyunMamasodiqov/level-test/internal/services"

	"github.com/gin-gonic/gin"
)

type LevelHandler struct {
	levelService *services.LevelService
}

func NewLevelHandler(levelService *services.LevelService) *LevelHandler {
	return &LevelHandler{levelService: levelService}
}

type LevelResponse struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Code          string `json:"code"`
	Description   string `json:"description"`
	TimeLimit     int    `json:"time_limit"`
	QuestionCount int    `json:"question_count"`
}

type LevelListResponse struct {
	Success bool            `json:"success"`
	Levels  []LevelResponse `json:"levels"`
}

// GetLevels godoc
// @Summary      List active levels
// @Description  Active difficulty levels ordered by rank
// @Tags         levels
// @Produce      json
// @Success      200 {object} LevelListResponse
// @Router       /api/levels/ [get]
func (h *LevelHandler) GetLevels(c *gin.Context) {
	levels, err := h.levelService.ListActive()
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]LevelResponse, 0, len(levels))
	for _, l := range levels {
		out = append(out, LevelResponse{
			ID:            l.ID,
			Name:          l.Name,
			Code:          l.Code,
			Description:   l.Description,
			TimeLimit:     l.TimeLimit,
			QuestionCount: l.QuestionCount,
		})
	}

	c.JSON(http.StatusOK, LevelListResponse{Success: true, Levels: out})
}

type LevelRequest struct {
	Name          string `json:"name" binding:"required"`
	Code          string `json:"code" binding:"required"`
	Order         int    `json:"order"`
	Description   string `json:"description"`
	TimeLimit     int    `json:"time_limit" binding:"required"`
	QuestionCount int    `json:"question_count" binding:"required"`
	IsActive      *bool  `json:"is_active"`
}

func (r LevelRequest) toInput() services.LevelInput {
	return services.LevelInput{
		Name:          r.Name,
		Code:          r.Code,
		Order:         r.Order,
		Description:   r.Description,
		TimeLimit:     r.TimeLimit,
		QuestionCount: r.QuestionCount,
		IsActive:      r.IsActive,
	}
}

// ListAllLevels godoc
// @Summary      List all levels
// @Tags         admin
// @Produce      json
// @Success      200 {array} Level
// @Router       /api/admin/levels [get]
func (h *LevelHandler) ListAllLevels(c *gin.Context) {
	levels, err := h.levelService.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, levels)
}

// CreateLevel godoc
// @Summary      Create a level
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        request body LevelRequest true "Level data"
// @Success      201 {object} Level
// @Failure      400 {object} ErrorResponse
// @Router       /api/admin/levels [post]
func (h *LevelHandler) CreateLevel(c *gin.Context) {
	var req LevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	level, err := h.levelService.Create(req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, level)
}

// UpdateLevel godoc
// @Summary      Update a level
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id path int true "Level ID"
// @Param        request body LevelRequest true "Level data"
// @Success      200 {object} Level
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/levels/{id} [put]
func (h *LevelHandler) UpdateLevel(c *gin.Context) {
	levelID, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req LevelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
		return
	}

	level, err := h.levelService.Update(levelID, req.toInput())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, level)
}

// DeleteLevel godoc
// @Summary      Delete a level
// @Tags         admin
// @Param        id path int true "Level ID"
// @Success      200 {object} MessageResponse
// @Failure      404 {object} ErrorResponse
// @Router       /api/admin/levels/{id} [delete]
func (h *LevelHandler) DeleteLevel(c *gin.Context) {
	levelID, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.levelService.Delete(levelID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "level deleted"})
}
