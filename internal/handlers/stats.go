package handlers

import (
	"net/http"

	"github.com/HumoyunMamasodiqov/level-test/internal/services"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	statsService *services.StatsService
}

func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

type StatisticsResponse struct {
	Success    bool                `json:"success"`
	Statistics services.Statistics `json:"statistics"`
}

// GetStatistics godoc
// @Summary      Aggregate statistics
// @Description  Session counts and average scores, overall and per level
// @Tags         results
// @Produce      json
// @Success      200 {object} StatisticsResponse
// @Router       /api/statistics/ [get]
func (h *StatsHandler) GetStatistics(c *gin.Context) {
	stats, err := h.statsService.Statistics()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, StatisticsResponse{Success: true, Statistics: *stats})
}

type ResultListResponse struct {
	Success bool                     `json:"success"`
	Results []services.ResultSummary `json:"results"`
}

// GetRecentResults godoc
// @Summary      Recent results
// @Description  Most recent results, newest first, capped at 100
// @Tags         results
// @Produce      json
// @Success      200 {object} ResultListResponse
// @Router       /api/results/ [get]
func (h *StatsHandler) GetRecentResults(c *gin.Context) {
	results, err := h.statsService.RecentResults()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ResultListResponse{Success: true, Results: results})
}
