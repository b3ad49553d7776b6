package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/HumoyunMamasodiqov/level-test/internal/models"
	"github.com/HumoyunMamasodiqov/level-test/internal/services"

	"github.com/gin-gonic/gin"
)

// Type aliases so swag can resolve models in annotations.
type Level = models.Level
type Question = models.Question

type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error" example:"something went wrong"`
}

type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message" example:"operation successful"`
}

func errorResponse(msg string) ErrorResponse {
	return ErrorResponse{Success: false, Error: msg}
}

// respondError maps service errors onto the API's status codes. Anything
// outside the known taxonomy becomes a generic 500 so internal detail stays
// out of responses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, errorResponse(err.Error()))
	case errors.Is(err, services.ErrLevelNotFound),
		errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrQuestionNotFound),
		errors.Is(err, services.ErrResultNotFound):
		c.JSON(http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, services.ErrAlreadySubmitted):
		c.JSON(http.StatusConflict, errorResponse(err.Error()))
	default:
		log.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, errorResponse("internal server error"))
	}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse("invalid id"))
		return 0, false
	}
	return uint(id), true
}
