package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: c.GetString("trace_id"),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString("trace_id"),
	})
}

// HandleServiceError maps service sentinel errors to HTTP statuses.
// Store and AI failures are logged with the trace id and surfaced as
// generic messages; the raw details never reach the client.
func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrTripNotFound):
		RespondError(c, http.StatusNotFound, "Trip not found")
	case errors.Is(err, ErrStopNotFound):
		RespondError(c, http.StatusNotFound, "Stop not found")
	case errors.Is(err, ErrActivityNotFound):
		RespondError(c, http.StatusNotFound, "Activity not found")
	case errors.Is(err, ErrInvalidInput):
		RespondError(c, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be between 1 and 100")
	case errors.Is(err, ErrUnauthenticated):
		RespondError(c, http.StatusUnauthorized, "Please sign in to continue")
	case errors.Is(err, ErrForbidden):
		RespondError(c, http.StatusForbidden, "You do not have access to this resource")
	case errors.Is(err, ErrWriteFailed):
		log.Printf("trace_id=%s write failed: %v", c.GetString("trace_id"), err)
		RespondError(c, http.StatusInternalServerError, "Failed to save changes")
	case errors.Is(err, ErrInvalidAIResponse):
		log.Printf("trace_id=%s ai response rejected: %v", c.GetString("trace_id"), err)
		RespondError(c, http.StatusInternalServerError, "Failed to generate itinerary")
	case errors.Is(err, ErrDatabaseError):
		log.Printf("trace_id=%s database error: %v", c.GetString("trace_id"), err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		log.Printf("trace_id=%s unknown error: %v", c.GetString("trace_id"), err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
