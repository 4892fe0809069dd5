package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"gopredict/internal/repository"
	"gopredict/internal/service"
)

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondError sends an error response with the appropriate HTTP status code.
func respondError(c *gin.Context, err error) {
	code := mapErrorToHTTPStatus(err)
	c.JSON(code, ErrorResponse{Error: err.Error()})
}

// respondJSON sends a JSON response with the given status code.
func respondJSON(c *gin.Context, code int, data any) {
	c.JSON(code, data)
}

// mapErrorToHTTPStatus maps service/repository errors to HTTP status codes.
func mapErrorToHTTPStatus(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, repository.ErrNotFound):
		return http.StatusNotFound

	// Validation errors - Bad Request
	case errors.Is(err, service.ErrSameLocation),
		errors.Is(err, service.ErrCrossCity),
		errors.Is(err, service.ErrMissingRequiredField),
		errors.Is(err, service.ErrInvalidCity),
		errors.Is(err, service.ErrInvalidTripID),
		errors.Is(err, service.ErrInvalidOwnerID),
		errors.Is(err, service.ErrEmptyProfileUpdate):
		return http.StatusBadRequest

	// Conflict errors - an operation of this class is already outstanding
	case errors.Is(err, service.ErrPredictionInFlight),
		errors.Is(err, service.ErrDeleteInProgress),
		errors.Is(err, service.ErrNoPendingDelete),
		errors.Is(err, service.ErrProfileSaveInFlight):
		return http.StatusConflict

	// Upstream failures
	case errors.Is(err, service.ErrPredictionUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, service.ErrTripDeleteFailed):
		return http.StatusBadGateway

	// Default to internal server error
	default:
		return http.StatusInternalServerError
	}
}
