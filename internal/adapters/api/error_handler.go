package api

import (
	"errors"
	"net/http"

	"log/slog"

	errorspkg "catalogapi.app/pkg/errors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleError handles different types of application errors
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errorspkg.AppError
	var statusCode int
	var message string

	if !errors.As(err, &appErr) {
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
		c.JSON(statusCode, ErrorResponse{Error: message})
		return
	}

	switch appErr.Type {
	case errorspkg.ValidationError:
		statusCode = http.StatusBadRequest
		message = appErr.Message
	case errorspkg.NotFoundError:
		statusCode = http.StatusNotFound
		message = appErr.Message
	case errorspkg.CacheError:
		statusCode = http.StatusServiceUnavailable
		message = "Cache unavailable"
	case errorspkg.DatabaseError:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	default:
		statusCode = http.StatusInternalServerError
		message = "Internal server error"
	}

	c.JSON(statusCode, ErrorResponse{Error: message})
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	slog.Debug("Metrics endpoint called")

	metrics, err := s.metricsCollector.GetMetrics(c.Request.Context())
	if err != nil {
		slog.Error("Error getting metrics", "error", err)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}
