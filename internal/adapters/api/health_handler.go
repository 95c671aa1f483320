package api

import (
	"net/http"

	"catalogapi.app/internal/ports"
	"github.com/gin-gonic/gin"
)

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	Status     string                        `json:"status"`
	Components map[string]ports.HealthStatus `json:"components"`
}

// getHealth handles GET /api/health requests. A degraded cache keeps the
// service healthy since reads fall back to the store.
func (s *HTTPServerAdapter) getHealth(c *gin.Context) {
	components := s.healthChecker.CheckAll(c.Request.Context())

	response := HealthResponse{Status: "healthy", Components: components}
	for _, status := range components {
		if status.Status == "unhealthy" {
			response.Status = "unhealthy"
			break
		}
	}

	statusCode := http.StatusOK
	if response.Status != "healthy" {
		statusCode = http.StatusServiceUnavailable
	}
	c.JSON(statusCode, response)
}
