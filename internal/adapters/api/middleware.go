package api

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

const (
	headerCache = "X-Cache"
	cacheHit    = "HIT"
	cacheMiss   = "MISS"
)

// requestLogger logs every request with its latency and cache outcome and
// feeds the request metrics.
func requestLogger(metrics MetricsCollector) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		elapsed := time.Since(start)
		status := c.Writer.Status()
		cache := c.Writer.Header().Get(headerCache)

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		slog.Info("Request completed",
			"method", c.Request.Method,
			"path", c.Request.URL.RequestURI(),
			"status", status,
			"latency_ms", elapsed.Milliseconds(),
			"cache_hit", cache == cacheHit)

		if metrics != nil {
			metrics.ObserveRequest(c.Request.Method, route, status, cache, elapsed)
		}
	}
}
