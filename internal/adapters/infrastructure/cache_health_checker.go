package infrastructure

import (
	"context"
	"time"

	"catalogapi.app/internal/ports"
)

const cachePingTimeout = 2 * time.Second

// CacheHealthChecker reports whether the cache store answers a ping.
// An unreachable cache degrades the service but does not take it down.
type CacheHealthChecker struct {
	store     ports.CacheStore
	cacheType string
}

// NewCacheHealthChecker creates a new cache health checker
func NewCacheHealthChecker(store ports.CacheStore, cacheType string) *CacheHealthChecker {
	return &CacheHealthChecker{store: store, cacheType: cacheType}
}

func (c *CacheHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "cache",
		Details: map[string]interface{}{
			"type": c.cacheType,
		},
	}

	if c.store == nil {
		status.Status = statusUnhealthy
		status.Error = "cache store is not configured"
		return status
	}

	ctx, cancel := context.WithTimeout(ctx, cachePingTimeout)
	defer cancel()

	if err := c.store.Ping(ctx); err != nil {
		status.Status = statusDegraded
		status.Error = err.Error()
		return status
	}

	status.Status = statusHealthy
	return status
}
