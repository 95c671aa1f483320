package infrastructure

import (
	"context"

	"catalogapi.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusDegraded  = "degraded"
	statusUnhealthy = "unhealthy"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	databaseChecker ports.DatabaseHealthChecker
	cacheChecker    ports.CacheHealthChecker
	configProvider  ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	DatabaseChecker ports.DatabaseHealthChecker
	CacheChecker    ports.CacheHealthChecker
	ConfigProvider  ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		databaseChecker: config.DatabaseChecker,
		cacheChecker:    config.CacheChecker,
		configProvider:  config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.databaseChecker != nil {
		results["database"] = s.databaseChecker.Check(ctx)
	}

	if s.cacheChecker != nil {
		results["cache"] = s.cacheChecker.Check(ctx)
	}

	if s.configProvider != nil {
		cacheConfig := s.configProvider.GetCacheConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details: map[string]interface{}{
				"cacheType":  cacheConfig.Type,
				"keyPrefix":  cacheConfig.KeyPrefix,
				"writeMode":  cacheConfig.WriteMode,
				"ttlSeconds": int64(cacheConfig.TTL.Seconds()),
			},
		}
	}

	return results
}
