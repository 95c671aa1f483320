package infrastructure

import (
	"context"
	"strconv"
	"time"

	"catalogapi.app/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsCollectorAdapter implements the MetricsCollector interface for HTTPServerAdapter.
// It records request metrics and summarizes cache metrics for the JSON endpoint.
type MetricsCollectorAdapter struct {
	cacheMetrics   ports.CacheMetrics
	configProvider ports.ConfigProvider

	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// MetricsCollectorConfig holds configuration for creating the metrics collector
type MetricsCollectorConfig struct {
	CacheMetrics   ports.CacheMetrics
	ConfigProvider ports.ConfigProvider
	Registerer     prometheus.Registerer
}

// NewMetricsCollectorAdapter creates a new metrics collector adapter
func NewMetricsCollectorAdapter(config MetricsCollectorConfig) *MetricsCollectorAdapter {
	factory := promauto.With(config.Registerer)

	return &MetricsCollectorAdapter{
		cacheMetrics:   config.CacheMetrics,
		configProvider: config.ConfigProvider,
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_http_requests_total",
				Help: "HTTP requests by route, status and cache source",
			},
			[]string{"method", "route", "status", "cache"},
		),
		duration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),
	}
}

// ObserveRequest records one served HTTP request
func (m *MetricsCollectorAdapter) ObserveRequest(method, route string, status int, cache string, elapsed time.Duration) {
	if cache == "" {
		cache = "none"
	}
	m.requests.WithLabelValues(method, route, strconv.Itoa(status), cache).Inc()
	m.duration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// GetMetrics returns the cache summary and the active cache configuration
func (m *MetricsCollectorAdapter) GetMetrics(ctx context.Context) (map[string]interface{}, error) {
	metrics := make(map[string]interface{})

	if m.cacheMetrics != nil {
		stats := m.cacheMetrics.GetStats()
		metrics["cache"] = map[string]interface{}{
			"hits":             stats.Hits,
			"misses":           stats.Misses,
			"errors":           stats.Errors,
			"total_ops":        stats.TotalOps,
			"hit_ratio":        stats.HitRatio,
			"invalidated_keys": stats.InvalidatedKeys,
			"updated":          stats.LastUpdated,
		}
	}

	if m.configProvider != nil {
		cacheConfig := m.configProvider.GetCacheConfig()
		metrics["config"] = map[string]interface{}{
			"cache_type":  cacheConfig.Type,
			"key_prefix":  cacheConfig.KeyPrefix,
			"ttl_seconds": int64(cacheConfig.TTL.Seconds()),
			"write_mode":  cacheConfig.WriteMode,
		}
	}

	return metrics, nil
}
