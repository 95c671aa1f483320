package infrastructure

import (
	"sync"
	"time"

	"catalogapi.app/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusCacheMetrics implements the CacheMetrics port. Counters are exported to
// Prometheus and mirrored in memory for the JSON metrics endpoint.
type PrometheusCacheMetrics struct {
	cacheType string

	hits          *prometheus.CounterVec
	misses        *prometheus.CounterVec
	errors        *prometheus.CounterVec
	invalidations *prometheus.CounterVec
	latency       *prometheus.HistogramVec
	hitRatio      *prometheus.GaugeVec

	mu          sync.RWMutex
	stats       ports.CacheStats
	lastUpdated time.Time
}

// NewPrometheusCacheMetrics registers the cache collectors with reg
func NewPrometheusCacheMetrics(reg prometheus.Registerer, cacheType string) *PrometheusCacheMetrics {
	factory := promauto.With(reg)

	return &PrometheusCacheMetrics{
		cacheType: cacheType,
		hits: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_cache_hits_total",
				Help: "The total number of cache hits",
			},
			[]string{"cache_type"},
		),
		misses: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_cache_misses_total",
				Help: "The total number of cache misses",
			},
			[]string{"cache_type"},
		),
		errors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_cache_errors_total",
				Help: "Cache operations that failed and were tolerated",
			},
			[]string{"cache_type", "operation"},
		),
		invalidations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "catalog_cache_invalidated_keys_total",
				Help: "Keys removed by write invalidation and purges",
			},
			[]string{"cache_type"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "catalog_cache_duration_seconds",
				Help:    "Cache operation duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"cache_type", "operation"},
		),
		hitRatio: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "catalog_cache_hit_ratio",
				Help: "Cache hit ratio (hits/total lookups)",
			},
			[]string{"cache_type"},
		),
	}
}

func (m *PrometheusCacheMetrics) RecordHit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stats.Hits++
	m.stats.TotalOps++
	m.hits.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

func (m *PrometheusCacheMetrics) RecordMiss() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stats.Misses++
	m.stats.TotalOps++
	m.misses.WithLabelValues(m.cacheType).Inc()
	m.updateHitRatio()
}

func (m *PrometheusCacheMetrics) RecordError(operation string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stats.Errors++
	m.lastUpdated = time.Now()
	m.errors.WithLabelValues(m.cacheType, operation).Inc()
}

func (m *PrometheusCacheMetrics) RecordInvalidation(deleted int64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stats.InvalidatedKeys += deleted
	m.lastUpdated = time.Now()
	m.invalidations.WithLabelValues(m.cacheType).Add(float64(deleted))
}

func (m *PrometheusCacheMetrics) RecordOperation(operation string, duration time.Duration) {
	m.latency.WithLabelValues(m.cacheType, operation).Observe(duration.Seconds())
}

// GetStats returns a snapshot of the in-memory counters
func (m *PrometheusCacheMetrics) GetStats() ports.CacheStats {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stats := m.stats
	if stats.TotalOps > 0 {
		stats.HitRatio = float64(stats.Hits) / float64(stats.TotalOps)
	}
	stats.LastUpdated = m.lastUpdated
	return stats
}

// updateHitRatio updates the Prometheus hit ratio gauge.
// Must be called while holding the mutex.
func (m *PrometheusCacheMetrics) updateHitRatio() {
	m.lastUpdated = time.Now()
	if m.stats.TotalOps > 0 {
		ratio := float64(m.stats.Hits) / float64(m.stats.TotalOps)
		m.hitRatio.WithLabelValues(m.cacheType).Set(ratio)
	}
}
