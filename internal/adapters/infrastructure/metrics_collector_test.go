package infrastructure

import (
	"context"
	"testing"
	"time"

	"catalogapi.app/internal/config"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsCollectorAdapter(t *testing.T) {
	reg := prometheus.NewRegistry()
	cacheMetrics := NewPrometheusCacheMetrics(reg, "memory")
	cacheMetrics.RecordHit()
	cacheMetrics.RecordMiss()
	cacheMetrics.RecordInvalidation(3)

	collector := NewMetricsCollectorAdapter(MetricsCollectorConfig{
		CacheMetrics: cacheMetrics,
		ConfigProvider: NewConfigProviderAdapter(&config.Config{
			Cache: config.CacheConfig{
				Type:       config.CacheTypeMemory,
				KeyPrefix:  "product",
				TTLSeconds: 600,
				WriteMode:  config.WriteModeSync,
			},
		}),
		Registerer: reg,
	})

	collector.ObserveRequest("GET", "/products", 200, "HIT", 5*time.Millisecond)
	collector.ObserveRequest("GET", "/products", 200, "HIT", 5*time.Millisecond)
	collector.ObserveRequest("POST", "/products", 201, "", 5*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(collector.requests.WithLabelValues("GET", "/products", "200", "HIT")))
	assert.Equal(t, 1.0, testutil.ToFloat64(collector.requests.WithLabelValues("POST", "/products", "201", "none")))

	metrics, err := collector.GetMetrics(context.Background())
	require.NoError(t, err)

	cache, ok := metrics["cache"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, int64(1), cache["hits"])
	assert.Equal(t, 0.5, cache["hit_ratio"])
	assert.Equal(t, int64(3), cache["invalidated_keys"])

	cfg, ok := metrics["config"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "product", cfg["key_prefix"])
	assert.Equal(t, int64(600), cfg["ttl_seconds"])
}
