package ports

import (
	"context"
	"time"
)

// CacheStore defines the contract for the key/value store fronting the catalog.
// A miss is reported as a NotFoundError so callers can tell it apart from a failure.
type CacheStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) (int64, error)
	// DeleteByPattern removes every live key matching pattern. Only a trailing '*' is a wildcard.
	DeleteByPattern(ctx context.Context, pattern string) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

// CacheStats represents cache performance metrics
type CacheStats struct {
	Hits            int64
	Misses          int64
	Errors          int64
	TotalOps        int64
	HitRatio        float64
	InvalidatedKeys int64
	LastUpdated     time.Time
}

// CacheMetrics defines the contract for cache performance tracking
type CacheMetrics interface {
	GetStats() CacheStats
	RecordHit()
	RecordMiss()
	RecordError(operation string)
	RecordInvalidation(deleted int64)
	RecordOperation(operation string, duration time.Duration)
}
