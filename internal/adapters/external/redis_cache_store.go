package external

import (
	"context"
	stderrors "errors"
	"strings"
	"time"

	"catalogapi.app/internal/config"
	"catalogapi.app/pkg/errors"
	"github.com/go-redis/redis/v8"
)

const (
	defaultScanCount = 100
	deleteBatchSize  = 500
)

var redisGlobEscaper = strings.NewReplacer(`\`, `\\`, `*`, `\*`, `?`, `\?`, `[`, `\[`, `]`, `\]`)

// RedisCacheStore implements the CacheStore port using Redis
type RedisCacheStore struct {
	client    *redis.Client
	scanCount int64
}

// NewRedisCacheStore connects to Redis and verifies the connection
func NewRedisCacheStore(cfg *config.RedisConfig) (*RedisCacheStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("redis config cannot be nil", nil)
	}

	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.NewCacheError("failed to connect to Redis", err)
	}

	scanCount := cfg.ScanCount
	if scanCount <= 0 {
		scanCount = defaultScanCount
	}

	return &RedisCacheStore{
		client:    client,
		scanCount: scanCount,
	}, nil
}

// Get retrieves a value from Redis
func (r *RedisCacheStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if stderrors.Is(err, redis.Nil) {
			return nil, errors.NewNotFoundError("cache miss")
		}
		return nil, errors.NewCacheError("redis get operation failed", err)
	}

	return val, nil
}

// Set stores a value in Redis with TTL
func (r *RedisCacheStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}

	if err := r.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return errors.NewCacheError("redis set operation failed", err)
	}

	return nil
}

// Delete removes the given keys and returns how many existed
func (r *RedisCacheStore) Delete(ctx context.Context, keys ...string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	deleted, err := r.client.Del(ctx, keys...).Result()
	if err != nil {
		return 0, errors.NewCacheError("redis delete operation failed", err)
	}

	return deleted, nil
}

// DeleteByPattern collects every match with SCAN, then deletes them in batches.
// Deleting while the cursor is still moving can skip keys, and KEYS is never
// used since it blocks the server for the whole scan.
func (r *RedisCacheStore) DeleteByPattern(ctx context.Context, pattern string) (int64, error) {
	if pattern == "" {
		return 0, errors.NewValidationError("cache pattern cannot be empty")
	}

	keys, err := r.scanKeys(ctx, toRedisMatch(pattern))
	if err != nil {
		return 0, err
	}

	var deleted int64
	for start := 0; start < len(keys); start += deleteBatchSize {
		end := min(start+deleteBatchSize, len(keys))
		n, err := r.client.Del(ctx, keys[start:end]...).Result()
		if err != nil {
			return deleted, errors.NewCacheError("redis delete operation failed", err)
		}
		deleted += n
	}

	return deleted, nil
}

// scanKeys walks the whole key space once. SCAN may return a key more than once.
func (r *RedisCacheStore) scanKeys(ctx context.Context, match string) ([]string, error) {
	var (
		cursor uint64
		keys   []string
	)
	seen := make(map[string]struct{})

	for {
		batch, next, err := r.client.Scan(ctx, cursor, match, r.scanCount).Result()
		if err != nil {
			return nil, errors.NewCacheError("redis scan operation failed", err)
		}

		for _, key := range batch {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			keys = append(keys, key)
		}

		cursor = next
		if cursor == 0 {
			return keys, nil
		}
	}
}

// Ping checks if Redis connection is alive
func (r *RedisCacheStore) Ping(ctx context.Context) error {
	if err := r.client.Ping(ctx).Err(); err != nil {
		return errors.NewCacheError("redis ping failed", err)
	}
	return nil
}

// Close closes the Redis client connection
func (r *RedisCacheStore) Close() error {
	if err := r.client.Close(); err != nil {
		return errors.NewCacheError("failed to close Redis connection", err)
	}
	return nil
}

// toRedisMatch turns a store pattern into a SCAN MATCH glob. Only a trailing
// '*' stays a wildcard; glob metacharacters before it are escaped.
func toRedisMatch(pattern string) string {
	literal, wildcard := strings.CutSuffix(pattern, "*")
	match := redisGlobEscaper.Replace(literal)
	if wildcard {
		match += "*"
	}
	return match
}
