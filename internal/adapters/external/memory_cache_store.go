package external

import (
	"context"
	"strings"
	"time"

	"catalogapi.app/internal/config"
	"catalogapi.app/pkg/errors"
	"github.com/viccon/sturdyc"
)

// entries carry their own deadline so every Set can choose its TTL
const memoryStoreMaxTTL = 24 * time.Hour

type memoryCacheItem struct {
	data      []byte
	expiresAt time.Time
}

// MemoryCacheStore implements the CacheStore port with an in-process sharded sturdyc cache
type MemoryCacheStore struct {
	client *sturdyc.Client[memoryCacheItem]
	now    func() time.Time
}

// NewMemoryCacheStore creates an in-process cache sized from cfg
func NewMemoryCacheStore(cfg *config.CacheConfig) (*MemoryCacheStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}
	if cfg.Capacity < 1 || cfg.NumShards < 1 || cfg.EvictionPercent < 1 || cfg.EvictionPercent > 100 {
		return nil, errors.NewConfigurationError("invalid memory cache sizing", nil)
	}

	client := sturdyc.New[memoryCacheItem](
		cfg.Capacity,
		cfg.NumShards,
		memoryStoreMaxTTL,
		cfg.EvictionPercent,
	)

	return &MemoryCacheStore{
		client: client,
		now:    time.Now,
	}, nil
}

func (c *MemoryCacheStore) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.NewValidationError("cache key cannot be empty")
	}

	item, ok := c.client.Get(key)
	if !ok {
		return nil, errors.NewNotFoundError("cache miss")
	}
	if !c.now().Before(item.expiresAt) {
		c.client.Delete(key)
		return nil, errors.NewNotFoundError("cache miss")
	}

	return item.data, nil
}

func (c *MemoryCacheStore) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if key == "" {
		return errors.NewValidationError("cache key cannot be empty")
	}
	if value == nil {
		return errors.NewValidationError("cache value cannot be nil")
	}
	if ttl <= 0 {
		return errors.NewValidationError("cache TTL must be positive")
	}
	if ttl > memoryStoreMaxTTL {
		ttl = memoryStoreMaxTTL
	}

	data := make([]byte, len(value))
	copy(data, value)

	c.client.Set(key, memoryCacheItem{
		data:      data,
		expiresAt: c.now().Add(ttl),
	})
	return nil
}

func (c *MemoryCacheStore) Delete(ctx context.Context, keys ...string) (int64, error) {
	var deleted int64
	for _, key := range keys {
		if c.remove(key) {
			deleted++
		}
	}
	return deleted, nil
}

// remove drops key and reports whether it still held a live entry
func (c *MemoryCacheStore) remove(key string) bool {
	item, ok := c.client.Get(key)
	c.client.Delete(key)
	return ok && c.now().Before(item.expiresAt)
}

// DeleteByPattern removes every key with the pattern's prefix when it ends in '*',
// or the single matching key otherwise.
func (c *MemoryCacheStore) DeleteByPattern(ctx context.Context, pattern string) (int64, error) {
	if pattern == "" {
		return 0, errors.NewValidationError("cache pattern cannot be empty")
	}

	prefix, wildcard := strings.CutSuffix(pattern, "*")
	if !wildcard {
		return c.Delete(ctx, pattern)
	}

	var deleted int64
	for _, key := range c.client.ScanKeys() {
		if strings.HasPrefix(key, prefix) && c.remove(key) {
			deleted++
		}
	}
	return deleted, nil
}

func (c *MemoryCacheStore) Ping(ctx context.Context) error {
	return nil
}

func (c *MemoryCacheStore) Close() error {
	return nil
}

// Size returns the number of stored entries, expired ones included
func (c *MemoryCacheStore) Size() int {
	return c.client.Size()
}
