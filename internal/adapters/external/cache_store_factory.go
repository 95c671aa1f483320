package external

import (
	"fmt"

	"catalogapi.app/internal/config"
	"catalogapi.app/internal/ports"
	"catalogapi.app/pkg/errors"
)

type CacheStoreFactory struct{}

func NewCacheStoreFactory() *CacheStoreFactory {
	return &CacheStoreFactory{}
}

func (f *CacheStoreFactory) CreateCacheStore(cfg *config.CacheConfig) (ports.CacheStore, error) {
	if cfg == nil {
		return nil, errors.NewConfigurationError("cache config cannot be nil", nil)
	}

	switch cfg.Type {
	case config.CacheTypeMemory:
		store, err := NewMemoryCacheStore(cfg)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.CacheTypeRedis:
		store, err := NewRedisCacheStore(&cfg.Redis)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, errors.NewConfigurationError(
			fmt.Sprintf("unsupported cache type: %s", cfg.Type.String()), nil)
	}
}
