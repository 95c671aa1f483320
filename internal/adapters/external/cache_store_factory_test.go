package external

import (
	"testing"

	"catalogapi.app/internal/config"
	"catalogapi.app/pkg/errors"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheStoreFactory_CreateCacheStore(t *testing.T) {
	factory := NewCacheStoreFactory()
	mockRedis := miniredis.RunT(t)

	tests := []struct {
		name        string
		config      *config.CacheConfig
		expectError bool
		assertType  func(t *testing.T, store interface{})
	}{
		{
			name:        "NilConfig",
			config:      nil,
			expectError: true,
		},
		{
			name: "MemoryCache",
			config: &config.CacheConfig{
				Type:            config.CacheTypeMemory,
				Capacity:        100,
				NumShards:       2,
				EvictionPercent: 10,
			},
			assertType: func(t *testing.T, store interface{}) {
				assert.IsType(t, &MemoryCacheStore{}, store)
			},
		},
		{
			name: "RedisCache",
			config: &config.CacheConfig{
				Type: config.CacheTypeRedis,
				Redis: config.RedisConfig{
					Addr:         mockRedis.Addr(),
					DialTimeout:  5,
					ReadTimeout:  3,
					WriteTimeout: 3,
				},
			},
			assertType: func(t *testing.T, store interface{}) {
				assert.IsType(t, &RedisCacheStore{}, store)
			},
		},
		{
			name: "UnknownCacheType",
			config: &config.CacheConfig{
				Type: config.CacheTypeUnknown,
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := factory.CreateCacheStore(tt.config)

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, store)
				assert.True(t, errors.IsConfigurationError(err))
				return
			}

			require.NoError(t, err)
			tt.assertType(t, store)
			assert.NoError(t, store.Close())
		})
	}
}
