package infrastructure

import (
	"catalogapi.app/internal/config"
	"catalogapi.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetCacheConfig returns the cache settings that are safe to expose
func (c *ConfigProviderAdapter) GetCacheConfig() ports.CacheConfig {
	cacheConfig := ports.CacheConfig{
		Type:      c.config.Cache.Type.String(),
		KeyPrefix: c.config.Cache.KeyPrefix,
		TTL:       c.config.Cache.TTL(),
		WriteMode: string(c.config.Cache.WriteMode),
	}
	if c.config.Cache.Type == config.CacheTypeRedis {
		cacheConfig.RedisAddr = c.config.Cache.Redis.Addr
	}
	return cacheConfig
}
