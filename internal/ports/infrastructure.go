package ports

import "time"

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// CacheConfig represents the cache settings exposed to diagnostics
type CacheConfig struct {
	Type      string
	KeyPrefix string
	TTL       time.Duration
	WriteMode string
	RedisAddr string
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetServerConfig() ServerConfig
	GetCacheConfig() CacheConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}
