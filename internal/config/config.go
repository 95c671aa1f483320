package config

import (
	"fmt"
	"strings"
	"time"

	"catalogapi.app/pkg/errors"
	"github.com/kelseyhightower/envconfig"
	"github.com/robfig/cron/v3"
)

const (
	maxRedisDB          = 15
	maxCacheTTLSeconds  = 86400
	maxPortNumber       = 65535
	maxEvictionPercent  = 100
	defaultOpTimeoutSec = 2
)

// Config represents the application configuration structure
type Config struct {
	Server   ServerConfig   `split_words:"true"`
	Database DatabaseConfig `split_words:"true"`
	Cache    CacheConfig    `split_words:"true"`
	Log      LogConfig      `split_words:"true"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type DatabaseConfig struct {
	Host       string `envconfig:"DB_HOST" default:"localhost"`
	Port       int    `envconfig:"DB_PORT" default:"5432"`
	User       string `envconfig:"DB_USER" default:"postgres"`
	Password   string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name       string `envconfig:"DB_NAME" default:"catalog"`
	SSLMode    string `envconfig:"DB_SSL_MODE" default:"disable"`
	LogQueries bool   `envconfig:"DB_LOG_QUERIES" default:"false"`
}

func (c DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

// CacheType represents the type of cache to use
type CacheType int

const (
	CacheTypeUnknown CacheType = iota
	CacheTypeMemory
	CacheTypeRedis
)

// String returns the string representation of cache type
func (c CacheType) String() string {
	switch c {
	case CacheTypeMemory:
		return "memory"
	case CacheTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the cache type is valid
func (c CacheType) IsValid() bool {
	return c == CacheTypeMemory || c == CacheTypeRedis
}

// CacheTypeFromString converts string to CacheType enum
func CacheTypeFromString(s string) CacheType {
	switch s {
	case "memory":
		return CacheTypeMemory
	case "redis":
		return CacheTypeRedis
	default:
		return CacheTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (c *CacheType) UnmarshalText(text []byte) error {
	*c = CacheTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (c CacheType) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// WriteMode selects whether cache population blocks the read that triggered it
type WriteMode string

const (
	WriteModeSync  WriteMode = "sync"
	WriteModeAsync WriteMode = "async"
)

type CacheConfig struct {
	Type             CacheType   `envconfig:"CACHE_TYPE" default:"memory"`
	KeyPrefix        string      `envconfig:"CACHE_KEY_PREFIX" default:"product"`
	TTLSeconds       int         `envconfig:"CACHE_EXPIRY" default:"600"`
	WriteMode        WriteMode   `envconfig:"CACHE_WRITE_MODE" default:"sync"`
	OpTimeoutSeconds int         `envconfig:"CACHE_OP_TIMEOUT" default:"2"`
	WarmupSchedule   string      `envconfig:"CACHE_WARMUP_SCHEDULE" default:""`
	Capacity         int         `envconfig:"CACHE_CAPACITY" default:"10000"`
	NumShards        int         `envconfig:"CACHE_NUM_SHARDS" default:"64"`
	EvictionPercent  int         `envconfig:"CACHE_EVICTION_PERCENTAGE" default:"10"`
	Redis            RedisConfig `split_words:"true"`
}

// TTL returns the configured entry expiry
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// OpTimeout bounds a single cache round trip made outside the request context
func (c CacheConfig) OpTimeout() time.Duration {
	if c.OpTimeoutSeconds <= 0 {
		return defaultOpTimeoutSec * time.Second
	}
	return time.Duration(c.OpTimeoutSeconds) * time.Second
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
	ScanCount    int64  `envconfig:"REDIS_SCAN_COUNT" default:"100"`
}

type LogConfig struct {
	Level    string `envconfig:"LOG_LEVEL" default:"info"`
	FilePath string `envconfig:"LOG_FILE_PATH" default:""`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Cache.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (d *DatabaseConfig) Validate() error {
	if d.Host == "" {
		return errors.NewConfigurationError("DB_HOST cannot be empty", nil)
	}
	if d.Port < 1 || d.Port > maxPortNumber {
		return errors.NewConfigurationError("DB_PORT must be between 1 and 65535", nil)
	}
	if d.User == "" {
		return errors.NewConfigurationError("DB_USER cannot be empty", nil)
	}
	if d.Name == "" {
		return errors.NewConfigurationError("DB_NAME cannot be empty", nil)
	}
	return d.ValidateSSLMode()
}

func (d *DatabaseConfig) ValidateSSLMode() error {
	validSSLModes := []string{"disable", "require", "verify-ca", "verify-full"}
	for _, mode := range validSSLModes {
		if d.SSLMode == mode {
			return nil
		}
	}
	return errors.NewConfigurationError(
		fmt.Sprintf("DB_SSL_MODE must be one of: %s", strings.Join(validSSLModes, ", ")), nil)
}

func (c *CacheConfig) Validate() error {
	if !c.Type.IsValid() {
		return errors.NewConfigurationError("CACHE_TYPE must be one of: memory, redis", nil)
	}
	if strings.TrimSpace(c.KeyPrefix) == "" {
		return errors.NewConfigurationError("CACHE_KEY_PREFIX cannot be empty", nil)
	}
	if strings.ContainsAny(c.KeyPrefix, "*?[]") {
		return errors.NewConfigurationError("CACHE_KEY_PREFIX cannot contain glob characters", nil)
	}
	if c.TTLSeconds < 1 || c.TTLSeconds > maxCacheTTLSeconds {
		return errors.NewConfigurationError("CACHE_EXPIRY must be between 1 and 86400 seconds", nil)
	}
	if c.WriteMode != WriteModeSync && c.WriteMode != WriteModeAsync {
		return errors.NewConfigurationError("CACHE_WRITE_MODE must be one of: sync, async", nil)
	}
	if c.WarmupSchedule != "" {
		if _, err := cron.ParseStandard(c.WarmupSchedule); err != nil {
			return errors.NewConfigurationError("CACHE_WARMUP_SCHEDULE must be a cron expression", err)
		}
	}

	if c.Type == CacheTypeMemory {
		if c.Capacity < 1 {
			return errors.NewConfigurationError("CACHE_CAPACITY must be at least 1", nil)
		}
		if c.NumShards < 1 {
			return errors.NewConfigurationError("CACHE_NUM_SHARDS must be at least 1", nil)
		}
		if c.EvictionPercent < 1 || c.EvictionPercent > maxEvictionPercent {
			return errors.NewConfigurationError("CACHE_EVICTION_PERCENTAGE must be between 1 and 100", nil)
		}
	}

	if c.Type == CacheTypeRedis {
		return c.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis cache", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	if r.ScanCount < 1 {
		return errors.NewConfigurationError("REDIS_SCAN_COUNT must be at least 1", nil)
	}
	return nil
}
