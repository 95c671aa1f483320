package app

import (
	"fmt"
	"io"
	"log/slog"

	"catalogapi.app/internal/adapters/database"
	"catalogapi.app/internal/adapters/external"
	"catalogapi.app/internal/adapters/infrastructure"
	"catalogapi.app/internal/config"
	"catalogapi.app/internal/ports"
	"catalogapi.app/pkg/logger"
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type DependencyContainer struct {
	config DependencyConfig
	db     *gorm.DB
	ports  *ports.ApplicationPorts

	registerer prometheus.Registerer
	gatherer   prometheus.Gatherer
	closers    []io.Closer
}

type DependencyConfig struct {
	Database config.DatabaseConfig
	Cache    config.CacheConfig
	Log      config.LogConfig

	// DB replaces the Postgres connection when set
	DB *gorm.DB
	// Registry receives every collector; the default Prometheus registry when nil
	Registry *prometheus.Registry
}

func NewDependencyContainer(depConfig DependencyConfig, appConfig *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config:     depConfig,
		registerer: prometheus.DefaultRegisterer,
		gatherer:   prometheus.DefaultGatherer,
	}
	if depConfig.Registry != nil {
		container.registerer = depConfig.Registry
		container.gatherer = depConfig.Registry
	}

	if err := container.initializeDatabase(); err != nil {
		return nil, fmt.Errorf("initialize database: %w", err)
	}

	if err := container.initializePorts(appConfig); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializeDatabase() error {
	db := c.config.DB
	if db == nil {
		slog.Info("Initializing database connection...")

		opened, err := gorm.Open(postgres.Open(c.config.Database.GetDSN()), &gorm.Config{
			Logger: gormlogger.Default.LogMode(gormlogger.Silent),
		})
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		db = opened
	}

	if err := c.runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	c.db = db
	slog.Info("Database connection established successfully")
	return nil
}

func (c *DependencyContainer) runMigrations(db *gorm.DB) error {
	slog.Info("Running database migrations...")

	if err := db.AutoMigrate(database.Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	slog.Info("Database migrations completed successfully")
	return nil
}

func (c *DependencyContainer) initializePorts(appConfig *config.Config) error {
	slog.Info("Initializing ports...")

	var appLogger ports.Logger = infrastructure.NewSlogLoggerAdapter(slog.Default())

	if c.config.Log.FilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Log.FilePath, logger.ParseLevel(c.config.Log.Level))
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			appLogger = fileLogger
			c.closers = append(c.closers, fileLogger)
			slog.Info("File logging enabled", "path", c.config.Log.FilePath)
		}
	}

	var productRepo ports.ProductRepository = database.NewProductRepositoryAdapter(c.db)
	if c.config.Database.LogQueries {
		productRepo = database.NewProductRepositoryLoggingDecorator(productRepo, appLogger)
		slog.Info("Database query logging enabled")
	}

	cacheStore, err := external.NewCacheStoreFactory().CreateCacheStore(&c.config.Cache)
	if err != nil {
		slog.Error("Failed to create cache store", "error", err)
		return fmt.Errorf("create cache store: %w", err)
	}
	c.closers = append(c.closers, cacheStore)

	slog.Info("Cache store initialized",
		"type", c.config.Cache.Type.String(),
		"prefix", c.config.Cache.KeyPrefix,
		"write_mode", string(c.config.Cache.WriteMode))

	cacheMetrics := infrastructure.NewPrometheusCacheMetrics(c.registerer, c.config.Cache.Type.String())

	c.ports = &ports.ApplicationPorts{
		ProductRepository: productRepo,

		CacheStore:   cacheStore,
		CacheMetrics: cacheMetrics,

		ConfigProvider: infrastructure.NewConfigProviderAdapter(appConfig),
		Logger:         appLogger,
		Database:       c.db,
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

func (c *DependencyContainer) Database() *gorm.DB {
	return c.db
}

// Registerer returns the registry collectors are attached to
func (c *DependencyContainer) Registerer() prometheus.Registerer {
	return c.registerer
}

// Gatherer returns the registry served on /metrics
func (c *DependencyContainer) Gatherer() prometheus.Gatherer {
	return c.gatherer
}

// Cleanup closes the cache store, the log file and the database, in reverse order of creation
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil

	if c.db != nil {
		if db, err := c.db.DB(); err == nil {
			if err := db.Close(); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}
