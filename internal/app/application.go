package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"catalogapi.app/internal/adapters/api"
	"catalogapi.app/internal/adapters/infrastructure"
	"catalogapi.app/internal/config"
	"catalogapi.app/internal/core/catalog"
	"catalogapi.app/internal/ports"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

var registerValidators = api.RegisterValidators

type Application struct {
	config *config.Config

	// Use Cases
	catalogUseCase *catalog.UseCase

	// Adapters
	httpServer *http.Server
	router     *gin.Engine

	// Infrastructure
	deps      *DependencyContainer
	ports     *ports.ApplicationPorts
	scheduler *cron.Cron
}

func NewApplication() (*Application, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	app := &Application{config: cfg}

	if err := app.initializePorts(); err != nil {
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	if err := app.initialize(); err != nil {
		_ = app.deps.Cleanup()
		return nil, err
	}

	return app, nil
}

// NewApplicationWithDependencies creates an application with provided dependencies (for testing)
func NewApplicationWithDependencies(cfg *config.Config, depContainer *DependencyContainer) (*Application, error) {
	app := &Application{
		config: cfg,
		deps:   depContainer,
		ports:  depContainer.ApplicationPorts(),
	}

	if err := app.initialize(); err != nil {
		return nil, err
	}

	return app, nil
}

func (a *Application) initialize() error {
	if err := a.initializeUseCases(); err != nil {
		return fmt.Errorf("initialize use cases: %w", err)
	}

	if err := a.initializeAdapters(); err != nil {
		return fmt.Errorf("initialize adapters: %w", err)
	}

	if err := a.initializeScheduler(); err != nil {
		return fmt.Errorf("initialize scheduler: %w", err)
	}

	return nil
}

func (a *Application) initializePorts() error {
	slog.Info("Initializing application ports...")

	deps, err := NewDependencyContainer(DependencyConfig{
		Database: a.config.Database,
		Cache:    a.config.Cache,
		Log:      a.config.Log,
	}, a.config)
	if err != nil {
		return fmt.Errorf("create dependency container: %w", err)
	}

	a.deps = deps
	a.ports = deps.ApplicationPorts()
	slog.Info("Application ports initialized successfully")
	return nil
}

func (a *Application) initializeUseCases() error {
	slog.Info("Initializing use cases...")

	catalogUseCase, err := catalog.NewUseCase(catalog.UseCaseDependencies{
		Repository:    a.ports.ProductRepository,
		Cache:         a.ports.CacheStore,
		Logger:        a.ports.Logger,
		Metrics:       a.ports.CacheMetrics,
		KeyPrefix:     a.config.Cache.KeyPrefix,
		TTL:           a.config.Cache.TTL(),
		AsyncPopulate: a.config.Cache.WriteMode == config.WriteModeAsync,
		OpTimeout:     a.config.Cache.OpTimeout(),
	})
	if err != nil {
		return fmt.Errorf("create catalog use case: %w", err)
	}
	a.catalogUseCase = catalogUseCase

	slog.Info("Use cases initialized successfully")
	return nil
}

func (a *Application) initializeAdapters() error {
	slog.Info("Initializing adapters...")

	// binding panics on an unregistered tag
	if err := registerValidators(); err != nil {
		return fmt.Errorf("register request validators: %w", err)
	}

	metricsCollector := infrastructure.NewMetricsCollectorAdapter(infrastructure.MetricsCollectorConfig{
		CacheMetrics:   a.ports.CacheMetrics,
		ConfigProvider: a.ports.ConfigProvider,
		Registerer:     a.deps.Registerer(),
	})

	databaseHealthChecker := infrastructure.NewDatabaseHealthChecker(a.ports.Database.(*gorm.DB))
	cacheHealthChecker := infrastructure.NewCacheHealthChecker(a.ports.CacheStore, a.config.Cache.Type.String())

	systemHealthChecker := infrastructure.NewSystemHealthChecker(infrastructure.SystemHealthCheckerConfig{
		DatabaseChecker: databaseHealthChecker,
		CacheChecker:    cacheHealthChecker,
		ConfigProvider:  a.ports.ConfigProvider,
	})

	httpAdapter, err := api.NewHTTPServerAdapter(api.ServerOptions{
		Config: api.ServerConfig{
			Port: a.config.Server.Port,
		},
		ProductUseCase:   a.catalogUseCase,
		MetricsCollector: metricsCollector,
		HealthChecker:    systemHealthChecker,
		Gatherer:         a.deps.Gatherer(),
	})
	if err != nil {
		return fmt.Errorf("create HTTP adapter: %w", err)
	}

	a.router = httpAdapter.GetRouter()

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", a.config.Server.Port),
		Handler:      a.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	slog.Info("Adapters initialized successfully")
	return nil
}

// initializeScheduler registers the cache warm-up job when a schedule is configured
func (a *Application) initializeScheduler() error {
	schedule := a.config.Cache.WarmupSchedule
	if schedule == "" {
		return nil
	}

	scheduler := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := scheduler.AddFunc(schedule, func() {
		a.WarmCache(context.Background())
	}); err != nil {
		return fmt.Errorf("schedule cache warm-up %q: %w", schedule, err)
	}

	a.scheduler = scheduler
	slog.Info("Cache warm-up scheduled", "schedule", schedule)
	return nil
}

// WarmCache reads the unfiltered product list through the cache so the
// collection entry is repopulated after invalidations.
func (a *Application) WarmCache(ctx context.Context) {
	start := time.Now()

	result, err := a.catalogUseCase.ListProducts(ctx, catalog.ListQuery{})
	if err != nil {
		slog.Error("Cache warm-up failed", "error", err)
		return
	}

	slog.Info("Cache warm-up completed",
		"products", len(result.Value),
		"source", string(result.Source),
		"duration_ms", time.Since(start).Milliseconds())
}

func (a *Application) Start(ctx context.Context) error {
	slog.Info("Starting application...")

	if a.scheduler != nil {
		a.scheduler.Start()
		slog.Info("Cache warm-up scheduler started")
	}

	slog.Info("Starting HTTP server", "port", a.config.Server.Port)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	return nil
}

func (a *Application) Shutdown(ctx context.Context) error {
	slog.Info("Shutting down application...")

	if a.scheduler != nil {
		select {
		case <-a.scheduler.Stop().Done():
		case <-ctx.Done():
		}
	}

	if err := a.httpServer.Shutdown(ctx); err != nil {
		slog.Error("Error shutting down HTTP server", "error", err)
		return fmt.Errorf("shutdown HTTP server: %w", err)
	}

	// async cache writes still hold the store
	if err := a.catalogUseCase.WaitPending(ctx); err != nil {
		slog.Warn("Pending cache writes did not finish", "error", err)
	}

	if a.deps != nil {
		if err := a.deps.Cleanup(); err != nil {
			slog.Warn("Error releasing resources", "error", err)
		}
	}

	slog.Info("Application shutdown complete")
	return nil
}

// Config returns the application configuration
func (a *Application) Config() *config.Config {
	return a.config
}

// GetRouter returns the Gin router for testing
func (a *Application) GetRouter() *gin.Engine {
	return a.router
}

// GetCatalogUseCase returns the catalog use case for testing
func (a *Application) GetCatalogUseCase() *catalog.UseCase {
	return a.catalogUseCase
}
