// Package api provides HTTP adapters for the hexagonal architecture
// These adapters handle incoming HTTP requests and translate them to use cases
package api

import (
	"context"
	"time"

	"catalogapi.app/internal/core/catalog"
	"catalogapi.app/internal/ports"
	"catalogapi.app/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ServerConfig represents HTTP server configuration
type ServerConfig struct {
	Port int
}

// HTTPServerAdapter implements HTTP server using Gin framework
type HTTPServerAdapter struct {
	router           *gin.Engine
	config           ServerConfig
	productUseCase   ProductUseCase
	metricsCollector MetricsCollector
	healthChecker    ports.SystemHealthChecker
	gatherer         prometheus.Gatherer
}

// ProductUseCase is the catalog behaviour the HTTP adapter depends on
type ProductUseCase interface {
	GetProduct(ctx context.Context, id string) (catalog.Result[*catalog.Product], error)
	ListProducts(ctx context.Context, query catalog.ListQuery) (catalog.Result[[]catalog.Product], error)
	CreateProduct(ctx context.Context, input catalog.ProductInput) (*catalog.Product, error)
	UpdateProduct(ctx context.Context, id string, input catalog.ProductInput) (*catalog.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type MetricsCollector interface {
	ObserveRequest(method, route string, status int, cache string, elapsed time.Duration)
	GetMetrics(ctx context.Context) (map[string]interface{}, error)
}

// ServerOptions represents options for creating the HTTP server
type ServerOptions struct {
	Config           ServerConfig
	ProductUseCase   ProductUseCase
	MetricsCollector MetricsCollector
	HealthChecker    ports.SystemHealthChecker
	// Gatherer backs /metrics; the default Prometheus registry when nil
	Gatherer prometheus.Gatherer
}

// NewHTTPServerAdapter creates a new HTTP server adapter
func NewHTTPServerAdapter(opts ServerOptions) (*HTTPServerAdapter, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(opts.MetricsCollector))

	server := &HTTPServerAdapter{
		router:           router,
		config:           opts.Config,
		productUseCase:   opts.ProductUseCase,
		metricsCollector: opts.MetricsCollector,
		healthChecker:    opts.HealthChecker,
		gatherer:         opts.Gatherer,
	}
	if server.gatherer == nil {
		server.gatherer = prometheus.DefaultGatherer
	}

	server.setupRoutes()
	return server, nil
}

// Validate checks if all required dependencies are provided
func (opts *ServerOptions) Validate() error {
	if opts.ProductUseCase == nil {
		return errors.NewValidationError("product use case is required")
	}
	if opts.MetricsCollector == nil {
		return errors.NewValidationError("metrics collector is required")
	}
	if opts.HealthChecker == nil {
		return errors.NewValidationError("health checker is required")
	}
	return nil
}

// setupRoutes configures all HTTP routes. Products are served both at the
// root and under /api.
func (s *HTTPServerAdapter) setupRoutes() {
	s.registerProductRoutes(s.router.Group("/products"))

	api := s.router.Group("/api")
	{
		s.registerProductRoutes(api.Group("/products"))
		api.GET("/health", s.getHealth)
		api.GET("/metrics", s.getMetrics)
	}

	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
}

func (s *HTTPServerAdapter) registerProductRoutes(group *gin.RouterGroup) {
	group.GET("", s.listProducts)
	group.GET("/:id", s.getProduct)
	group.POST("", s.createProduct)
	group.PUT("/:id", s.updateProduct)
	group.DELETE("/:id", s.deleteProduct)
}

// GetRouter returns the router for testing purposes
func (s *HTTPServerAdapter) GetRouter() *gin.Engine {
	return s.router
}
