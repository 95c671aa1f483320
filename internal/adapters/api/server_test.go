package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catalogapi.app/internal/core/catalog"
	"catalogapi.app/internal/ports"
	"catalogapi.app/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProductUseCase struct {
	list catalog.Result[[]catalog.Product]
}

func (s *stubProductUseCase) GetProduct(context.Context, string) (catalog.Result[*catalog.Product], error) {
	return catalog.Result[*catalog.Product]{}, errors.NewNotFoundError("Product not found")
}

func (s *stubProductUseCase) ListProducts(context.Context, catalog.ListQuery) (catalog.Result[[]catalog.Product], error) {
	return s.list, nil
}

func (s *stubProductUseCase) CreateProduct(context.Context, catalog.ProductInput) (*catalog.Product, error) {
	return nil, errors.NewDatabaseError("not implemented", nil)
}

func (s *stubProductUseCase) UpdateProduct(context.Context, string, catalog.ProductInput) (*catalog.Product, error) {
	return nil, errors.NewDatabaseError("not implemented", nil)
}

func (s *stubProductUseCase) DeleteProduct(context.Context, string) error {
	return errors.NewDatabaseError("not implemented", nil)
}

type recordedRequest struct {
	method, route, cache string
	status               int
}

type stubMetricsCollector struct {
	requests []recordedRequest
}

func (s *stubMetricsCollector) ObserveRequest(method, route string, status int, cache string, _ time.Duration) {
	s.requests = append(s.requests, recordedRequest{method: method, route: route, cache: cache, status: status})
}

func (s *stubMetricsCollector) GetMetrics(context.Context) (map[string]interface{}, error) {
	return map[string]interface{}{"cache": map[string]interface{}{"hits": 1}}, nil
}

type stubHealthChecker struct {
	results map[string]ports.HealthStatus
}

func (s stubHealthChecker) CheckAll(context.Context) map[string]ports.HealthStatus {
	return s.results
}

func newTestServer(t *testing.T, health map[string]ports.HealthStatus) (*HTTPServerAdapter, *stubMetricsCollector) {
	gin.SetMode(gin.TestMode)

	metrics := &stubMetricsCollector{}
	server, err := NewHTTPServerAdapter(ServerOptions{
		Config: ServerConfig{Port: 8080},
		ProductUseCase: &stubProductUseCase{list: catalog.Result[[]catalog.Product]{
			Payload: []byte(`[]`),
			Source:  catalog.SourceCache,
		}},
		MetricsCollector: metrics,
		HealthChecker:    stubHealthChecker{results: health},
	})
	require.NoError(t, err)
	return server, metrics
}

func TestNewHTTPServerAdapter_Validation(t *testing.T) {
	tests := []struct {
		name string
		opts ServerOptions
	}{
		{"MissingUseCase", ServerOptions{MetricsCollector: &stubMetricsCollector{}, HealthChecker: stubHealthChecker{}}},
		{"MissingMetrics", ServerOptions{ProductUseCase: &stubProductUseCase{}, HealthChecker: stubHealthChecker{}}},
		{"MissingHealth", ServerOptions{ProductUseCase: &stubProductUseCase{}, MetricsCollector: &stubMetricsCollector{}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, err := NewHTTPServerAdapter(tt.opts)

			assert.Nil(t, server)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestHTTPServerAdapter_Routes(t *testing.T) {
	server, metrics := newTestServer(t, map[string]ports.HealthStatus{
		"database": {Component: "database", Status: "healthy"},
	})
	router := server.GetRouter()

	for _, path := range []string{"/products", "/api/products"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest("GET", path, nil))

		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "HIT", w.Header().Get("X-Cache"), path)
		assert.Equal(t, "[]", w.Body.String(), path)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest("GET", "/api/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"hits":1`)

	require.NotEmpty(t, metrics.requests)
	assert.Equal(t, recordedRequest{method: "GET", route: "/products", cache: "HIT", status: 200}, metrics.requests[0])
	assert.Equal(t, "/api/products", metrics.requests[1].route)
}

func TestHTTPServerAdapter_Health(t *testing.T) {
	t.Run("DegradedCacheIsHealthy", func(t *testing.T) {
		server, _ := newTestServer(t, map[string]ports.HealthStatus{
			"database": {Component: "database", Status: "healthy"},
			"cache":    {Component: "cache", Status: "degraded", Error: "redis ping failed"},
		})

		w := httptest.NewRecorder()
		server.GetRouter().ServeHTTP(w, httptest.NewRequest("GET", "/api/health", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		var response HealthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, "healthy", response.Status)
		assert.Equal(t, "degraded", response.Components["cache"].Status)
	})

	t.Run("DatabaseDown", func(t *testing.T) {
		server, _ := newTestServer(t, map[string]ports.HealthStatus{
			"database": {Component: "database", Status: "unhealthy"},
		})

		w := httptest.NewRecorder()
		server.GetRouter().ServeHTTP(w, httptest.NewRequest("GET", "/api/health", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
