//go:build integration

package app

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"catalogapi.app/internal/config"
	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	postgresPort nat.Port = "5432/tcp"
	redisPort    nat.Port = "6379/tcp"
)

func startContainer(t *testing.T, req testcontainers.ContainerRequest, port nat.Port) (string, int) {
	t.Helper()
	ctx := context.Background()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err, "failed to start %s container", req.Image)
	t.Cleanup(func() {
		_ = container.Terminate(ctx)
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	mapped, err := container.MappedPort(ctx, port)
	require.NoError(t, err)

	return host, mapped.Int()
}

func setupIntegrationApplication(t *testing.T) *Application {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	pgHost, pgMapped := startContainer(t, testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{string(postgresPort)},
		Env: map[string]string{
			"POSTGRES_USER":     "catalog",
			"POSTGRES_PASSWORD": "catalog",
			"POSTGRES_DB":       "catalog",
		},
		WaitingFor: wait.ForAll(
			wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			wait.ForListeningPort(postgresPort),
		),
	}, postgresPort)

	redisHost, redisMapped := startContainer(t, testcontainers.ContainerRequest{
		Image:        "redis:7-alpine",
		ExposedPorts: []string{string(redisPort)},
		WaitingFor:   wait.ForLog("Ready to accept connections"),
	}, redisPort)

	cfg := testConfig()
	cfg.Database = config.DatabaseConfig{
		Host:     pgHost,
		Port:     pgMapped,
		User:     "catalog",
		Password: "catalog",
		Name:     "catalog",
		SSLMode:  "disable",
	}
	cfg.Cache.Type = config.CacheTypeRedis
	cfg.Cache.Redis = config.RedisConfig{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisMapped),
		DialTimeout:  5,
		ReadTimeout:  3,
		WriteTimeout: 3,
		ScanCount:    2,
	}
	require.NoError(t, cfg.Validate())

	deps, err := NewDependencyContainer(DependencyConfig{
		Database: cfg.Database,
		Cache:    cfg.Cache,
		Log:      cfg.Log,
		Registry: prometheus.NewRegistry(),
	}, cfg)
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	app, err := NewApplicationWithDependencies(cfg, deps)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = app.Shutdown(context.Background())
	})
	return app
}

func TestIntegration_PostgresAndRedis(t *testing.T) {
	app := setupIntegrationApplication(t)
	ctx := context.Background()

	result, err := SeedCatalog(ctx, app.Config(), app.deps)
	require.NoError(t, err)
	require.Equal(t, 10, result.Products)

	t.Run("PriceRangeIsCachedPerParameterSet", func(t *testing.T) {
		first := doRequest(t, app, http.MethodGet, "/api/products?price_min=50&price_max=200", nil)
		require.Equal(t, http.StatusOK, first.Code)
		assert.Equal(t, "MISS", first.Header().Get("X-Cache"))

		var products []struct {
			Name string `json:"name"`
		}
		require.NoError(t, json.Unmarshal(first.Body.Bytes(), &products))
		assert.Len(t, products, 4)

		reordered := doRequest(t, app, http.MethodGet, "/api/products?price_max=200&price_min=50", nil)
		assert.Equal(t, "HIT", reordered.Header().Get("X-Cache"))
		assert.Equal(t, first.Body.String(), reordered.Body.String())
	})

	t.Run("UpdateInvalidatesEntityAndQueries", func(t *testing.T) {
		list := doRequest(t, app, http.MethodGet, "/api/products?category=books", nil)
		var books []struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(list.Body.Bytes(), &books))
		require.Len(t, books, 1)
		id := books[0].ID

		doRequest(t, app, http.MethodGet, "/api/products/"+id, nil)
		hit := doRequest(t, app, http.MethodGet, "/api/products/"+id, nil)
		assert.Equal(t, "HIT", hit.Header().Get("X-Cache"))

		update := productBody("Novel, second edition")
		update["category"] = "books"
		w := doRequest(t, app, http.MethodPut, "/api/products/"+id, update)
		require.Equal(t, http.StatusOK, w.Code)

		after := doRequest(t, app, http.MethodGet, "/api/products/"+id, nil)
		assert.Equal(t, "MISS", after.Header().Get("X-Cache"))
		assert.Contains(t, after.Body.String(), "second edition")

		query := doRequest(t, app, http.MethodGet, "/api/products?category=books", nil)
		assert.Equal(t, "MISS", query.Header().Get("X-Cache"))
	})

	t.Run("DeleteIsNeverServedFromCache", func(t *testing.T) {
		w := doRequest(t, app, http.MethodPost, "/api/products", productBody("Phone"))
		require.Equal(t, http.StatusCreated, w.Code)
		var created struct {
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

		doRequest(t, app, http.MethodGet, "/api/products/"+created.ID, nil)

		w = doRequest(t, app, http.MethodDelete, "/api/products/"+created.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		w = doRequest(t, app, http.MethodGet, "/api/products/"+created.ID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Health", func(t *testing.T) {
		w := doRequest(t, app, http.MethodGet, "/api/health", nil)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"dialect":"postgres"`)
	})
}
