package app

import (
	"context"
	"fmt"
	"log/slog"

	"catalogapi.app/internal/adapters/database"
	"catalogapi.app/internal/config"
	"catalogapi.app/internal/core/catalog"
)

// SeedResult reports what a seed run changed
type SeedResult struct {
	Products    int
	CacheKeys   int64
	CachePurged bool
}

// SeedCatalog replaces every stored product with the sample catalog and then
// drops all cache entries under the configured prefix. A cache failure is
// reported in the result without undoing the seed.
func SeedCatalog(ctx context.Context, cfg *config.Config, deps *DependencyContainer) (SeedResult, error) {
	var result SeedResult

	products := database.SampleProducts()
	repo := database.NewProductRepositoryAdapter(deps.Database())
	if err := repo.ReplaceAll(ctx, products); err != nil {
		return result, fmt.Errorf("replace products: %w", err)
	}
	result.Products = len(products)
	slog.Info("Database seeded with sample products", "count", result.Products)

	p := deps.ApplicationPorts()
	uc, err := catalog.NewUseCase(catalog.UseCaseDependencies{
		Repository: p.ProductRepository,
		Cache:      p.CacheStore,
		Logger:     p.Logger,
		Metrics:    p.CacheMetrics,
		KeyPrefix:  cfg.Cache.KeyPrefix,
		TTL:        cfg.Cache.TTL(),
		OpTimeout:  cfg.Cache.OpTimeout(),
	})
	if err != nil {
		return result, fmt.Errorf("create catalog use case: %w", err)
	}

	deleted, err := uc.PurgeCache(ctx)
	if err != nil {
		slog.Warn("Cache purge after seeding failed", "error", err)
		return result, nil
	}
	result.CacheKeys = deleted
	result.CachePurged = true
	return result, nil
}
