package catalog

import (
	"context"
	"fmt"
	"time"

	"catalogapi.app/internal/ports"
	"catalogapi.app/pkg/errors"
)

// CreateProduct persists a new product, then drops every collection key
func (uc *UseCase) CreateProduct(ctx context.Context, input ProductInput) (*Product, error) {
	input.Normalize()
	if err := input.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid product: " + err.Error())
	}

	data := input.toData()
	if o := storeOutcome(uc.repo.Create(ctx, data)); o.isHard() {
		uc.logger.Error("Failed to create product", ports.F("name", input.Name), ports.F("error", o.err))
		return nil, fmt.Errorf("create product: %w", o.err)
	}

	uc.invalidate(ctx, "create", uc.keys.AllKey())

	product := productFromData(data)
	uc.logger.Info("Product created", ports.F("id", product.ID))
	return &product, nil
}

// UpdateProduct replaces the fields of an existing product, then drops its own key and every collection key
func (uc *UseCase) UpdateProduct(ctx context.Context, id string, input ProductInput) (*Product, error) {
	input.Normalize()
	if err := input.IsValid(); err != nil {
		return nil, errors.NewValidationError("invalid product: " + err.Error())
	}

	if err := uc.ensureExists(ctx, id); err != nil {
		return nil, err
	}

	data, err := uc.repo.UpdateByID(ctx, id, input.toUpdate())
	if o := storeOutcome(err); o.isHard() {
		uc.logger.Error("Failed to update product", ports.F("id", id), ports.F("error", o.err))
		return nil, fmt.Errorf("update product %s: %w", id, o.err)
	}

	uc.invalidate(ctx, "update", uc.keys.ForID(id), uc.keys.AllKey())

	product := productFromData(data)
	uc.logger.Info("Product updated", ports.F("id", id))
	return &product, nil
}

// DeleteProduct removes an existing product, then drops its own key and every collection key
func (uc *UseCase) DeleteProduct(ctx context.Context, id string) error {
	if err := uc.ensureExists(ctx, id); err != nil {
		return err
	}

	if o := storeOutcome(uc.repo.DeleteByID(ctx, id)); o.isHard() {
		uc.logger.Error("Failed to delete product", ports.F("id", id), ports.F("error", o.err))
		return fmt.Errorf("delete product %s: %w", id, o.err)
	}

	uc.invalidate(ctx, "delete", uc.keys.ForID(id), uc.keys.AllKey())

	uc.logger.Info("Product deleted", ports.F("id", id))
	return nil
}

// PurgeCache drops every key under the configured prefix. Unlike the write
// paths it reports cache failures, since purging is the whole point of the call.
func (uc *UseCase) PurgeCache(ctx context.Context) (int64, error) {
	deleted, err := uc.cache.DeleteByPattern(ctx, uc.keys.NamespacePattern())
	if err != nil {
		uc.metrics.RecordError("purge")
		return 0, fmt.Errorf("purge cache: %w", err)
	}
	uc.metrics.RecordInvalidation(deleted)
	uc.logger.Info("Cache purged", ports.F("pattern", uc.keys.NamespacePattern()), ports.F("deleted", deleted))
	return deleted, nil
}

func (uc *UseCase) ensureExists(ctx context.Context, id string) error {
	exists, err := uc.repo.Exists(ctx, id)
	if o := storeOutcome(err); o.isHard() {
		uc.logger.Error("Failed to check product existence", ports.F("id", id), ports.F("error", o.err))
		return fmt.Errorf("check product %s: %w", id, o.err)
	}
	if !exists {
		return errors.NewNotFoundError("Product not found")
	}
	return nil
}

// invalidate deletes the exact keys plus everything matching the query pattern.
// It runs detached from the request so a client disconnect cannot skip it.
func (uc *UseCase) invalidate(ctx context.Context, reason string, keys ...string) {
	ctx, cancel := uc.detached(ctx)
	defer cancel()

	start := time.Now()
	var total int64

	deleted, err := uc.cache.Delete(ctx, keys...)
	if o := cacheOutcome(err); o.isSoft() {
		uc.metrics.RecordError("invalidate")
		uc.logger.Warn("Failed to invalidate cache keys",
			ports.F("reason", reason),
			ports.F("keys", keys),
			ports.F("error", o.err))
	} else {
		total += deleted
	}

	pattern := uc.keys.QueryPattern()
	matched, err := uc.cache.DeleteByPattern(ctx, pattern)
	if o := cacheOutcome(err); o.isSoft() {
		uc.metrics.RecordError("invalidate")
		uc.logger.Warn("Failed to invalidate cache pattern",
			ports.F("reason", reason),
			ports.F("pattern", pattern),
			ports.F("error", o.err))
	} else {
		total += matched
	}

	uc.metrics.RecordOperation("invalidate", time.Since(start))
	uc.metrics.RecordInvalidation(total)
	uc.logger.Debug("Cache invalidated",
		ports.F("reason", reason),
		ports.F("deleted", total))
}
