package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catalogapi.app/internal/ports"
	"catalogapi.app/pkg/errors"
)

// GetProduct reads a single product through the cache
func (uc *UseCase) GetProduct(ctx context.Context, id string) (Result[*Product], error) {
	key := uc.keys.ForRequest(ReadRequest{ID: id})

	var cached Product
	if payload, ok := uc.lookup(ctx, key, &cached, func() bool { return cached.ID != "" }); ok {
		return Result[*Product]{Value: &cached, Payload: payload, Source: SourceCache}, nil
	}

	data, err := uc.repo.FindByID(ctx, id)
	if o := storeOutcome(err); o.isHard() {
		if errors.IsNotFoundError(o.err) {
			uc.logger.Debug("Product not found", ports.F("id", id))
		} else {
			uc.logger.Error("Failed to load product", ports.F("id", id), ports.F("error", o.err))
		}
		return Result[*Product]{}, fmt.Errorf("get product %s: %w", id, o.err)
	}

	product := productFromData(data)
	payload, err := json.Marshal(product)
	if err != nil {
		return Result[*Product]{}, fmt.Errorf("encode product %s: %w", id, err)
	}

	uc.populate(ctx, key, payload)
	return Result[*Product]{Value: &product, Payload: payload, Source: SourceStore}, nil
}

// ListProducts reads a filtered or unfiltered collection through the cache.
// An empty collection is a valid result and is cached like any other.
func (uc *UseCase) ListProducts(ctx context.Context, query ListQuery) (Result[[]Product], error) {
	key := uc.keys.ForRequest(ReadRequest{Params: query.Params})

	var cached []Product
	if payload, ok := uc.lookup(ctx, key, &cached, func() bool { return cached != nil }); ok {
		return Result[[]Product]{Value: cached, Payload: payload, Source: SourceCache}, nil
	}

	data, err := uc.repo.FindAll(ctx, query.Filter.toPorts())
	if o := storeOutcome(err); o.isHard() {
		uc.logger.Error("Failed to list products", ports.F("key", key), ports.F("error", o.err))
		return Result[[]Product]{}, fmt.Errorf("list products: %w", o.err)
	}

	products := make([]Product, 0, len(data))
	for _, d := range data {
		products = append(products, productFromData(d))
	}

	payload, err := json.Marshal(products)
	if err != nil {
		return Result[[]Product]{}, fmt.Errorf("encode products: %w", err)
	}

	uc.populate(ctx, key, payload)
	return Result[[]Product]{Value: products, Payload: payload, Source: SourceStore}, nil
}

// lookup decodes a cached payload into target. Any failure along the way counts as a miss.
func (uc *UseCase) lookup(ctx context.Context, key string, target interface{}, valid func() bool) ([]byte, bool) {
	start := time.Now()
	payload, err := uc.cache.Get(ctx, key)
	uc.metrics.RecordOperation("get", time.Since(start))

	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.metrics.RecordMiss()
			uc.logger.Debug("Cache miss", ports.F("key", key))
			return nil, false
		}
		if o := cacheOutcome(err); o.isSoft() {
			uc.metrics.RecordError("get")
			uc.logger.Warn("Cache read failed, falling back to store",
				ports.F("key", key),
				ports.F("error", o.err))
		}
		return nil, false
	}

	if err := json.Unmarshal(payload, target); err != nil || !valid() {
		uc.metrics.RecordError("decode")
		uc.metrics.RecordMiss()
		uc.logger.Warn("Ignoring malformed cache entry",
			ports.F("key", key),
			ports.F("error", err))
		return nil, false
	}

	uc.metrics.RecordHit()
	uc.logger.Debug("Cache hit", ports.F("key", key))
	return payload, true
}

// populate stores payload under key, inline or in the background depending on configuration
func (uc *UseCase) populate(ctx context.Context, key string, payload []byte) {
	if !uc.asyncPopulate {
		uc.store(ctx, key, payload)
		return
	}

	uc.pending.Add(1)
	go func() {
		defer uc.pending.Done()
		bgCtx, cancel := uc.detached(ctx)
		defer cancel()
		uc.store(bgCtx, key, payload)
	}()
}

func (uc *UseCase) store(ctx context.Context, key string, payload []byte) {
	start := time.Now()
	err := uc.cache.Set(ctx, key, payload, uc.ttl)
	uc.metrics.RecordOperation("set", time.Since(start))

	if o := cacheOutcome(err); o.isSoft() {
		uc.metrics.RecordError("set")
		uc.logger.Warn("Failed to cache read result",
			ports.F("key", key),
			ports.F("error", o.err))
	}
}
