package catalog

import (
	"context"
	stderrors "errors"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"catalogapi.app/internal/mocks"
	"catalogapi.app/internal/ports"
	"catalogapi.app/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testDeps struct {
	repo    *mocks.ProductRepository
	cache   *mocks.CacheStore
	logger  *mocks.Logger
	metrics *mocks.CacheMetrics
}

func newTestDeps(t *testing.T) testDeps {
	deps := testDeps{
		repo:    mocks.NewProductRepository(t),
		cache:   mocks.NewCacheStore(t),
		logger:  mocks.NewLogger(t),
		metrics: mocks.NewCacheMetrics(t),
	}

	// Allow logger calls with variadic arguments (1 to 4 fields)
	for _, args := range [][]interface{}{
		{mock.Anything, mock.Anything},
		{mock.Anything, mock.Anything, mock.Anything},
		{mock.Anything, mock.Anything, mock.Anything, mock.Anything},
		{mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything},
	} {
		deps.logger.EXPECT().Debug(args[0], args[1:]...).Maybe()
		deps.logger.EXPECT().Info(args[0], args[1:]...).Maybe()
		deps.logger.EXPECT().Warn(args[0], args[1:]...).Maybe()
		deps.logger.EXPECT().Error(args[0], args[1:]...).Maybe()
	}

	deps.metrics.EXPECT().RecordOperation(mock.Anything, mock.Anything).Maybe()
	deps.metrics.EXPECT().RecordInvalidation(mock.Anything).Maybe()

	return deps
}

func (d testDeps) useCase(t *testing.T, async bool) *UseCase {
	uc, err := NewUseCase(UseCaseDependencies{
		Repository:    d.repo,
		Cache:         d.cache,
		Logger:        d.logger,
		Metrics:       d.metrics,
		KeyPrefix:     "product",
		TTL:           time.Minute,
		AsyncPopulate: async,
	})
	require.NoError(t, err)
	return uc
}

func sampleData(id string) *ports.ProductData {
	created := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	return &ports.ProductData{
		ID:          id,
		Name:        "Phone",
		Description: "Smartphone",
		Category:    "electronic",
		Price:       decimal.NewFromInt(500),
		Stock:       10,
		Available:   true,
		CreatedAt:   created,
		UpdatedAt:   created,
	}
}

func sampleInput() ProductInput {
	return ProductInput{
		Name:        "Phone",
		Description: "Smartphone",
		Category:    "electronic",
		Price:       decimal.NewFromInt(500),
		Stock:       10,
	}
}

func TestNewUseCase_Validation(t *testing.T) {
	d := newTestDeps(t)

	tests := []struct {
		name   string
		mutate func(deps *UseCaseDependencies)
	}{
		{"MissingRepository", func(deps *UseCaseDependencies) { deps.Repository = nil }},
		{"MissingCache", func(deps *UseCaseDependencies) { deps.Cache = nil }},
		{"MissingLogger", func(deps *UseCaseDependencies) { deps.Logger = nil }},
		{"MissingMetrics", func(deps *UseCaseDependencies) { deps.Metrics = nil }},
		{"MissingPrefix", func(deps *UseCaseDependencies) { deps.KeyPrefix = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := UseCaseDependencies{
				Repository: d.repo,
				Cache:      d.cache,
				Logger:     d.logger,
				Metrics:    d.metrics,
				KeyPrefix:  "product",
			}
			tt.mutate(&deps)

			uc, err := NewUseCase(deps)

			assert.Nil(t, uc)
			assert.True(t, errors.IsValidationError(err))
		})
	}

	t.Run("Defaults", func(t *testing.T) {
		uc, err := NewUseCase(UseCaseDependencies{
			Repository: d.repo,
			Cache:      d.cache,
			Logger:     d.logger,
			Metrics:    d.metrics,
			KeyPrefix:  "product",
		})

		require.NoError(t, err)
		assert.Equal(t, DefaultTTL, uc.ttl)
		assert.Equal(t, DefaultOpTimeout, uc.opTimeout)
		assert.Equal(t, "product", uc.Keys().Prefix())
	})
}

func TestUseCase_GetProduct_MissThenPopulate(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, false)

	d.cache.EXPECT().Get(mock.Anything, "product:abc").Return(nil, errors.NewNotFoundError("cache miss"))
	d.metrics.EXPECT().RecordMiss().Once()
	d.repo.EXPECT().FindByID(mock.Anything, "abc").Return(sampleData("abc"), nil)

	var stored []byte
	d.cache.EXPECT().Set(mock.Anything, "product:abc", mock.Anything, time.Minute).
		Run(func(_ context.Context, _ string, value []byte, _ time.Duration) { stored = value }).
		Return(nil)

	result, err := uc.GetProduct(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, SourceStore, result.Source)
	assert.Equal(t, "Phone", result.Value.Name)
	assert.Equal(t, result.Payload, stored)
}

func TestUseCase_GetProduct_Hit(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, false)

	payload := []byte(`{"id":"abc","name":"Phone","description":"Smartphone","category":"electronic","price":500,"stock":10,"available":true,"createdAt":"2024-05-01T12:00:00Z","updatedAt":"2024-05-01T12:00:00Z"}`)
	d.cache.EXPECT().Get(mock.Anything, "product:abc").Return(payload, nil)
	d.metrics.EXPECT().RecordHit().Once()

	result, err := uc.GetProduct(context.Background(), "abc")

	require.NoError(t, err)
	assert.True(t, result.FromCache())
	assert.Equal(t, payload, result.Payload)
	assert.Equal(t, "abc", result.Value.ID)
	d.repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestUseCase_GetProduct_MalformedEntryIsMiss(t *testing.T) {
	for name, payload := range map[string][]byte{
		"NotJSON":    []byte("not-json"),
		"WrongShape": []byte(`[1,2,3]`),
		"NoID":       []byte(`{}`),
	} {
		t.Run(name, func(t *testing.T) {
			d := newTestDeps(t)
			uc := d.useCase(t, false)

			d.cache.EXPECT().Get(mock.Anything, "product:abc").Return(payload, nil)
			d.metrics.EXPECT().RecordError("decode").Once()
			d.metrics.EXPECT().RecordMiss().Once()
			d.repo.EXPECT().FindByID(mock.Anything, "abc").Return(sampleData("abc"), nil)
			d.cache.EXPECT().Set(mock.Anything, "product:abc", mock.Anything, time.Minute).Return(nil)

			result, err := uc.GetProduct(context.Background(), "abc")

			require.NoError(t, err)
			assert.Equal(t, SourceStore, result.Source)
		})
	}
}

func TestUseCase_GetProduct_CacheUnavailable(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, false)

	down := errors.NewCacheError("redis get operation failed", stderrors.New("connection refused"))
	d.cache.EXPECT().Get(mock.Anything, "product:abc").Return(nil, down)
	d.metrics.EXPECT().RecordError("get").Once()
	d.repo.EXPECT().FindByID(mock.Anything, "abc").Return(sampleData("abc"), nil)
	d.cache.EXPECT().Set(mock.Anything, "product:abc", mock.Anything, time.Minute).Return(down)
	d.metrics.EXPECT().RecordError("set").Once()

	result, err := uc.GetProduct(context.Background(), "abc")

	require.NoError(t, err)
	assert.Equal(t, SourceStore, result.Source)
	assert.Equal(t, "abc", result.Value.ID)
}

func TestUseCase_GetProduct_NotFoundIsNeverCached(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, false)

	d.cache.EXPECT().Get(mock.Anything, "product:missing").Return(nil, errors.NewNotFoundError("cache miss"))
	d.metrics.EXPECT().RecordMiss().Once()
	d.repo.EXPECT().FindByID(mock.Anything, "missing").Return(nil, errors.NewNotFoundError("Product not found"))

	_, err := uc.GetProduct(context.Background(), "missing")

	assert.True(t, errors.IsNotFoundError(err))
	d.cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_GetProduct_StoreFailureIsHard(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, false)

	d.cache.EXPECT().Get(mock.Anything, "product:abc").Return(nil, errors.NewNotFoundError("cache miss"))
	d.metrics.EXPECT().RecordMiss().Once()
	d.repo.EXPECT().FindByID(mock.Anything, "abc").Return(nil, stderrors.New("connection reset"))

	_, err := uc.GetProduct(context.Background(), "abc")

	assert.True(t, errors.IsDatabaseError(err))
}

func TestUseCase_ListProducts_EmptyResultIsCached(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, false)

	query, err := NewListQuery(url.Values{"category": {"nonexistent"}})
	require.NoError(t, err)

	key := "product:query:category=nonexistent"
	d.cache.EXPECT().Get(mock.Anything, key).Return(nil, errors.NewNotFoundError("cache miss"))
	d.metrics.EXPECT().RecordMiss().Once()
	d.repo.EXPECT().FindAll(mock.Anything, mock.MatchedBy(func(f ports.ProductFilter) bool {
		return f.Category != nil && *f.Category == "nonexistent" && f.PriceMin == nil
	})).Return([]*ports.ProductData{}, nil)
	d.cache.EXPECT().Set(mock.Anything, key, []byte("[]"), time.Minute).Return(nil)

	result, err := uc.ListProducts(context.Background(), query)

	require.NoError(t, err)
	assert.Equal(t, []byte("[]"), result.Payload)
	assert.Empty(t, result.Value)
}

func TestUseCase_ListProducts_HitOnEmptyList(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, false)

	d.cache.EXPECT().Get(mock.Anything, "product:all").Return([]byte("[]"), nil)
	d.metrics.EXPECT().RecordHit().Once()

	result, err := uc.ListProducts(context.Background(), ListQuery{})

	require.NoError(t, err)
	assert.True(t, result.FromCache())
	assert.Equal(t, []byte("[]"), result.Payload)
}

func TestUseCase_ListProducts_NullEntryIsMiss(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, false)

	d.cache.EXPECT().Get(mock.Anything, "product:all").Return([]byte("null"), nil)
	d.metrics.EXPECT().RecordError("decode").Once()
	d.metrics.EXPECT().RecordMiss().Once()
	d.repo.EXPECT().FindAll(mock.Anything, ports.ProductFilter{}).Return([]*ports.ProductData{sampleData("a")}, nil)
	d.cache.EXPECT().Set(mock.Anything, "product:all", mock.Anything, time.Minute).Return(nil)

	result, err := uc.ListProducts(context.Background(), ListQuery{})

	require.NoError(t, err)
	assert.Len(t, result.Value, 1)
}

func TestUseCase_AsyncPopulate(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, true)

	d.cache.EXPECT().Get(mock.Anything, "product:all").Return(nil, errors.NewNotFoundError("cache miss"))
	d.metrics.EXPECT().RecordMiss().Once()
	d.repo.EXPECT().FindAll(mock.Anything, ports.ProductFilter{}).Return([]*ports.ProductData{sampleData("a")}, nil)

	var stored atomic.Bool
	d.cache.EXPECT().Set(mock.Anything, "product:all", mock.Anything, time.Minute).
		Run(func(ctx context.Context, _ string, _ []byte, _ time.Duration) {
			// population runs detached from the request context
			assert.NoError(t, ctx.Err())
			stored.Store(true)
		}).
		Return(nil)

	ctx, cancel := context.WithCancel(context.Background())
	result, err := uc.ListProducts(ctx, ListQuery{})
	cancel()

	require.NoError(t, err)
	assert.Equal(t, SourceStore, result.Source)

	waitCtx, waitCancel := context.WithTimeout(context.Background(), time.Second)
	defer waitCancel()
	require.NoError(t, uc.WaitPending(waitCtx))
	assert.True(t, stored.Load())
}

func TestUseCase_CreateProduct_PersistThenInvalidate(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, false)

	create := d.repo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(_ context.Context, p *ports.ProductData) { p.ID = "new-id" }).
		Return(nil)
	del := d.cache.EXPECT().Delete(mock.Anything, "product:all").Return(1, nil)
	pattern := d.cache.EXPECT().DeleteByPattern(mock.Anything, "product:query:*").Return(3, nil)
	mock.InOrder(create.Call, del.Call, pattern.Call)

	product, err := uc.CreateProduct(context.Background(), sampleInput())

	require.NoError(t, err)
	assert.Equal(t, "new-id", product.ID)
	assert.True(t, product.Available)
	d.metrics.AssertCalled(t, "RecordInvalidation", int64(4))
}

func TestUseCase_CreateProduct_InvalidInput(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, false)

	input := sampleInput()
	input.Name = "  "

	_, err := uc.CreateProduct(context.Background(), input)

	assert.True(t, errors.IsValidationError(err))
	d.repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUseCase_CreateProduct_StoreFailureSkipsInvalidation(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, false)

	d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.NewDatabaseError("insert failed", nil))

	_, err := uc.CreateProduct(context.Background(), sampleInput())

	assert.True(t, errors.IsDatabaseError(err))
	d.cache.AssertNotCalled(t, "DeleteByPattern", mock.Anything, mock.Anything)
}

func TestUseCase_CreateProduct_InvalidationFailureIsSoft(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, false)

	down := errors.NewCacheError("redis unavailable", nil)
	d.repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	d.cache.EXPECT().Delete(mock.Anything, "product:all").Return(0, down)
	d.cache.EXPECT().DeleteByPattern(mock.Anything, "product:query:*").Return(0, down)
	d.metrics.EXPECT().RecordError("invalidate").Twice()

	product, err := uc.CreateProduct(context.Background(), sampleInput())

	require.NoError(t, err)
	assert.NotNil(t, product)
}

func TestUseCase_UpdateProduct(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, false)

	updated := sampleData("abc")
	updated.Name = "Phone X"

	exists := d.repo.EXPECT().Exists(mock.Anything, "abc").Return(true, nil)
	update := d.repo.EXPECT().UpdateByID(mock.Anything, "abc", mock.Anything).Return(updated, nil)
	del := d.cache.EXPECT().Delete(mock.Anything, "product:abc", "product:all").Return(2, nil)
	pattern := d.cache.EXPECT().DeleteByPattern(mock.Anything, "product:query:*").Return(0, nil)
	mock.InOrder(exists.Call, update.Call, del.Call, pattern.Call)

	input := sampleInput()
	input.Name = "Phone X"
	product, err := uc.UpdateProduct(context.Background(), "abc", input)

	require.NoError(t, err)
	assert.Equal(t, "Phone X", product.Name)
}

func TestUseCase_UpdateProduct_NotFoundBeforeMutation(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, false)

	d.repo.EXPECT().Exists(mock.Anything, "missing").Return(false, nil)

	_, err := uc.UpdateProduct(context.Background(), "missing", sampleInput())

	assert.True(t, errors.IsNotFoundError(err))
	d.repo.AssertNotCalled(t, "UpdateByID", mock.Anything, mock.Anything, mock.Anything)
	d.cache.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestUseCase_DeleteProduct(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, false)

	exists := d.repo.EXPECT().Exists(mock.Anything, "abc").Return(true, nil)
	remove := d.repo.EXPECT().DeleteByID(mock.Anything, "abc").Return(nil)
	del := d.cache.EXPECT().Delete(mock.Anything, "product:abc", "product:all").Return(1, nil)
	pattern := d.cache.EXPECT().DeleteByPattern(mock.Anything, "product:query:*").Return(2, nil)
	mock.InOrder(exists.Call, remove.Call, del.Call, pattern.Call)

	require.NoError(t, uc.DeleteProduct(context.Background(), "abc"))
}

func TestUseCase_DeleteProduct_NotFound(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, false)

	d.repo.EXPECT().Exists(mock.Anything, "missing").Return(false, nil)

	err := uc.DeleteProduct(context.Background(), "missing")

	assert.True(t, errors.IsNotFoundError(err))
	d.repo.AssertNotCalled(t, "DeleteByID", mock.Anything, mock.Anything)
}

func TestUseCase_DeleteProduct_ExistenceCheckFailure(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, false)

	d.repo.EXPECT().Exists(mock.Anything, "abc").Return(false, stderrors.New("connection reset"))

	err := uc.DeleteProduct(context.Background(), "abc")

	assert.True(t, errors.IsDatabaseError(err))
}

func TestUseCase_InvalidationSurvivesCancelledRequest(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, false)

	ctx, cancel := context.WithCancel(context.Background())

	d.repo.EXPECT().Exists(mock.Anything, "abc").Return(true, nil)
	d.repo.EXPECT().DeleteByID(mock.Anything, "abc").
		Run(func(context.Context, string) { cancel() }).
		Return(nil)
	d.cache.EXPECT().Delete(mock.Anything, "product:abc", "product:all").
		RunAndReturn(func(ctx context.Context, _ ...string) (int64, error) { return 0, ctx.Err() })
	d.cache.EXPECT().DeleteByPattern(mock.Anything, "product:query:*").
		RunAndReturn(func(ctx context.Context, _ string) (int64, error) { return 0, ctx.Err() })

	require.NoError(t, uc.DeleteProduct(ctx, "abc"))
	d.metrics.AssertNotCalled(t, "RecordError", "invalidate")
}

func TestUseCase_PurgeCache(t *testing.T) {
	d := newTestDeps(t)
	uc := d.useCase(t, false)

	d.cache.EXPECT().DeleteByPattern(mock.Anything, "product:*").Return(7, nil).Once()

	deleted, err := uc.PurgeCache(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(7), deleted)

	d.cache.EXPECT().DeleteByPattern(mock.Anything, "product:*").Return(0, errors.NewCacheError("down", nil)).Once()
	d.metrics.EXPECT().RecordError("purge").Once()

	_, err = uc.PurgeCache(context.Background())
	assert.True(t, errors.IsCacheError(err))
}
