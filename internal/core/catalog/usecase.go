package catalog

import (
	"context"
	"sync"
	"time"

	"catalogapi.app/internal/ports"
	"catalogapi.app/pkg/errors"
)

const (
	// DefaultTTL applies when no expiry is configured
	DefaultTTL = 600 * time.Second
	// DefaultOpTimeout bounds cache calls that run detached from the request
	DefaultOpTimeout = 2 * time.Second
)

type UseCase struct {
	repo    ports.ProductRepository
	cache   ports.CacheStore
	logger  ports.Logger
	metrics ports.CacheMetrics

	keys          KeyDeriver
	ttl           time.Duration
	asyncPopulate bool
	opTimeout     time.Duration

	pending sync.WaitGroup
}

type UseCaseDependencies struct {
	Repository ports.ProductRepository
	Cache      ports.CacheStore
	Logger     ports.Logger
	Metrics    ports.CacheMetrics

	KeyPrefix     string
	TTL           time.Duration
	AsyncPopulate bool
	OpTimeout     time.Duration
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Repository == nil {
		return nil, errors.NewValidationError("product repository is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache store is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}
	if deps.KeyPrefix == "" {
		return nil, errors.NewValidationError("cache key prefix is required")
	}

	ttl := deps.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	opTimeout := deps.OpTimeout
	if opTimeout <= 0 {
		opTimeout = DefaultOpTimeout
	}

	return &UseCase{
		repo:          deps.Repository,
		cache:         deps.Cache,
		logger:        deps.Logger,
		metrics:       deps.Metrics,
		keys:          NewKeyDeriver(deps.KeyPrefix),
		ttl:           ttl,
		asyncPopulate: deps.AsyncPopulate,
		opTimeout:     opTimeout,
	}, nil
}

// Keys returns the key deriver the use case reads and invalidates with
func (uc *UseCase) Keys() KeyDeriver {
	return uc.keys
}

// WaitPending blocks until asynchronous cache writes have finished or ctx is done
func (uc *UseCase) WaitPending(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		uc.pending.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// detached returns a context that survives the caller's cancellation but is bounded by the op timeout
func (uc *UseCase) detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), uc.opTimeout)
}
