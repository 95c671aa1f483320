package database

import (
	"context"
	"time"

	"catalogapi.app/internal/ports"
)

// ProductRepositoryLoggingDecorator logs the duration and outcome of every repository call
type ProductRepositoryLoggingDecorator struct {
	repo   ports.ProductRepository
	logger ports.Logger
}

// NewProductRepositoryLoggingDecorator wraps repo with query logging
func NewProductRepositoryLoggingDecorator(repo ports.ProductRepository, logger ports.Logger) ports.ProductRepository {
	return &ProductRepositoryLoggingDecorator{
		repo:   repo,
		logger: logger,
	}
}

func (d *ProductRepositoryLoggingDecorator) FindAll(ctx context.Context, filter ports.ProductFilter) ([]*ports.ProductData, error) {
	start := time.Now()
	products, err := d.repo.FindAll(ctx, filter)
	d.log("find_all", start, err, ports.F("rows", len(products)))
	return products, err
}

func (d *ProductRepositoryLoggingDecorator) FindByID(ctx context.Context, id string) (*ports.ProductData, error) {
	start := time.Now()
	product, err := d.repo.FindByID(ctx, id)
	d.log("find_by_id", start, err, ports.F("id", id))
	return product, err
}

func (d *ProductRepositoryLoggingDecorator) Exists(ctx context.Context, id string) (bool, error) {
	start := time.Now()
	exists, err := d.repo.Exists(ctx, id)
	d.log("exists", start, err, ports.F("id", id), ports.F("exists", exists))
	return exists, err
}

func (d *ProductRepositoryLoggingDecorator) Create(ctx context.Context, product *ports.ProductData) error {
	start := time.Now()
	err := d.repo.Create(ctx, product)
	var id string
	if product != nil {
		id = product.ID
	}
	d.log("create", start, err, ports.F("id", id))
	return err
}

func (d *ProductRepositoryLoggingDecorator) UpdateByID(ctx context.Context, id string, update ports.ProductUpdate) (*ports.ProductData, error) {
	start := time.Now()
	product, err := d.repo.UpdateByID(ctx, id, update)
	d.log("update_by_id", start, err, ports.F("id", id))
	return product, err
}

func (d *ProductRepositoryLoggingDecorator) DeleteByID(ctx context.Context, id string) error {
	start := time.Now()
	err := d.repo.DeleteByID(ctx, id)
	d.log("delete_by_id", start, err, ports.F("id", id))
	return err
}

func (d *ProductRepositoryLoggingDecorator) log(operation string, start time.Time, err error, fields ...ports.Field) {
	fields = append(fields,
		ports.F("operation", operation),
		ports.F("duration_ms", time.Since(start).Milliseconds()))

	if err != nil {
		d.logger.Warn("DB query failed", append(fields, ports.F("error", err.Error()))...)
		return
	}
	d.logger.Info("DB query completed", fields...)
}
