package ports

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// ProductData represents product data for persistence
type ProductData struct {
	ID          string
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int
	Available   bool
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductFilter carries the optional predicates of a collection query. Nil means unconstrained.
type ProductFilter struct {
	Category  *string
	PriceMin  *decimal.Decimal
	PriceMax  *decimal.Decimal
	Available *bool
}

// ProductUpdate holds replacement values for an existing product.
// Nil pointers leave the stored value untouched.
type ProductUpdate struct {
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int
	Available   *bool
	ImageURL    *string
}

// ProductRepository defines the contract for product persistence
type ProductRepository interface {
	FindAll(ctx context.Context, filter ProductFilter) ([]*ProductData, error)
	FindByID(ctx context.Context, id string) (*ProductData, error)
	Exists(ctx context.Context, id string) (bool, error)
	Create(ctx context.Context, product *ProductData) error
	UpdateByID(ctx context.Context, id string, update ProductUpdate) (*ProductData, error)
	DeleteByID(ctx context.Context, id string) error
}
