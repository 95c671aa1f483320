package catalog

import (
	"fmt"
	"net/url"
	"time"

	"catalogapi.app/internal/ports"
	"catalogapi.app/pkg/errors"
	"catalogapi.app/pkg/validation"
	"github.com/shopspring/decimal"
)

// PriceScale is the number of decimal places a price may carry
const PriceScale = 2

// maxPrice is the first value that no longer fits a numeric(12,2) column
var maxPrice = decimal.New(1, 10)

func init() {
	// prices travel as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true
}

// Product represents a catalog entry as returned to callers and stored in the cache
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Price       decimal.Decimal `json:"price"`
	Stock       int             `json:"stock"`
	Available   bool            `json:"available"`
	ImageURL    string          `json:"imageUrl,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// ProductInput carries the writable fields of a product
type ProductInput struct {
	Name        string
	Description string
	Category    string
	Price       decimal.Decimal
	Stock       int
	Available   *bool
	ImageURL    *string
}

// Normalize trims surrounding whitespace from text fields
func (in *ProductInput) Normalize() {
	in.Name, _ = validation.TrimAndValidate(in.Name)
	in.Description, _ = validation.TrimAndValidate(in.Description)
	in.Category, _ = validation.TrimAndValidate(in.Category)
	if in.ImageURL != nil {
		trimmed, _ := validation.TrimAndValidate(*in.ImageURL)
		in.ImageURL = &trimmed
	}
}

// IsValid validates product input
func (in *ProductInput) IsValid() error {
	if !validation.IsNotEmpty(in.Name) {
		return fmt.Errorf("name cannot be empty")
	}
	if !validation.IsNotEmpty(in.Description) {
		return fmt.Errorf("description cannot be empty")
	}
	if !validation.IsNotEmpty(in.Category) {
		return fmt.Errorf("category cannot be empty")
	}
	if in.Price.IsNegative() {
		return fmt.Errorf("price must be non-negative")
	}
	// the store keeps prices as numeric(12,2)
	if !in.Price.Equal(in.Price.Truncate(PriceScale)) {
		return fmt.Errorf("price cannot have more than %d decimal places", PriceScale)
	}
	if in.Price.GreaterThanOrEqual(maxPrice) {
		return fmt.Errorf("price must be less than %s", maxPrice.String())
	}
	if in.Stock < 0 {
		return fmt.Errorf("stock must be non-negative")
	}
	return nil
}

func (in *ProductInput) toData() *ports.ProductData {
	data := &ports.ProductData{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		Available:   true,
	}
	if in.Available != nil {
		data.Available = *in.Available
	}
	if in.ImageURL != nil {
		data.ImageURL = *in.ImageURL
	}
	return data
}

func (in *ProductInput) toUpdate() ports.ProductUpdate {
	return ports.ProductUpdate{
		Name:        in.Name,
		Description: in.Description,
		Category:    in.Category,
		Price:       in.Price,
		Stock:       in.Stock,
		Available:   in.Available,
		ImageURL:    in.ImageURL,
	}
}

// Filter is the structured predicate of a collection query. Nil fields are unconstrained.
type Filter struct {
	Category  *string
	PriceMin  *decimal.Decimal
	PriceMax  *decimal.Decimal
	Available *bool
}

// IsEmpty reports whether the filter constrains nothing
func (f Filter) IsEmpty() bool {
	return f.Category == nil && f.PriceMin == nil && f.PriceMax == nil && f.Available == nil
}

func (f Filter) toPorts() ports.ProductFilter {
	return ports.ProductFilter{
		Category:  f.Category,
		PriceMin:  f.PriceMin,
		PriceMax:  f.PriceMax,
		Available: f.Available,
	}
}

// ListQuery pairs the raw request parameters, which shape the cache key,
// with the filter they translate to.
type ListQuery struct {
	Params url.Values
	Filter Filter
}

// NewListQuery builds a ListQuery from URL query parameters.
// Unknown parameters are kept for key derivation but do not filter.
func NewListQuery(params url.Values) (ListQuery, error) {
	query := ListQuery{Params: params}

	if category := params.Get("category"); category != "" {
		query.Filter.Category = &category
	}

	priceMin, err := parsePriceBound(params, "price_min")
	if err != nil {
		return ListQuery{}, err
	}
	query.Filter.PriceMin = priceMin

	priceMax, err := parsePriceBound(params, "price_max")
	if err != nil {
		return ListQuery{}, err
	}
	query.Filter.PriceMax = priceMax

	switch params.Get("available") {
	case "true":
		available := true
		query.Filter.Available = &available
	case "false":
		available := false
		query.Filter.Available = &available
	}

	return query, nil
}

func parsePriceBound(params url.Values, name string) (*decimal.Decimal, error) {
	raw := params.Get(name)
	if raw == "" {
		return nil, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, errors.NewValidationError(name + " must be a number")
	}
	return &value, nil
}

// ReadRequest describes a read in terms of its cache key inputs
type ReadRequest struct {
	ID     string
	Params url.Values
}

// Source tells where a read result came from
type Source string

const (
	SourceCache Source = "cache"
	SourceStore Source = "store"
)

// Result is a read result together with its exact JSON encoding
type Result[T any] struct {
	Value   T
	Payload []byte
	Source  Source
}

// FromCache reports whether the result was served without touching the store
func (r Result[T]) FromCache() bool {
	return r.Source == SourceCache
}

func productFromData(data *ports.ProductData) Product {
	return Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		Stock:       data.Stock,
		Available:   data.Available,
		ImageURL:    data.ImageURL,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}
