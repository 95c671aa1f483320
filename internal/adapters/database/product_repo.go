package database

import (
	"context"
	stderrors "errors"
	"time"

	"catalogapi.app/internal/ports"
	"catalogapi.app/pkg/errors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ProductModel represents the database model for products
type ProductModel struct {
	ID          string          `gorm:"primaryKey;type:varchar(36)"`
	Name        string          `gorm:"not null"`
	Description string          `gorm:"not null"`
	Category    string          `gorm:"not null;index;index:idx_products_category_price,priority:1;index:idx_products_category_available,priority:1"`
	Price       decimal.Decimal `gorm:"type:numeric(12,2);not null;index;index:idx_products_category_price,priority:2"`
	Stock       int             `gorm:"not null"`
	Available   bool            `gorm:"not null;index;index:idx_products_category_available,priority:2"`
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (ProductModel) TableName() string {
	return "products"
}

// BeforeCreate assigns the product identifier
func (m *ProductModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// Models lists the tables owned by this package, for AutoMigrate
func Models() []interface{} {
	return []interface{}{&ProductModel{}}
}

// ProductRepositoryAdapter implements the ProductRepository port using GORM
type ProductRepositoryAdapter struct {
	db *gorm.DB
}

// NewProductRepositoryAdapter creates a new product repository adapter
func NewProductRepositoryAdapter(db *gorm.DB) *ProductRepositoryAdapter {
	return &ProductRepositoryAdapter{db: db}
}

// FindAll retrieves products matching every non-nil predicate of filter, oldest first
func (r *ProductRepositoryAdapter) FindAll(ctx context.Context, filter ports.ProductFilter) ([]*ports.ProductData, error) {
	query := r.db.WithContext(ctx).Model(&ProductModel{})

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.PriceMin != nil {
		query = query.Where("price >= ?", *filter.PriceMin)
	}
	if filter.PriceMax != nil {
		query = query.Where("price <= ?", *filter.PriceMax)
	}
	if filter.Available != nil {
		query = query.Where("available = ?", *filter.Available)
	}

	var models []ProductModel
	if err := query.Order("created_at ASC").Order("id ASC").Find(&models).Error; err != nil {
		return nil, errors.NewDatabaseError("failed to list products", err)
	}

	products := make([]*ports.ProductData, len(models))
	for i := range models {
		products[i] = r.modelToData(&models[i])
	}

	return products, nil
}

// FindByID retrieves a product by its ID
func (r *ProductRepositoryAdapter) FindByID(ctx context.Context, id string) (*ports.ProductData, error) {
	if id == "" {
		return nil, errors.NewValidationError("product ID cannot be empty")
	}

	var model ProductModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&model)
	if result.Error != nil {
		if stderrors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, errors.NewNotFoundError("Product not found")
		}
		return nil, errors.NewDatabaseError("failed to find product by ID", result.Error)
	}

	return r.modelToData(&model), nil
}

// Exists reports whether a product with the given ID is stored
func (r *ProductRepositoryAdapter) Exists(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, errors.NewValidationError("product ID cannot be empty")
	}

	var count int64
	result := r.db.WithContext(ctx).Model(&ProductModel{}).Where("id = ?", id).Count(&count)
	if result.Error != nil {
		return false, errors.NewDatabaseError("failed to check product existence", result.Error)
	}

	return count > 0, nil
}

// Create persists a new product and fills in its generated ID and timestamps
func (r *ProductRepositoryAdapter) Create(ctx context.Context, product *ports.ProductData) error {
	if product == nil {
		return errors.NewValidationError("product cannot be nil")
	}

	model := r.dataToModel(product)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return errors.NewDatabaseError("failed to create product", err)
	}

	product.ID = model.ID
	product.CreatedAt = model.CreatedAt
	product.UpdatedAt = model.UpdatedAt
	return nil
}

// UpdateByID applies update to an existing product and returns the stored result
func (r *ProductRepositoryAdapter) UpdateByID(ctx context.Context, id string, update ports.ProductUpdate) (*ports.ProductData, error) {
	if id == "" {
		return nil, errors.NewValidationError("product ID cannot be empty")
	}

	values := map[string]interface{}{
		"name":        update.Name,
		"description": update.Description,
		"category":    update.Category,
		"price":       update.Price,
		"stock":       update.Stock,
	}
	if update.Available != nil {
		values["available"] = *update.Available
	}
	if update.ImageURL != nil {
		values["image_url"] = *update.ImageURL
	}

	var model ProductModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&ProductModel{}).Where("id = ?", id).Updates(values)
		if result.Error != nil {
			return errors.NewDatabaseError("failed to update product", result.Error)
		}
		if result.RowsAffected == 0 {
			return errors.NewNotFoundError("Product not found")
		}
		if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
			return errors.NewDatabaseError("failed to reload updated product", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.modelToData(&model), nil
}

// DeleteByID removes a product
func (r *ProductRepositoryAdapter) DeleteByID(ctx context.Context, id string) error {
	if id == "" {
		return errors.NewValidationError("product ID cannot be empty")
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ProductModel{})
	if result.Error != nil {
		return errors.NewDatabaseError("failed to delete product", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("Product not found")
	}

	return nil
}

// ReplaceAll swaps the whole catalog for products in one transaction
func (r *ProductRepositoryAdapter) ReplaceAll(ctx context.Context, products []*ports.ProductData) error {
	models := make([]*ProductModel, len(products))
	for i, p := range products {
		models[i] = r.dataToModel(p)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&ProductModel{}).Error; err != nil {
			return err
		}
		if len(models) == 0 {
			return nil
		}
		return tx.Create(&models).Error
	})
	if err != nil {
		return errors.NewDatabaseError("failed to replace products", err)
	}

	for i, m := range models {
		products[i].ID = m.ID
		products[i].CreatedAt = m.CreatedAt
		products[i].UpdatedAt = m.UpdatedAt
	}
	return nil
}

// dataToModel converts port data to database model
func (r *ProductRepositoryAdapter) dataToModel(data *ports.ProductData) *ProductModel {
	return &ProductModel{
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

// modelToData converts database model to port data
func (r *ProductRepositoryAdapter) modelToData(model *ProductModel) *ports.ProductData {
	return &ports.ProductData{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		Category:    model.Category,
		Price:       model.Price,
		Stock:       model.Stock,
		Available:   model.Available,
		ImageURL:    model.ImageURL,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}
