package api

import (
	"log/slog"
	"net/http"

	"catalogapi.app/internal/core/catalog"
	"catalogapi.app/pkg/errors"
	"catalogapi.app/pkg/validation"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ProductRequest represents the HTTP request body for creating or replacing a product
type ProductRequest struct {
	Name        string           `json:"name" binding:"required,notblank"`
	Description string           `json:"description" binding:"required,notblank"`
	Category    string           `json:"category" binding:"required,notblank"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Stock       *int             `json:"stock" binding:"required,gte=0"`
	Available   *bool            `json:"available"`
	ImageURL    *string          `json:"imageUrl" binding:"omitempty,url"`
}

func (r ProductRequest) toInput() catalog.ProductInput {
	return catalog.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       *r.Price,
		Stock:       *r.Stock,
		Available:   r.Available,
		ImageURL:    r.ImageURL,
	}
}

// SuccessResponse represents a successful HTTP response
type SuccessResponse struct {
	Message string `json:"message"`
}

// listProducts handles GET /products, filtered when query parameters are present
func (s *HTTPServerAdapter) listProducts(c *gin.Context) {
	query, err := catalog.NewListQuery(c.Request.URL.Query())
	if err != nil {
		s.handleError(c, err)
		return
	}

	result, err := s.productUseCase.ListProducts(c.Request.Context(), query)
	if err != nil {
		slog.Error("List products error", "error", err, "query", c.Request.URL.RawQuery)
		s.handleError(c, err)
		return
	}

	writeCachedJSON(c, result.Payload, result.FromCache())
}

// getProduct handles GET /products/:id
func (s *HTTPServerAdapter) getProduct(c *gin.Context) {
	id, ok := s.productID(c)
	if !ok {
		return
	}

	result, err := s.productUseCase.GetProduct(c.Request.Context(), id)
	if err != nil {
		if !errors.IsNotFoundError(err) {
			slog.Error("Get product error", "error", err, "id", id)
		}
		s.handleError(c, err)
		return
	}

	writeCachedJSON(c, result.Payload, result.FromCache())
}

// createProduct handles POST /products
func (s *HTTPServerAdapter) createProduct(c *gin.Context) {
	req, ok := s.bindProduct(c)
	if !ok {
		return
	}

	product, err := s.productUseCase.CreateProduct(c.Request.Context(), req.toInput())
	if err != nil {
		slog.Error("Create product error", "error", err, "name", req.Name)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// updateProduct handles PUT /products/:id
func (s *HTTPServerAdapter) updateProduct(c *gin.Context) {
	id, ok := s.productID(c)
	if !ok {
		return
	}

	req, ok := s.bindProduct(c)
	if !ok {
		return
	}

	product, err := s.productUseCase.UpdateProduct(c.Request.Context(), id, req.toInput())
	if err != nil {
		slog.Error("Update product error", "error", err, "id", id)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, product)
}

// deleteProduct handles DELETE /products/:id
func (s *HTTPServerAdapter) deleteProduct(c *gin.Context) {
	id, ok := s.productID(c)
	if !ok {
		return
	}

	if err := s.productUseCase.DeleteProduct(c.Request.Context(), id); err != nil {
		slog.Error("Delete product error", "error", err, "id", id)
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, SuccessResponse{Message: "Product deleted successfully"})
}

func (s *HTTPServerAdapter) productID(c *gin.Context) (string, bool) {
	id := c.Param("id")
	if !validation.IsValidProductID(id) {
		s.handleError(c, errors.NewValidationError("Invalid product ID format"))
		return "", false
	}
	return id, true
}

func (s *HTTPServerAdapter) bindProduct(c *gin.Context) (ProductRequest, bool) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Debug("Request binding error", "error", err)
		s.handleError(c, errors.NewValidationError("Invalid product payload"))
		return ProductRequest{}, false
	}
	if req.Price.IsNegative() {
		s.handleError(c, errors.NewValidationError("Product price must be non-negative"))
		return ProductRequest{}, false
	}
	return req, true
}

// writeCachedJSON writes an already encoded body so cached and fresh responses are byte-identical
func writeCachedJSON(c *gin.Context, payload []byte, fromCache bool) {
	if fromCache {
		c.Header(headerCache, cacheHit)
	} else {
		c.Header(headerCache, cacheMiss)
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
