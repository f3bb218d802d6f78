package handler

import (
	"context"
	"net/http"

	"sales-service/internal/model"
	"sales-service/pkg/logger"
	"sales-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProductStore is the product persistence used by ProductHandler
type ProductStore interface {
	List(ctx context.Context) ([]model.Product, error)
	Get(ctx context.Context, id uint) (*model.Product, error)
	Insert(ctx context.Context, product *model.Product) error
	Replace(ctx context.Context, id uint, product *model.Product) error
	Delete(ctx context.Context, id uint) error
}

// ProductHandler serves the /products CRUD endpoints
type ProductHandler struct {
	products ProductStore
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(products ProductStore) *ProductHandler {
	return &ProductHandler{products: products}
}

// ListProducts handles retrieving all products
func (h *ProductHandler) ListProducts(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "list")

	products, err := h.products.List(c.Request().Context())
	if err != nil {
		return respondError(c, "Failed to list products", err)
	}

	log.Info("Products retrieved successfully", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// GetProduct handles retrieving a single product by ID
func (h *ProductHandler) GetProduct(c echo.Context) error {
	prometheus.RecordEntityOperation("product", "get")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, "Invalid product id", err)
	}

	product, err := h.products.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, "Product not found", err)
	}
	return c.JSON(http.StatusOK, product)
}

// CreateProduct handles creating a new product
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "create")

	var req ProductRequest
	if err := bindRequest(c, &req, "product"); err != nil {
		return respondError(c, "Invalid product request", err)
	}

	product := req.toModel()
	if err := h.products.Insert(c.Request().Context(), &product); err != nil {
		return respondError(c, "Failed to create product", err)
	}

	log.Info("Product created successfully",
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name),
		zap.String("price", product.Price.StringFixed(2)))
	return created(c, "/products", product.ID, product)
}

// UpdateProduct handles replacing an existing product
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "update")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, "Invalid product id", err)
	}

	var req ProductRequest
	if err := bindRequest(c, &req, "product"); err != nil {
		return respondError(c, "Invalid product request", err)
	}
	if err := checkBodyID(req.ID, id); err != nil {
		return respondError(c, "Mismatched product id", err)
	}

	product := req.toModel()
	if err := h.products.Replace(c.Request().Context(), id, &product); err != nil {
		return respondError(c, "Failed to update product", err)
	}

	log.Info("Product updated successfully", zap.Uint("product_id", id))
	return c.NoContent(http.StatusNoContent)
}

// DeleteProduct handles deleting a product that no order line references
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("product", "delete")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, "Invalid product id", err)
	}

	if err := h.products.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, "Failed to delete product", err)
	}

	log.Info("Product deleted successfully", zap.Uint("product_id", id))
	return c.NoContent(http.StatusNoContent)
}
