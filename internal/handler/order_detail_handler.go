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

// OrderDetailStore is the line item persistence used by OrderDetailHandler
type OrderDetailStore interface {
	List(ctx context.Context) ([]model.OrderDetail, error)
	Get(ctx context.Context, id uint) (*model.OrderDetail, error)
	Insert(ctx context.Context, detail *model.OrderDetail) error
	Replace(ctx context.Context, id uint, detail *model.OrderDetail) error
	Delete(ctx context.Context, id uint) error
}

// OrderDetailHandler serves the /order-details CRUD endpoints
type OrderDetailHandler struct {
	details OrderDetailStore
}

// NewOrderDetailHandler creates a new OrderDetailHandler
func NewOrderDetailHandler(details OrderDetailStore) *OrderDetailHandler {
	return &OrderDetailHandler{details: details}
}

// ListOrderDetails handles retrieving all line items
func (h *OrderDetailHandler) ListOrderDetails(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("order_detail", "list")

	details, err := h.details.List(c.Request().Context())
	if err != nil {
		return respondError(c, "Failed to list order details", err)
	}

	log.Info("Order details retrieved successfully", zap.Int("count", len(details)))
	return c.JSON(http.StatusOK, details)
}

// GetOrderDetail handles retrieving a single line item by ID
func (h *OrderDetailHandler) GetOrderDetail(c echo.Context) error {
	prometheus.RecordEntityOperation("order_detail", "get")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, "Invalid order detail id", err)
	}

	detail, err := h.details.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, "Order detail not found", err)
	}
	return c.JSON(http.StatusOK, detail)
}

// CreateOrderDetail handles adding a line item to an existing order
func (h *OrderDetailHandler) CreateOrderDetail(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("order_detail", "create")

	var req OrderDetailRequest
	if err := bindRequest(c, &req, "order detail"); err != nil {
		return respondError(c, "Invalid order detail request", err)
	}

	detail := req.toModel()
	if err := h.details.Insert(c.Request().Context(), &detail); err != nil {
		return respondError(c, "Failed to create order detail", err)
	}

	log.Info("Order detail created successfully",
		zap.Uint("order_detail_id", detail.ID),
		zap.Uint("order_id", detail.OrderID),
		zap.Uint("product_id", detail.ProductID),
		zap.Int("quantity", detail.Quantity))
	return created(c, "/order-details", detail.ID, detail)
}

// UpdateOrderDetail handles replacing an existing line item
func (h *OrderDetailHandler) UpdateOrderDetail(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("order_detail", "update")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, "Invalid order detail id", err)
	}

	var req OrderDetailRequest
	if err := bindRequest(c, &req, "order detail"); err != nil {
		return respondError(c, "Invalid order detail request", err)
	}
	if err := checkBodyID(req.ID, id); err != nil {
		return respondError(c, "Mismatched order detail id", err)
	}

	detail := req.toModel()
	if err := h.details.Replace(c.Request().Context(), id, &detail); err != nil {
		return respondError(c, "Failed to update order detail", err)
	}

	log.Info("Order detail updated successfully", zap.Uint("order_detail_id", id))
	return c.NoContent(http.StatusNoContent)
}

// DeleteOrderDetail handles deleting a line item
func (h *OrderDetailHandler) DeleteOrderDetail(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("order_detail", "delete")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, "Invalid order detail id", err)
	}

	if err := h.details.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, "Failed to delete order detail", err)
	}

	log.Info("Order detail deleted successfully", zap.Uint("order_detail_id", id))
	return c.NoContent(http.StatusNoContent)
}
