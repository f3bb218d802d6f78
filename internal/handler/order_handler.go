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

// OrderStore is the order persistence used by OrderHandler
type OrderStore interface {
	List(ctx context.Context) ([]model.Order, error)
	Get(ctx context.Context, id uint) (*model.Order, error)
	Insert(ctx context.Context, order *model.Order) error
	Replace(ctx context.Context, id uint, order *model.Order) error
	Delete(ctx context.Context, id uint) error
}

// OrderHandler serves the /orders CRUD endpoints
type OrderHandler struct {
	orders OrderStore
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orders OrderStore) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// ListOrders handles retrieving all orders
func (h *OrderHandler) ListOrders(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("order", "list")

	orders, err := h.orders.List(c.Request().Context())
	if err != nil {
		return respondError(c, "Failed to list orders", err)
	}

	log.Info("Orders retrieved successfully", zap.Int("count", len(orders)))
	return c.JSON(http.StatusOK, orders)
}

// GetOrder handles retrieving a single order by ID
func (h *OrderHandler) GetOrder(c echo.Context) error {
	prometheus.RecordEntityOperation("order", "get")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, "Invalid order id", err)
	}

	order, err := h.orders.Get(c.Request().Context(), id)
	if err != nil {
		return respondError(c, "Order not found", err)
	}
	return c.JSON(http.StatusOK, order)
}

// CreateOrder handles creating a new order for an existing client
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("order", "create")

	var req OrderRequest
	if err := bindRequest(c, &req, "order"); err != nil {
		return respondError(c, "Invalid order request", err)
	}
	order, err := req.toModel()
	if err != nil {
		return respondError(c, "Invalid order date", err)
	}

	if err := h.orders.Insert(c.Request().Context(), &order); err != nil {
		return respondError(c, "Failed to create order", err)
	}

	log.Info("Order created successfully",
		zap.Uint("order_id", order.ID),
		zap.Uint("client_id", order.ClientID))
	return created(c, "/orders", order.ID, order)
}

// UpdateOrder handles replacing an existing order
func (h *OrderHandler) UpdateOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("order", "update")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, "Invalid order id", err)
	}

	var req OrderRequest
	if err := bindRequest(c, &req, "order"); err != nil {
		return respondError(c, "Invalid order request", err)
	}
	if err := checkBodyID(req.ID, id); err != nil {
		return respondError(c, "Mismatched order id", err)
	}
	order, err := req.toModel()
	if err != nil {
		return respondError(c, "Invalid order date", err)
	}

	if err := h.orders.Replace(c.Request().Context(), id, &order); err != nil {
		return respondError(c, "Failed to update order", err)
	}

	log.Info("Order updated successfully", zap.Uint("order_id", id))
	return c.NoContent(http.StatusNoContent)
}

// DeleteOrder handles deleting an order together with its line items
func (h *OrderHandler) DeleteOrder(c echo.Context) error {
	log := logger.FromContext(c)
	prometheus.RecordEntityOperation("order", "delete")

	id, err := parseID(c)
	if err != nil {
		return respondError(c, "Invalid order id", err)
	}

	if err := h.orders.Delete(c.Request().Context(), id); err != nil {
		return respondError(c, "Failed to delete order", err)
	}

	log.Info("Order deleted successfully", zap.Uint("order_id", id))
	return c.NoContent(http.StatusNoContent)
}
