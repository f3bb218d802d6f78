package handler

import (
	"context"
	"net/http"
	"time"

	"sales-service/internal/model"
	"sales-service/internal/report"
	"sales-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Reports is the report surface served over HTTP
type Reports interface {
	SearchClientsByNamePrefix(ctx context.Context, prefix string) ([]model.Client, error)
	ClientWithMostOrders(ctx context.Context) (*model.ClientOrderCount, error)
	ProductsSoldToClient(ctx context.Context, clientID uint) ([]string, error)
	ProductsSoldToClientWithQuantity(ctx context.Context, clientID uint) ([]model.ProductQuantity, error)

	AllOrdersWithItems(ctx context.Context) ([]model.OrderWithItems, error)
	OrderProducts(ctx context.Context, orderID uint) ([]model.LineItem, error)
	OrderTotalQuantity(ctx context.Context, orderID uint) (model.OrderTotal, error)
	OrdersAfterDate(ctx context.Context, after time.Time) ([]model.Order, error)

	ProductsAbovePrice(ctx context.Context, minPrice decimal.Decimal) ([]model.Product, error)
	MostExpensiveProduct(ctx context.Context) (*model.Product, error)
	AveragePriceReport(ctx context.Context) (model.PriceStats, error)
	ProductsWithoutDescription(ctx context.Context) ([]model.Product, error)
	BuyersOfProduct(ctx context.Context, productID uint) ([]model.Buyer, error)
	BuyersOfProductWithQuantity(ctx context.Context, productID uint) ([]model.BuyerQuantity, error)
}

// ReportHandler serves the read-only report endpoints
type ReportHandler struct {
	reports Reports
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reports Reports) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// SearchClients handles GET /clients/search?name=
func (h *ReportHandler) SearchClients(c echo.Context) error {
	log := logger.FromContext(c)

	clients, err := h.reports.SearchClientsByNamePrefix(c.Request().Context(), c.QueryParam("name"))
	if err != nil {
		return respondError(c, "Failed to search clients", err)
	}

	log.Info("Clients searched by name",
		zap.String("name", c.QueryParam("name")),
		zap.Int("count", len(clients)))
	return c.JSON(http.StatusOK, clients)
}

// ClientWithMostOrders handles GET /clients/most-orders
func (h *ReportHandler) ClientWithMostOrders(c echo.Context) error {
	log := logger.FromContext(c)

	top, err := h.reports.ClientWithMostOrders(c.Request().Context())
	if err != nil {
		return respondError(c, "Failed to find client with most orders", err)
	}

	log.Info("Client with most orders retrieved",
		zap.Uint("client_id", top.ClientID),
		zap.Int64("orders_count", top.OrdersCount))
	return c.JSON(http.StatusOK, top)
}

// ProductsSoldToClient handles GET /clients/:id/products-sold
func (h *ReportHandler) ProductsSoldToClient(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return respondError(c, "Invalid client id", err)
	}
	names, err := h.reports.ProductsSoldToClient(c.Request().Context(), id)
	if err != nil {
		return respondError(c, "Failed to list products sold to client", err)
	}

	log.Info("Products sold to client retrieved",
		zap.Uint("client_id", id),
		zap.Int("count", len(names)))
	return c.JSON(http.StatusOK, names)
}

// ProductsSoldToClientWithQuantity handles GET /clients/:id/products-sold-with-qty
func (h *ReportHandler) ProductsSoldToClientWithQuantity(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return respondError(c, "Invalid client id", err)
	}
	totals, err := h.reports.ProductsSoldToClientWithQuantity(c.Request().Context(), id)
	if err != nil {
		return respondError(c, "Failed to total products sold to client", err)
	}

	log.Info("Product quantities for client retrieved",
		zap.Uint("client_id", id),
		zap.Int("count", len(totals)))
	return c.JSON(http.StatusOK, totals)
}

// OrdersWithItems handles GET /orders/with-items
func (h *ReportHandler) OrdersWithItems(c echo.Context) error {
	log := logger.FromContext(c)

	orders, err := h.reports.AllOrdersWithItems(c.Request().Context())
	if err != nil {
		return respondError(c, "Failed to list orders with items", err)
	}

	log.Info("Orders with items retrieved", zap.Int("count", len(orders)))
	return c.JSON(http.StatusOK, orders)
}

// OrderProducts handles GET /orders/:id/products
func (h *ReportHandler) OrderProducts(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return respondError(c, "Invalid order id", err)
	}
	items, err := h.reports.OrderProducts(c.Request().Context(), id)
	if err != nil {
		return respondError(c, "Failed to list order products", err)
	}

	log.Info("Order products retrieved",
		zap.Uint("order_id", id),
		zap.Int("count", len(items)))
	return c.JSON(http.StatusOK, items)
}

// OrderTotalQuantity handles GET /orders/:id/total-quantity
func (h *ReportHandler) OrderTotalQuantity(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return respondError(c, "Invalid order id", err)
	}
	total, err := h.reports.OrderTotalQuantity(c.Request().Context(), id)
	if err != nil {
		return respondError(c, "Failed to total order quantity", err)
	}

	log.Info("Order total quantity computed",
		zap.Uint("order_id", id),
		zap.Int64("total_quantity", total.TotalQuantity))
	return c.JSON(http.StatusOK, total)
}

// OrdersAfterDate handles GET /orders/after-date?date=YYYY-MM-DD
func (h *ReportHandler) OrdersAfterDate(c echo.Context) error {
	log := logger.FromContext(c)

	after, err := report.ParseDate(c.QueryParam("date"))
	if err != nil {
		return respondError(c, "Invalid order date filter", err)
	}
	orders, err := h.reports.OrdersAfterDate(c.Request().Context(), after)
	if err != nil {
		return respondError(c, "Failed to filter orders by date", err)
	}

	log.Info("Orders after date retrieved",
		zap.Time("after", after),
		zap.Int("count", len(orders)))
	return c.JSON(http.StatusOK, orders)
}

// ProductsAbovePrice handles GET /products/price-greater-than?minPrice=
func (h *ReportHandler) ProductsAbovePrice(c echo.Context) error {
	log := logger.FromContext(c)

	minPrice, err := report.ParsePrice(c.QueryParam("minPrice"))
	if err != nil {
		return respondError(c, "Invalid price filter", err)
	}
	products, err := h.reports.ProductsAbovePrice(c.Request().Context(), minPrice)
	if err != nil {
		return respondError(c, "Failed to filter products by price", err)
	}

	log.Info("Products above price retrieved",
		zap.String("min_price", minPrice.StringFixed(2)),
		zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// MostExpensiveProduct handles GET /products/most-expensive
func (h *ReportHandler) MostExpensiveProduct(c echo.Context) error {
	log := logger.FromContext(c)

	product, err := h.reports.MostExpensiveProduct(c.Request().Context())
	if err != nil {
		return respondError(c, "Failed to find most expensive product", err)
	}

	log.Info("Most expensive product retrieved", zap.Uint("product_id", product.ID))
	return c.JSON(http.StatusOK, product)
}

// AveragePrice handles GET /products/average-price
func (h *ReportHandler) AveragePrice(c echo.Context) error {
	log := logger.FromContext(c)

	stats, err := h.reports.AveragePriceReport(c.Request().Context())
	if err != nil {
		return respondError(c, "Failed to compute average price", err)
	}

	log.Info("Average price computed",
		zap.Int64("count", stats.ProductCount),
		zap.String("average_price", stats.AveragePrice.StringFixed(2)))
	return c.JSON(http.StatusOK, stats)
}

// ProductsWithoutDescription handles GET /products/without-description
func (h *ReportHandler) ProductsWithoutDescription(c echo.Context) error {
	log := logger.FromContext(c)

	products, err := h.reports.ProductsWithoutDescription(c.Request().Context())
	if err != nil {
		return respondError(c, "Failed to list products without description", err)
	}

	log.Info("Products without description retrieved", zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, products)
}

// BuyersOfProduct handles GET /products/:id/buyers
func (h *ReportHandler) BuyersOfProduct(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return respondError(c, "Invalid product id", err)
	}
	buyers, err := h.reports.BuyersOfProduct(c.Request().Context(), id)
	if err != nil {
		return respondError(c, "Failed to list buyers of product", err)
	}

	log.Info("Buyers of product retrieved",
		zap.Uint("product_id", id),
		zap.Int("count", len(buyers)))
	return c.JSON(http.StatusOK, buyers)
}

// BuyersOfProductWithQuantity handles GET /products/:id/buyers-with-qty
func (h *ReportHandler) BuyersOfProductWithQuantity(c echo.Context) error {
	log := logger.FromContext(c)

	id, err := parseID(c)
	if err != nil {
		return respondError(c, "Invalid product id", err)
	}
	buyers, err := h.reports.BuyersOfProductWithQuantity(c.Request().Context(), id)
	if err != nil {
		return respondError(c, "Failed to total buyers of product", err)
	}

	log.Info("Buyer quantities for product retrieved",
		zap.Uint("product_id", id),
		zap.Int("count", len(buyers)))
	return c.JSON(http.StatusOK, buyers)
}
