package handler

import (
	"context"

	"sales-service/internal/report"
	"sales-service/internal/repository"
	"sales-service/pkg/database"
	"sales-service/prometheus"

	"github.com/labstack/echo/v4"
	prom "github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

// RegisterRoutes installs the request validator and mounts every endpoint
// of the service on e
func RegisterRoutes(e *echo.Echo, db *gorm.DB, gatherer prom.Gatherer) {
	e.Validator = NewValidator()

	store := repository.NewStore(db)
	clients := NewClientHandler(store.Clients)
	products := NewProductHandler(store.Products)
	orders := NewOrderHandler(store.Orders)
	details := NewOrderDetailHandler(store.OrderDetails)
	reports := NewReportHandler(report.NewServiceFromStore(store))
	health := NewHealthHandler(func(ctx context.Context) error {
		return database.Ping(ctx, db)
	})

	e.GET("/health", health.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(prometheus.GetPrometheusHandler(gatherer)))

	// Static report paths win over /:id in the echo router
	e.GET("/clients/search", reports.SearchClients)
	e.GET("/clients/most-orders", reports.ClientWithMostOrders)
	e.GET("/clients/:id/products-sold", reports.ProductsSoldToClient)
	e.GET("/clients/:id/products-sold-with-qty", reports.ProductsSoldToClientWithQuantity)
	e.GET("/clients", clients.ListClients)
	e.GET("/clients/:id", clients.GetClient)
	e.POST("/clients", clients.CreateClient)
	e.PUT("/clients/:id", clients.UpdateClient)
	e.DELETE("/clients/:id", clients.DeleteClient)

	e.GET("/orders/with-items", reports.OrdersWithItems)
	e.GET("/orders/after-date", reports.OrdersAfterDate)
	e.GET("/orders/:id/products", reports.OrderProducts)
	e.GET("/orders/:id/total-quantity", reports.OrderTotalQuantity)
	e.GET("/orders", orders.ListOrders)
	e.GET("/orders/:id", orders.GetOrder)
	e.POST("/orders", orders.CreateOrder)
	e.PUT("/orders/:id", orders.UpdateOrder)
	e.DELETE("/orders/:id", orders.DeleteOrder)

	e.GET("/products/price-greater-than", reports.ProductsAbovePrice)
	e.GET("/products/most-expensive", reports.MostExpensiveProduct)
	e.GET("/products/average-price", reports.AveragePrice)
	e.GET("/products/without-description", reports.ProductsWithoutDescription)
	e.GET("/products/:id/buyers", reports.BuyersOfProduct)
	e.GET("/products/:id/buyers-with-qty", reports.BuyersOfProductWithQuantity)
	e.GET("/products", products.ListProducts)
	e.GET("/products/:id", products.GetProduct)
	e.POST("/products", products.CreateProduct)
	e.PUT("/products/:id", products.UpdateProduct)
	e.DELETE("/products/:id", products.DeleteProduct)

	e.GET("/order-details", details.ListOrderDetails)
	e.GET("/order-details/:id", details.GetOrderDetail)
	e.POST("/order-details", details.CreateOrderDetail)
	e.PUT("/order-details/:id", details.UpdateOrderDetail)
	e.DELETE("/order-details/:id", details.DeleteOrderDetail)
}
