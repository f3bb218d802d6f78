package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Read models produced by joins and aggregates. They are never persisted.

// ClientSummary is the client part of an enriched order
type ClientSummary struct {
	ClientID uint   `json:"client_id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
}

// ClientOrderCount is a client together with the number of orders it placed
type ClientOrderCount struct {
	ClientID    uint   `json:"client_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	OrdersCount int64  `json:"orders_count"`
}

// LineItem is one product quantity of an order, resolved to the product name
type LineItem struct {
	ProductID   uint   `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}

// OrderLineItem is a LineItem tagged with the order it belongs to
type OrderLineItem struct {
	OrderID uint
	LineItem
}

// OrderClientRow is an order joined with its client
type OrderClientRow struct {
	OrderID   uint
	OrderDate time.Time
	ClientID  uint
	Name      string
	Email     string
}

// OrderWithItems is an order enriched with its client and line items
type OrderWithItems struct {
	OrderID   uint          `json:"order_id"`
	OrderDate time.Time     `json:"order_date"`
	Client    ClientSummary `json:"client"`
	Items     []LineItem    `json:"items"`
}

// OrderTotal is the summed quantity of an order's line items
type OrderTotal struct {
	OrderID       uint  `json:"order_id"`
	TotalQuantity int64 `json:"total_quantity"`
}

// ProductQuantity is a product with the quantity bought across orders
type ProductQuantity struct {
	ProductID     uint   `json:"product_id"`
	ProductName   string `json:"product_name"`
	TotalQuantity int64  `json:"total_quantity"`
}

// Buyer is a client that bought a given product
type Buyer struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// BuyerQuantity is a buyer with the quantity of the product it bought
type BuyerQuantity struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	TotalQuantity int64  `json:"total_quantity"`
}

// PriceStats summarizes product prices
type PriceStats struct {
	ProductCount int64           `json:"product_count"`
	AveragePrice decimal.Decimal `json:"average_price"`
}
