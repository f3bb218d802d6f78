package repository

import (
	"context"
	"fmt"
	"time"

	"sales-service/internal/model"
	"sales-service/prometheus"

	"gorm.io/gorm"
)

// OrderDetailRepo implements line item persistence and the line item
// joins every cross-entity report is built on
type OrderDetailRepo struct {
	table
}

// NewOrderDetailRepo creates a new OrderDetailRepo
func NewOrderDetailRepo(db *gorm.DB) *OrderDetailRepo {
	return &OrderDetailRepo{table{
		db:      db,
		entity:  "order detail",
		columns: []string{"order_id", "product_id", "quantity"},
	}}
}

// List returns every line item ordered by id
func (r *OrderDetailRepo) List(ctx context.Context) ([]model.OrderDetail, error) {
	details := []model.OrderDetail{}
	if err := r.list(ctx, &details); err != nil {
		return nil, err
	}
	return details, nil
}

// Get returns the line item with the given id or ErrNotFound
func (r *OrderDetailRepo) Get(ctx context.Context, id uint) (*model.OrderDetail, error) {
	var detail model.OrderDetail
	if err := r.get(ctx, id, &detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

// Exists reports whether the line item exists
func (r *OrderDetailRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return existsIn(r.session(ctx), &model.OrderDetail{}, id)
}

// Insert creates the line item after checking its order and product exist
func (r *OrderDetailRepo) Insert(ctx context.Context, detail *model.OrderDetail) error {
	return r.insert(ctx, detail, r.checkReferences(detail))
}

// Replace overwrites every field of the line item with the given id
func (r *OrderDetailRepo) Replace(ctx context.Context, id uint, detail *model.OrderDetail) error {
	detail.ID = id
	return r.replace(ctx, id, detail, r.checkReferences(detail))
}

// Delete removes the line item
func (r *OrderDetailRepo) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, id, &model.OrderDetail{}, nil)
}

// ForOrder returns the line items of one order in insertion order
func (r *OrderDetailRepo) ForOrder(ctx context.Context, orderID uint) ([]model.LineItem, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	items := []model.LineItem{}
	err := r.lineItems(ctx).
		Select("order_details.product_id, products.name AS product_name, order_details.quantity").
		Where("order_details.order_id = ?", orderID).
		Order("order_details.id").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list line items of order %d: %w", orderID, err)
	}
	return items, nil
}

// ForAllOrders returns every line item tagged with its order id
func (r *OrderDetailRepo) ForAllOrders(ctx context.Context) ([]model.OrderLineItem, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	items := []model.OrderLineItem{}
	err := r.lineItems(ctx).
		Select("order_details.order_id, order_details.product_id, products.name AS product_name, order_details.quantity").
		Order("order_details.order_id, order_details.id").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list line items: %w", err)
	}
	return items, nil
}

// TotalQuantity sums the quantities of one order, zero when it has no lines
func (r *OrderDetailRepo) TotalQuantity(ctx context.Context, orderID uint) (int64, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var total int64
	err := r.session(ctx).
		Model(&model.OrderDetail{}).
		Select("COALESCE(SUM(quantity), 0)").
		Where("order_id = ?", orderID).
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum quantities of order %d: %w", orderID, err)
	}
	return total, nil
}

// ProductNamesForClient returns the distinct names of products bought by the
// client across all its orders, alphabetically
func (r *OrderDetailRepo) ProductNamesForClient(ctx context.Context, clientID uint) ([]string, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	names := []string{}
	err := r.clientLines(ctx, clientID).
		Group("products.name").
		Order("products.name").
		Pluck("products.name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list products sold to client %d: %w", clientID, err)
	}
	return names, nil
}

// ProductTotalsForClient returns each product bought by the client with the
// quantity summed over all its orders, largest quantity first then by name
func (r *OrderDetailRepo) ProductTotalsForClient(ctx context.Context, clientID uint) ([]model.ProductQuantity, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	totals := []model.ProductQuantity{}
	err := r.clientLines(ctx, clientID).
		Select("products.id AS product_id, products.name AS product_name, SUM(order_details.quantity) AS total_quantity").
		Group("products.id, products.name").
		Order("total_quantity DESC, products.name ASC, products.id ASC").
		Scan(&totals).Error
	if err != nil {
		return nil, fmt.Errorf("failed to total products sold to client %d: %w", clientID, err)
	}
	return totals, nil
}

// BuyersOfProduct returns each client with at least one line of the product, by id
func (r *OrderDetailRepo) BuyersOfProduct(ctx context.Context, productID uint) ([]model.Buyer, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	buyers := []model.Buyer{}
	err := r.productLines(ctx, productID).
		Select("clients.id, clients.name, clients.email").
		Group("clients.id, clients.name, clients.email").
		Order("clients.id").
		Scan(&buyers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list buyers of product %d: %w", productID, err)
	}
	return buyers, nil
}

// BuyerTotalsForProduct returns each buyer of the product with the quantity
// summed over all its orders, largest quantity first then by client id
func (r *OrderDetailRepo) BuyerTotalsForProduct(ctx context.Context, productID uint) ([]model.BuyerQuantity, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	buyers := []model.BuyerQuantity{}
	err := r.productLines(ctx, productID).
		Select("clients.id, clients.name, clients.email, SUM(order_details.quantity) AS total_quantity").
		Group("clients.id, clients.name, clients.email").
		Order("total_quantity DESC, clients.id ASC").
		Scan(&buyers).Error
	if err != nil {
		return nil, fmt.Errorf("failed to total buyers of product %d: %w", productID, err)
	}
	return buyers, nil
}

// lineItems joins order lines with their products
func (r *OrderDetailRepo) lineItems(ctx context.Context) *gorm.DB {
	return r.session(ctx).
		Model(&model.OrderDetail{}).
		Joins("JOIN products ON products.id = order_details.product_id")
}

// clientLines restricts lineItems to the orders of one client
func (r *OrderDetailRepo) clientLines(ctx context.Context, clientID uint) *gorm.DB {
	return r.lineItems(ctx).
		Joins("JOIN orders ON orders.id = order_details.order_id").
		Where("orders.client_id = ?", clientID)
}

// productLines joins the lines of one product with the clients that ordered them
func (r *OrderDetailRepo) productLines(ctx context.Context, productID uint) *gorm.DB {
	return r.session(ctx).
		Model(&model.OrderDetail{}).
		Joins("JOIN orders ON orders.id = order_details.order_id").
		Joins("JOIN clients ON clients.id = orders.client_id").
		Where("order_details.product_id = ?", productID)
}

func (r *OrderDetailRepo) checkReferences(detail *model.OrderDetail) func(tx *gorm.DB) error {
	return func(tx *gorm.DB) error {
		if err := requireRow(tx, &model.Order{}, "order", detail.OrderID); err != nil {
			return err
		}
		return requireRow(tx, &model.Product{}, "product", detail.ProductID)
	}
}
