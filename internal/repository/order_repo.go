package repository

import (
	"context"
	"fmt"
	"time"

	"sales-service/internal/model"
	"sales-service/prometheus"

	"gorm.io/gorm"
)

// OrderRepo implements order persistence on GORM
type OrderRepo struct {
	table
}

// NewOrderRepo creates a new OrderRepo
func NewOrderRepo(db *gorm.DB) *OrderRepo {
	return &OrderRepo{table{db: db, entity: "order", columns: []string{"client_id", "order_date"}}}
}

// List returns every order ordered by id
func (r *OrderRepo) List(ctx context.Context) ([]model.Order, error) {
	orders := []model.Order{}
	if err := r.list(ctx, &orders); err != nil {
		return nil, err
	}
	return orders, nil
}

// Get returns the order with the given id or ErrNotFound
func (r *OrderRepo) Get(ctx context.Context, id uint) (*model.Order, error) {
	var order model.Order
	if err := r.get(ctx, id, &order); err != nil {
		return nil, err
	}
	return &order, nil
}

// Exists reports whether the order exists
func (r *OrderRepo) Exists(ctx context.Context, id uint) (bool, error) {
	return existsIn(r.session(ctx), &model.Order{}, id)
}

// Insert creates the order after checking its client exists
func (r *OrderRepo) Insert(ctx context.Context, order *model.Order) error {
	return r.insert(ctx, order, r.checkClient(order))
}

// Replace overwrites every field of the order with the given id
func (r *OrderRepo) Replace(ctx context.Context, id uint, order *model.Order) error {
	order.ID = id
	return r.replace(ctx, id, order, r.checkClient(order))
}

// Delete removes the order together with its line items
func (r *OrderRepo) Delete(ctx context.Context, id uint) error {
	return r.delete(ctx, id, &model.Order{}, func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", id).Delete(&model.OrderDetail{}).Error; err != nil {
			return fmt.Errorf("failed to delete line items of order %d: %w", id, err)
		}
		return nil
	})
}

// After returns orders placed strictly after the given time, oldest first
func (r *OrderRepo) After(ctx context.Context, after time.Time) ([]model.Order, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	orders := []model.Order{}
	err := r.session(ctx).
		Where("order_date > ?", after).
		Order("order_date, id").
		Find(&orders).Error
	if err != nil {
		return nil, fmt.Errorf("failed to filter orders by date: %w", err)
	}
	return orders, nil
}

// ListWithClients returns every order joined with its client, ordered by order id
func (r *OrderRepo) ListWithClients(ctx context.Context) ([]model.OrderClientRow, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	rows := []model.OrderClientRow{}
	err := r.session(ctx).
		Model(&model.Order{}).
		Select("orders.id AS order_id, orders.order_date, clients.id AS client_id, clients.name, clients.email").
		Joins("JOIN clients ON clients.id = orders.client_id").
		Order("orders.id").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list orders with clients: %w", err)
	}
	return rows, nil
}

func (r *OrderRepo) checkClient(order *model.Order) func(tx *gorm.DB) error {
	return func(tx *gorm.DB) error {
		return requireRow(tx, &model.Client{}, "client", order.ClientID)
	}
}
