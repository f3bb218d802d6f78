package repository

import (
	"gorm.io/gorm"
)

// Store groups the entity repositories over one connection pool
type Store struct {
	Clients      *ClientRepo
	Products     *ProductRepo
	Orders       *OrderRepo
	OrderDetails *OrderDetailRepo
}

// NewStore creates the repositories for db
func NewStore(db *gorm.DB) *Store {
	return &Store{
		Clients:      NewClientRepo(db),
		Products:     NewProductRepo(db),
		Orders:       NewOrderRepo(db),
		OrderDetails: NewOrderDetailRepo(db),
	}
}
