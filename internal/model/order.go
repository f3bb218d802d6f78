package model

import (
	"time"
)

// Order represents a purchase made by a client.
//
// Client is only declared so the schema carries the foreign key; it is never
// loaded and never serialized.
type Order struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	ClientID  uint      `json:"client_id" gorm:"not null;index"`
	OrderDate time.Time `json:"order_date" gorm:"type:timestamp;not null"`
	Client    *Client   `json:"-" gorm:"foreignKey:ClientID;constraint:OnDelete:RESTRICT"`
}

// OrderDetail is a single line item: one product quantity within one order
type OrderDetail struct {
	ID        uint     `json:"id" gorm:"primaryKey"`
	OrderID   uint     `json:"order_id" gorm:"not null;index"`
	ProductID uint     `json:"product_id" gorm:"not null;index"`
	Quantity  int      `json:"quantity" gorm:"not null"`
	Order     *Order   `json:"-" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Product   *Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
}

// Models lists every persisted model in dependency order
func Models() []interface{} {
	return []interface{}{
		&Client{},
		&Product{},
		&Order{},
		&OrderDetail{},
	}
}
