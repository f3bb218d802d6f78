package model

import (
	"github.com/shopspring/decimal"
)

// Product represents an item that can be sold in an order line
type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Name        string          `json:"name" gorm:"type:varchar(100);not null"`
	Description *string         `json:"description" gorm:"type:varchar(100)"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
}
