package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderItem snapshots product name and price at checkout time; later product
// edits never change an existing order.
type OrderItem struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID string `gorm:"type:uuid;index" json:"orderId"`

	ProductID   string `gorm:"type:uuid;index" json:"productId"`
	ProductName string `json:"productName"`

	Quantity int   `json:"quantity"`
	Price    int64 `json:"price"`
	Subtotal int64 `json:"subtotal"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
