package entity

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CartItem keeps a server-side snapshot of name and unit price so the cart
// stays stable if the product changes before checkout.
type CartItem struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	CartID string `gorm:"type:uuid;index" json:"cartId"`

	ProductID   string  `gorm:"type:uuid;index" json:"productId"`
	Product     Product `json:"-"`
	ProductName string  `json:"productName"`

	Quantity int   `json:"quantity"`
	Price    int64 `json:"price"`
	Subtotal int64 `json:"subtotal"`
}

func (i *CartItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
