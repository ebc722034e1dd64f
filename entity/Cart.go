package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cart is one per customer and may hold items from several stores; checkout
// splits it into one order per store.
type Cart struct {
	ID     string `gorm:"type:uuid;primaryKey" json:"id"`
	UserID string `gorm:"type:uuid;uniqueIndex" json:"userId"`

	Items []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	Total int64      `json:"total"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Cart) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Recalculate refreshes item subtotals and the cart total.
func (c *Cart) Recalculate() {
	var sum int64
	for i := range c.Items {
		c.Items[i].Subtotal = int64(c.Items[i].Quantity) * c.Items[i].Price
		sum += c.Items[i].Subtotal
	}
	c.Total = sum
}
