package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	StoreID string `gorm:"type:uuid;index" json:"storeId"`

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty"`

	// Whole pesos. ShippingFee is charged per item line on delivery orders.
	Price       int64 `json:"price"`
	ShippingFee int64 `json:"shippingFee"`

	// EstimatedTime is preparation minutes; checkout takes the max across a
	// store's items.
	EstimatedTime int  `json:"estimatedTime"`
	Available     bool `gorm:"default:true" json:"available"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
