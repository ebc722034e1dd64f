package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatusHistory is the append-only audit trail: exactly one row per
// status change, never edited or reordered.
type OrderStatusHistory struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID string `gorm:"type:uuid;index" json:"orderId"`

	Status OrderStatus `gorm:"type:text" json:"status"`
	Note   string      `json:"note,omitempty"`

	CreatedAt time.Time `json:"timestamp"`
}

func (h *OrderStatusHistory) BeforeCreate(tx *gorm.DB) error {
	if h.ID == "" {
		h.ID = uuid.NewString()
	}
	return nil
}
