package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Conversation pairs the customer and seller of one order.
type Conversation struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	OrderID string `gorm:"type:uuid;uniqueIndex" json:"orderId"`

	CustomerID string `gorm:"type:uuid;index" json:"customerId"`
	SellerID   string `gorm:"type:uuid;index" json:"sellerId"`

	Messages []Message `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Conversation) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// HasParticipant reports whether userID belongs to this conversation.
func (c *Conversation) HasParticipant(userID string) bool {
	return c.CustomerID == userID || c.SellerID == userID
}
