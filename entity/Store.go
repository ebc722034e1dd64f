package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Store belongs to exactly one seller; orders reference it by id only.
type Store struct {
	ID      string `gorm:"type:uuid;primaryKey" json:"id"`
	OwnerID string `gorm:"type:uuid;uniqueIndex" json:"ownerId"`

	StoreName   string `json:"storeName"`
	Description string `json:"description,omitempty"`
	Location    string `json:"location,omitempty"`
	IsOpen      bool   `gorm:"default:true" json:"isOpen"`

	Products []Product `gorm:"foreignKey:StoreID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Store) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
