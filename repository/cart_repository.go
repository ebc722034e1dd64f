package repository

import (
	"errors"

	"bufood/entity"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// GetOrCreate returns the customer's cart, creating an empty one on first use.
func (r *CartRepository) GetOrCreate(userID string) (*entity.Cart, error) {
	var cart entity.Cart
	err := r.DB.Preload("Items").Preload("Items.Product").
		First(&cart, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cart = entity.Cart{UserID: userID}
		if err := r.DB.Create(&cart).Error; err != nil {
			return nil, err
		}
		return &cart, nil
	}
	if err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *CartRepository) SaveItem(item *entity.CartItem) error {
	return r.DB.Save(item).Error
}

func (r *CartRepository) DeleteItem(cartID, itemID string) error {
	return r.DB.Where("id = ? AND cart_id = ?", itemID, cartID).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) UpdateTotal(cartID string, total int64) error {
	return r.DB.Model(&entity.Cart{}).Where("id = ?", cartID).
		Update("total", total).Error
}

// Clear empties the cart inside the caller's transaction (used by checkout).
func (r *CartRepository) Clear(tx *gorm.DB, cartID string) error {
	if err := tx.Where("cart_id = ?", cartID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	return tx.Model(&entity.Cart{}).Where("id = ?", cartID).Update("total", 0).Error
}
