package repository

import (
	"bufood/entity"

	"gorm.io/gorm"
)

type StoreRepository struct {
	DB *gorm.DB
}

func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{DB: db}
}

func (r *StoreRepository) Create(s *entity.Store) error {
	return r.DB.Create(s).Error
}

func (r *StoreRepository) Save(s *entity.Store) error {
	return r.DB.Save(s).Error
}

func (r *StoreRepository) GetByID(id string) (*entity.Store, error) {
	var s entity.Store
	if err := r.DB.First(&s, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StoreRepository) GetByOwner(ownerID string) (*entity.Store, error) {
	var s entity.Store
	if err := r.DB.First(&s, "owner_id = ?", ownerID).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StoreRepository) List(limit int) ([]entity.Store, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	var stores []entity.Store
	err := r.DB.Where("is_open = ?", true).
		Order("created_at DESC").Limit(limit).
		Find(&stores).Error
	return stores, err
}

// IsOwnedBy checks store ownership for seller-side authorization.
func (r *StoreRepository) IsOwnedBy(storeID, userID string) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Store{}).
		Where("id = ? AND owner_id = ?", storeID, userID).
		Count(&cnt).Error
	return cnt > 0, err
}
