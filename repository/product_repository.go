package repository

import (
	"bufood/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

func (r *ProductRepository) Create(p *entity.Product) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Save(p *entity.Product) error {
	return r.DB.Save(p).Error
}

func (r *ProductRepository) Delete(id string) error {
	return r.DB.Delete(&entity.Product{}, "id = ?", id).Error
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	var p entity.Product
	if err := r.DB.First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) ListByStore(storeID string, availableOnly bool) ([]entity.Product, error) {
	q := r.DB.Where("store_id = ?", storeID)
	if availableOnly {
		q = q.Where("available = ?", true)
	}
	var products []entity.Product
	err := q.Order("name ASC").Find(&products).Error
	return products, err
}
