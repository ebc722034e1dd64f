package services

import (
	"fmt"

	"bufood/entity"
	"bufood/repository"
)

type ProductService struct {
	Repo      *repository.ProductRepository
	StoreRepo *repository.StoreRepository
}

func NewProductService(repo *repository.ProductRepository, storeRepo *repository.StoreRepository) *ProductService {
	return &ProductService{Repo: repo, StoreRepo: storeRepo}
}

type ProductReq struct {
	Name          string `json:"name" binding:"required"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Price         int64  `json:"price" binding:"required,min=0"`
	ShippingFee   int64  `json:"shippingFee" binding:"min=0"`
	EstimatedTime int    `json:"estimatedTime" binding:"min=0"`
	Available     *bool  `json:"available"`
}

func (s *ProductService) Create(sellerID string, req *ProductReq) (*entity.Product, error) {
	store, err := s.StoreRepo.GetByOwner(sellerID)
	if err != nil {
		return nil, fmt.Errorf("%w: store for seller %s", ErrNotFound, sellerID)
	}
	p := &entity.Product{
		StoreID:       store.ID,
		Name:          req.Name,
		Description:   req.Description,
		Category:      req.Category,
		Price:         req.Price,
		ShippingFee:   req.ShippingFee,
		EstimatedTime: req.EstimatedTime,
		Available:     true,
	}
	if req.Available != nil {
		p.Available = *req.Available
	}
	if err := s.Repo.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Update(sellerID, productID string, req *ProductReq) (*entity.Product, error) {
	p, err := s.ownedProduct(sellerID, productID)
	if err != nil {
		return nil, err
	}
	p.Name = req.Name
	p.Description = req.Description
	p.Category = req.Category
	p.Price = req.Price
	p.ShippingFee = req.ShippingFee
	p.EstimatedTime = req.EstimatedTime
	if req.Available != nil {
		p.Available = *req.Available
	}
	if err := s.Repo.Save(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Delete(sellerID, productID string) error {
	p, err := s.ownedProduct(sellerID, productID)
	if err != nil {
		return err
	}
	return s.Repo.Delete(p.ID)
}

func (s *ProductService) Get(productID string) (*entity.Product, error) {
	p, err := s.Repo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
	}
	return p, nil
}

func (s *ProductService) ListByStore(storeID string, availableOnly bool) ([]entity.Product, error) {
	return s.Repo.ListByStore(storeID, availableOnly)
}

func (s *ProductService) ownedProduct(sellerID, productID string) (*entity.Product, error) {
	p, err := s.Repo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
	}
	owned, err := s.StoreRepo.IsOwnedBy(p.StoreID, sellerID)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrForbidden
	}
	return p, nil
}
