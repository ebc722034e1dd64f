package services

import (
	"fmt"

	"bufood/entity"
	"bufood/repository"
)

type StoreService struct {
	Repo *repository.StoreRepository
}

func NewStoreService(repo *repository.StoreRepository) *StoreService {
	return &StoreService{Repo: repo}
}

type StoreReq struct {
	StoreName   string `json:"storeName" binding:"required"`
	Description string `json:"description"`
	Location    string `json:"location"`
}

// Create opens the seller's store; a seller owns at most one.
func (s *StoreService) Create(ownerID string, req *StoreReq) (*entity.Store, error) {
	if _, err := s.Repo.GetByOwner(ownerID); err == nil {
		return nil, fmt.Errorf("%w: seller already has a store", ErrInvalidPayload)
	}
	store := &entity.Store{
		OwnerID:     ownerID,
		StoreName:   req.StoreName,
		Description: req.Description,
		Location:    req.Location,
		IsOpen:      true,
	}
	if err := s.Repo.Create(store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *StoreService) Update(ownerID string, req *StoreReq, isOpen *bool) (*entity.Store, error) {
	store, err := s.Repo.GetByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: store for seller %s", ErrNotFound, ownerID)
	}
	store.StoreName = req.StoreName
	store.Description = req.Description
	store.Location = req.Location
	if isOpen != nil {
		store.IsOpen = *isOpen
	}
	if err := s.Repo.Save(store); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *StoreService) GetMine(ownerID string) (*entity.Store, error) {
	store, err := s.Repo.GetByOwner(ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: store for seller %s", ErrNotFound, ownerID)
	}
	return store, nil
}

func (s *StoreService) Get(storeID string) (*entity.Store, error) {
	store, err := s.Repo.GetByID(storeID)
	if err != nil {
		return nil, fmt.Errorf("%w: store %s", ErrNotFound, storeID)
	}
	return store, nil
}

func (s *StoreService) List(limit int) ([]entity.Store, error) {
	return s.Repo.List(limit)
}
