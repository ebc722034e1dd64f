package services

import (
	"fmt"

	"bufood/entity"
	"bufood/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	Repo        *repository.CartRepository
	ProductRepo *repository.ProductRepository
}

func NewCartService(db *gorm.DB, repo *repository.CartRepository, productRepo *repository.ProductRepository) *CartService {
	return &CartService{DB: db, Repo: repo, ProductRepo: productRepo}
}

func (s *CartService) Get(userID string) (*entity.Cart, error) {
	return s.Repo.GetOrCreate(userID)
}

// AddItem snapshots the product's current name and price into the cart line;
// the snapshot is what checkout later charges.
func (s *CartService) AddItem(userID, productID string, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidPayload)
	}

	product, err := s.ProductRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
	}
	if !product.Available {
		return nil, fmt.Errorf("%w: product %s is not available", ErrInvalidPayload, productID)
	}

	cart, err := s.Repo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}

	// Same product again just bumps the quantity.
	var line *entity.CartItem
	for i := range cart.Items {
		if cart.Items[i].ProductID == productID {
			line = &cart.Items[i]
			break
		}
	}
	if line != nil {
		line.Quantity += quantity
	} else {
		cart.Items = append(cart.Items, entity.CartItem{
			CartID:      cart.ID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    quantity,
			Price:       product.Price,
		})
		line = &cart.Items[len(cart.Items)-1]
	}
	cart.Recalculate()

	if err := s.Repo.SaveItem(line); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateTotal(cart.ID, cart.Total); err != nil {
		return nil, err
	}
	return s.Repo.GetOrCreate(userID)
}

func (s *CartService) UpdateItem(userID, itemID string, quantity int) (*entity.Cart, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidPayload)
	}

	cart, err := s.Repo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	var line *entity.CartItem
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			line = &cart.Items[i]
			break
		}
	}
	if line == nil {
		return nil, fmt.Errorf("%w: cart item %s", ErrNotFound, itemID)
	}

	line.Quantity = quantity
	cart.Recalculate()

	if err := s.Repo.SaveItem(line); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateTotal(cart.ID, cart.Total); err != nil {
		return nil, err
	}
	return s.Repo.GetOrCreate(userID)
}

func (s *CartService) RemoveItem(userID, itemID string) (*entity.Cart, error) {
	cart, err := s.Repo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.DeleteItem(cart.ID, itemID); err != nil {
		return nil, err
	}

	cart, err = s.Repo.GetOrCreate(userID)
	if err != nil {
		return nil, err
	}
	cart.Recalculate()
	if err := s.Repo.UpdateTotal(cart.ID, cart.Total); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *CartService) Clear(userID string) error {
	cart, err := s.Repo.GetOrCreate(userID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.Clear(tx, cart.ID)
	})
}
