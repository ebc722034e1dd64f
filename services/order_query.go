package services

import (
	"fmt"

	"bufood/entity"
	"bufood/repository"
)

// Read-only views over orders. Writers live in order_service.go.

type OrderPage struct {
	Items []entity.Order `json:"items"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

// ListForSeller returns the seller's orders, filtered and paginated; the
// repository normalizes the filter (limit capped at 100) and the normalized
// page and limit are echoed back.
func (s *OrderService) ListForSeller(sellerID string, f repository.SellerOrderFilter) (*OrderPage, error) {
	orders, total, err := s.Repo.ListForSeller(sellerID, &f)
	if err != nil {
		return nil, err
	}
	return &OrderPage{Items: orders, Total: total, Page: f.Page, Limit: f.Limit}, nil
}

// SellerAnalytics reports order counts, revenue over delivered orders, and the
// seller's best-selling products.
func (s *OrderService) SellerAnalytics(sellerID string, topN int) (*repository.SellerAnalytics, error) {
	return s.Repo.SellerAnalytics(sellerID, topN)
}

// ListForCustomer returns all of the customer's orders, most recent first.
func (s *OrderService) ListForCustomer(customerID string) ([]entity.Order, error) {
	return s.Repo.ListForCustomer(customerID)
}

// GetByID returns one order with its full status history. Only the order's
// customer or seller may see it.
func (s *OrderService) GetByID(orderID, requesterID string) (*entity.Order, error) {
	o, err := s.Repo.GetOrderWithHistory(orderID)
	if err != nil {
		if s.Repo.IsNotFound(err) {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
		}
		return nil, err
	}
	if !o.IsParticipant(requesterID) {
		return nil, ErrForbidden
	}
	return o, nil
}
