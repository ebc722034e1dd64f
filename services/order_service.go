package services

import (
	"fmt"
	"time"

	"bufood/entity"
	"bufood/repository"

	"gorm.io/gorm"
)

// OrderEvents receives post-commit notifications. Implementations must not
// block; delivery is best-effort and outside the correctness contract.
type OrderEvents interface {
	OrderUpdated(o *entity.Order)
}

// OrderService is the only writer of Order entities. Every status mutation is
// an atomic read-validate-guarded-write plus exactly one history append.
type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	CartRepo    *repository.CartRepository
	StoreRepo   *repository.StoreRepository
	ProductRepo *repository.ProductRepository

	Events OrderEvents
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	storeRepo *repository.StoreRepository,
	productRepo *repository.ProductRepository,
) *OrderService {
	return &OrderService{
		DB:          db,
		Repo:        repo,
		CartRepo:    cartRepo,
		StoreRepo:   storeRepo,
		ProductRepo: productRepo,
	}
}

// ----- Checkout -----

const defaultEstimatedMinutes = 30

type CheckoutReq struct {
	OrderType       entity.OrderType        `json:"orderType" binding:"required"`
	PaymentMethod   entity.PaymentMethod    `json:"paymentMethod"`
	DeliveryDetails *entity.DeliveryDetails `json:"deliveryDetails"`
	PickupDetails   *entity.PickupDetails   `json:"pickupDetails"`
	Notes           string                  `json:"notes"`
}

func (req *CheckoutReq) validate() error {
	switch req.OrderType {
	case entity.OrderTypeDelivery:
		d := req.DeliveryDetails
		if d == nil {
			return &MissingFieldError{Field: "deliveryDetails"}
		}
		for field, v := range map[string]string{
			"deliveryDetails.receiverName":  d.ReceiverName,
			"deliveryDetails.contactNumber": d.ContactNumber,
			"deliveryDetails.building":      d.Building,
			"deliveryDetails.roomNumber":    d.RoomNumber,
		} {
			if v == "" {
				return &MissingFieldError{Field: field}
			}
		}
		if req.PaymentMethod == "" {
			req.PaymentMethod = entity.PaymentCashOnDelivery
		}
		if req.PaymentMethod == entity.PaymentCashOnPickup {
			return fmt.Errorf("%w: payment method %q not valid for delivery orders", ErrInvalidPayload, req.PaymentMethod)
		}
	case entity.OrderTypePickup:
		p := req.PickupDetails
		if p == nil {
			return &MissingFieldError{Field: "pickupDetails"}
		}
		if p.ContactNumber == "" {
			return &MissingFieldError{Field: "pickupDetails.contactNumber"}
		}
		if p.PickupTime == nil {
			return &MissingFieldError{Field: "pickupDetails.pickupTime"}
		}
		if req.PaymentMethod == "" {
			req.PaymentMethod = entity.PaymentCashOnPickup
		}
		if req.PaymentMethod == entity.PaymentCashOnDelivery {
			return fmt.Errorf("%w: payment method %q not valid for pickup orders", ErrInvalidPayload, req.PaymentMethod)
		}
	default:
		return fmt.Errorf("%w: unknown order type %q", ErrInvalidPayload, req.OrderType)
	}

	switch req.PaymentMethod {
	case entity.PaymentCashOnDelivery, entity.PaymentCashOnPickup, entity.PaymentGCash:
		return nil
	default:
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidPayload, req.PaymentMethod)
	}
}

// CheckoutFromCart turns the customer's cart into one Pending order per store,
// using the unit prices snapshotted into the cart, then clears the cart.
func (s *OrderService) CheckoutFromCart(customerID string, req CheckoutReq) ([]*entity.Order, error) {
	if err := req.validate(); err != nil {
		return nil, err
	}

	cart, err := s.CartRepo.GetOrCreate(customerID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrEmptyCart
	}

	// Group cart lines per store, keeping first-seen store order stable.
	var storeIDs []string
	byStore := make(map[string][]entity.CartItem)
	for _, it := range cart.Items {
		sid := it.Product.StoreID
		if _, seen := byStore[sid]; !seen {
			storeIDs = append(storeIDs, sid)
		}
		byStore[sid] = append(byStore[sid], it)
	}

	orders := make([]*entity.Order, 0, len(storeIDs))
	for _, sid := range storeIDs {
		store, err := s.StoreRepo.GetByID(sid)
		if err != nil {
			return nil, fmt.Errorf("%w: store %s", ErrNotFound, sid)
		}
		o := s.buildOrder(customerID, store, byStore[sid], req)
		orders = append(orders, o)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, o := range orders {
			if err := s.Repo.CreateOrder(tx, o); err != nil {
				return err
			}
		}
		return s.CartRepo.Clear(tx, cart.ID)
	})
	if err != nil {
		return nil, err
	}

	for _, o := range orders {
		s.publish(o)
	}
	return orders, nil
}

// CheckoutFromProduct is the direct "buy now" path, bypassing the cart.
func (s *OrderService) CheckoutFromProduct(customerID, productID string, quantity int, req CheckoutReq) (*entity.Order, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidPayload)
	}
	if err := req.validate(); err != nil {
		return nil, err
	}

	product, err := s.ProductRepo.GetByID(productID)
	if err != nil {
		return nil, fmt.Errorf("%w: product %s", ErrNotFound, productID)
	}
	store, err := s.StoreRepo.GetByID(product.StoreID)
	if err != nil {
		return nil, fmt.Errorf("%w: store %s", ErrNotFound, product.StoreID)
	}

	line := entity.CartItem{
		ProductID:   product.ID,
		Product:     *product,
		ProductName: product.Name,
		Quantity:    quantity,
		Price:       product.Price,
	}
	o := s.buildOrder(customerID, store, []entity.CartItem{line}, req)

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateOrder(tx, o)
	})
	if err != nil {
		return nil, err
	}
	s.publish(o)
	return o, nil
}

// buildOrder assembles a Pending order for one store group, shipping fee and
// preparation estimate derived from the products involved.
func (s *OrderService) buildOrder(customerID string, store *entity.Store, lines []entity.CartItem, req CheckoutReq) *entity.Order {
	var shippingFee int64
	estimated := defaultEstimatedMinutes

	items := make([]entity.OrderItem, 0, len(lines))
	for _, it := range lines {
		items = append(items, entity.OrderItem{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
		if req.OrderType == entity.OrderTypeDelivery {
			shippingFee += it.Product.ShippingFee
		}
		if it.Product.EstimatedTime > estimated {
			estimated = it.Product.EstimatedTime
		}
	}

	o := &entity.Order{
		CustomerID:      customerID,
		SellerID:        store.OwnerID,
		StoreID:         store.ID,
		Items:           items,
		ShippingFee:     shippingFee,
		OrderType:       req.OrderType,
		Status:          entity.StatusPending,
		PaymentStatus:   entity.PaymentPending,
		PaymentMethod:   req.PaymentMethod,
		DeliveryDetails: req.DeliveryDetails,
		PickupDetails:   req.PickupDetails,
		EstimatedTime:   estimated,
		Notes:           req.Notes,
		StatusHistory: []entity.OrderStatusHistory{
			{Status: entity.StatusPending},
		},
	}
	o.Recalculate()
	return o
}

// ----- Status transitions -----

// Accept moves a Pending order to Accepted, optionally adjusting the
// preparation estimate.
func (s *OrderService) Accept(orderID, sellerID string, estimatedTime int, note string) (*entity.Order, error) {
	o, err := s.loadOwned(orderID, sellerID, entity.RoleSeller)
	if err != nil {
		return nil, err
	}
	var extra map[string]any
	if estimatedTime > 0 {
		extra = map[string]any{"estimated_time": estimatedTime}
	}
	return s.applyTransition(o, entity.StatusAccepted, entity.RoleSeller, note, extra)
}

// Reject is the seller backing out of a Pending order; a reason is mandatory.
func (s *OrderService) Reject(orderID, sellerID, reason string) (*entity.Order, error) {
	o, err := s.loadOwned(orderID, sellerID, entity.RoleSeller)
	if err != nil {
		return nil, err
	}
	return s.applyTransition(o, entity.StatusRejected, entity.RoleSeller, reason, nil)
}

// Cancel is customer-only and legal while the order is Pending or Accepted.
func (s *OrderService) Cancel(orderID, customerID, reason string) (*entity.Order, error) {
	o, err := s.loadOwned(orderID, customerID, entity.RoleCustomer)
	if err != nil {
		return nil, err
	}
	return s.applyTransition(o, entity.StatusCanceled, entity.RoleCustomer, reason, nil)
}

// UpdateStatus is the general transition entry point; the transition table
// decides legality.
func (s *OrderService) UpdateStatus(orderID, actorID string, role entity.ActorRole, to entity.OrderStatus, note string) (*entity.Order, error) {
	o, err := s.loadOwned(orderID, actorID, role)
	if err != nil {
		return nil, err
	}
	return s.applyTransition(o, to, role, note, nil)
}

// ----- Payment status -----

// MarkPaid settles the payment axis; only Pending may become Paid.
func (s *OrderService) MarkPaid(orderID, sellerID string) (*entity.Order, error) {
	return s.setPaymentStatus(orderID, sellerID, entity.PaymentPaid)
}

// MarkPaymentFailed records a failed settlement (e.g. a rejected GCash proof).
func (s *OrderService) MarkPaymentFailed(orderID, sellerID string) (*entity.Order, error) {
	return s.setPaymentStatus(orderID, sellerID, entity.PaymentFailed)
}

func (s *OrderService) setPaymentStatus(orderID, sellerID string, to entity.PaymentStatus) (*entity.Order, error) {
	o, err := s.loadOwned(orderID, sellerID, entity.RoleSeller)
	if err != nil {
		return nil, err
	}
	if o.PaymentStatus != entity.PaymentPending {
		return nil, fmt.Errorf("%w: payment status is already %s", ErrInvalidPaymentTransition, o.PaymentStatus)
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdatePaymentStatusGuard(tx, o.ID, entity.PaymentPending, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConcurrentModification
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return s.reloadAndPublish(o.ID)
}

// ----- internals -----

// loadOwned fetches the order and enforces that the actor owns its side of it.
func (s *OrderService) loadOwned(orderID, actorID string, role entity.ActorRole) (*entity.Order, error) {
	o, err := s.Repo.GetOrder(s.DB, orderID)
	if err != nil {
		if s.Repo.IsNotFound(err) {
			return nil, fmt.Errorf("%w: order %s", ErrNotFound, orderID)
		}
		return nil, err
	}
	switch role {
	case entity.RoleSeller:
		if o.SellerID != actorID {
			return nil, ErrForbidden
		}
	case entity.RoleCustomer:
		if o.CustomerID != actorID {
			return nil, ErrForbidden
		}
	default:
		return nil, ErrForbidden
	}
	return o, nil
}

// applyTransition validates against the snapshot, then writes guarded on the
// snapshot's status: if the row moved on in the meantime the guard misses and
// the caller gets ErrConcurrentModification instead of a corrupted state.
func (s *OrderService) applyTransition(o *entity.Order, to entity.OrderStatus, role entity.ActorRole, note string, extra map[string]any) (*entity.Order, error) {
	eff, err := ValidateTransition(o, to, role, note)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	updates := map[string]any{"status": to}
	settleCashOnHandoff := false
	if eff.setAcceptedAt {
		updates["accepted_at"] = now
	}
	if eff.setCanceledAt {
		updates["canceled_at"] = now
		updates["canceled_by"] = eff.canceledBy
		updates["cancellation_reason"] = note
	}
	if eff.setDeliveredAt {
		updates["delivered_at"] = now
		settleCashOnHandoff = o.OrderType == entity.OrderTypePickup && o.PaymentMethod.IsCash()
	}
	for k, v := range extra {
		updates[k] = v
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, o.ID, o.Status, updates)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConcurrentModification
		}
		if settleCashOnHandoff {
			// Cash pickup orders settle at handoff. Paid/Failed are terminal
			// on the payment axis, so this rides its own guard; a miss means
			// the seller already settled and the handoff simply stands.
			if _, err := s.Repo.UpdatePaymentStatusGuard(tx, o.ID, entity.PaymentPending, entity.PaymentPaid); err != nil {
				return err
			}
		}
		return s.Repo.AppendHistory(tx, &entity.OrderStatusHistory{
			OrderID: o.ID,
			Status:  to,
			Note:    note,
		})
	})
	if err != nil {
		return nil, err
	}
	return s.reloadAndPublish(o.ID)
}

func (s *OrderService) reloadAndPublish(orderID string) (*entity.Order, error) {
	o, err := s.Repo.GetOrderWithHistory(orderID)
	if err != nil {
		return nil, err
	}
	s.publish(o)
	return o, nil
}

func (s *OrderService) publish(o *entity.Order) {
	if s.Events != nil {
		s.Events.OrderUpdated(o)
	}
}
