package services

import (
	"fmt"
	"testing"
	"time"

	"bufood/entity"
	"bufood/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Named shared-cache DB so the pool's connections all see one schema.
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&entity.User{},
		&entity.Store{}, &entity.Product{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.Order{}, &entity.OrderItem{}, &entity.OrderStatusHistory{},
		&entity.Conversation{}, &entity.Message{},
	))
	return db
}

func newOrderService(t *testing.T) (*OrderService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewOrderService(
		db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewStoreRepository(db),
		repository.NewProductRepository(db),
	)
	return svc, db
}

func createUser(t *testing.T, db *gorm.DB, role entity.ActorRole) *entity.User {
	t.Helper()
	u := &entity.User{
		Name:  string(role) + " " + uuid.NewString()[:8],
		Email: uuid.NewString() + "@test.local",
		Role:  role,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createStore(t *testing.T, db *gorm.DB, ownerID string) *entity.Store {
	t.Helper()
	s := &entity.Store{OwnerID: ownerID, StoreName: "Store " + uuid.NewString()[:8], IsOpen: true}
	require.NoError(t, db.Create(s).Error)
	return s
}

func createProduct(t *testing.T, db *gorm.DB, storeID string, price, shippingFee int64) *entity.Product {
	t.Helper()
	p := &entity.Product{
		StoreID:     storeID,
		Name:        "Product " + uuid.NewString()[:8],
		Price:       price,
		ShippingFee: shippingFee,
		Available:   true,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func addToCart(t *testing.T, db *gorm.DB, customerID string, p *entity.Product, qty int) {
	t.Helper()
	repo := repository.NewCartRepository(db)
	cart, err := repo.GetOrCreate(customerID)
	require.NoError(t, err)
	item := &entity.CartItem{
		CartID:      cart.ID,
		ProductID:   p.ID,
		ProductName: p.Name,
		Quantity:    qty,
		Price:       p.Price,
		Subtotal:    int64(qty) * p.Price,
	}
	require.NoError(t, db.Create(item).Error)
}

func deliveryCheckout() CheckoutReq {
	return CheckoutReq{
		OrderType:     entity.OrderTypeDelivery,
		PaymentMethod: entity.PaymentCashOnDelivery,
		DeliveryDetails: &entity.DeliveryDetails{
			ReceiverName:  "Juan dela Cruz",
			ContactNumber: "09170000000",
			Building:      "Dorm A",
			RoomNumber:    "203",
		},
	}
}

func pickupCheckout() CheckoutReq {
	at := time.Now().Add(time.Hour)
	return CheckoutReq{
		OrderType:     entity.OrderTypePickup,
		PaymentMethod: entity.PaymentCashOnPickup,
		PickupDetails: &entity.PickupDetails{
			ContactNumber: "09170000000",
			PickupTime:    &at,
		},
	}
}

// requireMoneyInvariant asserts totalAmount == sum of item subtotals + fee and
// each subtotal == qty * price.
func requireMoneyInvariant(t *testing.T, o *entity.Order) {
	t.Helper()
	var sum int64
	for _, it := range o.Items {
		require.Equal(t, int64(it.Quantity)*it.Price, it.Subtotal)
		sum += it.Subtotal
	}
	require.Equal(t, sum+o.ShippingFee, o.TotalAmount)
}
