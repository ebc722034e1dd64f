package services

import (
	"testing"

	"bufood/entity"
	"bufood/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newCartService(t *testing.T) (*CartService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewCartService(db, repository.NewCartRepository(db), repository.NewProductRepository(db))
	return svc, db
}

func TestCart_AddItemSnapshotsPrice(t *testing.T) {
	svc, db := newCartService(t)
	seller := createUser(t, db, entity.RoleSeller)
	store := createStore(t, db, seller.ID)
	p := createProduct(t, db, store.ID, 50, 10)
	customer := createUser(t, db, entity.RoleCustomer)

	cart, err := svc.AddItem(customer.ID, p.ID, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(50), cart.Items[0].Price)
	assert.Equal(t, int64(100), cart.Items[0].Subtotal)
	assert.Equal(t, int64(100), cart.Total)

	// A later price change must not touch the snapshotted line.
	require.NoError(t, db.Model(p).Update("price", int64(999)).Error)
	cart, err = svc.Get(customer.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(50), cart.Items[0].Price)
	assert.Equal(t, int64(100), cart.Total)
}

func TestCart_AddSameProductBumpsQuantity(t *testing.T) {
	svc, db := newCartService(t)
	seller := createUser(t, db, entity.RoleSeller)
	store := createStore(t, db, seller.ID)
	p := createProduct(t, db, store.ID, 50, 10)
	customer := createUser(t, db, entity.RoleCustomer)

	_, err := svc.AddItem(customer.ID, p.ID, 1)
	require.NoError(t, err)
	cart, err := svc.AddItem(customer.ID, p.ID, 2)
	require.NoError(t, err)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, int64(150), cart.Total)
}

func TestCart_AddUnavailableProduct(t *testing.T) {
	svc, db := newCartService(t)
	seller := createUser(t, db, entity.RoleSeller)
	store := createStore(t, db, seller.ID)
	p := createProduct(t, db, store.ID, 50, 10)
	require.NoError(t, db.Model(p).Update("available", false).Error)
	customer := createUser(t, db, entity.RoleCustomer)

	_, err := svc.AddItem(customer.ID, p.ID, 1)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = svc.AddItem(customer.ID, p.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidPayload)

	_, err = svc.AddItem(customer.ID, "no-such-product", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCart_UpdateAndRemoveItem(t *testing.T) {
	svc, db := newCartService(t)
	seller := createUser(t, db, entity.RoleSeller)
	store := createStore(t, db, seller.ID)
	p1 := createProduct(t, db, store.ID, 50, 10)
	p2 := createProduct(t, db, store.ID, 30, 10)
	customer := createUser(t, db, entity.RoleCustomer)

	_, err := svc.AddItem(customer.ID, p1.ID, 1)
	require.NoError(t, err)
	cart, err := svc.AddItem(customer.ID, p2.ID, 1)
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, int64(80), cart.Total)

	var line1 entity.CartItem
	for _, it := range cart.Items {
		if it.ProductID == p1.ID {
			line1 = it
		}
	}
	cart, err = svc.UpdateItem(customer.ID, line1.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(230), cart.Total) // 200 + 30

	cart, err = svc.RemoveItem(customer.ID, line1.ID)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(30), cart.Total)

	_, err = svc.UpdateItem(customer.ID, "gone", 1)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCart_Clear(t *testing.T) {
	svc, db := newCartService(t)
	seller := createUser(t, db, entity.RoleSeller)
	store := createStore(t, db, seller.ID)
	p := createProduct(t, db, store.ID, 50, 10)
	customer := createUser(t, db, entity.RoleCustomer)

	_, err := svc.AddItem(customer.ID, p.ID, 2)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(customer.ID))

	cart, err := svc.Get(customer.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
	assert.Zero(t, cart.Total)
}
