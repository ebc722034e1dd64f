package services

import (
	"testing"
	"time"

	"bufood/entity"
	"bufood/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedSellerOrders creates n pending orders for one seller from distinct
// customers and returns the seller's id plus the orders in creation order.
func seedSellerOrders(t *testing.T, svc *OrderService, n int) (sellerID string, orders []*entity.Order) {
	t.Helper()
	db := svc.DB
	seller := createUser(t, db, entity.RoleSeller)
	store := createStore(t, db, seller.ID)
	p := createProduct(t, db, store.ID, 50, 10)

	for i := 0; i < n; i++ {
		customer := createUser(t, db, entity.RoleCustomer)
		addToCart(t, db, customer.ID, p, i+1)
		batch, err := svc.CheckoutFromCart(customer.ID, deliveryCheckout())
		require.NoError(t, err)
		require.Len(t, batch, 1)
		orders = append(orders, batch[0])
	}
	return seller.ID, orders
}

func TestListForSeller_FilterByStatus(t *testing.T) {
	svc, _ := newOrderService(t)
	sellerID, orders := seedSellerOrders(t, svc, 3)

	_, err := svc.Accept(orders[0].ID, sellerID, 0, "")
	require.NoError(t, err)
	_, err = svc.Reject(orders[1].ID, sellerID, "closing early")
	require.NoError(t, err)

	page, err := svc.ListForSeller(sellerID, repository.SellerOrderFilter{Status: entity.StatusPending})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, orders[2].ID, page.Items[0].ID)

	page, err = svc.ListForSeller(sellerID, repository.SellerOrderFilter{Status: entity.StatusAccepted})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, orders[0].ID, page.Items[0].ID)
}

func TestListForSeller_FilterByOrderType(t *testing.T) {
	svc, db := newOrderService(t)
	seller := createUser(t, db, entity.RoleSeller)
	store := createStore(t, db, seller.ID)
	p := createProduct(t, db, store.ID, 50, 10)

	c1 := createUser(t, db, entity.RoleCustomer)
	addToCart(t, db, c1.ID, p, 1)
	_, err := svc.CheckoutFromCart(c1.ID, deliveryCheckout())
	require.NoError(t, err)

	c2 := createUser(t, db, entity.RoleCustomer)
	addToCart(t, db, c2.ID, p, 1)
	_, err = svc.CheckoutFromCart(c2.ID, pickupCheckout())
	require.NoError(t, err)

	page, err := svc.ListForSeller(seller.ID, repository.SellerOrderFilter{OrderType: entity.OrderTypePickup})
	require.NoError(t, err)
	assert.EqualValues(t, 1, page.Total)
	require.Len(t, page.Items, 1)
	assert.Equal(t, entity.OrderTypePickup, page.Items[0].OrderType)
}

func TestListForSeller_DateRange(t *testing.T) {
	svc, _ := newOrderService(t)
	sellerID, _ := seedSellerOrders(t, svc, 2)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	page, err := svc.ListForSeller(sellerID, repository.SellerOrderFilter{From: &past, To: &future})
	require.NoError(t, err)
	assert.EqualValues(t, 2, page.Total)

	longAgo := time.Now().Add(-2 * time.Hour)
	page, err = svc.ListForSeller(sellerID, repository.SellerOrderFilter{From: &longAgo, To: &past})
	require.NoError(t, err)
	assert.EqualValues(t, 0, page.Total)
	assert.Empty(t, page.Items)
}

func TestListForSeller_Pagination(t *testing.T) {
	svc, _ := newOrderService(t)
	sellerID, _ := seedSellerOrders(t, svc, 5)

	page, err := svc.ListForSeller(sellerID, repository.SellerOrderFilter{Page: 1, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, page.Total)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 2, page.Limit)

	page3, err := svc.ListForSeller(sellerID, repository.SellerOrderFilter{Page: 3, Limit: 2})
	require.NoError(t, err)
	assert.Len(t, page3.Items, 1)

	// Zero values fall back to page 1 / limit 20; oversized limits are capped.
	page, err = svc.ListForSeller(sellerID, repository.SellerOrderFilter{})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.Limit)
	assert.Len(t, page.Items, 5)

	page, err = svc.ListForSeller(sellerID, repository.SellerOrderFilter{Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 100, page.Limit)
}

func TestListForSeller_SortByTotal(t *testing.T) {
	svc, _ := newOrderService(t)
	// Quantities 1..3 at price 50 + fee 10 give distinct totals 60, 110, 160.
	sellerID, _ := seedSellerOrders(t, svc, 3)

	page, err := svc.ListForSeller(sellerID, repository.SellerOrderFilter{SortBy: "totalAmount", SortOrder: "asc"})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, int64(60), page.Items[0].TotalAmount)
	assert.Equal(t, int64(160), page.Items[2].TotalAmount)

	page, err = svc.ListForSeller(sellerID, repository.SellerOrderFilter{SortBy: "totalAmount", SortOrder: "desc"})
	require.NoError(t, err)
	assert.Equal(t, int64(160), page.Items[0].TotalAmount)
}

func TestListForCustomer(t *testing.T) {
	svc, db := newOrderService(t)
	seller := createUser(t, db, entity.RoleSeller)
	store := createStore(t, db, seller.ID)
	p := createProduct(t, db, store.ID, 50, 10)

	customer := createUser(t, db, entity.RoleCustomer)
	other := createUser(t, db, entity.RoleCustomer)
	for _, c := range []*entity.User{customer, other} {
		addToCart(t, db, c.ID, p, 1)
		_, err := svc.CheckoutFromCart(c.ID, deliveryCheckout())
		require.NoError(t, err)
	}

	mine, err := svc.ListForCustomer(customer.ID)
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, customer.ID, mine[0].CustomerID)
}

func TestSellerAnalytics(t *testing.T) {
	svc, _ := newOrderService(t)
	// Quantities 1..3 at price 50 + fee 10 give totals 60, 110, 160.
	sellerID, orders := seedSellerOrders(t, svc, 3)

	steps := []entity.OrderStatus{
		entity.StatusAccepted,
		entity.StatusPreparing,
		entity.StatusOutForDelivery,
		entity.StatusDelivered,
	}
	for _, o := range orders[1:] {
		for _, step := range steps {
			_, err := svc.UpdateStatus(o.ID, sellerID, entity.RoleSeller, step, "")
			require.NoError(t, err)
		}
	}

	a, err := svc.SellerAnalytics(sellerID, 5)
	require.NoError(t, err)
	assert.EqualValues(t, 3, a.TotalOrders)
	assert.EqualValues(t, 2, a.DeliveredOrders)
	assert.Equal(t, int64(270), a.TotalRevenue) // 110 + 160
	require.Len(t, a.TopProducts, 1)
	assert.Equal(t, 5, a.TopProducts[0].QuantitySold) // qty 2 + qty 3
	assert.Equal(t, int64(250), a.TopProducts[0].Revenue)
}

func TestSellerAnalytics_EmptySeller(t *testing.T) {
	svc, db := newOrderService(t)
	seller := createUser(t, db, entity.RoleSeller)

	a, err := svc.SellerAnalytics(seller.ID, 0)
	require.NoError(t, err)
	assert.Zero(t, a.TotalOrders)
	assert.Zero(t, a.TotalRevenue)
	assert.Empty(t, a.TopProducts)
}

func TestGetByID_AccessControl(t *testing.T) {
	svc, db := newOrderService(t)
	o, customerID, sellerID := setupOrder(t, svc, deliveryCheckout())

	for _, id := range []string{customerID, sellerID} {
		got, err := svc.GetByID(o.ID, id)
		require.NoError(t, err)
		assert.Equal(t, o.ID, got.ID)
	}

	stranger := createUser(t, db, entity.RoleCustomer)
	_, err := svc.GetByID(o.ID, stranger.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetByID("no-such-order", customerID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetByID_HistoryOrdered(t *testing.T) {
	svc, _ := newOrderService(t)
	o, customerID, sellerID := setupOrder(t, svc, deliveryCheckout())

	_, err := svc.Accept(o.ID, sellerID, 0, "")
	require.NoError(t, err)
	_, err = svc.UpdateStatus(o.ID, sellerID, entity.RoleSeller, entity.StatusPreparing, "")
	require.NoError(t, err)

	got, err := svc.GetByID(o.ID, customerID)
	require.NoError(t, err)
	require.Len(t, got.StatusHistory, 3)
	want := []entity.OrderStatus{entity.StatusPending, entity.StatusAccepted, entity.StatusPreparing}
	for i, h := range got.StatusHistory {
		assert.Equal(t, want[i], h.Status)
	}
}
