package repository

import (
	"errors"
	"time"

	"bufood/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

// CreateOrder persists an order together with its items and the initial
// history row in the caller's transaction.
func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(tx *gorm.DB, orderID string) (*entity.Order, error) {
	var o entity.Order
	err := tx.Preload("Items").First(&o, "id = ?", orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// GetOrderWithHistory loads the full entity incl. the audit trail in commit
// order.
func (r *OrderRepository) GetOrderWithHistory(orderID string) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.Preload("Items").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&o, "id = ?", orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// ---------------- Guarded status writes ----------------

// UpdateStatusGuard applies updates only while the row still holds the
// expected current status. Zero rows affected means another writer got there
// first; the caller surfaces that as a conflict.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID string, from entity.OrderStatus, updates map[string]any) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND status = ?", orderID, from).
		Updates(updates)
	return res.RowsAffected, res.Error
}

// UpdatePaymentStatusGuard is the same discipline on the payment axis.
func (r *OrderRepository) UpdatePaymentStatusGuard(tx *gorm.DB, orderID string, from, to entity.PaymentStatus) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND payment_status = ?", orderID, from).
		Update("payment_status", to)
	return res.RowsAffected, res.Error
}

// AppendHistory adds exactly one audit row; history rows are never updated or
// deleted.
func (r *OrderRepository) AppendHistory(tx *gorm.DB, h *entity.OrderStatusHistory) error {
	return tx.Create(h).Error
}

// ---------------- Queries ----------------

// SellerOrderFilter narrows and pages the seller view. Zero values mean "no
// filter".
type SellerOrderFilter struct {
	Status    entity.OrderStatus
	OrderType entity.OrderType
	From      *time.Time
	To        *time.Time

	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// sortColumns whitelists client-supplied sort keys.
var sortColumns = map[string]string{
	"createdAt":   "created_at",
	"totalAmount": "total_amount",
	"status":      "status",
}

func (f *SellerOrderFilter) normalize() {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	if _, ok := sortColumns[f.SortBy]; !ok {
		f.SortBy = "createdAt"
	}
	if f.SortOrder != "asc" {
		f.SortOrder = "desc"
	}
}

// ListForSeller normalizes the filter in place so callers can echo the
// effective page and limit back to the client.
func (r *OrderRepository) ListForSeller(sellerID string, f *SellerOrderFilter) ([]entity.Order, int64, error) {
	f.normalize()

	q := r.DB.Model(&entity.Order{}).Where("seller_id = ?", sellerID)
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.OrderType != "" {
		q = q.Where("order_type = ?", f.OrderType)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []entity.Order
	err := q.Preload("Items").
		Order(sortColumns[f.SortBy] + " " + f.SortOrder).
		Limit(f.Limit).Offset((f.Page - 1) * f.Limit).
		Find(&orders).Error
	return orders, total, err
}

// SellerAnalytics summarizes the seller's business for the dashboard. Revenue
// counts Delivered orders only; canceled and in-flight money is not income.
type SellerAnalytics struct {
	TotalOrders     int64          `json:"totalOrders"`
	DeliveredOrders int64          `json:"deliveredOrders"`
	TotalRevenue    int64          `json:"totalRevenue"`
	TopProducts     []ProductSales `json:"topProducts"`
}

type ProductSales struct {
	ProductID    string `json:"productId"`
	ProductName  string `json:"productName"`
	QuantitySold int    `json:"quantitySold"`
	Revenue      int64  `json:"revenue"`
}

func (r *OrderRepository) SellerAnalytics(sellerID string, topN int) (*SellerAnalytics, error) {
	if topN <= 0 || topN > 20 {
		topN = 5
	}
	var out SellerAnalytics

	if err := r.DB.Model(&entity.Order{}).
		Where("seller_id = ?", sellerID).
		Count(&out.TotalOrders).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&entity.Order{}).
		Where("seller_id = ? AND status = ?", sellerID, entity.StatusDelivered).
		Count(&out.DeliveredOrders).Error; err != nil {
		return nil, err
	}
	if err := r.DB.Model(&entity.Order{}).
		Where("seller_id = ? AND status = ?", sellerID, entity.StatusDelivered).
		Select("COALESCE(SUM(total_amount), 0)").
		Scan(&out.TotalRevenue).Error; err != nil {
		return nil, err
	}

	err := r.DB.Table("order_items").
		Select("order_items.product_id, order_items.product_name, SUM(order_items.quantity) AS quantity_sold, SUM(order_items.subtotal) AS revenue").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.seller_id = ? AND orders.status = ?", sellerID, entity.StatusDelivered).
		Group("order_items.product_id, order_items.product_name").
		Order("quantity_sold DESC").
		Limit(topN).
		Scan(&out.TopProducts).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *OrderRepository) ListForCustomer(customerID string) ([]entity.Order, error) {
	var orders []entity.Order
	err := r.DB.Preload("Items").
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&orders).Error
	return orders, err
}
