package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Order is one seller's fulfillment unit from a customer checkout, scoped to a
// single store. It is only ever mutated through services.OrderService.
type Order struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	CustomerID string `gorm:"type:uuid;index:idx_orders_customer_created" json:"customerId"`
	SellerID   string `gorm:"type:uuid;index:idx_orders_seller_created" json:"sellerId"`
	StoreID    string `gorm:"type:uuid;index:idx_orders_store_created" json:"storeId"`

	Items []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`

	// TotalAmount = sum of item subtotals + ShippingFee, recomputed on every
	// mutation that touches items or fees.
	TotalAmount int64 `json:"totalAmount"`
	ShippingFee int64 `json:"shippingFee"`

	OrderType     OrderType     `gorm:"type:text" json:"orderType"`
	Status        OrderStatus   `gorm:"type:text;index" json:"status"`
	PaymentStatus PaymentStatus `gorm:"type:text" json:"paymentStatus"`
	PaymentMethod PaymentMethod `gorm:"type:text" json:"paymentMethod"`

	DeliveryDetails *DeliveryDetails `gorm:"embedded;embeddedPrefix:delivery_" json:"deliveryDetails,omitempty"`
	PickupDetails   *PickupDetails   `gorm:"embedded;embeddedPrefix:pickup_" json:"pickupDetails,omitempty"`

	// EstimatedTime is minutes until ready/handed off, seller-adjustable on accept.
	EstimatedTime int    `json:"estimatedTime,omitempty"`
	Notes         string `json:"notes,omitempty"`

	CancellationReason string    `json:"cancellationReason,omitempty"`
	CanceledBy         ActorRole `gorm:"type:text" json:"canceledBy,omitempty"`

	StatusHistory []OrderStatusHistory `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"statusHistory"`

	CreatedAt   time.Time  `gorm:"index:idx_orders_customer_created,priority:2;index:idx_orders_seller_created,priority:2;index:idx_orders_store_created,priority:2" json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	AcceptedAt  *time.Time `json:"acceptedAt,omitempty"`
	CanceledAt  *time.Time `json:"canceledAt,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}

type DeliveryDetails struct {
	ReceiverName           string `json:"receiverName"`
	ContactNumber          string `json:"contactNumber"`
	Building               string `json:"building"`
	RoomNumber             string `json:"roomNumber"`
	AdditionalInstructions string `json:"additionalInstructions,omitempty"`
}

type PickupDetails struct {
	ContactNumber string     `json:"contactNumber"`
	PickupTime    *time.Time `json:"pickupTime"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = StatusPending
	}
	if o.PaymentStatus == "" {
		o.PaymentStatus = PaymentPending
	}
	return nil
}

// Recalculate restores the money invariant: each item subtotal from quantity
// and unit price, then the order total from subtotals plus shipping fee.
func (o *Order) Recalculate() {
	var sum int64
	for i := range o.Items {
		o.Items[i].Subtotal = int64(o.Items[i].Quantity) * o.Items[i].Price
		sum += o.Items[i].Subtotal
	}
	o.TotalAmount = sum + o.ShippingFee
}

// IsParticipant reports whether userID placed or fulfills this order.
func (o *Order) IsParticipant(userID string) bool {
	return o.CustomerID == userID || o.SellerID == userID
}
