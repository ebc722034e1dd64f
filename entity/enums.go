package entity

// Wire values follow the mobile/web clients, so several carry spaces.

type OrderStatus string

const (
	StatusPending        OrderStatus = "Pending"
	StatusAccepted       OrderStatus = "Accepted"
	StatusRejected       OrderStatus = "Rejected"
	StatusPreparing      OrderStatus = "Preparing"
	StatusReady          OrderStatus = "Ready"
	StatusOutForDelivery OrderStatus = "Out for Delivery"
	StatusReadyForPickup OrderStatus = "Ready for Pickup"
	StatusDelivered      OrderStatus = "Delivered"
	StatusCanceled       OrderStatus = "Canceled"
)

// IsTerminal reports whether no further status transition is possible.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusRejected || s == StatusCanceled || s == StatusDelivered
}

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "Pending"
	PaymentPaid    PaymentStatus = "Paid"
	PaymentFailed  PaymentStatus = "Failed"
)

type OrderType string

const (
	OrderTypePickup   OrderType = "Pickup"
	OrderTypeDelivery OrderType = "Delivery"
)

type PaymentMethod string

const (
	PaymentCashOnDelivery PaymentMethod = "Cash on Delivery"
	PaymentGCash          PaymentMethod = "GCash"
	PaymentCashOnPickup   PaymentMethod = "Cash on Pickup"
)

// IsCash reports whether settlement happens in person at handoff.
func (m PaymentMethod) IsCash() bool {
	return m == PaymentCashOnDelivery || m == PaymentCashOnPickup
}

type ActorRole string

const (
	RoleCustomer ActorRole = "Customer"
	RoleSeller   ActorRole = "Seller"
)
