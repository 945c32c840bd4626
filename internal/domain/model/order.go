package model

import "time"

// OrderStatus describes fulfillment lifecycle.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pendiente"
	OrderStatusConfirmed OrderStatus = "confirmado"
	OrderStatusPreparing OrderStatus = "en-preparacion"
	OrderStatusShipped   OrderStatus = "enviado"
	OrderStatusDelivered OrderStatus = "entregado"
	OrderStatusCancelled OrderStatus = "cancelado"
)

// OrderStatuses lists every known status in display order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusPending,
		OrderStatusConfirmed,
		OrderStatusPreparing,
		OrderStatusShipped,
		OrderStatusDelivered,
		OrderStatusCancelled,
	}
}

// Valid reports whether the status belongs to the known vocabulary.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus tracks out-of-band payment confirmation, decoupled from fulfillment.
type PaymentStatus string

const (
	PaymentStatusUnpaid PaymentStatus = "no-abonado"
	PaymentStatusPaid   PaymentStatus = "abonado"
)

// Customer holds buyer contact data captured at checkout.
type Customer struct {
	FirstName string
	LastName  string
	Email     string
}

// OrderItem is a single purchased line, fixed at order creation.
type OrderItem struct {
	ProductID    string
	ProductName  string
	ProductImage string
	Quantity     int
	UnitPrice    float64
}

// StatusChange is one append-only audit trail entry.
type StatusChange struct {
	Status    OrderStatus
	ChangedAt time.Time
	Note      string
}

// Order describes a customer purchase tracked through fulfillment and payment.
// StatusHistory is kept in ascending ChangedAt order; legacy records with an
// empty history are tolerated.
type Order struct {
	ID            string
	CreatedAt     time.Time
	Customer      Customer
	Items         []OrderItem
	Total         float64
	Status        OrderStatus
	PaymentStatus PaymentStatus
	PaidAt        *time.Time
	Notes         string
	StatusHistory []StatusChange
	Version       int64
	NotifiedAt    *time.Time
}

// Active reports whether the order counts towards revenue and KPIs.
func (o *Order) Active() bool {
	return o.Status != OrderStatusCancelled
}

// Paid reports whether payment was confirmed.
func (o *Order) Paid() bool {
	return o.PaymentStatus == PaymentStatusPaid
}

// OrderDraft carries the caller-supplied part of a new order. Total is
// stored as given, not recomputed from the items.
type OrderDraft struct {
	Customer Customer
	Items    []OrderItem
	Total    float64
	Status   OrderStatus
	Notes    string
}

// OrderPatch carries the fields an admin may edit in place. Status is
// deliberately absent: status changes must go through the history-logging
// path so the audit trail cannot be bypassed.
type OrderPatch struct {
	Customer        *Customer
	Notes           *string
	Total           *float64
	ExpectedVersion *int64
}
