package dto

import (
	"time"

	"github.com/allmart/backoffice/internal/domain/model"
)

// CustomerPayload is buyer contact data as it travels over the wire.
type CustomerPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// OrderItemPayload is one purchased line.
type OrderItemPayload struct {
	ProductID    string  `json:"productId"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage,omitempty"`
	Quantity     int     `json:"quantity"`
	UnitPrice    float64 `json:"unitPrice"`
}

// CheckoutRequest is the storefront order submission payload.
type CheckoutRequest struct {
	Customer CustomerPayload    `json:"customer"`
	Items    []OrderItemPayload `json:"items"`
	Total    float64            `json:"total"`
	Notes    string             `json:"notes"`
}

// StatusChangeRequest sets a new order status with an optional note.
type StatusChangeRequest struct {
	Status string `json:"status"`
	Note   string `json:"note"`
}

// OrderPatchRequest carries partial order edits. Absent fields are left
// untouched; status is not part of this payload.
type OrderPatchRequest struct {
	Customer        *CustomerPayload `json:"customer"`
	Notes           *string          `json:"notes"`
	Total           *float64         `json:"total"`
	ExpectedVersion *int64           `json:"expectedVersion"`
}

// StatusChangePayload is one audit trail entry.
type StatusChangePayload struct {
	Status    string    `json:"status"`
	ChangedAt time.Time `json:"changedAt"`
	Note      string    `json:"note,omitempty"`
}

// OrderResponse is the full order representation. StatusHistory lists the
// most recent change first.
type OrderResponse struct {
	ID            string                `json:"id"`
	CreatedAt     time.Time             `json:"createdAt"`
	Customer      CustomerPayload       `json:"customer"`
	Items         []OrderItemPayload    `json:"items"`
	Total         float64               `json:"total"`
	Status        string                `json:"status"`
	PaymentStatus string                `json:"paymentStatus,omitempty"`
	PaidAt        *time.Time            `json:"paidAt,omitempty"`
	Notes         string                `json:"notes,omitempty"`
	StatusHistory []StatusChangePayload `json:"statusHistory"`
	Version       int64                 `json:"version"`
}

// FromOrder builds the wire representation of an order.
func FromOrder(order model.Order) OrderResponse {
	resp := OrderResponse{
		ID:        order.ID,
		CreatedAt: order.CreatedAt,
		Customer: CustomerPayload{
			FirstName: order.Customer.FirstName,
			LastName:  order.Customer.LastName,
			Email:     order.Customer.Email,
		},
		Total:         order.Total,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		PaidAt:        order.PaidAt,
		Notes:         order.Notes,
		Version:       order.Version,
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, OrderItemPayload{
			ProductID:    item.ProductID,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
			Quantity:     item.Quantity,
			UnitPrice:    item.UnitPrice,
		})
	}
	resp.StatusHistory = make([]StatusChangePayload, 0, len(order.StatusHistory))
	for i := len(order.StatusHistory) - 1; i >= 0; i-- {
		change := order.StatusHistory[i]
		resp.StatusHistory = append(resp.StatusHistory, StatusChangePayload{
			Status:    string(change.Status),
			ChangedAt: change.ChangedAt,
			Note:      change.Note,
		})
	}
	return resp
}

// ToCustomer converts the payload back into the domain type.
func (p CustomerPayload) ToCustomer() model.Customer {
	return model.Customer{FirstName: p.FirstName, LastName: p.LastName, Email: p.Email}
}

// ToItems converts item payloads into domain order lines.
func ToItems(payloads []OrderItemPayload) []model.OrderItem {
	items := make([]model.OrderItem, 0, len(payloads))
	for _, p := range payloads {
		items = append(items, model.OrderItem{
			ProductID:    p.ProductID,
			ProductName:  p.ProductName,
			ProductImage: p.ProductImage,
			Quantity:     p.Quantity,
			UnitPrice:    p.UnitPrice,
		})
	}
	return items
}
