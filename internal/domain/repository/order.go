package repository

import (
	"context"
	"time"

	"github.com/allmart/backoffice/internal/domain/model"
)

// OrderRepository describes persistence operations with orders. Every
// mutation is durable before it returns; failures surface as errors.
type OrderRepository interface {
	Create(ctx context.Context, order *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	// List returns all orders, most recent first.
	List(ctx context.Context) ([]model.Order, error)
	// ChangeStatus sets the status and appends one history entry in the same
	// transaction. Returns the updated order.
	ChangeStatus(ctx context.Context, id string, status model.OrderStatus, note string, at time.Time) (*model.Order, error)
	// Patch merges editable fields. The patch type cannot carry a status.
	Patch(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error)
	Delete(ctx context.Context, id string) error
	// MarkPaid sets payment confirmation; paidAt is refreshed on every call.
	MarkPaid(ctx context.Context, id string, at time.Time) (*model.Order, error)
	// SelectUnnotified returns oldest orders not yet announced to the
	// notification webhook.
	SelectUnnotified(ctx context.Context, limit int) ([]model.Order, error)
	MarkNotified(ctx context.Context, id string, at time.Time) error
}
