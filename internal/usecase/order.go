package usecase

import (
	"context"
	"time"

	domainErrors "github.com/allmart/backoffice/internal/domain/errors"
	"github.com/allmart/backoffice/internal/domain/model"
	"github.com/allmart/backoffice/internal/domain/repository"
)

// createdNote annotates the history entry seeded at order creation.
const createdNote = "order received"

// TransitionValidator can restrict status transitions. The default is nil:
// any status is reachable from any other, so admins can undo mistakes by
// re-selecting a prior status.
type TransitionValidator func(from, to model.OrderStatus) error

// OrderUseCase encapsulates order lifecycle logic.
type OrderUseCase struct {
	orders   repository.OrderRepository
	validate TransitionValidator
	now      func() time.Time
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, now: time.Now}
}

// UseTransitionValidator installs an optional status transition restriction.
func (u *OrderUseCase) UseTransitionValidator(v TransitionValidator) {
	u.validate = v
}

// Create registers a new order and seeds its status history with a single
// entry matching the initial status.
func (u *OrderUseCase) Create(ctx context.Context, data model.OrderDraft) (*model.Order, error) {
	if len(data.Items) == 0 || data.Customer.Email == "" {
		return nil, domainErrors.ErrInvalidOrder
	}

	status := data.Status
	if status == "" {
		status = model.OrderStatusPending
	}
	if !status.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}

	now := u.now()
	order := &model.Order{
		ID:        model.NewOrderID(),
		CreatedAt: now,
		Customer:  data.Customer,
		Items:     data.Items,
		Total:     data.Total,
		Status:    status,
		Notes:     data.Notes,
		StatusHistory: []model.StatusChange{
			{Status: status, ChangedAt: now, Note: createdNote},
		},
		Version: 1,
	}

	if err := u.orders.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Get fetches one order by identifier.
func (u *OrderUseCase) Get(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.GetByID(ctx, id)
}

// List returns all orders, most recent first.
func (u *OrderUseCase) List(ctx context.Context) ([]model.Order, error) {
	return u.orders.List(ctx)
}

// ChangeStatus sets a new status and appends exactly one history entry.
// Setting the current status again is allowed and still logged.
func (u *OrderUseCase) ChangeStatus(ctx context.Context, id string, status model.OrderStatus, note string) (*model.Order, error) {
	if !status.Valid() {
		return nil, domainErrors.ErrInvalidStatus
	}

	if u.validate != nil {
		current, err := u.orders.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if err := u.validate(current.Status, status); err != nil {
			return nil, err
		}
	}

	return u.orders.ChangeStatus(ctx, id, status, note, u.now())
}

// Patch merges editable fields into the order. Status cannot travel through
// this path, so the history log cannot be bypassed.
func (u *OrderUseCase) Patch(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	return u.orders.Patch(ctx, id, patch)
}

// Delete removes the order together with its history.
func (u *OrderUseCase) Delete(ctx context.Context, id string) error {
	return u.orders.Delete(ctx, id)
}

// MarkAsPaid confirms payment. Repeated calls refresh PaidAt and leave the
// payment status unchanged; there is no way back to unpaid.
func (u *OrderUseCase) MarkAsPaid(ctx context.Context, id string) (*model.Order, error) {
	return u.orders.MarkPaid(ctx, id, u.now())
}

// SelectUnnotified returns oldest orders not yet announced externally.
func (u *OrderUseCase) SelectUnnotified(ctx context.Context, limit int) ([]model.Order, error) {
	return u.orders.SelectUnnotified(ctx, limit)
}

// MarkNotified records a successful new-order announcement.
func (u *OrderUseCase) MarkNotified(ctx context.Context, id string) error {
	return u.orders.MarkNotified(ctx, id, u.now())
}
