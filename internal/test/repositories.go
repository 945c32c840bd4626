package test

import (
	"context"
	"sort"
	"sync"
	"time"

	domainErrors "github.com/allmart/backoffice/internal/domain/errors"
	"github.com/allmart/backoffice/internal/domain/model"
)

// OrderRepositoryStub keeps orders in memory and mirrors the repository
// contract closely enough for use case tests.
type OrderRepositoryStub struct {
	mu   sync.Mutex
	ByID map[string]*model.Order
	Err  error
}

// NewOrderRepositoryStub constructs the stub with initialized maps.
func NewOrderRepositoryStub() *OrderRepositoryStub {
	return &OrderRepositoryStub{ByID: make(map[string]*model.Order)}
}

// Create stores the order unless one with the same id exists.
func (s *OrderRepositoryStub) Create(ctx context.Context, order *model.Order) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.ByID[order.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	clone := cloneOrder(*order)
	s.ByID[order.ID] = &clone
	return nil
}

// GetByID fetches one order or returns not found.
func (s *OrderRepositoryStub) GetByID(ctx context.Context, id string) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	clone := cloneOrder(*order)
	return &clone, nil
}

// List returns all stored orders, most recent first.
func (s *OrderRepositoryStub) List(ctx context.Context) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	orders := make([]model.Order, 0, len(s.ByID))
	for _, o := range s.ByID {
		orders = append(orders, cloneOrder(*o))
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

// ChangeStatus updates the status and appends one history entry.
func (s *OrderRepositoryStub) ChangeStatus(ctx context.Context, id string, status model.OrderStatus, note string, at time.Time) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	order.Status = status
	order.StatusHistory = append(order.StatusHistory, model.StatusChange{Status: status, ChangedAt: at, Note: note})
	order.Version++
	clone := cloneOrder(*order)
	return &clone, nil
}

// Patch merges editable fields into the stored order.
func (s *OrderRepositoryStub) Patch(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	if patch.ExpectedVersion != nil && *patch.ExpectedVersion != order.Version {
		return nil, domainErrors.ErrVersionConflict
	}
	if patch.Customer != nil {
		order.Customer = *patch.Customer
	}
	if patch.Notes != nil {
		order.Notes = *patch.Notes
	}
	if patch.Total != nil {
		order.Total = *patch.Total
	}
	order.Version++
	clone := cloneOrder(*order)
	return &clone, nil
}

// Delete removes the order together with its history.
func (s *OrderRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.ByID[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	return nil
}

// MarkPaid confirms payment and refreshes the timestamp on repeat calls.
func (s *OrderRepositoryStub) MarkPaid(ctx context.Context, id string, at time.Time) (*model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	order.PaymentStatus = model.PaymentStatusPaid
	order.PaidAt = &at
	order.Version++
	clone := cloneOrder(*order)
	return &clone, nil
}

// SelectUnnotified returns oldest unannounced orders up to the limit.
func (s *OrderRepositoryStub) SelectUnnotified(ctx context.Context, limit int) ([]model.Order, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	var orders []model.Order
	for _, o := range s.ByID {
		if o.NotifiedAt == nil {
			orders = append(orders, cloneOrder(*o))
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})
	if len(orders) > limit {
		orders = orders[:limit]
	}
	return orders, nil
}

// MarkNotified records a successful announcement.
func (s *OrderRepositoryStub) MarkNotified(ctx context.Context, id string, at time.Time) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	order, ok := s.ByID[id]
	if !ok {
		return domainErrors.ErrNotFound
	}
	order.NotifiedAt = &at
	return nil
}

func cloneOrder(o model.Order) model.Order {
	o.Items = append([]model.OrderItem(nil), o.Items...)
	o.StatusHistory = append([]model.StatusChange(nil), o.StatusHistory...)
	if o.PaidAt != nil {
		paidAt := *o.PaidAt
		o.PaidAt = &paidAt
	}
	if o.NotifiedAt != nil {
		notifiedAt := *o.NotifiedAt
		o.NotifiedAt = &notifiedAt
	}
	return o
}

// CategoryRepositoryStub keeps categories in memory for tests.
type CategoryRepositoryStub struct {
	ByID map[string]*model.Category
	Err  error
}

// NewCategoryRepositoryStub constructs the stub with initialized maps.
func NewCategoryRepositoryStub() *CategoryRepositoryStub {
	return &CategoryRepositoryStub{ByID: make(map[string]*model.Category)}
}

// Create stores the category unless one with the same id exists.
func (s *CategoryRepositoryStub) Create(ctx context.Context, category *model.Category) error {
	if s.Err != nil {
		return s.Err
	}
	if _, exists := s.ByID[category.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	clone := *category
	s.ByID[category.ID] = &clone
	return nil
}

// GetByID fetches one category or returns not found.
func (s *CategoryRepositoryStub) GetByID(ctx context.Context, id string) (*model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	category, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	clone := *category
	return &clone, nil
}

// List returns all stored categories sorted by name.
func (s *CategoryRepositoryStub) List(ctx context.Context) ([]model.Category, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	categories := make([]model.Category, 0, len(s.ByID))
	for _, c := range s.ByID {
		categories = append(categories, *c)
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

// Update replaces the stored category.
func (s *CategoryRepositoryStub) Update(ctx context.Context, category *model.Category) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[category.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	clone := *category
	s.ByID[category.ID] = &clone
	return nil
}

// Delete removes the category.
func (s *CategoryRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	return nil
}

// ProductRepositoryStub keeps products in memory for tests.
type ProductRepositoryStub struct {
	ByID map[string]*model.Product
	Err  error
}

// NewProductRepositoryStub constructs the stub with initialized maps.
func NewProductRepositoryStub() *ProductRepositoryStub {
	return &ProductRepositoryStub{ByID: make(map[string]*model.Product)}
}

// Create stores the product unless one with the same id exists.
func (s *ProductRepositoryStub) Create(ctx context.Context, product *model.Product) error {
	if s.Err != nil {
		return s.Err
	}
	if _, exists := s.ByID[product.ID]; exists {
		return domainErrors.ErrAlreadyExists
	}
	clone := *product
	s.ByID[product.ID] = &clone
	return nil
}

// GetByID fetches one product or returns not found.
func (s *ProductRepositoryStub) GetByID(ctx context.Context, id string) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	product, ok := s.ByID[id]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	clone := *product
	return &clone, nil
}

// List returns all stored products sorted by name.
func (s *ProductRepositoryStub) List(ctx context.Context) ([]model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	products := make([]model.Product, 0, len(s.ByID))
	for _, p := range s.ByID {
		products = append(products, *p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

// Update replaces the stored product.
func (s *ProductRepositoryStub) Update(ctx context.Context, product *model.Product) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[product.ID]; !ok {
		return domainErrors.ErrNotFound
	}
	clone := *product
	s.ByID[product.ID] = &clone
	return nil
}

// Delete removes the product.
func (s *ProductRepositoryStub) Delete(ctx context.Context, id string) error {
	if s.Err != nil {
		return s.Err
	}
	if _, ok := s.ByID[id]; !ok {
		return domainErrors.ErrNotFound
	}
	delete(s.ByID, id)
	return nil
}

// ReplaceVariants swaps the variant group set of a stored product.
func (s *ProductRepositoryStub) ReplaceVariants(ctx context.Context, productID string, groups []model.VariantGroup) (*model.Product, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	product, ok := s.ByID[productID]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	product.Variants = append([]model.VariantGroup(nil), groups...)
	clone := *product
	return &clone, nil
}
