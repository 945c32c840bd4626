package test

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/allmart/backoffice/internal/domain/model"
)

// OrderFacadeStub provides controllable behaviour for order endpoints.
type OrderFacadeStub struct {
	PlaceFn        func(context.Context, model.OrderDraft) (*model.Order, error)
	OrdersFn       func(context.Context) ([]model.Order, error)
	OrderFn        func(context.Context, string) (*model.Order, error)
	ChangeStatusFn func(context.Context, string, model.OrderStatus, string) (*model.Order, error)
	PatchFn        func(context.Context, string, model.OrderPatch) (*model.Order, error)
	DeleteFn       func(context.Context, string) error
	MarkPaidFn     func(context.Context, string) (*model.Order, error)
	ExportFn       func(context.Context) ([]byte, string, error)
}

// PlaceOrder delegates to provided function or echoes the submission.
func (s OrderFacadeStub) PlaceOrder(ctx context.Context, data model.OrderDraft) (*model.Order, error) {
	if s.PlaceFn != nil {
		return s.PlaceFn(ctx, data)
	}
	return &model.Order{
		ID:       "ord-test",
		Customer: data.Customer,
		Items:    data.Items,
		Total:    data.Total,
		Status:   model.OrderStatusPending,
		Notes:    data.Notes,
		Version:  1,
	}, nil
}

// Orders returns predefined orders.
func (s OrderFacadeStub) Orders(ctx context.Context) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx)
	}
	return []model.Order{{ID: "ord-1", Status: model.OrderStatusPending}}, nil
}

// Order returns a single order by identifier.
func (s OrderFacadeStub) Order(ctx context.Context, id string) (*model.Order, error) {
	if s.OrderFn != nil {
		return s.OrderFn(ctx, id)
	}
	return &model.Order{ID: id, Status: model.OrderStatusPending, Version: 1}, nil
}

// ChangeOrderStatus delegates to the override or echoes the change.
func (s OrderFacadeStub) ChangeOrderStatus(ctx context.Context, id string, status model.OrderStatus, note string) (*model.Order, error) {
	if s.ChangeStatusFn != nil {
		return s.ChangeStatusFn(ctx, id, status, note)
	}
	return &model.Order{ID: id, Status: status, Version: 2}, nil
}

// PatchOrder delegates to the override or returns the order unchanged.
func (s OrderFacadeStub) PatchOrder(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	if s.PatchFn != nil {
		return s.PatchFn(ctx, id, patch)
	}
	return &model.Order{ID: id, Version: 2}, nil
}

// DeleteOrder executes configured handler.
func (s OrderFacadeStub) DeleteOrder(ctx context.Context, id string) error {
	if s.DeleteFn != nil {
		return s.DeleteFn(ctx, id)
	}
	return nil
}

// MarkOrderPaid delegates to the override or returns a paid order.
func (s OrderFacadeStub) MarkOrderPaid(ctx context.Context, id string) (*model.Order, error) {
	if s.MarkPaidFn != nil {
		return s.MarkPaidFn(ctx, id)
	}
	now := time.Unix(0, 0)
	return &model.Order{ID: id, PaymentStatus: model.PaymentStatusPaid, PaidAt: &now}, nil
}

// ExportOrders returns configured CSV payload.
func (s OrderFacadeStub) ExportOrders(ctx context.Context) ([]byte, string, error) {
	if s.ExportFn != nil {
		return s.ExportFn(ctx)
	}
	return []byte("csv"), "orders.csv", nil
}

// CatalogFacadeStub simulates category and product operations.
type CatalogFacadeStub struct {
	CreateCategoryFn func(context.Context, model.Category) (*model.Category, error)
	CategoriesFn     func(context.Context) ([]model.Category, error)
	CategoryFn       func(context.Context, string) (*model.Category, error)
	UpdateCategoryFn func(context.Context, string, model.CategoryPatch) (*model.Category, error)
	DeleteCategoryFn func(context.Context, string) error

	CreateProductFn   func(context.Context, model.Product) (*model.Product, error)
	ProductsFn        func(context.Context) ([]model.Product, error)
	ProductFn         func(context.Context, string) (*model.Product, error)
	UpdateProductFn   func(context.Context, string, model.Product) (*model.Product, error)
	DeleteProductFn   func(context.Context, string) error
	ReplaceVariantsFn func(context.Context, string, []model.VariantGroup) (*model.Product, error)
}

// CreateCategory delegates to the override or assigns a fixed id.
func (s CatalogFacadeStub) CreateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	if s.CreateCategoryFn != nil {
		return s.CreateCategoryFn(ctx, category)
	}
	category.ID = "cat-test"
	return &category, nil
}

// Categories returns the configured category list.
func (s CatalogFacadeStub) Categories(ctx context.Context) ([]model.Category, error) {
	if s.CategoriesFn != nil {
		return s.CategoriesFn(ctx)
	}
	return []model.Category{{ID: "cat-1", Name: "Cocina", Slug: "cocina"}}, nil
}

// Category returns one category by identifier.
func (s CatalogFacadeStub) Category(ctx context.Context, id string) (*model.Category, error) {
	if s.CategoryFn != nil {
		return s.CategoryFn(ctx, id)
	}
	return &model.Category{ID: id, Name: "Cocina", Slug: "cocina"}, nil
}

// UpdateCategory delegates to the override.
func (s CatalogFacadeStub) UpdateCategory(ctx context.Context, id string, patch model.CategoryPatch) (*model.Category, error) {
	if s.UpdateCategoryFn != nil {
		return s.UpdateCategoryFn(ctx, id, patch)
	}
	return &model.Category{ID: id}, nil
}

// DeleteCategory executes configured handler.
func (s CatalogFacadeStub) DeleteCategory(ctx context.Context, id string) error {
	if s.DeleteCategoryFn != nil {
		return s.DeleteCategoryFn(ctx, id)
	}
	return nil
}

// CreateProduct delegates to the override or assigns a fixed id.
func (s CatalogFacadeStub) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	if s.CreateProductFn != nil {
		return s.CreateProductFn(ctx, product)
	}
	product.ID = "prod-test"
	return &product, nil
}

// Products returns the configured product list.
func (s CatalogFacadeStub) Products(ctx context.Context) ([]model.Product, error) {
	if s.ProductsFn != nil {
		return s.ProductsFn(ctx)
	}
	return []model.Product{{ID: "prod-1", Name: "Molinillo"}}, nil
}

// Product returns one product by identifier.
func (s CatalogFacadeStub) Product(ctx context.Context, id string) (*model.Product, error) {
	if s.ProductFn != nil {
		return s.ProductFn(ctx, id)
	}
	return &model.Product{ID: id, Name: "Molinillo"}, nil
}

// UpdateProduct delegates to the override.
func (s CatalogFacadeStub) UpdateProduct(ctx context.Context, id string, product model.Product) (*model.Product, error) {
	if s.UpdateProductFn != nil {
		return s.UpdateProductFn(ctx, id, product)
	}
	product.ID = id
	return &product, nil
}

// DeleteProduct executes configured handler.
func (s CatalogFacadeStub) DeleteProduct(ctx context.Context, id string) error {
	if s.DeleteProductFn != nil {
		return s.DeleteProductFn(ctx, id)
	}
	return nil
}

// ReplaceProductVariants delegates to the override.
func (s CatalogFacadeStub) ReplaceProductVariants(ctx context.Context, productID string, groups []model.VariantGroup) (*model.Product, error) {
	if s.ReplaceVariantsFn != nil {
		return s.ReplaceVariantsFn(ctx, productID, groups)
	}
	return &model.Product{ID: productID, Variants: groups}, nil
}

// ReportFacadeStub returns canned report data.
type ReportFacadeStub struct {
	ReportFn func(context.Context, model.ReportWindow) (*model.Report, error)
}

// Report delegates to the override or returns an empty report.
func (s ReportFacadeStub) Report(ctx context.Context, window model.ReportWindow) (*model.Report, error) {
	if s.ReportFn != nil {
		return s.ReportFn(ctx, window)
	}
	return &model.Report{Window: window, StatusDistribution: map[model.OrderStatus]int{}}, nil
}

// BackofficeFacadeStub aggregates facade dependencies for HTTP layer tests.
type BackofficeFacadeStub struct {
	AuthFacadeStub
	OrderFacadeStub
	CatalogFacadeStub
	ReportFacadeStub
}

// NotifiedCall records one MarkOrderNotified invocation.
type NotifiedCall struct {
	OrderID string
}

// NotifierSourceStub mimics worker interactions with the facade.
type NotifierSourceStub struct {
	Batches    [][]model.Order
	OrdersFn   func(context.Context, int) ([]model.Order, error)
	NotifiedFn func(context.Context, string) error
	Notified   []NotifiedCall

	mu             sync.Mutex
	batchCallCount int32
}

// Lock exposes internal mutex for external synchronization.
func (s *NotifierSourceStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *NotifierSourceStub) Unlock() { s.mu.Unlock() }

// UnnotifiedOrders returns batches from the configured queue.
func (s *NotifierSourceStub) UnnotifiedOrders(ctx context.Context, limit int) ([]model.Order, error) {
	if s.OrdersFn != nil {
		return s.OrdersFn(ctx, limit)
	}
	call := atomic.AddInt32(&s.batchCallCount, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// MarkOrderNotified records the invocation.
func (s *NotifierSourceStub) MarkOrderNotified(ctx context.Context, id string) error {
	if s.NotifiedFn != nil {
		return s.NotifiedFn(ctx, id)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Notified = append(s.Notified, NotifiedCall{OrderID: id})
	return nil
}

// SenderStub captures webhook deliveries.
type SenderStub struct {
	SendFn func(context.Context, model.Order) error
	Sent   []model.Order

	mu sync.Mutex
}

// Send records the order or delegates to the override.
func (s *SenderStub) Send(ctx context.Context, order model.Order) error {
	if s.SendFn != nil {
		return s.SendFn(ctx, order)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, order)
	return nil
}

// SentOrders returns a copy of the captured deliveries.
func (s *SenderStub) SentOrders() []model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, len(s.Sent))
	copy(out, s.Sent)
	return out
}
