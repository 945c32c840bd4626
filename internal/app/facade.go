package app

import (
	"context"
	"time"

	"github.com/allmart/backoffice/internal/domain/model"
	pkgAuth "github.com/allmart/backoffice/internal/pkg/auth"
	"github.com/allmart/backoffice/internal/usecase"
)

// BackofficeFacade is the single entry point the HTTP layer and the
// notification worker talk to. It delegates to the use cases and keeps the
// outer layers free of wiring knowledge.
type BackofficeFacade struct {
	auth       *usecase.AuthUseCase
	orders     *usecase.OrderUseCase
	categories *usecase.CategoryUseCase
	products   *usecase.ProductUseCase
	reports    *usecase.ReportUseCase
	now        func() time.Time
}

// NewBackofficeFacade constructs the facade over the use cases.
func NewBackofficeFacade(
	auth *usecase.AuthUseCase,
	orders *usecase.OrderUseCase,
	categories *usecase.CategoryUseCase,
	products *usecase.ProductUseCase,
	reports *usecase.ReportUseCase,
) *BackofficeFacade {
	return &BackofficeFacade{
		auth:       auth,
		orders:     orders,
		categories: categories,
		products:   products,
		reports:    reports,
		now:        time.Now,
	}
}

func (f *BackofficeFacade) Login(ctx context.Context, user, password string) (string, model.Role, error) {
	return f.auth.Authenticate(ctx, user, password)
}

func (f *BackofficeFacade) ParseToken(token string) (*pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *BackofficeFacade) PlaceOrder(ctx context.Context, data model.OrderDraft) (*model.Order, error) {
	return f.orders.Create(ctx, data)
}

func (f *BackofficeFacade) Orders(ctx context.Context) ([]model.Order, error) {
	return f.orders.List(ctx)
}

func (f *BackofficeFacade) Order(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.Get(ctx, id)
}

func (f *BackofficeFacade) ChangeOrderStatus(ctx context.Context, id string, status model.OrderStatus, note string) (*model.Order, error) {
	return f.orders.ChangeStatus(ctx, id, status, note)
}

func (f *BackofficeFacade) PatchOrder(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error) {
	return f.orders.Patch(ctx, id, patch)
}

func (f *BackofficeFacade) DeleteOrder(ctx context.Context, id string) error {
	return f.orders.Delete(ctx, id)
}

func (f *BackofficeFacade) MarkOrderPaid(ctx context.Context, id string) (*model.Order, error) {
	return f.orders.MarkAsPaid(ctx, id)
}

func (f *BackofficeFacade) ExportOrders(ctx context.Context) ([]byte, string, error) {
	orders, err := f.orders.List(ctx)
	if err != nil {
		return nil, "", err
	}
	data, err := usecase.ExportOrdersCSV(orders)
	if err != nil {
		return nil, "", err
	}
	return data, usecase.ExportFileName(f.now()), nil
}

func (f *BackofficeFacade) UnnotifiedOrders(ctx context.Context, limit int) ([]model.Order, error) {
	return f.orders.SelectUnnotified(ctx, limit)
}

func (f *BackofficeFacade) MarkOrderNotified(ctx context.Context, id string) error {
	return f.orders.MarkNotified(ctx, id)
}

func (f *BackofficeFacade) CreateCategory(ctx context.Context, category model.Category) (*model.Category, error) {
	return f.categories.Create(ctx, category)
}

func (f *BackofficeFacade) Categories(ctx context.Context) ([]model.Category, error) {
	return f.categories.List(ctx)
}

func (f *BackofficeFacade) Category(ctx context.Context, id string) (*model.Category, error) {
	return f.categories.Get(ctx, id)
}

func (f *BackofficeFacade) UpdateCategory(ctx context.Context, id string, patch model.CategoryPatch) (*model.Category, error) {
	return f.categories.Update(ctx, id, patch)
}

func (f *BackofficeFacade) DeleteCategory(ctx context.Context, id string) error {
	return f.categories.Delete(ctx, id)
}

func (f *BackofficeFacade) CreateProduct(ctx context.Context, product model.Product) (*model.Product, error) {
	return f.products.Create(ctx, product)
}

func (f *BackofficeFacade) Products(ctx context.Context) ([]model.Product, error) {
	return f.products.List(ctx)
}

func (f *BackofficeFacade) Product(ctx context.Context, id string) (*model.Product, error) {
	return f.products.Get(ctx, id)
}

func (f *BackofficeFacade) UpdateProduct(ctx context.Context, id string, product model.Product) (*model.Product, error) {
	return f.products.Update(ctx, id, product)
}

func (f *BackofficeFacade) DeleteProduct(ctx context.Context, id string) error {
	return f.products.Delete(ctx, id)
}

func (f *BackofficeFacade) ReplaceProductVariants(ctx context.Context, productID string, groups []model.VariantGroup) (*model.Product, error) {
	return f.products.ReplaceVariants(ctx, productID, groups)
}

func (f *BackofficeFacade) Report(ctx context.Context, window model.ReportWindow) (*model.Report, error) {
	return f.reports.Build(ctx, window)
}
