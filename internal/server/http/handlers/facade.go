package handlers

import (
	"context"

	"github.com/allmart/backoffice/internal/domain/model"
	pkgAuth "github.com/allmart/backoffice/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Login(ctx context.Context, user, password string) (string, model.Role, error)
	ParseToken(token string) (*pkgAuth.Claims, error)
}

// OrderFacade encapsulates order operations exposed via HTTP.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, data model.OrderDraft) (*model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)
	Order(ctx context.Context, id string) (*model.Order, error)
	ChangeOrderStatus(ctx context.Context, id string, status model.OrderStatus, note string) (*model.Order, error)
	PatchOrder(ctx context.Context, id string, patch model.OrderPatch) (*model.Order, error)
	DeleteOrder(ctx context.Context, id string) error
	MarkOrderPaid(ctx context.Context, id string) (*model.Order, error)
	ExportOrders(ctx context.Context) (data []byte, filename string, err error)
}

// CatalogFacade provides category and product management.
type CatalogFacade interface {
	CreateCategory(ctx context.Context, category model.Category) (*model.Category, error)
	Categories(ctx context.Context) ([]model.Category, error)
	Category(ctx context.Context, id string) (*model.Category, error)
	UpdateCategory(ctx context.Context, id string, patch model.CategoryPatch) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error

	CreateProduct(ctx context.Context, product model.Product) (*model.Product, error)
	Products(ctx context.Context) ([]model.Product, error)
	Product(ctx context.Context, id string) (*model.Product, error)
	UpdateProduct(ctx context.Context, id string, product model.Product) (*model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
	ReplaceProductVariants(ctx context.Context, productID string, groups []model.VariantGroup) (*model.Product, error)
}

// ReportFacade builds aggregated sales views.
type ReportFacade interface {
	Report(ctx context.Context, window model.ReportWindow) (*model.Report, error)
}

// BackofficeFacade aggregates the full set of operations used across handlers.
type BackofficeFacade interface {
	AuthFacade
	OrderFacade
	CatalogFacade
	ReportFacade
}
