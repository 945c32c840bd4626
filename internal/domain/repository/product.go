package repository

import (
	"context"

	"github.com/allmart/backoffice/internal/domain/model"
)

// ProductRepository describes persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, product *model.Product) error
	GetByID(ctx context.Context, id string) (*model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Update(ctx context.Context, product *model.Product) error
	Delete(ctx context.Context, id string) error
	// ReplaceVariants swaps the full variant group set of a product.
	ReplaceVariants(ctx context.Context, productID string, groups []model.VariantGroup) (*model.Product, error)
}
