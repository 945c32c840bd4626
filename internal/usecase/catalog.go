package usecase

import (
	"context"
	"strings"

	"github.com/allmart/backoffice/internal/domain/model"
	"github.com/allmart/backoffice/internal/domain/repository"
)

// Slugify derives a URL slug the same way the storefront does: lowercase,
// whitespace to dashes, everything outside [a-z0-9-] dropped.
func Slugify(name string) string {
	lower := strings.ToLower(name)
	var b strings.Builder
	for _, r := range lower {
		switch {
		case r == ' ' || r == '\t':
			b.WriteByte('-')
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// CategoryUseCase manages the category list. Products keep a denormalized
// category copy, so edits here never cascade into stored products.
type CategoryUseCase struct {
	categories repository.CategoryRepository
}

// NewCategoryUseCase constructs CategoryUseCase.
func NewCategoryUseCase(categories repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{categories: categories}
}

// Create stores a new category with a generated id and derived slug.
func (u *CategoryUseCase) Create(ctx context.Context, category model.Category) (*model.Category, error) {
	category.ID = model.NewCategoryID()
	category.Slug = Slugify(category.Name)
	if err := u.categories.Create(ctx, &category); err != nil {
		return nil, err
	}
	return &category, nil
}

// Get fetches one category.
func (u *CategoryUseCase) Get(ctx context.Context, id string) (*model.Category, error) {
	return u.categories.GetByID(ctx, id)
}

// List returns all categories.
func (u *CategoryUseCase) List(ctx context.Context) ([]model.Category, error) {
	return u.categories.List(ctx)
}

// Update merges the patch into the stored category. The slug is kept as-is;
// renames do not regenerate it.
func (u *CategoryUseCase) Update(ctx context.Context, id string, patch model.CategoryPatch) (*model.Category, error) {
	category, err := u.categories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if patch.Name != nil {
		category.Name = *patch.Name
	}
	if patch.Description != nil {
		category.Description = *patch.Description
	}
	if patch.Image != nil {
		category.Image = *patch.Image
	}
	if patch.ItemCount != nil {
		category.ItemCount = *patch.ItemCount
	}
	if err := u.categories.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes the category. Products referencing it keep their embedded copy.
func (u *CategoryUseCase) Delete(ctx context.Context, id string) error {
	return u.categories.Delete(ctx, id)
}

// ProductUseCase manages the product catalog, including variant groups.
type ProductUseCase struct {
	products repository.ProductRepository
}

// NewProductUseCase constructs ProductUseCase.
func NewProductUseCase(products repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{products: products}
}

// Create stores a new product with a generated id and derived slug. Variant
// groups without ids get them assigned.
func (u *ProductUseCase) Create(ctx context.Context, product model.Product) (*model.Product, error) {
	product.ID = model.NewProductID()
	product.Slug = Slugify(product.Name)
	assignVariantIDs(product.Variants)
	if err := u.products.Create(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Get fetches one product.
func (u *ProductUseCase) Get(ctx context.Context, id string) (*model.Product, error) {
	return u.products.GetByID(ctx, id)
}

// List returns all products, most recent first.
func (u *ProductUseCase) List(ctx context.Context) ([]model.Product, error) {
	return u.products.List(ctx)
}

// Update replaces the editable fields of a product. Identifier and slug are
// preserved from the stored record.
func (u *ProductUseCase) Update(ctx context.Context, id string, product model.Product) (*model.Product, error) {
	current, err := u.products.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	product.ID = current.ID
	product.Slug = current.Slug
	assignVariantIDs(product.Variants)
	if err := u.products.Update(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete removes the product. Existing orders keep their denormalized lines.
func (u *ProductUseCase) Delete(ctx context.Context, id string) error {
	return u.products.Delete(ctx, id)
}

// ReplaceVariants swaps the full variant group set of a product.
func (u *ProductUseCase) ReplaceVariants(ctx context.Context, productID string, groups []model.VariantGroup) (*model.Product, error) {
	assignVariantIDs(groups)
	return u.products.ReplaceVariants(ctx, productID, groups)
}

func assignVariantIDs(groups []model.VariantGroup) {
	for i := range groups {
		if groups[i].ID == "" {
			groups[i].ID = model.NewVariantGroupID()
		}
	}
}
