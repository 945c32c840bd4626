package usecase

import (
	"context"
	"errors"
	"testing"

	domainErrors "github.com/allmart/backoffice/internal/domain/errors"
	"github.com/allmart/backoffice/internal/domain/model"
	testhelpers "github.com/allmart/backoffice/internal/test"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Cocina":                      "cocina",
		"Baño":                        "bao",
		"Molinillo de Café Premium":   "molinillo-de-caf-premium",
		"  Set   Completo  ":          "--set---completo--",
		"Llegó el Verano! 2026":       "lleg-el-verano-2026",
		"ya-con-guiones":              "ya-con-guiones",
		"MAYÚSCULAS Y números 123":    "maysculas-y-nmeros-123",
		"":                            "",
	}
	for input, want := range cases {
		if got := Slugify(input); got != want {
			t.Fatalf("Slugify(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestCategoryUseCaseCreateAssignsIDAndSlug(t *testing.T) {
	uc := NewCategoryUseCase(testhelpers.NewCategoryRepositoryStub())

	category, err := uc.Create(context.Background(), model.Category{Name: "Baño", Description: "textiles"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if category.ID == "" || category.Slug != "bao" {
		t.Fatalf("unexpected category %+v", category)
	}
}

func TestCategoryUseCaseUpdateKeepsSlug(t *testing.T) {
	repo := testhelpers.NewCategoryRepositoryStub()
	uc := NewCategoryUseCase(repo)

	category, err := uc.Create(context.Background(), model.Category{Name: "Cocina"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	name := "Cocina y Comedor"
	updated, err := uc.Update(context.Background(), category.ID, model.CategoryPatch{Name: &name})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Name != name {
		t.Fatalf("name not updated: %+v", updated)
	}
	if updated.Slug != "cocina" {
		t.Fatalf("rename must not regenerate the slug, got %q", updated.Slug)
	}

	if _, err := uc.Update(context.Background(), "cat-missing", model.CategoryPatch{Name: &name}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestProductUseCaseCreateAssignsVariantIDs(t *testing.T) {
	uc := NewProductUseCase(testhelpers.NewProductRepositoryStub())

	product, err := uc.Create(context.Background(), model.Product{
		Name:  "Molinillo de Café Premium",
		Price: 24990,
		Variants: []model.VariantGroup{
			{Name: "Color", Values: []string{"Rojo", "Negro"}},
			{ID: "var-keep", Name: "Tamaño", Values: []string{"S", "M"}},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if product.Slug != "molinillo-de-caf-premium" {
		t.Fatalf("unexpected slug %q", product.Slug)
	}
	if product.Variants[0].ID == "" {
		t.Fatal("variant group without id must get one assigned")
	}
	if product.Variants[1].ID != "var-keep" {
		t.Fatalf("existing variant id must be preserved, got %q", product.Variants[1].ID)
	}
}

func TestProductUseCaseUpdatePreservesIdentity(t *testing.T) {
	repo := testhelpers.NewProductRepositoryStub()
	uc := NewProductUseCase(repo)

	product, err := uc.Create(context.Background(), model.Product{Name: "Set Cuchillos", Price: 48990})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := uc.Update(context.Background(), product.ID, model.Product{Name: "Set Cuchillos Design", Price: 52990})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.ID != product.ID || updated.Slug != product.Slug {
		t.Fatalf("update must preserve id and slug: %+v", updated)
	}
	if updated.Price != 52990 {
		t.Fatalf("price not updated: %v", updated.Price)
	}

	if _, err := uc.Update(context.Background(), "prod-missing", model.Product{Name: "x"}); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestProductUseCaseReplaceVariants(t *testing.T) {
	repo := testhelpers.NewProductRepositoryStub()
	uc := NewProductUseCase(repo)

	product, err := uc.Create(context.Background(), model.Product{
		Name:     "Batería de Cocina",
		Variants: []model.VariantGroup{{Name: "Color", Values: []string{"Rojo"}}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated, err := uc.ReplaceVariants(context.Background(), product.ID, []model.VariantGroup{
		{Name: "Material", Values: []string{"Granito", "Acero"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(updated.Variants) != 1 || updated.Variants[0].Name != "Material" {
		t.Fatalf("variants not replaced: %+v", updated.Variants)
	}
	if updated.Variants[0].ID == "" {
		t.Fatal("replacement groups must get ids assigned")
	}
}
