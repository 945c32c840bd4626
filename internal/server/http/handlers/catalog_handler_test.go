package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	domainErrors "github.com/allmart/backoffice/internal/domain/errors"
	"github.com/allmart/backoffice/internal/domain/model"
	"github.com/allmart/backoffice/internal/server/http/dto"
	testhelpers "github.com/allmart/backoffice/internal/test"
)

func TestListCategories(t *testing.T) {
	facade := testhelpers.CatalogFacadeStub{
		CategoriesFn: func(context.Context) ([]model.Category, error) {
			return []model.Category{
				{ID: "cat-1", Name: "Cocina", Slug: "cocina", ItemCount: 12},
				{ID: "cat-2", Name: "Baño", Slug: "bao"},
			}, nil
		},
	}
	handler := NewCatalogHandler(facade)

	recorder := performJSON(handler.ListCategories, http.MethodGet, "/route", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}

	var resp []dto.CategoryResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp) != 2 || resp[0].Slug != "cocina" || resp[1].Name != "Baño" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestCreateCategory(t *testing.T) {
	facade := testhelpers.CatalogFacadeStub{
		CreateCategoryFn: func(ctx context.Context, category model.Category) (*model.Category, error) {
			if category.Name != "Dormitorio" {
				t.Fatalf("unexpected category %+v", category)
			}
			category.ID = "cat-new"
			category.Slug = "dormitorio"
			return &category, nil
		},
	}
	handler := NewCatalogHandler(facade)

	recorder := performJSON(handler.CreateCategory, http.MethodPost, "/route", `{"name":"Dormitorio"}`)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d", recorder.Code)
	}

	var resp dto.CategoryResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.ID != "cat-new" || resp.Slug != "dormitorio" {
		t.Fatalf("unexpected response %+v", resp)
	}
}

func TestCreateCategoryRequiresName(t *testing.T) {
	handler := NewCatalogHandler(testhelpers.CatalogFacadeStub{})

	recorder := performJSON(handler.CreateCategory, http.MethodPost, "/route", `{"description":"sin nombre"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
}

func TestUpdateCategory(t *testing.T) {
	var received model.CategoryPatch
	facade := testhelpers.CatalogFacadeStub{
		UpdateCategoryFn: func(ctx context.Context, id string, patch model.CategoryPatch) (*model.Category, error) {
			received = patch
			return &model.Category{ID: id, Name: "Cocina y Comedor", Slug: "cocina"}, nil
		},
	}
	handler := NewCatalogHandler(facade)

	recorder := performJSON(handler.UpdateCategory, http.MethodPatch, "/route/cat-1", `{"name":"Cocina y Comedor"}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	if received.Name == nil || *received.Name != "Cocina y Comedor" {
		t.Fatalf("patch not forwarded: %+v", received)
	}
	if received.Description != nil || received.ItemCount != nil {
		t.Fatalf("absent fields must stay nil: %+v", received)
	}
}

func TestDeleteCategoryNotFound(t *testing.T) {
	facade := testhelpers.CatalogFacadeStub{
		DeleteCategoryFn: func(context.Context, string) error { return domainErrors.ErrNotFound },
	}
	handler := NewCatalogHandler(facade)

	recorder := performJSON(handler.DeleteCategory, http.MethodDelete, "/route/cat-x", "")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
}

func TestCreateProductResolvesCategory(t *testing.T) {
	var received model.Product
	facade := testhelpers.CatalogFacadeStub{
		CategoryFn: func(ctx context.Context, id string) (*model.Category, error) {
			if id != "cat-1" {
				t.Fatalf("unexpected category lookup %q", id)
			}
			return &model.Category{ID: "cat-1", Name: "Cocina", Slug: "cocina"}, nil
		},
		CreateProductFn: func(ctx context.Context, product model.Product) (*model.Product, error) {
			received = product
			product.ID = "prod-new"
			product.Slug = "molinillo"
			return &product, nil
		},
	}
	handler := NewCatalogHandler(facade)

	body := `{"name":"Molinillo","price":24990,"categoryId":"cat-1","inStock":true,"stock":5,` +
		`"variants":[{"name":"Color","values":["Negro","Blanco"]}]}`
	recorder := performJSON(handler.CreateProduct, http.MethodPost, "/route", body)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("unexpected status %d: %s", recorder.Code, recorder.Body.String())
	}

	if received.Category.ID != "cat-1" || received.Category.Name != "Cocina" {
		t.Fatalf("category not embedded: %+v", received.Category)
	}
	if len(received.Variants) != 1 || received.Variants[0].Name != "Color" {
		t.Fatalf("variants not forwarded: %+v", received.Variants)
	}
}

func TestCreateProductUnknownCategory(t *testing.T) {
	facade := testhelpers.CatalogFacadeStub{
		CategoryFn: func(context.Context, string) (*model.Category, error) {
			return nil, domainErrors.ErrNotFound
		},
	}
	handler := NewCatalogHandler(facade)

	recorder := performJSON(handler.CreateProduct, http.MethodPost, "/route", `{"name":"Molinillo","categoryId":"cat-x"}`)
	if recorder.Code != http.StatusUnprocessableEntity {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
}

func TestCreateProductRequiresName(t *testing.T) {
	handler := NewCatalogHandler(testhelpers.CatalogFacadeStub{})

	recorder := performJSON(handler.CreateProduct, http.MethodPost, "/route", `{"price":100,"categoryId":"cat-1"}`)
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
}

func TestGetProductNotFound(t *testing.T) {
	facade := testhelpers.CatalogFacadeStub{
		ProductFn: func(context.Context, string) (*model.Product, error) {
			return nil, domainErrors.ErrNotFound
		},
	}
	handler := NewCatalogHandler(facade)

	recorder := performJSON(handler.GetProduct, http.MethodGet, "/route/prod-x", "")
	if recorder.Code != http.StatusNotFound {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
}

func TestReplaceVariants(t *testing.T) {
	var received []model.VariantGroup
	facade := testhelpers.CatalogFacadeStub{
		ReplaceVariantsFn: func(ctx context.Context, productID string, groups []model.VariantGroup) (*model.Product, error) {
			received = groups
			return &model.Product{ID: productID, Variants: groups}, nil
		},
	}
	handler := NewCatalogHandler(facade)

	recorder := performJSON(handler.ReplaceVariants, http.MethodPut, "/route/prod-1",
		`[{"id":"var-1","name":"Talla","values":["S","M","L"]}]`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("unexpected status %d", recorder.Code)
	}
	if len(received) != 1 || received[0].ID != "var-1" || len(received[0].Values) != 3 {
		t.Fatalf("groups not forwarded: %+v", received)
	}
}
