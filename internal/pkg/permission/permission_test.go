package permission

import (
	"testing"

	"github.com/allmart/backoffice/internal/domain/model"
)

func TestForRole(t *testing.T) {
	admin := ForRole(model.RoleAdmin)
	if len(admin) != 17 {
		t.Fatalf("expected admin to hold every permission, got %d", len(admin))
	}

	editor := ForRole(model.RoleEditor)
	if len(editor) != 6 {
		t.Fatalf("unexpected editor permission count %d", len(editor))
	}

	if got := ForRole("ghost"); got != nil {
		t.Fatalf("unknown role must have no permissions, got %v", got)
	}
}

func TestHasEditorBoundaries(t *testing.T) {
	allowed := []Permission{ProductsView, VariantsView, CategoriesView, OrdersView, OrdersEdit, OrdersMarkPaid}
	for _, p := range allowed {
		if !Has(model.RoleEditor, p) {
			t.Fatalf("editor must hold %q", p)
		}
	}

	denied := []Permission{
		ProductsCreate, ProductsEdit, ProductsDelete,
		CategoriesCreate, CategoriesEdit, CategoriesDelete,
		VariantsCreate, VariantsEdit, VariantsDelete,
		OrdersDelete, ReportsView,
	}
	for _, p := range denied {
		if Has(model.RoleEditor, p) {
			t.Fatalf("editor must not hold %q", p)
		}
	}
}

func TestHasAdminHoldsEverything(t *testing.T) {
	for _, p := range ForRole(model.RoleAdmin) {
		if !Has(model.RoleAdmin, p) {
			t.Fatalf("admin must hold %q", p)
		}
	}
	if Has(model.RoleAdmin, Permission("orders.destroyAll")) {
		t.Fatal("unknown permission must not be granted")
	}
}
