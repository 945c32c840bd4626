package permission

import "github.com/allmart/backoffice/internal/domain/model"

// Permission names a single back-office capability.
type Permission string

const (
	ProductsView   Permission = "products.view"
	ProductsCreate Permission = "products.create"
	ProductsEdit   Permission = "products.edit"
	ProductsDelete Permission = "products.delete"

	VariantsView   Permission = "variants.view"
	VariantsCreate Permission = "variants.create"
	VariantsEdit   Permission = "variants.edit"
	VariantsDelete Permission = "variants.delete"

	CategoriesView   Permission = "categories.view"
	CategoriesCreate Permission = "categories.create"
	CategoriesEdit   Permission = "categories.edit"
	CategoriesDelete Permission = "categories.delete"

	OrdersView     Permission = "orders.view"
	OrdersEdit     Permission = "orders.edit"
	OrdersDelete   Permission = "orders.delete"
	OrdersMarkPaid Permission = "orders.markPaid"

	ReportsView Permission = "reports.view"
)

var adminPermissions = []Permission{
	ProductsView, ProductsCreate, ProductsEdit, ProductsDelete,
	VariantsView, VariantsCreate, VariantsEdit, VariantsDelete,
	CategoriesView, CategoriesCreate, CategoriesEdit, CategoriesDelete,
	OrdersView, OrdersEdit, OrdersDelete, OrdersMarkPaid,
	ReportsView,
}

// Editors can work the order queue but cannot touch the catalog, delete
// orders or open reports.
var editorPermissions = []Permission{
	ProductsView,
	VariantsView,
	CategoriesView,
	OrdersView, OrdersEdit, OrdersMarkPaid,
}

// ForRole returns the permission set derived from a role.
func ForRole(role model.Role) []Permission {
	switch role {
	case model.RoleAdmin:
		return adminPermissions
	case model.RoleEditor:
		return editorPermissions
	}
	return nil
}

// Has reports whether the role grants the permission.
func Has(role model.Role, p Permission) bool {
	for _, granted := range ForRole(role) {
		if granted == p {
			return true
		}
	}
	return false
}
