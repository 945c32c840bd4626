package model

// Category groups products for storefront navigation. Products embed a
// denormalized copy, so renaming a category does not cascade into products.
type Category struct {
	ID          string
	Name        string
	Slug        string
	Description string
	Image       string
	ItemCount   int
}

// CategoryPatch carries partial category edits.
type CategoryPatch struct {
	Name        *string
	Description *string
	Image       *string
	ItemCount   *int
}

// VariantGroup is a named axis of product variation, e.g. "Color" with
// values ["Rojo", "Azul"].
type VariantGroup struct {
	ID     string
	Name   string
	Values []string
}

// Product is the admin view of a catalog entry. Stock and orders are fully
// decoupled: placing an order never decrements Stock.
type Product struct {
	ID               string
	Name             string
	Slug             string
	Description      string
	ShortDescription string
	Price            float64
	OriginalPrice    *float64
	Discount         *float64
	Images           []string
	Category         Category
	Tags             []string
	Rating           float64
	ReviewCount      int
	InStock          bool
	SKU              string
	Features         []string
	Stock            int
	Variants         []VariantGroup
}
