package dto

import "github.com/allmart/backoffice/internal/domain/model"

// CategoryRequest creates a new category; slug is derived server-side.
type CategoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
	ItemCount   int    `json:"itemCount"`
}

// CategoryPatchRequest carries partial category edits.
type CategoryPatchRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
	ItemCount   *int    `json:"itemCount"`
}

// CategoryResponse is the wire representation of a category.
type CategoryResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	ItemCount   int    `json:"itemCount"`
}

// FromCategory builds the wire representation of a category.
func FromCategory(c model.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		Image:       c.Image,
		ItemCount:   c.ItemCount,
	}
}

// VariantGroupPayload is one axis of product variation.
type VariantGroupPayload struct {
	ID     string   `json:"id,omitempty"`
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// ToVariantGroups converts variant payloads into domain groups.
func ToVariantGroups(payloads []VariantGroupPayload) []model.VariantGroup {
	groups := make([]model.VariantGroup, 0, len(payloads))
	for _, p := range payloads {
		groups = append(groups, model.VariantGroup{ID: p.ID, Name: p.Name, Values: p.Values})
	}
	return groups
}

// ProductRequest creates or replaces a product. The category is referenced
// by id and embedded server-side.
type ProductRequest struct {
	Name             string                `json:"name"`
	Description      string                `json:"description"`
	ShortDescription string                `json:"shortDescription"`
	Price            float64               `json:"price"`
	OriginalPrice    *float64              `json:"originalPrice"`
	Discount         *float64              `json:"discount"`
	Images           []string              `json:"images"`
	CategoryID       string                `json:"categoryId"`
	Tags             []string              `json:"tags"`
	Rating           float64               `json:"rating"`
	ReviewCount      int                   `json:"reviewCount"`
	InStock          bool                  `json:"inStock"`
	SKU              string                `json:"sku"`
	Features         []string              `json:"features"`
	Stock            int                   `json:"stock"`
	Variants         []VariantGroupPayload `json:"variants"`
}

// ToProduct converts the request into a domain product with the resolved category.
func (r ProductRequest) ToProduct(category model.Category) model.Product {
	return model.Product{
		Name:             r.Name,
		Description:      r.Description,
		ShortDescription: r.ShortDescription,
		Price:            r.Price,
		OriginalPrice:    r.OriginalPrice,
		Discount:         r.Discount,
		Images:           r.Images,
		Category:         category,
		Tags:             r.Tags,
		Rating:           r.Rating,
		ReviewCount:      r.ReviewCount,
		InStock:          r.InStock,
		SKU:              r.SKU,
		Features:         r.Features,
		Stock:            r.Stock,
		Variants:         ToVariantGroups(r.Variants),
	}
}

// ProductResponse is the wire representation of a product.
type ProductResponse struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	Slug             string                `json:"slug"`
	Description      string                `json:"description,omitempty"`
	ShortDescription string                `json:"shortDescription,omitempty"`
	Price            float64               `json:"price"`
	OriginalPrice    *float64              `json:"originalPrice,omitempty"`
	Discount         *float64              `json:"discount,omitempty"`
	Images           []string              `json:"images"`
	Category         CategoryResponse      `json:"category"`
	Tags             []string              `json:"tags"`
	Rating           float64               `json:"rating"`
	ReviewCount      int                   `json:"reviewCount"`
	InStock          bool                  `json:"inStock"`
	SKU              string                `json:"sku"`
	Features         []string              `json:"features"`
	Stock            int                   `json:"stock"`
	Variants         []VariantGroupPayload `json:"variants"`
}

// FromProduct builds the wire representation of a product.
func FromProduct(p model.Product) ProductResponse {
	resp := ProductResponse{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Price:            p.Price,
		OriginalPrice:    p.OriginalPrice,
		Discount:         p.Discount,
		Images:           p.Images,
		Category:         FromCategory(p.Category),
		Tags:             p.Tags,
		Rating:           p.Rating,
		ReviewCount:      p.ReviewCount,
		InStock:          p.InStock,
		SKU:              p.SKU,
		Features:         p.Features,
		Stock:            p.Stock,
	}
	resp.Variants = make([]VariantGroupPayload, 0, len(p.Variants))
	for _, g := range p.Variants {
		resp.Variants = append(resp.Variants, VariantGroupPayload{ID: g.ID, Name: g.Name, Values: g.Values})
	}
	return resp
}
