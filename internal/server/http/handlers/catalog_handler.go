package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/allmart/backoffice/internal/domain/errors"
	"github.com/allmart/backoffice/internal/domain/model"
	"github.com/allmart/backoffice/internal/server/http/dto"
)

// CatalogHandler manages category and product endpoints.
type CatalogHandler struct {
	facade CatalogFacade
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade) *CatalogHandler {
	return &CatalogHandler{facade: facade}
}

// ListCategories handles GET /api/categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	categories, err := h.facade.Categories(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	response := make([]dto.CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		response = append(response, dto.FromCategory(cat))
	}
	c.JSON(http.StatusOK, response)
}

// CreateCategory handles POST /api/admin/categories.
func (h *CatalogHandler) CreateCategory(c *gin.Context) {
	var req dto.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.Status(http.StatusBadRequest)
		return
	}

	category, err := h.facade.CreateCategory(c.Request.Context(), model.Category{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		ItemCount:   req.ItemCount,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromCategory(*category))
}

// UpdateCategory handles PATCH /api/admin/categories/:id.
func (h *CatalogHandler) UpdateCategory(c *gin.Context) {
	var req dto.CategoryPatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	category, err := h.facade.UpdateCategory(c.Request.Context(), c.Param("id"), model.CategoryPatch{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		ItemCount:   req.ItemCount,
	})
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromCategory(*category))
}

// DeleteCategory handles DELETE /api/admin/categories/:id.
func (h *CatalogHandler) DeleteCategory(c *gin.Context) {
	if err := h.facade.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListProducts handles GET /api/products.
func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.facade.Products(c.Request.Context())
	if err != nil {
		c.Status(http.StatusInternalServerError)
		return
	}
	response := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.FromProduct(p))
	}
	c.JSON(http.StatusOK, response)
}

// GetProduct handles GET /api/products/:id.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	product, err := h.facade.Product(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromProduct(*product))
}

// CreateProduct handles POST /api/admin/products.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	req, category, ok := h.bindProduct(c)
	if !ok {
		return
	}

	product, err := h.facade.CreateProduct(c.Request.Context(), req.ToProduct(*category))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.FromProduct(*product))
}

// UpdateProduct handles PUT /api/admin/products/:id.
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	req, category, ok := h.bindProduct(c)
	if !ok {
		return
	}

	product, err := h.facade.UpdateProduct(c.Request.Context(), c.Param("id"), req.ToProduct(*category))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromProduct(*product))
}

// DeleteProduct handles DELETE /api/admin/products/:id.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	if err := h.facade.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ReplaceVariants handles PUT /api/admin/products/:id/variants.
func (h *CatalogHandler) ReplaceVariants(c *gin.Context) {
	var groups []dto.VariantGroupPayload
	if err := c.ShouldBindJSON(&groups); err != nil {
		c.Status(http.StatusBadRequest)
		return
	}

	product, err := h.facade.ReplaceProductVariants(c.Request.Context(), c.Param("id"), dto.ToVariantGroups(groups))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.FromProduct(*product))
}

// bindProduct parses a product payload and resolves its category reference.
func (h *CatalogHandler) bindProduct(c *gin.Context) (dto.ProductRequest, *model.Category, bool) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Name == "" {
		c.Status(http.StatusBadRequest)
		return req, nil, false
	}

	category, err := h.facade.Category(c.Request.Context(), req.CategoryID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			c.Status(http.StatusUnprocessableEntity)
		} else {
			c.Status(http.StatusInternalServerError)
		}
		return req, nil, false
	}
	return req, category, true
}

func (h *CatalogHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domainErrors.ErrNotFound):
		c.Status(http.StatusNotFound)
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		c.Status(http.StatusConflict)
	default:
		c.Status(http.StatusInternalServerError)
	}
}
