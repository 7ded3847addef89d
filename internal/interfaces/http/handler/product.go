package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/stockroom/backend/internal/application/catalog"
	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/interfaces/http/dto"
)

// ProductHandler handles product API endpoints
type ProductHandler struct {
	BaseHandler
	productService *catalogapp.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *catalogapp.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// productListRequest adds the product filters to the common list params.
type productListRequest struct {
	dto.ListRequest
	CategoryID int64 `form:"category_id" binding:"omitempty,gt=0"`
	SupplierID int64 `form:"supplier_id" binding:"omitempty,gt=0"`
	LocationID int64 `form:"location_id" binding:"omitempty,gt=0"`
	BelowMin   bool  `form:"below_min"`
}

func (r productListRequest) filter() catalog.ProductFilter {
	return catalog.ProductFilter{
		Search:     r.Search,
		CategoryID: r.CategoryID,
		SupplierID: r.SupplierID,
		LocationID: r.LocationID,
		BelowMin:   r.BelowMin,
	}
}

// List returns a filtered page of products.
func (h *ProductHandler) List(c *gin.Context) {
	var list productListRequest
	if err := c.ShouldBindQuery(&list); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.productService.GetAll(c.Request.Context(), list.filter(), list.QueryOptions())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paged(c, result)
}

// GetByID returns one product with its relations loaded.
func (h *ProductHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// Create registers a new product.
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.productService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, product)
}

// Update edits an existing product. A selling price change also appends
// a price history row.
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	product, err := h.productService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete removes a product with no recorded movements.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}

// PriceHistory returns a page of a product's recorded price changes.
func (h *ProductHandler) PriceHistory(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid product ID")
		return
	}

	var list dto.ListRequest
	if err := c.ShouldBindQuery(&list); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.productService.GetPriceHistory(c.Request.Context(), id, list.QueryOptions())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paged(c, result)
}
