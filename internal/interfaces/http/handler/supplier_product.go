package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/stockroom/backend/internal/application/catalog"
	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/interfaces/http/dto"
)

// SupplierProductHandler handles supplier offering API endpoints
type SupplierProductHandler struct {
	BaseHandler
	supplierProductService *catalogapp.SupplierProductService
}

// NewSupplierProductHandler creates a new SupplierProductHandler
func NewSupplierProductHandler(supplierProductService *catalogapp.SupplierProductService) *SupplierProductHandler {
	return &SupplierProductHandler{supplierProductService: supplierProductService}
}

// supplierProductListRequest adds the entity filters to the list params.
type supplierProductListRequest struct {
	dto.ListRequest
	CategoryID int64 `form:"category_id" binding:"omitempty,gt=0"`
	SupplierID int64 `form:"supplier_id" binding:"omitempty,gt=0"`
}

func (r supplierProductListRequest) filter() catalog.SupplierProductFilter {
	return catalog.SupplierProductFilter{
		Search:     r.Search,
		CategoryID: r.CategoryID,
		SupplierID: r.SupplierID,
	}
}

// List returns a page of supplier offerings.
func (h *SupplierProductHandler) List(c *gin.Context) {
	var list supplierProductListRequest
	if err := c.ShouldBindQuery(&list); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.supplierProductService.GetAll(c.Request.Context(), list.filter(), list.QueryOptions())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paged(c, result)
}

// GetByID returns one supplier offering.
func (h *SupplierProductHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid supplier product ID")
		return
	}

	sp, err := h.supplierProductService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sp)
}

// ListBySupplier returns every offering of one supplier, unpaged.
func (h *SupplierProductHandler) ListBySupplier(c *gin.Context) {
	supplierID, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	offerings, err := h.supplierProductService.GetBySupplier(c.Request.Context(), supplierID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, offerings)
}

// Create registers a new supplier offering.
func (h *SupplierProductHandler) Create(c *gin.Context) {
	var req catalogapp.SupplierProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	sp, err := h.supplierProductService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, sp)
}

// Update edits an existing supplier offering.
func (h *SupplierProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid supplier product ID")
		return
	}

	var req catalogapp.SupplierProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	sp, err := h.supplierProductService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, sp)
}

// Delete removes a supplier offering not referenced by any product.
func (h *SupplierProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid supplier product ID")
		return
	}

	if err := h.supplierProductService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
