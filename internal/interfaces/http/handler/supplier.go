package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/stockroom/backend/internal/application/partner"
	"github.com/stockroom/backend/internal/domain/partner"
	"github.com/stockroom/backend/internal/interfaces/http/dto"
)

// SupplierHandler handles supplier API endpoints
type SupplierHandler struct {
	BaseHandler
	supplierService *partnerapp.SupplierService
}

// NewSupplierHandler creates a new SupplierHandler
func NewSupplierHandler(supplierService *partnerapp.SupplierService) *SupplierHandler {
	return &SupplierHandler{supplierService: supplierService}
}

// supplierListRequest adds the supplier filters to the common list params.
type supplierListRequest struct {
	dto.ListRequest
	CategoryID int64 `form:"category_id" binding:"omitempty,gt=0"`
	CountryID  int64 `form:"country_id" binding:"omitempty,gt=0"`
	ActiveOnly bool  `form:"active_only"`
}

func (r supplierListRequest) filter() partner.SupplierFilter {
	return partner.SupplierFilter{
		Search:     r.Search,
		CategoryID: r.CategoryID,
		ActiveOnly: r.ActiveOnly,
		CountryID:  r.CountryID,
	}
}

// List returns a filtered page of suppliers.
func (h *SupplierHandler) List(c *gin.Context) {
	var list supplierListRequest
	if err := c.ShouldBindQuery(&list); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.supplierService.GetAll(c.Request.Context(), list.filter(), list.QueryOptions())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paged(c, result)
}

// GetByID returns one supplier with its relations loaded.
func (h *SupplierHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	supplier, err := h.supplierService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, supplier)
}

// Create registers a new supplier.
func (h *SupplierHandler) Create(c *gin.Context) {
	var req partnerapp.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	supplier, err := h.supplierService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, supplier)
}

// Update edits an existing supplier.
func (h *SupplierHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	var req partnerapp.SupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	supplier, err := h.supplierService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, supplier)
}

// Delete removes a supplier with no registered offerings.
func (h *SupplierHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid supplier ID")
		return
	}

	if err := h.supplierService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
