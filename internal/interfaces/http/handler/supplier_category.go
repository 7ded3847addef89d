package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/stockroom/backend/internal/application/partner"
	"github.com/stockroom/backend/internal/interfaces/http/dto"
)

// SupplierCategoryHandler handles supplier category API endpoints
type SupplierCategoryHandler struct {
	BaseHandler
	categoryService *partnerapp.SupplierCategoryService
}

// NewSupplierCategoryHandler creates a new SupplierCategoryHandler
func NewSupplierCategoryHandler(categoryService *partnerapp.SupplierCategoryService) *SupplierCategoryHandler {
	return &SupplierCategoryHandler{categoryService: categoryService}
}

// List returns a page of supplier categories.
func (h *SupplierCategoryHandler) List(c *gin.Context) {
	var list dto.ListRequest
	if err := c.ShouldBindQuery(&list); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.categoryService.GetAll(c.Request.Context(), list.QueryOptions())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paged(c, result)
}

// GetByID returns one supplier category.
func (h *SupplierCategoryHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid supplier category ID")
		return
	}

	category, err := h.categoryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, category)
}

// Create registers a new supplier category.
func (h *SupplierCategoryHandler) Create(c *gin.Context) {
	var req partnerapp.SupplierCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	category, err := h.categoryService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, category)
}

// Update edits an existing supplier category.
func (h *SupplierCategoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid supplier category ID")
		return
	}

	var req partnerapp.SupplierCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	category, err := h.categoryService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, category)
}

// Delete removes a supplier category with no member suppliers.
func (h *SupplierCategoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid supplier category ID")
		return
	}

	if err := h.categoryService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
