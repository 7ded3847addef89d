package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/stockroom/backend/internal/application/catalog"
	"github.com/stockroom/backend/internal/interfaces/http/dto"
)

// LocationHandler handles storage location API endpoints
type LocationHandler struct {
	BaseHandler
	locationService *catalogapp.LocationService
}

// NewLocationHandler creates a new LocationHandler
func NewLocationHandler(locationService *catalogapp.LocationService) *LocationHandler {
	return &LocationHandler{locationService: locationService}
}

// locationListRequest adds the active-only switch to the common list params.
type locationListRequest struct {
	dto.ListRequest
	ActiveOnly bool `form:"active_only"`
}

// List returns a page of storage locations.
func (h *LocationHandler) List(c *gin.Context) {
	var list locationListRequest
	if err := c.ShouldBindQuery(&list); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.locationService.GetAll(c.Request.Context(), list.ActiveOnly, list.QueryOptions())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paged(c, result)
}

// GetByID returns one storage location.
func (h *LocationHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid location ID")
		return
	}

	location, err := h.locationService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, location)
}

// Create registers a new storage location.
func (h *LocationHandler) Create(c *gin.Context) {
	var req catalogapp.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	location, err := h.locationService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, location)
}

// Update edits an existing storage location.
func (h *LocationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid location ID")
		return
	}

	var req catalogapp.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	location, err := h.locationService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, location)
}

// Delete removes a storage location that holds no products.
func (h *LocationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid location ID")
		return
	}

	if err := h.locationService.Delete(c.Request.Context(), id); err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.NoContent(c)
}
