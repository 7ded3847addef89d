package handler

import (
	"github.com/gin-gonic/gin"

	partnerapp "github.com/stockroom/backend/internal/application/partner"
)

// CountryHandler handles country lookup API endpoints
type CountryHandler struct {
	BaseHandler
	countryService *partnerapp.CountryService
}

// NewCountryHandler creates a new CountryHandler
func NewCountryHandler(countryService *partnerapp.CountryService) *CountryHandler {
	return &CountryHandler{countryService: countryService}
}

// List returns every known country, importing the reference list on
// first use when the table is still empty.
func (h *CountryHandler) List(c *gin.Context) {
	countries, err := h.countryService.GetAll(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, countries)
}

// GetByID returns one country.
func (h *CountryHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid country ID")
		return
	}

	country, err := h.countryService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, country)
}

// Import refreshes the country table from the external reference list.
func (h *CountryHandler) Import(c *gin.Context) {
	imported, err := h.countryService.Import(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, gin.H{"imported": imported})
}
