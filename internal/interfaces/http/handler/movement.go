package handler

import (
	"github.com/gin-gonic/gin"

	movementapp "github.com/stockroom/backend/internal/application/movement"
	"github.com/stockroom/backend/internal/domain/movement"
	"github.com/stockroom/backend/internal/interfaces/http/dto"
)

// MovementHandler handles stock ledger API endpoints
type MovementHandler struct {
	BaseHandler
	movementService *movementapp.Service
	simulator       *movementapp.Simulator
}

// NewMovementHandler creates a new MovementHandler
func NewMovementHandler(movementService *movementapp.Service, simulator *movementapp.Simulator) *MovementHandler {
	return &MovementHandler{movementService: movementService, simulator: simulator}
}

// movementListRequest adds the ledger filters to the common list params.
type movementListRequest struct {
	dto.ListRequest
	ProductID  int64  `form:"product_id" binding:"omitempty,gt=0"`
	SupplierID int64  `form:"supplier_id" binding:"omitempty,gt=0"`
	LocationID int64  `form:"location_id" binding:"omitempty,gt=0"`
	Type       string `form:"type" binding:"omitempty,oneof=In Out"`
	DateFilter string `form:"date_filter" binding:"omitempty,oneof=All ThisMonth Last3Months Last6Months"`
}

func (r movementListRequest) filter() movement.Filter {
	return movement.Filter{
		Search:     r.Search,
		ProductID:  r.ProductID,
		SupplierID: r.SupplierID,
		LocationID: r.LocationID,
		Type:       movement.Type(r.Type),
		DateFilter: movement.DateFilterType(r.DateFilter),
	}
}

// List returns a filtered page of ledger entries.
func (h *MovementHandler) List(c *gin.Context) {
	var list movementListRequest
	if err := c.ShouldBindQuery(&list); err != nil {
		h.BindError(c, err)
		return
	}

	result, err := h.movementService.GetAllByFilter(c.Request.Context(), list.filter(), list.QueryOptions())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	Paged(c, result)
}

// GetByID returns one ledger entry.
func (h *MovementHandler) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		h.BadRequest(c, "Invalid movement ID")
		return
	}

	mv, err := h.movementService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Success(c, mv)
}

// Register posts a movement to the ledger, adjusting the product's
// on-hand amount in the same transaction.
func (h *MovementHandler) Register(c *gin.Context) {
	var req movement.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	mv, err := h.movementService.Register(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, mv)
}

// Simulate backfills the current year with randomized ledger entries.
// The generated rows never touch product amounts.
func (h *MovementHandler) Simulate(c *gin.Context) {
	generated, err := h.simulator.Simulate(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}

	h.Created(c, gin.H{"generated": generated})
}
