package movement

import (
	"fmt"

	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/shared"
)

// MaxQuantity caps how many units a single movement may carry.
const MaxQuantity = 10000

// Ledger error codes surfaced to callers.
var (
	ErrUnknownType       = &shared.DomainError{Code: "Movement.UnknownType", Message: "movement type must be In or Out"}
	ErrInvalidQuantity   = &shared.DomainError{Code: "Movement.InvalidQuantity", Message: "movement quantity must be a positive integer"}
	ErrQuantityTooLarge  = &shared.DomainError{Code: "Movement.InvalidQuantity", Message: fmt.Sprintf("movement quantity must be at most %d", MaxQuantity)}
	ErrExceedsCapacity   = &shared.DomainError{Code: "Movement.ExceedsCapacity", Message: "inbound movement would exceed the product's maximal quantity"}
	ErrInsufficientStock = &shared.DomainError{Code: "Movement.InsufficientStock", Message: "outbound movement exceeds the product's on-hand amount"}
)

// Validate checks a register request against the product's current state.
// Only the simulator may fabricate zero-quantity rows; ledger registrations
// require a positive quantity.
func Validate(req RegisterRequest, product *catalog.Product) error {
	if !req.Type.IsValid() {
		return ErrUnknownType
	}
	if req.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if req.Quantity > MaxQuantity {
		return ErrQuantityTooLarge
	}
	switch req.Type {
	case TypeIn:
		if !product.CanReceive(req.Quantity) {
			return &shared.DomainError{
				Code: ErrExceedsCapacity.Code,
				Message: fmt.Sprintf("cannot receive %d units of product %d: amount %d, maximal quantity %d",
					req.Quantity, product.ID, product.Amount, product.MaximalQuantity),
			}
		}
	case TypeOut:
		if !product.CanIssue(req.Quantity) {
			return &shared.DomainError{
				Code: ErrInsufficientStock.Code,
				Message: fmt.Sprintf("cannot issue %d units of product %d: only %d on hand",
					req.Quantity, product.ID, product.Amount),
			}
		}
	}
	return nil
}
