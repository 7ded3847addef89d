package movement

import (
	"context"

	"github.com/stockroom/backend/internal/domain/shared"
)

// Repository defines the persistence contract for the stock ledger.
// The ledger is append-only: there is no update or delete.
type Repository interface {
	FindByID(ctx context.Context, id int64) (*Movement, error)
	FindAll(ctx context.Context) ([]Movement, error)
	FindPaged(ctx context.Context, filter Filter, opts *shared.QueryOptions) (shared.PagedResult[Movement], error)
	FindByProduct(ctx context.Context, productID int64) ([]Movement, error)
	Save(ctx context.Context, movement *Movement) error
	SaveAll(ctx context.Context, movements []Movement) error
	CountByProduct(ctx context.Context, productID int64) (int64, error)
}
