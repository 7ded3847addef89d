package movement

import (
	"context"

	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/movement"
)

// TransactionScope provides atomic execution of multiple repository
// operations. The ledger relies on it so the amount mutation and the
// movement append commit or roll back as one unit.
type TransactionScope interface {
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes repositories bound to one transaction.
type TransactionalRepositories interface {
	ProductRepo() catalog.ProductRepository
	MovementRepo() movement.Repository
	PriceHistoryRepo() catalog.ProductPriceHistoryRepository
}
