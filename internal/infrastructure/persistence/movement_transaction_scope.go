package persistence

import (
	"context"

	"gorm.io/gorm"

	appmovement "github.com/stockroom/backend/internal/application/movement"
	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/movement"
)

// GormTransactionScope implements TransactionScope using GORM transactions.
// The ledger uses it so the product amount change and the movement append
// commit or roll back together.
type GormTransactionScope struct {
	db *gorm.DB
}

// NewGormTransactionScope creates a new GormTransactionScope
func NewGormTransactionScope(db *gorm.DB) *GormTransactionScope {
	return &GormTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
// If the function returns an error, the transaction is rolled back.
func (s *GormTransactionScope) Execute(ctx context.Context, fn func(repos appmovement.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		repos := &gormTransactionalRepositories{tx: tx}
		return fn(repos)
	})
}

// gormTransactionalRepositories provides repositories scoped to one transaction.
type gormTransactionalRepositories struct {
	tx *gorm.DB
}

// ProductRepo returns the product repository scoped to the current transaction
func (r *gormTransactionalRepositories) ProductRepo() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// MovementRepo returns the ledger repository scoped to the current transaction
func (r *gormTransactionalRepositories) MovementRepo() movement.Repository {
	return NewGormMovementRepository(r.tx)
}

// PriceHistoryRepo returns the price history repository scoped to the current transaction
func (r *gormTransactionalRepositories) PriceHistoryRepo() catalog.ProductPriceHistoryRepository {
	return NewGormProductPriceHistoryRepository(r.tx)
}

// Ensure GormTransactionScope implements TransactionScope
var _ appmovement.TransactionScope = (*GormTransactionScope)(nil)

// Ensure gormTransactionalRepositories implements TransactionalRepositories
var _ appmovement.TransactionalRepositories = (*gormTransactionalRepositories)(nil)
