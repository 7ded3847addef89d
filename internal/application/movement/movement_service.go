package movement

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/stockroom/backend/internal/domain/movement"
	"github.com/stockroom/backend/internal/domain/shared"
)

// maxRegisterRetries bounds the optimistic-concurrency retry loop. Each
// retry re-reads the product so the bound checks run against fresh state.
const maxRegisterRetries = 3

// ErrConcurrencyExhausted is returned when a movement keeps losing the
// conditional amount update to concurrent writers.
var ErrConcurrencyExhausted = &shared.DomainError{
	Code:    "Movement.ConcurrencyConflict",
	Message: "the product was modified concurrently too many times, try again",
}

// Service posts movements to the stock ledger and reads it back.
type Service struct {
	scope        TransactionScope
	movementRepo movement.Repository
	logger       *zap.Logger
}

// NewService creates a new movement Service
func NewService(scope TransactionScope, movementRepo movement.Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{scope: scope, movementRepo: movementRepo, logger: logger}
}

// Register posts one movement: it validates the request against the
// product's current state, mutates the on-hand amount and appends the
// ledger row in one transaction. The amount write is conditioned on the
// value read at the start of the attempt, so a concurrent movement on the
// same product forces a retry with fresh state instead of a lost update.
func (s *Service) Register(ctx context.Context, req movement.RegisterRequest) (*movement.Movement, error) {
	if req.MovedAt.IsZero() {
		req.MovedAt = time.Now().UTC()
	}

	var registered *movement.Movement
	for attempt := 0; attempt < maxRegisterRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		err := s.scope.Execute(ctx, func(repos TransactionalRepositories) error {
			product, err := repos.ProductRepo().FindByID(ctx, req.ProductID)
			if err != nil {
				return err
			}

			if err := movement.Validate(req, product); err != nil {
				return err
			}

			next := product.Amount + req.Type.Sign()*req.Quantity
			claimed, err := repos.ProductRepo().UpdateAmountConditional(ctx, product.ID, product.Amount, next)
			if err != nil {
				return err
			}
			if !claimed {
				return shared.ErrConcurrencyConflict
			}

			m := movement.NewMovement(product.ID, req.Type, req.Quantity, req.MovedAt)
			if err := repos.MovementRepo().Save(ctx, m); err != nil {
				return err
			}
			registered = m
			return nil
		})
		if err == nil {
			return registered, nil
		}
		if !errors.Is(err, shared.ErrConcurrencyConflict) {
			return nil, err
		}

		s.logger.Debug("movement lost conditional amount update, retrying",
			zap.Int64("product_id", req.ProductID),
			zap.Int("attempt", attempt+1))
	}

	s.logger.Warn("movement registration exhausted retries",
		zap.Int64("product_id", req.ProductID),
		zap.String("type", string(req.Type)),
		zap.Int("quantity", req.Quantity))
	return nil, ErrConcurrencyExhausted
}

// GetByID retrieves one ledger row
func (s *Service) GetByID(ctx context.Context, id int64) (*movement.Movement, error) {
	return s.movementRepo.FindByID(ctx, id)
}

// GetAll returns a page of the ledger without entity filters. A nil opts
// returns the whole ledger in one page.
func (s *Service) GetAll(ctx context.Context, opts *shared.QueryOptions) (shared.PagedResult[movement.Movement], error) {
	filter := movement.Filter{}
	if opts.HasSearch() {
		filter.Search = opts.Search
	}
	return s.movementRepo.FindPaged(ctx, filter, opts)
}

// GetAllByFilter returns a page of the ledger narrowed by the given filter
func (s *Service) GetAllByFilter(ctx context.Context, filter movement.Filter, opts *shared.QueryOptions) (shared.PagedResult[movement.Movement], error) {
	if opts.HasSearch() && filter.Search == "" {
		filter.Search = opts.Search
	}
	return s.movementRepo.FindPaged(ctx, filter, opts)
}
