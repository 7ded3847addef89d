package movement

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/movement"
)

// Simulator backfills a plausible multi-month movement history. It only
// fabricates ledger rows: the product's on-hand amount is never touched,
// so quantities are drawn from each product's snapshot at generation time
// and stay within [0, maximalQuantity] if replayed against that snapshot.
type Simulator struct {
	productRepo  catalog.ProductRepository
	movementRepo movement.Repository
	rng          *rand.Rand
	logger       *zap.Logger

	// now is swappable in tests to pin the simulated year and month span.
	now func() time.Time
}

// NewSimulator creates a Simulator with its own random source. Pass a
// seeded source for reproducible histories.
func NewSimulator(productRepo catalog.ProductRepository, movementRepo movement.Repository, rng *rand.Rand, logger *zap.Logger) *Simulator {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Simulator{
		productRepo:  productRepo,
		movementRepo: movementRepo,
		rng:          rng,
		logger:       logger,
		now:          time.Now,
	}
}

// Simulate generates movements for every month of the current year up to
// and including the current month, between 100 and 199 rows per month,
// and appends them in one bulk persist. With no products it does nothing.
func (s *Simulator) Simulate(ctx context.Context) (int, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(products) == 0 {
		return 0, nil
	}

	now := s.now().UTC()
	movements := s.generate(products, now.Year(), int(now.Month()))

	if err := s.movementRepo.SaveAll(ctx, movements); err != nil {
		return 0, err
	}

	s.logger.Info("simulated movement history",
		zap.Int("months", int(now.Month())),
		zap.Int("movements", len(movements)))
	return len(movements), nil
}

// generate builds the synthetic rows for months 1..currentMonth of year.
func (s *Simulator) generate(products []catalog.Product, year, currentMonth int) []movement.Movement {
	var movements []movement.Movement

	for month := 1; month <= currentMonth; month++ {
		count := 100 + s.rng.Intn(100)
		for i := 0; i < count; i++ {
			product := products[s.rng.Intn(len(products))]

			movementType := movement.TypeIn
			if s.rng.Intn(2) == 1 {
				movementType = movement.TypeOut
			}

			// Quantity is drawn so the row, replayed against this
			// snapshot, keeps the amount inside its bounds. Exhausted
			// headroom or empty stock yields a recorded zero-quantity
			// no-op row.
			quantity := 0
			if movementType == movement.TypeIn {
				if headroom := product.Headroom(); headroom > 0 {
					quantity = 1 + s.rng.Intn(headroom)
				}
			} else if product.Amount > 0 {
				quantity = 1 + s.rng.Intn(product.Amount)
			}

			day := 1 + s.rng.Intn(28)
			movedAt := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)

			movements = append(movements, *movement.NewMovement(product.ID, movementType, quantity, movedAt))
		}
	}

	return movements
}
