package movement

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/movement"
)

func simulatorUnderTest(seed int64, products []catalog.Product) (*Simulator, *MockProductRepository, *MockMovementRepository) {
	productRepo := new(MockProductRepository)
	ledger := new(MockMovementRepository)
	productRepo.On("FindAll", mock.Anything).Return(products, nil)

	sim := NewSimulator(productRepo, ledger, rand.New(rand.NewSource(seed)), nil)
	sim.now = func() time.Time { return time.Date(2025, 4, 15, 0, 0, 0, 0, time.UTC) }
	return sim, productRepo, ledger
}

func simulatedProducts() []catalog.Product {
	full := catalog.Product{Amount: 100, MaximalQuantity: 100}
	full.ID = 1
	empty := catalog.Product{Amount: 0, MaximalQuantity: 50}
	empty.ID = 2
	mid := catalog.Product{Amount: 30, MaximalQuantity: 80}
	mid.ID = 3
	return []catalog.Product{full, empty, mid}
}

func TestSimulator_Simulate(t *testing.T) {
	ctx := context.Background()

	t.Run("produces 100 to 199 movements per elapsed month", func(t *testing.T) {
		sim, _, ledger := simulatorUnderTest(42, simulatedProducts())

		var saved []movement.Movement
		ledger.On("SaveAll", ctx, mock.AnythingOfType("[]movement.Movement")).
			Run(func(args mock.Arguments) { saved = args.Get(1).([]movement.Movement) }).
			Return(nil)

		total, err := sim.Simulate(ctx)

		require.NoError(t, err)
		assert.Equal(t, len(saved), total)
		assert.GreaterOrEqual(t, total, 4*100)
		assert.LessOrEqual(t, total, 4*199)

		perMonth := map[time.Month]int{}
		for _, m := range saved {
			perMonth[m.MovedAt.Month()]++
		}
		require.Len(t, perMonth, 4)
		for month := time.January; month <= time.April; month++ {
			assert.GreaterOrEqual(t, perMonth[month], 100)
			assert.LessOrEqual(t, perMonth[month], 199)
		}
	})

	t.Run("every row respects the product snapshot bounds", func(t *testing.T) {
		products := simulatedProducts()
		sim, _, ledger := simulatorUnderTest(7, products)

		byID := map[int64]catalog.Product{}
		for _, p := range products {
			byID[p.ID] = p
		}

		var saved []movement.Movement
		ledger.On("SaveAll", ctx, mock.AnythingOfType("[]movement.Movement")).
			Run(func(args mock.Arguments) { saved = args.Get(1).([]movement.Movement) }).
			Return(nil)

		_, err := sim.Simulate(ctx)
		require.NoError(t, err)
		require.NotEmpty(t, saved)

		for _, m := range saved {
			p := byID[m.ProductID]
			assert.GreaterOrEqual(t, m.Quantity, 0)
			assert.True(t, m.Type.IsValid())
			switch m.Type {
			case movement.TypeIn:
				assert.LessOrEqual(t, p.Amount+m.Quantity, p.MaximalQuantity)
			case movement.TypeOut:
				assert.GreaterOrEqual(t, p.Amount-m.Quantity, 0)
			}
			assert.GreaterOrEqual(t, m.MovedAt.Day(), 1)
			assert.LessOrEqual(t, m.MovedAt.Day(), 28)
			assert.Equal(t, 2025, m.MovedAt.Year())
		}
	})

	t.Run("exhausted products still yield recorded no-op rows", func(t *testing.T) {
		full := catalog.Product{Amount: 100, MaximalQuantity: 100}
		full.ID = 1
		sim, _, ledger := simulatorUnderTest(3, []catalog.Product{full})

		var saved []movement.Movement
		ledger.On("SaveAll", ctx, mock.AnythingOfType("[]movement.Movement")).
			Run(func(args mock.Arguments) { saved = args.Get(1).([]movement.Movement) }).
			Return(nil)

		_, err := sim.Simulate(ctx)
		require.NoError(t, err)

		// A full product cannot receive, an always-full one never issues
		// zero, so inbound rows must all be zero-quantity no-ops.
		sawNoOp := false
		for _, m := range saved {
			if m.Type == movement.TypeIn {
				assert.Zero(t, m.Quantity)
				sawNoOp = true
			}
		}
		assert.True(t, sawNoOp)
	})

	t.Run("same seed reproduces the same history", func(t *testing.T) {
		capture := func(seed int64) []movement.Movement {
			sim, _, ledger := simulatorUnderTest(seed, simulatedProducts())
			var saved []movement.Movement
			ledger.On("SaveAll", ctx, mock.AnythingOfType("[]movement.Movement")).
				Run(func(args mock.Arguments) { saved = args.Get(1).([]movement.Movement) }).
				Return(nil)
			_, err := sim.Simulate(ctx)
			require.NoError(t, err)
			return saved
		}

		first := capture(99)
		second := capture(99)
		require.Equal(t, len(first), len(second))
		for i := range first {
			assert.Equal(t, first[i].ProductID, second[i].ProductID)
			assert.Equal(t, first[i].Type, second[i].Type)
			assert.Equal(t, first[i].Quantity, second[i].Quantity)
			assert.Equal(t, first[i].MovedAt, second[i].MovedAt)
		}
	})

	t.Run("no products means nothing to persist", func(t *testing.T) {
		sim, _, ledger := simulatorUnderTest(1, nil)

		total, err := sim.Simulate(ctx)

		require.NoError(t, err)
		assert.Zero(t, total)
		ledger.AssertNotCalled(t, "SaveAll", mock.Anything, mock.Anything)
	})

	t.Run("bulk persist failure surfaces", func(t *testing.T) {
		sim, _, ledger := simulatorUnderTest(1, simulatedProducts())
		persistErr := errors.New("bulk insert failed")
		ledger.On("SaveAll", ctx, mock.Anything).Return(persistErr)

		_, err := sim.Simulate(ctx)

		assert.ErrorIs(t, err, persistErr)
	})
}
