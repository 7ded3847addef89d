package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/shared"
)

type productServiceFixture struct {
	service          *ProductService
	products         *MockProductRepository
	supplierProducts *MockSupplierProductRepository
	locations        *MockLocationRepository
	prices           *MockPriceHistoryRepository
	ledger           *MockMovementRepository
}

func newProductServiceFixture() *productServiceFixture {
	products := new(MockProductRepository)
	supplierProducts := new(MockSupplierProductRepository)
	locations := new(MockLocationRepository)
	prices := new(MockPriceHistoryRepository)
	ledger := new(MockMovementRepository)
	scope := &fakeScope{products: products, ledger: ledger, prices: prices}

	return &productServiceFixture{
		service:          NewProductService(products, supplierProducts, locations, prices, ledger, scope, nil),
		products:         products,
		supplierProducts: supplierProducts,
		locations:        locations,
		prices:           prices,
		ledger:           ledger,
	}
}

func (f *productServiceFixture) expectValidReferences(ctx context.Context, supplierProductID, locationID int64) {
	f.supplierProducts.On("FindByID", ctx, supplierProductID).Return(&catalog.SupplierProduct{}, nil)
	f.locations.On("FindByID", ctx, locationID).Return(&catalog.Location{}, nil)
}

func storedProduct(id int64, name string, price decimal.Decimal) *catalog.Product {
	p := &catalog.Product{
		BaseEntity:        shared.NewBaseEntity(),
		Name:              name,
		SellingPrice:      price,
		MinimalQuantity:   5,
		MaximalQuantity:   100,
		SupplierProductID: 2,
		LocationID:        3,
	}
	p.ID = id
	return p
}

func TestProductService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a product", func(t *testing.T) {
		f := newProductServiceFixture()
		f.products.On("FindByName", ctx, "Printer Paper A4").Return(nil, shared.NotFound("Product"))
		f.expectValidReferences(ctx, 2, 3)
		f.products.On("Save", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		product, err := f.service.Create(ctx, CreateProductRequest{
			Name:              "Printer Paper A4",
			SellingPrice:      decimal.NewFromFloat(9.90),
			Amount:            50,
			MaximalQuantity:   100,
			SupplierProductID: 2,
			LocationID:        3,
		})

		require.NoError(t, err)
		assert.Equal(t, "Printer Paper A4", product.Name)
		f.products.AssertExpectations(t)
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		f := newProductServiceFixture()
		f.products.On("FindByName", ctx, "Printer Paper A4").
			Return(storedProduct(8, "Printer Paper A4", decimal.NewFromInt(10)), nil)

		_, err := f.service.Create(ctx, CreateProductRequest{
			Name:              "Printer Paper A4",
			SellingPrice:      decimal.NewFromFloat(9.90),
			MaximalQuantity:   100,
			SupplierProductID: 2,
			LocationID:        3,
		})

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "Product.AlreadyExists", domainErr.Code)
		f.products.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects minimal above maximal", func(t *testing.T) {
		f := newProductServiceFixture()

		_, err := f.service.Create(ctx, CreateProductRequest{
			Name:              "Broken",
			SellingPrice:      decimal.NewFromInt(1),
			MinimalQuantity:   20,
			MaximalQuantity:   10,
			SupplierProductID: 2,
			LocationID:        3,
		})

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "Product.Invalid", domainErr.Code)
	})

	t.Run("rejects missing location reference", func(t *testing.T) {
		f := newProductServiceFixture()
		f.products.On("FindByName", ctx, "New").Return(nil, shared.NotFound("Product"))
		f.supplierProducts.On("FindByID", ctx, int64(2)).Return(&catalog.SupplierProduct{}, nil)
		f.locations.On("FindByID", ctx, int64(3)).Return(nil, shared.NotFoundWithID("Location", 3))

		_, err := f.service.Create(ctx, CreateProductRequest{
			Name:              "New",
			SellingPrice:      decimal.NewFromInt(1),
			MaximalQuantity:   10,
			SupplierProductID: 2,
			LocationID:        3,
		})

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "Location.NotFound", domainErr.Code)
	})
}

func TestProductService_Update(t *testing.T) {
	ctx := context.Background()

	baseRequest := UpdateProductRequest{
		Name:              "Printer Paper A4",
		SellingPrice:      decimal.NewFromFloat(12.50),
		MinimalQuantity:   5,
		MaximalQuantity:   100,
		SupplierProductID: 2,
		LocationID:        3,
	}

	t.Run("price change appends exactly one history row", func(t *testing.T) {
		f := newProductServiceFixture()
		existing := storedProduct(8, "Printer Paper A4", decimal.NewFromFloat(10.00))
		f.products.On("FindByName", ctx, "Printer Paper A4").Return(existing, nil)
		f.expectValidReferences(ctx, 2, 3)
		f.products.On("FindByID", ctx, int64(8)).Return(existing, nil)
		f.products.On("Update", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)
		f.prices.On("Save", ctx, mock.MatchedBy(func(h *catalog.ProductPriceHistory) bool {
			return h.OldPrice.Equal(decimal.NewFromFloat(10.00)) &&
				h.NewPrice.Equal(decimal.NewFromFloat(12.50)) &&
				h.ProductID == 8
		})).Return(nil).Once()

		updated, err := f.service.Update(ctx, 8, baseRequest)

		require.NoError(t, err)
		assert.True(t, updated.SellingPrice.Equal(decimal.NewFromFloat(12.50)))
		f.prices.AssertExpectations(t)
	})

	t.Run("unchanged price appends nothing", func(t *testing.T) {
		f := newProductServiceFixture()
		existing := storedProduct(8, "Printer Paper A4", decimal.NewFromFloat(12.50))
		f.products.On("FindByName", ctx, "Printer Paper A4").Return(existing, nil)
		f.expectValidReferences(ctx, 2, 3)
		f.products.On("FindByID", ctx, int64(8)).Return(existing, nil)
		f.products.On("Update", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)

		_, err := f.service.Update(ctx, 8, baseRequest)

		require.NoError(t, err)
		f.prices.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects stealing another product's name", func(t *testing.T) {
		f := newProductServiceFixture()
		other := storedProduct(99, "Printer Paper A4", decimal.NewFromInt(5))
		f.products.On("FindByName", ctx, "Printer Paper A4").Return(other, nil)

		_, err := f.service.Update(ctx, 8, baseRequest)

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "Product.AlreadyExists", domainErr.Code)
	})

	t.Run("failed history append aborts the update", func(t *testing.T) {
		f := newProductServiceFixture()
		existing := storedProduct(8, "Printer Paper A4", decimal.NewFromFloat(10.00))
		f.products.On("FindByName", ctx, "Printer Paper A4").Return(existing, nil)
		f.expectValidReferences(ctx, 2, 3)
		f.products.On("FindByID", ctx, int64(8)).Return(existing, nil)
		f.products.On("Update", ctx, mock.AnythingOfType("*catalog.Product")).Return(nil)
		appendErr := errors.New("insert failed")
		f.prices.On("Save", ctx, mock.Anything).Return(appendErr)

		_, err := f.service.Update(ctx, 8, baseRequest)

		assert.ErrorIs(t, err, appendErr)
	})
}

func TestProductService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes a product without history", func(t *testing.T) {
		f := newProductServiceFixture()
		f.products.On("FindByID", ctx, int64(8)).Return(storedProduct(8, "X", decimal.NewFromInt(1)), nil)
		f.ledger.On("CountByProduct", ctx, int64(8)).Return(int64(0), nil)
		f.products.On("Delete", ctx, int64(8)).Return(nil)

		assert.NoError(t, f.service.Delete(ctx, 8))
		f.products.AssertExpectations(t)
	})

	t.Run("blocks deletion with ledger history", func(t *testing.T) {
		f := newProductServiceFixture()
		f.products.On("FindByID", ctx, int64(8)).Return(storedProduct(8, "X", decimal.NewFromInt(1)), nil)
		f.ledger.On("CountByProduct", ctx, int64(8)).Return(int64(12), nil)

		err := f.service.Delete(ctx, 8)

		var domainErr *shared.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "Product.CannotDelete", domainErr.Code)
		f.products.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})
}

func TestProductService_GetAll(t *testing.T) {
	ctx := context.Background()
	f := newProductServiceFixture()

	opts := &shared.QueryOptions{Page: 1, PageSize: 10, Search: "paper"}
	wantFilter := catalog.ProductFilter{CategoryID: 4, Search: "paper"}
	expected := shared.NewPagedResult([]catalog.Product{}, 0, 1, 10)
	f.products.On("FindPaged", ctx, wantFilter, opts).Return(expected, nil)

	result, err := f.service.GetAll(ctx, catalog.ProductFilter{CategoryID: 4}, opts)

	require.NoError(t, err)
	assert.Equal(t, expected, result)
}
