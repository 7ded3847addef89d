package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/movement"
	"github.com/stockroom/backend/internal/domain/shared"
)

// MockProductCategoryRepository implements catalog.ProductCategoryRepository for testing
type MockProductCategoryRepository struct {
	mock.Mock
}

func (m *MockProductCategoryRepository) FindByID(ctx context.Context, id int64) (*catalog.ProductCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductCategory), args.Error(1)
}

func (m *MockProductCategoryRepository) FindByName(ctx context.Context, name string) (*catalog.ProductCategory, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductCategory), args.Error(1)
}

func (m *MockProductCategoryRepository) FindAll(ctx context.Context) ([]catalog.ProductCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.ProductCategory), args.Error(1)
}

func (m *MockProductCategoryRepository) FindPaged(ctx context.Context, search string, opts *shared.QueryOptions) (shared.PagedResult[catalog.ProductCategory], error) {
	args := m.Called(ctx, search, opts)
	return args.Get(0).(shared.PagedResult[catalog.ProductCategory]), args.Error(1)
}

func (m *MockProductCategoryRepository) Save(ctx context.Context, category *catalog.ProductCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockProductCategoryRepository) Update(ctx context.Context, category *catalog.ProductCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockProductCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockProductRepository implements catalog.ProductRepository for testing
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByName(ctx context.Context, name string) (*catalog.Product, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindPaged(ctx context.Context, filter catalog.ProductFilter, opts *shared.QueryOptions) (shared.PagedResult[catalog.Product], error) {
	args := m.Called(ctx, filter, opts)
	return args.Get(0).(shared.PagedResult[catalog.Product]), args.Error(1)
}

func (m *MockProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) UpdateAmountConditional(ctx context.Context, id int64, expected, next int) (bool, error) {
	args := m.Called(ctx, id, expected, next)
	return args.Bool(0), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountByLocation(ctx context.Context, locationID int64) (int64, error) {
	args := m.Called(ctx, locationID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductRepository) CountBySupplierProduct(ctx context.Context, supplierProductID int64) (int64, error) {
	args := m.Called(ctx, supplierProductID)
	return args.Get(0).(int64), args.Error(1)
}

// MockMovementRepository implements movement.Repository for testing
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) FindByID(ctx context.Context, id int64) (*movement.Movement, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*movement.Movement), args.Error(1)
}

func (m *MockMovementRepository) FindAll(ctx context.Context) ([]movement.Movement, error) {
	args := m.Called(ctx)
	return args.Get(0).([]movement.Movement), args.Error(1)
}

func (m *MockMovementRepository) FindPaged(ctx context.Context, filter movement.Filter, opts *shared.QueryOptions) (shared.PagedResult[movement.Movement], error) {
	args := m.Called(ctx, filter, opts)
	return args.Get(0).(shared.PagedResult[movement.Movement]), args.Error(1)
}

func (m *MockMovementRepository) FindByProduct(ctx context.Context, productID int64) ([]movement.Movement, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]movement.Movement), args.Error(1)
}

func (m *MockMovementRepository) Save(ctx context.Context, mv *movement.Movement) error {
	args := m.Called(ctx, mv)
	return args.Error(0)
}

func (m *MockMovementRepository) SaveAll(ctx context.Context, mvs []movement.Movement) error {
	args := m.Called(ctx, mvs)
	return args.Error(0)
}

func (m *MockMovementRepository) CountByProduct(ctx context.Context, productID int64) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

// MockPriceHistoryRepository implements catalog.ProductPriceHistoryRepository for testing
type MockPriceHistoryRepository struct {
	mock.Mock
}

func (m *MockPriceHistoryRepository) FindByProduct(ctx context.Context, productID int64) ([]catalog.ProductPriceHistory, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).([]catalog.ProductPriceHistory), args.Error(1)
}

func (m *MockPriceHistoryRepository) FindPaged(ctx context.Context, productID int64, opts *shared.QueryOptions) (shared.PagedResult[catalog.ProductPriceHistory], error) {
	args := m.Called(ctx, productID, opts)
	return args.Get(0).(shared.PagedResult[catalog.ProductPriceHistory]), args.Error(1)
}

func (m *MockPriceHistoryRepository) Save(ctx context.Context, history *catalog.ProductPriceHistory) error {
	args := m.Called(ctx, history)
	return args.Error(0)
}
