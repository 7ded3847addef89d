package catalog

import (
	"context"

	"github.com/stretchr/testify/mock"

	appmovement "github.com/stockroom/backend/internal/application/movement"
	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/movement"
	"github.com/stockroom/backend/internal/domain/partner"
	"github.com/stockroom/backend/internal/domain/shared"
)

// MockProductRepository is a mock implementation of ProductRepository
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

// MockSupplierProductRepository is a mock implementation of SupplierProductRepository
type MockSupplierProductRepository struct {
	mock.Mock
}

func (m *MockSupplierProductRepository) FindByID(ctx context.Context, id int64) (*catalog.SupplierProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.SupplierProduct), args.Error(1)
}

func (m *MockSupplierProductRepository) FindAll(ctx context.Context) ([]catalog.SupplierProduct, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.SupplierProduct), args.Error(1)
}

func (m *MockSupplierProductRepository) FindBySupplier(ctx context.Context, supplierID int64) ([]catalog.SupplierProduct, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).([]catalog.SupplierProduct), args.Error(1)
}

func (m *MockSupplierProductRepository) FindPaged(ctx context.Context, filter catalog.SupplierProductFilter, opts *shared.QueryOptions) (shared.PagedResult[catalog.SupplierProduct], error) {
	args := m.Called(ctx, filter, opts)
	return args.Get(0).(shared.PagedResult[catalog.SupplierProduct]), args.Error(1)
}

func (m *MockSupplierProductRepository) ExistsName(ctx context.Context, name string, supplierID, excludeID int64) (bool, error) {
	args := m.Called(ctx, name, supplierID, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSupplierProductRepository) ExistsSKU(ctx context.Context, sku string, excludeID int64) (bool, error) {
	args := m.Called(ctx, sku, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSupplierProductRepository) ExistsBarcode(ctx context.Context, barcode string, excludeID int64) (bool, error) {
	args := m.Called(ctx, barcode, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *MockSupplierProductRepository) Save(ctx context.Context, sp *catalog.SupplierProduct) error {
	args := m.Called(ctx, sp)
	return args.Error(0)
}

func (m *MockSupplierProductRepository) Update(ctx context.Context, sp *catalog.SupplierProduct) error {
	args := m.Called(ctx, sp)
	return args.Error(0)
}

func (m *MockSupplierProductRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplierProductRepository) CountBySupplier(ctx context.Context, supplierID int64) (int64, error) {
	args := m.Called(ctx, supplierID)
	return args.Get(0).(int64), args.Error(1)
}

// MockLocationRepository is a mock implementation of LocationRepository
type MockLocationRepository struct {
	mock.Mock
}

func (m *MockLocationRepository) FindByID(ctx context.Context, id int64) (*catalog.Location, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Location), args.Error(1)
}

func (m *MockLocationRepository) FindByName(ctx context.Context, name string) (*catalog.Location, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Location), args.Error(1)
}

func (m *MockLocationRepository) FindAll(ctx context.Context) ([]catalog.Location, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.Location), args.Error(1)
}

func (m *MockLocationRepository) FindPaged(ctx context.Context, search string, activeOnly bool, opts *shared.QueryOptions) (shared.PagedResult[catalog.Location], error) {
	args := m.Called(ctx, search, activeOnly, opts)
	return args.Get(0).(shared.PagedResult[catalog.Location]), args.Error(1)
}

func (m *MockLocationRepository) Save(ctx context.Context, location *catalog.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockLocationRepository) Update(ctx context.Context, location *catalog.Location) error {
	args := m.Called(ctx, location)
	return args.Error(0)
}

func (m *MockLocationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of ProductCategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, id int64) (*catalog.ProductCategory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductCategory), args.Error(1)
}

func (m *MockCategoryRepository) FindByName(ctx context.Context, name string) (*catalog.ProductCategory, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.ProductCategory), args.Error(1)
}

func (m *MockCategoryRepository) FindAll(ctx context.Context) ([]catalog.ProductCategory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]catalog.ProductCategory), args.Error(1)
}

func (m *MockCategoryRepository) FindPaged(ctx context.Context, search string, opts *shared.QueryOptions) (shared.PagedResult[catalog.ProductCategory], error) {
	args := m.Called(ctx, search, opts)
	return args.Get(0).(shared.PagedResult[catalog.ProductCategory]), args.Error(1)
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *catalog.ProductCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *catalog.ProductCategory) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPriceHistoryRepository is a mock implementation of ProductPriceHistoryRepository
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

// MockMovementRepository is a mock implementation of the ledger repository
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

func (m *MockMovementRepository) SaveAll(ctx context.Context, movements []movement.Movement) error {
	args := m.Called(ctx, movements)
	return args.Error(0)
}

func (m *MockMovementRepository) CountByProduct(ctx context.Context, productID int64) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

// fakeScope runs the transactional function directly against the mocks.
type fakeScope struct {
	products *MockProductRepository
	ledger   *MockMovementRepository
	prices   *MockPriceHistoryRepository
}

func (s *fakeScope) Execute(ctx context.Context, fn func(repos appmovement.TransactionalRepositories) error) error {
	return fn(s)
}

func (s *fakeScope) ProductRepo() catalog.ProductRepository { return s.products }

func (s *fakeScope) MovementRepo() movement.Repository { return s.ledger }

func (s *fakeScope) PriceHistoryRepo() catalog.ProductPriceHistoryRepository { return s.prices }

// MockSupplierRepository is a mock implementation of partner.SupplierRepository
type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) FindByID(ctx context.Context, id int64) (*partner.Supplier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindByCnpj(ctx context.Context, cnpj string) (*partner.Supplier, error) {
	args := m.Called(ctx, cnpj)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindAll(ctx context.Context) ([]partner.Supplier, error) {
	args := m.Called(ctx)
	return args.Get(0).([]partner.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) FindPaged(ctx context.Context, filter partner.SupplierFilter, opts *shared.QueryOptions) (shared.PagedResult[partner.Supplier], error) {
	args := m.Called(ctx, filter, opts)
	return args.Get(0).(shared.PagedResult[partner.Supplier]), args.Error(1)
}

func (m *MockSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Update(ctx context.Context, supplier *partner.Supplier) error {
	args := m.Called(ctx, supplier)
	return args.Error(0)
}

func (m *MockSupplierRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSupplierRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	args := m.Called(ctx, categoryID)
	return args.Get(0).(int64), args.Error(1)
}
