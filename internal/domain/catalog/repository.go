package catalog

import (
	"context"

	"github.com/stockroom/backend/internal/domain/shared"
)

// ProductFilter narrows product queries. Zero-valued IDs mean "no filter".
type ProductFilter struct {
	Search     string
	CategoryID int64
	SupplierID int64
	LocationID int64
	BelowMin   bool
}

// ProductRepository defines the persistence contract for products.
type ProductRepository interface {
	FindByID(ctx context.Context, id int64) (*Product, error)
	FindByName(ctx context.Context, name string) (*Product, error)
	FindAll(ctx context.Context) ([]Product, error)
	FindPaged(ctx context.Context, filter ProductFilter, opts *shared.QueryOptions) (shared.PagedResult[Product], error)
	Save(ctx context.Context, product *Product) error
	Update(ctx context.Context, product *Product) error
	// UpdateAmountConditional sets the amount only when the stored value
	// still equals expected; it reports whether the row was claimed.
	UpdateAmountConditional(ctx context.Context, id int64, expected, next int) (bool, error)
	Delete(ctx context.Context, id int64) error
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
	CountByLocation(ctx context.Context, locationID int64) (int64, error)
	CountBySupplierProduct(ctx context.Context, supplierProductID int64) (int64, error)
}

// ProductCategoryRepository defines the persistence contract for product categories.
type ProductCategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*ProductCategory, error)
	FindByName(ctx context.Context, name string) (*ProductCategory, error)
	FindAll(ctx context.Context) ([]ProductCategory, error)
	FindPaged(ctx context.Context, search string, opts *shared.QueryOptions) (shared.PagedResult[ProductCategory], error)
	Save(ctx context.Context, category *ProductCategory) error
	Update(ctx context.Context, category *ProductCategory) error
	Delete(ctx context.Context, id int64) error
}

// LocationRepository defines the persistence contract for storage locations.
type LocationRepository interface {
	FindByID(ctx context.Context, id int64) (*Location, error)
	FindByName(ctx context.Context, name string) (*Location, error)
	FindAll(ctx context.Context) ([]Location, error)
	FindPaged(ctx context.Context, search string, activeOnly bool, opts *shared.QueryOptions) (shared.PagedResult[Location], error)
	Save(ctx context.Context, location *Location) error
	Update(ctx context.Context, location *Location) error
	Delete(ctx context.Context, id int64) error
}

// SupplierProductFilter narrows supplier offering queries. Zero-valued
// IDs mean "no filter".
type SupplierProductFilter struct {
	Search     string
	CategoryID int64
	SupplierID int64
}

// SupplierProductRepository defines the persistence contract for supplier offerings.
type SupplierProductRepository interface {
	FindByID(ctx context.Context, id int64) (*SupplierProduct, error)
	FindAll(ctx context.Context) ([]SupplierProduct, error)
	FindBySupplier(ctx context.Context, supplierID int64) ([]SupplierProduct, error)
	FindPaged(ctx context.Context, filter SupplierProductFilter, opts *shared.QueryOptions) (shared.PagedResult[SupplierProduct], error)
	// ExistsName reports whether another offering of the same supplier
	// already carries the name; excludeID skips the row being updated.
	ExistsName(ctx context.Context, name string, supplierID, excludeID int64) (bool, error)
	// ExistsSKU and ExistsBarcode report global uniqueness conflicts for
	// the optional identifiers; blank values never conflict.
	ExistsSKU(ctx context.Context, sku string, excludeID int64) (bool, error)
	ExistsBarcode(ctx context.Context, barcode string, excludeID int64) (bool, error)
	Save(ctx context.Context, sp *SupplierProduct) error
	Update(ctx context.Context, sp *SupplierProduct) error
	Delete(ctx context.Context, id int64) error
	CountBySupplier(ctx context.Context, supplierID int64) (int64, error)
}

// ProductPriceHistoryRepository defines the append-only price history contract.
type ProductPriceHistoryRepository interface {
	FindByProduct(ctx context.Context, productID int64) ([]ProductPriceHistory, error)
	FindPaged(ctx context.Context, productID int64, opts *shared.QueryOptions) (shared.PagedResult[ProductPriceHistory], error)
	Save(ctx context.Context, history *ProductPriceHistory) error
}
