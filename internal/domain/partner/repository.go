package partner

import (
	"context"

	"github.com/stockroom/backend/internal/domain/shared"
)

// SupplierFilter narrows supplier queries. Zero values mean "no filter".
type SupplierFilter struct {
	Search     string
	CategoryID int64
	ActiveOnly bool
	CountryID  int64
}

// SupplierRepository defines the persistence contract for suppliers.
type SupplierRepository interface {
	FindByID(ctx context.Context, id int64) (*Supplier, error)
	FindByCnpj(ctx context.Context, cnpj string) (*Supplier, error)
	FindAll(ctx context.Context) ([]Supplier, error)
	FindPaged(ctx context.Context, filter SupplierFilter, opts *shared.QueryOptions) (shared.PagedResult[Supplier], error)
	Save(ctx context.Context, supplier *Supplier) error
	Update(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id int64) error
	CountByCategory(ctx context.Context, categoryID int64) (int64, error)
}

// SupplierCategoryRepository defines the persistence contract for supplier categories.
type SupplierCategoryRepository interface {
	FindByID(ctx context.Context, id int64) (*SupplierCategory, error)
	FindByName(ctx context.Context, name string) (*SupplierCategory, error)
	FindAll(ctx context.Context) ([]SupplierCategory, error)
	FindPaged(ctx context.Context, search string, opts *shared.QueryOptions) (shared.PagedResult[SupplierCategory], error)
	Save(ctx context.Context, category *SupplierCategory) error
	Update(ctx context.Context, category *SupplierCategory) error
	Delete(ctx context.Context, id int64) error
}

// CountryRepository defines the persistence contract for the country lookup table.
type CountryRepository interface {
	FindByID(ctx context.Context, id int64) (*Country, error)
	FindByCode(ctx context.Context, code string) (*Country, error)
	FindAll(ctx context.Context) ([]Country, error)
	SaveAll(ctx context.Context, countries []Country) error
	Count(ctx context.Context) (int64, error)
}
