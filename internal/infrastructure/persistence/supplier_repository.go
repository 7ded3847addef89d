package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/stockroom/backend/internal/domain/partner"
	"github.com/stockroom/backend/internal/domain/shared"
)

var supplierSortMap = shared.SortMap{
	Columns: map[string]string{
		"tradename":     "suppliers.trade_name",
		"corporatename": "suppliers.corporate_name",
		"cnpj":          "suppliers.cnpj",
		"category":      "supplier_categories.name",
		"isactive":      "suppliers.is_active",
		"updatedat":     "suppliers.updated_at",
	},
	Default: "suppliers.trade_name",
}

// GormSupplierRepository implements SupplierRepository using GORM
type GormSupplierRepository struct {
	db *gorm.DB
}

// NewGormSupplierRepository creates a new GormSupplierRepository
func NewGormSupplierRepository(db *gorm.DB) *GormSupplierRepository {
	return &GormSupplierRepository{db: db}
}

// FindByID finds a supplier by its ID
func (r *GormSupplierRepository) FindByID(ctx context.Context, id int64) (*partner.Supplier, error) {
	var supplier partner.Supplier
	if err := r.db.WithContext(ctx).
		Preload("SupplierCategory").
		Preload("Address.Country").
		First(&supplier, "suppliers.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFoundWithID("Supplier", id)
		}
		return nil, err
	}
	return &supplier, nil
}

// FindByCnpj finds a supplier by its unique registration number
func (r *GormSupplierRepository) FindByCnpj(ctx context.Context, cnpj string) (*partner.Supplier, error) {
	var supplier partner.Supplier
	if err := r.db.WithContext(ctx).First(&supplier, "cnpj = ?", cnpj).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound("Supplier")
		}
		return nil, err
	}
	return &supplier, nil
}

// FindAll returns every supplier ordered by trade name
func (r *GormSupplierRepository) FindAll(ctx context.Context) ([]partner.Supplier, error) {
	var suppliers []partner.Supplier
	if err := r.db.WithContext(ctx).
		Preload("SupplierCategory").
		Order("trade_name ASC").
		Find(&suppliers).Error; err != nil {
		return nil, err
	}
	return suppliers, nil
}

// FindPaged returns a filtered, sorted page of suppliers
func (r *GormSupplierRepository) FindPaged(ctx context.Context, filter partner.SupplierFilter, opts *shared.QueryOptions) (shared.PagedResult[partner.Supplier], error) {
	joins := func(db *gorm.DB) *gorm.DB {
		return db.Joins("LEFT JOIN supplier_categories ON supplier_categories.id = suppliers.supplier_category_id")
	}

	return FindPaged[partner.Supplier](ctx, r.db, supplierSortMap, opts,
		[]string{"SupplierCategory", "Address.Country"},
		joins,
		WhereIf(filter.Search != "", "(suppliers.trade_name ILIKE ? OR suppliers.corporate_name ILIKE ? OR suppliers.cnpj ILIKE ?)",
			"%"+filter.Search+"%", "%"+filter.Search+"%", "%"+filter.Search+"%"),
		WhereIf(filter.CategoryID != 0, "suppliers.supplier_category_id = ?", filter.CategoryID),
		WhereIf(filter.ActiveOnly, "suppliers.is_active = ?", true),
		WhereIf(filter.CountryID != 0, "suppliers.address_country_id = ?", filter.CountryID),
	)
}

// Save creates a new supplier
func (r *GormSupplierRepository) Save(ctx context.Context, supplier *partner.Supplier) error {
	return r.db.WithContext(ctx).Create(supplier).Error
}

// Update persists changes to an existing supplier
func (r *GormSupplierRepository) Update(ctx context.Context, supplier *partner.Supplier) error {
	return r.db.WithContext(ctx).Save(supplier).Error
}

// Delete removes a supplier
func (r *GormSupplierRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&partner.Supplier{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NotFoundWithID("Supplier", id)
	}
	return nil
}

// CountByCategory counts suppliers in one category
func (r *GormSupplierRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&partner.Supplier{}).
		Where("supplier_category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormSupplierRepository implements SupplierRepository
var _ partner.SupplierRepository = (*GormSupplierRepository)(nil)
