package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/shared"
)

var supplierProductSortMap = shared.SortMap{
	Columns: map[string]string{
		"name":      "supplier_products.name",
		"price":     "supplier_products.purchase_price",
		"supplier":  "suppliers.trade_name",
		"category":  "product_categories.name",
		"updatedat": "supplier_products.updated_at",
	},
	Default: "supplier_products.name",
}

// GormSupplierProductRepository implements SupplierProductRepository using GORM
type GormSupplierProductRepository struct {
	db *gorm.DB
}

// NewGormSupplierProductRepository creates a new GormSupplierProductRepository
func NewGormSupplierProductRepository(db *gorm.DB) *GormSupplierProductRepository {
	return &GormSupplierProductRepository{db: db}
}

// FindByID finds a supplier offering by its ID
func (r *GormSupplierProductRepository) FindByID(ctx context.Context, id int64) (*catalog.SupplierProduct, error) {
	var sp catalog.SupplierProduct
	if err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("ProductCategory").
		First(&sp, "supplier_products.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFoundWithID("SupplierProduct", id)
		}
		return nil, err
	}
	return &sp, nil
}

// FindAll returns every supplier offering ordered by name
func (r *GormSupplierProductRepository) FindAll(ctx context.Context) ([]catalog.SupplierProduct, error) {
	var offerings []catalog.SupplierProduct
	if err := r.db.WithContext(ctx).
		Preload("Supplier").
		Preload("ProductCategory").
		Order("name ASC").
		Find(&offerings).Error; err != nil {
		return nil, err
	}
	return offerings, nil
}

// FindBySupplier returns all offerings from one supplier
func (r *GormSupplierProductRepository) FindBySupplier(ctx context.Context, supplierID int64) ([]catalog.SupplierProduct, error) {
	var offerings []catalog.SupplierProduct
	if err := r.db.WithContext(ctx).
		Preload("ProductCategory").
		Where("supplier_id = ?", supplierID).
		Order("name ASC").
		Find(&offerings).Error; err != nil {
		return nil, err
	}
	return offerings, nil
}

// FindPaged returns a filtered, sorted page of supplier offerings
func (r *GormSupplierProductRepository) FindPaged(ctx context.Context, filter catalog.SupplierProductFilter, opts *shared.QueryOptions) (shared.PagedResult[catalog.SupplierProduct], error) {
	joins := func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("LEFT JOIN suppliers ON suppliers.id = supplier_products.supplier_id").
			Joins("LEFT JOIN product_categories ON product_categories.id = supplier_products.product_category_id")
	}

	return FindPaged[catalog.SupplierProduct](ctx, r.db, supplierProductSortMap, opts,
		[]string{"Supplier", "ProductCategory"},
		joins,
		WhereIf(filter.Search != "", "(supplier_products.name ILIKE ? OR suppliers.trade_name ILIKE ?)", "%"+filter.Search+"%", "%"+filter.Search+"%"),
		WhereIf(filter.CategoryID != 0, "supplier_products.product_category_id = ?", filter.CategoryID),
		WhereIf(filter.SupplierID != 0, "supplier_products.supplier_id = ?", filter.SupplierID),
	)
}

// ExistsName reports whether the supplier already offers a row with the name
func (r *GormSupplierProductRepository) ExistsName(ctx context.Context, name string, supplierID, excludeID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.SupplierProduct{}).
		Where("name = ? AND supplier_id = ? AND id <> ?", name, supplierID, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsSKU reports whether any other offering carries the SKU
func (r *GormSupplierProductRepository) ExistsSKU(ctx context.Context, sku string, excludeID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.SupplierProduct{}).
		Where("sku = ? AND id <> ?", sku, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsBarcode reports whether any other offering carries the barcode
func (r *GormSupplierProductRepository) ExistsBarcode(ctx context.Context, barcode string, excludeID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.SupplierProduct{}).
		Where("barcode = ? AND id <> ?", barcode, excludeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Save creates a new supplier offering
func (r *GormSupplierProductRepository) Save(ctx context.Context, sp *catalog.SupplierProduct) error {
	return r.db.WithContext(ctx).Create(sp).Error
}

// Update persists changes to an existing supplier offering
func (r *GormSupplierProductRepository) Update(ctx context.Context, sp *catalog.SupplierProduct) error {
	return r.db.WithContext(ctx).Save(sp).Error
}

// Delete removes a supplier offering
func (r *GormSupplierProductRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&catalog.SupplierProduct{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NotFoundWithID("SupplierProduct", id)
	}
	return nil
}

// CountBySupplier counts offerings from one supplier
func (r *GormSupplierProductRepository) CountBySupplier(ctx context.Context, supplierID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.SupplierProduct{}).
		Where("supplier_id = ?", supplierID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormSupplierProductRepository implements SupplierProductRepository
var _ catalog.SupplierProductRepository = (*GormSupplierProductRepository)(nil)
