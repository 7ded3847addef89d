package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/shared"
)

// productSortMap maps client sort keys to SQL expressions. Keys are matched
// case-insensitively; unknown keys fall back to the product name.
var productSortMap = shared.SortMap{
	Columns: map[string]string{
		"name":      "products.name",
		"amount":    "products.amount",
		"category":  "product_categories.name",
		"location":  "locations.name",
		"price":     "products.selling_price",
		"updatedat": "products.updated_at",
	},
	Default: "products.name",
}

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GormProductRepository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// FindByID finds a product by its ID
func (r *GormProductRepository) FindByID(ctx context.Context, id int64) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).
		Preload("SupplierProduct").
		Preload("SupplierProduct.Supplier").
		Preload("SupplierProduct.ProductCategory").
		Preload("Location").
		First(&product, "products.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFoundWithID("Product", id)
		}
		return nil, err
	}
	return &product, nil
}

// FindByName finds a product by its unique name
func (r *GormProductRepository) FindByName(ctx context.Context, name string) (*catalog.Product, error) {
	var product catalog.Product
	if err := r.db.WithContext(ctx).First(&product, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound("Product")
		}
		return nil, err
	}
	return &product, nil
}

// FindAll returns every product ordered by name
func (r *GormProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	var products []catalog.Product
	if err := r.db.WithContext(ctx).
		Preload("SupplierProduct").
		Preload("Location").
		Order("name ASC").
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// FindPaged returns a filtered, sorted page of products
func (r *GormProductRepository) FindPaged(ctx context.Context, filter catalog.ProductFilter, opts *shared.QueryOptions) (shared.PagedResult[catalog.Product], error) {
	joins := func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("LEFT JOIN supplier_products ON supplier_products.id = products.supplier_product_id").
			Joins("LEFT JOIN locations ON locations.id = products.location_id").
			Joins("LEFT JOIN product_categories ON product_categories.id = supplier_products.product_category_id")
	}

	return FindPaged[catalog.Product](ctx, r.db, productSortMap, opts,
		[]string{"SupplierProduct", "SupplierProduct.Supplier", "SupplierProduct.ProductCategory", "Location"},
		joins,
		WhereIf(filter.Search != "", "(products.name ILIKE ? OR products.description ILIKE ?)", "%"+filter.Search+"%", "%"+filter.Search+"%"),
		WhereIf(filter.CategoryID != 0, "supplier_products.product_category_id = ?", filter.CategoryID),
		WhereIf(filter.SupplierID != 0, "supplier_products.supplier_id = ?", filter.SupplierID),
		WhereIf(filter.LocationID != 0, "products.location_id = ?", filter.LocationID),
		WhereIf(filter.BelowMin, "products.amount < products.minimal_quantity"),
	)
}

// Save creates a new product
func (r *GormProductRepository) Save(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

// Update persists changes to an existing product
func (r *GormProductRepository) Update(ctx context.Context, product *catalog.Product) error {
	return r.db.WithContext(ctx).Save(product).Error
}

// UpdateAmountConditional sets the on-hand amount only when the stored value
// still equals expected. It reports whether the row was claimed, letting the
// caller detect concurrent movements and retry with fresh state.
func (r *GormProductRepository) UpdateAmountConditional(ctx context.Context, id int64, expected, next int) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("id = ? AND amount = ?", id, expected).
		Update("amount", next)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// Delete removes a product
func (r *GormProductRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NotFoundWithID("Product", id)
	}
	return nil
}

// CountByCategory counts products whose supplier offering belongs to a category
func (r *GormProductRepository) CountByCategory(ctx context.Context, categoryID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Joins("JOIN supplier_products ON supplier_products.id = products.supplier_product_id").
		Where("supplier_products.product_category_id = ?", categoryID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountByLocation counts products stored at a location
func (r *GormProductRepository) CountByLocation(ctx context.Context, locationID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("location_id = ?", locationID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// CountBySupplierProduct counts products backed by a supplier offering
func (r *GormProductRepository) CountBySupplierProduct(ctx context.Context, supplierProductID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&catalog.Product{}).
		Where("supplier_product_id = ?", supplierProductID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormProductRepository implements ProductRepository
var _ catalog.ProductRepository = (*GormProductRepository)(nil)
