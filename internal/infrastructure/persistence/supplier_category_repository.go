package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/stockroom/backend/internal/domain/partner"
	"github.com/stockroom/backend/internal/domain/shared"
)

var supplierCategorySortMap = shared.SortMap{
	Columns: map[string]string{
		"name":        "supplier_categories.name",
		"description": "supplier_categories.description",
		"updatedat":   "supplier_categories.updated_at",
	},
	Default: "supplier_categories.name",
}

// GormSupplierCategoryRepository implements SupplierCategoryRepository using GORM
type GormSupplierCategoryRepository struct {
	db *gorm.DB
}

// NewGormSupplierCategoryRepository creates a new GormSupplierCategoryRepository
func NewGormSupplierCategoryRepository(db *gorm.DB) *GormSupplierCategoryRepository {
	return &GormSupplierCategoryRepository{db: db}
}

// FindByID finds a supplier category by its ID
func (r *GormSupplierCategoryRepository) FindByID(ctx context.Context, id int64) (*partner.SupplierCategory, error) {
	var category partner.SupplierCategory
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFoundWithID("SupplierCategory", id)
		}
		return nil, err
	}
	return &category, nil
}

// FindByName finds a supplier category by its unique name
func (r *GormSupplierCategoryRepository) FindByName(ctx context.Context, name string) (*partner.SupplierCategory, error) {
	var category partner.SupplierCategory
	if err := r.db.WithContext(ctx).First(&category, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound("SupplierCategory")
		}
		return nil, err
	}
	return &category, nil
}

// FindAll returns every supplier category ordered by name
func (r *GormSupplierCategoryRepository) FindAll(ctx context.Context) ([]partner.SupplierCategory, error) {
	var categories []partner.SupplierCategory
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindPaged returns a filtered, sorted page of supplier categories
func (r *GormSupplierCategoryRepository) FindPaged(ctx context.Context, search string, opts *shared.QueryOptions) (shared.PagedResult[partner.SupplierCategory], error) {
	return FindPaged[partner.SupplierCategory](ctx, r.db, supplierCategorySortMap, opts, nil,
		WhereIf(search != "", "(supplier_categories.name ILIKE ? OR supplier_categories.description ILIKE ?)", "%"+search+"%", "%"+search+"%"),
	)
}

// Save creates a new supplier category
func (r *GormSupplierCategoryRepository) Save(ctx context.Context, category *partner.SupplierCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// Update persists changes to an existing supplier category
func (r *GormSupplierCategoryRepository) Update(ctx context.Context, category *partner.SupplierCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete removes a supplier category
func (r *GormSupplierCategoryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&partner.SupplierCategory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NotFoundWithID("SupplierCategory", id)
	}
	return nil
}

// Ensure GormSupplierCategoryRepository implements SupplierCategoryRepository
var _ partner.SupplierCategoryRepository = (*GormSupplierCategoryRepository)(nil)
