package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/shared"
)

var productCategorySortMap = shared.SortMap{
	Columns: map[string]string{
		"name":        "product_categories.name",
		"description": "product_categories.description",
		"updatedat":   "product_categories.updated_at",
	},
	Default: "product_categories.name",
}

// GormProductCategoryRepository implements ProductCategoryRepository using GORM
type GormProductCategoryRepository struct {
	db *gorm.DB
}

// NewGormProductCategoryRepository creates a new GormProductCategoryRepository
func NewGormProductCategoryRepository(db *gorm.DB) *GormProductCategoryRepository {
	return &GormProductCategoryRepository{db: db}
}

// FindByID finds a product category by its ID
func (r *GormProductCategoryRepository) FindByID(ctx context.Context, id int64) (*catalog.ProductCategory, error) {
	var category catalog.ProductCategory
	if err := r.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFoundWithID("ProductCategory", id)
		}
		return nil, err
	}
	return &category, nil
}

// FindByName finds a product category by its unique name
func (r *GormProductCategoryRepository) FindByName(ctx context.Context, name string) (*catalog.ProductCategory, error) {
	var category catalog.ProductCategory
	if err := r.db.WithContext(ctx).First(&category, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound("ProductCategory")
		}
		return nil, err
	}
	return &category, nil
}

// FindAll returns every product category ordered by name
func (r *GormProductCategoryRepository) FindAll(ctx context.Context) ([]catalog.ProductCategory, error) {
	var categories []catalog.ProductCategory
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

// FindPaged returns a filtered, sorted page of product categories
func (r *GormProductCategoryRepository) FindPaged(ctx context.Context, search string, opts *shared.QueryOptions) (shared.PagedResult[catalog.ProductCategory], error) {
	return FindPaged[catalog.ProductCategory](ctx, r.db, productCategorySortMap, opts, nil,
		WhereIf(search != "", "(product_categories.name ILIKE ? OR product_categories.description ILIKE ?)", "%"+search+"%", "%"+search+"%"),
	)
}

// Save creates a new product category
func (r *GormProductCategoryRepository) Save(ctx context.Context, category *catalog.ProductCategory) error {
	return r.db.WithContext(ctx).Create(category).Error
}

// Update persists changes to an existing product category
func (r *GormProductCategoryRepository) Update(ctx context.Context, category *catalog.ProductCategory) error {
	return r.db.WithContext(ctx).Save(category).Error
}

// Delete removes a product category
func (r *GormProductCategoryRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&catalog.ProductCategory{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NotFoundWithID("ProductCategory", id)
	}
	return nil
}

// Ensure GormProductCategoryRepository implements ProductCategoryRepository
var _ catalog.ProductCategoryRepository = (*GormProductCategoryRepository)(nil)
