package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/shared"
)

var priceHistorySortMap = shared.SortMap{
	Columns: map[string]string{
		"updatedpriceat": "product_price_histories.updated_price_at",
		"oldprice":       "product_price_histories.old_price",
		"newprice":       "product_price_histories.new_price",
	},
	Default: "product_price_histories.updated_price_at",
}

// GormProductPriceHistoryRepository implements ProductPriceHistoryRepository using GORM
type GormProductPriceHistoryRepository struct {
	db *gorm.DB
}

// NewGormProductPriceHistoryRepository creates a new GormProductPriceHistoryRepository
func NewGormProductPriceHistoryRepository(db *gorm.DB) *GormProductPriceHistoryRepository {
	return &GormProductPriceHistoryRepository{db: db}
}

// FindByProduct returns a product's full price history, newest first
func (r *GormProductPriceHistoryRepository) FindByProduct(ctx context.Context, productID int64) ([]catalog.ProductPriceHistory, error) {
	var histories []catalog.ProductPriceHistory
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("updated_price_at DESC").
		Find(&histories).Error; err != nil {
		return nil, err
	}
	return histories, nil
}

// FindPaged returns a sorted page of one product's price history
func (r *GormProductPriceHistoryRepository) FindPaged(ctx context.Context, productID int64, opts *shared.QueryOptions) (shared.PagedResult[catalog.ProductPriceHistory], error) {
	return FindPaged[catalog.ProductPriceHistory](ctx, r.db, priceHistorySortMap, opts, nil,
		WhereIf(productID != 0, "product_price_histories.product_id = ?", productID),
	)
}

// Save appends a price history row. Rows are never updated or deleted.
func (r *GormProductPriceHistoryRepository) Save(ctx context.Context, history *catalog.ProductPriceHistory) error {
	return r.db.WithContext(ctx).Create(history).Error
}

// Ensure GormProductPriceHistoryRepository implements ProductPriceHistoryRepository
var _ catalog.ProductPriceHistoryRepository = (*GormProductPriceHistoryRepository)(nil)
