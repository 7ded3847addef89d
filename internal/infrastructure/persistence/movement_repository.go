package persistence

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/stockroom/backend/internal/domain/movement"
	"github.com/stockroom/backend/internal/domain/shared"
)

var movementSortMap = shared.SortMap{
	Columns: map[string]string{
		"movedat":   "movements.moved_at",
		"createdat": "movements.moved_at",
		"type":      "movements.type",
		"quantity":  "movements.quantity",
		"product":   "products.name",
		"sku":       "supplier_products.sku",
		"location":  "locations.name",
	},
	Default: "movements.moved_at",
}

// GormMovementRepository implements the stock ledger contract using GORM
type GormMovementRepository struct {
	db *gorm.DB

	// now is swappable so relative date filters are testable.
	now func() time.Time
}

// NewGormMovementRepository creates a new GormMovementRepository
func NewGormMovementRepository(db *gorm.DB) *GormMovementRepository {
	return &GormMovementRepository{db: db, now: time.Now}
}

// FindByID finds a ledger row by its ID
func (r *GormMovementRepository) FindByID(ctx context.Context, id int64) (*movement.Movement, error) {
	var m movement.Movement
	if err := r.db.WithContext(ctx).
		Preload("Product").
		First(&m, "movements.id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFoundWithID("Movement", id)
		}
		return nil, err
	}
	return &m, nil
}

// FindAll returns the full ledger, newest first
func (r *GormMovementRepository) FindAll(ctx context.Context) ([]movement.Movement, error) {
	var movements []movement.Movement
	if err := r.db.WithContext(ctx).
		Preload("Product").
		Order("moved_at DESC").
		Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// FindPaged returns a filtered, sorted page of ledger rows
func (r *GormMovementRepository) FindPaged(ctx context.Context, filter movement.Filter, opts *shared.QueryOptions) (shared.PagedResult[movement.Movement], error) {
	joins := func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("LEFT JOIN products ON products.id = movements.product_id").
			Joins("LEFT JOIN supplier_products ON supplier_products.id = products.supplier_product_id").
			Joins("LEFT JOIN locations ON locations.id = products.location_id")
	}

	from, to, hasRange := filter.DateRange(r.now())

	return FindPaged[movement.Movement](ctx, r.db, movementSortMap, opts,
		[]string{"Product", "Product.SupplierProduct", "Product.Location"},
		joins,
		WhereIf(filter.Search != "", "(products.name ILIKE ? OR supplier_products.sku ILIKE ?)", "%"+filter.Search+"%", "%"+filter.Search+"%"),
		WhereIf(filter.ProductID != 0, "movements.product_id = ?", filter.ProductID),
		WhereIf(filter.SupplierID != 0, "supplier_products.supplier_id = ?", filter.SupplierID),
		WhereIf(filter.LocationID != 0, "products.location_id = ?", filter.LocationID),
		WhereIf(filter.Type != "", "movements.type = ?", string(filter.Type)),
		WhereIf(hasRange && !from.IsZero(), "movements.moved_at >= ?", from),
		WhereIf(hasRange && !to.IsZero(), "movements.moved_at < ?", to),
	)
}

// FindByProduct returns one product's ledger rows, newest first
func (r *GormMovementRepository) FindByProduct(ctx context.Context, productID int64) ([]movement.Movement, error) {
	var movements []movement.Movement
	if err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		Order("moved_at DESC").
		Find(&movements).Error; err != nil {
		return nil, err
	}
	return movements, nil
}

// Save appends one row to the ledger
func (r *GormMovementRepository) Save(ctx context.Context, m *movement.Movement) error {
	return r.db.WithContext(ctx).Create(m).Error
}

// SaveAll appends rows in batches, used by the movement simulator
func (r *GormMovementRepository) SaveAll(ctx context.Context, movements []movement.Movement) error {
	if len(movements) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).CreateInBatches(&movements, 200).Error
}

// CountByProduct counts ledger rows for one product
func (r *GormMovementRepository) CountByProduct(ctx context.Context, productID int64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&movement.Movement{}).
		Where("product_id = ?", productID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormMovementRepository implements the ledger repository
var _ movement.Repository = (*GormMovementRepository)(nil)
