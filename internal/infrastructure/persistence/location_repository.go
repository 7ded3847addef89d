package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/shared"
)

var locationSortMap = shared.SortMap{
	Columns: map[string]string{
		"name":      "locations.name",
		"capacity":  "locations.capacity",
		"isactive":  "locations.is_active",
		"updatedat": "locations.updated_at",
	},
	Default: "locations.name",
}

// GormLocationRepository implements LocationRepository using GORM
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GormLocationRepository
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// FindByID finds a location by its ID
func (r *GormLocationRepository) FindByID(ctx context.Context, id int64) (*catalog.Location, error) {
	var location catalog.Location
	if err := r.db.WithContext(ctx).First(&location, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFoundWithID("Location", id)
		}
		return nil, err
	}
	return &location, nil
}

// FindByName finds a location by its unique name
func (r *GormLocationRepository) FindByName(ctx context.Context, name string) (*catalog.Location, error) {
	var location catalog.Location
	if err := r.db.WithContext(ctx).First(&location, "name = ?", name).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound("Location")
		}
		return nil, err
	}
	return &location, nil
}

// FindAll returns every location ordered by name
func (r *GormLocationRepository) FindAll(ctx context.Context) ([]catalog.Location, error) {
	var locations []catalog.Location
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&locations).Error; err != nil {
		return nil, err
	}
	return locations, nil
}

// FindPaged returns a filtered, sorted page of locations
func (r *GormLocationRepository) FindPaged(ctx context.Context, search string, activeOnly bool, opts *shared.QueryOptions) (shared.PagedResult[catalog.Location], error) {
	return FindPaged[catalog.Location](ctx, r.db, locationSortMap, opts, nil,
		WhereIf(search != "", "(locations.name ILIKE ? OR locations.description ILIKE ?)", "%"+search+"%", "%"+search+"%"),
		WhereIf(activeOnly, "locations.is_active = ?", true),
	)
}

// Save creates a new location
func (r *GormLocationRepository) Save(ctx context.Context, location *catalog.Location) error {
	return r.db.WithContext(ctx).Create(location).Error
}

// Update persists changes to an existing location
func (r *GormLocationRepository) Update(ctx context.Context, location *catalog.Location) error {
	return r.db.WithContext(ctx).Save(location).Error
}

// Delete removes a location
func (r *GormLocationRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&catalog.Location{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NotFoundWithID("Location", id)
	}
	return nil
}

// Ensure GormLocationRepository implements LocationRepository
var _ catalog.LocationRepository = (*GormLocationRepository)(nil)
