package persistence

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/stockroom/backend/internal/domain/partner"
	"github.com/stockroom/backend/internal/domain/shared"
)

// GormCountryRepository implements CountryRepository using GORM
type GormCountryRepository struct {
	db *gorm.DB
}

// NewGormCountryRepository creates a new GormCountryRepository
func NewGormCountryRepository(db *gorm.DB) *GormCountryRepository {
	return &GormCountryRepository{db: db}
}

// FindByID finds a country by its ID
func (r *GormCountryRepository) FindByID(ctx context.Context, id int64) (*partner.Country, error) {
	var country partner.Country
	if err := r.db.WithContext(ctx).First(&country, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFoundWithID("Country", id)
		}
		return nil, err
	}
	return &country, nil
}

// FindByCode finds a country by its two-letter code
func (r *GormCountryRepository) FindByCode(ctx context.Context, code string) (*partner.Country, error) {
	var country partner.Country
	if err := r.db.WithContext(ctx).First(&country, "code = ?", strings.ToUpper(code)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NotFound("Country")
		}
		return nil, err
	}
	return &country, nil
}

// FindAll returns every country ordered by name
func (r *GormCountryRepository) FindAll(ctx context.Context) ([]partner.Country, error) {
	var countries []partner.Country
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&countries).Error; err != nil {
		return nil, err
	}
	return countries, nil
}

// SaveAll upserts the imported country list keyed on the country code
func (r *GormCountryRepository) SaveAll(ctx context.Context, countries []partner.Country) error {
	if len(countries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "code"}},
			DoUpdates: clause.AssignmentColumns([]string{"name"}),
		}).
		Create(&countries).Error
}

// Count returns how many countries have been imported
func (r *GormCountryRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&partner.Country{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Ensure GormCountryRepository implements CountryRepository
var _ partner.CountryRepository = (*GormCountryRepository)(nil)
