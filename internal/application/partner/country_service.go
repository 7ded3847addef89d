package partner

import (
	"context"

	"go.uber.org/zap"

	"github.com/stockroom/backend/internal/domain/partner"
)

// CountryProvider fetches the country list from an external source.
type CountryProvider interface {
	FetchAll(ctx context.Context) ([]partner.Country, error)
}

// CountryCache is a read-through cache over the imported country list.
// A nil-safe no-op implementation may be used when caching is disabled.
type CountryCache interface {
	Get(ctx context.Context) ([]partner.Country, bool)
	Set(ctx context.Context, countries []partner.Country)
	Invalidate(ctx context.Context)
}

// CountryService serves the country lookup table and imports it from the
// external provider when the table is empty or a refresh is forced.
type CountryService struct {
	countryRepo partner.CountryRepository
	provider    CountryProvider
	cache       CountryCache
	logger      *zap.Logger
}

// NewCountryService creates a new CountryService
func NewCountryService(countryRepo partner.CountryRepository, provider CountryProvider, cache CountryCache, logger *zap.Logger) *CountryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CountryService{
		countryRepo: countryRepo,
		provider:    provider,
		cache:       cache,
		logger:      logger,
	}
}

// GetAll returns every country, serving from cache when possible and
// importing from the provider on first use.
func (s *CountryService) GetAll(ctx context.Context) ([]partner.Country, error) {
	if s.cache != nil {
		if countries, ok := s.cache.Get(ctx); ok {
			return countries, nil
		}
	}

	count, err := s.countryRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		if _, err := s.Import(ctx); err != nil {
			return nil, err
		}
	}

	countries, err := s.countryRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(ctx, countries)
	}
	return countries, nil
}

// GetByID retrieves one country
func (s *CountryService) GetByID(ctx context.Context, id int64) (*partner.Country, error) {
	return s.countryRepo.FindByID(ctx, id)
}

// Import fetches the country list from the provider and upserts it,
// invalidating the cache. It returns how many rows were imported.
func (s *CountryService) Import(ctx context.Context) (int, error) {
	countries, err := s.provider.FetchAll(ctx)
	if err != nil {
		return 0, err
	}

	if err := s.countryRepo.SaveAll(ctx, countries); err != nil {
		return 0, err
	}
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}

	s.logger.Info("imported country list", zap.Int("countries", len(countries)))
	return len(countries), nil
}
