package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/shared"
)

// LocationRequest carries the fields for a storage location write.
type LocationRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
	Capacity    int    `json:"capacity" binding:"gte=0"`
	IsActive    bool   `json:"isActive"`
}

// LocationService handles storage location operations.
type LocationService struct {
	locationRepo catalog.LocationRepository
	productRepo  catalog.ProductRepository
	logger       *zap.Logger
}

// NewLocationService creates a new LocationService
func NewLocationService(locationRepo catalog.LocationRepository, productRepo catalog.ProductRepository, logger *zap.Logger) *LocationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocationService{locationRepo: locationRepo, productRepo: productRepo, logger: logger}
}

// GetByID retrieves a storage location
func (s *LocationService) GetByID(ctx context.Context, id int64) (*catalog.Location, error) {
	return s.locationRepo.FindByID(ctx, id)
}

// GetAll returns a filtered, sorted page of locations
func (s *LocationService) GetAll(ctx context.Context, activeOnly bool, opts *shared.QueryOptions) (shared.PagedResult[catalog.Location], error) {
	search := ""
	if opts.HasSearch() {
		search = opts.Search
	}
	return s.locationRepo.FindPaged(ctx, search, activeOnly, opts)
}

// Create persists a new location after a uniqueness check on the name
func (s *LocationService) Create(ctx context.Context, req LocationRequest) (*catalog.Location, error) {
	if existing, err := s.locationRepo.FindByName(ctx, req.Name); err == nil && existing != nil {
		return nil, shared.AlreadyExists("Location", req.Name)
	} else if err != nil && !shared.IsNotFound(err) {
		return nil, err
	}

	location := &catalog.Location{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        req.Name,
		Description: req.Description,
		Capacity:    req.Capacity,
		IsActive:    req.IsActive,
	}
	if err := s.locationRepo.Save(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

// Update edits an existing location
func (s *LocationService) Update(ctx context.Context, id int64, req LocationRequest) (*catalog.Location, error) {
	location, err := s.locationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing, err := s.locationRepo.FindByName(ctx, req.Name); err == nil && existing != nil && existing.ID != id {
		return nil, shared.AlreadyExists("Location", req.Name)
	} else if err != nil && !shared.IsNotFound(err) {
		return nil, err
	}

	location.Name = req.Name
	location.Description = req.Description
	location.Capacity = req.Capacity
	location.IsActive = req.IsActive
	location.Touch()

	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, err
	}
	return location, nil
}

// Delete removes a location unless products are stored there
func (s *LocationService) Delete(ctx context.Context, id int64) error {
	if _, err := s.locationRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.productRepo.CountByLocation(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.CannotDelete("Location", "products are still stored there")
	}

	return s.locationRepo.Delete(ctx, id)
}
