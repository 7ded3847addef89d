package partner

import (
	"context"

	"go.uber.org/zap"

	"github.com/stockroom/backend/internal/domain/partner"
	"github.com/stockroom/backend/internal/domain/shared"
)

// SupplierCategoryRequest carries the fields for a supplier category write.
type SupplierCategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// SupplierCategoryService handles supplier category operations.
type SupplierCategoryService struct {
	categoryRepo partner.SupplierCategoryRepository
	supplierRepo partner.SupplierRepository
	logger       *zap.Logger
}

// NewSupplierCategoryService creates a new SupplierCategoryService
func NewSupplierCategoryService(categoryRepo partner.SupplierCategoryRepository, supplierRepo partner.SupplierRepository, logger *zap.Logger) *SupplierCategoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SupplierCategoryService{categoryRepo: categoryRepo, supplierRepo: supplierRepo, logger: logger}
}

// GetByID retrieves a supplier category
func (s *SupplierCategoryService) GetByID(ctx context.Context, id int64) (*partner.SupplierCategory, error) {
	return s.categoryRepo.FindByID(ctx, id)
}

// GetAll returns a filtered, sorted page of supplier categories
func (s *SupplierCategoryService) GetAll(ctx context.Context, opts *shared.QueryOptions) (shared.PagedResult[partner.SupplierCategory], error) {
	search := ""
	if opts.HasSearch() {
		search = opts.Search
	}
	return s.categoryRepo.FindPaged(ctx, search, opts)
}

// Create persists a new supplier category after a uniqueness check
func (s *SupplierCategoryService) Create(ctx context.Context, req SupplierCategoryRequest) (*partner.SupplierCategory, error) {
	if existing, err := s.categoryRepo.FindByName(ctx, req.Name); err == nil && existing != nil {
		return nil, shared.AlreadyExists("SupplierCategory", req.Name)
	} else if err != nil && !shared.IsNotFound(err) {
		return nil, err
	}

	category := &partner.SupplierCategory{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update edits an existing supplier category
func (s *SupplierCategoryService) Update(ctx context.Context, id int64, req SupplierCategoryRequest) (*partner.SupplierCategory, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing, err := s.categoryRepo.FindByName(ctx, req.Name); err == nil && existing != nil && existing.ID != id {
		return nil, shared.AlreadyExists("SupplierCategory", req.Name)
	} else if err != nil && !shared.IsNotFound(err) {
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description
	category.Touch()

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete removes a supplier category unless suppliers still use it
func (s *SupplierCategoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.supplierRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.CannotDelete("SupplierCategory", "suppliers still use it")
	}

	return s.categoryRepo.Delete(ctx, id)
}
