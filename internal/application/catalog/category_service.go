package catalog

import (
	"context"

	"go.uber.org/zap"

	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/shared"
)

// CategoryRequest carries the fields for a product category write.
type CategoryRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"max=500"`
}

// CategoryService handles product category operations.
type CategoryService struct {
	categoryRepo catalog.ProductCategoryRepository
	productRepo  catalog.ProductRepository
	logger       *zap.Logger
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo catalog.ProductCategoryRepository, productRepo catalog.ProductRepository, logger *zap.Logger) *CategoryService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CategoryService{categoryRepo: categoryRepo, productRepo: productRepo, logger: logger}
}

// GetByID retrieves a product category
func (s *CategoryService) GetByID(ctx context.Context, id int64) (*catalog.ProductCategory, error) {
	return s.categoryRepo.FindByID(ctx, id)
}

// GetAll returns a filtered, sorted page of product categories
func (s *CategoryService) GetAll(ctx context.Context, opts *shared.QueryOptions) (shared.PagedResult[catalog.ProductCategory], error) {
	search := ""
	if opts.HasSearch() {
		search = opts.Search
	}
	return s.categoryRepo.FindPaged(ctx, search, opts)
}

// Create persists a new category after a uniqueness check on the name
func (s *CategoryService) Create(ctx context.Context, req CategoryRequest) (*catalog.ProductCategory, error) {
	if existing, err := s.categoryRepo.FindByName(ctx, req.Name); err == nil && existing != nil {
		return nil, shared.AlreadyExists("ProductCategory", req.Name)
	} else if err != nil && !shared.IsNotFound(err) {
		return nil, err
	}

	category := &catalog.ProductCategory{
		BaseEntity:  shared.NewBaseEntity(),
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.categoryRepo.Save(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Update edits an existing category
func (s *CategoryService) Update(ctx context.Context, id int64, req CategoryRequest) (*catalog.ProductCategory, error) {
	category, err := s.categoryRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing, err := s.categoryRepo.FindByName(ctx, req.Name); err == nil && existing != nil && existing.ID != id {
		return nil, shared.AlreadyExists("ProductCategory", req.Name)
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

// Delete removes a category unless products still reference it
func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	if _, err := s.categoryRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.CannotDelete("ProductCategory", "products still reference it")
	}

	return s.categoryRepo.Delete(ctx, id)
}
