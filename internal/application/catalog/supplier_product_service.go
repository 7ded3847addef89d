package catalog

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/partner"
	"github.com/stockroom/backend/internal/domain/shared"
)

// SupplierProductRequest carries the fields for a supplier offering write.
// SKU and barcode are optional identifiers; when present they must be
// unique across all offerings.
type SupplierProductRequest struct {
	Name              string          `json:"name" binding:"required,max=100"`
	PurchasePrice     decimal.Decimal `json:"purchasePrice" binding:"required"`
	SKU               string          `json:"sku" binding:"omitempty,max=50"`
	Barcode           string          `json:"barcode" binding:"omitempty,numeric,max=50"`
	Description       string          `json:"description" binding:"omitempty,max=1000"`
	SupplierID        int64           `json:"supplierId" binding:"required,gt=0"`
	ProductCategoryID int64           `json:"productCategoryId" binding:"required,gt=0"`
}

// SupplierProductService handles supplier offering operations.
type SupplierProductService struct {
	supplierProductRepo catalog.SupplierProductRepository
	supplierRepo        partner.SupplierRepository
	categoryRepo        catalog.ProductCategoryRepository
	productRepo         catalog.ProductRepository
	logger              *zap.Logger
}

// NewSupplierProductService creates a new SupplierProductService
func NewSupplierProductService(
	supplierProductRepo catalog.SupplierProductRepository,
	supplierRepo partner.SupplierRepository,
	categoryRepo catalog.ProductCategoryRepository,
	productRepo catalog.ProductRepository,
	logger *zap.Logger,
) *SupplierProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SupplierProductService{
		supplierProductRepo: supplierProductRepo,
		supplierRepo:        supplierRepo,
		categoryRepo:        categoryRepo,
		productRepo:         productRepo,
		logger:              logger,
	}
}

// GetByID retrieves a supplier offering
func (s *SupplierProductService) GetByID(ctx context.Context, id int64) (*catalog.SupplierProduct, error) {
	return s.supplierProductRepo.FindByID(ctx, id)
}

// GetAll returns a filtered, sorted page of supplier offerings
func (s *SupplierProductService) GetAll(ctx context.Context, filter catalog.SupplierProductFilter, opts *shared.QueryOptions) (shared.PagedResult[catalog.SupplierProduct], error) {
	if filter.Search == "" && opts.HasSearch() {
		filter.Search = opts.Search
	}
	return s.supplierProductRepo.FindPaged(ctx, filter, opts)
}

// GetBySupplier lists every offering from one supplier
func (s *SupplierProductService) GetBySupplier(ctx context.Context, supplierID int64) ([]catalog.SupplierProduct, error) {
	if _, err := s.supplierRepo.FindByID(ctx, supplierID); err != nil {
		return nil, err
	}
	return s.supplierProductRepo.FindBySupplier(ctx, supplierID)
}

// checkUniqueness rejects a write that would duplicate the supplier-scoped
// name or, when present, the SKU or barcode of another offering.
func (s *SupplierProductService) checkUniqueness(ctx context.Context, req SupplierProductRequest, excludeID int64) error {
	taken, err := s.supplierProductRepo.ExistsName(ctx, req.Name, req.SupplierID, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return shared.AlreadyExists("SupplierProduct", req.Name)
	}

	if req.SKU != "" {
		taken, err := s.supplierProductRepo.ExistsSKU(ctx, req.SKU, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return shared.AlreadyExists("SupplierProduct", req.SKU)
		}
	}

	if req.Barcode != "" {
		taken, err := s.supplierProductRepo.ExistsBarcode(ctx, req.Barcode, excludeID)
		if err != nil {
			return err
		}
		if taken {
			return shared.AlreadyExists("SupplierProduct", req.Barcode)
		}
	}

	return nil
}

// Create persists a new offering after resolving its references
func (s *SupplierProductService) Create(ctx context.Context, req SupplierProductRequest) (*catalog.SupplierProduct, error) {
	if _, err := s.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}
	if _, err := s.categoryRepo.FindByID(ctx, req.ProductCategoryID); err != nil {
		return nil, err
	}
	if err := s.checkUniqueness(ctx, req, 0); err != nil {
		return nil, err
	}

	sp := &catalog.SupplierProduct{
		BaseEntity:        shared.NewBaseEntity(),
		Name:              req.Name,
		PurchasePrice:     req.PurchasePrice,
		SKU:               req.SKU,
		Barcode:           req.Barcode,
		Description:       req.Description,
		SupplierID:        req.SupplierID,
		ProductCategoryID: req.ProductCategoryID,
	}
	if err := s.supplierProductRepo.Save(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

// Update edits an existing offering
func (s *SupplierProductService) Update(ctx context.Context, id int64, req SupplierProductRequest) (*catalog.SupplierProduct, error) {
	sp, err := s.supplierProductRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if _, err := s.supplierRepo.FindByID(ctx, req.SupplierID); err != nil {
		return nil, err
	}
	if _, err := s.categoryRepo.FindByID(ctx, req.ProductCategoryID); err != nil {
		return nil, err
	}
	if err := s.checkUniqueness(ctx, req, id); err != nil {
		return nil, err
	}

	sp.Name = req.Name
	sp.PurchasePrice = req.PurchasePrice
	sp.SKU = req.SKU
	sp.Barcode = req.Barcode
	sp.Description = req.Description
	sp.SupplierID = req.SupplierID
	sp.ProductCategoryID = req.ProductCategoryID
	sp.Touch()

	if err := s.supplierProductRepo.Update(ctx, sp); err != nil {
		return nil, err
	}
	return sp, nil
}

// Delete removes an offering unless products are backed by it
func (s *SupplierProductService) Delete(ctx context.Context, id int64) error {
	if _, err := s.supplierProductRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.productRepo.CountBySupplierProduct(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.CannotDelete("SupplierProduct", "products are backed by it")
	}

	return s.supplierProductRepo.Delete(ctx, id)
}
