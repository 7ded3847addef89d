package catalog

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	appmovement "github.com/stockroom/backend/internal/application/movement"
	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/movement"
	"github.com/stockroom/backend/internal/domain/shared"
)

// CreateProductRequest carries the fields for a new product.
type CreateProductRequest struct {
	Name              string          `json:"name" binding:"required,max=100"`
	Description       string          `json:"description" binding:"max=500"`
	SellingPrice      decimal.Decimal `json:"sellingPrice" binding:"required"`
	Amount            int             `json:"amount" binding:"gte=0"`
	MinimalQuantity   int             `json:"minimalQuantity" binding:"gte=0"`
	MaximalQuantity   int             `json:"maximalQuantity" binding:"gte=0"`
	SupplierProductID int64           `json:"supplierProductId" binding:"required,gt=0"`
	LocationID        int64           `json:"locationId" binding:"required,gt=0"`
}

// UpdateProductRequest carries the fields for a product edit. The on-hand
// amount is absent on purpose: it only moves through the stock ledger.
type UpdateProductRequest struct {
	Name              string          `json:"name" binding:"required,max=100"`
	Description       string          `json:"description" binding:"max=500"`
	SellingPrice      decimal.Decimal `json:"sellingPrice" binding:"required"`
	MinimalQuantity   int             `json:"minimalQuantity" binding:"gte=0"`
	MaximalQuantity   int             `json:"maximalQuantity" binding:"gte=0"`
	SupplierProductID int64           `json:"supplierProductId" binding:"required,gt=0"`
	LocationID        int64           `json:"locationId" binding:"required,gt=0"`
}

// ProductService handles product lifecycle operations.
type ProductService struct {
	productRepo         catalog.ProductRepository
	supplierProductRepo catalog.SupplierProductRepository
	locationRepo        catalog.LocationRepository
	priceHistoryRepo    catalog.ProductPriceHistoryRepository
	movementRepo        movement.Repository
	scope               appmovement.TransactionScope
	logger              *zap.Logger
}

// NewProductService creates a new ProductService
func NewProductService(
	productRepo catalog.ProductRepository,
	supplierProductRepo catalog.SupplierProductRepository,
	locationRepo catalog.LocationRepository,
	priceHistoryRepo catalog.ProductPriceHistoryRepository,
	movementRepo movement.Repository,
	scope appmovement.TransactionScope,
	logger *zap.Logger,
) *ProductService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProductService{
		productRepo:         productRepo,
		supplierProductRepo: supplierProductRepo,
		locationRepo:        locationRepo,
		priceHistoryRepo:    priceHistoryRepo,
		movementRepo:        movementRepo,
		scope:               scope,
		logger:              logger,
	}
}

// GetByID retrieves a product with its relations loaded
func (s *ProductService) GetByID(ctx context.Context, id int64) (*catalog.Product, error) {
	return s.productRepo.FindByID(ctx, id)
}

// GetAll returns a filtered, sorted page of products. A nil opts returns
// everything in one page.
func (s *ProductService) GetAll(ctx context.Context, filter catalog.ProductFilter, opts *shared.QueryOptions) (shared.PagedResult[catalog.Product], error) {
	if opts.HasSearch() && filter.Search == "" {
		filter.Search = opts.Search
	}
	return s.productRepo.FindPaged(ctx, filter, opts)
}

// Create validates references and uniqueness, then persists the product
func (s *ProductService) Create(ctx context.Context, req CreateProductRequest) (*catalog.Product, error) {
	if req.MaximalQuantity > 0 && req.MinimalQuantity > req.MaximalQuantity {
		return nil, shared.Invalid("Product", "minimal quantity cannot exceed maximal quantity")
	}
	if req.MaximalQuantity > 0 && req.Amount > req.MaximalQuantity {
		return nil, shared.Invalid("Product", "amount cannot exceed maximal quantity")
	}

	if existing, err := s.productRepo.FindByName(ctx, req.Name); err == nil && existing != nil {
		return nil, shared.AlreadyExists("Product", req.Name)
	} else if err != nil && !shared.IsNotFound(err) {
		return nil, err
	}

	if _, err := s.supplierProductRepo.FindByID(ctx, req.SupplierProductID); err != nil {
		return nil, err
	}
	if _, err := s.locationRepo.FindByID(ctx, req.LocationID); err != nil {
		return nil, err
	}

	product := &catalog.Product{
		BaseEntity:        shared.NewBaseEntity(),
		Name:              req.Name,
		Description:       req.Description,
		SellingPrice:      req.SellingPrice,
		Amount:            req.Amount,
		MinimalQuantity:   req.MinimalQuantity,
		MaximalQuantity:   req.MaximalQuantity,
		SupplierProductID: req.SupplierProductID,
		LocationID:        req.LocationID,
	}
	if err := s.productRepo.Save(ctx, product); err != nil {
		return nil, err
	}

	s.logger.Info("product created",
		zap.Int64("product_id", product.ID),
		zap.String("name", product.Name))
	return product, nil
}

// Update edits a product and records a price history row when the selling
// price changed. The comparison uses a fresh read of the stored price, and
// the product write and the history append share one transaction.
func (s *ProductService) Update(ctx context.Context, id int64, req UpdateProductRequest) (*catalog.Product, error) {
	if req.MaximalQuantity > 0 && req.MinimalQuantity > req.MaximalQuantity {
		return nil, shared.Invalid("Product", "minimal quantity cannot exceed maximal quantity")
	}

	if existing, err := s.productRepo.FindByName(ctx, req.Name); err == nil && existing != nil && existing.ID != id {
		return nil, shared.AlreadyExists("Product", req.Name)
	} else if err != nil && !shared.IsNotFound(err) {
		return nil, err
	}

	if _, err := s.supplierProductRepo.FindByID(ctx, req.SupplierProductID); err != nil {
		return nil, err
	}
	if _, err := s.locationRepo.FindByID(ctx, req.LocationID); err != nil {
		return nil, err
	}

	var updated *catalog.Product
	err := s.scope.Execute(ctx, func(repos appmovement.TransactionalRepositories) error {
		product, err := repos.ProductRepo().FindByID(ctx, id)
		if err != nil {
			return err
		}

		history := product.ChangeSellingPrice(req.SellingPrice, time.Now().UTC())

		product.Name = req.Name
		product.Description = req.Description
		product.MinimalQuantity = req.MinimalQuantity
		product.MaximalQuantity = req.MaximalQuantity
		product.SupplierProductID = req.SupplierProductID
		product.LocationID = req.LocationID
		product.Touch()

		if err := repos.ProductRepo().Update(ctx, product); err != nil {
			return err
		}
		if history != nil {
			if err := repos.PriceHistoryRepo().Save(ctx, history); err != nil {
				return err
			}
			s.logger.Info("selling price changed",
				zap.Int64("product_id", product.ID),
				zap.String("old_price", history.OldPrice.String()),
				zap.String("new_price", history.NewPrice.String()))
		}
		updated = product
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete removes a product unless ledger history references it
func (s *ProductService) Delete(ctx context.Context, id int64) error {
	if _, err := s.productRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.movementRepo.CountByProduct(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.CannotDelete("Product", "the product has movement history")
	}

	return s.productRepo.Delete(ctx, id)
}

// GetPriceHistory returns a page of a product's price changes
func (s *ProductService) GetPriceHistory(ctx context.Context, productID int64, opts *shared.QueryOptions) (shared.PagedResult[catalog.ProductPriceHistory], error) {
	if _, err := s.productRepo.FindByID(ctx, productID); err != nil {
		return shared.PagedResult[catalog.ProductPriceHistory]{}, err
	}
	return s.priceHistoryRepo.FindPaged(ctx, productID, opts)
}
