package partner

import (
	"context"

	"go.uber.org/zap"

	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/partner"
	"github.com/stockroom/backend/internal/domain/shared"
)

// AddressRequest carries the embedded address fields of a supplier write.
type AddressRequest struct {
	StreetAddress string `json:"streetAddress" binding:"max=200"`
	City          string `json:"city" binding:"max=100"`
	State         string `json:"state" binding:"max=100"`
	ZipCode       string `json:"zipCode" binding:"max=20"`
	CountryID     int64  `json:"countryId" binding:"gte=0"`
}

// SupplierRequest carries the fields for a supplier write.
type SupplierRequest struct {
	TradeName          string         `json:"tradeName" binding:"required,max=100"`
	CorporateName      string         `json:"corporateName" binding:"required,max=150"`
	IsActive           bool           `json:"isActive"`
	Cnpj               string         `json:"cnpj" binding:"required,max=18"`
	Phone              string         `json:"phone" binding:"max=20"`
	Email              string         `json:"email" binding:"omitempty,email,max=150"`
	Address            AddressRequest `json:"address"`
	SupplierCategoryID int64          `json:"supplierCategoryId" binding:"required,gt=0"`
}

// SupplierService handles supplier lifecycle operations.
type SupplierService struct {
	supplierRepo        partner.SupplierRepository
	categoryRepo        partner.SupplierCategoryRepository
	countryRepo         partner.CountryRepository
	supplierProductRepo catalog.SupplierProductRepository
	logger              *zap.Logger
}

// NewSupplierService creates a new SupplierService
func NewSupplierService(
	supplierRepo partner.SupplierRepository,
	categoryRepo partner.SupplierCategoryRepository,
	countryRepo partner.CountryRepository,
	supplierProductRepo catalog.SupplierProductRepository,
	logger *zap.Logger,
) *SupplierService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SupplierService{
		supplierRepo:        supplierRepo,
		categoryRepo:        categoryRepo,
		countryRepo:         countryRepo,
		supplierProductRepo: supplierProductRepo,
		logger:              logger,
	}
}

// GetByID retrieves a supplier with its relations loaded
func (s *SupplierService) GetByID(ctx context.Context, id int64) (*partner.Supplier, error) {
	return s.supplierRepo.FindByID(ctx, id)
}

// GetAll returns a filtered, sorted page of suppliers
func (s *SupplierService) GetAll(ctx context.Context, filter partner.SupplierFilter, opts *shared.QueryOptions) (shared.PagedResult[partner.Supplier], error) {
	if opts.HasSearch() && filter.Search == "" {
		filter.Search = opts.Search
	}
	return s.supplierRepo.FindPaged(ctx, filter, opts)
}

// Create persists a new supplier after checking the CNPJ is unused
func (s *SupplierService) Create(ctx context.Context, req SupplierRequest) (*partner.Supplier, error) {
	if existing, err := s.supplierRepo.FindByCnpj(ctx, req.Cnpj); err == nil && existing != nil {
		return nil, shared.AlreadyExists("Supplier", req.Cnpj)
	} else if err != nil && !shared.IsNotFound(err) {
		return nil, err
	}

	if _, err := s.categoryRepo.FindByID(ctx, req.SupplierCategoryID); err != nil {
		return nil, err
	}
	if req.Address.CountryID != 0 {
		if _, err := s.countryRepo.FindByID(ctx, req.Address.CountryID); err != nil {
			return nil, err
		}
	}

	supplier := &partner.Supplier{
		BaseEntity:    shared.NewBaseEntity(),
		TradeName:     req.TradeName,
		CorporateName: req.CorporateName,
		IsActive:      req.IsActive,
		Cnpj:          req.Cnpj,
		Phone:         req.Phone,
		Email:         req.Email,
		Address: partner.Address{
			StreetAddress: req.Address.StreetAddress,
			City:          req.Address.City,
			State:         req.Address.State,
			ZipCode:       req.Address.ZipCode,
			CountryID:     req.Address.CountryID,
		},
		SupplierCategoryID: req.SupplierCategoryID,
	}
	if err := s.supplierRepo.Save(ctx, supplier); err != nil {
		return nil, err
	}

	s.logger.Info("supplier created",
		zap.Int64("supplier_id", supplier.ID),
		zap.String("trade_name", supplier.TradeName))
	return supplier, nil
}

// Update edits an existing supplier
func (s *SupplierService) Update(ctx context.Context, id int64, req SupplierRequest) (*partner.Supplier, error) {
	supplier, err := s.supplierRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if existing, err := s.supplierRepo.FindByCnpj(ctx, req.Cnpj); err == nil && existing != nil && existing.ID != id {
		return nil, shared.AlreadyExists("Supplier", req.Cnpj)
	} else if err != nil && !shared.IsNotFound(err) {
		return nil, err
	}

	if _, err := s.categoryRepo.FindByID(ctx, req.SupplierCategoryID); err != nil {
		return nil, err
	}
	if req.Address.CountryID != 0 {
		if _, err := s.countryRepo.FindByID(ctx, req.Address.CountryID); err != nil {
			return nil, err
		}
	}

	supplier.TradeName = req.TradeName
	supplier.CorporateName = req.CorporateName
	supplier.IsActive = req.IsActive
	supplier.Cnpj = req.Cnpj
	supplier.Phone = req.Phone
	supplier.Email = req.Email
	supplier.Address = partner.Address{
		StreetAddress: req.Address.StreetAddress,
		City:          req.Address.City,
		State:         req.Address.State,
		ZipCode:       req.Address.ZipCode,
		CountryID:     req.Address.CountryID,
	}
	supplier.SupplierCategoryID = req.SupplierCategoryID
	supplier.Touch()

	if err := s.supplierRepo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete removes a supplier unless offerings still reference it
func (s *SupplierService) Delete(ctx context.Context, id int64) error {
	if _, err := s.supplierRepo.FindByID(ctx, id); err != nil {
		return err
	}

	count, err := s.supplierProductRepo.CountBySupplier(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return shared.CannotDelete("Supplier", "supplier offerings still reference it")
	}

	return s.supplierRepo.Delete(ctx, id)
}
