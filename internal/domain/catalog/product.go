package catalog

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/stockroom/backend/internal/domain/partner"
	"github.com/stockroom/backend/internal/domain/shared"
)

// ProductCategory groups products for filtering and reporting.
type ProductCategory struct {
	shared.BaseEntity
	Name        string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string `gorm:"size:500" json:"description"`
}

// TableName returns the table name for GORM
func (ProductCategory) TableName() string {
	return "product_categories"
}

// Location is a physical storage spot inside the warehouse. Capacity is
// informational; stock limits live on the product itself.
type Location struct {
	shared.BaseEntity
	Name        string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	Capacity    int    `gorm:"not null;default:0" json:"capacity"`
	IsActive    bool   `gorm:"not null;default:true" json:"isActive"`
}

// TableName returns the table name for GORM
func (Location) TableName() string {
	return "locations"
}

// SupplierProduct links a supplier's offering to a product category with
// the negotiated purchase price. Products reference one of these rows.
type SupplierProduct struct {
	shared.BaseEntity
	Name          string          `gorm:"size:100;not null" json:"name"`
	PurchasePrice decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"purchasePrice"`
	SKU           string          `gorm:"size:50;index" json:"sku"`
	Barcode       string          `gorm:"size:50;index" json:"barcode"`
	Description   string          `gorm:"size:1000" json:"description"`

	SupplierID int64             `gorm:"not null;index" json:"supplierId"`
	Supplier   *partner.Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`

	ProductCategoryID int64            `gorm:"not null;index" json:"productCategoryId"`
	ProductCategory   *ProductCategory `gorm:"foreignKey:ProductCategoryID" json:"productCategory,omitempty"`
}

// TableName returns the table name for GORM
func (SupplierProduct) TableName() string {
	return "supplier_products"
}

// ProductPriceHistory is an append-only record of selling price changes.
type ProductPriceHistory struct {
	shared.BaseEntity
	OldPrice       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"oldPrice"`
	NewPrice       decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"newPrice"`
	UpdatedPriceAt time.Time       `gorm:"not null" json:"updatedPriceAt"`

	ProductID int64 `gorm:"not null;index" json:"productId"`
}

// TableName returns the table name for GORM
func (ProductPriceHistory) TableName() string {
	return "product_price_histories"
}

// Product is the stocked item. Amount is the on-hand quantity maintained
// exclusively through the movement ledger; MinimalQuantity and
// MaximalQuantity bound what movements may do to it.
type Product struct {
	shared.BaseEntity
	Name            string          `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description     string          `gorm:"size:500" json:"description"`
	SellingPrice    decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"sellingPrice"`
	Amount          int             `gorm:"not null;default:0" json:"amount"`
	MinimalQuantity int             `gorm:"not null;default:0" json:"minimalQuantity"`
	MaximalQuantity int             `gorm:"not null;default:0" json:"maximalQuantity"`

	SupplierProductID int64            `gorm:"not null;index" json:"supplierProductId"`
	SupplierProduct   *SupplierProduct `gorm:"foreignKey:SupplierProductID" json:"supplierProduct,omitempty"`

	LocationID int64     `gorm:"not null;index" json:"locationId"`
	Location   *Location `gorm:"foreignKey:LocationID" json:"location,omitempty"`

	PriceHistories []ProductPriceHistory `gorm:"foreignKey:ProductID" json:"priceHistories,omitempty"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// Headroom returns how many units can still come in before hitting the
// maximal quantity.
func (p *Product) Headroom() int {
	if p.MaximalQuantity <= 0 {
		return 0
	}
	return p.MaximalQuantity - p.Amount
}

// CanReceive reports whether an inbound movement of qty units stays within
// the maximal quantity.
func (p *Product) CanReceive(qty int) bool {
	if qty < 0 {
		return false
	}
	return p.Amount+qty <= p.MaximalQuantity
}

// CanIssue reports whether an outbound movement of qty units keeps the
// on-hand amount at or above zero. The minimal quantity is a reorder
// threshold, not an issuing floor.
func (p *Product) CanIssue(qty int) bool {
	if qty < 0 {
		return false
	}
	return p.Amount-qty >= 0
}

// IsBelowMinimum reports whether the current amount fell under the floor,
// which can only happen through direct data fixes, never through movements.
func (p *Product) IsBelowMinimum() bool {
	return p.Amount < p.MinimalQuantity
}

// ChangeSellingPrice updates the price and returns the history row to
// append, or nil when the price did not actually change.
func (p *Product) ChangeSellingPrice(newPrice decimal.Decimal, at time.Time) *ProductPriceHistory {
	if p.SellingPrice.Equal(newPrice) {
		return nil
	}
	history := &ProductPriceHistory{
		BaseEntity:     shared.NewBaseEntity(),
		OldPrice:       p.SellingPrice,
		NewPrice:       newPrice,
		UpdatedPriceAt: at,
		ProductID:      p.ID,
	}
	p.SellingPrice = newPrice
	p.Touch()
	return history
}
