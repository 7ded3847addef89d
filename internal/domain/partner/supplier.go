package partner

import (
	"github.com/stockroom/backend/internal/domain/shared"
)

// Country is a lookup row imported once from the external country API.
type Country struct {
	shared.BaseEntity
	Name string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Code string `gorm:"size:2;not null;uniqueIndex" json:"code"`
}

// TableName returns the table name for GORM
func (Country) TableName() string {
	return "countries"
}

// Address is embedded into Supplier; it has no identity of its own.
type Address struct {
	StreetAddress string `gorm:"size:200" json:"streetAddress"`
	City          string `gorm:"size:100" json:"city"`
	State         string `gorm:"size:100" json:"state"`
	ZipCode       string `gorm:"size:20" json:"zipCode"`

	CountryID int64    `json:"countryId"`
	Country   *Country `gorm:"foreignKey:CountryID" json:"country,omitempty"`
}

// SupplierCategory groups suppliers by line of business.
type SupplierCategory struct {
	shared.BaseEntity
	Name        string `gorm:"size:100;not null;uniqueIndex" json:"name"`
	Description string `gorm:"size:500" json:"description"`
}

// TableName returns the table name for GORM
func (SupplierCategory) TableName() string {
	return "supplier_categories"
}

// Supplier is a company the warehouse buys from. CNPJ is the Brazilian
// company registration number and is unique across suppliers.
type Supplier struct {
	shared.BaseEntity
	TradeName     string  `gorm:"size:100;not null" json:"tradeName"`
	CorporateName string  `gorm:"size:150;not null" json:"corporateName"`
	IsActive      bool    `gorm:"not null;default:true" json:"isActive"`
	Cnpj          string  `gorm:"size:18;not null;uniqueIndex" json:"cnpj"`
	Phone         string  `gorm:"size:20" json:"phone"`
	Email         string  `gorm:"size:150" json:"email"`
	Address       Address `gorm:"embedded;embeddedPrefix:address_" json:"address"`

	SupplierCategoryID int64             `gorm:"not null;index" json:"supplierCategoryId"`
	SupplierCategory   *SupplierCategory `gorm:"foreignKey:SupplierCategoryID" json:"supplierCategory,omitempty"`
}

// TableName returns the table name for GORM
func (Supplier) TableName() string {
	return "suppliers"
}
