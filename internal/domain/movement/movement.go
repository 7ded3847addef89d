package movement

import (
	"time"

	"github.com/stockroom/backend/internal/domain/catalog"
	"github.com/stockroom/backend/internal/domain/shared"
)

// Type says which way stock moved.
type Type string

const (
	TypeIn  Type = "In"
	TypeOut Type = "Out"
)

// Sign returns +1 for inbound and -1 for outbound movements.
func (t Type) Sign() int {
	if t == TypeOut {
		return -1
	}
	return 1
}

// IsValid reports whether t is one of the known movement types.
func (t Type) IsValid() bool {
	return t == TypeIn || t == TypeOut
}

// Movement is one immutable row in the stock ledger. Rows are only ever
// appended; corrections happen through compensating movements.
type Movement struct {
	shared.BaseEntity
	Type     Type      `gorm:"size:10;not null;index" json:"type"`
	Quantity int       `gorm:"not null" json:"quantity"`
	MovedAt  time.Time `gorm:"not null;index" json:"movedAt"`

	ProductID int64            `gorm:"not null;index" json:"productId"`
	Product   *catalog.Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName returns the table name for GORM
func (Movement) TableName() string {
	return "movements"
}

// NewMovement builds a ledger row for the given product and stock change.
func NewMovement(productID int64, movementType Type, quantity int, movedAt time.Time) *Movement {
	return &Movement{
		BaseEntity: shared.NewBaseEntity(),
		Type:       movementType,
		Quantity:   quantity,
		MovedAt:    movedAt,
		ProductID:  productID,
	}
}

// RegisterRequest carries everything needed to post a movement to the ledger.
type RegisterRequest struct {
	ProductID int64     `json:"productId" binding:"required,gt=0"`
	Type      Type      `json:"type" binding:"required,oneof=In Out"`
	Quantity  int       `json:"quantity" binding:"required,gt=0,lte=10000"`
	MovedAt   time.Time `json:"movedAt"`
}

// DateFilterType selects which period bucket a movement query covers.
type DateFilterType string

const (
	DateFilterAll        DateFilterType = "All"
	DateFilterThisMonth  DateFilterType = "ThisMonth"
	DateFilterLast3Month DateFilterType = "Last3Months"
	DateFilterLast6Month DateFilterType = "Last6Months"
)

// Filter narrows movement queries. Zero values mean "no filter"; the
// supplier and location constraints apply through the moved product.
type Filter struct {
	Search     string
	ProductID  int64
	SupplierID int64
	LocationID int64
	Type       Type
	DateFilter DateFilterType
}

// DateRange resolves the filter's bucket into a concrete [from, to) window
// relative to now. The second return is false when no window applies; a
// zero "to" means the window is open-ended.
func (f Filter) DateRange(now time.Time) (time.Time, time.Time, bool) {
	switch f.DateFilter {
	case DateFilterThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0), true
	case DateFilterLast3Month:
		return now.AddDate(0, -3, 0), time.Time{}, true
	case DateFilterLast6Month:
		return now.AddDate(0, -6, 0), time.Time{}, true
	default:
		return time.Time{}, time.Time{}, false
	}
}
