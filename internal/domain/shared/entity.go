package shared

import "time"

// Entity is the base interface for all domain entities
type Entity interface {
	GetID() int64
	GetCreatedAt() time.Time
}

// BaseEntity provides the common identity and timestamp fields.
// UpdatedAt stays nil until the entity is modified for the first time.
type BaseEntity struct {
	ID        int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}

// GetID returns the entity ID
func (e *BaseEntity) GetID() int64 {
	return e.ID
}

// GetCreatedAt returns the creation timestamp
func (e *BaseEntity) GetCreatedAt() time.Time {
	return e.CreatedAt
}

// Touch records a modification timestamp
func (e *BaseEntity) Touch() {
	now := time.Now().UTC()
	e.UpdatedAt = &now
}

// LastModifiedAt returns UpdatedAt when set, otherwise CreatedAt.
func (e *BaseEntity) LastModifiedAt() time.Time {
	if e.UpdatedAt != nil {
		return *e.UpdatedAt
	}
	return e.CreatedAt
}

// NewBaseEntity creates a base entity stamped with the current time.
// The ID is assigned by the database on insert.
func NewBaseEntity() BaseEntity {
	return BaseEntity{CreatedAt: time.Now().UTC()}
}
