package shared

import (
	"errors"
	"fmt"
	"strings"
)

// DomainError represents an expected domain-level failure. The Code is
// machine-readable and follows the "<Entity>.<ReasonKind>" convention,
// the Message is safe to show to an end user.
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// Is reports whether target carries the same error code, so sentinel
// comparisons with errors.Is work across independently constructed values.
func (e *DomainError) Is(target error) bool {
	t, ok := target.(*DomainError)
	return ok && t.Code == e.Code
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{Code: code, Message: message}
}

// NotFound builds the failure for a missing entity reference.
func NotFound(entity string) *DomainError {
	return NewDomainError(entity+".NotFound", fmt.Sprintf("%s was not found", entity))
}

// NotFoundWithID builds the failure for a missing entity id.
func NotFoundWithID(entity string, id int64) *DomainError {
	return NewDomainError(entity+".NotFound", fmt.Sprintf("%s with id %d was not found", entity, id))
}

// AlreadyExists builds the failure for an application-level uniqueness
// violation, detected before the storage constraint fires.
func AlreadyExists(entity, name string) *DomainError {
	return NewDomainError(entity+".AlreadyExists", fmt.Sprintf("%s %q already exists", entity, name))
}

// CannotDelete builds the failure for a deletion blocked by dependents.
func CannotDelete(entity, reason string) *DomainError {
	return NewDomainError(entity+".CannotDelete", fmt.Sprintf("%s cannot be deleted because %s", entity, reason))
}

// Invalid builds the failure for a field-level rule violation.
func Invalid(entity, message string) *DomainError {
	return NewDomainError(entity+".Invalid", message)
}

// IsNotFound reports whether err is any entity's NotFound failure.
func IsNotFound(err error) bool {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return false
	}
	return domainErr.Code == "NotFound" || strings.HasSuffix(domainErr.Code, ".NotFound")
}

// Common sentinel errors used below the service layer. Repositories
// translate store-specific absence into ErrNotFound; services translate
// it into an entity-specific DomainError before it crosses the API.
var (
	ErrNotFound            = NewDomainError("NotFound", "resource not found")
	ErrAlreadyExists       = NewDomainError("AlreadyExists", "resource already exists")
	ErrConcurrencyConflict = NewDomainError("ConcurrencyConflict", "resource was modified by another operation")
)
