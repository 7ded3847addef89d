package dto

import (
	"net/http"
	"strings"
)

// General error codes for failures that never reach the domain layer.
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "INTERNAL_ERROR"
	// ErrCodeRateLimited is used when the rate limit is exceeded
	ErrCodeRateLimited = "RATE_LIMITED"
	// ErrCodePayloadTooLarge is used when the request body exceeds the limit
	ErrCodePayloadTooLarge = "PAYLOAD_TOO_LARGE"
	// ErrCodeRequestCancelled is used when the client went away or the
	// request deadline expired mid-flight
	ErrCodeRequestCancelled = "REQUEST_CANCELLED"
)

// StatusClientClosedRequest is nginx's non-standard status for a request
// the client abandoned before a response was written.
const StatusClientClosedRequest = 499

// reasonHTTPStatus maps the reason kind of a domain error code to an
// HTTP status. Domain codes follow "<Entity>.<ReasonKind>"; the entity
// part never changes the status, only the reason does.
var reasonHTTPStatus = map[string]int{
	"NotFound": http.StatusNotFound,

	"AlreadyExists":       http.StatusConflict,
	"CannotDelete":        http.StatusConflict,
	"ConcurrencyConflict": http.StatusConflict,

	"Invalid": http.StatusBadRequest,

	"UnknownType":       http.StatusUnprocessableEntity,
	"InvalidQuantity":   http.StatusUnprocessableEntity,
	"ExceedsCapacity":   http.StatusUnprocessableEntity,
	"InsufficientStock": http.StatusUnprocessableEntity,
}

var generalHTTPStatus = map[string]int{
	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeInternal:         http.StatusInternalServerError,
	ErrCodeRateLimited:      http.StatusTooManyRequests,
	ErrCodePayloadTooLarge:  http.StatusRequestEntityTooLarge,
	ErrCodeRequestCancelled: StatusClientClosedRequest,
}

// GetHTTPStatus returns the HTTP status for an error code. Codes of the
// form "<Entity>.<ReasonKind>" resolve by reason kind, the handful of
// transport-level codes resolve directly, anything else is a 500.
func GetHTTPStatus(code string) int {
	if _, reason, ok := strings.Cut(code, "."); ok {
		if status, found := reasonHTTPStatus[reason]; found {
			return status
		}
	}
	if status, ok := generalHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
