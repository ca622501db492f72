package dto

import "net/http"

// Standardized error codes used across the API
const (
	// Client errors (4xx)
	ErrCodeBadRequest   = "ERR_BAD_REQUEST"   // 400 - Malformed request
	ErrCodeValidation   = "ERR_VALIDATION"    // 400 - Validation failed
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"  // 401 - Authentication required
	ErrCodeForbidden    = "ERR_FORBIDDEN"     // 403 - Insufficient permissions
	ErrCodeNotFound     = "ERR_NOT_FOUND"     // 404 - Resource not found
	ErrCodeConflict     = "ERR_CONFLICT"      // 409 - State conflict

	// Server errors (5xx)
	ErrCodeInternal    = "ERR_INTERNAL"    // 500 - Internal server error
	ErrCodeUnavailable = "ERR_UNAVAILABLE" // 503 - Service unavailable
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,
	ErrCodeNotFound:     http.StatusNotFound,
	ErrCodeConflict:     http.StatusConflict,
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeUnavailable:  http.StatusServiceUnavailable,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Unknown codes default to 500.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain-layer error codes to API error codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":          ErrCodeNotFound,
	"INVALID_INPUT":      ErrCodeValidation,
	"INVALID_DATE_RANGE": ErrCodeValidation,
	"MISSING_SUB_ORG":    ErrCodeBadRequest,
	"UNAUTHORIZED":       ErrCodeUnauthorized,
	"FORBIDDEN":          ErrCodeForbidden,
	"INVALID_STATE":      ErrCodeConflict,
}

// NormalizeErrorCode converts a domain error code to its API equivalent.
// Codes already in ERR_ form pass through unchanged.
func NormalizeErrorCode(code string) string {
	if normalized, ok := DomainErrorCodeMapping[code]; ok {
		return normalized
	}
	if _, ok := ErrorCodeHTTPStatus[code]; ok {
		return code
	}
	return ErrCodeInternal
}
