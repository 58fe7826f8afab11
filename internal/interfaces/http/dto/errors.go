package dto

import "net/http"

// Transport-level error codes
const (
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeBadRequest   = "BAD_REQUEST"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
)

// ErrorCodeHTTPStatus maps domain error codes to HTTP status codes.
// Codes absent from the map fall back to 422: they are domain rejections
// of well-formed requests.
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,

	// Auth
	ErrCodeUnauthorized:   http.StatusUnauthorized,
	"INVALID_CREDENTIALS": http.StatusUnauthorized,
	"TOKEN_EXPIRED":       http.StatusUnauthorized,
	"TOKEN_INVALID":       http.StatusUnauthorized,
	"TOKEN_ERROR":         http.StatusUnauthorized,
	"USER_NOT_FOUND":      http.StatusUnauthorized,
	ErrCodeForbidden:      http.StatusForbidden,

	// Resources
	ErrCodeNotFound:        http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"STORE_CODE_TAKEN":     http.StatusConflict,
	"USERNAME_TAKEN":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,

	// Input validation
	"INVALID_INPUT":    http.StatusBadRequest,
	"STORE_REQUIRED":   http.StatusBadRequest,
	"NEGATIVE_AMOUNT":  http.StatusBadRequest,
	"NEGATIVE_COUNT":   http.StatusBadRequest,
	"NEGATIVE_TARGET":  http.StatusBadRequest,
	"INVALID_MONTH":    http.StatusBadRequest,
	"INVALID_YEAR":     http.StatusBadRequest,
	"INVALID_TAX_RATE": http.StatusBadRequest,
	"INVALID_USERNAME": http.StatusBadRequest,
	"WEAK_PASSWORD":    http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusUnprocessableEntity
}
