package dto

import "net/http"

// Transport-level error codes
const (
	// ErrCodeInternal is used for unexpected server errors
	ErrCodeInternal = "INTERNAL"
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeValidation is used when request body validation fails
	ErrCodeValidation = "VALIDATION"
	// ErrCodeUnauthorized is used when authentication is missing or invalid
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeNotFound is used when a resource does not exist
	ErrCodeNotFound = "NOT_FOUND"
)

// errorCodeHTTPStatus maps domain and transport error codes to HTTP status
// codes. Domain codes come from shared.DomainError.
var errorCodeHTTPStatus = map[string]int{
	ErrCodeInternal:     http.StatusInternalServerError,
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeValidation:   http.StatusBadRequest,
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeNotFound:     http.StatusNotFound,

	// Domain validation failures -> 400 Bad Request
	"INVALID_INPUT":    http.StatusBadRequest,
	"INVALID_NAME":     http.StatusBadRequest,
	"INVALID_WHATSAPP": http.StatusBadRequest,
	"INVALID_CUSTOMER": http.StatusBadRequest,
	"INVALID_CATEGORY": http.StatusBadRequest,
	"INVALID_SIZE":     http.StatusBadRequest,
	"INVALID_PRICE":    http.StatusBadRequest,
	"INVALID_LOCATION": http.StatusBadRequest,
	"INVALID_FOLIO":    http.StatusBadRequest,
	"INVALID_LABEL":    http.StatusBadRequest,
	"INVALID_AMOUNT":   http.StatusBadRequest,
	"INVALID_DATE":     http.StatusBadRequest,
	"EMPTY_ORDER":      http.StatusBadRequest,

	// Business rule violations -> 422 Unprocessable Entity
	"INVALID_STATE": http.StatusUnprocessableEntity,
	"ORDER_DELETED": http.StatusUnprocessableEntity,

	// Missing resources -> 404 Not Found
	"ITEM_NOT_FOUND": http.StatusNotFound,
	"NO_FEED":        http.StatusNotFound,

	// Store failures -> 502 Bad Gateway: the backend document store, not
	// this service, refused the request
	"STORE_FAILURE": http.StatusBadGateway,
}

// GetHTTPStatus returns the HTTP status for an error code, defaulting to 500
func GetHTTPStatus(code string) int {
	if statusCode, ok := errorCodeHTTPStatus[code]; ok {
		return statusCode
	}
	return http.StatusInternalServerError
}
