package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound      = NewDomainError("NOT_FOUND", "Resource not found")
	ErrInvalidInput  = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrStoreFailure  = NewDomainError("STORE_FAILURE", "Document store request failed")
	ErrUnauthorized  = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrInvalidState  = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
	ErrOrderDeleted  = NewDomainError("ORDER_DELETED", "Order has been deleted")
	ErrItemNotFound  = NewDomainError("ITEM_NOT_FOUND", "Order item not found")
	ErrEmptyOrder    = NewDomainError("EMPTY_ORDER", "Order must contain at least one item")
	ErrInvalidAmount = NewDomainError("INVALID_AMOUNT", "Amount must be positive")
)
