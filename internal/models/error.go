package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest     = "BAD_REQUEST"
	ErrUnauthorized   = "UNAUTHORIZED"
	ErrNotFound       = "NOT_FOUND"
	ErrInternalServer = "INTERNAL_SERVER_ERROR"

	// Storefront errors
	ErrInvalidSelection    = "INVALID_SELECTION"
	ErrSessionNotFound     = "SESSION_NOT_FOUND"
	ErrEmptyCart           = "EMPTY_CART"
	ErrCheckoutUnavailable = "CHECKOUT_UNAVAILABLE"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}
