package models

// Error codes
const (
	// General errors
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeUnauthorized   = "UNAUTHORIZED"
	ErrCodeForbidden      = "FORBIDDEN"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeConflict       = "CONFLICT"
	ErrCodeInternalError  = "INTERNAL_ERROR"

	// Authentication errors
	ErrCodeTokenRequired      = "TOKEN_REQUIRED"
	ErrCodeInvalidToken       = "INVALID_TOKEN"
	ErrCodeTokenExpired       = "TOKEN_EXPIRED"
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	ErrCodeDuplicateUsername  = "DUPLICATE_USERNAME"

	// Inventory errors
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeDuplicateSKU      = "DUPLICATE_SKU"
	ErrCodeDuplicateCategory = "DUPLICATE_CATEGORY"
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"

	ErrCodeRateLimited = "RATE_LIMIT_EXCEEDED"
)

// Wire messages fixed by the authentication contract
const (
	MsgTokenRequired      = "Access Token Required"
	MsgInvalidToken       = "Invalid Token"
	MsgInvalidCredentials = "Invalid username or password"
)
