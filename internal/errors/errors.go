// Package errors provides custom error types for the Quant Board API.
// All service-layer errors should use AppError to ensure consistent,
// secure error responses that never leak internal details to clients.
package errors

import "net/http"

// AppError represents a structured application error with an error code,
// human-readable message, HTTP status code, and optional internal error.
type AppError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	StatusCode int    `json:"-"`
	Internal   error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message/status but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    sentinel.Message,
		StatusCode: sentinel.StatusCode,
		Internal:   internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:       sentinel.Code,
		Message:    message,
		StatusCode: sentinel.StatusCode,
		Internal:   sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput   = &AppError{Code: "INVALID_INPUT", Message: "Invalid input", StatusCode: http.StatusBadRequest}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)

// Stock catalog errors.
var (
	ErrStockNotFound      = &AppError{Code: "STOCK_NOT_FOUND", Message: "Stock not found", StatusCode: http.StatusNotFound}
	ErrDuplicateStock     = &AppError{Code: "DUPLICATE_STOCK", Message: "A stock with this code already exists", StatusCode: http.StatusConflict}
	ErrDuplicateStatement = &AppError{Code: "DUPLICATE_STATEMENT", Message: "A statement for this period already exists", StatusCode: http.StatusConflict}
)

// Ingestion errors.
var (
	ErrSymbolNotFound      = &AppError{Code: "SYMBOL_NOT_FOUND", Message: "The data provider has no record for this symbol", StatusCode: http.StatusNotFound}
	ErrProviderUnavailable = &AppError{Code: "PROVIDER_UNAVAILABLE", Message: "The market data provider could not be reached", StatusCode: http.StatusBadGateway}
)
