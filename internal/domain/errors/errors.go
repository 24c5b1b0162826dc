package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	ErrInvalidIntent = NewBaseError(
		http.StatusBadRequest,
		"INVALID_INTENT",
		"Unknown intent",
		"",
	)

	ErrProductIDRequired = NewBaseError(
		http.StatusBadRequest,
		"PRODUCT_ID_REQUIRED",
		"Product ID is required",
		"",
	)

	ErrStreamingUnsupported = NewBaseError(
		http.StatusInternalServerError,
		"STREAMING_UNSUPPORTED",
		"Streaming is not supported by this connection",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)
)

// UnknownErrorMessage is shown when an error carries no text at all.
const UnknownErrorMessage = "An unknown error occurred"

// UserMessage extracts the message a view renders for err. Transport errors
// found anywhere in the chain use their own message policy; anything else
// falls back to its raw text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var transportErr *TransportError
	if errors.As(err, &transportErr) {
		return transportErr.Message()
	}

	if msg := err.Error(); msg != "" {
		return msg
	}

	return UnknownErrorMessage
}
