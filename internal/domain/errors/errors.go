// Package errors defines the closed error taxonomy shared by every layer.
// Any failure, regardless of origin, is reduced to exactly one AppError
// before it reaches the client.
package errors

import (
	"net/http"

	"journal/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() any      // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   any
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
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
func (e *BaseError) Details() any {
	return e.details
}

// WithDetails returns a copy of the error carrying detailed information
func (e *BaseError) WithDetails(details any) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types. The set is closed: a new failure source must be
// mapped onto one of these, never added ad hoc by a handler.
var (
	// Token-related errors
	ErrInvalidToken = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid token",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"Token has expired",
	)

	ErrNoToken = NewBaseError(
		http.StatusUnauthorized,
		"NO_TOKEN",
		"Authentication token is required",
	)

	// The subject encoded in a valid token no longer exists.
	ErrUserNotFound = NewBaseError(
		http.StatusUnauthorized,
		"USER_NOT_FOUND",
		"User not found",
	)

	// All refresh-token verification failures collapse into this one error.
	// The refresh endpoint is the highest-value forgery target, so it must
	// not reveal whether signature, expiry or token class failed.
	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid refresh token",
	)

	// Credential errors
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid email or password",
	)

	// Persistence-related errors
	ErrDatabase = NewBaseError(
		http.StatusBadRequest,
		"DATABASE_ERROR",
		"Database operation failed",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
	)

	ErrDuplicate = NewBaseError(
		http.StatusConflict,
		"DUPLICATE_ERROR",
		"Resource already exists",
	)

	// Upload-related errors
	ErrFileTooLarge = NewBaseError(
		http.StatusBadRequest,
		"FILE_TOO_LARGE",
		"Uploaded file exceeds the size limit",
	)

	ErrTooManyFiles = NewBaseError(
		http.StatusBadRequest,
		"TOO_MANY_FILES",
		"Too many files uploaded",
	)

	ErrFileUpload = NewBaseError(
		http.StatusBadRequest,
		"FILE_UPLOAD_ERROR",
		"File upload failed",
	)

	// General errors
	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
	)
)

// FieldError describes a single failed field constraint.
type FieldError struct {
	Field         string `json:"field"`
	Message       string `json:"message"`
	RejectedValue any    `json:"rejectedValue,omitempty"`
}

// NewValidationError aggregates the complete ordered list of field failures
// into exactly one VALIDATION_ERROR. Individual field failures are never
// surfaced as separate errors.
func NewValidationError(fields []FieldError) AppError {
	base := NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_ERROR",
		"Validation failed",
	)

	return base.WithDetails(fields)
}
