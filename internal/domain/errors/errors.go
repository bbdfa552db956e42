// Package errors defines the application error taxonomy. Domain errors carry
// an HTTP status, a stable business code, and a user-facing message, and
// propagate to the transport boundary unmodified.
package errors

import (
	"fmt"
	"net/http"

	"github.com/FlippingBinary/grocery-deflater/internal/domain/identity"

	pkgerrors "github.com/pkg/errors"
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

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return pkgerrors.Wrap(e, message)
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

// Extensions exposes the business code to GraphQL error formatting, so
// clients can dispatch on a stable code instead of the message text.
func (e *BaseError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": e.errorCode,
	}
}

// Predefined error types
var (
	// ErrInvalidID is returned when an opaque ID cannot be decoded at all.
	ErrInvalidID = NewBaseError(
		http.StatusBadRequest,
		"INVALID_ID",
		"invalid id",
		"",
	)

	// ErrScopeMismatch is returned when an ID decodes cleanly but carries
	// the wrong scope for the field it was supplied in.
	ErrScopeMismatch = NewBaseError(
		http.StatusBadRequest,
		"SCOPE_MISMATCH",
		"id has the wrong scope",
		"",
	)

	// ErrInvalidFilterCombination is returned when mutually exclusive
	// arguments are supplied together.
	ErrInvalidFilterCombination = NewBaseError(
		http.StatusBadRequest,
		"INVALID_FILTER",
		"invalid filter combination",
		"",
	)

	// ErrVariantNotFound is returned by mutations that reference a
	// provably absent variant.
	ErrVariantNotFound = NewBaseError(
		http.StatusNotFound,
		"VARIANT_NOT_FOUND",
		"no variant of that product is sold at that location",
		"",
	)

	// ErrUpdateFailed wraps a store write failure on the price mutation.
	ErrUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"UPDATE_FAILED",
		"failed to update product price in database",
		"",
	)

	// ErrSaveFailed wraps a store write failure on the list mutation.
	ErrSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"SAVE_FAILED",
		"failed to add product to user list",
		"",
	)

	// ErrInternalError covers invariant violations that should not occur
	// in practice, such as a product row without a category.
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// NewScopeMismatchError builds a scope-mismatch error naming the offending
// field and the scope it requires.
func NewScopeMismatchError(field string, want, got identity.Scope) AppError {
	return ErrScopeMismatch.WithDetails(
		fmt.Sprintf("%s must use scope %q, got %q", field, want, got),
	)
}

// NewInvalidIDError builds a malformed-ID error naming the offending field.
func NewInvalidIDError(field string) AppError {
	return ErrInvalidID.WithDetails(fmt.Sprintf("%s is not a valid id", field))
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return pkgerrors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
