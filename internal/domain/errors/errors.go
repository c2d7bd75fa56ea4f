// Package errors defines the application error taxonomy for the tap engine.
package errors

import (
	"fmt"
	"net/http"
	"time"

	"tapgate/internal/errors"
	"tapgate/internal/util"
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

// Stable rejection and failure codes. Reader firmware branches on these,
// so they must never change spelling.
const (
	CodeDeviceNotFound    = "DEVICE_NOT_FOUND"
	CodeIdentityNotFound  = "IDENTITY_NOT_FOUND"
	CodeTooSoon           = "TOO_SOON"
	CodeLedgerUnavailable = "LEDGER_UNAVAILABLE"
)

// Predefined error types
var (
	ErrDeviceNotFound = NewBaseError(
		http.StatusNotFound,
		CodeDeviceNotFound,
		"reader device is not registered or inactive",
		"",
	)

	ErrIdentityNotFound = NewBaseError(
		http.StatusNotFound,
		CodeIdentityNotFound,
		"credential does not belong to an active student or teacher",
		"",
	)

	ErrTapNotFound = NewBaseError(
		http.StatusNotFound,
		"TAP_NOT_FOUND",
		"tap event not found",
		"",
	)

	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"request validation failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// TooSoonError rejects a tap that falls inside the debounce window.
// It carries the remaining wait so readers can display it.
type TooSoonError struct {
	Remaining time.Duration
}

// NewTooSoonError creates a debounce rejection carrying the remaining wait.
func NewTooSoonError(remaining time.Duration) *TooSoonError {
	return &TooSoonError{Remaining: remaining}
}

// Error implements the error interface
func (e *TooSoonError) Error() string {
	return e.Message()
}

// HTTPCode returns the HTTP status code
func (e *TooSoonError) HTTPCode() int {
	return http.StatusConflict
}

// ErrorCode returns the business error code
func (e *TooSoonError) ErrorCode() string {
	return CodeTooSoon
}

// Message returns the user-friendly error message
func (e *TooSoonError) Message() string {
	return fmt.Sprintf("already tapped recently, try again in %d minute(s)", util.CeilMinutes(e.Remaining))
}

// Details returns detailed error information
func (e *TooSoonError) Details() string {
	return fmt.Sprintf("remaining wait %s", util.FormatDuration(e.Remaining))
}

// LedgerUnavailableError represents a durability failure of the tap ledger.
// The caller must never report acceptance to the device when it sees this.
type LedgerUnavailableError struct {
	err     error
	details string
}

// NewLedgerUnavailableError creates a ledger-related error
func NewLedgerUnavailableError(err error, details string) AppError {
	return &LedgerUnavailableError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *LedgerUnavailableError) Error() string {
	return errors.Wrap(e.err, "tap ledger unavailable").Error()
}

// Unwrap exposes the underlying storage error.
func (e *LedgerUnavailableError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *LedgerUnavailableError) HTTPCode() int {
	return http.StatusServiceUnavailable
}

// ErrorCode returns the business error code
func (e *LedgerUnavailableError) ErrorCode() string {
	return CodeLedgerUnavailable
}

// Message returns the user-friendly error message
func (e *LedgerUnavailableError) Message() string {
	return "tap could not be recorded, please retry"
}

// Details returns detailed error information
func (e *LedgerUnavailableError) Details() string {
	return e.details
}
