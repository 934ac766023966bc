// Package errors defines the application-level error taxonomy. Business
// errors are typed values carrying an HTTP status and a stable business
// code; the delivery layer maps them 1:1 to responses. Infrastructure
// errors are logged with full context and surfaced generically.
package errors

import (
	"net/http"

	"tracker/internal/errors"
)

// AppError defines the interface for application-specific errors.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message.
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information.
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information.
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
	// Registration and lookup
	ErrUsernameTaken = NewBaseError(
		http.StatusConflict,
		"USERNAME_TAKEN",
		"this username is already registered",
		"",
	)

	ErrQuestNotFound = NewBaseError(
		http.StatusNotFound,
		"QUEST_NOT_FOUND",
		"quest not found",
		"",
	)

	// Authentication. Lookup miss and password mismatch share one error so
	// callers cannot enumerate usernames.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"invalid username or password",
		"",
	)

	ErrTokenMalformed = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_MALFORMED",
		"token could not be parsed or verified",
		"",
	)

	ErrTokenExpired = NewBaseError(
		http.StatusUnauthorized,
		"TOKEN_EXPIRED",
		"token has expired",
		"",
	)

	ErrWrongAudience = NewBaseError(
		http.StatusUnauthorized,
		"WRONG_AUDIENCE",
		"token was issued for a different principal kind",
		"",
	)

	// Authorization
	ErrQuestOwnership = NewBaseError(
		http.StatusForbidden,
		"QUEST_OWNERSHIP",
		"you do not own this quest",
		"",
	)

	// Quest lifecycle
	ErrInvalidTransition = NewBaseError(
		http.StatusConflict,
		"INVALID_STATUS_TRANSITION",
		"illegal quest status change",
		"",
	)

	ErrCommanderReference = NewBaseError(
		http.StatusUnprocessableEntity,
		"GUILD_COMMANDER_REFERENCE",
		"owning guild commander does not exist",
		"",
	)

	// Validation
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// Infrastructure
	ErrPoolExhausted = NewBaseError(
		http.StatusServiceUnavailable,
		"POOL_EXHAUSTED",
		"storage is busy, try again shortly",
		"",
	)

	ErrStoreUnavailable = NewBaseError(
		http.StatusServiceUnavailable,
		"STORE_UNAVAILABLE",
		"storage is temporarily unavailable",
		"",
	)

	ErrInternal = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)
)

// NewStoreError wraps an infrastructure failure from the relational store.
// The driver error stays in the chain for logging; the outward shape is the
// generic STORE_UNAVAILABLE error so no store detail leaks to callers.
func NewStoreError(err error, message string) error {
	return errors.Wrapf(ErrStoreUnavailable, "%s: %v", message, err)
}
