// Package apperror defines a centralized system for application-specific
// errors. Each error carries a type that maps onto an HTTP status code, so
// handlers and middleware can translate failures uniformly at the boundary.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType defines the category of an application error.
type ErrorType int

const (
	// UnknownError is for unspecified errors.
	UnknownError ErrorType = iota
	// DatabaseError represents an error originating from the database.
	DatabaseError
	// ConfigError represents an error related to application configuration.
	ConfigError
	// AuthError represents an authentication error (missing, invalid or
	// expired credential, or a vanished principal).
	AuthError
	// ForbiddenError represents an authorization error (valid identity,
	// insufficient role or ownership).
	ForbiddenError
	// NotFoundError represents a resource not found error.
	NotFoundError
	// ValidationError represents an input validation error.
	ValidationError
	// BadRequestError represents a generic bad request.
	BadRequestError
	// ConflictError represents a uniqueness violation, e.g. a duplicate
	// email on registration.
	ConflictError
	// InternalError represents a generic internal server error.
	InternalError
)

// AppError is the application's error type. It satisfies the standard error
// interface and supports wrapping an underlying error for diagnostics.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error // Underlying error, never exposed to API clients
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error, allowing errors.Is and errors.As to
// inspect the chain.
func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode returns the HTTP status code appropriate for the error type.
func (e *AppError) StatusCode() int {
	switch e.Type {
	case AuthError:
		return http.StatusUnauthorized
	case ForbiddenError:
		return http.StatusForbidden
	case NotFoundError:
		return http.StatusNotFound
	case ValidationError, BadRequestError:
		return http.StatusBadRequest
	case ConflictError:
		// Duplicate-email conflicts answer with 400, not 409. Existing
		// clients key off that status, so it stays.
		return http.StatusBadRequest
	case DatabaseError, ConfigError, InternalError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// NewAppError creates a new AppError. Prefer the typed constructors below.
func NewAppError(errType ErrorType, message string, underlying error) *AppError {
	return &AppError{Type: errType, Message: message, Err: underlying}
}

// NewDatabaseError creates a new DatabaseError.
func NewDatabaseError(message string, underlying error) *AppError {
	return NewAppError(DatabaseError, message, underlying)
}

// NewConfigError creates a new ConfigError.
func NewConfigError(message string, underlying error) *AppError {
	return NewAppError(ConfigError, message, underlying)
}

// NewAuthError creates a new AuthError (authentication issues, 401).
func NewAuthError(message string, underlying error) *AppError {
	return NewAppError(AuthError, message, underlying)
}

// NewForbiddenError creates a new ForbiddenError (authorization issues, 403).
func NewForbiddenError(message string, underlying error) *AppError {
	return NewAppError(ForbiddenError, message, underlying)
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(message string, underlying error) *AppError {
	return NewAppError(NotFoundError, message, underlying)
}

// NewValidationError creates a new ValidationError.
func NewValidationError(message string, underlying error) *AppError {
	return NewAppError(ValidationError, message, underlying)
}

// NewBadRequestError creates a new BadRequestError.
func NewBadRequestError(message string, underlying error) *AppError {
	return NewAppError(BadRequestError, message, underlying)
}

// NewConflictError creates a new ConflictError.
func NewConflictError(message string, underlying error) *AppError {
	return NewAppError(ConflictError, message, underlying)
}

// NewInternalError creates a new InternalError.
func NewInternalError(message string, underlying error) *AppError {
	return NewAppError(InternalError, message, underlying)
}

// FromError attempts to convert a generic error to an *AppError.
// It returns the *AppError and true if successful, otherwise nil and false.
func FromError(err error) (*AppError, bool) {
	if err == nil {
		return nil, false
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound checks if an error is a NotFound error.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == NotFoundError
}

// IsAuthError checks if an error is an AuthError (authentication problem).
func IsAuthError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == AuthError
}

// IsForbidden checks if an error is a ForbiddenError (authorization problem).
func IsForbidden(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ForbiddenError
}

// IsValidationError checks if an error is a ValidationError.
func IsValidationError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ValidationError
}

// IsConflict checks if an error is a ConflictError.
func IsConflict(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && appErr.Type == ConflictError
}
