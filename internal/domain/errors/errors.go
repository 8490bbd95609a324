package errors

import (
	"net/http"

	"authsvc/internal/errors"
)

// Kind classifies a failure for callers that must not depend on messages.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindConflict       Kind = "conflict"
	KindAuthentication Kind = "authentication"
	KindNotFound       Kind = "not_found"
	KindStorage        Kind = "storage"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	Kind() Kind        // Taxonomy class
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-facing message
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		kind:      kind,
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

func (e *BaseError) Kind() Kind {
	return e.kind
}

func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

func (e *BaseError) Message() string {
	return e.message
}

// Predefined error types
var (
	// Validation
	ErrMissingFields = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"MISSING_REQUIRED_FIELDS",
		"Missing required fields",
	)

	ErrMissingCredentials = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"MISSING_CREDENTIALS",
		"Missing email or password",
	)

	ErrInvalidInput = NewBaseError(
		KindValidation,
		http.StatusBadRequest,
		"INVALID_INPUT",
		"Invalid input",
	)

	// Conflict. Reported as 400 to keep the signup contract stable for existing clients.
	ErrUserAlreadyExists = NewBaseError(
		KindConflict,
		http.StatusBadRequest,
		"USER_ALREADY_EXISTS",
		"User already exists",
	)

	// Authentication
	ErrInvalidCredentials = NewBaseError(
		KindAuthentication,
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
	)

	ErrInvalidToken = NewBaseError(
		KindAuthentication,
		http.StatusUnauthorized,
		"INVALID_TOKEN",
		"Invalid token",
	)

	ErrUnauthorized = NewBaseError(
		KindAuthentication,
		http.StatusUnauthorized,
		"UNAUTHORIZED",
		"Unauthorized access",
	)

	// Not found
	ErrUserNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"USER_NOT_FOUND",
		"User not found",
	)

	ErrRouteNotFound = NewBaseError(
		KindNotFound,
		http.StatusNotFound,
		"NOT_FOUND",
		"Not found",
	)
)

// StorageError represents a credential or session store fault, implementing the AppError interface.
// Its message never carries the underlying cause.
type StorageError struct {
	err       error
	operation string
	transient bool
}

// NewStorageError creates a store-related error
func NewStorageError(err error, operation string) *StorageError {
	return &StorageError{
		err:       err,
		operation: operation,
	}
}

// NewTransientStorageError creates a store-related error that is safe to retry for idempotent reads.
func NewTransientStorageError(err error, operation string) *StorageError {
	return &StorageError{
		err:       err,
		operation: operation,
		transient: true,
	}
}

// Error implements the error interface
func (e *StorageError) Error() string {
	return errors.Wrapf(e.err, "storage failure: %s", e.operation).Error()
}

// Unwrap exposes the driver error to errors.Is/As.
func (e *StorageError) Unwrap() error {
	return e.err
}

// Transient reports whether the fault is likely to clear on retry.
func (e *StorageError) Transient() bool {
	return e.transient
}

func (e *StorageError) Operation() string {
	return e.operation
}

func (e *StorageError) Kind() Kind {
	return KindStorage
}

func (e *StorageError) HTTPCode() int {
	return http.StatusInternalServerError
}

func (e *StorageError) ErrorCode() string {
	return "STORAGE_ERROR"
}

func (e *StorageError) Message() string {
	return "An error occurred"
}

// KindOf returns the taxonomy class of err. Unclassified errors are storage faults.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindStorage
}

// IsTransient reports whether err carries a transient StorageError.
func IsTransient(err error) bool {
	var storageErr *StorageError
	if errors.As(err, &storageErr) {
		return storageErr.Transient()
	}

	return false
}
