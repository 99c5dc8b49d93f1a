package errors

import (
	"net/http"

	"lumera/internal/errors"
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

// Predefined error types
var (
	// Identity-related errors. Auth failures deliberately carry fixed
	// messages with no provider detail.
	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Incorrect email or password",
		"",
	)

	ErrEmailInUse = NewBaseError(
		http.StatusConflict,
		"EMAIL_IN_USE",
		"This email is already registered",
		"",
	)

	ErrLoginRequired = NewBaseError(
		http.StatusUnauthorized,
		"LOGIN_REQUIRED",
		"Please sign in to continue",
		"/login",
	)

	ErrSignOutFailed = NewBaseError(
		http.StatusInternalServerError,
		"SIGN_OUT_FAILED",
		"Could not sign out",
		"",
	)

	// Catalog-related errors
	ErrProductNotFound = NewBaseError(
		http.StatusNotFound,
		"PRODUCT_NOT_FOUND",
		"Product not found",
		"",
	)

	ErrCategoryNotFound = NewBaseError(
		http.StatusNotFound,
		"CATEGORY_NOT_FOUND",
		"Category not found",
		"",
	)

	ErrProductSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"PRODUCT_SAVE_FAILED",
		"Upload failed",
		"",
	)

	ErrCategorySaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"CATEGORY_SAVE_FAILED",
		"Could not save category",
		"",
	)

	ErrContentSaveFailed = NewBaseError(
		http.StatusInternalServerError,
		"CONTENT_SAVE_FAILED",
		"Could not save homepage content",
		"",
	)

	// Importer errors. The importer surfaces a single generic failure;
	// row-level attribution is intentionally absent.
	ErrImportFileRequired = NewBaseError(
		http.StatusBadRequest,
		"IMPORT_FILE_REQUIRED",
		"CSV required",
		"",
	)

	ErrImportFailed = NewBaseError(
		http.StatusInternalServerError,
		"IMPORT_FAILED",
		"Import failed",
		"",
	)

	// Media errors
	ErrUploadFailed = NewBaseError(
		http.StatusBadGateway,
		"UPLOAD_FAILED",
		"Upload failed",
		"",
	)

	ErrUploadFileRequired = NewBaseError(
		http.StatusBadRequest,
		"UPLOAD_FILE_REQUIRED",
		"File is required",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"Internal server error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"Resource not found",
		"",
	)

	ErrConflict = NewBaseError(
		http.StatusConflict,
		"CONFLICT",
		"Resource conflict",
		"",
	)
)

// StoreExecuteError represents a document store execution error, implementing
// the AppError interface
type StoreExecuteError struct {
	err     error
	details string
}

// NewStoreExecuteError creates a store-related error
func NewStoreExecuteError(err error, details string) AppError {
	return &StoreExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *StoreExecuteError) Error() string {
	return errors.Wrap(e.err, "document store execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *StoreExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *StoreExecuteError) ErrorCode() string {
	return "STORE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *StoreExecuteError) Message() string {
	return "Document store execution failed"
}

// Details returns detailed error information
func (e *StoreExecuteError) Details() string {
	return e.details
}
