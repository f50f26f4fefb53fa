// Package errors provides custom error types for the SpendTrack API.
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

// Client input errors. Detected synchronously at the request boundary;
// the record is never created.
var (
	ErrMalformedRequest   = &AppError{Code: "MALFORMED_REQUEST", Message: "Malformed request body", StatusCode: http.StatusBadRequest}
	ErrInvalidAmount      = &AppError{Code: "INVALID_AMOUNT", Message: "Valid positive amount required", StatusCode: http.StatusBadRequest}
	ErrInvalidDescription = &AppError{Code: "INVALID_DESCRIPTION", Message: "Description must be at least 3 characters long", StatusCode: http.StatusBadRequest}
	ErrMissingField       = &AppError{Code: "MISSING_FIELD", Message: "Missing required fields (category/date)", StatusCode: http.StatusBadRequest}
	ErrInvalidCategory    = &AppError{Code: "INVALID_CATEGORY", Message: "Category is not a recognized expense category", StatusCode: http.StatusBadRequest}
	ErrInvalidDate        = &AppError{Code: "INVALID_DATE", Message: "Date must be in YYYY-MM-DD format", StatusCode: http.StatusBadRequest}
	ErrMissingIdentifier  = &AppError{Code: "MISSING_IDENTIFIER", Message: "No ID provided", StatusCode: http.StatusBadRequest}
)

// Conflict: the payload was well-formed but resubmitted inside the dedup
// window. Callers should treat this as "already applied", not retry.
var (
	ErrDuplicateSubmission = &AppError{Code: "DUPLICATE_SUBMISSION", Message: "Duplicate submission detected. Please wait a few seconds before retrying.", StatusCode: http.StatusConflict}
)

// Not-found and server errors. A delete of an already-absent expense is a
// normal, reportable outcome rather than a fault.
var (
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found", StatusCode: http.StatusNotFound}
	ErrInternalServer  = &AppError{Code: "INTERNAL_ERROR", Message: "An internal error occurred", StatusCode: http.StatusInternalServerError}
)
