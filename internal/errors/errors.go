// Package errors provides custom error types for the budget book core.
// All service-layer failures are surfaced as AppError values so callers can
// branch on a stable error code instead of matching message strings.
package errors

// AppError represents a structured application error with an error code,
// human-readable message, and optional wrapped internal error.
type AppError struct {
	Code     string `json:"code"`
	Message  string `json:"message"`
	Internal error  `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string { return e.Message }

// Unwrap returns the internal error for use with errors.Is/As.
func (e *AppError) Unwrap() error { return e.Internal }

// Wrap creates a new AppError with the same code/message but wraps an internal error.
func Wrap(sentinel *AppError, internal error) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  sentinel.Message,
		Internal: internal,
	}
}

// WithMessage creates a new AppError with a custom message.
func WithMessage(sentinel *AppError, message string) *AppError {
	return &AppError{
		Code:     sentinel.Code,
		Message:  message,
		Internal: sentinel.Internal,
	}
}

// General errors.
var (
	ErrInvalidInput = &AppError{Code: "INVALID_INPUT", Message: "Invalid input"}
	ErrNotFound     = &AppError{Code: "NOT_FOUND", Message: "Record not found"}

	// ErrStorage wraps failures of the underlying store. These propagate
	// unchanged to the caller; there is no retry.
	ErrStorage = &AppError{Code: "STORAGE_ERROR", Message: "Storage operation failed"}
)

// Entity lookup errors.
var (
	ErrUserNotFound    = &AppError{Code: "USER_NOT_FOUND", Message: "User not found"}
	ErrPeriodNotFound  = &AppError{Code: "PERIOD_NOT_FOUND", Message: "Budget period not found"}
	ErrExpenseNotFound = &AppError{Code: "EXPENSE_NOT_FOUND", Message: "Expense not found"}
)

// Reporting errors. Absence of data is never an error; only a malformed
// window (bad month label, zero date) produces INVALID_WINDOW.
var (
	ErrInvalidWindow = &AppError{Code: "INVALID_WINDOW", Message: "Invalid report window"}
)
