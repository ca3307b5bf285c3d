package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Configuration errors
	ErrConfigNotFound   ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigUnreadable ErrorCode = "CONFIG_UNREADABLE"
	ErrConfigMalformed  ErrorCode = "CONFIG_MALFORMED"

	// Profile-entry validation errors
	ErrUnknownMutationKind ErrorCode = "UNKNOWN_MUTATION_KIND"
	ErrUnknownCommand      ErrorCode = "UNKNOWN_COMMAND"
	ErrMissingField        ErrorCode = "MISSING_FIELD"

	// Compilation errors
	ErrMalformedPlaceholder ErrorCode = "MALFORMED_PLACEHOLDER"

	// Output errors
	ErrOutputWriteFailed ErrorCode = "OUTPUT_WRITE_FAILED"
)

// PortenvError represents a structured error with code and details
type PortenvError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *PortenvError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *PortenvError) Unwrap() error {
	return e.Wrapped
}

// Is matches errors by code so callers can use errors.Is against sentinels
func (e *PortenvError) Is(target error) bool {
	var targetErr *PortenvError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new PortenvError with the given code and message
func New(code ErrorCode, message string) *PortenvError {
	return &PortenvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new PortenvError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *PortenvError {
	return &PortenvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a PortenvError
func Wrap(err error, code ErrorCode, message string) *PortenvError {
	if err == nil {
		return nil
	}
	return &PortenvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *PortenvError {
	if err == nil {
		return nil
	}
	return &PortenvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *PortenvError) WithDetail(key string, value interface{}) *PortenvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var perr *PortenvError
	if errors.As(err, &perr) {
		return perr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a PortenvError
func GetErrorCode(err error) ErrorCode {
	var perr *PortenvError
	if errors.As(err, &perr) {
		return perr.Code
	}
	return ErrUnknown
}
