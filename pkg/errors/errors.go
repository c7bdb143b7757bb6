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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// ErrConfigurationAbsent means no usable template could be resolved.
	// It is raised before generation starts.
	ErrConfigurationAbsent ErrorCode = "CONFIGURATION_ABSENT"

	// Generation errors
	ErrTraversal       ErrorCode = "TRAVERSAL_FAILURE"
	ErrMaterialization ErrorCode = "MATERIALIZATION_FAILURE"
	ErrSeed            ErrorCode = "SEED_FAILURE"
	ErrInstallation    ErrorCode = "INSTALLATION_FAILURE"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
)

// MuffinError represents a structured error with code and details
type MuffinError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *MuffinError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *MuffinError) Unwrap() error {
	return e.Wrapped
}

// Is matches any MuffinError carrying the same code.
func (e *MuffinError) Is(target error) bool {
	var targetErr *MuffinError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new MuffinError with the given code and message
func New(code ErrorCode, message string) *MuffinError {
	return &MuffinError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new MuffinError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *MuffinError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with a MuffinError. A nil err yields nil.
func Wrap(err error, code ErrorCode, message string) *MuffinError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *MuffinError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithDetail adds a detail to the error
func (e *MuffinError) WithDetail(key string, value interface{}) *MuffinError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var muffinErr *MuffinError
	if errors.As(err, &muffinErr) {
		return muffinErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a MuffinError
func GetErrorCode(err error) ErrorCode {
	var muffinErr *MuffinError
	if errors.As(err, &muffinErr) {
		return muffinErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a MuffinError
func GetErrorDetails(err error) map[string]interface{} {
	var muffinErr *MuffinError
	if errors.As(err, &muffinErr) {
		return muffinErr.Details
	}
	return nil
}
