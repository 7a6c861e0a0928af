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
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrPermission    ErrorCode = "PERMISSION"
	ErrAborted       ErrorCode = "ABORTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Template package errors
	ErrTemplateNotFound   ErrorCode = "TEMPLATE_NOT_FOUND"
	ErrDescriptorMissing  ErrorCode = "DESCRIPTOR_MISSING"
	ErrDescriptorInvalid  ErrorCode = "DESCRIPTOR_INVALID"
	ErrDuplicateTemplate  ErrorCode = "DUPLICATE_TEMPLATE"
	ErrMissingDependency  ErrorCode = "MISSING_DEPENDENCY"
	ErrCyclicDependency   ErrorCode = "CYCLIC_DEPENDENCY"
	ErrTagInvalid         ErrorCode = "TAG_INVALID"
	ErrMissingConfigValue ErrorCode = "MISSING_CONFIG_VALUE"

	// Injection errors
	ErrInjectionInvalid ErrorCode = "INJECTION_INVALID"

	// Hook errors
	ErrHookFailed ErrorCode = "HOOK_FAILED"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"
)

// BoilerGenError represents a structured error with code and details
type BoilerGenError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BoilerGenError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BoilerGenError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BoilerGenError) Is(target error) bool {
	var targetErr *BoilerGenError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BoilerGenError with the given code and message
func New(code ErrorCode, message string) *BoilerGenError {
	return &BoilerGenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BoilerGenError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BoilerGenError {
	return &BoilerGenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BoilerGenError
func Wrap(err error, code ErrorCode, message string) *BoilerGenError {
	if err == nil {
		return nil
	}
	return &BoilerGenError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BoilerGenError {
	if err == nil {
		return nil
	}
	return &BoilerGenError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BoilerGenError) WithDetail(key string, value interface{}) *BoilerGenError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var genErr *BoilerGenError
	if errors.As(err, &genErr) {
		return genErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BoilerGenError
func GetErrorCode(err error) ErrorCode {
	var genErr *BoilerGenError
	if errors.As(err, &genErr) {
		return genErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BoilerGenError
func GetErrorDetails(err error) map[string]interface{} {
	var genErr *BoilerGenError
	if errors.As(err, &genErr) {
		return genErr.Details
	}
	return nil
}
