// Package errors defines the coded errors returned by eventtz packages.
package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrorCode represents a specific error type for time normalization.
type ErrorCode string

const (
	// ErrCodeInvalidTimezone indicates a timezone name that does not resolve in the database.
	ErrCodeInvalidTimezone ErrorCode = "INVALID_TIMEZONE"
	// ErrCodeInstantiationDisabled indicates a Moment built without a normalizing factory.
	ErrCodeInstantiationDisabled ErrorCode = "INSTANTIATION_DISABLED"
	// ErrCodeTypeMismatch indicates an input shape the normalizer does not understand.
	ErrCodeTypeMismatch ErrorCode = "TYPE_MISMATCH"
	// ErrCodeInvalidArgument indicates invalid input parameters.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeParseFailed indicates a datetime string no supported layout accepts.
	ErrCodeParseFailed ErrorCode = "PARSE_FAILED"
)

// TimeError represents a structured error for time operations.
type TimeError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *TimeError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("[%s]", e.Code)
	}
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause.
func (e *TimeError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a TimeError carrying the same code.
// This lets sentinel values created by Sentinel match any error of their kind.
func (e *TimeError) Is(target error) bool {
	t, ok := target.(*TimeError)
	if !ok {
		return false
	}
	return t.Code == e.Code
}

// WithContext adds context to the error.
func (e *TimeError) WithContext(key string, value interface{}) *TimeError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// GetCode returns the error code.
func (e *TimeError) GetCode() ErrorCode {
	return e.Code
}

// Sentinel returns a message-less error usable as an errors.Is target for code.
func Sentinel(code ErrorCode) *TimeError {
	return &TimeError{Code: code}
}

// Convenience constructors for common error types.

// InvalidTimezone creates an invalid timezone error.
func InvalidTimezone(name string, cause error) *TimeError {
	e := &TimeError{
		Code:    ErrCodeInvalidTimezone,
		Message: fmt.Sprintf("invalid timezone %q", name),
		Cause:   cause,
	}
	return e.WithContext("timezone", name)
}

// InstantiationDisabled creates an error for bare Moment construction.
func InstantiationDisabled(msg string) *TimeError {
	return &TimeError{Code: ErrCodeInstantiationDisabled, Message: msg}
}

// TypeMismatch creates an error for an unsupported input value.
func TypeMismatch(v interface{}) *TimeError {
	e := &TimeError{
		Code:    ErrCodeTypeMismatch,
		Message: fmt.Sprintf("unsupported datetime input of type %T", v),
	}
	return e.WithContext("type", fmt.Sprintf("%T", v))
}

// InvalidArgument creates an invalid argument error.
func InvalidArgument(msg string) *TimeError {
	return &TimeError{Code: ErrCodeInvalidArgument, Message: msg}
}

// ParseFailed creates a parse error wrapping the last layout failure.
func ParseFailed(input string, cause error) *TimeError {
	e := &TimeError{
		Code:    ErrCodeParseFailed,
		Message: fmt.Sprintf("unable to parse datetime %q", input),
		Cause:   cause,
	}
	return e.WithContext("input", input)
}

// Wrap wraps an existing error with additional context.
func Wrap(cause error, code ErrorCode, msg string) *TimeError {
	return &TimeError{Code: code, Message: msg, Cause: cause}
}

// IsCode checks if an error, or any error it wraps, carries a specific code.
func IsCode(err error, code ErrorCode) bool {
	var te *TimeError
	if pkgerrors.As(err, &te) {
		return te.Code == code
	}
	return false
}

// GetCodeFromError extracts the error code from any error.
// Returns the provided default code if the error is not a TimeError.
func GetCodeFromError(err error, defaultCode ErrorCode) ErrorCode {
	var te *TimeError
	if pkgerrors.As(err, &te) {
		return te.Code
	}
	return defaultCode
}
