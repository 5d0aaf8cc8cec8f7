package errors

import (
	stderrors "errors"
	"fmt"
	"maps"
)

// PlatformError is an error annotated with an ErrorCode, a message and
// optional key/value context. It may wrap an underlying cause.
type PlatformError struct {
	// Code classifies the failure.
	Code ErrorCode

	// Message is a human readable description.
	Message string

	// Context carries structured details such as paths or branch names.
	Context map[string]interface{}

	// Cause is the wrapped error, if any.
	Cause error
}

// Error implements the error interface.
func (e *PlatformError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped cause so errors.Is and errors.As see through it.
func (e *PlatformError) Unwrap() error {
	return e.Cause
}

// New creates a PlatformError with the given code and message.
func New(code ErrorCode, message string) error {
	return &PlatformError{Code: code, Message: message}
}

// Newf creates a PlatformError with a formatted message.
func Newf(code ErrorCode, format string, args ...interface{}) error {
	return &PlatformError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// NewWithContext creates a PlatformError carrying structured context.
func NewWithContext(code ErrorCode, message string, ctx map[string]interface{}) error {
	return &PlatformError{Code: code, Message: message, Context: maps.Clone(ctx)}
}

// Wrap annotates err with a code and message. It returns nil if err is nil.
func Wrap(err error, code ErrorCode, message string) error {
	if err == nil {
		return nil
	}
	return &PlatformError{Code: code, Message: message, Cause: err}
}

// WrapWithContext annotates err with a code, message and structured context.
// It returns nil if err is nil.
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) error {
	if err == nil {
		return nil
	}
	return &PlatformError{Code: code, Message: message, Context: maps.Clone(ctx), Cause: err}
}

// GetCode returns the code of the outermost PlatformError in err's chain,
// or CodeUnknown if there is none.
func GetCode(err error) ErrorCode {
	var pe *PlatformError
	if stderrors.As(err, &pe) {
		return pe.Code
	}
	return CodeUnknown
}

// HasCode reports whether any PlatformError in err's chain carries code.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		var pe *PlatformError
		if !stderrors.As(err, &pe) {
			return false
		}
		if pe.Code == code {
			return true
		}
		err = pe.Cause
	}
	return false
}

// GetContext returns the context of the outermost PlatformError in err's chain.
func GetContext(err error) map[string]interface{} {
	var pe *PlatformError
	if stderrors.As(err, &pe) {
		return pe.Context
	}
	return nil
}

// Is is a passthrough to the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As is a passthrough to the standard library errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}
