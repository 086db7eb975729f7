package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error so callers can decide how to surface it
type Code string

const (
	// CodeUnknown indicates an unknown error
	CodeUnknown Code = "unknown"

	// CodeValidation indicates a rejected operation that left state unchanged
	CodeValidation Code = "validation"

	// CodeInvalidArgument indicates the caller passed malformed input
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates no match (or record) exists for the key
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates the slot is already taken
	CodeAlreadyExists Code = "already_exists"

	// CodePermissionDenied indicates the caller may not run the operation
	CodePermissionDenied Code = "permission_denied"

	// CodeInternal indicates a dependency or storage failure
	CodeInternal Code = "internal"

	// CodeInvariant indicates a broken internal precondition (a bug, not user error)
	CodeInvariant Code = "invariant"
)

// Error is an application error with code and metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, keeping the code of a wrapped *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var duelErr *Error
	if errors.As(err, &duelErr) {
		return &Error{
			Code:    duelErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(duelErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// Validation creates a validation error
func Validation(message string) *Error {
	return New(CodeValidation, message)
}

// Validationf creates a formatted validation error
func Validationf(format string, args ...any) *Error {
	return Newf(CodeValidation, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// NotFound creates a not found error
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// PermissionDenied creates a permission denied error
func PermissionDenied(message string) *Error {
	return New(CodePermissionDenied, message)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// Invariantf creates a formatted invariant violation
func Invariantf(format string, args ...any) *Error {
	return Newf(CodeInvariant, format, args...)
}

// Is checks if the error carries a specific code
func Is(err error, code Code) bool {
	var duelErr *Error
	if errors.As(err, &duelErr) {
		return duelErr.Code == code
	}
	return false
}

// IsValidation checks if the error is a validation error
func IsValidation(err error) bool {
	return Is(err, CodeValidation)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsPermissionDenied checks if the error is a permission denied error
func IsPermissionDenied(err error) bool {
	return Is(err, CodePermissionDenied)
}

// IsInvariant checks if the error is an invariant violation
func IsInvariant(err error) bool {
	return Is(err, CodeInvariant)
}

// IsUserFacing reports whether the error message is safe and useful to show the caller
func IsUserFacing(err error) bool {
	switch GetCode(err) {
	case CodeValidation, CodeInvalidArgument, CodeNotFound, CodeAlreadyExists, CodePermissionDenied:
		return true
	}
	return false
}

// GetCode returns the error code
func GetCode(err error) Code {
	var duelErr *Error
	if errors.As(err, &duelErr) {
		return duelErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var duelErr *Error
	if errors.As(err, &duelErr) {
		return duelErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
