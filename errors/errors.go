package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetails merges the provided details into the error and returns the receiver.
func (e *AppError) WithDetails(details map[string]any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// --- Common Error Constructors ---

// InvalidArgument creates a new AppError for a rejected constructor argument.
func InvalidArgument(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid argument: %s", reason),
		Details: details,
	}
}

// UnwrapNone creates a new AppError for a checked accessor called on an empty Option.
func UnwrapNone(method string) *AppError {
	return &AppError{
		Code: ErrCodeUnwrapNone, Message: fmt.Sprintf("call `%s` on a `None` value", method),
		Details: map[string]any{"method": method},
	}
}

// Expect creates a new AppError carrying a caller-supplied message.
func Expect(code ErrorCode, msg string) *AppError {
	return &AppError{Code: code, Message: msg}
}

// UnwrapVariant creates a new AppError for a checked accessor called on the wrong variant.
// The payload of the unexpected variant is kept in Details["value"].
func UnwrapVariant(code ErrorCode, method string, value any) *AppError {
	return &AppError{
		Code: code, Message: fmt.Sprintf("call `%s` on an unexpected variant", method),
		Details: map[string]any{"method": method, "value": value},
	}
}

// Recovered converts a recovered panic value into an error.
// Values that already are errors are returned unchanged.
func Recovered(v any) error {
	if err, ok := v.(error); ok {
		return err
	}
	return &AppError{
		Code: ErrCodePanicRecovered, Message: fmt.Sprintf("recovered panic: %v", v),
		Details: map[string]any{"value": v},
	}
}

// ConfigInvalid creates a new AppError for settings that failed validation.
func ConfigInvalid(reason string) *AppError {
	return &AppError{Code: ErrCodeConfigInvalid, Message: reason}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is reports whether err is, or wraps, an AppError with the given code.
func Is(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}
