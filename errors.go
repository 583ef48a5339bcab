package quickserve

import (
	"errors"
	"fmt"
	"net/http"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrNotFound is returned when no route matches a request
	ErrNotFound = errors.New("not found")
	// ErrInternal is returned when an internal error occurs
	ErrInternal = errors.New("internal error")
	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")
	// ErrPayloadTooLarge is returned when a request body exceeds the configured limit
	ErrPayloadTooLarge = errors.New("payload too large")
)

// Client-facing messages carried by Error values.
const (
	MsgNotFound        = "Not Found"
	MsgInternal        = "Internal Server Error"
	MsgNameRequired    = "Name is required"
	MsgInvalidID       = "Invalid id"
	MsgInvalidBody     = "Invalid request body"
	MsgPayloadTooLarge = "Payload Too Large"
)

// Error is a failure to be surfaced to a client. It carries the HTTP status,
// a client-safe message and the stack captured where it was constructed.
//
// Error values are immutable once built; use NewError or one of the helpers.
type Error struct {
	status  int
	message string
	cause   error
	stack   error
}

// NewError builds an Error with the given status and message.
func NewError(status int, message string) *Error {
	return &Error{
		status:  status,
		message: message,
		stack:   pkgerrors.New(message),
	}
}

// WrapError builds an Error that keeps cause for logging and errors.Is/As.
// The cause is never shown to clients.
func WrapError(status int, message string, cause error) *Error {
	if cause == nil {
		return NewError(status, message)
	}
	return &Error{
		status:  status,
		message: message,
		cause:   cause,
		stack:   pkgerrors.WithStack(cause),
	}
}

// BadRequest returns a 400 Error with message.
func BadRequest(message string) *Error {
	return NewError(http.StatusBadRequest, message)
}

// NotFound returns the 404 Error used for unmatched requests.
func NotFound() *Error {
	return NewError(http.StatusNotFound, MsgNotFound)
}

// Internal wraps an unexpected failure as a 500 Error.
func Internal(cause error) *Error {
	return WrapError(http.StatusInternalServerError, MsgInternal, cause)
}

// StatusCode returns the status the Error was built with, which may be zero.
func (e *Error) StatusCode() int {
	return e.status
}

// Message returns the client-facing message.
func (e *Error) Message() string {
	return e.message
}

// Trace returns the diagnostic stack trace recorded at construction.
func (e *Error) Trace() string {
	if e.stack == nil {
		return ""
	}
	return fmt.Sprintf("%+v", e.stack)
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.message
	}
	return e.message + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is reports whether the Error belongs to the class named by one of the
// package sentinels.
func (e *Error) Is(target error) bool {
	switch target {
	case ErrInvalidInput:
		return e.status == http.StatusBadRequest
	case ErrNotFound:
		return e.status == http.StatusNotFound
	case ErrPayloadTooLarge:
		return e.status == http.StatusRequestEntityTooLarge
	case ErrInternal:
		return e.status >= http.StatusInternalServerError
	default:
		return false
	}
}

// IsErrorStatus reports whether code is a 4xx or 5xx status.
func IsErrorStatus(code int) bool {
	return code >= 400 && code <= 599
}
