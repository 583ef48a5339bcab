package clientcli

import (
	"errors"
	"strconv"
)

// Errors for configuration and input validation.
var (
	ErrConfigRequired = errors.New("config is required")
	ErrInvalidURL     = errors.New("endpoint must be an http or https URL")
	ErrEmptyID        = errors.New("id is required")
)

// APIError is a non-success response from the server. Message is the
// server's message when the body was a JSON error, otherwise the raw body.
type APIError struct {
	StatusCode int
	Message    string
	Trace      string
}

func (e *APIError) Error() string {
	return "server error: " + strconv.Itoa(e.StatusCode) + " - " + e.Message
}

// Is reports whether target is an *APIError with the same StatusCode.
func (e *APIError) Is(target error) bool {
	var t *APIError
	if !errors.As(target, &t) {
		return false
	}
	return t.StatusCode == e.StatusCode
}
