package http

import "errors"

var (
	// ErrAlreadyStarted is returned by Server.Start when the server is already listening.
	ErrAlreadyStarted = errors.New("server already started")
	// ErrInvalidPort is returned by Server.Start for ports outside 0-65535.
	ErrInvalidPort = errors.New("invalid port")
)
