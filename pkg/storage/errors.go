package storage

import "errors"

// Common errors returned by storage implementations.
var (
	// ErrClosed is returned when a sink is used after Close or Abort.
	ErrClosed = errors.New("sink closed")
)
