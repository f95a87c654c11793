package httpserver

import "errors"

var (
	// ErrStart reports that the listener could not be started or exited
	// with a failure.
	ErrStart = errors.New("failed to start HTTP server")
	// ErrShutdown reports that graceful shutdown did not complete cleanly.
	ErrShutdown = errors.New("failed to shutdown HTTP server gracefully")
)
