package core

import "errors"

var (
	// ErrInvalidArgument reports a caller error: a missing descriptor, a bad
	// parameter, mismatched buffer lengths or a degenerate sample rate.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrCancelled reports that a chunked operation observed a cancellation
	// request at a chunk boundary.
	ErrCancelled = errors.New("operation cancelled")
)
