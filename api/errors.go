// Package api
// Author: momentics <momentics@gmail.com>
//
// Common error types for the staticbuf library.

package api

import "fmt"

// Sentinel errors used across the library.
var (
	ErrCapacityExceeded = fmt.Errorf("buffer capacity exceeded")
	ErrPoolExhausted    = fmt.Errorf("buffer pool exhausted")
	ErrInvalidArgument  = fmt.Errorf("invalid argument")
)

// CapacityError reports a write that did not fit in a buffer's remaining
// capacity. The buffer is guaranteed untouched by the failed call, so the
// caller may flush, truncate or reject and retry.
type CapacityError struct {
	Requested int // bytes the call tried to add
	Remaining int // bytes that were actually available
}

// Error implements the error interface.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("buffer capacity exceeded: need %d bytes, %d remaining",
		e.Requested, e.Remaining)
}

// Unwrap lets errors.Is match against ErrCapacityExceeded.
func (e *CapacityError) Unwrap() error { return ErrCapacityExceeded }
