// Package api
// Author: momentics
//
// Fixed-slot buffer leasing for allocation-free data staging.
//
// A pool owns one static storage region split into equally sized slots.
// Checking out a slot yields a Buffer: an exclusive, revocable lease over
// that slot's bytes. Nothing in this contract allocates after pool
// construction.

package api

// Buffer is an exclusive lease over one fixed-capacity pool slot.
//
// A Buffer is single-owner: it may be handed between goroutines, but must
// not be used by two goroutines at once. After Release the lease is over
// and the Buffer must not be touched again.
type Buffer interface {
	// Bytes returns the written prefix of the slot, zero-copy.
	// The view is valid only until Release.
	Bytes() []byte

	// Append copies p after the current length. When p does not fit in the
	// remaining capacity, Append fails with a *CapacityError and leaves the
	// buffer completely unchanged. Appending an empty slice always succeeds.
	Append(p []byte) error

	// AppendByte appends a single byte, failing with a *CapacityError when
	// the buffer is full.
	AppendByte(c byte) error

	// Pop removes and returns the last byte; ok is false on an empty buffer.
	Pop() (c byte, ok bool)

	// Resize sets the length to n. Growing zero-fills the newly exposed
	// bytes; shrinking is an O(1) length cut. A size beyond capacity fails
	// with a *CapacityError and changes nothing.
	Resize(n int) error

	// Clear resets length to zero without touching storage.
	Clear()

	// Len returns the number of valid bytes.
	Len() int

	// Cap returns the slot capacity in bytes, fixed for the pool's lifetime.
	Cap() int

	// Remaining returns Cap()-Len().
	Remaining() int

	// IsEmpty reports whether Len() is zero.
	IsEmpty() bool

	// Copy returns a deep copy of the valid prefix as a standalone []byte.
	// This is the one operation here that allocates.
	Copy() []byte

	// Index returns the slot number this lease is bound to.
	Index() int

	// Release returns the slot to the pool. Exactly one release takes
	// effect per checkout; further calls are no-ops. After Release the
	// buffer must not be used.
	Release()
}

// BufferPool hands out slot leases from static storage.
type BufferPool interface {
	// Get checks out a free slot with length reset to zero. ok is false
	// when every slot is taken; exhaustion is an expected condition, not a
	// fault, and Get never blocks waiting for a slot.
	Get() (Buffer, bool)

	// Stats exposes checkout accounting for observability.
	Stats() PoolStats
}

// PoolStats aggregates pool checkout/release counters.
type PoolStats struct {
	Gets     int64 // successful checkouts
	Releases int64 // slots returned
	Failed   int64 // checkouts rejected on exhaustion
	InUse    int64 // currently held leases
	Free     int64 // currently free slots
	Slots    int64 // total slot count
	SlotCap  int64 // capacity of each slot in bytes
}
