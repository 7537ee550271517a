// File: pool/buffer.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Buffer handle over one pool slot. A handle is single-owner: it may be
// handed between goroutines but must not be used by two at once.

package pool

import (
	"fmt"

	"github.com/momentics/staticbuf/api"
)

// Buffer is an exclusive lease over one slot of a Pool. Handles come from
// Pool.Get; the zero value is not usable. Every write is bounds-checked
// against the slot capacity and fails whole, never partially.
type Buffer struct {
	pool     *Pool
	slot     int
	data     []byte // full-capacity view of the slot storage
	length   int
	released bool
}

// Bytes returns the written prefix of the slot, zero-copy. Bytes past the
// current length are stale garbage from this lease's own past writes and
// are never exposed.
func (b *Buffer) Bytes() []byte { return b.data[:b.length] }

// Append copies p after the current length. When p does not fit, Append
// fails with a *api.CapacityError and the buffer is left untouched.
// An empty p always succeeds, even on a full buffer.
func (b *Buffer) Append(p []byte) error {
	if len(p) > len(b.data)-b.length {
		return &api.CapacityError{Requested: len(p), Remaining: len(b.data) - b.length}
	}
	copy(b.data[b.length:], p)
	b.length += len(p)
	return nil
}

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) error {
	if b.length == len(b.data) {
		return &api.CapacityError{Requested: 1, Remaining: 0}
	}
	b.data[b.length] = c
	b.length++
	return nil
}

// Pop removes and returns the last byte; ok is false when empty.
func (b *Buffer) Pop() (byte, bool) {
	if b.length == 0 {
		return 0, false
	}
	b.length--
	return b.data[b.length], true
}

// Resize sets the length to n. Growing zero-fills the newly exposed bytes;
// shrinking is an O(1) length cut. n beyond capacity fails with a
// *api.CapacityError and changes nothing.
func (b *Buffer) Resize(n int) error {
	switch {
	case n < 0:
		return api.ErrInvalidArgument
	case n <= b.length:
		b.length = n
	case n <= len(b.data):
		clear(b.data[b.length:n])
		b.length = n
	default:
		return &api.CapacityError{Requested: n - b.length, Remaining: len(b.data) - b.length}
	}
	return nil
}

// Clear resets length to zero without touching storage bytes.
func (b *Buffer) Clear() { b.length = 0 }

// Len returns the number of valid bytes.
func (b *Buffer) Len() int { return b.length }

// Cap returns the slot capacity in bytes.
func (b *Buffer) Cap() int { return len(b.data) }

// Remaining returns the unused capacity in bytes.
func (b *Buffer) Remaining() int { return len(b.data) - b.length }

// IsEmpty reports whether the buffer holds no bytes.
func (b *Buffer) IsEmpty() bool { return b.length == 0 }

// Copy returns a deep copy of the valid prefix as a standalone []byte.
func (b *Buffer) Copy() []byte {
	dst := make([]byte, b.length)
	copy(dst, b.data[:b.length])
	return dst
}

// Index returns the slot number this lease is bound to.
func (b *Buffer) Index() int { return b.slot }

// Release returns the slot to the pool. The first call releases; any later
// call is a no-op, so a deferred Release composes with an early explicit one.
func (b *Buffer) Release() {
	if b.released {
		return
	}
	b.released = true
	b.pool.release(b.slot)
}

// String renders the lease state for diagnostics.
func (b *Buffer) String() string {
	return fmt.Sprintf("buffer[slot=%d len=%d cap=%d]", b.slot, b.length, len(b.data))
}

var _ api.Buffer = (*Buffer)(nil)
