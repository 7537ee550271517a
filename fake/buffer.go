// Package fake
// Author: momentics <momentics@gmail.com>
//
// Heap-backed fakes of api.Buffer and api.BufferPool for unit tests of code
// that embeds staticbuf. The fakes keep the same contract (all-or-nothing
// writes, ok-form exhaustion, idempotent release) without static storage,
// and additionally track release bookkeeping tests can assert on.

package fake

import (
	"sync"

	"github.com/momentics/staticbuf/api"
)

// Buffer is a heap-backed implementation of api.Buffer.
type Buffer struct {
	pool     *BufferPool
	slot     int
	data     []byte
	length   int
	released bool
}

// Bytes returns the written prefix.
func (b *Buffer) Bytes() []byte { return b.data[:b.length] }

// Append copies p, failing whole when it does not fit.
func (b *Buffer) Append(p []byte) error {
	if len(p) > len(b.data)-b.length {
		return &api.CapacityError{Requested: len(p), Remaining: len(b.data) - b.length}
	}
	copy(b.data[b.length:], p)
	b.length += len(p)
	return nil
}

// AppendByte appends one byte.
func (b *Buffer) AppendByte(c byte) error {
	if b.length == len(b.data) {
		return &api.CapacityError{Requested: 1, Remaining: 0}
	}
	b.data[b.length] = c
	b.length++
	return nil
}

// Pop removes the last byte.
func (b *Buffer) Pop() (byte, bool) {
	if b.length == 0 {
		return 0, false
	}
	b.length--
	return b.data[b.length], true
}

// Resize adjusts length, zero-filling on growth.
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

// Clear resets length.
func (b *Buffer) Clear() { b.length = 0 }

// Len returns the valid byte count.
func (b *Buffer) Len() int { return b.length }

// Cap returns the fake slot capacity.
func (b *Buffer) Cap() int { return len(b.data) }

// Remaining returns unused capacity.
func (b *Buffer) Remaining() int { return len(b.data) - b.length }

// IsEmpty reports a zero length.
func (b *Buffer) IsEmpty() bool { return b.length == 0 }

// Copy returns a detached copy of the contents.
func (b *Buffer) Copy() []byte {
	dst := make([]byte, b.length)
	copy(dst, b.data[:b.length])
	return dst
}

// Index returns the fake slot number.
func (b *Buffer) Index() int { return b.slot }

// Release returns the lease; only the first call counts.
func (b *Buffer) Release() {
	if b.released {
		return
	}
	b.released = true
	b.pool.put()
}

// Released reports whether the lease was returned. Test-only accessor with
// no counterpart in the real pool.
func (b *Buffer) Released() bool { return b.released }

var _ api.Buffer = (*Buffer)(nil)

// BufferPool is a heap-backed implementation of api.BufferPool. Unlike the
// real pool it allocates per Get, making leak assertions trivial.
type BufferPool struct {
	mu       sync.Mutex
	capacity int
	slots    int
	nextSlot int
	gets     int64
	releases int64
	failed   int64
}

// NewBufferPool creates a fake pool with the given geometry.
func NewBufferPool(capacity, slots int) *BufferPool {
	return &BufferPool{capacity: capacity, slots: slots}
}

// Get hands out a fresh fake lease, honoring the slot limit.
func (p *BufferPool) Get() (api.Buffer, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.gets-p.releases >= int64(p.slots) {
		p.failed++
		return nil, false
	}
	p.gets++
	p.nextSlot = (p.nextSlot + 1) % p.slots
	return &Buffer{
		pool: p,
		slot: p.nextSlot,
		data: make([]byte, p.capacity),
	}, true
}

func (p *BufferPool) put() {
	p.mu.Lock()
	p.releases++
	p.mu.Unlock()
}

// Stats mirrors the real pool's accounting.
func (p *BufferPool) Stats() api.PoolStats {
	p.mu.Lock()
	defer p.mu.Unlock()
	return api.PoolStats{
		Gets:     p.gets,
		Releases: p.releases,
		Failed:   p.failed,
		InUse:    p.gets - p.releases,
		Free:     int64(p.slots) - (p.gets - p.releases),
		Slots:    int64(p.slots),
		SlotCap:  int64(p.capacity),
	}
}

var _ api.BufferPool = (*BufferPool)(nil)
