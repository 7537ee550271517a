// File: pool/staticpool.go
// Package pool implements a fixed-slot lock-free buffer pool over static storage.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package pool

import (
	"sync/atomic"

	"github.com/momentics/staticbuf/api"
	"github.com/momentics/staticbuf/core/concurrency"
)

// Pool hands out fixed-capacity Buffer leases backed by one static region.
//
// The availability bitset is the single source of truth for slot ownership:
// a slot's storage is touched only by the goroutine holding its lease, and
// the CAS on checkout plus the atomic OR on release order every hand-off.
// Handles are pre-allocated per slot, so Get performs no allocation.
type Pool struct {
	capacity int
	backing  []byte
	handles  []Buffer
	free     *concurrency.Bitset

	gets     atomic.Uint64
	releases atomic.Uint64
	failed   atomic.Uint64
}

// New creates a pool of count slots of capacity bytes each. Both values are
// immutable for the pool's lifetime; there is no resize and no teardown.
func New(capacity, count int) (*Pool, error) {
	if capacity <= 0 || count <= 0 {
		return nil, api.ErrInvalidArgument
	}
	p := &Pool{
		capacity: capacity,
		backing:  make([]byte, capacity*count),
		handles:  make([]Buffer, count),
		free:     concurrency.NewBitset(count),
	}
	for i := range p.handles {
		p.handles[i] = Buffer{
			pool: p,
			slot: i,
			data: p.backing[i*capacity : (i+1)*capacity : (i+1)*capacity],
		}
	}
	return p, nil
}

// Get checks out a free slot. ok is false when every slot is busy; that is
// an expected condition, and the caller decides whether to retry, shed load
// or escalate. Get never blocks and the returned lease starts at length 0.
func (p *Pool) Get() (api.Buffer, bool) {
	slot, ok := p.free.Acquire()
	if !ok {
		p.failed.Add(1)
		return nil, false
	}
	h := &p.handles[slot]
	h.length = 0
	h.released = false
	p.gets.Add(1)
	return h, true
}

// release returns slot to the bitset. Called exactly once per checkout via
// Buffer.Release; the handle guards against double release.
func (p *Pool) release(slot int) {
	p.free.Release(slot)
	p.releases.Add(1)
}

// Stats returns a point-in-time snapshot of checkout accounting.
func (p *Pool) Stats() api.PoolStats {
	gets := int64(p.gets.Load())
	releases := int64(p.releases.Load())
	return api.PoolStats{
		Gets:     gets,
		Releases: releases,
		Failed:   int64(p.failed.Load()),
		InUse:    gets - releases,
		Free:     int64(p.free.Free()),
		Slots:    int64(len(p.handles)),
		SlotCap:  int64(p.capacity),
	}
}

// Slots returns the number of slots in the pool.
func (p *Pool) Slots() int { return len(p.handles) }

// BufferCapacity returns the fixed capacity of each slot in bytes.
func (p *Pool) BufferCapacity() int { return p.capacity }

var _ api.BufferPool = (*Pool)(nil)
