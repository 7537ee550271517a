// File: core/concurrency/bitset.go
// Package concurrency provides the lock-free primitives behind the pool hot path.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Atomic availability bitset: one bit per slot, 1 = free, 0 = taken.
// Acquire is a CAS retry loop, Release a single atomic OR. Neither ever
// blocks, so both are safe from any number of concurrent goroutines.

package concurrency

import (
	"math/bits"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

const wordBits = 64

// paddedWord keeps each bitset word on its own cache line so releases on
// neighbouring slots do not bounce the same line between cores.
type paddedWord struct {
	bits atomic.Uint64
	_    cpu.CacheLinePad
}

// Bitset is a fixed-size atomic bitset tracking slot availability.
// The size is immutable after construction.
type Bitset struct {
	words []paddedWord
	size  int
}

// NewBitset creates a bitset of size bits, all set (all slots free).
func NewBitset(size int) *Bitset {
	if size <= 0 {
		panic("concurrency: bitset size must be positive")
	}
	s := &Bitset{
		words: make([]paddedWord, (size+wordBits-1)/wordBits),
		size:  size,
	}
	for w := range s.words {
		s.words[w].bits.Store(^uint64(0))
	}
	// Bits past size in the last word stay permanently clear.
	if rem := size % wordBits; rem != 0 {
		s.words[len(s.words)-1].bits.Store(1<<uint(rem) - 1)
	}
	return s
}

// Acquire atomically claims any set bit, clearing it, and returns its index.
// ok is false when no bit was observed set. On a CAS failure the word is
// re-read and retried with the freshly observed value, so a raced claim
// never hands the same bit to two callers.
func (s *Bitset) Acquire() (idx int, ok bool) {
	for w := range s.words {
		word := &s.words[w].bits
		cur := word.Load()
		for cur != 0 {
			bit := bits.TrailingZeros64(cur)
			if word.CompareAndSwap(cur, cur&^(1<<uint(bit))) {
				return w*wordBits + bit, true
			}
			cur = word.Load()
		}
	}
	return 0, false
}

// Release sets bit idx via atomic OR. An OR rather than a store, so a
// concurrent release of another slot in the same word is never clobbered.
// Release never fails and never blocks.
func (s *Bitset) Release(idx int) {
	s.words[idx/wordBits].bits.Or(1 << uint(idx%wordBits))
}

// IsFree reports whether bit idx is currently set. The answer may be stale
// by the time the caller acts on it; it is for diagnostics only.
func (s *Bitset) IsFree(idx int) bool {
	return s.words[idx/wordBits].bits.Load()&(1<<uint(idx%wordBits)) != 0
}

// Free returns the number of set bits.
func (s *Bitset) Free() int {
	n := 0
	for w := range s.words {
		n += bits.OnesCount64(s.words[w].bits.Load())
	}
	return n
}

// Size returns the number of tracked bits.
func (s *Bitset) Size() int { return s.size }
