// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// buffer_test.go — Unit tests for the Buffer lease write discipline.
package pool_test

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/momentics/staticbuf/api"
	"github.com/momentics/staticbuf/pool"
)

func leasedBuffer(t *testing.T, capacity int) api.Buffer {
	t.Helper()
	p := mustPool(t, capacity, 2)
	h, ok := p.Get()
	if !ok {
		t.Fatal("Get failed on a fresh pool")
	}
	return h
}

func TestBuffer_AppendRoundTrip(t *testing.T) {
	b := leasedBuffer(t, 8)

	if err := b.Append([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("first append: %v", err)
	}
	if err := b.Append([]byte{5, 6, 7, 8}); err != nil {
		t.Fatalf("second append: %v", err)
	}
	if err := b.Append([]byte{9}); err == nil {
		t.Fatal("append on a full buffer succeeded")
	}
	if got, want := b.Bytes(), []byte{1, 2, 3, 4, 5, 6, 7, 8}; !bytes.Equal(got, want) {
		t.Fatalf("Bytes() = %v, want %v", got, want)
	}
}

func TestBuffer_FailedAppendLeavesStateUntouched(t *testing.T) {
	b := leasedBuffer(t, 8)

	if err := b.Append([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("append: %v", err)
	}
	before := b.Copy()

	err := b.Append([]byte{5, 6, 7, 8, 9})
	if err == nil {
		t.Fatal("oversized append succeeded")
	}
	var capErr *api.CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("expected *api.CapacityError, got %T", err)
	}
	if capErr.Requested != 5 || capErr.Remaining != 4 {
		t.Errorf("capacity error = %+v", capErr)
	}
	if !bytes.Equal(b.Bytes(), before) {
		t.Errorf("failed append changed contents: %v -> %v", before, b.Bytes())
	}
	if b.Len() != 4 {
		t.Errorf("failed append changed length: %d", b.Len())
	}
}

func TestBuffer_EmptyAppendAlwaysSucceeds(t *testing.T) {
	b := leasedBuffer(t, 4)
	if err := b.Append(nil); err != nil {
		t.Fatalf("empty append on empty buffer: %v", err)
	}
	if err := b.Append([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("fill: %v", err)
	}
	// Appending nothing never exceeds capacity, even at the brim.
	if err := b.Append([]byte{}); err != nil {
		t.Fatalf("empty append on full buffer: %v", err)
	}
	if b.Len() != 4 {
		t.Fatalf("len = %d", b.Len())
	}
}

func TestBuffer_AppendBytePop(t *testing.T) {
	b := leasedBuffer(t, 8)

	for i := byte(1); i <= 8; i++ {
		if err := b.AppendByte(i); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}
	if err := b.AppendByte(9); !errors.Is(err, api.ErrCapacityExceeded) {
		t.Fatalf("push on full buffer: %v", err)
	}

	for i := byte(8); i >= 1; i-- {
		c, ok := b.Pop()
		if !ok || c != i {
			t.Fatalf("pop = (%d, %v), want (%d, true)", c, ok, i)
		}
	}
	if _, ok := b.Pop(); ok {
		t.Fatal("pop on empty buffer succeeded")
	}
	if !b.IsEmpty() {
		t.Fatal("buffer not empty after draining")
	}
}

func TestBuffer_Resize(t *testing.T) {
	b := leasedBuffer(t, 8)
	if err := b.Append([]byte{1, 2, 3, 4}); err != nil {
		t.Fatalf("append: %v", err)
	}

	// Grow zero-fills the exposed tail.
	if err := b.Resize(8); err != nil {
		t.Fatalf("grow: %v", err)
	}
	if got, want := b.Bytes(), []byte{1, 2, 3, 4, 0, 0, 0, 0}; !bytes.Equal(got, want) {
		t.Fatalf("after grow: %v", got)
	}

	// Shrink is a pure length cut.
	if err := b.Resize(2); err != nil {
		t.Fatalf("shrink: %v", err)
	}
	if got, want := b.Bytes(), []byte{1, 2}; !bytes.Equal(got, want) {
		t.Fatalf("after shrink: %v", got)
	}

	// Regrowing re-zeroes bytes the earlier shrink left behind.
	if err := b.Resize(4); err != nil {
		t.Fatalf("regrow: %v", err)
	}
	if got, want := b.Bytes(), []byte{1, 2, 0, 0}; !bytes.Equal(got, want) {
		t.Fatalf("after regrow: %v", got)
	}

	// Over-capacity resize fails whole.
	before := b.Copy()
	if err := b.Resize(10); !errors.Is(err, api.ErrCapacityExceeded) {
		t.Fatalf("oversized resize: %v", err)
	}
	if !bytes.Equal(b.Bytes(), before) {
		t.Fatalf("failed resize changed contents: %v", b.Bytes())
	}

	if err := b.Resize(-1); !errors.Is(err, api.ErrInvalidArgument) {
		t.Fatalf("negative resize: %v", err)
	}
}

func TestBuffer_ClearKeepsCapacity(t *testing.T) {
	b := leasedBuffer(t, 16)
	if err := b.Append([]byte("payload")); err != nil {
		t.Fatalf("append: %v", err)
	}
	b.Clear()
	if b.Len() != 0 || b.Remaining() != 16 {
		t.Fatalf("after clear: len=%d remaining=%d", b.Len(), b.Remaining())
	}
	if err := b.Append(bytes.Repeat([]byte{0xAA}, 16)); err != nil {
		t.Fatalf("full append after clear: %v", err)
	}
}

func TestBuffer_CopyIsDetached(t *testing.T) {
	b := leasedBuffer(t, 8)
	if err := b.Append([]byte{1, 2, 3}); err != nil {
		t.Fatalf("append: %v", err)
	}
	c := b.Copy()
	b.Clear()
	if err := b.Append([]byte{9, 9, 9}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if !bytes.Equal(c, []byte{1, 2, 3}) {
		t.Fatalf("copy aliased slot storage: %v", c)
	}
}

// TestBuffer_RandomizedWriteDiscipline drives a random op sequence against a
// plain-slice model; contents and length must agree at every step.
func TestBuffer_RandomizedWriteDiscipline(t *testing.T) {
	const capacity = 32
	rng := rand.New(rand.NewSource(1))

	for run := 0; run < 20; run++ {
		b := leasedBuffer(t, capacity)
		model := make([]byte, 0, capacity)

		for i := 0; i < 500; i++ {
			switch rng.Intn(4) {
			case 0: // append chunk
				chunk := make([]byte, rng.Intn(10))
				rng.Read(chunk)
				err := b.Append(chunk)
				if len(model)+len(chunk) <= capacity {
					if err != nil {
						t.Fatalf("append rejected in-capacity chunk: %v", err)
					}
					model = append(model, chunk...)
				} else if err == nil {
					t.Fatal("append accepted oversized chunk")
				}
			case 1: // push
				c := byte(rng.Intn(256))
				err := b.AppendByte(c)
				if len(model) < capacity {
					if err != nil {
						t.Fatalf("push rejected with room: %v", err)
					}
					model = append(model, c)
				} else if err == nil {
					t.Fatal("push accepted on full buffer")
				}
			case 2: // pop
				c, ok := b.Pop()
				if len(model) > 0 {
					want := model[len(model)-1]
					model = model[:len(model)-1]
					if !ok || c != want {
						t.Fatalf("pop = (%d, %v), want (%d, true)", c, ok, want)
					}
				} else if ok {
					t.Fatal("pop succeeded on empty buffer")
				}
			case 3: // resize
				n := rng.Intn(capacity + 8)
				err := b.Resize(n)
				if n <= capacity {
					if err != nil {
						t.Fatalf("resize(%d) failed: %v", n, err)
					}
					for len(model) < n {
						model = append(model, 0)
					}
					model = model[:n]
				} else if err == nil {
					t.Fatal("resize accepted over-capacity size")
				}
			}

			if b.Len() != len(model) {
				t.Fatalf("step %d: len %d, model %d", i, b.Len(), len(model))
			}
			if !bytes.Equal(b.Bytes(), model) {
				t.Fatalf("step %d: contents diverged", i)
			}
		}
		b.Release()
	}
}

func BenchmarkBuffer_Append(b *testing.B) {
	p, err := pool.New(4096, 4)
	if err != nil {
		b.Fatal(err)
	}
	h, ok := p.Get()
	if !ok {
		b.Fatal("Get failed")
	}
	defer h.Release()
	payload := bytes.Repeat([]byte{0x5A}, 64)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if h.Remaining() < len(payload) {
			h.Clear()
		}
		if err := h.Append(payload); err != nil {
			b.Fatal(err)
		}
	}
}
