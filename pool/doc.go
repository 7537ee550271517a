// Package pool
// Author: momentics <momentics@gmail.com>
//
// Fixed-slot, lock-free static buffer pool.
// One contiguous backing region is allocated at construction and never
// grown, shrunk or freed; slot availability lives in an atomic bitset, so
// checkout and release are wait-free of locks and safe from any number of
// concurrent goroutines. No operation on the hot path heap-allocates.
// See staticpool.go and buffer.go for implementation details.
package pool
