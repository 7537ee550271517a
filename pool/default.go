// File: pool/default.go
// Author: momentics <momentics@gmail.com>

package pool

import "sync"

// Default pool geometry. 4 KiB slots suit typical frame/packet staging.
const (
	DefaultBufferCapacity = 4 * 1024
	DefaultSlots          = 1024
)

var (
	defaultOnce sync.Once
	defaultPool *Pool
)

// Default returns a process-wide pool so independent components share one
// static region instead of each reserving their own. The pool is created on
// first use and lives for the program's lifetime.
func Default() *Pool {
	defaultOnce.Do(func() {
		defaultPool, _ = New(DefaultBufferCapacity, DefaultSlots)
	})
	return defaultPool
}
