// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector with bounded snapshot history.
// Exposes counters in a thread-safe map with dynamic registration; each
// Snapshot call also records into a FIFO history ring for trend inspection.

package control

import (
	"sync"
	"time"

	"github.com/eapache/queue"
)

// DefaultHistoryDepth bounds retained snapshots when none is configured.
const DefaultHistoryDepth = 64

// MetricsRegistry holds mutable metrics plus a bounded snapshot history.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	history *queue.Queue
	depth   int
	updated time.Time
}

// NewMetricsRegistry creates an empty registry retaining up to depth
// snapshots; non-positive depth falls back to DefaultHistoryDepth.
func NewMetricsRegistry(depth int) *MetricsRegistry {
	if depth <= 0 {
		depth = DefaultHistoryDepth
	}
	return &MetricsRegistry{
		metrics: make(map[string]any),
		history: queue.New(),
		depth:   depth,
	}
}

// Set sets or updates a metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// Get returns a single metric value.
func (mr *MetricsRegistry) Get(key string) (any, bool) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	v, ok := mr.metrics[key]
	return v, ok
}

// Snapshot copies the current metrics, appends the copy to the history ring
// (evicting the oldest entry beyond the configured depth) and returns it.
func (mr *MetricsRegistry) Snapshot() map[string]any {
	mr.mu.Lock()
	defer mr.mu.Unlock()
	out := make(map[string]any, len(mr.metrics))
	for k, v := range mr.metrics {
		out[k] = v
	}
	mr.history.Add(out)
	for mr.history.Length() > mr.depth {
		mr.history.Remove()
	}
	return out
}

// History returns retained snapshots, oldest first.
func (mr *MetricsRegistry) History() []map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make([]map[string]any, 0, mr.history.Length())
	for i := 0; i < mr.history.Length(); i++ {
		out = append(out, mr.history.Get(i).(map[string]any))
	}
	return out
}

// UpdatedAt returns the time of the last Set.
func (mr *MetricsRegistry) UpdatedAt() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}
