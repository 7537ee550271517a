// File: facade/staticbuf.go
// Unified facade layer for the staticbuf library.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// This file defines the StaticBuf struct, which aggregates the buffer pool
// and its observability plane behind a single facade. It initializes the
// pool from immutable configuration and exposes checkout helpers, metrics
// collection and debug probes.

package facade

import (
	"fmt"

	"github.com/momentics/staticbuf/api"
	"github.com/momentics/staticbuf/control"
	"github.com/momentics/staticbuf/pool"
)

// Config holds parameters immutable per run. Pool geometry cannot change
// after initialization; there is no resize and no hot reload.
type Config struct {
	BufferCapacity int  // Bytes per slot
	Slots          int  // Number of slots in the pool
	EnableDebug    bool // Register pool and runtime debug probes
	HistoryDepth   int  // Metrics snapshots retained by the registry
}

// DefaultConfig returns default configuration values.
// These sane defaults support typical framing workloads without tuning.
func DefaultConfig() *Config {
	return &Config{
		BufferCapacity: pool.DefaultBufferCapacity,
		Slots:          pool.DefaultSlots,
		EnableDebug:    true,
		HistoryDepth:   control.DefaultHistoryDepth,
	}
}

// StaticBuf aggregates a static buffer pool with its control plane.
type StaticBuf struct {
	cfg     *Config
	pool    *pool.Pool
	metrics *control.MetricsRegistry
	probes  *control.DebugProbes
}

// New builds the facade from cfg; nil cfg selects DefaultConfig.
func New(cfg *Config) (*StaticBuf, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	p, err := pool.New(cfg.BufferCapacity, cfg.Slots)
	if err != nil {
		return nil, fmt.Errorf("staticbuf: bad pool geometry %dx%d: %w",
			cfg.Slots, cfg.BufferCapacity, err)
	}

	sb := &StaticBuf{
		cfg:     cfg,
		pool:    p,
		metrics: control.NewMetricsRegistry(cfg.HistoryDepth),
		probes:  control.NewDebugProbes(),
	}
	if cfg.EnableDebug {
		sb.probes.RegisterPoolProbe("pool.stats", p)
		control.RegisterRuntimeProbes(sb.probes)
	}
	return sb, nil
}

// Pool returns the underlying pool as its public contract.
func (s *StaticBuf) Pool() api.BufferPool { return s.pool }

// Acquire checks out a buffer, surfacing exhaustion as api.ErrPoolExhausted
// for callers that prefer error plumbing over the ok-form of Pool().Get().
func (s *StaticBuf) Acquire() (api.Buffer, error) {
	buf, ok := s.pool.Get()
	if !ok {
		return nil, api.ErrPoolExhausted
	}
	return buf, nil
}

// Debug exposes the probe registry.
func (s *StaticBuf) Debug() api.Debug { return s.probes }

// Metrics exposes the metrics registry.
func (s *StaticBuf) Metrics() *control.MetricsRegistry { return s.metrics }

// CollectMetrics publishes the current pool stats into the metrics registry
// and records a history snapshot. Pull-based: call it from whatever ticker
// or scrape path the embedding application runs.
func (s *StaticBuf) CollectMetrics() map[string]any {
	st := s.pool.Stats()
	s.metrics.Set("pool.gets", st.Gets)
	s.metrics.Set("pool.releases", st.Releases)
	s.metrics.Set("pool.failed", st.Failed)
	s.metrics.Set("pool.in_use", st.InUse)
	s.metrics.Set("pool.free", st.Free)
	return s.metrics.Snapshot()
}

// DumpState returns the output of all registered debug probes.
func (s *StaticBuf) DumpState() map[string]any { return s.probes.DumpState() }
