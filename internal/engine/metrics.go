package engine

import "sync/atomic"

// Metrics counts the intentionally ignored events so operators can observe
// skips that are not errors. Counters are atomic for cheap snapshotting from
// outside the Run loop.
type Metrics struct {
	mintsSkipped atomic.Uint64
	burnsSkipped atomic.Uint64
	failed       atomic.Uint64
}

// MetricsSnapshot is a point-in-time copy of the engine's counters.
type MetricsSnapshot struct {
	Processed    int64
	MintsSkipped uint64
	BurnsSkipped uint64
	Failed       uint64
}

// Metrics returns a snapshot of processing counters.
func (e *Engine) Metrics() MetricsSnapshot {
	return MetricsSnapshot{
		Processed:    e.clock.Current(),
		MintsSkipped: e.metrics.mintsSkipped.Load(),
		BurnsSkipped: e.metrics.burnsSkipped.Load(),
		Failed:       e.metrics.failed.Load(),
	}
}
