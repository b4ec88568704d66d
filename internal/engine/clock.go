package engine

import "sync/atomic"

// Clock is the monotonic sequence clock stamping processed events.
//
// Every event gets a strictly increasing seq number, which appears in error
// reports and log lines so an operator can correlate a failure back to its
// position in the feed. The seq carries no ordering authority of its own -
// the feed's delivery order is the total order.
//
// Thread-safety: safe for concurrent use (atomic operations), though the
// engine's single-writer design means only one goroutine calls Next().
type Clock struct {
	seq atomic.Int64
}

// NewClock creates a new clock starting at 0.
func NewClock() *Clock {
	return &Clock{}
}

// NewClockAt creates a new clock starting at a specific sequence number.
// Used when resuming a feed from a known offset.
func NewClockAt(start int64) *Clock {
	c := &Clock{}
	c.seq.Store(start)
	return c
}

// Next increments and returns the next sequence number.
// The first call on a fresh clock returns 1.
func (c *Clock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the current sequence number without incrementing.
func (c *Clock) Current() int64 {
	return c.seq.Load()
}
