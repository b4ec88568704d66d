package engine

import (
	"sync"

	"github.com/dxlabs/dxindex/internal/feed"
)

// eventQueue is a thread-safe FIFO queue of decoded feed events.
//
// The queue exists so a feed driver on another goroutine can hand events to
// the single-writer Run loop without blocking on store I/O. It preserves
// delivery order exactly; the engine depends on that order being the feed's
// total order.
//
// A channel provides the availability signal so the Run loop can wait
// context-aware instead of spinning.
type eventQueue struct {
	mu     sync.Mutex
	events []feed.Event
	closed bool
	signal chan struct{} // availability signal (buffered, size 1)
}

// newEventQueue creates an empty event queue.
func newEventQueue() *eventQueue {
	return &eventQueue{
		events: make([]feed.Event, 0, 64),
		signal: make(chan struct{}, 1),
	}
}

// Enqueue adds an event to the back of the queue.
// Thread-safe: may be called from any goroutine.
// Returns false if the queue is closed.
func (q *eventQueue) Enqueue(e feed.Event) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return false
	}

	q.events = append(q.events, e)

	// Non-blocking send - the buffer of 1 coalesces multiple signals.
	select {
	case q.signal <- struct{}{}:
	default:
	}

	return true
}

// TryDequeue attempts to dequeue without blocking.
// Returns (feed.Event{}, false) if the queue is empty.
func (q *eventQueue) TryDequeue() (feed.Event, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	if len(q.events) == 0 {
		return feed.Event{}, false
	}

	e := q.events[0]

	// Nil out the slot so the dequeued event's payload pointers do not
	// linger in the backing array past processing.
	q.events[0] = feed.Event{}

	if len(q.events) == 1 {
		q.events = q.events[:0]
	} else {
		q.events = q.events[1:]
	}

	return e, true
}

// Wait returns a channel that signals when events may be available.
// Use with select alongside ctx.Done() for context-aware waiting.
func (q *eventQueue) Wait() <-chan struct{} {
	return q.signal
}

// Len returns the current queue length.
func (q *eventQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Drained reports whether the queue is closed with nothing left to dequeue.
// Only a drained queue ends a run; an empty open queue is just a quiet feed.
func (q *eventQueue) Drained() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.closed && len(q.events) == 0
}

// Close signals that no more events will be enqueued.
// Wakes any blocked waiters by closing the signal channel.
func (q *eventQueue) Close() {
	q.mu.Lock()
	defer q.mu.Unlock()

	if q.closed {
		return
	}

	q.closed = true
	close(q.signal)
}
