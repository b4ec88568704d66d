package engine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dxlabs/dxindex/internal/feed"
)

// Enqueue submits an event for processing by the Run loop, preserving
// submission order. Thread-safe: may be called from any goroutine.
//
// Returns false if the engine has been stopped.
func (e *Engine) Enqueue(ev feed.Event) bool {
	return e.queue.Enqueue(ev)
}

// Run starts the single-writer event loop.
// Blocks until the context is cancelled or Stop() is called and the queue
// drains.
//
// Must be called from exactly one goroutine: all resolves, mutations and
// persists happen here, strictly one event at a time, so no locking
// discipline is needed beyond the store's atomic per-save commit.
//
// A failed event is logged with its seq and type and processing continues;
// retrying inside the loop would break the feed's strict ordering for every
// event behind the failure. Operators replay from the logged position.
func (e *Engine) Run(ctx context.Context) error {
	slog.Info("engine starting", "run", e.runToken)

	for {
		ev, ok := e.queue.TryDequeue()
		if ok {
			if err := e.Process(ctx, ev); err != nil {
				e.metrics.failed.Add(1)
				logEventError(e.runToken, err)
			}
			continue
		}

		select {
		case <-ctx.Done():
			slog.Info("engine stopping: context cancelled", "run", e.runToken, "processed", e.Seq())
			e.queue.Close()
			return ctx.Err()

		case <-e.queue.Wait():
			// Signal received - loop back to TryDequeue. The buffered
			// signal coalesces and can outlive the events it announced,
			// so an empty queue here does not mean the feed is over.
			// Only a closed and fully drained queue ends the run; the
			// signal channel closes with the queue, so this case fires
			// immediately during shutdown.
			if e.queue.Drained() {
				slog.Info("engine stopping: queue closed", "run", e.runToken, "processed", e.Seq())
				return nil
			}
		}
	}
}

// Stop gracefully shuts down the engine.
// Closes the event queue, which causes Run() to return once drained.
func (e *Engine) Stop() {
	e.queue.Close()
}

// logEventError records a failed event with enough context for manual
// investigation and replay.
func logEventError(runToken string, err error) {
	attrs := []any{"run", runToken, "error", err}
	var ee *EventError
	if errors.As(err, &ee) {
		attrs = append(attrs, "code", string(ee.Code), "event_type", ee.EventType.String(), "seq", ee.Seq)
	}
	slog.Error("event processing failed", attrs...)
}
