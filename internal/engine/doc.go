// Package engine implements the incremental aggregation engine: per-event
// handlers that turn an ordered stream of decoded domain events into derived
// entity state (assets, creators, holders, positions) plus one global
// rolling-totals row.
//
// The engine is purely reactive. It processes exactly one event at a time,
// synchronously to completion - every load-or-create resolve, mutation and
// persist finishes before the next event is considered. It never re-orders,
// replays or deduplicates events; those guarantees belong to the feed. All
// totals are derived forward from current state plus one event's delta;
// history is never recomputed.
//
// Process is the synchronous core API. Run is a single-writer event loop
// around it, for drivers that deliver events from another goroutine:
// Enqueue is safe from any goroutine, Run must be called from exactly one.
package engine
