// Package store provides the keyed entity store backing the aggregation
// engine: get/put over the five entity kinds, backed by SQLite.
//
// The store is a private, synchronously-consistent resource. The engine is
// the single writer, and a read within one handler invocation always
// observes writes made earlier in the same invocation (read-your-writes).
// Each put is an atomic upsert; no transaction spans multiple entities.
//
// Absence is not an error: gets return (nil, nil) for an unseen identifier,
// which is the normal first-contact case the engine's load-or-create
// resolver is built around.
package store
