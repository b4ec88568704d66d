// Package harness executes conformance scenarios against the aggregation
// engine: a YAML scenario lists wire-shaped events in feed order, the
// harness drives them through the real decode boundary and a fresh
// in-memory store, and the resulting aggregate state is compared against
// golden snapshots or inspected directly.
//
// Scenarios exercise the system end to end - decode, classification,
// handlers, store - exactly as a production feed would, which is what makes
// their golden files trustworthy as behavioral fixtures.
package harness
