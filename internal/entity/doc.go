// Package entity defines the five persisted entity kinds maintained by the
// aggregation engine (Asset, Creator, Holder, Purchase, GlobalStats), the
// Address type used for account and contract identities, and the pure
// identifier-derivation functions that map event fields to entity IDs.
//
// All monetary fields and running counters are *big.Int: asset prices and
// token amounts routinely exceed 64 bits, so fixed-width or floating-point
// arithmetic is never used for them. Timestamps are plain unix seconds.
//
// Entities are created lazily on first reference with zero-valued fields and
// mutated in place for the rest of the system's life; nothing is ever
// deleted. The engine (not this package) owns all mutation rules.
package entity
