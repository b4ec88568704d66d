// Package feed defines the decoded inbound event shapes and the boundary
// that produces them from the wire: JSON Lines decoding, field validation,
// and translation of wire conventions into engine-native representation.
//
// Two wire conventions are translated here so the engine never sees them:
//
//   - The all-zero address sentinel on Transfer endpoints becomes an explicit
//     absent marker (nil *entity.Address). Mint and burn are therefore
//     visible in the type, not hidden behind a magic constant.
//   - Title and CID strings are normalized to NFC so identical content
//     cannot diverge on Unicode representation.
//
// Decoding is all-or-nothing: a missing or type-mismatched field rejects the
// whole event with an error wrapping ErrMalformed, before any engine state
// is touched. The feed itself is trusted to be append-only, strictly ordered
// and deduplicated; this package never re-orders or replays.
package feed
