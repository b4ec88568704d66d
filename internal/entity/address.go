package entity

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AddressLength is the byte length of an account or contract address.
const AddressLength = 20

// Address is a fixed-width account or contract address.
//
// The wire format is 0x-prefixed lowercase hex. The all-zero address is the
// wire-level "no value" sentinel; it is translated into an explicit absent
// marker (a nil *Address) at the feed decode boundary, so engine code never
// compares against the zero address itself.
type Address [AddressLength]byte

// ZeroAddress is the all-zero address used as the wire-level null sentinel.
var ZeroAddress Address

// ParseAddress parses a 0x-prefixed hex address.
// Mixed-case input is accepted; the parsed form is canonical.
func ParseAddress(s string) (Address, error) {
	var a Address
	raw, ok := strings.CutPrefix(s, "0x")
	if !ok {
		raw, ok = strings.CutPrefix(s, "0X")
	}
	if !ok {
		return a, fmt.Errorf("parse address %q: missing 0x prefix", s)
	}
	if len(raw) != AddressLength*2 {
		return a, fmt.Errorf("parse address %q: want %d hex chars, got %d", s, AddressLength*2, len(raw))
	}
	if _, err := hex.Decode(a[:], []byte(strings.ToLower(raw))); err != nil {
		return a, fmt.Errorf("parse address %q: %w", s, err)
	}
	return a, nil
}

// MustParseAddress is ParseAddress that panics on error. Test fixtures only.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Hex returns the canonical 0x-prefixed lowercase hex form.
func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

// IsZero reports whether a is the all-zero sentinel address.
func (a Address) IsZero() bool {
	return a == ZeroAddress
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return a.Hex()
}
