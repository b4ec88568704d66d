package store

import (
	"fmt"
	"math/big"
)

// bigText converts a big integer to its decimal TEXT column form.
// A nil value marshals as zero so half-initialized entities never poison
// a row with SQL NULL.
func bigText(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

// bigFromText parses a decimal TEXT column back into a big integer.
func bigFromText(s string) (*big.Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("parse big integer %q", s)
	}
	return v, nil
}
