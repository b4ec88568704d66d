// Package testutil provides shared helpers for engine and store tests:
// ephemeral stores and compact event fixtures.
package testutil

import (
	"testing"

	"github.com/dxlabs/dxindex/internal/store"
)

// OpenStore returns an ephemeral in-memory entity store, closed when the
// test finishes.
func OpenStore(t *testing.T) *store.Store {
	t.Helper()

	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("close test store: %v", err)
		}
	})
	return s
}
