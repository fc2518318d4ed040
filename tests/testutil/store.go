package testutil

import (
	"testing"

	"github.com/pdash/portfolio-dashboard/internal/store"
)

// NewTestStore creates an in-memory SQLiteStore with all migrations
// applied and no seed data, so each test starts from a clean slate.
// The store is closed automatically when the test completes.
func NewTestStore(t *testing.T) *store.SQLiteStore {
	t.Helper()

	s, err := store.Open(":memory:")
	if err != nil {
		t.Fatalf("creating test store: %v", err)
	}

	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Errorf("closing test store: %v", err)
		}
	})

	return s
}
