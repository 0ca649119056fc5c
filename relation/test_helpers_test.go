// Package relation_test contains fixtures and helpers for relation tests.

package relation_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poset/idgen"
	"github.com/katalvlaran/poset/relation"
)

// Element ids used across relation tests. The store accepts any valid id,
// so tests pick small fixed values instead of drawing from idgen.
const (
	A idgen.ElementID = iota + 1
	B
	C
	D
	E
)

// Missing is an id never inserted by any test.
const Missing idgen.ElementID = 999

// newStoreWith returns a store holding the given ids and no relations.
func newStoreWith(t *testing.T, ids ...idgen.ElementID) *relation.Store {
	t.Helper()
	s := relation.NewStore()
	for _, id := range ids {
		require.NoError(t, s.Insert(id))
	}

	return s
}

// closure captures succ(e) of every element, for before/after comparisons.
func closure(t *testing.T, s *relation.Store) map[idgen.ElementID][]idgen.ElementID {
	t.Helper()
	out := make(map[idgen.ElementID][]idgen.ElementID, s.Len())
	for _, id := range s.IDs() {
		succ, err := s.Successors(id)
		require.NoError(t, err)
		out[id] = succ
	}

	return out
}

// mustTest asserts Test(a,b) succeeds and returns want.
func mustTest(t *testing.T, s *relation.Store, a, b idgen.ElementID, want bool) {
	t.Helper()
	got, err := s.Test(a, b)
	require.NoError(t, err)
	require.Equal(t, want, got, "Test(%s,%s)", a, b)
}
