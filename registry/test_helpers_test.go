// SPDX-License-Identifier: MIT
// Package registry_test contains fixtures shared by registry tests.

package registry_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/poset/registry"
)

// Element names used across registry tests.
const (
	NameA = "a"
	NameB = "b"
	NameC = "c"
	NameD = "d"
	NameX = "x"
)

// UnknownPoset is never handed out by registries built in these tests.
const UnknownPoset registry.PosetID = 1 << 40

// newPosetWith creates a poset holding names and no relations.
func newPosetWith(t *testing.T, r *registry.Registry, names ...string) registry.PosetID {
	t.Helper()
	id := r.New()
	for _, n := range names {
		require.NoError(t, r.Insert(id, n), "Insert(%q)", n)
	}

	return id
}

// newChain creates a poset a ≤ b ≤ c.
func newChain(t *testing.T, r *registry.Registry) registry.PosetID {
	t.Helper()
	id := newPosetWith(t, r, NameA, NameB, NameC)
	require.NoError(t, r.Add(id, NameA, NameB))
	require.NoError(t, r.Add(id, NameB, NameC))

	return id
}

// mustTest asserts Test succeeds and returns want.
func mustTest(t *testing.T, r *registry.Registry, id registry.PosetID, a, b string, want bool) {
	t.Helper()
	got, err := r.Test(id, a, b)
	require.NoError(t, err)
	require.Equal(t, want, got, "Test(%d, %q, %q)", id, a, b)
}

// mustSize asserts Size succeeds and returns want.
func mustSize(t *testing.T, r *registry.Registry, id registry.PosetID, want int) {
	t.Helper()
	got, err := r.Size(id)
	require.NoError(t, err)
	require.Equal(t, want, got)
}
