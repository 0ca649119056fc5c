package relation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate_DetectsCorruption(t *testing.T) {
	build := func() *Store {
		s := NewStore()
		require.NoError(t, s.Insert(1))
		require.NoError(t, s.Insert(2))
		require.NoError(t, s.Insert(3))
		require.NoError(t, s.Add(1, 2))
		require.NoError(t, s.Add(2, 3))
		require.NoError(t, s.Validate())
		return s
	}

	cases := []struct {
		name    string
		corrupt func(s *Store)
	}{
		{"reflexivity", func(s *Store) { delete(s.elements[2].successors, 2) }},
		{"duality", func(s *Store) { delete(s.elements[2].predecessors, 1) }},
		{"dangling", func(s *Store) { s.elements[1].successors[9] = struct{}{} }},
		{"antisymmetry", func(s *Store) {
			s.elements[3].successors[1] = struct{}{}
			s.elements[1].predecessors[3] = struct{}{}
		}},
		{"transitivity", func(s *Store) {
			delete(s.elements[1].successors, 3)
			delete(s.elements[3].predecessors, 1)
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := build()
			tc.corrupt(s)
			require.ErrorIs(t, s.Validate(), ErrInvariant)
		})
	}
}

func TestRemove_PanicsOnBrokenDuality(t *testing.T) {
	s := NewStore()
	require.NoError(t, s.Insert(1))
	require.NoError(t, s.Insert(2))
	require.NoError(t, s.Add(1, 2))
	delete(s.elements[1].successors, 2)

	require.Panics(t, func() { _ = s.Remove(2) })
}
