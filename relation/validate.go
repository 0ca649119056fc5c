package relation

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/poset/idgen"
)

// Validate checks reflexivity, duality, antisymmetry and transitivity over the
// whole store and returns the first violation found, wrapped in ErrInvariant.
// Elements are visited in ascending id order so the reported violation is
// deterministic.
//
// Complexity: O(Σ |succ(e)|²) for the transitivity pass. Intended for tests
// and diagnostics, not for the hot path.
func (s *Store) Validate() error {
	ids := s.IDs()
	for _, id := range ids {
		e := s.elements[id]
		// 1) Reflexivity
		if !e.successors.has(id) || !e.predecessors.has(id) {
			return fmt.Errorf("%w: reflexivity broken at %s", ErrInvariant, id)
		}
		// 2) Duality, both directions, plus dangling references
		for x := range e.successors {
			xe, ok := s.elements[x]
			if !ok {
				return fmt.Errorf("%w: succ(%s) holds missing element %s", ErrInvariant, id, x)
			}
			if !xe.predecessors.has(id) {
				return fmt.Errorf("%w: %s in succ(%s) but %s not in pred(%s)", ErrInvariant, x, id, id, x)
			}
		}
		for p := range e.predecessors {
			pe, ok := s.elements[p]
			if !ok {
				return fmt.Errorf("%w: pred(%s) holds missing element %s", ErrInvariant, id, p)
			}
			if !pe.successors.has(id) {
				return fmt.Errorf("%w: %s in pred(%s) but %s not in succ(%s)", ErrInvariant, p, id, id, p)
			}
		}
	}
	for _, id := range ids {
		e := s.elements[id]
		for _, x := range e.successors.sorted() {
			if x == id {
				continue
			}
			xe := s.elements[x]
			// 3) Antisymmetry
			if xe.successors.has(id) {
				return fmt.Errorf("%w: %s and %s precede each other", ErrInvariant, id, x)
			}
			// 4) Transitivity
			for y := range xe.successors {
				if !e.successors.has(y) {
					return fmt.Errorf("%w: %s ≤ %s ≤ %s but not %s ≤ %s", ErrInvariant, id, x, y, id, y)
				}
			}
		}
	}

	return nil
}

// sortIDs orders ids ascending in place.
func sortIDs(ids []idgen.ElementID) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
