// Package relation: mutation and query methods of Store.
//
// Each method validates everything it needs before touching a single set,
// so a returned error always means "nothing changed".

package relation

import (
	"fmt"

	"github.com/katalvlaran/poset/idgen"
)

// Insert stores a new element related only to itself.
// Returns ErrInvalidElement for idgen.Invalid, ErrElementExists if id is stored.
// Complexity: O(1).
func (s *Store) Insert(id idgen.ElementID) error {
	// 1) Reject the reserved id
	if !id.Valid() {
		return ErrInvalidElement
	}
	// 2) Reject duplicates
	if _, exists := s.elements[id]; exists {
		return ErrElementExists
	}
	// 3) Self-only closure sets
	s.elements[id] = newElement(id)

	return nil
}

// Remove deletes id and every fact that mentions it.
// The closures of other elements are not recomputed: a ≤ id ≤ b leaves a ≤ b in place.
// Returns ErrElementNotFound if id is not stored.
// Complexity: O(|pred(id)| + |succ(id)|).
func (s *Store) Remove(id idgen.ElementID) error {
	e, err := s.lookup(id)
	if err != nil {
		return err
	}
	// 1) Every strict predecessor p loses id from succ(p)
	for p := range e.predecessors {
		if p == id {
			continue
		}
		pe := s.mustGet(p)
		if !pe.successors.has(id) {
			panic(fmt.Sprintf("relation: %s in pred(%s) but %s not in succ(%s)", p, id, id, p))
		}
		delete(pe.successors, id)
	}
	// 2) Every strict successor x loses id from pred(x)
	for x := range e.successors {
		if x == id {
			continue
		}
		xe := s.mustGet(x)
		if !xe.predecessors.has(id) {
			panic(fmt.Sprintf("relation: %s in succ(%s) but %s not in pred(%s)", x, id, id, x))
		}
		delete(xe.predecessors, id)
	}
	// 3) Drop the element itself
	delete(s.elements, id)

	return nil
}

// Add records a ≤ b and re-closes the affected region: every element below a
// (a included) becomes ≤ every element above b (b included).
//
// Returns ErrElementNotFound if either id is missing, ErrRelationExists if
// a ≤ b already holds (a == b included), ErrAntisymmetry if b ≤ a holds.
// Complexity: O(|pred(a)| × |succ(b)|).
func (s *Store) Add(a, b idgen.ElementID) error {
	// 1) Resolve both endpoints
	ea, err := s.lookup(a)
	if err != nil {
		return err
	}
	eb, err := s.lookup(b)
	if err != nil {
		return err
	}
	// 2) Already present (directly or through the closure)
	if ea.successors.has(b) {
		return ErrRelationExists
	}
	// 3) The reverse holds: adding would break antisymmetry
	if eb.successors.has(a) {
		return ErrAntisymmetry
	}
	// 4) Merge pred(a) × succ(b).
	//    Neither iterated set is written to: a ∉ succ(b) and b ∉ pred(a) after step 3.
	for p := range ea.predecessors {
		pe := s.mustGet(p)
		for x := range eb.successors {
			xe := s.mustGet(x)
			pe.successors[x] = struct{}{}
			xe.predecessors[p] = struct{}{}
		}
	}

	return nil
}

// Del drops the single fact a ≤ b.
//
// Only pairs that no third element k bridges (a ≤ k ≤ b) can be dropped.
// Nothing else is updated: pairs once derived through a ≤ b stay in place.
//
// Returns ErrElementNotFound if either id is missing, ErrReflexive if a == b,
// ErrRelationNotFound if a ≤ b does not hold, ErrRelationImplied if some k bridges it.
// Complexity: O(|succ(a)|).
func (s *Store) Del(a, b idgen.ElementID) error {
	// 1) Resolve both endpoints
	ea, err := s.lookup(a)
	if err != nil {
		return err
	}
	eb, err := s.lookup(b)
	if err != nil {
		return err
	}
	// 2) Every element stays related to itself
	if a == b {
		return ErrReflexive
	}
	// 3) Nothing to drop
	if !ea.successors.has(b) {
		return ErrRelationNotFound
	}
	if !eb.predecessors.has(a) {
		panic(fmt.Sprintf("relation: %s in succ(%s) but %s not in pred(%s)", b, a, a, b))
	}
	// 4) Refuse if an intermediate k re-derives the pair
	for k := range ea.successors {
		if k == a || k == b {
			continue
		}
		if s.mustGet(k).successors.has(b) {
			return ErrRelationImplied
		}
	}
	// 5) Drop both directions of the fact
	delete(ea.successors, b)
	delete(eb.predecessors, a)

	return nil
}

// Test reports whether a ≤ b holds.
// Returns false with ErrElementNotFound if either id is missing.
// Complexity: O(1).
func (s *Store) Test(a, b idgen.ElementID) (bool, error) {
	ea, err := s.lookup(a)
	if err != nil {
		return false, err
	}
	if _, err = s.lookup(b); err != nil {
		return false, err
	}

	return ea.successors.has(b), nil
}

// Has reports whether id is stored.
func (s *Store) Has(id idgen.ElementID) bool {
	_, ok := s.elements[id]
	return ok
}

// Len returns the number of stored elements.
func (s *Store) Len() int {
	return len(s.elements)
}

// IDs returns every stored id in ascending order.
// Complexity: O(n log n).
func (s *Store) IDs() []idgen.ElementID {
	out := make([]idgen.ElementID, 0, len(s.elements))
	for id := range s.elements {
		out = append(out, id)
	}
	sortIDs(out)

	return out
}

// Successors returns succ(id) in ascending order, id itself included.
// Complexity: O(k log k), k = |succ(id)|.
func (s *Store) Successors(id idgen.ElementID) ([]idgen.ElementID, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	return e.successors.sorted(), nil
}

// Predecessors returns pred(id) in ascending order, id itself included.
// Complexity: O(k log k), k = |pred(id)|.
func (s *Store) Predecessors(id idgen.ElementID) ([]idgen.ElementID, error) {
	e, err := s.lookup(id)
	if err != nil {
		return nil, err
	}

	return e.predecessors.sorted(), nil
}

// Reset drops every element. Ids are not recycled by the store; they are
// owned by the caller's allocator.
// Complexity: O(1).
func (s *Store) Reset() {
	s.elements = make(map[idgen.ElementID]*element)
}

// lookup resolves id or returns the matching sentinel.
func (s *Store) lookup(id idgen.ElementID) (*element, error) {
	if !id.Valid() {
		return nil, ErrInvalidElement
	}
	e, ok := s.elements[id]
	if !ok {
		return nil, ErrElementNotFound
	}

	return e, nil
}

// mustGet resolves an id found inside a closure set. A miss means the store
// is corrupt.
func (s *Store) mustGet(id idgen.ElementID) *element {
	e, ok := s.elements[id]
	if !ok {
		panic(fmt.Sprintf("relation: element %s referenced by a closure set but not stored", id))
	}

	return e
}
