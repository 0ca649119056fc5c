package relation

import (
	"errors"

	"github.com/katalvlaran/poset/idgen"
)

// Sentinel errors for relation store operations.
var (
	// ErrInvalidElement indicates the reserved idgen.Invalid id was passed.
	ErrInvalidElement = errors.New("relation: invalid element id")

	// ErrElementNotFound indicates an operation referenced a missing element.
	ErrElementNotFound = errors.New("relation: element does not exist")

	// ErrElementExists indicates Insert was called for an id already stored.
	ErrElementExists = errors.New("relation: element already exists")

	// ErrRelationExists indicates Add was called for a pair already in the closure.
	ErrRelationExists = errors.New("relation: relation already exists")

	// ErrAntisymmetry indicates Add would make two distinct elements mutually ordered.
	ErrAntisymmetry = errors.New("relation: reverse relation already holds")

	// ErrReflexive indicates Del was asked to drop an element's relation with itself.
	ErrReflexive = errors.New("relation: reflexive relation cannot be deleted")

	// ErrRelationNotFound indicates Del was called for a pair not in the closure.
	ErrRelationNotFound = errors.New("relation: relation does not exist")

	// ErrRelationImplied indicates Del was called for a pair bridged by a third element.
	ErrRelationImplied = errors.New("relation: relation is implied by an intermediate element")

	// ErrInvariant is returned by Validate when an order invariant is broken.
	ErrInvariant = errors.New("relation: invariant violated")
)

// set is an unordered collection of element ids.
type set map[idgen.ElementID]struct{}

// has reports whether id is a member of s.
func (s set) has(id idgen.ElementID) bool {
	_, ok := s[id]
	return ok
}

// sorted returns the members of s in ascending id order.
func (s set) sorted() []idgen.ElementID {
	out := make([]idgen.ElementID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sortIDs(out)

	return out
}

// element holds the two closure sets of one stored element.
type element struct {
	successors   set // elements this one is ≤ to, itself included
	predecessors set // elements ≤ to this one, itself included
}

// newElement returns an element related only to itself.
func newElement(id idgen.ElementID) *element {
	return &element{
		successors:   set{id: {}},
		predecessors: set{id: {}},
	}
}

// Store is the flattened-closure relation store of one poset.
// The zero value is not usable; call NewStore.
type Store struct {
	elements map[idgen.ElementID]*element // element id → closure sets
}

// NewStore returns an empty Store.
// Complexity: O(1).
func NewStore() *Store {
	return &Store{elements: make(map[idgen.ElementID]*element)}
}
