// Package registry: element and relation operations addressed by name.
//
// Every method follows the same shape:
//  1. acquire the poset (locked) or fail with ErrPosetNotFound,
//  2. resolve names through the index,
//  3. delegate to the relation store,
//  4. trace the outcome.
//
// The poset lock is held from step 1 to the end, so each call is atomic.

package registry

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/poset/idgen"
)

// Insert adds a new element called name, related only to itself.
// Returns ErrPosetNotFound or ErrElementExists.
// Complexity: O(1).
func (r *Registry) Insert(id PosetID, name string) error {
	p, err := r.acquire(opInsert, id, name)
	if err != nil {
		return err
	}
	defer p.mu.Unlock()

	// 1) Names are unique within a poset
	if p.names.Lookup(name).Valid() {
		r.trace(opInsert, id, ErrElementExists, msgElement(id, name, "already exists"), name)
		return fmt.Errorf("%w: %q", ErrElementExists, name)
	}
	// 2) Fresh process-wide id; only successful inserts consume one
	eid := idgen.NextElement()
	if err = p.store.Insert(eid); err != nil {
		panic("registry: fresh element id " + eid.String() + " rejected: " + err.Error())
	}
	if err = p.names.Bind(name, eid); err != nil {
		panic("registry: name " + name + " rejected after lookup miss: " + err.Error())
	}
	r.trace(opInsert, id, nil, msgElement(id, name, "inserted"), name)

	return nil
}

// Remove deletes the element called name and every relation that mentions it.
// Relations between other elements are left as they are, even those that
// were derived through the removed element.
// Returns ErrPosetNotFound or ErrElementNotFound.
// Complexity: O(|pred| + |succ|) of the removed element.
func (r *Registry) Remove(id PosetID, name string) error {
	p, err := r.acquire(opRemove, id, name)
	if err != nil {
		return err
	}
	defer p.mu.Unlock()

	eid, err := p.resolve(name)
	if err != nil {
		r.trace(opRemove, id, err, msgElementMissing(id, name), name)
		return fmt.Errorf("%w: %q", err, name)
	}
	if err = p.store.Remove(eid); err != nil {
		panic("registry: resolved element " + eid.String() + " not removable: " + err.Error())
	}
	p.names.Unbind(name)
	r.trace(opRemove, id, nil, msgElement(id, name, "removed"), name)

	return nil
}

// Add records a ≤ b and extends the closure accordingly.
// Returns ErrPosetNotFound, ErrElementNotFound, ErrRelationExists or ErrAntisymmetry.
// Complexity: O(|pred(a)| × |succ(b)|).
func (r *Registry) Add(id PosetID, a, b string) error {
	p, err := r.acquire(opAdd, id, a, b)
	if err != nil {
		return err
	}
	defer p.mu.Unlock()

	ea, eb, err := r.resolvePair(opAdd, id, p, a, b)
	if err != nil {
		return err
	}
	if err = p.store.Add(ea, eb); err != nil {
		what := "cannot be added"
		if errors.Is(err, ErrRelationExists) {
			what = "already exists"
		}
		r.trace(opAdd, id, err, msgRelation(id, a, b, what), a, b)
		return fmt.Errorf("%w: (%q, %q)", err, a, b)
	}
	r.trace(opAdd, id, nil, msgRelation(id, a, b, "added"), a, b)

	return nil
}

// Del drops the fact a ≤ b when no third element lies between them.
// Facts once derived through a ≤ b are not retracted.
// Returns ErrPosetNotFound, ErrElementNotFound, ErrReflexive,
// ErrRelationNotFound or ErrRelationImplied.
// Complexity: O(|succ(a)|).
func (r *Registry) Del(id PosetID, a, b string) error {
	p, err := r.acquire(opDel, id, a, b)
	if err != nil {
		return err
	}
	defer p.mu.Unlock()

	ea, eb, err := r.resolvePair(opDel, id, p, a, b)
	if err != nil {
		return err
	}
	if err = p.store.Del(ea, eb); err != nil {
		r.trace(opDel, id, err, msgRelation(id, a, b, "cannot be deleted"), a, b)
		return fmt.Errorf("%w: (%q, %q)", err, a, b)
	}
	r.trace(opDel, id, nil, msgRelation(id, a, b, "deleted"), a, b)

	return nil
}

// Test reports whether a ≤ b holds.
// Unknown poset or names yield false together with the matching error.
// Complexity: O(1).
func (r *Registry) Test(id PosetID, a, b string) (bool, error) {
	p, err := r.acquire(opTest, id, a, b)
	if err != nil {
		return false, err
	}
	defer p.mu.Unlock()

	ea, eb, err := r.resolvePair(opTest, id, p, a, b)
	if err != nil {
		return false, err
	}
	ok, err := p.store.Test(ea, eb)
	if err != nil {
		panic("registry: resolved pair not testable: " + err.Error())
	}
	if ok {
		r.trace(opTest, id, nil, msgRelation(id, a, b, "exists"), a, b)
	} else {
		r.trace(opTest, id, nil, msgRelation(id, a, b, "does not exist"), a, b)
	}

	return ok, nil
}

// resolvePair resolves both names of a binary call, tracing the first miss.
// Caller holds p.mu.
func (r *Registry) resolvePair(op string, id PosetID, p *poset, a, b string) (idgen.ElementID, idgen.ElementID, error) {
	ea, err := p.resolve(a)
	if err != nil {
		r.trace(op, id, err, msgElementMissing(id, a), a, b)
		return idgen.Invalid, idgen.Invalid, fmt.Errorf("%w: %q", err, a)
	}
	eb, err := p.resolve(b)
	if err != nil {
		r.trace(op, id, err, msgElementMissing(id, b), a, b)
		return idgen.Invalid, idgen.Invalid, fmt.Errorf("%w: %q", err, b)
	}

	return ea, eb, nil
}
