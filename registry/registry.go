// Package registry: poset lifecycle.

package registry

import (
	"fmt"
	"sort"
)

// New registers an empty poset and returns its id.
// Ids start at 0 and are never reused by this Registry.
// Complexity: O(1).
func (r *Registry) New() PosetID {
	r.mu.Lock()
	id := PosetID(r.seq.Next())
	r.posets[id] = newPoset()
	r.mu.Unlock()

	r.trace(opNew, id, nil, fmt.Sprintf("poset %d created", id))

	return id
}

// Delete discards the poset together with its names and relations.
// Returns ErrPosetNotFound if id is unknown; nothing else happens then.
// Complexity: O(1).
func (r *Registry) Delete(id PosetID) error {
	r.mu.Lock()
	_, ok := r.posets[id]
	if ok {
		delete(r.posets, id)
	}
	r.mu.Unlock()

	if !ok {
		r.trace(opDelete, id, ErrPosetNotFound, msgPosetMissing(id))
		return fmt.Errorf("%w: %d", ErrPosetNotFound, id)
	}
	r.trace(opDelete, id, nil, fmt.Sprintf("poset %d deleted", id))

	return nil
}

// Clear drops every element of the poset. The id stays valid; elements
// inserted afterwards receive fresh ids.
// Returns ErrPosetNotFound if id is unknown.
// Complexity: O(1).
func (r *Registry) Clear(id PosetID) error {
	p, err := r.acquire(opClear, id)
	if err != nil {
		return err
	}
	p.store.Reset()
	p.names.Reset()
	p.mu.Unlock()

	r.trace(opClear, id, nil, fmt.Sprintf("poset %d cleared", id))

	return nil
}

// Size returns the number of elements in the poset.
// Returns 0 and ErrPosetNotFound if id is unknown.
// Complexity: O(1).
func (r *Registry) Size(id PosetID) (int, error) {
	p, err := r.acquire(opSize, id)
	if err != nil {
		return 0, err
	}
	n := p.store.Len()
	p.mu.Unlock()

	r.trace(opSize, id, nil, fmt.Sprintf("poset %d contains %d element(s)", id, n))

	return n, nil
}

// Exists reports whether id names a live poset.
// Complexity: O(1).
func (r *Registry) Exists(id PosetID) bool {
	_, ok := r.lookup(id)
	return ok
}

// Len returns the number of live posets.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.posets)
}

// IDs returns the ids of every live poset in ascending order.
// Complexity: O(P log P).
func (r *Registry) IDs() []PosetID {
	r.mu.RLock()
	out := make([]PosetID, 0, len(r.posets))
	for id := range r.posets {
		out = append(out, id)
	}
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Validate checks the order invariants of the poset and the agreement
// between its name index and relation store.
// Returns ErrPosetNotFound or an error wrapping ErrInvariant.
// Complexity: see relation.Store.Validate.
func (r *Registry) Validate(id PosetID) error {
	p, ok := r.lookup(id)
	if !ok {
		return fmt.Errorf("%w: %d", ErrPosetNotFound, id)
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.names.Len() != p.store.Len() {
		return fmt.Errorf("%w: poset %d has %d names for %d elements",
			ErrInvariant, id, p.names.Len(), p.store.Len())
	}
	for _, name := range p.names.Names() {
		if !p.store.Has(p.names.Lookup(name)) {
			return fmt.Errorf("%w: poset %d, name %q bound to missing element", ErrInvariant, id, name)
		}
	}

	return p.store.Validate()
}

// lookup finds a poset under the registry read lock.
func (r *Registry) lookup(id PosetID) (*poset, bool) {
	r.mu.RLock()
	p, ok := r.posets[id]
	r.mu.RUnlock()

	return p, ok
}

// acquire finds the poset and returns it locked. On a miss it traces the
// failure for op and returns a wrapped ErrPosetNotFound.
func (r *Registry) acquire(op string, id PosetID, args ...string) (*poset, error) {
	p, ok := r.lookup(id)
	if !ok {
		r.trace(op, id, ErrPosetNotFound, msgPosetMissing(id), args...)
		return nil, fmt.Errorf("%w: %d", ErrPosetNotFound, id)
	}
	p.mu.Lock()

	return p, nil
}
