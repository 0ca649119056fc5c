// File: view.go
// Role: read-only, point-in-time copies of one poset.
// Concurrency:
//   - The poset lock is held only while copying; the View itself is immutable
//     and safe to share between goroutines.

package registry

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/poset/idgen"
)

// View is an immutable snapshot of one poset, addressed by element name.
// Successor and predecessor lists are sorted by name and include the element
// itself. A nil *View reads as an empty poset.
type View struct {
	id    PosetID
	names []string                   // sorted element names
	ids   map[string]idgen.ElementID // name → element id at snapshot time
	succ  map[string][]string        // name → sorted successor names
	pred  map[string][]string        // name → sorted predecessor names
}

// View copies the current state of the poset.
// Returns ErrPosetNotFound if id is unknown.
// Complexity: O(n + Σ|succ| log|succ|).
func (r *Registry) View(id PosetID) (*View, error) {
	p, ok := r.lookup(id)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrPosetNotFound, id)
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	all := p.names.Names()
	v := &View{
		id:    id,
		names: all,
		ids:   make(map[string]idgen.ElementID, len(all)),
		succ:  make(map[string][]string, len(all)),
		pred:  make(map[string][]string, len(all)),
	}
	for _, name := range all {
		eid, err := p.resolve(name)
		if err != nil {
			panic("registry: bound name " + name + " failed to resolve")
		}
		v.ids[name] = eid
		succ, _ := p.store.Successors(eid)
		pred, _ := p.store.Predecessors(eid)
		v.succ[name] = p.namesOf(succ)
		v.pred[name] = p.namesOf(pred)
	}

	return v, nil
}

// namesOf maps ids to their names, sorted. Caller holds p.mu.
func (p *poset) namesOf(ids []idgen.ElementID) []string {
	out := make([]string, 0, len(ids))
	for _, eid := range ids {
		name, ok := p.names.Name(eid)
		if !ok {
			panic("registry: element " + eid.String() + " has no name")
		}
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// ID returns the id of the poset the view was taken from.
func (v *View) ID() PosetID {
	if v == nil {
		return 0
	}
	return v.id
}

// Size returns the number of elements.
func (v *View) Size() int {
	if v == nil {
		return 0
	}
	return len(v.names)
}

// Elements returns the element names in lexical order. The slice is shared;
// do not modify it.
func (v *View) Elements() []string {
	if v == nil {
		return nil
	}
	return v.names
}

// Has reports whether the poset held an element called name.
func (v *View) Has(name string) bool {
	if v == nil {
		return false
	}
	_, ok := v.ids[name]
	return ok
}

// ElementID returns the process-wide id of name, or idgen.Invalid.
func (v *View) ElementID(name string) idgen.ElementID {
	if v == nil {
		return idgen.Invalid
	}
	return v.ids[name]
}

// Successors returns the names x with name ≤ x, sorted, or nil for an
// unknown name. The slice is shared; do not modify it.
func (v *View) Successors(name string) []string {
	if v == nil {
		return nil
	}
	return v.succ[name]
}

// Predecessors returns the names x with x ≤ name, sorted, or nil for an
// unknown name. The slice is shared; do not modify it.
func (v *View) Predecessors(name string) []string {
	if v == nil {
		return nil
	}
	return v.pred[name]
}

// Test reports whether a ≤ b held. Unknown names yield false.
// Complexity: O(log |succ(a)|).
func (v *View) Test(a, b string) bool {
	succ := v.Successors(a)
	i := sort.SearchStrings(succ, b)

	return i < len(succ) && succ[i] == b
}
