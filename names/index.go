package names

import (
	"errors"
	"sort"

	"github.com/katalvlaran/poset/idgen"
)

// ErrNameTaken indicates Bind was called for a name that is already bound.
var ErrNameTaken = errors.New("names: name already bound")

// Index is a name ↔ id bijection for the elements of one poset.
type Index struct {
	byName map[string]idgen.ElementID // name → id
	byID   map[idgen.ElementID]string // id → name
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{
		byName: make(map[string]idgen.ElementID),
		byID:   make(map[idgen.ElementID]string),
	}
}

// Lookup returns the id bound to name, or idgen.Invalid.
// Complexity: O(1).
func (x *Index) Lookup(name string) idgen.ElementID {
	id, ok := x.byName[name]
	if !ok {
		return idgen.Invalid
	}

	return id
}

// Name returns the name bound to id and whether one exists.
// Complexity: O(1).
func (x *Index) Name(id idgen.ElementID) (string, bool) {
	name, ok := x.byID[id]
	return name, ok
}

// Bind associates name with id. Returns ErrNameTaken if name is bound.
// Binding a second name to an id already in the index is a programmer error
// and panics.
// Complexity: O(1).
func (x *Index) Bind(name string, id idgen.ElementID) error {
	if _, taken := x.byName[name]; taken {
		return ErrNameTaken
	}
	if old, ok := x.byID[id]; ok {
		panic("names: id " + id.String() + " already bound to " + old)
	}
	x.byName[name] = id
	x.byID[id] = name

	return nil
}

// Unbind removes name and returns the id it was bound to, or idgen.Invalid
// if name was not bound.
// Complexity: O(1).
func (x *Index) Unbind(name string) idgen.ElementID {
	id, ok := x.byName[name]
	if !ok {
		return idgen.Invalid
	}
	delete(x.byName, name)
	delete(x.byID, id)

	return id
}

// Len returns the number of bound names.
func (x *Index) Len() int {
	return len(x.byName)
}

// Names returns every bound name in lexical order.
// Complexity: O(n log n).
func (x *Index) Names() []string {
	out := make([]string, 0, len(x.byName))
	for name := range x.byName {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// Reset unbinds every name.
func (x *Index) Reset() {
	x.byName = make(map[string]idgen.ElementID)
	x.byID = make(map[idgen.ElementID]string)
}
