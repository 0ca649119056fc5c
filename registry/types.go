package registry

import (
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/poset/idgen"
	"github.com/katalvlaran/poset/names"
	"github.com/katalvlaran/poset/relation"
)

// PosetID identifies a poset within its Registry.
type PosetID uint64

// Sentinel errors for registry operations.
var (
	// ErrPosetNotFound indicates an operation referenced an unknown poset id.
	ErrPosetNotFound = errors.New("registry: poset does not exist")

	// ErrElementNotFound indicates a name is not bound in the poset.
	ErrElementNotFound = relation.ErrElementNotFound

	// ErrElementExists indicates Insert of an already bound name.
	ErrElementExists = relation.ErrElementExists

	// ErrRelationExists indicates Add of a pair already in the closure.
	ErrRelationExists = relation.ErrRelationExists

	// ErrAntisymmetry indicates Add whose reverse pair already holds.
	ErrAntisymmetry = relation.ErrAntisymmetry

	// ErrReflexive indicates Del of an element's relation with itself.
	ErrReflexive = relation.ErrReflexive

	// ErrRelationNotFound indicates Del of a pair not in the closure.
	ErrRelationNotFound = relation.ErrRelationNotFound

	// ErrRelationImplied indicates Del of a pair bridged by a third element.
	ErrRelationImplied = relation.ErrRelationImplied

	// ErrInvariant indicates Validate found a broken invariant.
	ErrInvariant = relation.ErrInvariant
)

// poset bundles the relation store and name index of one poset under one lock.
type poset struct {
	mu    sync.Mutex // guards store and names
	store *relation.Store
	names *names.Index
}

// newPoset returns an empty poset.
func newPoset() *poset {
	return &poset{store: relation.NewStore(), names: names.NewIndex()}
}

// resolve maps name to a stored element id. Caller holds p.mu.
// A name bound to an id the store does not hold is a broken contract and panics.
func (p *poset) resolve(name string) (idgen.ElementID, error) {
	id := p.names.Lookup(name)
	if !id.Valid() {
		return idgen.Invalid, ErrElementNotFound
	}
	if !p.store.Has(id) {
		panic("registry: name " + name + " bound to id " + id.String() + " missing from relation store")
	}

	return id, nil
}

// Option configures a Registry at construction time.
type Option func(r *Registry)

// WithLogger installs the trace logger. Every call emits one debug event.
func WithLogger(l zerolog.Logger) Option {
	return func(r *Registry) { r.log = l }
}

// Registry is a collection of posets addressed by PosetID.
// The zero value is not usable; call New.
type Registry struct {
	mu     sync.RWMutex // guards posets
	posets map[PosetID]*poset

	seq idgen.Sequence // next PosetID
	log zerolog.Logger // trace hook; Nop by default
}

// New returns an empty Registry configured by opts.
// Complexity: O(len(opts)).
func New(opts ...Option) *Registry {
	r := &Registry{
		posets: make(map[PosetID]*poset),
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}
