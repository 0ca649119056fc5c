package order

import (
	"context"
	"errors"

	"github.com/katalvlaran/poset/registry"
)

// Visitation states for the depth-first sort.
const (
	White = iota // not visited yet
	Gray         // on the recursion stack
	Black        // fully explored
)

var (
	// ErrNilRelation is returned when a nil Relation is passed.
	ErrNilRelation = errors.New("order: relation is nil")

	// ErrCycleDetected indicates two distinct elements precede each other.
	ErrCycleDetected = errors.New("order: cycle detected")
)

// Relation is the read-only view the analyses need. Successors(x) lists
// every y with x ≤ y, x itself included, sorted by name.
type Relation interface {
	Elements() []string
	Successors(name string) []string
}

// isNil reports a nil Relation, including a nil *registry.View stored in
// the interface.
func isNil(rel Relation) bool {
	if rel == nil {
		return true
	}
	v, ok := rel.(*registry.View)

	return ok && v == nil
}

// Pair is one cover relation Lower < Upper.
type Pair struct {
	Lower string
	Upper string
}

// Option configures LinearExtension.
type Option func(*options)

// options holds LinearExtension settings.
type options struct {
	ctx context.Context // cancellation; defaults to Background
}

// defaultOptions returns Background-context options.
func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets the cancellation context. A nil ctx has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
