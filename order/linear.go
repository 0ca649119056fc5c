// Package order: LinearExtension.
//
// Depth-first post-order over the strict successor relation, reversed.
// Roots and successors are visited in reverse lexical order so that, after
// the reversal, incomparable elements come out in lexical order wherever the
// order allows it.

package order

// sorter holds the state of one LinearExtension run.
type sorter struct {
	rel   Relation
	opts  options
	state map[string]int // White/Gray/Black
	order []string       // post-order
}

// LinearExtension returns every element exactly once such that a appears
// before b whenever a < b.
// Returns ErrNilRelation, ErrCycleDetected or the context error.
func LinearExtension(rel Relation, opts ...Option) ([]string, error) {
	// 1) Validate input
	if isNil(rel) {
		return nil, ErrNilRelation
	}
	// 2) Apply options
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	// 3) Initialize state
	elems := rel.Elements()
	s := &sorter{
		rel:   rel,
		opts:  o,
		state: make(map[string]int, len(elems)),
		order: make([]string, 0, len(elems)),
	}
	// 4) Visit every root candidate, last name first
	for i := len(elems) - 1; i >= 0; i-- {
		if s.state[elems[i]] == White {
			if err := s.visit(elems[i]); err != nil {
				return nil, err
			}
		}
	}
	// 5) Reverse post-order
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// visit explores name and everything above it.
func (s *sorter) visit(name string) error {
	// 1) Cancellation check at entry
	select {
	case <-s.opts.ctx.Done():
		return s.opts.ctx.Err()
	default:
	}
	// 2) Back edge
	if s.state[name] == Gray {
		return ErrCycleDetected
	}
	if s.state[name] == Black {
		return nil
	}
	s.state[name] = Gray
	// 3) Strict successors, last name first
	succ := s.rel.Successors(name)
	for i := len(succ) - 1; i >= 0; i-- {
		if succ[i] == name {
			continue
		}
		if err := s.visit(succ[i]); err != nil {
			return err
		}
	}
	// 4) Done
	s.state[name] = Black
	s.order = append(s.order, name)

	return nil
}
