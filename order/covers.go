package order

import "sort"

// Covers returns the Hasse pairs of rel sorted by (Lower, Upper): a < b such
// that no k other than a and b satisfies a ≤ k ≤ b.
// Returns ErrNilRelation for nil input.
func Covers(rel Relation) ([]Pair, error) {
	if isNil(rel) {
		return nil, ErrNilRelation
	}
	up := upSets(rel)

	var out []Pair
	for _, a := range rel.Elements() {
		for _, b := range rel.Successors(a) {
			if b == a || bridged(rel, up, a, b) {
				continue
			}
			out = append(out, Pair{Lower: a, Upper: b})
		}
	}
	// Elements and Successors are sorted, so out already is; keep the
	// guarantee independent of the Relation implementation.
	sort.Slice(out, func(i, j int) bool {
		if out[i].Lower != out[j].Lower {
			return out[i].Lower < out[j].Lower
		}
		return out[i].Upper < out[j].Upper
	})

	return out, nil
}

// Minimal returns the elements with nothing strictly below them, sorted.
func Minimal(rel Relation) ([]string, error) {
	if isNil(rel) {
		return nil, ErrNilRelation
	}
	above := make(map[string]bool)
	for _, a := range rel.Elements() {
		for _, b := range rel.Successors(a) {
			if b != a {
				above[b] = true
			}
		}
	}
	var out []string
	for _, a := range rel.Elements() {
		if !above[a] {
			out = append(out, a)
		}
	}

	return out, nil
}

// Maximal returns the elements with nothing strictly above them, sorted.
func Maximal(rel Relation) ([]string, error) {
	if isNil(rel) {
		return nil, ErrNilRelation
	}
	var out []string
	for _, a := range rel.Elements() {
		top := true
		for _, b := range rel.Successors(a) {
			if b != a {
				top = false
				break
			}
		}
		if top {
			out = append(out, a)
		}
	}

	return out, nil
}

// upSets indexes Successors as sets for O(1) membership.
func upSets(rel Relation) map[string]map[string]struct{} {
	out := make(map[string]map[string]struct{})
	for _, a := range rel.Elements() {
		set := make(map[string]struct{})
		for _, b := range rel.Successors(a) {
			set[b] = struct{}{}
		}
		out[a] = set
	}

	return out
}

// bridged reports whether some k ∉ {a, b} has a ≤ k ≤ b.
func bridged(rel Relation, up map[string]map[string]struct{}, a, b string) bool {
	for _, k := range rel.Successors(a) {
		if k == a || k == b {
			continue
		}
		if _, ok := up[k][b]; ok {
			return true
		}
	}

	return false
}
