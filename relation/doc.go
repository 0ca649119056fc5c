// Package relation implements the relation store at the heart of a poset:
// a mapping from element id to two flattened closure sets.
//
//	successors(e)   = { x : e ≤ x }   (e itself included)
//	predecessors(e) = { x : x ≤ e }   (e itself included)
//
// The closure is fully materialized. Queries are O(1) map lookups; every
// mutation updates exactly the region it affects instead of recomputing the
// closure from scratch.
//
// Operations (ids are idgen.ElementID values issued by the caller):
//
//	Insert(id)    O(1)                        new element, self-only sets
//	Remove(id)    O(|pred(id)| + |succ(id)|)  drop every fact mentioning id
//	Add(a, b)     O(|pred(a)| × |succ(b)|)    a ≤ b, then re-close the region
//	Del(a, b)     O(|succ(a)|)                drop the single fact a ≤ b
//	Test(a, b)    O(1)                        b ∈ succ(a)
//
// Invariants kept after every successful mutation:
//
//   - Reflexivity: e ∈ succ(e) and e ∈ pred(e).
//   - Antisymmetry: for a ≠ b, never both b ∈ succ(a) and a ∈ succ(b).
//   - Transitivity: b ∈ succ(a) and c ∈ succ(b) imply c ∈ succ(a).
//   - Duality: b ∈ succ(a) iff a ∈ pred(b).
//
// Del only removes pairs that no third element bridges; it never cascades.
// Pairs that were once derived through the removed pair stay in place:
//
//	Add(a,b); Add(b,c)   // a ≤ b ≤ c, closure holds a ≤ c
//	Del(a,c)             // ErrRelationImplied, b sits between
//	Del(a,b)             // ok
//	Test(a,c)            // still true
//
// Every call is all-or-nothing: it either applies all of its mutations and
// returns nil, or returns an error and leaves the store untouched.
//
// A Store is not safe for concurrent use; the registry serializes access
// with one mutex per poset. Structural corruption (a closure entry whose
// element is missing, a pair without its dual) is a programmer error and
// panics.
package relation
