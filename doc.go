// Package poset is an in-memory store of named partial orders.
//
// A registry holds any number of posets, each identified by a numeric id.
// Every poset is a set of uniquely named elements together with the
// reflexive transitive closure of the pairs recorded with Add. The closure
// is kept flattened: each element knows everything above and below it, so a
// comparison is a single set lookup.
//
// Packages:
//
//	idgen/     - process-wide element ids and per-registry poset ids
//	relation/  - closure store over element ids: insert, remove, add, del, test
//	names/     - per-poset name ↔ id index
//	registry/  - posets by id, name-level operations, locking, tracing, views
//	flat/      - flat function-call API over one process-wide registry
//	order/     - linear extensions, minimal/maximal elements, Hasse covers
//	snapshot/  - YAML snapshots, restore, Graphviz DOT export
//	builder/   - chains, grids, lattices and random orders as fixtures
//	config/    - POSET_* environment settings
//	logging/   - zerolog setup for call tracing
//
// The posetctl command (cmd/posetctl) runs line-oriented scripts against a
// fresh registry.
//
// Quick example, a ≤ b ≤ c:
//
//	c
//	│
//	b
//	│
//	a
//
//	r := registry.New()
//	p := r.New()
//	_ = r.Insert(p, "a")
//	_ = r.Insert(p, "b")
//	_ = r.Insert(p, "c")
//	_ = r.Add(p, "a", "b")
//	_ = r.Add(p, "b", "c")
//	ok, _ := r.Test(p, "a", "c") // true
package poset
