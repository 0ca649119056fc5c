// Package snapshot serializes posets.
//
// A Snapshot lists every element of one poset together with the names
// strictly above it in the closure. It is produced from a registry.View and
// can be encoded as YAML, decoded again, and restored into any registry:
//
//	version: 1
//	poset: 0
//	elements:
//	  - name: a
//	    id: 17
//	    above: [b, c]
//	  - name: b
//	    id: 18
//	    above: [c]
//	  - name: c
//	    id: 19
//
// Ids are informational. Restore creates a new poset whose elements receive
// fresh ids; names and relations are what carry over. Restoring the
// snapshot of a view reproduces its closure exactly, including pairs that
// survived a Del of the pair they were derived from.
//
// WriteDOT renders the Hasse diagram (cover pairs only) in Graphviz format.
package snapshot
