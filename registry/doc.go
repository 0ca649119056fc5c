// Package registry owns a collection of independent posets and exposes every
// poset operation by name.
//
// A Registry maps PosetID → (relation store, name index). Each call resolves
// the poset id first, then element names through the poset's name index, and
// finally mutates or queries the relation store. No call touches more than one
// poset.
//
// Lifecycle:
//
//	New()         O(1)   fresh PosetID (0, 1, 2, ... never reused)
//	Delete(id)    O(1)   discard the poset and its names
//	Clear(id)     O(1)   drop every element, keep the id usable
//	Size(id)      O(1)   element count
//	Exists(id)    O(1)   existence, unambiguous
//
// Elements (see package relation for the closure rules):
//
//	Insert(id, x)       Remove(id, x)
//	Add(id, x, y)       Del(id, x, y)       Test(id, x, y)
//
// Element ids come from idgen.NextElement, one counter for the whole process,
// so ids are never reused across posets, clears or registries.
//
// Concurrency:
//
// The poset map is guarded by one sync.RWMutex: New/Delete take the write
// lock, every other call takes the read lock just long enough to find the
// poset. Each poset carries its own sync.Mutex, held for the full duration of
// an element call, so calls on different posets never contend.
//
// Errors:
//
//	ErrPosetNotFound      unknown poset id
//	ErrElementNotFound    name not bound in the poset
//	ErrElementExists      Insert of a bound name
//	ErrRelationExists     Add of a pair already in the closure
//	ErrAntisymmetry       Add whose reverse already holds
//	ErrReflexive          Del(x, x)
//	ErrRelationNotFound   Del of a pair not in the closure
//	ErrRelationImplied    Del of a pair bridged by a third element
//
// Element-level sentinels are the relation package's values, so errors.Is
// works against either name.
//
// Tracing:
//
// WithLogger installs a zerolog.Logger that receives one debug event per call
// describing the call and its outcome. Tracing never changes a result.
// Internal inconsistencies between the name index and the relation store
// panic instead of being reported as errors.
package registry
