// Package names maps human-readable element names to element ids within one
// poset.
//
// The index is only consulted to resolve API arguments. A name that is not
// bound resolves to idgen.Invalid; turning that into an "element does not
// exist" failure is the caller's job. Names are unique and every bound id has
// exactly one name, so the index also answers the reverse question (Name).
//
// An Index is not safe for concurrent use; the registry guards it with the
// same per-poset mutex that guards the relation store.
package names
