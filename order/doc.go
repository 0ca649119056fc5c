// Package order derives order-theoretic structure from a poset snapshot.
//
// What:
//
//   - LinearExtension: a total order of the elements compatible with ≤
//     (a topological sort of the closure), deterministic for a given input.
//   - Covers: the Hasse diagram, i.e. the pairs a < b with no element
//     strictly between them. These are exactly the pairs Del would accept.
//   - Minimal / Maximal: elements with nothing strictly below / above them.
//
// Every function reads a Relation, which *registry.View implements, so the
// analysis runs on an immutable copy and never holds a poset lock.
//
// Complexity (n elements, k = max |succ|):
//
//   - LinearExtension: Time O(n·k), Memory O(n)
//   - Covers:          Time O(n·k²), Memory O(n·k)
//   - Minimal/Maximal: Time O(n·k)
//
// Errors:
//
//   - ErrNilRelation     nil input
//   - ErrCycleDetected   the closure is not antisymmetric (corrupt input)
//   - context errors     LinearExtension cancelled via WithContext
package order
