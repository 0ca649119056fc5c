// Package idgen issues the integer handles used throughout poset.
//
// Two kinds of handle exist:
//
//   - ElementID: one process-wide counter shared by every poset of every
//     registry. The first id handed out is 1; 0 is reserved as Invalid and is
//     what name lookups return for "no such element". Ids are never reused,
//     not after Remove, not after clearing or deleting the owning poset.
//
//   - Sequence: a small per-owner counter starting at 0. A registry uses one
//     to number its posets.
//
// Both counters are lock-free (sync/atomic) so they can be shared across
// goroutines regardless of the locking granularity elsewhere.
//
// Complexity:
//
//   - NextElement, Sequence.Next: O(1), no allocation.
package idgen
