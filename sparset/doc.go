// Package sparset implements SparSet, an O(1) insert/delete/lookup set
// keyed by small unsigned integers, built on the sparse-dense pair-array
// trick.
//
// What:
//
//   - SparSet[K] holds a length, a sparse buffer (key → dense index) and
//     a dense buffer (index → key) over a pluggable storage.Backend.
//   - Iteration order is insertion order, with swap-and-pop on deletion.
//   - Intersection/Union/Difference/SymmetricDifference are lazy
//     range-over-func views; IsDisjoint/IsSubset/IsSuperset short-circuit.
//   - WithBitmask augments the set with a shadow bitmap so Contains
//     degrades to a single bit test.
//
// Why:
//
//   - Dense-key workloads (graph vertex IDs, grid cell indices, small
//     enum-like tags) get array-speed set operations without hashing.
//
// Complexity:
//
//   - InsertOne/DeleteOne/Contains: O(1). Retain: O(len). Recall: O(len)
//     amortized across full consumption.
//
// Errors:
//
//   - New panics if n exceeds K's maximum representable value — a
//     caller bug, not a runtime condition. InsertOne panics if k > n.
//     NewMmap returns an error if the backing file is too small or the
//     mmap syscall fails.
package sparset
