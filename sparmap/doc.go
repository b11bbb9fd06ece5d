// Package sparmap implements SparMap, an O(1) map keyed by small
// unsigned integers, layering a dense value array on top of a
// sparset.SparSet key set.
//
// What:
//
//   - SparMap[K,V] pairs a SparSet[K] with a values buffer addressed
//     by the same dense index the set assigns each key.
//   - InsertOne/DeleteOne/QueryOne mirror the set's O(1) operations,
//     additionally moving values to keep vals[0:len] packed.
//   - QueryAll/QueryAllMut project a batch of keys to their values.
//
// Why:
//
//   - Any workload needing "array-speed map from a small dense key
//     space to values" — including bspa's own multiset counting of
//     yet-to-be-packed source rectangles.
//
// Complexity:
//
//   - InsertOne/DeleteOne/QueryOne: O(1). Retain: O(len).
//
// Errors:
//
//   - Get (the index-operator form) panics if the key is absent. All
//     other operations return booleans or (V, bool) pairs.
package sparmap
