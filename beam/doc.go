// Package beam implements a fixed-width beam search over user-defined
// node types, running either serial or bounded-parallel, with an
// in-place slab of successor nodes and a deterministic per-branch
// selection rule.
//
// What:
//
//   - Node[T] is the capability a search state must expose: fulfillment
//     check, heuristic score, successor expansion, and an optional
//     "inflate" escape hatch for a branch that got stuck.
//   - Beam[T] holds W branches of W+1 slots each (one head, W scratch)
//     and drives them through repeated Cycle calls.
//
// Why:
//
//   - Any state-space search where you want a bounded frontier and a
//     cheap "lower score wins" selection rule — bspa's bin-packing
//     search is the concrete instance in this module.
//
// Complexity:
//
//   - Cycle: O(W · cost(Expand) + W² · cost(Evaluate)) per call.
//
// Errors:
//
//   - ErrBranchExhausted: a single branch produced no successors.
//   - ErrExhausted: every branch returned ErrBranchExhausted in the
//     same cycle.
package beam
