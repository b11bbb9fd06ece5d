// Package bspa implements BspaNode, a beam.Node that packs a multiset
// of axis-aligned rectangles into composite blocks and places those
// blocks into a growing container.
//
// A node holds the rectangles not yet grouped into a block (avai_box,
// a multiset counted through sparmap.SparMap), the candidate blocks
// not yet placed (avai_blk), the free rectangular spaces still open
// in the container (spaces), and the blocks already placed (blocks).
// Expand picks the lowest-sorted open space that admits a candidate
// block, selects up to the node's
// branch-pool width of best-scoring candidate blocks that fit it, and
// produces one child per candidate: each child subtracts the placed
// block's footprint from avai_box, drops any avai_blk candidate that
// no longer fits the reduced multiset, and re-derives spaces by
// splitting every open space the placed block overlaps. A node HasFulfilled once
// avai_box is fully spent. Inflate grows the container by however
// much height a best-effort unbounded placement run would need, for
// when beam.ErrExhausted is reached before every rectangle is placed.
package bspa
