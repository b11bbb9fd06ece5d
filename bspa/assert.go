//go:build bspa_debug

package bspa

import (
	"fmt"

	"github.com/katalvlaran/beampack/geom"
)

// assertNodeExpand checks the four invariants a freshly-advanced
// child must hold: no two placed blocks overlap, no open space
// overlaps a placed block, no avai_blk candidate uses more of any
// shape than avai_box has left, and avai_blk still offers a candidate
// for every count from 1 up to each shape's remaining quantity (so
// sel_block never silently loses a reachable block count). Built only
// under -tags bspa_debug, the same way expensive per-call invariant
// checks stay out of release builds elsewhere in this module.
func assertNodeExpand(n *BspaNode) {
	for i := range n.blocks {
		for j := i + 1; j < len(n.blocks); j++ {
			if geom.Overlaps(n.blocks[i], n.blocks[j]) {
				panic(fmt.Sprintf("bspa: placed blocks %d and %d overlap", i, j))
			}
		}
	}
	for _, sp := range n.spaces {
		for _, b := range n.blocks {
			if geom.Overlaps(sp, b) {
				panic("bspa: open space overlaps a placed block")
			}
		}
	}

	for _, blk := range n.avaiBlk {
		for _, idx := range n.avaiBox.AsKeys() {
			v, _ := n.avaiBox.QueryOne(idx)
			if d := countShapeInBlock(blk, n.shapeOf[idx]); d > v {
				panic(fmt.Sprintf("bspa: avai_blk candidate uses shape %d %d times, only %d left in avai_box", idx, d, v))
			}
		}
	}

	for _, idx := range n.avaiBox.AsKeys() {
		v, _ := n.avaiBox.QueryOne(idx)
		for count := 1; count <= v; count++ {
			covered := false
			for _, blk := range n.avaiBlk {
				if countShapeInBlock(blk, n.shapeOf[idx]) == count {
					covered = true
					break
				}
			}
			if !covered {
				panic(fmt.Sprintf("bspa: avai_blk has no candidate using shape %d exactly %d times (%d remain)", idx, count, v))
			}
		}
	}
}

// assertNodeInflate checks that every top-row space (one reaching
// n's current height) was grown to the same bottom edge, matching
// what growTopSpaces is meant to produce.
func assertNodeInflate(n *BspaNode) {
	ymax := n.H()
	var bottom uint32
	set := false
	for _, sp := range n.spaces {
		if sp.Y+sp.Item.H() < ymax {
			continue
		}
		b := sp.Y + sp.Item.H()
		if !set {
			bottom, set = b, true
			continue
		}
		if b != bottom {
			panic(fmt.Sprintf("bspa: inflate left top-row spaces at mismatched heights %d and %d", bottom, b))
		}
	}
}
