package bspa

import (
	"github.com/katalvlaran/beampack/geom"
	"github.com/katalvlaran/beampack/sparmap"
)

// advance produces the child node reached by placing block into
// space: avaiBox is decremented by block's shape usage, avaiBlk drops
// any candidate no longer covered by the reduced multiset, blocks
// gains the new placement, and spaces is re-derived around it.
func (n *BspaNode) advance(space geom.Placement[geom.Rect], block *geom.RectGroup) *BspaNode {
	avaiBox := n.avaiBox.Clone()
	for _, idx := range avaiBox.AsKeys() {
		v, _ := avaiBox.QueryOne(idx)
		used := countShapeInBlock(block, n.shapeOf[idx])
		avaiBox.InsertOne(idx, v-used)
	}

	var avaiBlk []*geom.RectGroup
	for _, cand := range n.avaiBlk {
		if fitsWithin(cand, avaiBox, n.shapeOf) {
			avaiBlk = append(avaiBlk, cand)
		}
	}

	placed := geom.Placement[*geom.RectGroup]{X: space.X, Y: space.Y, Item: block}
	blocks := append(append([]geom.Placement[*geom.RectGroup](nil), n.blocks...), placed)

	child := &BspaNode{
		spaces:     n.genSpace(placed),
		blocks:     blocks,
		shapeOf:    n.shapeOf,
		avaiBox:    avaiBox,
		avaiBlk:    avaiBlk,
		branchPool: n.branchPool,
		containerW: n.containerW,
	}
	assertNodeExpand(child)
	return child
}

func fitsWithin(cand *geom.RectGroup, avaiBox *sparmap.SparMap[uint32, int], shapeOf []geom.Rect) bool {
	for _, idx := range avaiBox.AsKeys() {
		v, _ := avaiBox.QueryOne(idx)
		if countShapeInBlock(cand, shapeOf[idx]) > v {
			return false
		}
	}
	return true
}
