package bspa

import "github.com/katalvlaran/beampack/geom"

// unboundedSentinel stands in for "this column has no height limit"
// while probing how far a trial packing run would grow it.
const unboundedSentinel = ^uint32(0)

// Inflate runs an unbounded trial placement from this node, placing
// one block at a time until no further block fits, and grows the
// container's top-row spaces by the extra height that finished trial
// reached, so the real node's spaces admit those blocks directly.
func (n *BspaNode) Inflate() {
	if n == nil || len(n.blocks) == 0 {
		return
	}

	xmax := n.containerW
	for _, sp := range n.spaces {
		if r := sp.X + sp.Item.W(); r > xmax {
			xmax = r
		}
	}
	ymax := n.H()

	trial := n.cloneShallow()
	growTopSpaces(trial, ymax, xmax, func(y uint32) uint32 { return unboundedSentinel - y })

	cur := trial
	placedHeight := ymax
	for {
		space, cands, err := cur.prepare(1)
		if err != nil {
			placedHeight = cur.H()
			break
		}
		cur = cur.advance(space, cands[0])
	}
	d := placedHeight - ymax

	growTopSpaces(n, ymax, xmax, func(y uint32) uint32 { return ymax + d - y })
	assertNodeInflate(n)
}

// growTopSpaces replaces every space whose bottom edge reaches ymax
// with a space of the same width and a height computed by heightAt,
// appending a full-width space at y=ymax if none already spans xmax.
func growTopSpaces(node *BspaNode, ymax, xmax uint32, heightAt func(y uint32) uint32) {
	spansFull := false
	for i := range node.spaces {
		sp := &node.spaces[i]
		if sp.Y+sp.Item.H() < ymax {
			continue
		}
		sp.Item = geom.NewRect(sp.Item.W(), heightAt(sp.Y))
		if sp.Item.W() >= xmax {
			spansFull = true
		}
	}
	if !spansFull {
		node.spaces = append(node.spaces, geom.Placement[geom.Rect]{
			X: 0, Y: ymax, Item: geom.NewRect(xmax, heightAt(ymax)),
		})
	}
}

// cloneShallow copies enough state to run a trial prepare/advance
// chain without mutating n: spaces and avaiBlk get independent
// backing slices, avaiBox gets an independent sparmap, and the
// read-only fields (shapeOf, branchPool, containerW) are shared.
func (n *BspaNode) cloneShallow() *BspaNode {
	return &BspaNode{
		spaces:     append([]geom.Placement[geom.Rect](nil), n.spaces...),
		blocks:     n.blocks,
		shapeOf:    n.shapeOf,
		avaiBox:    n.avaiBox.Clone(),
		avaiBlk:    append([]*geom.RectGroup(nil), n.avaiBlk...),
		branchPool: n.branchPool,
		containerW: n.containerW,
	}
}
