package bspa

import "github.com/katalvlaran/beampack/geom"

// selBlock filters avaiBlk to blocks that fit within space, sorted by
// Score ascending (lower is better), capped to b candidates.
func (n *BspaNode) selBlock(space geom.Placement[geom.Rect], b int) []*geom.RectGroup {
	var cands []*geom.RectGroup
	for _, blk := range n.avaiBlk {
		if space.Item.W() >= blk.W() && space.Item.H() >= blk.H() {
			cands = append(cands, blk)
		}
	}

	scores := make(map[*geom.RectGroup]uint64, len(cands))
	for _, blk := range cands {
		scores[blk] = blk.Score(space, n.avgHighRemaining(blk))
	}
	sortByScoreAsc(cands, scores)

	if len(cands) > b {
		cands = cands[:b]
	}
	return cands
}

func sortByScoreAsc(cands []*geom.RectGroup, scores map[*geom.RectGroup]uint64) {
	for i := 1; i < len(cands); i++ {
		for j := i; j > 0 && scores[cands[j]] < scores[cands[j-1]]; j-- {
			cands[j], cands[j-1] = cands[j-1], cands[j]
		}
	}
}

// avgHighRemaining is the average height of avaiBox rectangles that
// would remain after placing blk: the fraction sel_block ranks
// candidates by, since it answers "how tall is the leftover pile".
func (n *BspaNode) avgHighRemaining(blk *geom.RectGroup) float64 {
	var s, l uint64
	for _, idx := range n.avaiBox.AsKeys() {
		v, _ := n.avaiBox.QueryOne(idx)
		used := countShapeInBlock(blk, n.shapeOf[idx])
		d := v - used
		l += uint64(d)
		s += uint64(n.shapeOf[idx].H()) * uint64(d)
	}
	if l == 0 {
		return 0
	}
	return float64(s) / float64(l)
}

// avgHighTotal is the average height over every remaining avaiBox
// rectangle, with no block's usage subtracted — the figure Evaluate
// folds into its heuristic.
func (n *BspaNode) avgHighTotal() float64 {
	var s, l uint64
	for _, idx := range n.avaiBox.AsKeys() {
		v, _ := n.avaiBox.QueryOne(idx)
		l += uint64(v)
		s += uint64(n.shapeOf[idx].H()) * uint64(v)
	}
	if l == 0 {
		return 0
	}
	return float64(s) / float64(l)
}

// prepare walks the open spaces in (y,x) order and returns the first
// one that admits at least one candidate block, along with up to b
// best-scoring candidates for it.
func (n *BspaNode) prepare(b int) (geom.Placement[geom.Rect], []*geom.RectGroup, error) {
	for _, space := range sortedSpaces(n.spaces) {
		cands := n.selBlock(space, b)
		if len(cands) > 0 {
			return space, cands, nil
		}
	}
	return geom.Placement[geom.Rect]{}, nil, ErrNoFittingSpace
}

// genSpace re-derives the open spaces after placing block: spaces
// overlapping it are replaced by their Subtract remainder, spaces
// untouched by it pass through unchanged.
func (n *BspaNode) genSpace(block geom.Placement[*geom.RectGroup]) []geom.Placement[geom.Rect] {
	var overlapping, untouched []geom.Placement[geom.Rect]
	for _, sp := range n.spaces {
		if geom.Overlaps(sp, block) {
			for slab := range geom.Subtract(sp, block) {
				overlapping = append(overlapping, slab)
			}
		} else {
			untouched = append(untouched, sp)
		}
	}
	return append(overlapping, untouched...)
}
