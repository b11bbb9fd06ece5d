package bspa

import "math"

// Evaluate packs a selection heuristic into the high 32 bits (count
// of rectangles left to place, plus the rounded average height of
// what's left) and the bounding-box slack (Area minus FillArea) into
// the low 32 bits, so beam's min-by-Evaluate tie-breaks on slack once
// the heuristic is equal.
func (n *BspaNode) Evaluate() uint64 {
	var remaining uint64
	for _, v := range n.avaiBox.AsVals() {
		remaining += uint64(v)
	}
	heuristic := remaining + uint64(math.Round(n.avgHighTotal()))

	return heuristic<<32 | uint64(castU32Sat(n.Area()-n.FillArea()))
}

func castU32Sat(v uint64) uint32 {
	if v > math.MaxUint32 {
		return math.MaxUint32
	}
	return uint32(v)
}

// Expand fills slots with one child per candidate block returned by
// prepare for the first open space that admits any.
func (n *BspaNode) Expand(slots []*BspaNode) (int, error) {
	space, cands, err := n.prepare(n.branchPool)
	if err != nil {
		return 0, err
	}

	k := len(cands)
	if k > len(slots) {
		k = len(slots)
	}
	for i := 0; i < k; i++ {
		slots[i] = n.advance(space, cands[i])
	}
	return k, nil
}
