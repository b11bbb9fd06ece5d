package bspa

import (
	"sort"

	"github.com/katalvlaran/beampack/geom"
	"github.com/katalvlaran/beampack/sparmap"
)

// BspaNode is a single state in the bin-packing search: the rectangles
// still to be placed, the candidate blocks built from them, the open
// spaces in the container, and the blocks already placed.
//
// shapeOf, branchPool and containerW are shared, read-only, across a
// node and all of its descendants produced by advance; only spaces,
// blocks, avaiBox and avaiBlk change per child.
type BspaNode struct {
	spaces []geom.Placement[geom.Rect]
	blocks []geom.Placement[*geom.RectGroup]

	shapeOf    []geom.Rect
	avaiBox    *sparmap.SparMap[uint32, int]
	avaiBlk    []*geom.RectGroup
	branchPool int
	containerW uint32
}

// rectCode packs a rectangle's dimensions into a single dense-ish key
// used only to deduplicate identical shapes while the shape table is
// built; it is never itself the sparmap key (see New).
func rectCode(r geom.Rect) uint64 {
	return uint64(r.W())<<32 | uint64(r.H())
}

// New builds the initial search node for packing items into a
// container of width w: deduplicates items into a shape table,
// derives an initial container height from total area, builds every
// single-shape grid block passing the fill-ratio filter, then forms
// up to n additional two-block combinations from those grids.
//
// branchPool is the candidate-block pool width (spec.md's "B"):
// Expand and Estimate draw up to this many best-scoring blocks per
// selected space. It is carried on every node so children inherit it
// without a side channel.
func New(items []geom.Rect, w uint32, n int, fillRatio float32, branchPool int) *BspaNode {
	codeToIdx := make(map[uint64]int)
	var shapeOf []geom.Rect
	var counts []int
	for _, r := range items {
		code := rectCode(r)
		idx, ok := codeToIdx[code]
		if !ok {
			idx = len(shapeOf)
			codeToIdx[code] = idx
			shapeOf = append(shapeOf, r)
			counts = append(counts, 0)
		}
		counts[idx]++
	}

	var total uint64
	for i, r := range shapeOf {
		total += r.Area() * uint64(counts[i])
	}
	containerH := uint32(total / uint64(w))

	grids := buildSingleShapeGrids(shapeOf, counts, fillRatio)
	avaiBlk := combineCandidates(grids, w, containerH, shapeOf, counts, fillRatio, n)

	boxCap := len(shapeOf) - 1
	if boxCap < 0 {
		boxCap = 0
	}
	avaiBox := sparmap.New[uint32, int](boxCap)
	for i, c := range counts {
		avaiBox.InsertOne(uint32(i), c)
	}

	return &BspaNode{
		spaces:     []geom.Placement[geom.Rect]{{X: 0, Y: 0, Item: geom.NewRect(w, containerH)}},
		shapeOf:    shapeOf,
		avaiBox:    avaiBox,
		avaiBlk:    avaiBlk,
		branchPool: branchPool,
		containerW: w,
	}
}

// buildSingleShapeGrids builds every bw-by-bl rectangular grid of a
// single shape that fits within its own total count, keeping only
// grids whose fill ratio clears fillRatio.
func buildSingleShapeGrids(shapeOf []geom.Rect, counts []int, fillRatio float32) []*geom.RectGroup {
	var out []*geom.RectGroup
	for i, bc := range counts {
		r := shapeOf[i]
		for bw := 1; bw <= bc; bw++ {
			bl := bc / bw
			for l := 1; l <= bl; l++ {
				placements := make([]geom.Placement[geom.Rect], 0, bw*l)
				for x := 0; x < bw; x++ {
					for y := 0; y < l; y++ {
						placements = append(placements, geom.Placement[geom.Rect]{
							X: uint32(x) * r.W(), Y: uint32(y) * r.H(), Item: r,
						})
					}
				}
				g := geom.NewRectGroup(placements)
				if float32(g.FillArea())/float32(g.Area()) >= fillRatio {
					out = append(out, g)
				}
			}
		}
	}
	return out
}

// combineCandidates pairs every grid with every grid (including
// itself) via Combine, keeping up to n resulting candidates that fit
// the container, stay within the base shape counts, and clear
// fillRatio; the untouched single-shape grids are appended after.
func combineCandidates(grids []*geom.RectGroup, containerW, containerH uint32, shapeOf []geom.Rect, baseCounts []int, fillRatio float32, n int) []*geom.RectGroup {
	var combined []*geom.RectGroup
outer:
	for _, a := range grids {
		for _, b := range grids {
			for _, c := range a.Combine(b) {
				if c.W() > containerW || c.H() > containerH {
					continue
				}
				if float32(c.FillArea())/float32(c.Area()) < fillRatio {
					continue
				}
				if !withinCounts(c, shapeOf, baseCounts) {
					continue
				}
				combined = append(combined, c)
				if len(combined) >= n {
					break outer
				}
			}
		}
	}
	return append(combined, grids...)
}

func withinCounts(g *geom.RectGroup, shapeOf []geom.Rect, baseCounts []int) bool {
	for i, r := range shapeOf {
		if countShapeInBlock(g, r) > baseCounts[i] {
			return false
		}
	}
	return true
}

func countShapeInBlock(g *geom.RectGroup, r geom.Rect) int {
	n := 0
	for _, p := range g.List() {
		if p.Item == r {
			n++
		}
	}
	return n
}

// Blocks returns the blocks placed so far, in placement order.
func (n *BspaNode) Blocks() []geom.Placement[*geom.RectGroup] {
	if n == nil {
		return nil
	}
	return n.blocks
}

// HasFulfilled reports whether every rectangle has been placed.
func (n *BspaNode) HasFulfilled() bool {
	if n == nil || len(n.blocks) == 0 {
		return false
	}
	var remaining int
	for _, v := range n.avaiBox.AsVals() {
		remaining += v
	}
	return remaining == 0
}

// boundingBox, W, H, Area and FillArea describe the bounding box
// of the blocks placed so far; nil or empty nodes report zero rather
// than panicking.
func (n *BspaNode) boundingBox() (xmin, xmax, ymin, ymax uint32, ok bool) {
	if n == nil || len(n.blocks) == 0 {
		return 0, 0, 0, 0, false
	}
	xmin, xmax = n.blocks[0].X, n.blocks[0].X+n.blocks[0].Item.W()
	ymin, ymax = n.blocks[0].Y, n.blocks[0].Y+n.blocks[0].Item.H()
	for _, p := range n.blocks[1:] {
		if p.X < xmin {
			xmin = p.X
		}
		if r := p.X + p.Item.W(); r > xmax {
			xmax = r
		}
		if p.Y < ymin {
			ymin = p.Y
		}
		if b := p.Y + p.Item.H(); b > ymax {
			ymax = b
		}
	}
	return xmin, xmax, ymin, ymax, true
}

func (n *BspaNode) W() uint32 {
	xmin, xmax, _, _, ok := n.boundingBox()
	if !ok {
		return 0
	}
	return xmax - xmin
}

func (n *BspaNode) H() uint32 {
	_, _, ymin, ymax, ok := n.boundingBox()
	if !ok {
		return 0
	}
	return ymax - ymin
}

func (n *BspaNode) Area() uint64 {
	return uint64(n.W()) * uint64(n.H())
}

func (n *BspaNode) FillArea() uint64 {
	if n == nil {
		return 0
	}
	var sum uint64
	for _, p := range n.blocks {
		sum += p.Item.Area()
	}
	return sum
}

var _ geom.Area = (*BspaNode)(nil)

// Estimate returns how many candidate blocks a trial prepare would
// offer for the best open space, or 0 if none fit.
func (n *BspaNode) Estimate() int {
	_, cands, err := n.prepare(n.branchPool)
	if err != nil {
		return 0
	}
	return len(cands)
}

func sortedSpaces(spaces []geom.Placement[geom.Rect]) []geom.Placement[geom.Rect] {
	out := append([]geom.Placement[geom.Rect](nil), spaces...)
	sort.Slice(out, func(i, j int) bool { return geom.Compare(out[i], out[j]) < 0 })
	return out
}
