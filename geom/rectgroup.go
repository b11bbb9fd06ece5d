package geom

import (
	"math"
	"sync"
)

// RectGroup is an owned list of rectangle placements treated as a
// single packable unit, with its bounding area, fill area, width and
// height memoized on first access via sync.OnceValue.
type RectGroup struct {
	list []Placement[Rect]

	wFn    func() uint32
	hFn    func() uint32
	areaFn func() uint64
	fillFn func() uint64
}

// NewRectGroup builds a RectGroup owning a copy of list.
func NewRectGroup(list []Placement[Rect]) *RectGroup {
	g := &RectGroup{list: append([]Placement[Rect](nil), list...)}
	g.wFn = sync.OnceValue(func() uint32 {
		xmin, xmax := g.list[0].X, g.list[0].X+g.list[0].Item.W()
		for _, p := range g.list[1:] {
			if p.X < xmin {
				xmin = p.X
			}
			if right := p.X + p.Item.W(); right > xmax {
				xmax = right
			}
		}
		return xmax - xmin
	})
	g.hFn = sync.OnceValue(func() uint32 {
		ymin, ymax := g.list[0].Y, g.list[0].Y+g.list[0].Item.H()
		for _, p := range g.list[1:] {
			if p.Y < ymin {
				ymin = p.Y
			}
			if bottom := p.Y + p.Item.H(); bottom > ymax {
				ymax = bottom
			}
		}
		return ymax - ymin
	})
	g.areaFn = sync.OnceValue(func() uint64 {
		return uint64(g.W()) * uint64(g.H())
	})
	g.fillFn = sync.OnceValue(func() uint64 {
		var sum uint64
		for _, p := range g.list {
			sum += p.Item.Area()
		}
		return sum
	})
	return g
}

func (g *RectGroup) List() []Placement[Rect] { return g.list }
func (g *RectGroup) W() uint32               { return g.wFn() }
func (g *RectGroup) H() uint32               { return g.hFn() }
func (g *RectGroup) Area() uint64            { return g.areaFn() }
func (g *RectGroup) FillArea() uint64        { return g.fillFn() }

var _ Area = (*RectGroup)(nil)

// Combine forms the two candidate blocks from self and other: placing
// other to the right of self ("side-by-side", shifted by self's
// width), and placing other below self ("stacked", shifted by self's
// height).
func (g *RectGroup) Combine(other *RectGroup) [2]*RectGroup {
	w, h := g.W(), g.H()

	sideBySide := make([]Placement[Rect], 0, len(g.list)+len(other.list))
	sideBySide = append(sideBySide, g.list...)
	for _, p := range other.list {
		p.X += w
		sideBySide = append(sideBySide, p)
	}

	stacked := make([]Placement[Rect], 0, len(g.list)+len(other.list))
	stacked = append(stacked, g.list...)
	for _, p := range other.list {
		p.Y += h
		stacked = append(stacked, p)
	}

	return [2]*RectGroup{NewRectGroup(sideBySide), NewRectGroup(stacked)}
}

// Score rates how well this group fills space, lower is better.
// Callers must pre-filter to space.Area() >= g.Area(); the subtraction
// is unsigned and traps on underflow otherwise.
func (g *RectGroup) Score(space Placement[Rect], avgHigh float64) uint64 {
	return space.Item.Area() - g.Area() + uint64(math.Round(avgHigh))
}
