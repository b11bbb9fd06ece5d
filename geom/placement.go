package geom

import "iter"

// Placement anchors an Area-capable item at an (x,y) offset. Width and
// height forward to the item.
type Placement[T Area] struct {
	X, Y uint32
	Item T
}

func (p Placement[T]) W() uint32        { return p.Item.W() }
func (p Placement[T]) H() uint32        { return p.Item.H() }
func (p Placement[T]) Area() uint64     { return p.Item.Area() }
func (p Placement[T]) FillArea() uint64 { return p.Item.FillArea() }

// Overlaps reports whether two placements' axis-aligned bounding boxes
// intersect with positive area. T and U may differ — a RectGroup
// placement can be tested against a Rect placement and vice versa.
func Overlaps[T, U Area](a Placement[T], b Placement[U]) bool {
	lx := a.X + a.Item.W()
	ly := a.Y + a.Item.H()
	rx := b.X + b.Item.W()
	ry := b.Y + b.Item.H()
	return b.X < lx && rx > a.X && b.Y < ly && ry > a.Y
}

// SplitN returns the slab of self lying strictly north of (above, in
// increasing-y) rhs, or false if no such slab exists.
func SplitN[T, U Area](self Placement[T], rhs Placement[U]) (Placement[Rect], bool) {
	if rhs.Y <= self.Y {
		return Placement[Rect]{}, false
	}
	return Placement[Rect]{
		X:    self.X,
		Y:    self.Y,
		Item: NewRect(self.Item.W(), satSub(rhs.Y, self.Y)),
	}, true
}

// SplitS returns the slab of self lying strictly south of rhs.
func SplitS[T, U Area](self Placement[T], rhs Placement[U]) (Placement[Rect], bool) {
	selfBottom := self.Y + self.Item.H()
	rhsBottom := rhs.Y + rhs.Item.H()
	if rhsBottom >= selfBottom {
		return Placement[Rect]{}, false
	}
	return Placement[Rect]{
		X:    self.X,
		Y:    rhsBottom,
		Item: NewRect(self.Item.W(), satSub(selfBottom, rhsBottom)),
	}, true
}

// SplitE returns the slab of self lying strictly east of rhs.
func SplitE[T, U Area](self Placement[T], rhs Placement[U]) (Placement[Rect], bool) {
	if rhs.X <= self.X {
		return Placement[Rect]{}, false
	}
	return Placement[Rect]{
		X:    self.X,
		Y:    self.Y,
		Item: NewRect(satSub(rhs.X, self.X), self.Item.H()),
	}, true
}

// SplitW returns the slab of self lying strictly west of rhs.
func SplitW[T, U Area](self Placement[T], rhs Placement[U]) (Placement[Rect], bool) {
	selfRight := self.X + self.Item.W()
	rhsRight := rhs.X + rhs.Item.W()
	if rhsRight >= selfRight {
		return Placement[Rect]{}, false
	}
	return Placement[Rect]{
		X:    rhsRight,
		Y:    self.Y,
		Item: NewRect(satSub(selfRight, rhsRight), self.Item.H()),
	}, true
}

// Subtract yields the four direction slabs of self cut by rhs, zero-area
// slabs filtered out, in N, S, E, W order.
func Subtract[T, U Area](self Placement[T], rhs Placement[U]) iter.Seq[Placement[Rect]] {
	return func(yield func(Placement[Rect]) bool) {
		type candidate struct {
			p  Placement[Rect]
			ok bool
		}
		n, okN := SplitN(self, rhs)
		s, okS := SplitS(self, rhs)
		e, okE := SplitE(self, rhs)
		w, okW := SplitW(self, rhs)
		for _, c := range [4]candidate{{n, okN}, {s, okS}, {e, okE}, {w, okW}} {
			if !c.ok || c.p.Item.Area() == 0 {
				continue
			}
			if !yield(c.p) {
				return
			}
		}
	}
}

// Compare orders two placements of the same item type (y,x)
// lexicographically, y primary: a true two-key comparison rather than
// a bit-packed (x | y<<8) single key, which would break for
// coordinates of 256 or more.
func Compare[T Area](a, b Placement[T]) int {
	if a.Y != b.Y {
		if a.Y < b.Y {
			return -1
		}
		return 1
	}
	if a.X != b.X {
		if a.X < b.X {
			return -1
		}
		return 1
	}
	return 0
}
