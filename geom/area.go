package geom

// Area is the capability every packable item exposes: its bounding
// area, how much of that area is actually covered (fill area, which
// differs from area once an item is itself a group of sub-placements),
// and its width/height.
type Area interface {
	Area() uint64
	FillArea() uint64
	W() uint32
	H() uint32
}
