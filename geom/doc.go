// Package geom provides the rectangle-packing primitives shared by the
// bin-packing search: axis-aligned rectangles, placements of an item
// at an (x,y) offset, and groups of placements treated as one unit.
//
// What:
//
//   - Rect — a width/height pair with its area memoized at construction.
//   - Placement[T] — an Area-capable item anchored at (x,y), with
//     directional splits against another placement and a lexicographic
//     (y,x) ordering.
//   - RectGroup — an owned list of rectangle placements with memoized
//     bounding area, fill area, width and height.
//
// Why:
//
//   - This is the geometry bspa's search nodes are built from: every
//     candidate block and every occupied region is a Placement or a
//     RectGroup.
package geom
