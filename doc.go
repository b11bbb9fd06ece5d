// Package beampack is a small toolkit for O(1) sparse containers, a
// fixed-width beam search engine, and a 2D rectangle bin-packing
// search built on top of both.
//
// What is beampack?
//
//	Three layers, each usable on its own:
//
//	  • Sparse containers: SparSet[K]/SparMap[K,V] keyed by small
//	    unsigned integers, O(1) insert/delete/query via swap-and-pop,
//	    heap or mmap-backed storage.
//	  • Beam search: a fixed-width engine over any type implementing
//	    beam.Node[T], serial or bounded-parallel.
//	  • Rectangle bin-packing: BspaNode, a concrete Node that packs a
//	    multiset of rectangles into composite blocks and places them
//	    into a growing container.
//
// Under the hood, everything is organized under subpackages:
//
//	key/      — small unsigned integer key constraint
//	storage/  — heap vs. mmap-backed storage backends
//	sparset/  — SparSet[K]
//	sparmap/  — SparMap[K,V]
//	beam/     — Node capability + Beam[T] engine
//	geom/     — Rect, Placement[T], RectGroup
//	bspa/     — BspaNode bin-packing search node
//
// Quick ASCII example of what bspa packs:
//
//	┌────────┬───┬───┐
//	│        │ s │ s │
//	│   L    ├───┼───┤
//	│        │ s │ s │
//	└────────┴───┴───┘
//
//	one 16x16 square (L) beside a 2x2 grid of 8x8 squares (s),
//	tiling a 32x16 container with no wasted area.
package beampack
