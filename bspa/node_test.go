package bspa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beampack/geom"
)

func TestNewDeduplicatesShapesAndSeedsAvaiBox(t *testing.T) {
	s := geom.NewRect(8, 8)
	items := []geom.Rect{s, s, s}

	n := New(items, 16, 64, 1.0, 8)

	require.Len(t, n.shapeOf, 1)
	v, ok := n.avaiBox.QueryOne(0)
	require.True(t, ok)
	require.Equal(t, 3, v)
}

func TestBuildSingleShapeGridsFiltersByFillRatio(t *testing.T) {
	s := geom.NewRect(4, 4)
	grids := buildSingleShapeGrids([]geom.Rect{s}, []int{4}, 1.0)

	for _, g := range grids {
		require.Equal(t, g.FillArea(), g.Area(), "a single-shape grid at fillRatio 1.0 must be perfectly packed")
	}
	require.NotEmpty(t, grids)
}

func TestPrepareReturnsNoFittingSpaceWhenAvaiBlkEmpty(t *testing.T) {
	n := &BspaNode{
		spaces:     []geom.Placement[geom.Rect]{{X: 0, Y: 0, Item: geom.NewRect(10, 10)}},
		shapeOf:    nil,
		avaiBlk:    nil,
		branchPool: 4,
	}

	_, _, err := n.prepare(4)
	require.ErrorIs(t, err, ErrNoFittingSpace)
}

func TestHasFulfilledNilSafe(t *testing.T) {
	var n *BspaNode
	require.False(t, n.HasFulfilled())
}

func TestBoundingBoxOfEmptyNodeIsZero(t *testing.T) {
	n := &BspaNode{}
	require.Equal(t, uint32(0), n.W())
	require.Equal(t, uint32(0), n.H())
	require.Equal(t, uint64(0), n.Area())
	require.Equal(t, uint64(0), n.FillArea())
}
