package geom_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beampack/geom"
)

func TestRectArea(t *testing.T) {
	r := geom.NewRect(8, 8)
	require.Equal(t, uint64(64), r.Area())
	require.Equal(t, uint64(64), r.FillArea())
}

func TestOverlaps(t *testing.T) {
	a := geom.Placement[geom.Rect]{X: 0, Y: 0, Item: geom.NewRect(10, 10)}
	b := geom.Placement[geom.Rect]{X: 5, Y: 5, Item: geom.NewRect(10, 10)}
	c := geom.Placement[geom.Rect]{X: 10, Y: 10, Item: geom.NewRect(10, 10)}

	require.True(t, geom.Overlaps(a, b))
	require.False(t, geom.Overlaps(a, c), "edge-touching placements do not overlap")
}

func TestSplitsAndSubtract(t *testing.T) {
	self := geom.Placement[geom.Rect]{X: 0, Y: 0, Item: geom.NewRect(20, 20)}
	other := geom.Placement[geom.Rect]{X: 5, Y: 5, Item: geom.NewRect(5, 5)}

	n, ok := geom.SplitN(self, other)
	require.True(t, ok)
	require.Equal(t, geom.NewRect(20, 5).Area(), n.Item.Area())

	s, ok := geom.SplitS(self, other)
	require.True(t, ok)
	require.Equal(t, uint32(20), s.Item.W())
	require.Equal(t, uint32(10), s.Item.H())

	e, ok := geom.SplitE(self, other)
	require.True(t, ok)
	require.Equal(t, uint32(5), e.Item.W())

	w, ok := geom.SplitW(self, other)
	require.True(t, ok)
	require.Equal(t, uint32(10), w.Item.W())

	var slabs []geom.Placement[geom.Rect]
	for p := range geom.Subtract(self, other) {
		slabs = append(slabs, p)
	}
	require.Len(t, slabs, 4)
}

func TestSubtractFiltersZeroArea(t *testing.T) {
	self := geom.Placement[geom.Rect]{X: 0, Y: 0, Item: geom.NewRect(10, 10)}
	other := geom.Placement[geom.Rect]{X: 0, Y: 0, Item: geom.NewRect(10, 10)}

	var slabs []geom.Placement[geom.Rect]
	for p := range geom.Subtract(self, other) {
		slabs = append(slabs, p)
	}
	require.Empty(t, slabs, "an exactly-covering rhs leaves no positive-area slab")
}

func TestCompareLexicographicYThenX(t *testing.T) {
	a := geom.Placement[geom.Rect]{X: 5, Y: 1, Item: geom.NewRect(1, 1)}
	b := geom.Placement[geom.Rect]{X: 0, Y: 2, Item: geom.NewRect(1, 1)}
	c := geom.Placement[geom.Rect]{X: 1, Y: 1, Item: geom.NewRect(1, 1)}

	require.Negative(t, geom.Compare(a, b), "lower y sorts first regardless of x")
	require.Positive(t, geom.Compare(a, c), "same y: higher x sorts after")
}

func TestRectGroupAreaAndFillArea(t *testing.T) {
	rg := geom.NewRectGroup([]geom.Placement[geom.Rect]{
		{X: 0, Y: 0, Item: geom.NewRect(16, 16)},
		{X: 16, Y: 0, Item: geom.NewRect(8, 8)},
		{X: 16, Y: 8, Item: geom.NewRect(8, 8)},
		{X: 24, Y: 0, Item: geom.NewRect(8, 8)},
		{X: 24, Y: 8, Item: geom.NewRect(8, 8)},
	})

	require.Equal(t, uint64(512), rg.Area())
	require.Equal(t, uint64(512), rg.FillArea())
}

func TestRectGroupCombine(t *testing.T) {
	a := geom.NewRectGroup([]geom.Placement[geom.Rect]{{X: 0, Y: 0, Item: geom.NewRect(10, 10)}})
	b := geom.NewRectGroup([]geom.Placement[geom.Rect]{{X: 0, Y: 0, Item: geom.NewRect(5, 5)}})

	candidates := a.Combine(b)
	sideBySide, stacked := candidates[0], candidates[1]

	require.Equal(t, uint32(15), sideBySide.W())
	require.Equal(t, uint32(10), sideBySide.H())

	require.Equal(t, uint32(10), stacked.W())
	require.Equal(t, uint32(15), stacked.H())
}

func TestRectGroupScore(t *testing.T) {
	rg := geom.NewRectGroup([]geom.Placement[geom.Rect]{{X: 0, Y: 0, Item: geom.NewRect(10, 10)}})
	space := geom.Placement[geom.Rect]{X: 0, Y: 0, Item: geom.NewRect(20, 20)}

	require.Equal(t, uint64(400)-uint64(100)+2, rg.Score(space, 1.6))
}
