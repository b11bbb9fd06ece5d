package bspa_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/beampack/beam"
	"github.com/katalvlaran/beampack/bspa"
	"github.com/katalvlaran/beampack/geom"
)

const (
	beamWidth  = 64
	branchPool = 64
	comboCap   = 4096
	fillRatio  = 1.0
)

func runToFulfilledOrExhausted(t *testing.T, eng *beam.Beam[*bspa.BspaNode]) {
	t.Helper()
	for !eng.HasFulfilled() {
		if err := eng.Cycle(); err != nil {
			require.ErrorIs(t, err, beam.ErrExhausted)
			return
		}
	}
}

func placedArea(n *bspa.BspaNode) uint64 {
	var sum uint64
	for _, b := range n.Blocks() {
		sum += b.Item.Area()
	}
	return sum
}

func placedCount(n *bspa.BspaNode) int {
	count := 0
	for _, b := range n.Blocks() {
		count += len(b.Item.List())
	}
	return count
}

func firstFulfilled(eng *beam.Beam[*bspa.BspaNode]) *bspa.BspaNode {
	for n := range eng.Nodes() {
		return n
	}
	return nil
}

// TestSimpleAtlasPacking mirrors the small fixed scenario of four
// 8x8 squares plus one 16x16 square in a 32-wide container: the
// optimum tiles the four squares into a 16x16 quadrant beside the
// large square, filling the full 32x16 rectangle with no slack.
func TestSimpleAtlasPacking(t *testing.T) {
	small := geom.NewRect(8, 8)
	large := geom.NewRect(16, 16)
	items := []geom.Rect{small, small, small, small, large}

	root := bspa.New(items, 32, comboCap, fillRatio, branchPool)
	eng := beam.New[*bspa.BspaNode](root, beamWidth, beam.WithBranchPool(branchPool))

	runToFulfilledOrExhausted(t, eng)

	best := firstFulfilled(eng)
	require.NotNil(t, best, "search should find a fulfilled packing")
	require.Equal(t, large.Area()+4*small.Area(), placedArea(best))
	require.Equal(t, uint64(512), placedArea(best))
}

// TestVariedAtlasPacking packs sixteen differently-sized rectangles
// into a container twice as wide as the widest item, extending the
// container (Inflate) if the initial height proves too short before
// every rectangle lands.
func TestVariedAtlasPacking(t *testing.T) {
	items := []geom.Rect{
		geom.NewRect(12, 8), geom.NewRect(8, 4), geom.NewRect(10, 10), geom.NewRect(12, 8),
		geom.NewRect(15, 15), geom.NewRect(15, 15), geom.NewRect(16, 12), geom.NewRect(8, 18),
		geom.NewRect(8, 12), geom.NewRect(7, 11), geom.NewRect(13, 6), geom.NewRect(14, 14),
		geom.NewRect(4, 19), geom.NewRect(2, 10), geom.NewRect(7, 16), geom.NewRect(11, 9),
	}

	var maxW uint32
	for _, r := range items {
		if r.W() > maxW {
			maxW = r.W()
		}
	}

	root := bspa.New(items, maxW*2, comboCap, fillRatio, branchPool)
	eng := beam.New[*bspa.BspaNode](root, beamWidth, beam.WithBranchPool(branchPool))

	for !eng.HasFulfilled() {
		err := eng.Cycle()
		if err == nil {
			continue
		}
		require.True(t, errors.Is(err, beam.ErrExhausted))
		eng.Extend()
	}

	best := firstFulfilled(eng)
	require.NotNil(t, best)
	require.Equal(t, len(items), placedCount(best))
}
