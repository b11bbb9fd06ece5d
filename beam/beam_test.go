package beam_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/beampack/beam"
)

type BeamSuite struct {
	suite.Suite
}

func TestBeamSuite(t *testing.T) {
	suite.Run(t, new(BeamSuite))
}

func (s *BeamSuite) TestSimpleCycle() {
	require := require.New(s.T())
	root := &mockNode{th: 1000, b: 1}
	eng := beam.New[*mockNode](root, 1)

	require.NoError(eng.Cycle())
	heads := collectHeads(eng)
	require.Len(heads, 1)
	require.Equal(2, heads[0].count)

	for !eng.HasFulfilled() {
		require.NoError(eng.Cycle())
	}
	fulfilled := firstFulfilled(s.T(), eng)
	require.Equal(1000, fulfilled.count)
}

func (s *BeamSuite) TestVariedCycle() {
	require := require.New(s.T())
	root := &mockNode{th: 1425, b: 75}
	eng := beam.New[*mockNode](root, 75)

	require.NoError(eng.Cycle())
	heads := collectHeads(eng)
	require.Len(heads, 1)
	require.Equal(76, heads[0].count)

	for !eng.HasFulfilled() {
		require.NoError(eng.Cycle())
	}
	fulfilled := firstFulfilled(s.T(), eng)
	require.Equal(1425, fulfilled.count)
}

func (s *BeamSuite) TestParallelMatchesSerialOutcome() {
	require := require.New(s.T())
	serial := beam.New[*mockNode](&mockNode{th: 500, b: 10, hint: 8}, 8)
	parallel := beam.New[*mockNode](&mockNode{th: 500, b: 10, hint: 8}, 8, beam.Parallel[*mockNode](4))

	require.Equal(8, serial.Active())
	require.Equal(8, parallel.Active())

	runUntilFulfilled := func(eng *beam.Beam[*mockNode]) {
		for !eng.HasFulfilled() {
			err := eng.Cycle()
			require.True(err == nil || errors.Is(err, beam.ErrExhausted))
			if errors.Is(err, beam.ErrExhausted) {
				eng.Extend()
			}
		}
	}
	runUntilFulfilled(serial)
	runUntilFulfilled(parallel)

	require.Equal(firstFulfilled(s.T(), serial).count, firstFulfilled(s.T(), parallel).count)
}

func (s *BeamSuite) TestCycleExhaustedWhenNoBranchAdvances() {
	require := require.New(s.T())
	// A root already at its target can't be expanded; construction
	// leaves every head at the zero value, and the first cycle reports
	// the whole beam exhausted.
	root := &mockNode{th: 0, b: 1}
	eng := beam.New[*mockNode](root, 3)

	require.False(eng.HasFulfilled())
	err := eng.Cycle()
	require.True(errors.Is(err, beam.ErrExhausted))
}

func collectHeads(eng *beam.Beam[*mockNode]) []*mockNode {
	return eng.Heads()
}

func firstFulfilled(t *testing.T, eng *beam.Beam[*mockNode]) *mockNode {
	t.Helper()
	for n := range eng.Nodes() {
		return n
	}
	t.Fatal("expected at least one fulfilled head")
	return nil
}
