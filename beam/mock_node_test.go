package beam_test

import "github.com/katalvlaran/beampack/beam"

// mockNode is a deterministic counter node used to exercise Beam's
// cycle/select/exhaustion machinery without any domain-specific
// scoring. Every successor written by Expand carries the same count
// (count plus however many scratch slots the engine offered, clamped
// to th), so selection's tie-break is exercised but never changes the
// outcome — what's under test is the engine loop, not the heuristic.
type mockNode struct {
	count int
	th    int
	b     int
	hint  int // Estimate() override; 0 means "seed a single branch"
}

var _ beam.Node[*mockNode] = (*mockNode)(nil)

func (n *mockNode) HasFulfilled() bool {
	return n != nil && n.count == n.th
}

func (n *mockNode) Evaluate() uint64 {
	if n == nil {
		return ^uint64(0)
	}
	return uint64(n.count)
}

func (n *mockNode) Estimate() int {
	if n == nil || n.hint <= 0 {
		return 1
	}
	return n.hint
}

func (n *mockNode) Expand(slots []*mockNode) (int, error) {
	if n == nil || n.count >= n.th || len(slots) == 0 {
		return 0, beam.ErrBranchExhausted
	}

	next := n.count + len(slots)
	if next > n.th {
		next = n.th
	}

	k := n.b
	if k > len(slots) {
		k = len(slots)
	}
	if k < 1 {
		k = 1
	}
	for i := 0; i < k; i++ {
		slots[i] = &mockNode{count: next, th: n.th, b: n.b, hint: n.hint}
	}
	return k, nil
}

func (n *mockNode) Inflate() {
	if n == nil {
		return
	}
	n.th += n.b
}
