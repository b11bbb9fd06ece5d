package beam

// Beam drives a fixed-width search over W branches, each a head node
// plus W scratch slots, stored contiguously in one slab. The slab is
// always sized width*(width+1): active counts how many of the width
// branches are actually cycled, the rest (if any) sit idle holding
// their zero value and are never touched again after construction.
type Beam[T Node[T]] struct {
	slab   []T
	width  int
	active int
	cfg    engineConfig
}

type engineConfig struct {
	parallel   bool
	workers    int
	branchPool int
}

// Option configures a Beam at construction time.
type Option[T Node[T]] func(*engineConfig)

// Serial runs Cycle as a plain loop over branches. This is the
// default; passing it explicitly is only useful to override an
// earlier Parallel option in the same New call.
func Serial[T Node[T]]() Option[T] {
	return func(c *engineConfig) { c.parallel = false }
}

// Parallel runs each branch's expand-evaluate-select unit on its own
// goroutine, bounded to maxWorkers concurrent branches via
// errgroup.Group.SetLimit.
func Parallel[T Node[T]](maxWorkers int) Option[T] {
	return func(c *engineConfig) {
		c.parallel = true
		c.workers = maxWorkers
	}
}

// WithBranchPool records the candidate-block pool width B, a node's
// own algorithmic parameter (e.g. bspa.New's branchPool) rather than
// anything Beam itself consumes. It exists so a Beam's configuration
// can be introspected alongside the node's own, matching the pair
// everywhere both are threaded through together; see BranchPool.
func WithBranchPool[T Node[T]](b int) Option[T] {
	return func(c *engineConfig) { c.branchPool = b }
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// New builds a Beam of the given width from root, expanding root once
// to seed the head of each active branch. If root's Expand produces
// fewer successors than the chosen active count, the remaining heads
// are filled with the zero value of T.
func New[T Node[T]](root T, width int, opts ...Option[T]) *Beam[T] {
	if width < 1 {
		panic("beam: width must be >= 1")
	}

	var cfg engineConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	b := &Beam[T]{
		slab:  make([]T, width*(width+1)),
		width: width,
		cfg:   cfg,
	}

	est := root.Estimate()
	if est <= 0 {
		est = width
	}
	active := clampInt(est, 1, width)

	buf := make([]T, active)
	k, err := root.Expand(buf)
	if err != nil {
		k = 0
	}
	if k > active {
		k = active
	}

	var zero T
	for i := 0; i < active; i++ {
		head := b.chunk(i)
		if i < k {
			head[0] = buf[i]
		} else {
			head[0] = zero
		}
	}

	b.active = active
	return b
}

// chunk returns the (width+1)-slot window for branch i: slot 0 is the
// head, slots 1..width are scratch.
func (b *Beam[T]) chunk(i int) []T {
	start := i * (b.width + 1)
	return b.slab[start : start+b.width+1]
}

// Width returns the configured maximum number of branches.
func (b *Beam[T]) Width() int { return b.width }

// Active returns the number of branches actually being cycled.
func (b *Beam[T]) Active() int { return b.active }

// BranchPool returns the candidate-block pool width set via
// WithBranchPool, or 0 if it was never configured.
func (b *Beam[T]) BranchPool() int { return b.cfg.branchPool }

// HasFulfilled reports whether any active branch's head is currently
// in a fulfilled state.
func (b *Beam[T]) HasFulfilled() bool {
	for i := 0; i < b.active; i++ {
		if b.chunk(i)[0].HasFulfilled() {
			return true
		}
	}
	return false
}

// Heads returns a snapshot of every active branch's current head,
// fulfilled or not. Nodes is usually the right choice for consuming
// results; Heads is for inspecting in-progress search state.
func (b *Beam[T]) Heads() []T {
	out := make([]T, b.active)
	for i := 0; i < b.active; i++ {
		out[i] = b.chunk(i)[0]
	}
	return out
}

// Nodes iterates every active branch head currently in a fulfilled
// state. A head left at its zero value by a short root expansion is
// never fulfilled by construction (see Node.HasFulfilled), so it is
// naturally excluded without any extra bookkeeping here.
func (b *Beam[T]) Nodes() func(yield func(T) bool) {
	return func(yield func(T) bool) {
		for i := 0; i < b.active; i++ {
			head := b.chunk(i)[0]
			if !head.HasFulfilled() {
				continue
			}
			if !yield(head) {
				return
			}
		}
	}
}

// Extend inflates every active branch's head node in place, used to
// rescue a run that returned ErrExhausted before any head fulfilled.
func (b *Beam[T]) Extend() {
	for i := 0; i < b.active; i++ {
		b.chunk(i)[0].Inflate()
	}
}

func (b *Beam[T]) cycleBranch(i int) error {
	chunk := b.chunk(i)
	head := chunk[0]
	tail := chunk[1:]

	k, err := head.Expand(tail)
	if err != nil || k == 0 {
		return ErrBranchExhausted
	}

	best := 0
	bestScore := tail[0].Evaluate()
	for j := 1; j < k; j++ {
		if s := tail[j].Evaluate(); s < bestScore {
			bestScore = s
			best = j
		}
	}
	chunk[0] = tail[best]
	return nil
}

// Cycle expands every active branch by one step, evaluates each
// successor, and replaces each branch's head with its lowest-scoring
// successor. Returns ErrExhausted if every branch returned
// ErrBranchExhausted this cycle; if at least one branch advanced it
// returns nil, and exhausted branches keep their old head.
func (b *Beam[T]) Cycle() error {
	if b.cfg.parallel {
		return b.cycleParallel()
	}
	return b.cycleSerial()
}

func (b *Beam[T]) cycleSerial() error {
	allExhausted := true
	for i := 0; i < b.active; i++ {
		if err := b.cycleBranch(i); err == nil {
			allExhausted = false
		}
	}
	if allExhausted {
		return ErrExhausted
	}
	return nil
}
