package sparset

import (
	"os"

	"github.com/katalvlaran/beampack/key"
	"github.com/katalvlaran/beampack/storage"
)

// SparSet is an O(1) set of keys in [0, n], built on a sparse/dense
// pair of buffers. The zero value is not usable; construct with New
// or NewMmap.
type SparSet[K key.Unsigned] struct {
	backend storage.Backend[K]
	n       int
	mask    []uint64 // nil unless WithBitmask was given
}

// config collects Option values applied at construction.
type config struct {
	bitmask bool
}

// Option configures a SparSet at construction time.
type Option func(*config)

// WithBitmask augments the set with a shadow bitmap of members,
// making Contains a single bit test instead of the triple dense/sparse
// check.
func WithBitmask() Option {
	return func(c *config) { c.bitmask = true }
}

func applyOpts(opts []Option) config {
	var c config
	for _, o := range opts {
		o(&c)
	}
	return c
}

func maskWords(n int) int { return (n + 1 + 63) / 64 }

func newMask(n int, enabled bool) []uint64 {
	if !enabled {
		return nil
	}
	return make([]uint64, maskWords(n))
}

// exceedsRange reports whether n falls outside K's representable
// range, comparing in uint64 to avoid overflow when K is itself
// uint64 (whose max does not fit in a signed int).
func exceedsRange[K key.Unsigned](n int) bool {
	return n < 0 || uint64(n) > uint64(key.MaxK[K]())
}

// New allocates an anonymous, heap-backed SparSet with capacity for
// keys 0..=n. Panics if n exceeds K's maximum representable value.
func New[K key.Unsigned](n int, opts ...Option) *SparSet[K] {
	if exceedsRange[K](n) {
		panic("sparset: capacity exceeds key type's range")
	}
	c := applyOpts(opts)
	return &SparSet[K]{
		backend: storage.NewHeap[K](n),
		n:       n,
		mask:    newMask(n, c.bitmask),
	}
}

// NewMmap maps an existing file as a SparSet backend with capacity for
// keys 0..=n. The file must be at least storage.FileSize[K](n) bytes.
func NewMmap[K key.Unsigned](f *os.File, n int, opts ...Option) (*SparSet[K], error) {
	if exceedsRange[K](n) {
		panic("sparset: capacity exceeds key type's range")
	}
	backend, err := storage.NewMmap[K](f, n)
	if err != nil {
		return nil, err
	}
	c := applyOpts(opts)
	return &SparSet[K]{
		backend: backend,
		n:       n,
		mask:    newMask(n, c.bitmask),
	}, nil
}

// FromBackend wraps an already-constructed backend. sparmap uses this
// so the set and its value buffer can share one backing allocation or
// one mapped file instead of sparset allocating its own.
func FromBackend[K key.Unsigned](backend storage.Backend[K], n int, opts ...Option) *SparSet[K] {
	c := applyOpts(opts)
	return &SparSet[K]{backend: backend, n: n, mask: newMask(n, c.bitmask)}
}

// Close releases any OS resources held by the backend. Anonymous sets
// treat this as a no-op.
func (s *SparSet[K]) Close() error { return s.backend.Close() }

// Cap returns the capacity N the set was constructed with; valid keys
// are 0..=Cap().
func (s *SparSet[K]) Cap() int { return s.n }

// Len returns the current member count.
func (s *SparSet[K]) Len() int { return key.AsIndex(*s.backend.Len()) }

// IsEmpty reports whether the set has no members.
func (s *SparSet[K]) IsEmpty() bool { return s.Len() == 0 }

// AsSlice returns dense[0:len], the members in insertion order
// (subject to swap-and-pop reordering on deletion).
func (s *SparSet[K]) AsSlice() []K {
	return s.backend.Dense()[:s.Len()]
}
