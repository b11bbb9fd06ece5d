package storage

import "github.com/katalvlaran/beampack/key"

// Backend presents the length cell and two key buffers a SparSet is
// built on, independent of whether the memory is anonymous or
// file-mapped.
type Backend[K key.Unsigned] interface {
	// Len returns a pointer to the live member count.
	Len() *K
	// Sparse returns the sparse buffer, indexed by key.
	Sparse() []K
	// Dense returns the dense buffer, indexed by position.
	Dense() []K
	// Close releases any OS resources held by the backend. Anonymous
	// backends treat this as a no-op.
	Close() error
}

// ValueBackend adds the dense value buffer a SparMap layers on top of
// a Backend's key buffers.
type ValueBackend[K key.Unsigned, V any] interface {
	Backend[K]
	// Values returns the dense value buffer, indexed by position.
	Values() []V
}
