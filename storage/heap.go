package storage

import "github.com/katalvlaran/beampack/key"

// Heap is an anonymous, heap-allocated backend. Buffers are ordinary
// Go slices; the sparse/dense contents are never read except through
// SparSet's triple-check membership invariant, so Go's mandatory
// zero-fill of new slices does not change the container's semantics.
type Heap[K key.Unsigned] struct {
	len    K
	sparse []K
	dense  []K
}

// NewHeap allocates a Heap backend with capacity for keys 0..=n.
func NewHeap[K key.Unsigned](n int) *Heap[K] {
	return &Heap[K]{
		sparse: make([]K, n+1),
		dense:  make([]K, n+1),
	}
}

func (h *Heap[K]) Len() *K      { return &h.len }
func (h *Heap[K]) Sparse() []K  { return h.sparse }
func (h *Heap[K]) Dense() []K   { return h.dense }
func (h *Heap[K]) Close() error { return nil }

// HeapValues is an anonymous backend for SparMap: a Heap plus a dense
// value buffer of the same length.
type HeapValues[K key.Unsigned, V any] struct {
	*Heap[K]
	vals []V
}

// NewHeapValues allocates a HeapValues backend with capacity for keys
// 0..=n.
func NewHeapValues[K key.Unsigned, V any](n int) *HeapValues[K, V] {
	return &HeapValues[K, V]{
		Heap: NewHeap[K](n),
		vals: make([]V, n+1),
	}
}

func (h *HeapValues[K, V]) Values() []V { return h.vals }
