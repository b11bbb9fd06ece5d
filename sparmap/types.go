package sparmap

import (
	"os"

	"github.com/katalvlaran/beampack/key"
	"github.com/katalvlaran/beampack/sparset"
	"github.com/katalvlaran/beampack/storage"
)

// SparMap is an O(1) map from small unsigned-integer keys to values
// of type V, built on a sparset.SparSet plus a dense values buffer.
type SparMap[K key.Unsigned, V any] struct {
	keys *sparset.SparSet[K]
	vals []V
}

// New allocates an anonymous, heap-backed SparMap with capacity for
// keys 0..=n. Panics if n exceeds K's maximum representable value.
func New[K key.Unsigned, V any](n int, opts ...sparset.Option) *SparMap[K, V] {
	if n < 0 || uint64(n) > uint64(key.MaxK[K]()) {
		panic("sparmap: capacity exceeds key type's range")
	}
	backend := storage.NewHeapValues[K, V](n)
	return &SparMap[K, V]{
		keys: sparset.FromBackend[K](backend, n, opts...),
		vals: backend.Values(),
	}
}

// NewMmap maps an existing file as a SparMap backend with capacity
// for keys 0..=n. The file must be at least
// storage.FileSizeValue[K,V](n) bytes. V must be trivially copyable.
func NewMmap[K key.Unsigned, V any](f *os.File, n int, opts ...sparset.Option) (*SparMap[K, V], error) {
	backend, err := storage.NewMmapValues[K, V](f, n)
	if err != nil {
		return nil, err
	}
	return &SparMap[K, V]{
		keys: sparset.FromBackend[K](backend, n, opts...),
		vals: backend.Values(),
	}, nil
}

// Close releases any OS resources held by the backend. Anonymous maps
// treat this as a no-op.
func (m *SparMap[K, V]) Close() error { return m.keys.Close() }

// Len returns the current member count.
func (m *SparMap[K, V]) Len() int { return m.keys.Len() }

// IsEmpty reports whether the map has no members.
func (m *SparMap[K, V]) IsEmpty() bool { return m.keys.IsEmpty() }

// AsKeys returns the member keys in dense (insertion) order.
func (m *SparMap[K, V]) AsKeys() []K { return m.keys.AsSlice() }

// AsKeysSet exposes the underlying key set directly.
func (m *SparMap[K, V]) AsKeysSet() *sparset.SparSet[K] { return m.keys }

// AsVals returns the live values, vals[0:len], in the same order as
// AsKeys.
func (m *SparMap[K, V]) AsVals() []V { return m.vals[:m.Len()] }

// AsValsMut returns a mutable view of the live values.
func (m *SparMap[K, V]) AsValsMut() []V { return m.vals[:m.Len()] }

// Contains reports whether k is a member.
func (m *SparMap[K, V]) Contains(k K) bool { return m.keys.Contains(k) }
