package sparmap

import "fmt"

// QueryOne returns the value stored for k, if present.
func (m *SparMap[K, V]) QueryOne(k K) (V, bool) {
	i, ok := m.keys.AsIndexOne(k)
	if !ok {
		var zero V
		return zero, false
	}
	return m.vals[int(i)], true
}

// QueryOneMut returns a pointer to the value stored for k, if present.
func (m *SparMap[K, V]) QueryOneMut(k K) (*V, bool) {
	i, ok := m.keys.AsIndexOne(k)
	if !ok {
		return nil, false
	}
	return &m.vals[int(i)], true
}

// QueryAll yields the value for each key in ks that is present, in
// the order ks is given.
func (m *SparMap[K, V]) QueryAll(ks []K) func(yield func(V) bool) {
	return func(yield func(V) bool) {
		for _, k := range ks {
			if v, ok := m.QueryOne(k); ok {
				if !yield(v) {
					return
				}
			}
		}
	}
}

// Get returns the value stored for k, panicking if k is absent (the
// index-operator form).
func (m *SparMap[K, V]) Get(k K) V {
	v, ok := m.QueryOne(k)
	if !ok {
		panic(fmt.Sprintf("sparmap: key %v not present", k))
	}
	return v
}

// InsertOne inserts or overwrites the value for k, returning the
// previous value if one existed.
func (m *SparMap[K, V]) InsertOne(k K, v V) (V, bool) {
	if m.keys.InsertOne(k) {
		i, _ := m.keys.AsIndexOne(k)
		m.vals[int(i)] = v
		var zero V
		return zero, false
	}
	i, _ := m.keys.AsIndexOne(k)
	old := m.vals[int(i)]
	m.vals[int(i)] = v
	return old, true
}

// Pair is a (key, value) input to InsertAll.
type Pair[K any, V any] struct {
	Key K
	Val V
}

// InsertAll inserts every pair from xs, per-pair InsertOne semantics.
func (m *SparMap[K, V]) InsertAll(xs []Pair[K, V]) {
	for _, p := range xs {
		m.InsertOne(p.Key, p.Val)
	}
}

// DeleteOne removes k, returning its value if it was present. The
// vacated dense slot is repacked from the value that was about to
// become dead space (vals[new_len]), keeping vals[0:len] contiguous.
func (m *SparMap[K, V]) DeleteOne(k K) (V, bool) {
	i, ok := m.keys.AsIndexOne(k)
	if !ok {
		var zero V
		return zero, false
	}
	old := m.vals[int(i)]
	m.keys.DeleteOne(k)
	newLen := m.keys.Len()
	m.vals[int(i)] = m.vals[newLen]
	return old, true
}

// DeleteAll removes every key from ks, per-element DeleteOne.
func (m *SparMap[K, V]) DeleteAll(ks []K) {
	for _, k := range ks {
		m.DeleteOne(k)
	}
}

// Retain keeps only the entries for which f returns true.
func (m *SparMap[K, V]) Retain(f func(K, V) bool) {
	for _, k := range append([]K(nil), m.AsKeys()...) {
		v, ok := m.QueryOne(k)
		if ok && !f(k, v) {
			m.DeleteOne(k)
		}
	}
}

// Recall removes every entry for which f returns true, yielding each
// deleted value as it is removed. If the caller stops ranging early,
// the remaining matching entries are still removed.
func (m *SparMap[K, V]) Recall(f func(K, V) bool) func(yield func(V) bool) {
	return func(yield func(V) bool) {
		type kv struct {
			k K
			v V
		}
		snapshot := make([]kv, 0, m.Len())
		for _, k := range m.AsKeys() {
			v, _ := m.QueryOne(k)
			snapshot = append(snapshot, kv{k, v})
		}

		stopped := false
		for _, e := range snapshot {
			if !f(e.k, e.v) {
				continue
			}
			v, ok := m.DeleteOne(e.k)
			if !ok {
				continue
			}
			if stopped {
				continue
			}
			if !yield(v) {
				stopped = true
			}
		}
	}
}

// Iter yields every (key, value) pair in dense order.
func (m *SparMap[K, V]) Iter(yield func(K, V) bool) {
	keys := m.AsKeys()
	vals := m.AsVals()
	for i, k := range keys {
		if !yield(k, vals[i]) {
			return
		}
	}
}

// Equal reports map equality: same length, and every (k,v) pair of m
// is present in other.
func (m *SparMap[K, V]) Equal(other *SparMap[K, V], eq func(a, b V) bool) bool {
	if m.Len() != other.Len() {
		return false
	}
	for _, k := range m.AsKeys() {
		a, _ := m.QueryOne(k)
		b, ok := other.QueryOne(k)
		if !ok || !eq(a, b) {
			return false
		}
	}
	return true
}
