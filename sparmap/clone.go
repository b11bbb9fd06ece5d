package sparmap

// Clone returns an independent copy of m: same capacity, same members,
// same values. Mutating the clone never affects m or vice versa.
func (m *SparMap[K, V]) Clone() *SparMap[K, V] {
	clone := New[K, V](m.AsKeysSet().Cap())
	for _, k := range m.AsKeys() {
		v, _ := m.QueryOne(k)
		clone.InsertOne(k, v)
	}
	return clone
}
