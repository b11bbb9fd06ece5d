package sparset

import "github.com/katalvlaran/beampack/key"

// Contains reports whether k is a member, via the triple check: k
// must address the sparse buffer, sparse[k] must be a live dense
// index, and dense[sparse[k]] must equal k. Tolerates k > Cap()
// without an out-of-bounds access.
func (s *SparSet[K]) Contains(k K) bool {
	if s.mask != nil {
		return s.testMask(k)
	}
	i := key.AsIndex(k)
	if i >= len(s.backend.Sparse()) {
		return false
	}
	pos := key.AsIndex(s.backend.Sparse()[i])
	return pos < s.Len() && s.backend.Dense()[pos] == k
}

// AsIndexOne returns sparse[k] iff k is a member.
func (s *SparSet[K]) AsIndexOne(k K) (K, bool) {
	if !s.Contains(k) {
		var zero K
		return zero, false
	}
	return s.backend.Sparse()[key.AsIndex(k)], true
}

func (s *SparSet[K]) testMask(k K) bool {
	i := key.AsIndex(k)
	w := i / 64
	if w >= len(s.mask) {
		return false
	}
	return s.mask[w]&(uint64(1)<<uint(i%64)) != 0
}

func (s *SparSet[K]) setMask(k K, v bool) {
	if s.mask == nil {
		return
	}
	i := key.AsIndex(k)
	w := i / 64
	b := uint64(1) << uint(i%64)
	if v {
		s.mask[w] |= b
	} else {
		s.mask[w] &^= b
	}
}

// InsertOne inserts k, returning true iff it was not already present.
// Panics if k exceeds the set's capacity.
func (s *SparSet[K]) InsertOne(k K) bool {
	if key.AsIndex(k) > s.n {
		panic("sparset: key exceeds capacity")
	}
	if s.Contains(k) {
		return false
	}

	sparse := s.backend.Sparse()
	dense := s.backend.Dense()
	l := s.backend.Len()

	sparse[key.AsIndex(k)] = *l
	dense[key.AsIndex(*l)] = k
	*l++
	s.setMask(k, true)

	return true
}

// InsertAll inserts every key from xs, per-element InsertOne.
func (s *SparSet[K]) InsertAll(xs []K) {
	for _, k := range xs {
		s.InsertOne(k)
	}
}

// DeleteOne removes k via swap-and-pop, returning true iff it was
// present.
func (s *SparSet[K]) DeleteOne(k K) bool {
	if !s.Contains(k) {
		return false
	}
	s.deleteUnchecked(k)
	return true
}

// deleteUnchecked performs the swap-and-pop described in spec §4.2,
// assuming k is already known to be a member.
func (s *SparSet[K]) deleteUnchecked(k K) {
	sparse := s.backend.Sparse()
	dense := s.backend.Dense()
	l := s.backend.Len()

	*l--
	pos := sparse[key.AsIndex(k)]
	last := dense[key.AsIndex(*l)]
	sparse[key.AsIndex(last)] = pos
	dense[key.AsIndex(pos)] = last
	s.setMask(k, false)
}

// DeleteAll removes every key from xs, per-element DeleteOne.
func (s *SparSet[K]) DeleteAll(xs []K) {
	for _, k := range xs {
		s.DeleteOne(k)
	}
}

// Clear empties the set in O(1).
func (s *SparSet[K]) Clear() {
	*s.backend.Len() = 0
	for i := range s.mask {
		s.mask[i] = 0
	}
}

// Retain keeps only the members for which f returns true, compacting
// in place without allocating.
func (s *SparSet[K]) Retain(f func(K) bool) {
	dense := s.backend.Dense()
	i := 0
	for i < s.Len() {
		k := dense[i]
		if !f(k) {
			s.deleteUnchecked(k)
			continue
		}
		i++
	}
}

// Recall removes every member for which f returns true, yielding each
// deleted key as it is removed. If the caller stops ranging early, the
// remaining matching keys are still removed (just not yielded).
func (s *SparSet[K]) Recall(f func(K) bool) func(yield func(K) bool) {
	return func(yield func(K) bool) {
		snapshot := append([]K(nil), s.AsSlice()...)
		stopped := false
		for _, k := range snapshot {
			if !f(k) {
				continue
			}
			if !s.Contains(k) {
				continue
			}
			s.deleteUnchecked(k)
			if stopped {
				continue
			}
			if !yield(k) {
				stopped = true
			}
		}
	}
}
