package sparset

// Intersection yields every key present in both s and other.
func (s *SparSet[K]) Intersection(other *SparSet[K]) func(yield func(K) bool) {
	return func(yield func(K) bool) {
		for _, k := range s.AsSlice() {
			if other.Contains(k) && !yield(k) {
				return
			}
		}
	}
}

// Union yields every key in s, then every key in other not already in
// s.
func (s *SparSet[K]) Union(other *SparSet[K]) func(yield func(K) bool) {
	return func(yield func(K) bool) {
		for _, k := range s.AsSlice() {
			if !yield(k) {
				return
			}
		}
		for _, k := range other.AsSlice() {
			if !s.Contains(k) {
				if !yield(k) {
					return
				}
			}
		}
	}
}

// Difference yields every key in s that is not in other.
func (s *SparSet[K]) Difference(other *SparSet[K]) func(yield func(K) bool) {
	return func(yield func(K) bool) {
		for _, k := range s.AsSlice() {
			if !other.Contains(k) && !yield(k) {
				return
			}
		}
	}
}

// SymmetricDifference yields every key in exactly one of s, other:
// (s−other) followed by (other−s).
func (s *SparSet[K]) SymmetricDifference(other *SparSet[K]) func(yield func(K) bool) {
	return func(yield func(K) bool) {
		for _, k := range s.AsSlice() {
			if !other.Contains(k) && !yield(k) {
				return
			}
		}
		for _, k := range other.AsSlice() {
			if !s.Contains(k) && !yield(k) {
				return
			}
		}
	}
}

// IsDisjoint reports whether s and other share no members.
func (s *SparSet[K]) IsDisjoint(other *SparSet[K]) bool {
	small, big := s, other
	if big.Len() < small.Len() {
		small, big = big, small
	}
	for _, k := range small.AsSlice() {
		if big.Contains(k) {
			return false
		}
	}
	return true
}

// IsSubset reports whether every member of s is a member of other.
func (s *SparSet[K]) IsSubset(other *SparSet[K]) bool {
	if s.Len() > other.Len() {
		return false
	}
	for _, k := range s.AsSlice() {
		if !other.Contains(k) {
			return false
		}
	}
	return true
}

// IsSuperset reports whether every member of other is a member of s.
func (s *SparSet[K]) IsSuperset(other *SparSet[K]) bool {
	return other.IsSubset(s)
}

// Equal reports set equality: same length, and every member of s is a
// member of other.
func (s *SparSet[K]) Equal(other *SparSet[K]) bool {
	return s.Len() == other.Len() && s.IsSubset(other)
}

// Or returns the union of s and other as a newly allocated set of
// capacity max(s.Cap(), other.Cap()).
func (s *SparSet[K]) Or(other *SparSet[K]) *SparSet[K] {
	out := New[K](maxInt(s.n, other.n))
	for k := range s.Union(other) {
		out.InsertOne(k)
	}
	return out
}

// And returns the intersection of s and other as a newly allocated
// set.
func (s *SparSet[K]) And(other *SparSet[K]) *SparSet[K] {
	out := New[K](maxInt(s.n, other.n))
	for k := range s.Intersection(other) {
		out.InsertOne(k)
	}
	return out
}

// Xor returns the symmetric difference of s and other as a newly
// allocated set.
func (s *SparSet[K]) Xor(other *SparSet[K]) *SparSet[K] {
	out := New[K](maxInt(s.n, other.n))
	for k := range s.SymmetricDifference(other) {
		out.InsertOne(k)
	}
	return out
}

// SubNew returns the difference s−other as a newly allocated set.
func (s *SparSet[K]) SubNew(other *SparSet[K]) *SparSet[K] {
	out := New[K](s.n)
	for k := range s.Difference(other) {
		out.InsertOne(k)
	}
	return out
}

// OrAssign unions other into s in place. Requires s.Cap() >= other.Cap().
func (s *SparSet[K]) OrAssign(other *SparSet[K]) {
	s.requireCapacityAtLeast(other)
	for _, k := range other.AsSlice() {
		s.InsertOne(k)
	}
}

// AndAssign retains in s only the members also present in other.
// Requires s.Cap() >= other.Cap().
func (s *SparSet[K]) AndAssign(other *SparSet[K]) {
	s.requireCapacityAtLeast(other)
	s.Retain(func(k K) bool { return other.Contains(k) })
}

// XorAssign replaces s with its symmetric difference against other in
// place. Requires s.Cap() >= other.Cap().
func (s *SparSet[K]) XorAssign(other *SparSet[K]) {
	s.requireCapacityAtLeast(other)
	toAdd := append([]K(nil), func() []K {
		var out []K
		for k := range other.Difference(s) {
			out = append(out, k)
		}
		return out
	}()...)
	s.Retain(func(k K) bool { return !other.Contains(k) })
	s.InsertAll(toAdd)
}

// SubAssign removes from s every member also present in other.
// Requires s.Cap() >= other.Cap().
func (s *SparSet[K]) SubAssign(other *SparSet[K]) {
	s.requireCapacityAtLeast(other)
	s.Retain(func(k K) bool { return !other.Contains(k) })
}

func (s *SparSet[K]) requireCapacityAtLeast(other *SparSet[K]) {
	if s.n < other.n {
		panic("sparset: assignment requires self's capacity >= rhs's capacity")
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
