package aoc

// InitMap allocates *m if it is nil.
func InitMap[K comparable, V any](m *map[K]V) {
	if *m == nil {
		*m = make(map[K]V)
	}
}

// Set is a set of comparable values. The zero value is an empty set ready
// to use.
type Set[T comparable] struct {
	m map[T]struct{}
}

func (s *Set[T]) Add(v T) {
	InitMap(&s.m)
	s.m[v] = struct{}{}
}

// Insert adds v to the set and reports whether it was not already present.
func (s *Set[T]) Insert(v T) bool {
	if s.Has(v) {
		return false
	}
	s.Add(v)
	return true
}

func (s *Set[T]) Has(v T) bool {
	_, ok := s.m[v]
	return ok
}

// Counter counts occurrences of keys. The zero value is ready to use.
type Counter[K comparable] struct {
	m map[K]int
}

func (c *Counter[K]) Inc(k K) {
	InitMap(&c.m)
	c.m[k]++
}

// HasCount reports whether any key was counted exactly n times.
func (c *Counter[K]) HasCount(n int) bool {
	for _, v := range c.m {
		if v == n {
			return true
		}
	}
	return false
}
