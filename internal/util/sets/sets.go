package sets

import (
	"cmp"
	"slices"
)

// Set is a simple generic hash set for comparable keys.
// Usage: s := sets.New("draft", "private"); if s.HasAny(doc.Meta.Tags) {...}
type Set[T comparable] map[T]struct{}

// New creates a set pre-populated with the provided values.
func New[T comparable](vals ...T) Set[T] {
	s := make(Set[T], len(vals))
	for _, v := range vals {
		s[v] = struct{}{}
	}
	return s
}

// Add inserts value into the set.
func (s Set[T]) Add(v T) { s[v] = struct{}{} }

// Has returns true if v is present. A nil set contains nothing.
func (s Set[T]) Has(v T) bool {
	_, ok := s[v]
	return ok
}

// HasAny returns true if at least one of vals is present.
func (s Set[T]) HasAny(vals []T) bool {
	if len(s) == 0 {
		return false
	}
	for _, v := range vals {
		if s.Has(v) {
			return true
		}
	}
	return false
}

// Sorted returns the members of s in ascending order.
func Sorted[T cmp.Ordered](s Set[T]) []T {
	out := make([]T, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}
