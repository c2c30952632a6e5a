package theory

import (
	"sort"

	"golang.org/x/exp/constraints"
)

type Set map[string]struct{}

func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, item := range items {
		s[item] = struct{}{}
	}
	return s
}

func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

func (s Set) Union(other Set) Set {
	res := make(Set, len(s)+len(other))
	for k := range s {
		res[k] = struct{}{}
	}
	for k := range other {
		res[k] = struct{}{}
	}
	return res
}

// Equal treats nil and empty sets as equal.
func (s Set) Equal(other Set) bool {
	if len(s) != len(other) {
		return false
	}
	for k := range s {
		if !other.Has(k) {
			return false
		}
	}
	return true
}

// Sorted returns the members in chromatic order, unknown names last in
// lexical order.
func (s Set) Sorted() []string {
	keys := SortedKeys(s)
	sort.SliceStable(keys, func(i, j int) bool {
		a, okA := chromaticIndex[keys[i]]
		b, okB := chromaticIndex[keys[j]]
		switch {
		case okA && okB:
			return a < b
		case okA != okB:
			return okA
		}
		return false
	})
	return keys
}

func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}
