package domain

import "sort"

// Set is an unordered collection of unique strings.
type Set map[string]struct{}

func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

func (s Set) Add(value string) {
	s[value] = struct{}{}
}

func (s Set) Contains(value string) bool {
	_, ok := s[value]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
