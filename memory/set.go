package memory

import (
	"slices"

	"github.com/samber/lo"
)

// Set is an unordered collection of unique strings.
type Set map[string]struct{}

func NewSet(items ...string) Set {
	s := make(Set, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}
	return s
}

func (s Set) Add(item string)    { s[item] = struct{}{} }
func (s Set) Remove(item string) { delete(s, item) }
func (s Set) Len() int           { return len(s) }

func (s Set) Has(item string) bool {
	_, ok := s[item]
	return ok
}

// Sorted returns the members in ascending order. The result is never nil so it
// encodes as [] rather than null.
func (s Set) Sorted() []string {
	keys := lo.Keys(s)
	slices.Sort(keys)
	if keys == nil {
		keys = []string{}
	}
	return keys
}
