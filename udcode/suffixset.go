package udcode

import "sort"

// SuffixSet is a set of dangling suffixes. Sets produced by this package
// are snapshots: nothing mutates them after they are returned.
type SuffixSet map[string]struct{}

// NewSuffixSet builds a SuffixSet from the given strings.
func NewSuffixSet(items ...string) SuffixSet {
	s := make(SuffixSet, len(items))
	for _, it := range items {
		s[it] = struct{}{}
	}

	return s
}

// Len returns the number of members.
func (s SuffixSet) Len() int { return len(s) }

// Has reports whether x is a member.
func (s SuffixSet) Has(x string) bool {
	_, ok := s[x]

	return ok
}

// Sorted returns the members in ascending order; never nil.
func (s SuffixSet) Sorted() []string {
	out := make([]string, 0, len(s))
	for x := range s {
		out = append(out, x)
	}
	sort.Strings(out)

	return out
}

// Key returns a canonical string identifying the set's contents.
// Equal sets always have equal keys, and unequal sets never do.
func (s SuffixSet) Key() string {
	return canonicalKey(s.Sorted())
}

// Equal reports exact set equality.
func (s SuffixSet) Equal(o SuffixSet) bool {
	if len(s) != len(o) {
		return false
	}
	for x := range s {
		if _, ok := o[x]; !ok {
			return false
		}
	}

	return true
}

// Union returns a new set holding the members of s and o.
func (s SuffixSet) Union(o SuffixSet) SuffixSet {
	out := make(SuffixSet, len(s)+len(o))
	for x := range s {
		out[x] = struct{}{}
	}
	for x := range o {
		out[x] = struct{}{}
	}

	return out
}

// Intersect returns a new set holding the members present in both s and o.
func (s SuffixSet) Intersect(o SuffixSet) SuffixSet {
	small, large := s, o
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(SuffixSet)
	for x := range small {
		if _, ok := large[x]; ok {
			out[x] = struct{}{}
		}
	}

	return out
}
