package udcode

import "strings"

// Seed returns generation C₀, which is the code itself. It only feeds
// the first call to Next and is never part of C∞.
func Seed(code *Code) SuffixSet {
	return NewSuffixSet(code.words...)
}

// Next computes generation Cₙ from the code and Cₙ₋₁ by the dangling
// suffix rule: s ∈ Cₙ iff s = u[len(v):] for some pair with len(u) > len(v)
// and v a literal prefix of u, where (u, v) ranges over both
//
//	(a) u ∈ code,     v ∈ previous
//	(b) u ∈ previous, v ∈ code
//
// Equal-length pairs never contribute, so "" is never produced.
//
// Complexity: O(|code|·|previous|) prefix comparisons.
func Next(code *Code, previous SuffixSet) SuffixSet {
	next := make(SuffixSet)
	for _, w := range code.words {
		for p := range previous {
			// (a) code-word extends a previous suffix; (b) then cannot hold
			if danglingSuffix(next, w, p) {
				continue
			}
			// (b) previous suffix extends a code-word
			danglingSuffix(next, p, w)
		}
	}

	return next
}

// danglingSuffix adds u[len(v):] to dst when v is a proper prefix of u.
// It reports whether a suffix was added.
func danglingSuffix(dst SuffixSet, u, v string) bool {
	if len(u) <= len(v) || !strings.HasPrefix(u, v) {
		return false
	}
	dst[u[len(v):]] = struct{}{}

	return true
}
