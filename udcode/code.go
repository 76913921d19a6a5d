package udcode

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Code is a validated, immutable set of code-words.
// Words are kept sorted so that every accessor is deterministic
// regardless of the order the caller supplied them in.
type Code struct {
	words []string
	set   map[string]struct{}
	key   string
}

// NewCode builds a Code from words.
// Duplicates are dropped silently; a code is a set.
//
// Errors (both wrap ErrInvalidCode):
//   - ErrEmptyCode     — no words supplied.
//   - ErrEmptyCodeword — some word is "".
func NewCode(words ...string) (*Code, error) {
	if len(words) == 0 {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCode, ErrEmptyCode)
	}

	set := make(map[string]struct{}, len(words))
	for i, w := range words {
		if w == "" {
			return nil, fmt.Errorf("%w: %w (argument %d)", ErrInvalidCode, ErrEmptyCodeword, i)
		}
		set[w] = struct{}{}
	}

	sorted := make([]string, 0, len(set))
	for w := range set {
		sorted = append(sorted, w)
	}
	sort.Strings(sorted)

	return &Code{
		words: sorted,
		set:   set,
		key:   canonicalKey(sorted),
	}, nil
}

// MustCode is like NewCode but panics on invalid input.
// Intended for tests and package-level literals.
func MustCode(words ...string) *Code {
	c, err := NewCode(words...)
	if err != nil {
		panic(err)
	}

	return c
}

// Words returns a sorted copy of the code-words.
func (c *Code) Words() []string {
	out := make([]string, len(c.words))
	copy(out, c.words)

	return out
}

// Len returns the number of distinct code-words.
func (c *Code) Len() int { return len(c.words) }

// Contains reports whether w is a code-word.
func (c *Code) Contains(w string) bool {
	_, ok := c.set[w]

	return ok
}

// MaxLen returns the length in bytes of the longest code-word.
func (c *Code) MaxLen() int {
	longest := 0
	for _, w := range c.words {
		if len(w) > longest {
			longest = len(w)
		}
	}

	return longest
}

// TotalLen returns Σ|w| over all code-words, in bytes.
func (c *Code) TotalLen() int {
	total := 0
	for _, w := range c.words {
		total += len(w)
	}

	return total
}

// Key returns a canonical key identifying the code as a set.
// Two codes have equal keys iff they contain the same words.
func (c *Code) Key() string { return c.key }

// IsPrefixCode reports whether no code-word is a proper prefix of another.
// Sorted order places any prefix immediately before some word extending it,
// so checking neighbours suffices.
func (c *Code) IsPrefixCode() bool {
	for i := 1; i < len(c.words); i++ {
		if strings.HasPrefix(c.words[i], c.words[i-1]) {
			return false
		}
	}

	return true
}

// String renders the code as {w1, w2, ...} in sorted order.
func (c *Code) String() string {
	return "{" + strings.Join(c.words, ", ") + "}"
}

// SubstringBound returns the number of distinct non-empty proper suffixes
// of the code-words. Every dangling suffix is one of them, so this bounds
// |C∞| for any run over c.
func SubstringBound(c *Code) int {
	if c == nil {
		return 0
	}
	seen := make(map[string]struct{}, c.TotalLen())
	for _, w := range c.words {
		for i := 1; i < len(w); i++ {
			seen[w[i:]] = struct{}{}
		}
	}

	return len(seen)
}

// canonicalKey joins sorted strings as "len:str" records so that no choice
// of separator can make two different sets collide.
func canonicalKey(sorted []string) string {
	var b strings.Builder
	for _, s := range sorted {
		b.WriteString(strconv.Itoa(len(s)))
		b.WriteByte(':')
		b.WriteString(s)
	}

	return b.String()
}
