package udcode_test

import (
	"testing"

	"github.com/katalvlaran/sardinas/udcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewCode_Errors verifies that empty codes and empty code-words are rejected.
func TestNewCode_Errors(t *testing.T) {
	_, err := udcode.NewCode()
	assert.ErrorIs(t, err, udcode.ErrInvalidCode, "no words must be an invalid code")
	assert.ErrorIs(t, err, udcode.ErrEmptyCode, "no words must report ErrEmptyCode")

	_, err = udcode.NewCode("0", "", "1")
	assert.ErrorIs(t, err, udcode.ErrInvalidCode, "empty word must be an invalid code")
	assert.ErrorIs(t, err, udcode.ErrEmptyCodeword, "empty word must report ErrEmptyCodeword")
	assert.Contains(t, err.Error(), "argument 1", "error names the offending argument")
}

// TestNewCode_Deduplicates checks set semantics and sorted accessors.
func TestNewCode_Deduplicates(t *testing.T) {
	c, err := udcode.NewCode("11", "0", "11", "101", "0")
	require.NoError(t, err)

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []string{"0", "101", "11"}, c.Words())
	assert.True(t, c.Contains("101"))
	assert.False(t, c.Contains("1"))
	assert.Equal(t, "{0, 101, 11}", c.String())
	assert.Equal(t, 3, c.MaxLen())
	assert.Equal(t, 6, c.TotalLen())
}

// TestCode_WordsIsCopy ensures callers cannot mutate a Code through Words.
func TestCode_WordsIsCopy(t *testing.T) {
	c := udcode.MustCode("a", "b")
	w := c.Words()
	w[0] = "zzz"
	assert.Equal(t, []string{"a", "b"}, c.Words())
}

// TestCode_KeyIgnoresOrder verifies the canonical key is a set identity.
func TestCode_KeyIgnoresOrder(t *testing.T) {
	a := udcode.MustCode("0", "11", "001", "101")
	b := udcode.MustCode("101", "001", "0", "11", "0")
	c := udcode.MustCode("0", "11", "010", "101")

	assert.Equal(t, a.Key(), b.Key())
	assert.NotEqual(t, a.Key(), c.Key())

	// separator-like content must not collide
	assert.NotEqual(t, udcode.MustCode("1:a").Key(), udcode.MustCode("1", "a").Key())
}

// TestCode_IsPrefixCode covers prefix and non-prefix codes.
func TestCode_IsPrefixCode(t *testing.T) {
	assert.True(t, udcode.MustCode("0", "10", "110", "111").IsPrefixCode())
	assert.True(t, udcode.MustCode("a").IsPrefixCode())
	assert.False(t, udcode.MustCode("0", "01").IsPrefixCode())
	assert.False(t, udcode.MustCode("0", "11", "001", "101").IsPrefixCode())
	// "ab" < "abc" are separated by "abb" in sorted order
	assert.False(t, udcode.MustCode("ab", "abb", "abc").IsPrefixCode())
}

// TestMustCode_Panics checks MustCode on invalid input.
func TestMustCode_Panics(t *testing.T) {
	assert.Panics(t, func() { udcode.MustCode() })
	assert.Panics(t, func() { udcode.MustCode("") })
}

// TestSubstringBound counts distinct proper suffixes.
func TestSubstringBound(t *testing.T) {
	// proper suffixes: 001 → 01, 1; 101 → 01, 1; 11 → 1
	assert.Equal(t, 2, udcode.SubstringBound(udcode.MustCode("0", "11", "001", "101")))
	assert.Equal(t, 0, udcode.SubstringBound(udcode.MustCode("a", "b")))
	assert.Equal(t, 0, udcode.SubstringBound(nil))
}
