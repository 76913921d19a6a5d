// Package udcode defines sentinel errors and result types for the
// Sardinas–Patterson test.
package udcode

import (
	"errors"
)

// Sentinel errors for code construction and fixpoint runs.
var (
	// ErrInvalidCode is the umbrella error for any rejected code input.
	ErrInvalidCode = errors.New("udcode: invalid code")

	// ErrEmptyCode indicates that no code-words were supplied.
	ErrEmptyCode = errors.New("udcode: code must contain at least one code-word")

	// ErrEmptyCodeword indicates that a supplied code-word is "".
	ErrEmptyCodeword = errors.New("udcode: code-words must be non-empty")

	// ErrNilCode is returned when a nil *Code reaches Run or Check.
	ErrNilCode = errors.New("udcode: code is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("udcode: invalid option supplied")

	// ErrGenerationLimit is returned when a run exceeds WithMaxGenerations.
	ErrGenerationLimit = errors.New("udcode: generation limit exceeded")
)

// StopReason records why a fixpoint run halted.
type StopReason int

const (
	// StopNone means the run has not halted (or halted with an error).
	StopNone StopReason = iota

	// StopEmpty means the latest generation was empty.
	StopEmpty

	// StopCycle means the latest generation equals an earlier generation.
	StopCycle
)

// String returns the lowercase name of the stop reason.
func (r StopReason) String() string {
	switch r {
	case StopEmpty:
		return "empty"
	case StopCycle:
		return "cycle"
	default:
		return "none"
	}
}

// MarshalText implements encoding.TextMarshaler so verdicts encode the
// stop reason by name.
func (r StopReason) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// GenerationInfo describes one recorded generation Cₙ, passed to the
// OnGeneration hook.
type GenerationInfo struct {
	// Index is n, starting at 1.
	Index int
	// Suffixes are the members of Cₙ in sorted order.
	Suffixes []string
	// Accumulated is |C∞| after Cₙ was merged in.
	Accumulated int
}

// Trace is the full outcome of a fixpoint run.
type Trace struct {
	// Dangling is the accumulated union C∞.
	Dangling SuffixSet
	// Generations counts the generations merged into Dangling.
	Generations int
	// Stop tells whether the run ended on an empty or a repeated generation.
	Stop StopReason
}

// Verdict is the result of Check.
//
//   - Decodable — true iff Code ∩ C∞ = ∅.
//   - Witnesses — sorted code-words that also occur as dangling suffixes;
//     empty exactly when Decodable is true.
//   - Dangling  — sorted members of C∞.
type Verdict struct {
	Decodable   bool       `json:"decodable" yaml:"decodable"`
	Witnesses   []string   `json:"witnesses" yaml:"witnesses"`
	Dangling    []string   `json:"dangling" yaml:"dangling"`
	Generations int        `json:"generations" yaml:"generations"`
	Stop        StopReason `json:"stop" yaml:"stop"`
}
