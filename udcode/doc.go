// Package udcode decides whether a finite variable-length code is
// uniquely decodable, using the Sardinas–Patterson dangling-suffix test.
//
// 🚀 What is unique decodability?
//
//	A code C is uniquely decodable when every string built by concatenating
//	code-words splits back into exactly one sequence of code-words.
//	Prefix codes (no word is a prefix of another) always are; other codes
//	may or may not be. For example {0, 11, 010, 101} is not:
//
//	  0·101·101·0 = 010·11·010 = "0101101010"
//
// ✨ How the test works:
//
//	Generation C₁ holds every dangling suffix left over when one code-word
//	is a proper prefix of another. Generation Cₙ₊₁ holds the dangling
//	suffixes between Cₙ and C, in both directions. The run stops when a
//	generation is empty or repeats any earlier generation; C∞ is the union
//	of all generations seen. C is uniquely decodable iff C ∩ C∞ = ∅.
//
// ⚙️ Usage:
//
//	code, err := udcode.NewCode("0", "11", "010", "101")
//	if err != nil {
//		// empty code or empty code-word
//	}
//	v, err := udcode.Check(code)
//	// v.Decodable == false, v.Witnesses == ["0"]
//
// Options:
//   - WithContext        — cancellation checked once per generation
//   - WithMaxGenerations — defensive generation cap (0 = none)
//   - WithOnGeneration   — hook invoked for every recorded generation
//   - WithLogger         — slog logger for per-generation debug records
//
// Performance:
//
//   - Each generation is derived from the previous one only:
//     O(|C|·|Cₙ|) prefix comparisons per generation.
//   - Cycle detection uses canonical generation keys in a hash set:
//     O(1) amortized lookups against all earlier generations.
//   - Every dangling suffix is a proper suffix of a code-word, so the
//     accumulator is bounded by SubstringBound(C) ≤ Σ|w|.
//
// Every run keeps its state in a local value, so Check, Run and CheckAll
// are safe for concurrent use on any inputs.
package udcode
