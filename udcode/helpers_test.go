package udcode_test

import "github.com/katalvlaran/sardinas/udcode"

// sampleCodes returns a mix of decodable, non-decodable and prefix codes.
func sampleCodes() []*udcode.Code {
	return []*udcode.Code{
		udcode.MustCode("0", "11", "001", "101"),
		udcode.MustCode("0", "11", "010", "101"),
		udcode.MustCode("10", "110", "00", "111", "011", "010"),
		udcode.MustCode("a"),
		udcode.MustCode("0", "01", "11"),
		udcode.MustCode("a", "ab", "b"),
		udcode.MustCode("0", "10", "110", "1110", "1111"),
		udcode.MustCode("1", "011", "01110", "1110", "10011"),
	}
}

// distinctSubstrings counts distinct non-empty substrings of the code-words.
func distinctSubstrings(code *udcode.Code) int {
	seen := make(map[string]struct{})
	for _, w := range code.Words() {
		for i := 0; i < len(w); i++ {
			for j := i + 1; j <= len(w); j++ {
				seen[w[i:j]] = struct{}{}
			}
		}
	}

	return len(seen)
}
