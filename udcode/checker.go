package udcode

// Check runs the Sardinas–Patterson test on code.
//
// The verdict is Decodable iff Code ∩ C∞ = ∅. The intersecting code-words
// are returned, sorted, as Witnesses: each is a dangling suffix that is
// also a code-word, i.e. evidence that some concatenation parses two ways.
//
// Check takes the same Options as Run and returns the same errors.
func Check(code *Code, opts ...Option) (Verdict, error) {
	tr, err := RunDetailed(code, opts...)
	if err != nil {
		return Verdict{}, err
	}

	witnesses := Seed(code).Intersect(tr.Dangling).Sorted()

	return Verdict{
		Decodable:   len(witnesses) == 0,
		Witnesses:   witnesses,
		Dangling:    tr.Dangling.Sorted(),
		Generations: tr.Generations,
		Stop:        tr.Stop,
	}, nil
}

// IsUniquelyDecodable builds a Code from words and reports whether it is
// uniquely decodable.
func IsUniquelyDecodable(words ...string) (bool, error) {
	code, err := NewCode(words...)
	if err != nil {
		return false, err
	}
	v, err := Check(code)
	if err != nil {
		return false, err
	}

	return v.Decodable, nil
}
