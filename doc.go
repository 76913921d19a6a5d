// Package sardinas is a small toolkit for testing variable-length codes
// for unique decodability with the Sardinas–Patterson algorithm.
//
// 🚀 What is in here?
//
//	A pure-Go, allocation-conscious implementation that brings together:
//		• Code construction with validation and set semantics
//		• Dangling-suffix generations Cₙ computed one step at a time
//		• A fixpoint engine with hashed, all-history cycle detection
//		• Verdicts with witness code-words and the full C∞
//		• Concurrent batch checks and an LRU verdict cache
//
// ✨ Why Sardinas–Patterson?
//
//   - Decides unique decodability for any finite code, not only prefix codes
//   - Always terminates: every dangling suffix is a suffix of a code-word
//   - Witnesses point straight at the code-words that cause ambiguity
//
// The module is organized as:
//
//	udcode/      — Code, SuffixSet, Next, Run, Check, CheckAll
//	memo/        — LRU-cached Checker keyed by canonical code keys
//	cmd/udcheck/ — command-line driver (check, batch, demo)
//
// Quick example:
//
//	{0, 11, 010, 101} is ambiguous:  0·101·101·0 = 010·11·010
//
//	go get github.com/katalvlaran/sardinas/udcode
package sardinas
