package udcode

import (
	"fmt"
	"log/slog"
)

// run is the state of one fixpoint computation. It is created per call
// and never shared, which keeps Run reentrant.
type run struct {
	code *Code
	opts Options
	next func(*Code, SuffixSet) SuffixSet

	prev SuffixSet           // Cₙ₋₁; earlier contents are dropped
	seen map[string]struct{} // keys of C₁..Cₙ₋₁
	acc  SuffixSet           // C∞ so far
	n    int                 // index of the last recorded generation
	stop StopReason
}

// Run drives successive generations from C₀ = code and returns C∞,
// the union of every recorded generation.
//
// The run halts when a generation is empty or set-equal to ANY earlier
// generation. Cycles of period greater than one occur, so comparing with
// the immediately preceding generation alone is not enough.
//
// Errors: ErrNilCode, ErrOptionViolation, ErrGenerationLimit, the context
// error on cancellation, or a wrapped OnGeneration error.
func Run(code *Code, opts ...Option) (SuffixSet, error) {
	tr, err := RunDetailed(code, opts...)
	if err != nil {
		return nil, err
	}

	return tr.Dangling, nil
}

// RunDetailed is Run that also reports the generation count and why the
// run stopped.
func RunDetailed(code *Code, opts ...Option) (*Trace, error) {
	if code == nil {
		return nil, ErrNilCode
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	r := newRun(code, o, Next)
	if err = r.loop(); err != nil {
		return nil, err
	}

	return &Trace{Dangling: r.acc, Generations: r.n, Stop: r.stop}, nil
}

// newRun seeds a run with C₀ = code.
func newRun(code *Code, o Options, next func(*Code, SuffixSet) SuffixSet) *run {
	return &run{
		code: code,
		opts: o,
		next: next,
		prev: Seed(code),
		seen: make(map[string]struct{}),
		acc:  make(SuffixSet),
	}
}

// loop computes generations until one is empty or repeats.
func (r *run) loop() error {
	for {
		// cancellation check (once per generation)
		select {
		case <-r.opts.Ctx.Done():
			return r.opts.Ctx.Err()
		default:
		}

		gen := r.next(r.code, r.prev)
		idx := r.n + 1
		if gen.Len() == 0 {
			r.halt(StopEmpty, idx)
			return nil
		}
		key := gen.Key()
		if _, dup := r.seen[key]; dup {
			r.halt(StopCycle, idx)
			return nil
		}
		if r.opts.MaxGenerations > 0 && idx > r.opts.MaxGenerations {
			return fmt.Errorf("%w: %d generations computed for %d code-words",
				ErrGenerationLimit, r.opts.MaxGenerations, r.code.Len())
		}

		if err := r.record(idx, key, gen); err != nil {
			return err
		}
	}
}

// record merges generation idx into the accumulator, remembers its key
// and keeps only its contents as the seed for the next step.
func (r *run) record(idx int, key string, gen SuffixSet) error {
	r.seen[key] = struct{}{}
	for s := range gen {
		r.acc[s] = struct{}{}
	}
	r.prev = gen
	r.n = idx

	r.opts.Logger.Debug("generation recorded",
		slog.Int("index", idx),
		slog.Int("size", gen.Len()),
		slog.Int("accumulated", r.acc.Len()))

	info := GenerationInfo{Index: idx, Suffixes: gen.Sorted(), Accumulated: r.acc.Len()}
	if err := r.opts.OnGeneration(info); err != nil {
		return fmt.Errorf("udcode: OnGeneration error at generation %d: %w", idx, err)
	}

	return nil
}

// halt marks the run finished at the generation that triggered the stop.
func (r *run) halt(reason StopReason, at int) {
	r.stop = reason
	r.opts.Logger.Debug("fixpoint reached",
		slog.String("stop", reason.String()),
		slog.Int("at", at),
		slog.Int("generations", r.n),
		slog.Int("dangling", r.acc.Len()))
}
