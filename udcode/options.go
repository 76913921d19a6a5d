package udcode

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// Option configures a fixpoint run via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation
// when Run or Check is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for a fixpoint run.
type Options struct {
	// Ctx allows cancellation; it is checked once per generation.
	Ctx context.Context

	// MaxGenerations, if > 0, aborts the run with ErrGenerationLimit once
	// more than this many generations were computed. 0 disables the cap.
	MaxGenerations int

	// OnGeneration is called after each generation is merged into C∞.
	// Returning an error aborts the run and propagates that error.
	OnGeneration func(info GenerationInfo) error

	// Logger receives Debug records for generations and the stop reason.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - no generation cap
//   - no-op OnGeneration hook
//   - a logger that discards everything.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		MaxGenerations: 0,
		OnGeneration:   func(GenerationInfo) error { return nil },
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxGenerations caps the number of generations a run may compute.
//
//	n > 0:  abort with ErrGenerationLimit past generation n
//	n == 0: no cap
//	n < 0:  invalid option → ErrOptionViolation
func WithMaxGenerations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxGenerations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxGenerations = n
	}
}

// WithOnGeneration registers a callback run after every recorded generation.
func WithOnGeneration(fn func(info GenerationInfo) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnGeneration = fn
		}
	}
}

// WithLogger sets the logger used for per-generation debug records.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// buildOptions applies opts over DefaultOptions and reports any violation.
func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
