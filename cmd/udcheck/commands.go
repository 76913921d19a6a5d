package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/sardinas/memo"
	"github.com/katalvlaran/sardinas/udcode"
)

// Process exit codes.
const (
	exitError     = 1
	exitAmbiguous = 2
)

var (
	// errNotDecodable signals that some checked code is ambiguous.
	errNotDecodable = errors.New("not uniquely decodable")

	// errBadConfig wraps invalid environment or flag values.
	errBadConfig = errors.New("invalid configuration")
)

// demoCodes are the textbook codes: decodable, ambiguous, decodable.
var demoCodes = [][]string{
	{"0", "11", "001", "101"},
	{"0", "11", "010", "101"},
	{"10", "110", "00", "111", "011", "010"},
}

// app carries the resolved settings shared by every subcommand.
type app struct {
	cfg    Config
	out    io.Writer
	logger *slog.Logger
}

// newRootCmd wires the command tree. cfg supplies flag defaults.
func newRootCmd(cfg Config, stdout, stderr io.Writer) *cobra.Command {
	a := &app{cfg: cfg, out: stdout}
	var verbose bool

	root := &cobra.Command{
		Use:   "udcheck",
		Short: "Check whether a variable-length code is uniquely decodable",
		Long: `udcheck applies the Sardinas–Patterson test to one or more codes.
A code is uniquely decodable when every concatenation of its code-words
splits back into code-words in exactly one way.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.cfg.validate(); err != nil {
				return err
			}
			level, _ := parseLevel(a.cfg.LogLevel)
			if verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.cfg.Output, "output", "o", cfg.Output, "output format: text or yaml")
	pf.IntVar(&a.cfg.MaxGenerations, "max-generations", cfg.MaxGenerations, "abort after this many generations (0 = no cap)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log every generation at debug level")

	root.AddCommand(
		&cobra.Command{
			Use:   "check <codeword>...",
			Short: "Check a single code given as separate arguments",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runCheck(args)
			},
		},
		&cobra.Command{
			Use:   "batch <w1,w2,...>...",
			Short: "Check several codes concurrently; each argument is one comma-separated code",
			Args:  cobra.MinimumNArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				codes := make([][]string, len(args))
				for i, arg := range args {
					codes[i] = strings.Split(arg, ",")
				}
				return a.runBatch(cmd, codes)
			},
		},
		&cobra.Command{
			Use:   "demo",
			Short: "Check the three textbook example codes",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return a.runBatch(cmd, demoCodes)
			},
		},
	)

	return root
}

// options converts the resolved settings to udcode options.
func (a *app) options() []udcode.Option {
	return []udcode.Option{
		udcode.WithMaxGenerations(a.cfg.MaxGenerations),
		udcode.WithLogger(a.logger),
	}
}

// runCheck decides one code.
func (a *app) runCheck(words []string) error {
	code, err := udcode.NewCode(words...)
	if err != nil {
		return err
	}
	a.logger.Debug("checking code", slog.String("code", code.String()))

	v, err := udcode.Check(code, a.options()...)
	if err != nil {
		return fmt.Errorf("check %s: %w", code, err)
	}

	return a.emit([]report{{Code: code.Words(), Verdict: v}})
}

// runBatch decides many codes concurrently through the verdict cache.
func (a *app) runBatch(cmd *cobra.Command, words [][]string) error {
	codes := make([]*udcode.Code, len(words))
	for i, ws := range words {
		code, err := udcode.NewCode(ws...)
		if err != nil {
			return fmt.Errorf("code %d: %w", i, err)
		}
		codes[i] = code
	}

	checker, err := memo.New(a.cfg.CacheSize, a.options()...)
	if err != nil {
		return err
	}
	verdicts, err := checker.CheckAll(cmd.Context(), codes)
	if err != nil {
		return err
	}
	stats := checker.Stats()
	a.logger.Debug("batch finished",
		slog.Int("codes", len(codes)),
		slog.Uint64("cache_hits", stats.Hits),
		slog.Uint64("cache_misses", stats.Misses))

	reports := make([]report, len(codes))
	for i, code := range codes {
		reports[i] = report{Code: code.Words(), Verdict: verdicts[i]}
	}

	return a.emit(reports)
}

// emit writes reports and returns errNotDecodable if any code is ambiguous.
func (a *app) emit(reports []report) error {
	if err := writeReports(a.out, a.cfg.Output, reports); err != nil {
		return err
	}
	for _, r := range reports {
		if !r.Verdict.Decodable {
			return errNotDecodable
		}
	}

	return nil
}
