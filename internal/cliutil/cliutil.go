// Package cliutil holds the flag, environment and logging plumbing shared by
// the example programs.
//
// Example:
//
//	func main() {
//		cliutil.Main("primitives", (*cheatsheet.Runner).Primitives)
//	}
package cliutil

import (
	"flag"
	"io"
	"log/slog"
	"os"
	"strconv"

	"github.com/pkg/errors"

	"github.com/charmingruby/lambdasheet/cheatsheet"
	"github.com/charmingruby/lambdasheet/fp"
	"github.com/charmingruby/lambdasheet/option"
)

// SeedEnv names the environment variable read when -seed is not given.
const SeedEnv = "LAMBDASHEET_SEED"

// Config is what an example program was asked to do.
type Config struct {
	Verbose bool
	Seed    option.Option[uint64]
}

// Parse reads flags from args and falls back to SeedEnv for the seed.
func Parse(name string, args []string, getenv func(string) string) (Config, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	verbose := fs.Bool("v", false, "log at debug level")
	seed := fs.String("seed", "", "seed for the random name supplier, $"+SeedEnv+" when empty")
	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "parse flags")
	}

	raw := *seed
	if raw == "" {
		raw = getenv(SeedEnv)
	}
	cfg := Config{Verbose: *verbose}
	if raw != "" {
		v, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return Config{}, errors.Wrapf(err, "invalid seed %q", raw)
		}
		cfg.Seed = option.Some(v)
	}
	return cfg, nil
}

// Logger builds a text logger on w, at debug level when verbose.
func Logger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Runner builds a cheatsheet.Runner printing to out. Without a seed the name
// supplier is unseeded.
func (c Config) Runner(out io.Writer, logger *slog.Logger) *cheatsheet.Runner {
	src := option.Fold(c.Seed, fp.GlobalRand, fp.SeededRand)
	return cheatsheet.New(
		cheatsheet.WithOutput(out),
		cheatsheet.WithLogger(logger),
		cheatsheet.WithRand(src),
	)
}

// Run executes one demonstration with the given arguments and streams and
// returns the process exit code: 0 on success or -h, 2 for bad arguments, 1
// when the demonstration fails.
func Run(name string, args []string, getenv func(string) string, stdout, stderr io.Writer, demo func(*cheatsheet.Runner) error) int {
	logger := Logger(stderr, false)
	cfg, err := Parse(name, args, getenv)
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		logger.Error("bad arguments", slog.String("demo", name), slog.Any("error", err))
		return 2
	}
	logger = Logger(stderr, cfg.Verbose)
	if err := demo(cfg.Runner(stdout, logger)); err != nil {
		return 1
	}
	return 0
}

// Main is Run over the process arguments, environment and standard streams.
func Main(name string, demo func(*cheatsheet.Runner) error) {
	os.Exit(Run(name, os.Args[1:], os.Getenv, os.Stdout, os.Stderr, demo))
}
