// Package cheatsheet runs small, independent demonstrations of functional
// idioms in Go: callback shapes, bulk operations on collections, lazy
// pipelines, terminal operations and numeric aggregation. Each demonstration
// writes human-readable lines to the Runner's output and shares no state with
// the others.
package cheatsheet

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pkg/errors"

	"github.com/charmingruby/lambdasheet/fp"
)

// Runner executes demonstrations. It is not safe for concurrent use.
type Runner struct {
	out    io.Writer
	logger *slog.Logger
	rand   fp.RandSource
}

// RunnerOption configures a Runner.
type RunnerOption func(r *Runner)

// WithOutput sets where demonstrations print. Defaults to os.Stdout.
func WithOutput(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.out = w
	}
}

// WithLogger sets the logger. Defaults to a logger that discards everything.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithRand sets the randomness behind the name supplier. Defaults to
// fp.GlobalRand.
func WithRand(src fp.RandSource) RunnerOption {
	return func(r *Runner) {
		r.rand = src
	}
}

// New creates a Runner.
func New(opts ...RunnerOption) *Runner {
	r := &Runner{
		out:    os.Stdout,
		logger: slog.New(slog.DiscardHandler),
		rand:   fp.GlobalRand(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Runner) begin(demo string) *printer {
	r.logger.Debug("running demonstration", slog.String("demo", demo))
	return &printer{w: r.out}
}

func (r *Runner) finish(demo string, err error) error {
	if err != nil {
		r.logger.Error("demonstration failed", slog.String("demo", demo), slog.Any("error", err))
		return errors.Wrap(err, demo)
	}
	return nil
}

// printer remembers the first write error and drops later writes.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) Write(b []byte) (int, error) {
	if p.err != nil {
		return 0, p.err
	}
	n, err := p.w.Write(b)
	p.err = err
	return n, err
}

func (p *printer) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(p, format, args...)
}

func (p *printer) println(args ...any) {
	_, _ = fmt.Fprintln(p, args...)
}
