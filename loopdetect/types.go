// Package loopdetect defines options, results and sentinel errors for loop
// detection.
package loopdetect

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"slices"

	"github.com/katalvlaran/guardwalk/grid"
)

var (
	// ErrMapNil is returned when Detect receives a nil map or grid.
	ErrMapNil = errors.New("loopdetect: map is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("loopdetect: invalid option supplied")
)

// Observer receives one call per finished trial. With more than one worker
// it is called from several goroutines and must be safe for concurrent use.
type Observer interface {
	TrialDone(candidate grid.Point, loop bool, stops int)
}

// Option configures Detect.
type Option func(*Options)

// Options holds parameters for Detect.
type Options struct {
	// Ctx allows cancellation; checked between trials.
	Ctx context.Context

	// Workers is the number of concurrent trials. 0 or 1 runs sequentially.
	Workers int

	// MaxSteps, if positive, bounds the real walk (see patrol.WithMaxSteps).
	MaxSteps int

	// Logger receives debug records per trial and a summary at info level.
	Logger *slog.Logger

	// Observer, if non-nil, is told about every trial.
	Observer Observer

	err error
}

// DefaultOptions returns sequential Options with a background context and a
// discarding logger.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Workers: 1,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithContext sets a context for cancellation. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers sets the number of concurrent trials. Negative values are an
// ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.Workers = max(n, 1)
	}
}

// WithMaxSteps bounds the real walk. Negative values are an
// ErrOptionViolation.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = ErrOptionViolation
			return
		}
		o.MaxSteps = n
	}
}

// WithLogger sets the logger. nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver installs a per-trial observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		o.Observer = obs
	}
}

// Result is the outcome of Detect.
type Result struct {
	// Visited is the set of distinct points of the real walk (ans1 = len).
	Visited map[grid.Point]struct{}

	// Verdicts maps every evaluated candidate to whether it makes a loop.
	Verdicts map[grid.Point]bool

	// Steps counts the real walk's elements, turns included.
	Steps int

	// Stops totals the turns taken across all trials.
	Stops int
}

// VisitedCount is the number of distinct points the real walk covers.
func (r *Result) VisitedCount() int { return len(r.Visited) }

// LoopCount is the number of candidates whose verdict is a loop.
func (r *Result) LoopCount() int {
	n := 0
	for _, loop := range r.Verdicts {
		if loop {
			n++
		}
	}
	return n
}

// Trials is the number of candidates evaluated.
func (r *Result) Trials() int { return len(r.Verdicts) }

// LoopPoints lists the loop candidates in row-major order.
func (r *Result) LoopPoints() []grid.Point {
	var out []grid.Point
	for p, loop := range r.Verdicts {
		if loop {
			out = append(out, p)
		}
	}
	slices.SortFunc(out, func(a, b grid.Point) int {
		if a.Y != b.Y {
			return a.Y - b.Y
		}
		return a.X - b.X
	})

	return out
}

// LoopSet returns the loop candidates as a set, e.g. for grid.Render.
func (r *Result) LoopSet() map[grid.Point]struct{} {
	out := make(map[grid.Point]struct{})
	for p, loop := range r.Verdicts {
		if loop {
			out[p] = struct{}{}
		}
	}
	return out
}
