// Package patrol defines options, step records and sentinel errors for
// guard walks.
package patrol

import (
	"errors"

	"github.com/katalvlaran/guardwalk/grid"
)

// ErrStepLimit is reported by Path.Err and Walk when WithMaxSteps cut the
// walk short.
var ErrStepLimit = errors.New("patrol: step limit reached")

// Step is one element of a Path: the Position the guard occupies before the
// move is evaluated, and the point it advances onto when Moved is true.
// A Step with Moved false is either a turn or, if it is the last Step, the
// exit from the grid.
type Step struct {
	Pos   grid.Position
	Next  grid.Point
	Moved bool
}

// Option configures a Path.
type Option func(*Options)

// Options holds configurable parameters for a walk.
type Options struct {
	// MaxSteps, if positive, stops the walk after that many Steps and records
	// ErrStepLimit. Zero means unbounded.
	MaxSteps int

	// OnStep, if non-nil, is called for every Step yielded.
	OnStep func(Step)
}

// DefaultOptions returns Options with no step limit and no hook.
func DefaultOptions() Options {
	return Options{
		MaxSteps: 0,
		OnStep:   nil,
	}
}

// WithMaxSteps bounds the number of Steps a Path yields. Non-positive values
// leave the walk unbounded.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxSteps = n
		}
	}
}

// WithOnStep installs fn as a per-step hook.
func WithOnStep(fn func(Step)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// Summary is the outcome of Walk.
type Summary struct {
	// Visited holds every distinct point the guard stood on.
	Visited map[grid.Point]struct{}
	// Steps counts Path elements, turns included.
	Steps int
	// Exit is the last Position before the guard left the grid.
	Exit grid.Position
}
