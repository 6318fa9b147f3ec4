package patrol

import (
	"iter"

	"github.com/katalvlaran/guardwalk/grid"
)

// Path is a lazy single-step walk over a grid. It is not safe for concurrent
// use.
type Path struct {
	g     *grid.Grid
	cur   grid.Position
	done  bool
	steps int
	opts  Options
	err   error
}

// NewPath starts a walk on g at start. The start is assumed to be in bounds
// and not an obstruction (grid.NewMap enforces this for parsed maps).
func NewPath(g *grid.Grid, start grid.Position, opts ...Option) *Path {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Path{g: g, cur: start, opts: o}
}

// Next yields the current Step and advances the walk. It returns false once
// the previous Step left the grid or the step limit was hit.
func (p *Path) Next() (Step, bool) {
	if p.done {
		return Step{}, false
	}
	if p.opts.MaxSteps > 0 && p.steps >= p.opts.MaxSteps {
		p.done = true
		p.err = ErrStepLimit
		return Step{}, false
	}

	pos := p.cur
	next := pos.Ahead()
	s := Step{Pos: pos}
	switch {
	case !p.g.InBounds(next):
		// This is the last element.
		p.done = true
	case p.g.IsObstruction(next):
		p.cur = pos.Turned()
	default:
		p.cur = grid.Position{Point: next, Dir: pos.Dir}
		s.Next, s.Moved = next, true
	}
	p.steps++
	if p.opts.OnStep != nil {
		p.opts.OnStep(s)
	}

	return s, true
}

// All returns the remaining Steps as a range-over-func sequence. Breaking out
// of the loop leaves the Path positioned after the last yielded Step.
func (p *Path) All() iter.Seq[Step] {
	return func(yield func(Step) bool) {
		for {
			s, ok := p.Next()
			if !ok || !yield(s) {
				return
			}
		}
	}
}

// Steps returns how many Steps have been yielded so far.
func (p *Path) Steps() int { return p.steps }

// Err returns ErrStepLimit if the walk was cut short, nil otherwise.
func (p *Path) Err() error { return p.err }

// Stops walks g from start using ray queries and yields the Position after
// every turn, i.e. the cell just before an obstruction with the facing
// rotated clockwise. The start itself is not yielded. The sequence ends when
// no obstruction lies ahead; on a cyclic route it never ends, so callers
// must break out once a Position repeats.
func Stops(g *grid.Grid, start grid.Position) iter.Seq[grid.Position] {
	return func(yield func(grid.Position) bool) {
		pos := start
		for {
			hit, ok := g.NextObstruction(pos)
			if !ok {
				return
			}
			// Back off one cell from the obstruction and turn.
			back := pos.Dir.Delta()
			pos = grid.Position{
				Point: grid.Point{X: hit.X - back.X, Y: hit.Y - back.Y},
				Dir:   pos.Dir.TurnRight(),
			}
			if !yield(pos) {
				return
			}
		}
	}
}

// Walk drives a Path from start until the guard leaves g.
// Returns ErrStepLimit (with the partial Summary) if WithMaxSteps ends it
// first.
// Complexity: O(S log k) for S steps.
func Walk(g *grid.Grid, start grid.Position, opts ...Option) (Summary, error) {
	path := NewPath(g, start, opts...)
	sum := Summary{Visited: make(map[grid.Point]struct{})}
	for s := range path.All() {
		sum.Visited[s.Pos.Point] = struct{}{}
		sum.Exit = s.Pos
	}
	sum.Steps = path.Steps()

	return sum, path.Err()
}
