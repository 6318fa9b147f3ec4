package loopdetect

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/guardwalk/grid"
	"github.com/katalvlaran/guardwalk/patrol"
)

// Detect walks the guard of m and evaluates a trial obstruction at every cell
// the guard is about to enter for the first time.
//
// Behavior:
//  1. Walk the real patrol step by step, recording every Position.
//  2. Before each move onto a fresh cell p (never the start): derive a grid
//     with p blocked and re-walk with patrol.Stops from the current Position.
//  3. A stop already in the real history or earlier in the trial is a loop;
//     running out of obstructions ahead means the guard escapes.
//
// The context is checked before every step of the real walk, so a guard
// turning in place forever still stops on cancellation.
//
// Returns ErrMapNil, ErrOptionViolation, the context's error if cancelled,
// or patrol.ErrStepLimit (wrapped) when WithMaxSteps cut the real walk short.
func Detect(m *grid.Map, opts ...Option) (*Result, error) {
	if m == nil || m.Grid == nil {
		return nil, ErrMapNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	var (
		res *Result
		err error
	)
	if o.Workers > 1 {
		res, err = detectParallel(m, o)
	} else {
		res, err = detectSequential(m, o)
	}
	if err != nil {
		return nil, err
	}
	o.Logger.Info("loop detection complete",
		"visited", res.VisitedCount(),
		"loops", res.LoopCount(),
		"trials", res.Trials(),
		"steps", res.Steps,
		"workers", o.Workers,
	)

	return res, nil
}

func newResult() *Result {
	return &Result{
		Visited:  make(map[grid.Point]struct{}),
		Verdicts: make(map[grid.Point]bool),
	}
}

// detectSequential interleaves trials with the real walk.
func detectSequential(m *grid.Map, o Options) (*Result, error) {
	g, start := m.Grid, m.Start
	res := newResult()
	visited := make(map[grid.Position]struct{})
	scratch := make(map[grid.Position]struct{})
	seen := func(s grid.Position) bool {
		_, ok := visited[s]
		return ok
	}

	path := patrol.NewPath(g, start, patrol.WithMaxSteps(o.MaxSteps))
	for s := range path.All() {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		res.Visited[s.Pos.Point] = struct{}{}
		visited[s.Pos] = struct{}{}
		if !s.Moved || s.Next == start.Point {
			continue
		}
		if _, done := res.Verdicts[s.Next]; done {
			continue
		}

		loop, stops := trial(g, s.Pos, s.Next, seen, scratch)
		clear(scratch)
		res.Verdicts[s.Next] = loop
		res.Stops += stops
		if o.Observer != nil {
			o.Observer.TrialDone(s.Next, loop, stops)
		}
		o.Logger.Debug("trial", "candidate", s.Next, "from", s.Pos, "loop", loop, "stops", stops)
	}
	res.Steps = path.Steps()
	if err := path.Err(); err != nil {
		return nil, fmt.Errorf("loopdetect: real walk: %w", err)
	}

	return res, nil
}

// candidate is a trial recorded during the real walk for later evaluation.
// horizon is the length of the real history when the candidate was offered;
// only Positions with a smaller history index count as seen.
type candidate struct {
	at      grid.Point
	from    grid.Position
	horizon int
}

// detectParallel records the whole real walk, then runs the trials on an
// errgroup. The history maps are read-only while trials run.
func detectParallel(m *grid.Map, o Options) (*Result, error) {
	g, start := m.Grid, m.Start
	res := newResult()
	first := make(map[grid.Position]int)
	offered := make(map[grid.Point]struct{})
	var cands []candidate

	path := patrol.NewPath(g, start, patrol.WithMaxSteps(o.MaxSteps))
	n := 0
	for s := range path.All() {
		if err := o.Ctx.Err(); err != nil {
			return nil, err
		}
		res.Visited[s.Pos.Point] = struct{}{}
		if _, ok := first[s.Pos]; !ok {
			first[s.Pos] = n
		}
		n++
		if !s.Moved || s.Next == start.Point {
			continue
		}
		if _, done := offered[s.Next]; done {
			continue
		}
		offered[s.Next] = struct{}{}
		cands = append(cands, candidate{at: s.Next, from: s.Pos, horizon: n})
	}
	res.Steps = path.Steps()
	if err := path.Err(); err != nil {
		return nil, fmt.Errorf("loopdetect: real walk: %w", err)
	}

	loops := make([]bool, len(cands))
	stops := make([]int, len(cands))
	eg, ctx := errgroup.WithContext(o.Ctx)
	eg.SetLimit(o.Workers)
	for i, c := range cands {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			seen := func(s grid.Position) bool {
				idx, ok := first[s]
				return ok && idx < c.horizon
			}
			loops[i], stops[i] = trial(g, c.from, c.at, seen, make(map[grid.Position]struct{}))
			if o.Observer != nil {
				o.Observer.TrialDone(c.at, loops[i], stops[i])
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	for i, c := range cands {
		res.Verdicts[c.at] = loops[i]
		res.Stops += stops[i]
		o.Logger.Debug("trial", "candidate", c.at, "from", c.from, "loop", loops[i], "stops", stops[i])
	}

	return res, nil
}

// Evaluate runs a single trial: block p on g and walk from, treating every
// Position in visited as already seen. It reports whether the walk loops.
// g must be a base grid and from must not stand on p; both are programming
// errors and panic.
func Evaluate(g *grid.Grid, visited map[grid.Position]struct{}, from grid.Position, p grid.Point) bool {
	seen := func(s grid.Position) bool {
		_, ok := visited[s]
		return ok
	}
	loop, _ := trial(g, from, p, seen, make(map[grid.Position]struct{}))

	return loop
}

// trial walks the stops of g+p from `from`. scratch must be empty on entry
// and is filled with the trial's own stops.
func trial(
	g *grid.Grid,
	from grid.Position,
	p grid.Point,
	seen func(grid.Position) bool,
	scratch map[grid.Position]struct{},
) (loop bool, stops int) {
	if from.Point == p {
		panic(fmt.Sprintf("loopdetect: trial obstruction %v on the guard's own cell", p))
	}
	tg, err := g.With(p)
	if err != nil {
		panic(fmt.Sprintf("loopdetect: derive trial grid: %v", err))
	}

	for s := range patrol.Stops(tg, from) {
		stops++
		if seen(s) {
			return true, stops
		}
		if _, ok := scratch[s]; ok {
			return true, stops
		}
		scratch[s] = struct{}{}
	}

	return false, stops
}
