// Package engine owns the simulation state and orders every mutation of it:
// input commands, generation updates and the coalesced notifications that
// drive presenters.
package engine

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/model"
)

// Presenter consumes change notifications. DrawBoard is called at most once
// per pass after the board changed, DrawStatus at most once per pass after the
// status changed.
type Presenter interface {
	DrawBoard(v model.View)
	DrawStatus(st Status)
}

// Options tunes how generations are computed
type Options struct {
	// Bounded counts neighbors only around the live bounding box; it takes
	// precedence over Parallel
	Bounded bool
	// Parallel counts neighbors in row bands across Workers goroutines
	Parallel bool
	// Workers defaults to runtime.NumCPU when <= 0
	Workers int
	// Pool recycles the next-generation buffer; nil allocates each time
	Pool *model.BufferPool
	// Seed is reapplied by Reseed; nil reseeds to an empty board
	Seed model.SeedFunc
}

// Simulation is the single owner of the grid, the run state and the iteration
// counter. It is not safe for concurrent use; Run serializes access.
type Simulation struct {
	grid      *model.Grid
	state     RunState
	iteration uint64
	opts      Options

	boardChanged  Signal
	statusChanged Signal
}

// New wraps grid in a Running simulation at iteration 0. Both signals start
// raised so the first pass draws the seeded board.
func New(grid *model.Grid, opts Options) *Simulation {
	s := &Simulation{grid: grid, opts: opts}
	s.boardChanged.Raise()
	s.statusChanged.Raise()
	return s
}

// View returns a read-only view of the board
func (s *Simulation) View() model.View { return model.NewView(s.grid) }

// State returns the current run state
func (s *Simulation) State() RunState { return s.state }

// Iteration returns the number of generations applied so far
func (s *Simulation) Iteration() uint64 { return s.iteration }

// Status returns the current status payload
func (s *Simulation) Status() Status {
	return Status{Iteration: s.iteration, Alive: s.grid.Alive(), State: s.state}
}

// BoardChanged and StatusChanged expose the pending notifications
func (s *Simulation) BoardChanged() *Signal { return &s.boardChanged }
func (s *Simulation) StatusChanged() *Signal { return &s.statusChanged }

func (s *Simulation) changed() {
	s.boardChanged.Raise()
	s.statusChanged.Raise()
}

// AdvanceGeneration applies the rule to every cell against one snapshot of
// neighbor counts, commits the result in a single swap and bumps the
// iteration counter.
func (s *Simulation) AdvanceGeneration() error {
	var counts model.NeighborCounts
	switch {
	case s.opts.Bounded:
		counts = model.CountNeighborsBounded(s.grid)
	case s.opts.Parallel:
		counts = model.CountNeighborsParallel(s.grid, s.opts.Workers)
	default:
		counts = model.CountNeighbors(s.grid)
	}

	next := s.opts.Pool.Get(s.grid.GetWidth(), s.grid.GetHeight())
	next, err := s.grid.NextCells(counts, next)
	if err != nil {
		return errors.Wrap(err, "[AdvanceGeneration] failed to compute next cells")
	}
	prev, err := s.grid.ReplaceAll(next)
	if err != nil {
		return errors.Wrap(err, "[AdvanceGeneration] failed to commit generation")
	}
	s.opts.Pool.Put(prev)

	s.iteration++
	s.changed()
	return nil
}

// Tick advances one generation if Running. Ticks while Paused are dropped.
func (s *Simulation) Tick() (bool, error) {
	if s.state != Running {
		return false, nil
	}
	return true, s.AdvanceGeneration()
}

// StepOnce advances one generation if Paused. While Running the ticker already
// drives generations, so the step is ignored and false is returned.
func (s *Simulation) StepOnce() (bool, error) {
	if s.state != Paused {
		return false, nil
	}
	return true, s.AdvanceGeneration()
}

// ToggleRunState flips between Running and Paused
func (s *Simulation) ToggleRunState() {
	s.state = s.state.Toggle()
	s.statusChanged.Raise()
}

// ToggleCell flips one cell. It is allowed in either run state.
func (s *Simulation) ToggleCell(col, row int) error {
	if _, err := s.grid.Toggle(col, row); err != nil {
		return errors.Wrap(err, "[ToggleCell] rejected")
	}
	s.changed()
	return nil
}

// Clear kills every cell, keeping the iteration counter and run state
func (s *Simulation) Clear() {
	s.grid.Clear()
	s.changed()
}

// Reseed reapplies the configured seed, keeping the iteration counter and run
// state
func (s *Simulation) Reseed() {
	if s.opts.Seed == nil {
		s.grid.Clear()
	} else {
		s.grid.Seed(s.opts.Seed)
	}
	s.changed()
}

// Apply executes a single command
func (s *Simulation) Apply(cmd Command) error {
	if cmd == nil {
		return nil
	}
	return cmd.apply(s)
}

// Pass runs one scheduling cycle: every command in order, then a generation if
// tick is set and the simulation is Running, then the board redraw and the
// status redraw if their signals were raised. A failing command does not stop
// the rest of the pass; the first error is returned.
func (s *Simulation) Pass(cmds []Command, tick bool, p Presenter) error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	for _, cmd := range cmds {
		keep(s.Apply(cmd))
	}
	if tick {
		_, err := s.Tick()
		keep(err)
	}

	if s.boardChanged.Consume() && p != nil {
		p.DrawBoard(s.View())
	}
	if s.statusChanged.Consume() && p != nil {
		p.DrawStatus(s.Status())
	}
	return firstErr
}
