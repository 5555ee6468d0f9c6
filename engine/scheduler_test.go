package engine

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/model"
)

func TestSignalCoalesces(t *testing.T) {
	var s Signal
	if s.Consume() {
		t.Fatalf("fresh signal consumed as pending")
	}
	for i := 0; i < 10; i++ {
		s.Raise()
	}
	if !s.Consume() {
		t.Fatalf("raised signal not pending")
	}
	if s.Consume() {
		t.Fatalf("signal pending twice after one consume")
	}
}

func TestRunStateString(t *testing.T) {
	if Running.String() != "running" || Paused.String() != "paused" {
		t.Fatalf("unexpected names %q %q", Running, Paused)
	}
	if Running.Toggle().Toggle() != Running {
		t.Fatalf("double toggle changed state")
	}
}

func TestSchedulerDefaults(t *testing.T) {
	s := NewScheduler(0)
	defer s.Stop()
	if s.Period() != DefaultTickPeriod {
		t.Fatalf("period = %v, want %v", s.Period(), DefaultTickPeriod)
	}
	if !s.Gate(Running) || s.Gate(Paused) {
		t.Fatalf("gate should only open while running")
	}
}

func TestRunStopsAtGenerationLimit(t *testing.T) {
	g, _ := model.NewGrid(10, 10, model.Patterns(10, 10))
	sim := New(g, Options{})
	r := &recorder{}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	err := Run(ctx, sim, nil, r, RunConfig{TickPeriod: time.Millisecond, MaxGenerations: 3})
	if !errors.Is(err, ErrGenerationLimit) {
		t.Fatalf("err = %v, want ErrGenerationLimit", err)
	}
	if sim.Iteration() != 3 {
		t.Fatalf("iteration = %d, want 3", sim.Iteration())
	}
	// one draw for the seed plus one per generation
	if r.boards != 4 || len(r.statuses) != 4 {
		t.Fatalf("redraws: %d board, %d status; want 4 each", r.boards, len(r.statuses))
	}
}

func TestRunAppliesCommandsAndStopsOnClose(t *testing.T) {
	g, _ := model.NewGrid(4, 4, nil)
	sim := New(g, Options{})
	r := &recorder{}

	inputs := make(chan Command, 4)
	inputs <- ToggleRunState{}
	inputs <- ToggleCell{Col: 1, Row: 2}
	inputs <- StepOnce{}
	close(inputs)

	var errs []error
	err := Run(context.Background(), sim, inputs, r, RunConfig{
		TickPeriod: time.Hour,
		OnError:    func(err error) { errs = append(errs, err) },
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(errs) != 0 {
		t.Fatalf("unexpected command errors %v", errs)
	}
	if sim.State() != Paused {
		t.Fatalf("state = %v, want paused", sim.State())
	}
	// the lone toggled cell dies on the paused step
	if sim.Iteration() != 1 || sim.Status().Alive != 0 {
		t.Fatalf("status = %+v, want iteration 1 with no live cells", sim.Status())
	}
}

func TestRunReportsCommandErrors(t *testing.T) {
	g, _ := model.NewGrid(2, 2, nil)
	sim := New(g, Options{})

	inputs := make(chan Command, 1)
	inputs <- ToggleCell{Col: 5, Row: 5}
	close(inputs)

	var errs []error
	err := Run(context.Background(), sim, inputs, nil, RunConfig{
		TickPeriod: time.Hour,
		OnError:    func(err error) { errs = append(errs, err) },
	})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(errs) != 1 || !errors.Is(errs[0], model.ErrOutOfBounds) {
		t.Fatalf("errors = %v, want one ErrOutOfBounds", errs)
	}
}

func TestRunPausedSuppressesTicks(t *testing.T) {
	g, _ := model.NewGrid(5, 5, model.Checkerboard)
	sim := New(g, Options{})
	sim.ToggleRunState()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	if err := Run(ctx, sim, nil, nil, RunConfig{TickPeriod: time.Millisecond}); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if sim.Iteration() != 0 {
		t.Fatalf("paused simulation advanced to %d", sim.Iteration())
	}
}
