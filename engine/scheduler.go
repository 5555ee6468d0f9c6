package engine

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// DefaultTickPeriod is the cadence of generation updates while Running
const DefaultTickPeriod = 500 * time.Millisecond

// ErrGenerationLimit is returned by Run once the configured generation limit
// is reached
var ErrGenerationLimit = errors.New("generation limit reached")

// Scheduler fires at a fixed cadence. Fires are gated on the run state and
// are never queued while Paused.
type Scheduler struct {
	period time.Duration
	ticker *time.Ticker
}

// NewScheduler starts a ticker with period, or DefaultTickPeriod if period <= 0
func NewScheduler(period time.Duration) *Scheduler {
	if period <= 0 {
		period = DefaultTickPeriod
	}
	return &Scheduler{period: period, ticker: time.NewTicker(period)}
}

// C delivers the fires
func (s *Scheduler) C() <-chan time.Time { return s.ticker.C }

// Period returns the configured cadence
func (s *Scheduler) Period() time.Duration { return s.period }

// Gate reports whether a fire may request an update in state
func (s *Scheduler) Gate(state RunState) bool { return state == Running }

// Stop releases the ticker
func (s *Scheduler) Stop() { s.ticker.Stop() }

// RunConfig configures Run
type RunConfig struct {
	// TickPeriod defaults to DefaultTickPeriod
	TickPeriod time.Duration
	// MaxGenerations stops the loop once reached; 0 means unlimited
	MaxGenerations uint64
	// OnError receives command errors; they never stop the loop
	OnError func(error)
}

// Run drives sim until ctx is done, inputs is closed, or the generation limit
// is reached. Everything happens on the calling goroutine: commands that
// arrived since the last pass are applied first, then a tick if one fired.
func Run(ctx context.Context, sim *Simulation, inputs <-chan Command, p Presenter, cfg RunConfig) error {
	sched := NewScheduler(cfg.TickPeriod)
	defer sched.Stop()

	pass := func(cmds []Command, tick bool) {
		if err := sim.Pass(cmds, tick, p); err != nil && cfg.OnError != nil {
			cfg.OnError(err)
		}
	}

	// draw the seed
	pass(nil, false)

	for {
		if cfg.MaxGenerations > 0 && sim.Iteration() >= cfg.MaxGenerations {
			return errors.Wrapf(ErrGenerationLimit, "[Run] %d generations", sim.Iteration())
		}

		select {
		case <-ctx.Done():
			return nil
		case cmd, ok := <-inputs:
			if !ok {
				return nil
			}
			cmds, open := drain(inputs, []Command{cmd})
			pass(cmds, false)
			if !open {
				return nil
			}
		case <-sched.C():
			cmds, open := drain(inputs, nil)
			pass(cmds, sched.Gate(sim.State()))
			if !open {
				return nil
			}
		}
	}
}

// drain collects commands already waiting on inputs without blocking
func drain(inputs <-chan Command, cmds []Command) ([]Command, bool) {
	for {
		select {
		case cmd, ok := <-inputs:
			if !ok {
				return cmds, false
			}
			cmds = append(cmds, cmd)
		default:
			return cmds, true
		}
	}
}
