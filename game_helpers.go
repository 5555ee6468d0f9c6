package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/engine"
	"github.com/sheikhrachel/go-gol/model"
	"github.com/sheikhrachel/go-gol/utils"
)

const helpText = "t <col> <row> toggle | p pause/resume | s step (paused) | c clear | r reseed | q quit"

var errUnknownCommand = errors.New("unknown command")

// initializeGame sets up the initial game state
func initializeGame(config utils.Config) (*engine.Simulation, error) {
	sim, err := engine.FromConfig(config)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame] failed to build simulation")
	}
	return sim, nil
}

// parseCommand translates one line of terminal input. quit is set for "q".
func parseCommand(line string) (cmd engine.Command, quit bool, err error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, false, nil
	}

	switch fields[0] {
	case "q", "quit":
		return nil, true, nil
	case "p", "pause", "resume":
		return engine.ToggleRunState{}, false, nil
	case "s", "step":
		return engine.StepOnce{}, false, nil
	case "c", "clear":
		return engine.Clear{}, false, nil
	case "r", "reseed":
		return engine.Reseed{}, false, nil
	case "t", "toggle":
		if len(fields) != 3 {
			return nil, false, errors.Errorf("[parseCommand] toggle needs <col> <row>, got %q", line)
		}
		col, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, false, errors.Wrapf(err, "[parseCommand] bad column %q", fields[1])
		}
		row, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, false, errors.Wrapf(err, "[parseCommand] bad row %q", fields[2])
		}
		return engine.ToggleCell{Col: col, Row: row}, false, nil
	default:
		return nil, false, errors.Wrapf(errUnknownCommand, "[parseCommand] %q", fields[0])
	}
}

// terminalPresenter draws notifications with the terminal renderer
type terminalPresenter struct {
	renderer *model.TerminalRenderer
	stats    *utils.Stats
	now      func() time.Time
}

func newTerminalPresenter(renderer *model.TerminalRenderer) *terminalPresenter {
	return &terminalPresenter{renderer: renderer, stats: utils.NewStats(), now: time.Now}
}

func (p *terminalPresenter) DrawBoard(v model.View) {
	p.renderer.Display(v)
}

func (p *terminalPresenter) DrawStatus(st engine.Status) {
	now := p.now()
	p.stats.Update(st.Iteration, st.Alive, now)
	p.renderer.Status(formatStatus(st, p.stats, now), st.State == engine.Paused, helpText)
}

// formatStatus renders the status line shown under the board
func formatStatus(st engine.Status, stats *utils.Stats, now time.Time) string {
	return fmt.Sprintf("Gen: %d | Living: %d | State: %s | %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs",
		st.Iteration, st.Alive, st.State, stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime(now).Seconds())
}
