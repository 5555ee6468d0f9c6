//go:build !ebiten

package gui

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/engine"
)

// Game stands in for the window adapter when ebiten is not compiled in, so
// headless builds and tests of the rest of the module still link.
type Game struct{}

// New refuses to build a window without ebiten.
func New(*engine.Simulation, int, *engine.Scheduler) *Game {
	panic("gui: windowed play needs -tags ebiten")
}

// Update reports the missing tag.
func (g *Game) Update() error {
	return errors.New("gui: windowed play needs -tags ebiten")
}

func (g *Game) Draw(any) {}

func (g *Game) Layout(int, int) (int, int) { return 0, 0 }
