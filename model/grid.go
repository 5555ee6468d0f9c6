package model

import (
	"github.com/pkg/errors"
)

// SeedFunc decides the initial liveness of the cell at (col, row)
type SeedFunc func(col, row int) bool

// Grid represents the game board: a fixed, hard-edged rectangle of cells
// with a cached live-cell count
type Grid struct {
	width  int
	height int
	cells  [][]bool
	alive  int
}

// NewGrid creates a new grid with the specified dimensions, seeded by seed.
// A nil seed leaves every cell dead.
func NewGrid(width, height int, seed SeedFunc) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NewGrid] %dx%d", width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		cells:  newCells(width, height),
	}
	if seed != nil {
		g.Seed(seed)
	}
	return g, nil
}

func newCells(width, height int) [][]bool {
	cells := make([][]bool, height)
	for i := range cells {
		cells[i] = make([]bool, width)
	}
	return cells
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// Alive returns the number of live cells
func (g *Grid) Alive() int {
	return g.alive
}

// InBounds reports whether (col, row) addresses a cell of the grid
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.width && row >= 0 && row < g.height
}

func (g *Grid) checkBounds(op string, col, row int) error {
	if !g.InBounds(col, row) {
		return errors.Wrapf(ErrOutOfBounds, "[%s] (%d,%d) outside %dx%d", op, col, row, g.width, g.height)
	}
	return nil
}

// Get returns the state of a cell
func (g *Grid) Get(col, row int) (bool, error) {
	if err := g.checkBounds("Get", col, row); err != nil {
		return false, err
	}
	return g.cells[row][col], nil
}

// Set sets a cell to alive (true) or dead (false)
func (g *Grid) Set(col, row int, alive bool) error {
	if err := g.checkBounds("Set", col, row); err != nil {
		return err
	}
	g.set(col, row, alive)
	return nil
}

func (g *Grid) set(col, row int, alive bool) {
	if g.cells[row][col] == alive {
		return
	}
	g.cells[row][col] = alive
	if alive {
		g.alive++
	} else {
		g.alive--
	}
}

// Toggle flips a cell and returns its new state
func (g *Grid) Toggle(col, row int) (bool, error) {
	if err := g.checkBounds("Toggle", col, row); err != nil {
		return false, err
	}
	next := !g.cells[row][col]
	g.set(col, row, next)
	return next, nil
}

// Clear clears all cells
func (g *Grid) Clear() {
	for y := range g.height {
		for x := range g.width {
			g.cells[y][x] = false
		}
	}
	g.alive = 0
}

// Seed clears the grid and applies seed to every cell
func (g *Grid) Seed(seed SeedFunc) {
	g.Clear()
	for y := range g.height {
		for x := range g.width {
			g.set(x, y, seed(x, y))
		}
	}
}

// ReplaceAll commits next as the whole board in a single swap and returns the
// previous buffer so it can be recycled. next must match the grid shape and
// must not be retained by the caller afterwards.
func (g *Grid) ReplaceAll(next [][]bool) ([][]bool, error) {
	if len(next) != g.height {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[ReplaceAll] got %d rows, want %d", len(next), g.height)
	}
	alive := 0
	for y, row := range next {
		if len(row) != g.width {
			return nil, errors.Wrapf(ErrInvalidDimensions, "[ReplaceAll] row %d has %d cells, want %d", y, len(row), g.width)
		}
		for _, cell := range row {
			if cell {
				alive++
			}
		}
	}

	prev := g.cells
	g.cells, g.alive = next, alive
	return prev, nil
}

// Snapshot returns a deep copy of the cells, indexed [row][col]
func (g *Grid) Snapshot() [][]bool {
	out := newCells(g.width, g.height)
	for y := range g.height {
		copy(out[y], g.cells[y])
	}
	return out
}

// CountLivingCells recounts the live cells without the cache
func (g *Grid) CountLivingCells() (count int) {
	for y := range g.height {
		for x := range g.width {
			if g.cells[y][x] {
				count++
			}
		}
	}
	return
}
