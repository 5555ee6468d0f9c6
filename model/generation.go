package model

import (
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-gol/rules"
)

// NextCells fills into with the next generation computed from the grid's
// current cells and their pre-transition neighbor counts. into must have the
// grid's shape; every cell is overwritten.
func (g *Grid) NextCells(counts NeighborCounts, into [][]bool) ([][]bool, error) {
	if len(counts) != g.height || len(into) != g.height {
		return nil, errors.Wrapf(ErrInvalidDimensions, "[NextCells] buffers do not have %d rows", g.height)
	}
	for y := range g.height {
		if len(counts[y]) != g.width || len(into[y]) != g.width {
			return nil, errors.Wrapf(ErrInvalidDimensions, "[NextCells] row %d does not have %d cells", y, g.width)
		}
		for x := range g.width {
			into[y][x] = rules.NextState(g.cells[y][x], counts.At(x, y))
		}
	}
	return into, nil
}
