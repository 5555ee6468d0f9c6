package model

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// Seed pattern names accepted by SeedByName
const (
	SeedCheckerboard = "checkerboard"
	SeedEmpty        = "empty"
	SeedRandom       = "random"
	SeedPatterns     = "patterns"
)

// Checkerboard marks cells whose coordinate sum is even
func Checkerboard(col, row int) bool {
	return (col+row)%2 == 0
}

// Empty leaves every cell dead
func Empty(int, int) bool {
	return false
}

// Random marks each cell alive with probability density, deterministically for
// a given seed. Cells are drawn in the order they are seeded (row-major).
func Random(density float64, seed int64) SeedFunc {
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	return func(int, int) bool {
		return rng.Float64() < density
	}
}

var (
	glider = [][]bool{
		{false, true, false},
		{false, false, true},
		{true, true, true},
	}
	blinker = [][]bool{
		{true, true, true},
	}
)

// Patterns places gliders and blinkers on an otherwise empty board sized
// width x height. Boards smaller than 10x10 stay empty.
func Patterns(width, height int) SeedFunc {
	live := map[[2]int]bool{}
	stamp := func(startX, startY int, pattern [][]bool) {
		for y, row := range pattern {
			for x, cell := range row {
				if cell {
					live[[2]int{startX + x, startY + y}] = true
				}
			}
		}
	}

	if width >= 10 && height >= 10 {
		stamp(5, 5, glider)
		if width >= 20 && height >= 15 {
			stamp(width-8, 5, glider)
		}

		stamp(width/4, height/4, blinker)
		if width >= 30 {
			stamp(3*width/4, 3*height/4, blinker)
		}
	}

	return func(col, row int) bool {
		return live[[2]int{col, row}]
	}
}

// SeedByName resolves a configured pattern name to a seed for a board of the
// given size
func SeedByName(name string, width, height int, density float64, seed int64) (SeedFunc, error) {
	switch name {
	case SeedCheckerboard, "":
		return Checkerboard, nil
	case SeedEmpty:
		return Empty, nil
	case SeedRandom:
		return Random(density, seed), nil
	case SeedPatterns:
		return Patterns(width, height), nil
	default:
		return nil, errors.Wrapf(ErrUnknownSeed, "[SeedByName] %q", name)
	}
}
