package model

import (
	"runtime"

	"golang.org/x/sync/errgroup"
)

// NeighborCounts holds the live-neighbor count of every cell, indexed
// [row][col]. Values are in [0,8].
type NeighborCounts [][]uint8

// At returns the count for (col, row)
func (n NeighborCounts) At(col, row int) int {
	return int(n[row][col])
}

// CountAt counts living neighbors of (col, row), skipping positions outside
// the grid. Edges do not wrap.
func (g *Grid) CountAt(col, row int) int {
	count := 0

	// Calculate bounds once using efficient integer min/max
	minX := max(0, col-1)
	maxX := min(g.width-1, col+1)
	minY := max(0, row-1)
	maxY := min(g.height-1, row+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == col && ny == row {
				continue
			}
			if g.cells[ny][nx] {
				count++
			}
		}
	}

	return count
}

func (g *Grid) newCounts() NeighborCounts {
	counts := make(NeighborCounts, g.height)
	for i := range counts {
		counts[i] = make([]uint8, g.width)
	}
	return counts
}

func (g *Grid) countRows(counts NeighborCounts, startRow, endRow int) {
	for y := startRow; y < endRow; y++ {
		for x := 0; x < g.width; x++ {
			counts[y][x] = uint8(g.CountAt(x, y))
		}
	}
}

// CountNeighbors computes the neighbor count of every cell sequentially
func CountNeighbors(g *Grid) NeighborCounts {
	counts := g.newCounts()
	g.countRows(counts, 0, g.height)
	return counts
}

// CountNeighborsParallel computes the same result as CountNeighbors, splitting
// rows into bands counted concurrently. Only reads g; each band writes
// disjoint rows of the result.
func CountNeighborsParallel(g *Grid, workers int) NeighborCounts {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	counts := g.newCounts()

	var (
		eg            errgroup.Group
		rowsPerWorker = (g.height + workers - 1) / workers // Ceiling division
	)

	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, g.height)
		)
		if startRow >= g.height {
			break
		}

		eg.Go(func() error {
			g.countRows(counts, startRow, endRow)
			return nil
		})
	}

	// band workers never fail
	_ = eg.Wait()

	return counts
}

// LiveBounds returns the smallest rectangle holding every live cell. ok is
// false when the grid has no live cells.
func (g *Grid) LiveBounds() (minX, minY, maxX, maxY int, ok bool) {
	if g.alive == 0 {
		return 0, 0, 0, 0, false
	}
	for y := range g.height {
		for x := range g.width {
			if !g.cells[y][x] {
				continue
			}
			if !ok {
				minX, maxX, minY, maxY, ok = x, x, y, y, true
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	return minX, minY, maxX, maxY, ok
}

// CountNeighborsBounded computes the same result as CountNeighbors but only
// visits the live bounding box plus a one-cell margin. Every cell outside
// that region has no live neighbor and keeps its zero count.
func CountNeighborsBounded(g *Grid) NeighborCounts {
	counts := g.newCounts()
	minX, minY, maxX, maxY, ok := g.LiveBounds()
	if !ok {
		return counts
	}

	// Process only the active region + 1 margin
	minX, maxX = max(0, minX-1), min(g.width-1, maxX+1)
	minY, maxY = max(0, minY-1), min(g.height-1, maxY+1)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			counts[y][x] = uint8(g.CountAt(x, y))
		}
	}
	return counts
}
