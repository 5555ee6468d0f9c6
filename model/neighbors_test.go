package model

import "testing"

func TestCountNeighborsSingleCell(t *testing.T) {
	g, _ := NewGrid(1, 1, Checkerboard)
	counts := CountNeighbors(g)
	if len(counts) != 1 || len(counts[0]) != 1 || counts[0][0] != 0 {
		t.Fatalf("counts = %v, want [[0]]", counts)
	}
}

func TestCornerTouchesThreeCells(t *testing.T) {
	for _, corner := range [][2]int{{0, 0}, {4, 0}, {0, 3}, {4, 3}} {
		g, _ := NewGrid(5, 4, nil)
		if err := g.Set(corner[0], corner[1], true); err != nil {
			t.Fatalf("Set: %v", err)
		}
		counts := CountNeighbors(g)

		touched := 0
		for y := range counts {
			for x := range counts[y] {
				touched += counts.At(x, y)
			}
		}
		if touched != 3 {
			t.Fatalf("corner %v contributed to %d cells, want 3", corner, touched)
		}
		// opposite corner would be a neighbor only under wraparound
		if counts.At(4-corner[0], 3-corner[1]) != 0 {
			t.Fatalf("corner %v wrapped to the opposite corner", corner)
		}
	}
}

func TestCountNeighborsFullBlock(t *testing.T) {
	all := func(int, int) bool { return true }
	g, _ := NewGrid(3, 3, all)
	counts := CountNeighbors(g)
	want := [][]int{
		{3, 5, 3},
		{5, 8, 5},
		{3, 5, 3},
	}
	for y := range want {
		for x := range want[y] {
			if counts.At(x, y) != want[y][x] {
				t.Fatalf("count (%d,%d) = %d, want %d", x, y, counts.At(x, y), want[y][x])
			}
		}
	}
}

func TestParallelMatchesSequential(t *testing.T) {
	for _, dims := range [][2]int{{1, 1}, {7, 3}, {20, 20}, {33, 17}} {
		g, _ := NewGrid(dims[0], dims[1], Random(0.4, 7))
		want := CountNeighbors(g)
		assertCounts(t, CountNeighborsBounded(g), want)
		for _, workers := range []int{0, 1, 3, 64} {
			got := CountNeighborsParallel(g, workers)
			for y := range want {
				for x := range want[y] {
					if got[y][x] != want[y][x] {
						t.Fatalf("%v workers=%d: (%d,%d) = %d, want %d", dims, workers, x, y, got[y][x], want[y][x])
					}
				}
			}
		}
	}
}

func TestBoundedMatchesSequential(t *testing.T) {
	corner, _ := NewGrid(9, 7, nil)
	_ = corner.Set(8, 6, true)
	_ = corner.Set(7, 6, true)

	centre, _ := NewGrid(12, 12, nil)
	for _, pos := range [][2]int{{5, 5}, {6, 5}, {5, 7}} {
		_ = centre.Set(pos[0], pos[1], true)
	}

	empty, _ := NewGrid(5, 5, nil)
	sparse, _ := NewGrid(30, 30, Random(0.02, 3))
	full, _ := NewGrid(6, 4, func(int, int) bool { return true })

	for name, g := range map[string]*Grid{"corner": corner, "centre": centre, "empty": empty, "sparse": sparse, "full": full} {
		t.Run(name, func(t *testing.T) {
			assertCounts(t, CountNeighborsBounded(g), CountNeighbors(g))
		})
	}
}

func TestLiveBounds(t *testing.T) {
	g, _ := NewGrid(10, 8, nil)
	if _, _, _, _, ok := g.LiveBounds(); ok {
		t.Fatalf("empty grid reported bounds")
	}
	_ = g.Set(3, 6, true)
	_ = g.Set(7, 2, true)
	minX, minY, maxX, maxY, ok := g.LiveBounds()
	if !ok || minX != 3 || minY != 2 || maxX != 7 || maxY != 6 {
		t.Fatalf("bounds = (%d,%d)-(%d,%d) ok=%v, want (3,2)-(7,6)", minX, minY, maxX, maxY, ok)
	}
}

func assertCounts(t *testing.T, got, want NeighborCounts) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d rows, want %d", len(got), len(want))
	}
	for y := range want {
		for x := range want[y] {
			if got[y][x] != want[y][x] {
				t.Fatalf("(%d,%d) = %d, want %d", x, y, got[y][x], want[y][x])
			}
		}
	}
}
