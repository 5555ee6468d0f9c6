package rules

import "testing"

func TestNextStateTable(t *testing.T) {
	for neighbors := 0; neighbors <= 8; neighbors++ {
		wantAlive := neighbors == 2 || neighbors == 3
		if got := NextState(true, neighbors); got != wantAlive {
			t.Fatalf("alive cell with %d neighbors: got %v, want %v", neighbors, got, wantAlive)
		}

		wantBorn := neighbors == 3
		if got := NextState(false, neighbors); got != wantBorn {
			t.Fatalf("dead cell with %d neighbors: got %v, want %v", neighbors, got, wantBorn)
		}
	}
}

func TestNextStateDeterministic(t *testing.T) {
	for _, alive := range []bool{true, false} {
		for neighbors := 0; neighbors <= 8; neighbors++ {
			first := NextState(alive, neighbors)
			if second := NextState(alive, neighbors); first != second {
				t.Fatalf("NextState(%v, %d) changed between calls: %v then %v", alive, neighbors, first, second)
			}
		}
	}
}
