package model

// View is a read-only window onto a Grid for presenters
type View struct {
	g *Grid
}

// NewView wraps g
func NewView(g *Grid) View {
	return View{g: g}
}

// Width returns the number of columns
func (v View) Width() int { return v.g.width }

// Height returns the number of rows
func (v View) Height() int { return v.g.height }

// AliveCount returns the number of live cells
func (v View) AliveCount() int { return v.g.alive }

// Alive reports the state of (col, row); out-of-range positions read as dead
func (v View) Alive(col, row int) bool {
	if !v.g.InBounds(col, row) {
		return false
	}
	return v.g.cells[row][col]
}
