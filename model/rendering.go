package model

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearScreen = "\033[H\033[2J"
	cursorHome  = "\033[H"

	// move to the start of a 1-based line and clear to the end of the screen
	cursorLineClear = "\033[%d;1H\033[J"
)

var (
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7FDBFF"))
	pausedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF851B"))
	helpStyle   = lipgloss.NewStyle().Faint(true)
)

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	out  io.Writer
	rows int
}

// NewTerminalRenderer renders to out, or stdout when out is nil
func NewTerminalRenderer(out io.Writer) *TerminalRenderer {
	if out == nil {
		out = os.Stdout
	}
	return &TerminalRenderer{out: out}
}

// Display renders the grid to the terminal from the top-left corner
func (r *TerminalRenderer) Display(v View) {
	r.rows = v.Height()
	w := bufio.NewWriter(r.out)
	w.WriteString(cursorHome)
	for y := range v.Height() {
		for x := range v.Width() {
			if v.Alive(x, y) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	fmt.Fprint(r.out, clearScreen)
}

// Status replaces everything below the last displayed grid with the status
// line; paused selects the highlighted style and help is printed faint
// underneath when non-empty
func (r *TerminalRenderer) Status(line string, paused bool, help string) {
	fmt.Fprintf(r.out, cursorLineClear, r.rows+1)
	style := statusStyle
	if paused {
		style = pausedStyle
	}
	fmt.Fprintln(r.out, style.Render(line))
	if help != "" {
		fmt.Fprintln(r.out, helpStyle.Render(help))
	}
}
