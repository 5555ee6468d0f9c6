//go:build ebiten

package gui

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/sheikhrachel/go-gol/engine"
	"github.com/sheikhrachel/go-gol/model"
)

// statusHeight is the strip under the board reserved for the status text
const statusHeight = 36

// Game adapts a simulation to the ebiten.Game interface. It is both the input
// adapter (keys and clicks become commands) and the presenter (board and
// status redraws happen only when the simulation signals a change).
type Game struct {
	sim   *engine.Simulation
	sched *engine.Scheduler
	scale int

	w, h int
	img  *ebiten.Image
	buf  []byte

	onColor  color.RGBA
	offColor color.RGBA
	status   string
}

// New constructs a Game for the provided simulation
func New(sim *engine.Simulation, scale int, sched *engine.Scheduler) *Game {
	v := sim.View()
	if scale <= 0 {
		scale = 1
	}
	return &Game{
		sim:      sim,
		sched:    sched,
		scale:    scale,
		w:        v.Width(),
		h:        v.Height(),
		img:      ebiten.NewImage(v.Width(), v.Height()),
		buf:      make([]byte, 4*v.Width()*v.Height()),
		onColor:  color.RGBA{R: 240, G: 240, B: 240, A: 255},
		offColor: color.RGBA{R: 16, G: 16, B: 20, A: 255},
	}
}

// Update collects input for this frame and runs one simulation pass
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	var cmds []engine.Command
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		cmds = append(cmds, engine.ToggleRunState{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		cmds = append(cmds, engine.StepOnce{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		cmds = append(cmds, engine.Clear{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		cmds = append(cmds, engine.Reseed{})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		col, row := mx/g.scale, my/g.scale
		if mx >= 0 && my >= 0 && col < g.w && row < g.h {
			cmds = append(cmds, engine.ToggleCell{Col: col, Row: row})
		}
	}

	tick := false
	select {
	case <-g.sched.C():
		tick = g.sched.Gate(g.sim.State())
	default:
	}

	if err := g.sim.Pass(cmds, tick, g); err != nil {
		log.Printf("command: %v", err)
	}
	return nil
}

// DrawBoard uploads the board into the cell image
func (g *Game) DrawBoard(v model.View) {
	for y := range g.h {
		for x := range g.w {
			c := g.offColor
			if v.Alive(x, y) {
				c = g.onColor
			}
			base := (y*g.w + x) * 4
			g.buf[base+0] = c.R
			g.buf[base+1] = c.G
			g.buf[base+2] = c.B
			g.buf[base+3] = c.A
		}
	}
	g.img.WritePixels(g.buf)
}

// DrawStatus refreshes the status text
func (g *Game) DrawStatus(st engine.Status) {
	help := "space pause/resume  n step  c clear  r reseed  click toggle"
	g.status = fmt.Sprintf("gen %d  alive %d  %s\n%s", st.Iteration, st.Alive, st.State, help)
}

// Draw renders the cached board and status
func (g *Game) Draw(screen *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.img, op)
	ebitenutil.DebugPrintAt(screen, g.status, 4, g.h*g.scale+2)
}

// Layout returns the logical screen size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w * g.scale, g.h*g.scale + statusHeight
}
