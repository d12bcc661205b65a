// Package window renders a simulation in an ebiten window.
package window

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/trix/bitboard"
	"github.com/plus3/trix/sim"
)

const margin = 10

var (
	background = color.RGBA{20, 20, 24, 255}
	gridLine   = color.RGBA{40, 40, 48, 255}
)

// Overlay is drawn on top of the board, typically a debug UI.
type Overlay interface {
	BeginFrame()
	EndFrame()
	Draw(screen *ebiten.Image)
	Resize(width, height int)
}

// Game implements ebiten.Game around a simulation. Update is called at the
// display refresh rate; the gate limits ticks to the simulation interval.
type Game struct {
	Simulation *sim.Simulation
	CellSize   int
	Overlay    Overlay
	// Frame renders overlay widgets between BeginFrame and EndFrame.
	Frame func()

	gate  sim.Gate
	now   func() time.Time
	state bitboard.RenderState
}

// NewGame wraps s, drawing cells of cellSize pixels.
func NewGame(s *sim.Simulation, cellSize int) *Game {
	return &Game{
		Simulation: s,
		CellSize:   cellSize,
		gate:       sim.Gate{Interval: s.Interval()},
		now:        time.Now,
		state:      s.RenderState(),
	}
}

// Size returns the window size needed to show the whole board.
func (g *Game) Size() (int, int) {
	return bitboard.Cols*g.CellSize + 2*margin, bitboard.Rows*g.CellSize + 2*margin
}

func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) || ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	g.Step()

	if g.Overlay != nil {
		g.Overlay.BeginFrame()
		if g.Frame != nil {
			g.Frame()
		}
		g.Overlay.EndFrame()
	}
	return nil
}

// Step ticks the simulation when the gate allows it. It reports whether a
// tick happened.
func (g *Game) Step() bool {
	if !g.gate.Ready(g.now()) {
		return false
	}
	g.Simulation.Tick()
	g.state = g.Simulation.RenderState()
	return true
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	size := float32(g.CellSize)
	for row := range bitboard.Rows {
		for col := range bitboard.Cols {
			x := float32(margin + col*g.CellSize)
			y := float32(margin + row*g.CellSize)

			cell := g.state.Cells[row][col]
			vector.DrawFilledRect(screen, x, y, size, size, cell.Color, false)
			vector.StrokeRect(screen, x, y, size, size, 1, gridLine, false)
		}
	}

	if g.Overlay != nil {
		g.Overlay.Draw(screen)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if g.Overlay != nil {
		g.Overlay.Resize(outsideWidth, outsideHeight)
		return outsideWidth, outsideHeight
	}
	return g.Size()
}
