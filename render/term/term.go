// Package term draws a simulation onto a tcell screen, two terminal columns
// per grid cell.
package term

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/trix/bitboard"
)

const (
	// CellWidth is the number of terminal columns used per grid cell.
	CellWidth = 2

	// Width and Height are the screen area the board needs, border included.
	Width  = bitboard.Cols*CellWidth + 2
	Height = bitboard.Rows + 3
)

var borderStyle = tcell.StyleDefault.Foreground(tcell.ColorGray)

// Renderer paints render state snapshots onto a screen.
type Renderer struct {
	screen tcell.Screen
}

func New(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Fits reports whether the screen is large enough for the board.
func (r *Renderer) Fits() bool {
	w, h := r.screen.Size()
	return w >= Width && h >= Height
}

// Draw paints the board with its top-left corner at the origin, then writes
// status on the line below it.
func (r *Renderer) Draw(state bitboard.RenderState, status string) {
	r.screen.Clear()

	for x := 1; x < Width-1; x++ {
		r.screen.SetContent(x, 0, '─', nil, borderStyle)
		r.screen.SetContent(x, bitboard.Rows+1, '─', nil, borderStyle)
	}
	r.screen.SetContent(0, 0, '┌', nil, borderStyle)
	r.screen.SetContent(Width-1, 0, '┐', nil, borderStyle)
	r.screen.SetContent(0, bitboard.Rows+1, '└', nil, borderStyle)
	r.screen.SetContent(Width-1, bitboard.Rows+1, '┘', nil, borderStyle)

	for row := range bitboard.Rows {
		y := row + 1
		r.screen.SetContent(0, y, '│', nil, borderStyle)
		r.screen.SetContent(Width-1, y, '│', nil, borderStyle)

		for col := range bitboard.Cols {
			ch, style := cellGlyph(state.Cells[row][col])
			x := 1 + col*CellWidth
			for i := range CellWidth {
				r.screen.SetContent(x+i, y, ch, nil, style)
			}
		}
	}

	x := 0
	for _, ch := range status {
		if x >= Width {
			break
		}
		r.screen.SetContent(x, bitboard.Rows+2, ch, nil, tcell.StyleDefault)
		x++
	}

	r.screen.Show()
}

func cellGlyph(cell bitboard.Cell) (rune, tcell.Style) {
	if cell.Color == bitboard.EmptyColor {
		return ' ', tcell.StyleDefault
	}
	style := tcell.StyleDefault.Foreground(Color(cell.Color))
	if !cell.Frozen {
		return '▓', style
	}
	return '█', style
}

// Color converts a cell color to a terminal color.
func Color(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
