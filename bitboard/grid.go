// Package bitboard models a falling-block playing field as packed integers.
//
// The grid is 32 rows of 16-bit occupancy masks and the falling piece is a
// 64-bit bitmap covering four consecutive rows, so collision tests, placement
// and compaction are all plain bitwise operations.
package bitboard

import "image/color"

const (
	Cols     = 16
	Rows     = 32
	FloorRow = Rows - 1

	// FullMask has every column of a row set.
	FullMask uint16 = 1<<Cols - 1
)

var (
	EmptyColor = color.RGBA{A: 0xFF}
	FloorColor = rgb(0xFF0000)
)

// Cell is the display state of one grid square.
type Cell struct {
	Color  color.RGBA
	Frozen bool
}

// Row holds the occupancy mask and the per-column cells of one grid row.
// Mask only ever reflects frozen cells; a falling piece paints cells
// without touching it.
type Row struct {
	Mask  uint16
	Cells [Cols]Cell
}

// Grid is the persistent record of frozen cells. Row 0 is the top and
// FloorRow is a permanently frozen sentinel that is never cleared.
type Grid struct {
	rows [Rows]Row
}

// NewGrid returns an empty grid with only the floor sentinel occupied.
func NewGrid() *Grid {
	g := &Grid{}
	for r := range g.rows {
		for c := range g.rows[r].Cells {
			g.rows[r].Cells[c].Color = EmptyColor
		}
	}

	floor := &g.rows[FloorRow]
	floor.Mask = FullMask
	for c := range floor.Cells {
		floor.Cells[c] = Cell{Color: FloorColor, Frozen: true}
	}
	return g
}

// Compact recomputes every row mask above the floor from its frozen cells
// and clears the color of every cell that is not frozen.
func (g *Grid) Compact() {
	for r := 0; r < FloorRow; r++ {
		row := &g.rows[r]
		var mask uint16
		for c := range row.Cells {
			if row.Cells[c].Frozen {
				mask |= 1 << c
			} else {
				row.Cells[c].Color = EmptyColor
			}
		}
		row.Mask = mask
	}
}

// RowMask returns the occupancy mask of row r. Rows at or beyond the bottom
// edge report FullMask, which acts as an implicit floor below the grid.
func (g *Grid) RowMask(r int) uint16 {
	if r >= Rows {
		return FullMask
	}
	return g.rows[r].Mask
}

// Freeze marks every cell covered by the piece as frozen and paints it with
// the piece color. Shape rows that fall outside the grid are skipped.
func (g *Grid) Freeze(p Piece) {
	g.paint(p, true)
}

func (g *Grid) paint(p Piece, freeze bool) {
	for slot := range ShapeRows {
		r := p.Offset + slot
		if r < 0 || r >= Rows {
			continue
		}
		bits := p.Shape.Row(slot)
		if bits == 0 {
			continue
		}

		row := &g.rows[r]
		for c := range row.Cells {
			if bits&(1<<c) == 0 {
				continue
			}
			row.Cells[c].Color = p.Color
			if freeze {
				row.Cells[c].Frozen = true
			}
		}
		if freeze {
			row.Mask |= bits
		}
	}
}

// Row returns a copy of row r.
func (g *Grid) Row(r int) Row {
	return g.rows[r]
}

// Cell returns the cell at row r, column c.
func (g *Grid) Cell(r, c int) Cell {
	return g.rows[r].Cells[c]
}

// FrozenCount returns the number of frozen cells above the floor.
func (g *Grid) FrozenCount() int {
	n := 0
	for r := 0; r < FloorRow; r++ {
		for _, cell := range g.rows[r].Cells {
			if cell.Frozen {
				n++
			}
		}
	}
	return n
}
