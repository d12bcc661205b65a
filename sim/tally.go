package sim

import (
	"github.com/kamstrup/intmap"
	"github.com/plus3/trix/bitboard"
)

// Tally counts spawned templates and the grid rows pieces land on.
type Tally struct {
	spawns   *intmap.Map[bitboard.Shape, int]
	landings *intmap.Map[int, int]
	total    int
}

func NewTally() *Tally {
	return &Tally{
		spawns:   intmap.New[bitboard.Shape, int](32),
		landings: intmap.New[int, int](bitboard.Rows),
	}
}

// Spawn records that a piece was spawned from shape.
func (t *Tally) Spawn(shape bitboard.Shape) {
	n, _ := t.spawns.Get(shape)
	t.spawns.Put(shape, n+1)
}

// Land records a landing. A piece lands on the grid row holding its lowest
// cell.
func (t *Tally) Land(p bitboard.Piece) {
	row := p.Offset
	for slot := bitboard.ShapeRows - 1; slot >= 0; slot-- {
		if p.Shape.Row(slot) != 0 {
			row = p.Offset + slot
			break
		}
	}

	n, _ := t.landings.Get(row)
	t.landings.Put(row, n+1)
	t.total++
}

// Spawns returns how often shape was spawned.
func (t *Tally) Spawns(shape bitboard.Shape) int {
	n, _ := t.spawns.Get(shape)
	return n
}

// SpawnsOf returns how often any distinct rotation of typ was spawned.
func (t *Tally) SpawnsOf(typ bitboard.PieceType) int {
	total := 0
	for i, shape := range typ.Rotations {
		seen := false
		for _, prev := range typ.Rotations[:i] {
			if prev == shape {
				seen = true
				break
			}
		}
		if !seen {
			total += t.Spawns(shape)
		}
	}
	return total
}

// LandingsAt returns how many pieces landed with their lowest cell on row.
func (t *Tally) LandingsAt(row int) int {
	n, _ := t.landings.Get(row)
	return n
}

// Total returns the number of landings recorded.
func (t *Tally) Total() int {
	return t.total
}

// Templates returns the number of distinct templates spawned so far.
func (t *Tally) Templates() int {
	return t.spawns.Len()
}
