package bitboard

import (
	"errors"
	"image/color"
	"iter"
	"strings"
)

// Shape is a 4-row by 16-column bitmap packed into 64 bits.
// Row 0 (the top of the piece) occupies bits 48-63 and row 3 occupies bits 0-15.
// Within a row, bit c is column c. The collision probe depends on this layout.
type Shape uint64

// ShapeRows is the number of grid rows a shape spans.
const ShapeRows = 4

var ErrEmptyShape = errors.New("shape has no cells")

// Row returns the 16-bit mask of shape row i (0 = top).
func (s Shape) Row(i int) uint16 {
	return uint16(s >> (uint(ShapeRows-1-i) * Cols))
}

// ShapeFromRows packs four row masks, top row first.
func ShapeFromRows(r0, r1, r2, r3 uint16) Shape {
	return Shape(uint64(r0)<<48 | uint64(r1)<<32 | uint64(r2)<<16 | uint64(r3))
}

// Cells iterates the (row, col) pairs of every set bit, top row first.
func (s Shape) Cells() iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		for row := range ShapeRows {
			mask := s.Row(row)
			for col := range Cols {
				if mask&(1<<col) == 0 {
					continue
				}
				if !yield(row, col) {
					return
				}
			}
		}
	}
}

func (s Shape) String() string {
	var b strings.Builder
	for row := range ShapeRows {
		mask := s.Row(row)
		for col := range Cols {
			if mask&(1<<col) != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		if row < ShapeRows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// PieceType is a named piece with exactly four rotation templates.
type PieceType struct {
	Name      string
	Color     color.RGBA
	Rotations [4]Shape
}

// NewPieceType validates that every rotation has at least one cell.
func NewPieceType(name string, c color.RGBA, rotations [4]Shape) (PieceType, error) {
	for _, r := range rotations {
		if r == 0 {
			return PieceType{}, ErrEmptyShape
		}
	}
	return PieceType{Name: name, Color: c, Rotations: rotations}, nil
}

func rgb(hex uint32) color.RGBA {
	return color.RGBA{R: uint8(hex >> 16), G: uint8(hex >> 8), B: uint8(hex), A: 0xFF}
}

// DefaultPieceTypes is the stock piece set. Every template sits in the middle
// columns so that a fresh piece at offset 0 never overlaps a frozen cell.
var DefaultPieceTypes = []PieceType{
	{
		Name:  "I",
		Color: rgb(0xFF8000),
		Rotations: [4]Shape{
			0x0080008000800080, 0x03C0000000000000,
			0x0080008000800080, 0x03C0000000000000,
		},
	},
	{
		Name:  "L",
		Color: rgb(0x00FF00),
		Rotations: [4]Shape{
			0x0080038000000000, 0x0180008000800000,
			0x0380020000000000, 0x0200020003000000,
		},
	},
	{
		Name:  "T",
		Color: rgb(0x0000FF),
		Rotations: [4]Shape{
			0x01C0008000000000, 0x0080018000800000,
			0x008000C000800000, 0x008001C000000000,
		},
	},
	{
		Name:  "S",
		Color: rgb(0x00FFFF),
		Rotations: [4]Shape{
			0x008000C000400000, 0x00C0018000000000,
			0x00C0018000000000, 0x008000C000400000,
		},
	},
	{
		Name:  "O",
		Color: rgb(0x0080FF),
		Rotations: [4]Shape{
			0x0180018000000000, 0x0180018000000000,
			0x0180018000000000, 0x0180018000000000,
		},
	},
}
