package bitboard

import (
	"errors"
	"image/color"
)

var ErrOffsetOutOfRange = errors.New("piece offset out of range")

const (
	// LeftWallMask covers column 0 of every shape row.
	LeftWallMask Shape = 0x0001000100010001
	// RightWallMask covers column 15 of every shape row.
	RightWallMask Shape = 0x8000800080008000
)

// Direction is a horizontal nudge applied to the falling piece.
type Direction int8

const (
	None Direction = iota
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// Piece is the falling piece: a shape, the grid row aligned with the
// shape's top row, and a display color.
type Piece struct {
	Shape  Shape
	Offset int
	Color  color.RGBA
}

// NewPiece validates and builds a piece.
func NewPiece(shape Shape, offset int, c color.RGBA) (Piece, error) {
	if shape == 0 {
		return Piece{}, ErrEmptyShape
	}
	if offset < 0 || offset >= Rows {
		return Piece{}, ErrOffsetOutOfRange
	}
	return Piece{Shape: shape, Offset: offset, Color: c}, nil
}

// Down returns the piece moved one row lower.
func (p Piece) Down() Piece {
	p.Offset++
	return p
}

// Shifted returns the piece moved one column in dir. Moving right shifts
// the bitmap left by one bit and moving left shifts it right. The move is
// refused when a cell already sits against the wall it would cross, so bits
// never wrap into a neighbouring shape row or fall off the end.
func (p Piece) Shifted(dir Direction) (Piece, bool) {
	switch dir {
	case Right:
		if p.Shape&RightWallMask != 0 {
			return p, false
		}
		p.Shape <<= 1
	case Left:
		if p.Shape&LeftWallMask != 0 {
			return p, false
		}
		p.Shape >>= 1
	default:
		return p, false
	}
	return p, true
}
