package bitboard_test

import (
	"image/color"

	"github.com/plus3/trix/bitboard"
)

var crimson = color.RGBA{R: 0xC0, G: 0x10, B: 0x20, A: 0xFF}

// fixedSelector always returns the same type and rotation.
type fixedSelector struct {
	typ bitboard.PieceType
	rot int
}

func (s fixedSelector) ChooseType() bitboard.PieceType { return s.typ }

func (s fixedSelector) ChooseRotation(t bitboard.PieceType) bitboard.Shape {
	return t.Rotations[s.rot]
}

func newEngine(shape bitboard.Shape) *bitboard.Engine {
	typ := bitboard.PieceType{
		Name:      "test",
		Color:     crimson,
		Rotations: [4]bitboard.Shape{shape, shape, shape, shape},
	}
	return bitboard.NewEngine(bitboard.NewGrid(), fixedSelector{typ: typ})
}
