package bitboard_test

import (
	"testing"

	"github.com/plus3/trix/bitboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGrid(t *testing.T) {
	g := bitboard.NewGrid()

	for r := 0; r < bitboard.FloorRow; r++ {
		assert.Equal(t, uint16(0), g.RowMask(r), "row %d", r)
		for c := 0; c < bitboard.Cols; c++ {
			cell := g.Cell(r, c)
			assert.False(t, cell.Frozen)
			assert.Equal(t, bitboard.EmptyColor, cell.Color)
		}
	}

	assert.Equal(t, bitboard.FullMask, g.RowMask(bitboard.FloorRow))
	for c := 0; c < bitboard.Cols; c++ {
		cell := g.Cell(bitboard.FloorRow, c)
		assert.True(t, cell.Frozen)
		assert.Equal(t, bitboard.FloorColor, cell.Color)
	}
	assert.Equal(t, 0, g.FrozenCount())
}

func TestRowMaskBeyondBottom(t *testing.T) {
	g := bitboard.NewGrid()
	for r := bitboard.Rows; r < bitboard.Rows+8; r++ {
		assert.Equal(t, uint16(0xFFFF), g.RowMask(r), "row %d", r)
	}
}

func TestFreeze(t *testing.T) {
	g := bitboard.NewGrid()
	p, err := bitboard.NewPiece(bitboard.ShapeFromRows(0, 0x0003, 0, 0x8000), 10, crimson)
	require.NoError(t, err)

	g.Freeze(p)

	assert.Equal(t, uint16(0x0003), g.RowMask(11))
	assert.Equal(t, uint16(0x8000), g.RowMask(13))
	assert.Equal(t, uint16(0), g.RowMask(10))
	assert.Equal(t, uint16(0), g.RowMask(12))

	assert.Equal(t, bitboard.Cell{Color: crimson, Frozen: true}, g.Cell(11, 0))
	assert.Equal(t, bitboard.Cell{Color: crimson, Frozen: true}, g.Cell(11, 1))
	assert.Equal(t, bitboard.Cell{Color: crimson, Frozen: true}, g.Cell(13, 15))
	assert.False(t, g.Cell(11, 2).Frozen)
	assert.Equal(t, 3, g.FrozenCount())
}

func TestFreezeIdempotent(t *testing.T) {
	p, err := bitboard.NewPiece(bitboard.DefaultPieceTypes[1].Rotations[2], 20, crimson)
	require.NoError(t, err)

	once := bitboard.NewGrid()
	once.Freeze(p)

	twice := bitboard.NewGrid()
	twice.Freeze(p)
	twice.Freeze(p)

	for r := range bitboard.Rows {
		assert.Equal(t, once.Row(r), twice.Row(r), "row %d", r)
	}
}

func TestFreezeSkipsRowsOutsideGrid(t *testing.T) {
	g := bitboard.NewGrid()
	p, err := bitboard.NewPiece(bitboard.ShapeFromRows(0x0010, 0x0010, 0x0010, 0x0010), 30, crimson)
	require.NoError(t, err)

	g.Freeze(p)

	assert.Equal(t, uint16(0x0010), g.RowMask(30))
	assert.Equal(t, bitboard.FullMask, g.RowMask(bitboard.FloorRow))
	assert.Equal(t, crimson, g.Cell(bitboard.FloorRow, 4).Color)
}

func TestCompact(t *testing.T) {
	g := bitboard.NewGrid()
	frozen, err := bitboard.NewPiece(bitboard.ShapeFromRows(0x0001, 0, 0, 0), 5, crimson)
	require.NoError(t, err)
	g.Freeze(frozen)

	t.Run("mask matches frozen cells", func(t *testing.T) {
		g.Compact()
		for r := 0; r < bitboard.FloorRow; r++ {
			var want uint16
			for c := 0; c < bitboard.Cols; c++ {
				if g.Cell(r, c).Frozen {
					want |= 1 << c
				}
			}
			assert.Equal(t, want, g.RowMask(r), "row %d", r)
		}
	})

	t.Run("clears transient paint", func(t *testing.T) {
		e := bitboard.NewEngine(g, bitboard.NewSequenceSelector(bitboard.Pick{Type: bitboard.DefaultPieceTypes[4]}))
		e.Render(false)
		assert.Equal(t, bitboard.DefaultPieceTypes[4].Color, g.Cell(0, 7).Color)
		assert.False(t, g.Cell(0, 7).Frozen)
		assert.Equal(t, uint16(0), g.RowMask(0), "transient paint must not reach the mask")

		g.Compact()
		assert.Equal(t, bitboard.EmptyColor, g.Cell(0, 7).Color)
		assert.Equal(t, bitboard.Cell{Color: crimson, Frozen: true}, g.Cell(5, 0))
	})

	t.Run("floor untouched", func(t *testing.T) {
		g.Compact()
		assert.Equal(t, bitboard.FullMask, g.RowMask(bitboard.FloorRow))
		assert.Equal(t, bitboard.FloorColor, g.Cell(bitboard.FloorRow, 0).Color)
	})
}
