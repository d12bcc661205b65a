package sim

import (
	"fmt"
	"math/rand/v2"

	"github.com/plus3/trix/bitboard"
)

// Mover decides the horizontal nudge applied on each tick.
type Mover interface {
	Next() bitboard.Direction
}

// RandomMover nudges left or right with equal probability every tick.
type RandomMover struct {
	rng *rand.Rand
}

func NewRandomMover(seed uint64) *RandomMover {
	return &RandomMover{rng: rand.New(rand.NewPCG(seed, ^seed))}
}

func (m *RandomMover) Next() bitboard.Direction {
	if m.rng.IntN(2) == 0 {
		return bitboard.Left
	}
	return bitboard.Right
}

// StillMover never nudges.
type StillMover struct{}

func (StillMover) Next() bitboard.Direction { return bitboard.None }

// FixedMover always nudges the same way.
type FixedMover bitboard.Direction

func (m FixedMover) Next() bitboard.Direction { return bitboard.Direction(m) }

// MoverByName builds the mover named by a configuration value.
func MoverByName(name string, seed uint64) (Mover, error) {
	switch name {
	case "", "random":
		return NewRandomMover(seed), nil
	case "still":
		return StillMover{}, nil
	case "left":
		return FixedMover(bitboard.Left), nil
	case "right":
		return FixedMover(bitboard.Right), nil
	default:
		return nil, fmt.Errorf("unknown mover %q", name)
	}
}
