package bitboard

import "math/rand/v2"

// Selector picks the type and rotation of each new piece.
type Selector interface {
	ChooseType() PieceType
	ChooseRotation(t PieceType) Shape
}

// RandomSelector picks uniformly among its types and their rotations.
type RandomSelector struct {
	types []PieceType
	rng   *rand.Rand
}

// NewRandomSelector seeds a selector over types. A nil or empty types slice
// selects from DefaultPieceTypes.
func NewRandomSelector(seed uint64, types []PieceType) *RandomSelector {
	if len(types) == 0 {
		types = DefaultPieceTypes
	}
	return &RandomSelector{
		types: types,
		rng:   rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
	}
}

func (s *RandomSelector) ChooseType() PieceType {
	return s.types[s.rng.IntN(len(s.types))]
}

func (s *RandomSelector) ChooseRotation(t PieceType) Shape {
	return t.Rotations[s.rng.IntN(len(t.Rotations))]
}

// Pick is one scripted selection: a piece type and the index of one of its
// rotations.
type Pick struct {
	Type     PieceType
	Rotation int
}

// SequenceSelector replays a fixed list of picks, wrapping around at the end.
type SequenceSelector struct {
	picks []Pick
	next  int
	rot   int
}

func NewSequenceSelector(picks ...Pick) *SequenceSelector {
	if len(picks) == 0 {
		panic("sequence selector needs at least one pick")
	}
	return &SequenceSelector{picks: picks}
}

func (s *SequenceSelector) ChooseType() PieceType {
	p := s.picks[s.next]
	s.rot = p.Rotation & 3
	s.next = (s.next + 1) % len(s.picks)
	return p.Type
}

func (s *SequenceSelector) ChooseRotation(t PieceType) Shape {
	return t.Rotations[s.rot]
}
