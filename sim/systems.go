package sim

import "github.com/plus3/trix/bitboard"

// Landing describes a piece that was frozen into the grid.
type Landing struct {
	Tick  int64
	Type  string
	Piece bitboard.Piece
}

// CompactSystem rebuilds row masks and wipes transient paint.
type CompactSystem struct{}

func (s *CompactSystem) Execute(frame *Frame) {
	frame.Engine.Grid().Compact()
}

// FallSystem paints the falling piece and drops it one row.
type FallSystem struct{}

func (s *FallSystem) Execute(frame *Frame) {
	frame.Engine.Render(false)
}

// NudgeSystem applies the mover's horizontal nudge.
type NudgeSystem struct {
	Mover Mover

	LastDirection bitboard.Direction
	Moves         int64
	Refused       int64
}

func (s *NudgeSystem) Execute(frame *Frame) {
	s.LastDirection = s.Mover.Next()
	if s.LastDirection == bitboard.None {
		return
	}

	if frame.Engine.ShiftHorizontal(s.LastDirection) {
		s.Moves++
	} else {
		s.Refused++
	}
}

// SettleSystem freezes a blocked piece, spawns the next one and notifies
// listeners once the tick has finished.
type SettleSystem struct {
	Tally     *Tally
	Listeners []func(Landing)
}

func (s *SettleSystem) Execute(frame *Frame) {
	piece := frame.Engine.Piece()
	kind := frame.Engine.Type().Name

	if !frame.Engine.Settle() {
		return
	}

	landing := Landing{Tick: frame.Tick, Type: kind, Piece: piece}
	if s.Tally != nil {
		s.Tally.Land(piece)
		s.Tally.Spawn(frame.Engine.Piece().Shape)
	}

	for _, listener := range s.Listeners {
		frame.Commands.Defer(func() {
			listener(landing)
		})
	}
}
