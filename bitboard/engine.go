package bitboard

// Engine owns the single falling piece of a grid. It tests collisions
// against the grid, moves the piece and freezes it once it lands.
//
// An Engine is not safe for concurrent use; ticks must be serialized by the
// caller.
type Engine struct {
	grid     *Grid
	selector Selector

	piece    Piece
	kind     PieceType
	landings int
}

// NewEngine creates an engine on grid and spawns its first piece.
func NewEngine(grid *Grid, selector Selector) *Engine {
	e := &Engine{grid: grid, selector: selector}
	e.Spawn()
	return e
}

// Spawn replaces the active piece with a fresh one at offset 0. A spawn into
// a filled top row is not an error; the piece freezes on the next tick.
func (e *Engine) Spawn() {
	t := e.selector.ChooseType()
	e.kind = t
	e.piece = Piece{
		Shape:  e.selector.ChooseRotation(t),
		Offset: 0,
		Color:  t.Color,
	}
}

// Place installs p as the active piece, keeping the current piece type.
func (e *Engine) Place(p Piece) error {
	if _, err := NewPiece(p.Shape, p.Offset, p.Color); err != nil {
		return err
	}
	e.piece = p
	return nil
}

// Piece returns the active piece.
func (e *Engine) Piece() Piece {
	return e.piece
}

// Type returns the type the active piece was spawned from.
func (e *Engine) Type() PieceType {
	return e.kind
}

func (e *Engine) Grid() *Grid {
	return e.grid
}

// Landings returns how many pieces have been frozen into the grid.
func (e *Engine) Landings() int {
	return e.landings
}

// probe concatenates the masks of the four grid rows starting at offset,
// top row in the most significant bits, matching the Shape layout.
func (e *Engine) probe(offset int) Shape {
	return ShapeFromRows(
		e.grid.RowMask(offset),
		e.grid.RowMask(offset+1),
		e.grid.RowMask(offset+2),
		e.grid.RowMask(offset+3),
	)
}

// Collides reports whether candidate overlaps an occupied cell. Without a
// candidate it tests the active piece one row further down, which answers
// "can the piece keep falling".
func (e *Engine) Collides(candidate ...Piece) bool {
	p := e.piece.Down()
	if len(candidate) > 0 {
		p = candidate[0]
	}
	return e.probe(p.Offset)&p.Shape != 0
}

// Render paints the active piece onto the grid. With freeze set the cells
// are frozen in place; otherwise they are painted transiently and the piece
// then drops one row.
func (e *Engine) Render(freeze bool) {
	if freeze {
		e.grid.Freeze(e.piece)
		e.landings++
		return
	}
	e.grid.paint(e.piece, false)
	e.piece.Offset++
}

// ShiftHorizontal nudges the piece one column in dir. The nudge is dropped
// when it would wrap past a wall or overlap a frozen cell at the current
// offset. It reports whether the piece moved.
func (e *Engine) ShiftHorizontal(dir Direction) bool {
	candidate, ok := e.piece.Shifted(dir)
	if !ok || e.Collides(candidate) {
		return false
	}
	e.piece = candidate
	return true
}

// Settle freezes the piece and spawns a replacement when it cannot fall any
// further. It reports whether a landing happened.
func (e *Engine) Settle() bool {
	if !e.Collides() {
		return false
	}
	e.Render(true)
	e.Spawn()
	return true
}

// Tick advances the simulation one step: compact the grid, drop and paint
// the piece, apply the nudge, then land the piece if it is blocked below.
func (e *Engine) Tick(dir Direction) bool {
	e.grid.Compact()
	e.Render(false)
	e.ShiftHorizontal(dir)
	return e.Settle()
}

// RenderState is a read-only snapshot for renderers.
type RenderState struct {
	Cells [Rows][Cols]Cell
	Masks [Rows]uint16
	Piece Piece
	Type  string
}

// RenderState snapshots the grid and the active piece.
func (e *Engine) RenderState() RenderState {
	var s RenderState
	for r := range Rows {
		row := e.grid.rows[r]
		s.Cells[r] = row.Cells
		s.Masks[r] = row.Mask
	}
	s.Piece = e.piece
	s.Type = e.kind.Name
	return s
}
