package sim

import "github.com/plus3/trix/bitboard"

// Frame is handed to every system during a tick.
type Frame struct {
	Tick      int64
	DeltaTime float64
	Engine    *bitboard.Engine
	Commands  *Commands
}

func newFrame(tick int64, dt float64, engine *bitboard.Engine, commands *Commands) *Frame {
	return &Frame{
		Tick:      tick,
		DeltaTime: dt,
		Engine:    engine,
		Commands:  commands,
	}
}

// Commands buffers work that must run after every system of the tick has
// finished, such as notifying listeners about a landing.
type Commands struct {
	defers []func()
}

// Defer queues fn to run when the tick completes.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len returns the number of queued functions.
func (c *Commands) Len() int {
	return len(c.defers)
}

// Flush runs queued functions in order and resets the buffer.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	clear(c.defers)
	c.defers = c.defers[:0]
}
