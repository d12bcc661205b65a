// Package sim drives a bitboard engine at a fixed cadence. Each tick is
// split into systems that run in a fixed order under a Scheduler, which
// keeps per-phase timing statistics.
package sim

import (
	"context"
	"time"

	"github.com/plus3/trix/bitboard"
)

// DefaultInterval is the minimum time between two ticks.
const DefaultInterval = 100 * time.Millisecond

// Options configures a Simulation. Zero values pick the defaults: a random
// selector and mover seeded with Seed and DefaultInterval.
type Options struct {
	Selector bitboard.Selector
	Mover    Mover
	Interval time.Duration
	Seed     uint64
}

// Simulation is one independent falling-block run. It owns its grid,
// engine and scheduler; nothing is shared between simulations.
type Simulation struct {
	grid      *bitboard.Grid
	engine    *bitboard.Engine
	scheduler *Scheduler
	tally     *Tally
	nudge     *NudgeSystem
	settle    *SettleSystem
	interval  time.Duration
}

func NewSimulation(opts Options) *Simulation {
	if opts.Selector == nil {
		opts.Selector = bitboard.NewRandomSelector(opts.Seed, nil)
	}
	if opts.Mover == nil {
		opts.Mover = NewRandomMover(opts.Seed + 1)
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}

	grid := bitboard.NewGrid()
	engine := bitboard.NewEngine(grid, opts.Selector)

	tally := NewTally()
	tally.Spawn(engine.Piece().Shape)

	s := &Simulation{
		grid:      grid,
		engine:    engine,
		scheduler: NewScheduler(engine),
		tally:     tally,
		nudge:     &NudgeSystem{Mover: opts.Mover},
		settle:    &SettleSystem{Tally: tally},
		interval:  opts.Interval,
	}

	s.scheduler.Register(&CompactSystem{})
	s.scheduler.Register(&FallSystem{})
	s.scheduler.Register(s.nudge)
	s.scheduler.Register(s.settle)

	return s
}

// Tick advances the simulation by one step.
func (s *Simulation) Tick() {
	s.scheduler.Once(s.interval.Seconds())
}

// Run ticks at the configured interval until ctx is cancelled. Callers
// must not read the simulation from another goroutine while Run is active.
func (s *Simulation) Run(ctx context.Context) {
	s.scheduler.Run(ctx, s.interval)
}

// OnLand registers fn to be called after every tick in which a piece lands.
func (s *Simulation) OnLand(fn func(Landing)) {
	s.settle.Listeners = append(s.settle.Listeners, fn)
}

// RenderState snapshots the grid and falling piece for a renderer.
func (s *Simulation) RenderState() bitboard.RenderState {
	return s.engine.RenderState()
}

func (s *Simulation) Engine() *bitboard.Engine {
	return s.engine
}

func (s *Simulation) Grid() *bitboard.Grid {
	return s.grid
}

func (s *Simulation) Tally() *Tally {
	return s.tally
}

func (s *Simulation) Interval() time.Duration {
	return s.interval
}

// Stats returns the scheduler's per-phase statistics.
func (s *Simulation) Stats() *SchedulerStats {
	return s.scheduler.GetStats()
}

// Nudges returns how many nudges moved the piece and how many were refused.
func (s *Simulation) Nudges() (moved, refused int64) {
	return s.nudge.Moves, s.nudge.Refused
}
