package sim_test

import (
	"context"
	"testing"
	"time"

	"github.com/plus3/trix/bitboard"
	"github.com/plus3/trix/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordSystem struct {
	name  string
	log   *[]string
	ticks []int64
	dts   []float64
}

func (s *recordSystem) Execute(frame *sim.Frame) {
	*s.log = append(*s.log, s.name)
	s.ticks = append(s.ticks, frame.Tick)
	s.dts = append(s.dts, frame.DeltaTime)
}

type deferSystem struct {
	log *[]string
}

func (s *deferSystem) Execute(frame *sim.Frame) {
	frame.Commands.Defer(func() {
		*s.log = append(*s.log, "deferred")
	})
}

func newTestEngine() *bitboard.Engine {
	return bitboard.NewEngine(bitboard.NewGrid(), bitboard.NewRandomSelector(3, nil))
}

func TestScheduler(t *testing.T) {
	t.Run("system execution order", func(t *testing.T) {
		var log []string
		scheduler := sim.NewScheduler(newTestEngine())
		first := &recordSystem{name: "first", log: &log}
		second := &recordSystem{name: "second", log: &log}
		scheduler.Register(first)
		scheduler.Register(&deferSystem{log: &log})
		scheduler.Register(second)

		scheduler.Once(0.5)
		scheduler.Once(0.25)

		assert.Equal(t, []string{"first", "second", "deferred", "first", "second", "deferred"}, log)
		assert.Equal(t, []int64{1, 2}, first.ticks)
		assert.Equal(t, []float64{0.5, 0.25}, second.dts)
		assert.Equal(t, int64(2), scheduler.Ticks())
	})

	t.Run("stats", func(t *testing.T) {
		var log []string
		scheduler := sim.NewScheduler(newTestEngine())
		scheduler.Register(&recordSystem{name: "a", log: &log})
		scheduler.Register(&deferSystem{log: &log})

		stats := scheduler.GetStats()
		assert.Equal(t, 2, stats.SystemCount)
		assert.Zero(t, stats.Systems[0].MinDuration)

		for range 5 {
			scheduler.Once(0.1)
		}

		stats = scheduler.GetStats()
		assert.Equal(t, int64(5), stats.Ticks)
		require.Len(t, stats.Systems, 2)
		assert.Equal(t, "recordSystem", stats.Systems[0].Name)
		assert.Equal(t, "deferSystem", stats.Systems[1].Name)
		for _, sys := range stats.Systems {
			assert.Equal(t, int64(5), sys.ExecutionCount)
			assert.LessOrEqual(t, sys.MinDuration, sys.AvgDuration)
			assert.LessOrEqual(t, sys.AvgDuration, sys.MaxDuration)
			assert.GreaterOrEqual(t, sys.TotalDuration, sys.MaxDuration)
		}
	})

	t.Run("context cancellation in run", func(t *testing.T) {
		var log []string
		scheduler := sim.NewScheduler(newTestEngine())
		scheduler.Register(&recordSystem{name: "a", log: &log})

		ctx, cancel := context.WithCancel(context.Background())

		done := make(chan bool)
		go func() {
			scheduler.Run(ctx, time.Millisecond)
			done <- true
		}()

		time.Sleep(10 * time.Millisecond)
		cancel()

		select {
		case <-done:
		case <-time.After(100 * time.Millisecond):
			t.Fatal("scheduler did not stop after context cancellation")
		}

		assert.NotZero(t, scheduler.Ticks())
		assert.Len(t, log, int(scheduler.Ticks()))
	})
}

func TestCommands(t *testing.T) {
	var c sim.Commands
	var order []int

	c.Defer(func() { order = append(order, 1) })
	c.Defer(func() {
		order = append(order, 2)
		c.Defer(func() { order = append(order, 3) })
	})
	assert.Equal(t, 2, c.Len())

	c.Flush()
	assert.Equal(t, []int{1, 2, 3}, order)
	assert.Zero(t, c.Len())

	c.Flush()
	assert.Equal(t, []int{1, 2, 3}, order)
}

func TestGate(t *testing.T) {
	gate := sim.Gate{Interval: 100 * time.Millisecond}
	start := time.Unix(1000, 0)

	assert.True(t, gate.Ready(start))
	assert.False(t, gate.Ready(start.Add(16*time.Millisecond)))
	assert.False(t, gate.Ready(start.Add(99*time.Millisecond)))
	assert.True(t, gate.Ready(start.Add(100*time.Millisecond)))
	assert.False(t, gate.Ready(start.Add(150*time.Millisecond)))
	assert.True(t, gate.Ready(start.Add(216*time.Millisecond)))
}
