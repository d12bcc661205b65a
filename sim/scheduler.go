package sim

import (
	"context"
	"reflect"
	"time"

	"github.com/plus3/trix/bitboard"
)

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount int
	Ticks       int64
	Systems     []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs systems in registration order against one engine.
// Ticks are strictly serial; Once must not be called concurrently.
type Scheduler struct {
	engine      *bitboard.Engine
	commands    *Commands
	systems     []System
	systemStats []*systemStatsInternal
	ticks       int64
}

// NewScheduler creates a scheduler driving engine.
func NewScheduler(engine *bitboard.Engine) *Scheduler {
	return &Scheduler{
		engine:   engine,
		commands: &Commands{},
		systems:  make([]System, 0),
	}
}

// Register appends a system to the tick.
func (s *Scheduler) Register(system System) {
	s.systems = append(s.systems, system)

	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systemStats = append(s.systemStats, &systemStatsInternal{
		name:        systemType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes all registered systems once with the given delta time and
// then runs deferred commands.
func (s *Scheduler) Once(dt float64) {
	s.ticks++
	frame := newFrame(s.ticks, dt, s.engine, s.commands)

	for i, system := range s.systems {
		start := time.Now()
		system.Execute(frame)
		duration := time.Since(start)

		stats := s.systemStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	s.commands.Flush()
}

// Run executes all systems at the given interval until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := time.Now()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := now.Sub(lastTime).Seconds()
			lastTime = now
			s.Once(dt)
		}
	}
}

// Ticks returns how many times Once has run.
func (s *Scheduler) Ticks() int64 {
	return s.ticks
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Ticks:       s.ticks,
		Systems:     make([]SystemStats, len(s.systemStats)),
	}

	for i, internal := range s.systemStats {
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
	}

	return stats
}

// Gate lets a render loop that runs faster than the tick cadence decide
// when the next tick is due.
type Gate struct {
	Interval time.Duration
	prev     time.Time
}

// Ready reports whether at least Interval has passed since the last time it
// returned true, and if so records now.
func (g *Gate) Ready(now time.Time) bool {
	if !g.prev.IsZero() && now.Sub(g.prev) < g.Interval {
		return false
	}
	g.prev = now
	return true
}
