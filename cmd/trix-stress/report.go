package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/trix/bitboard"
	"github.com/plus3/trix/sim"
)

type Report struct {
	// Configuration
	Duration    time.Duration
	Simulations int
	Seed        uint64
	Mover       string

	// Results
	TotalTicks     int64
	TotalTime      time.Duration
	TickTime       Stats
	Phases         []sim.SystemStats
	Spawns         []TypeCount
	Landings       int
	FrozenCells    int
	NudgesMoved    int64
	NudgesRefused  int64
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type TypeCount struct {
	Name  string
	Count int
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		if sample < s.Min {
			s.Min = sample
		}
		if sample > s.Max {
			s.Max = sample
		}
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

// Collect sums tallies and phase timings over all simulations.
func (r *Report) Collect(sims []*sim.Simulation) {
	r.Spawns = make([]TypeCount, len(bitboard.DefaultPieceTypes))
	for i, typ := range bitboard.DefaultPieceTypes {
		r.Spawns[i].Name = typ.Name
	}

	for _, s := range sims {
		for i, typ := range bitboard.DefaultPieceTypes {
			r.Spawns[i].Count += s.Tally().SpawnsOf(typ)
		}
		r.Landings += s.Tally().Total()
		r.FrozenCells += s.Grid().FrozenCount()

		moved, refused := s.Nudges()
		r.NudgesMoved += moved
		r.NudgesRefused += refused

		stats := s.Stats()
		if r.Phases == nil {
			r.Phases = make([]sim.SystemStats, len(stats.Systems))
			for i, sys := range stats.Systems {
				r.Phases[i].Name = sys.Name
				r.Phases[i].MinDuration = sys.MinDuration
			}
		}
		for i, sys := range stats.Systems {
			phase := &r.Phases[i]
			phase.ExecutionCount += sys.ExecutionCount
			phase.TotalDuration += sys.TotalDuration
			phase.MinDuration = min(phase.MinDuration, sys.MinDuration)
			phase.MaxDuration = max(phase.MaxDuration, sys.MaxDuration)
		}
	}

	for i := range r.Phases {
		if r.Phases[i].ExecutionCount > 0 {
			r.Phases[i].AvgDuration = r.Phases[i].TotalDuration / time.Duration(r.Phases[i].ExecutionCount)
		}
	}
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Trix Stress Test Report

## Test Configuration
- **Run Duration:** {{.Duration}}
- **Simulations:** {{.Simulations}}
- **Seed:** {{.Seed}}
- **Mover:** {{.Mover}}

## Performance Results
- **Total Ticks:** {{.TotalTicks}}
- **Total Test Time:** {{.TotalTime}}
- **Tick Time (all simulations):**
  - **Avg:** {{.TickTime.Avg}}
  - **Min:** {{.TickTime.Min}}
  - **Max:** {{.TickTime.Max}}

## Phases
| System | Executions | Avg | Min | Max |
|---|---|---|---|---|
{{range .Phases}}| {{.Name}} | {{.ExecutionCount}} | {{.AvgDuration}} | {{.MinDuration}} | {{.MaxDuration}} |
{{end}}
## Board
- **Landings:** {{.Landings}}
- **Frozen Cells:** {{.FrozenCells}}
- **Nudges:** {{.NudgesMoved}} moved, {{.NudgesRefused}} refused
{{range .Spawns}}- **{{.Name}} spawns:** {{.Count}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return fmt.Errorf("parse report template: %w", err)
	}

	return tmpl.Execute(w, r)
}
