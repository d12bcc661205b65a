package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/trix/bitboard"
	"github.com/plus3/trix/config"
	"github.com/plus3/trix/sim"
)

func main() {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the test should run for.")
	configPath := flag.String("config", "", "Optional YAML config file.")
	simulations := flag.Int("simulations", 1, "Number of independent simulations ticked side by side.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[trix-stress] %v", err)
		}
		cfg = *loaded
	}
	if *simulations < 1 {
		log.Fatalf("[trix-stress] -simulations must be at least 1, got %d", *simulations)
	}

	log.Println("[trix-stress] Starting stress test...")

	seed := cfg.ResolveSeed(time.Now())
	sims := make([]*sim.Simulation, *simulations)
	for i := range sims {
		mover, err := sim.MoverByName(cfg.Mover, seed+uint64(i)+1)
		if err != nil {
			log.Fatalf("[trix-stress] %v", err)
		}
		sims[i] = sim.NewSimulation(sim.Options{
			Selector: bitboard.NewRandomSelector(seed+uint64(i), nil),
			Mover:    mover,
			Interval: cfg.TickInterval,
		})
	}

	report := &Report{
		Duration:       *duration,
		Simulations:    *simulations,
		Seed:           seed,
		Mover:          cfg.Mover,
		GCPauseMetrics: *gcPauseMetrics,
		TickTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	log.Printf("[trix-stress] Running %d simulation(s) for %s...\n", *simulations, *duration)
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	startTime := time.Now()
	var totalTicks int64

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
			tickStart := time.Now()
			for _, s := range sims {
				s.Tick()
			}
			report.TickTime.Samples = append(report.TickTime.Samples, time.Since(tickStart))
			totalTicks++
		}
	}

	report.TotalTime = time.Since(startTime)
	report.TotalTicks = totalTicks
	report.TickTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)
	report.Collect(sims)

	log.Println("[trix-stress] Simulation finished.")

	fmt.Println("\n\n--- Stress Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("[trix-stress] Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")
}
