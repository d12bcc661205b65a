package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/plus3/trix/audio"
	"github.com/plus3/trix/bitboard"
	"github.com/plus3/trix/config"
	"github.com/plus3/trix/render/term"
	"github.com/plus3/trix/sim"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML config file.")
	seed := flag.Uint64("seed", 0, "Random seed; overrides the config when non-zero.")
	mover := flag.String("mover", "", "Nudge policy: random, still, left or right.")
	withAudio := flag.Bool("audio", false, "Play a tone on every landing.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[trix-term] %v", err)
		}
		cfg = *loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *mover != "" {
		cfg.Mover = *mover
	}
	cfg.Audio = cfg.Audio || *withAudio
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[trix-term] invalid flags: %v", err)
	}

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config.Config) error {
	s, err := newSimulation(cfg)
	if err != nil {
		return err
	}

	if cfg.Audio {
		player := audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			// Non-fatal, the board runs without sound
			log.Printf("[trix-term] Audio initialization failed: %v", err)
		} else {
			defer player.Close()
			s.OnLand(player.Land)
		}
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	renderer := term.New(screen)

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	ticker := time.NewTicker(s.Interval())
	defer ticker.Stop()

	draw := func() {
		if !renderer.Fits() {
			screen.Clear()
			drawText(screen, 0, 0, fmt.Sprintf("terminal too small, need %dx%d", term.Width, term.Height))
			screen.Show()
			return
		}
		moved, refused := s.Nudges()
		renderer.Draw(s.RenderState(), fmt.Sprintf("tick %d  landed %d  nudges %d/%d",
			s.Stats().Ticks, s.Tally().Total(), moved, refused))
	}
	draw()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC ||
					(ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
					return nil
				}
			case *tcell.EventResize:
				screen.Sync()
				draw()
			}

		case <-ticker.C:
			s.Tick()
			draw()
		}
	}
}

func newSimulation(cfg config.Config) (*sim.Simulation, error) {
	seed := cfg.ResolveSeed(time.Now())
	mover, err := sim.MoverByName(cfg.Mover, seed+1)
	if err != nil {
		return nil, err
	}
	log.Printf("[trix-term] seed %d, mover %s, interval %s", seed, cfg.Mover, cfg.TickInterval)

	return sim.NewSimulation(sim.Options{
		Selector: bitboard.NewRandomSelector(seed, nil),
		Mover:    mover,
		Interval: cfg.TickInterval,
	}), nil
}

func drawText(screen tcell.Screen, x, y int, text string) {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, tcell.StyleDefault)
		x++
	}
}
