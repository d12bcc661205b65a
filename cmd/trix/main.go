package main

import (
	"flag"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/trix/audio"
	"github.com/plus3/trix/bitboard"
	"github.com/plus3/trix/config"
	"github.com/plus3/trix/debugui"
	"github.com/plus3/trix/render/window"
	"github.com/plus3/trix/sim"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML config file.")
	seed := flag.Uint64("seed", 0, "Random seed; overrides the config when non-zero.")
	debug := flag.Bool("debug", false, "Show the ImGui debug overlay.")
	withAudio := flag.Bool("audio", false, "Play a tone on every landing.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("[trix] %v", err)
		}
		cfg = *loaded
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	cfg.Debug = cfg.Debug || *debug
	cfg.Audio = cfg.Audio || *withAudio
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[trix] invalid flags: %v", err)
	}

	resolved := cfg.ResolveSeed(time.Now())
	mover, err := sim.MoverByName(cfg.Mover, resolved+1)
	if err != nil {
		log.Fatalf("[trix] %v", err)
	}
	log.Printf("[trix] seed %d, mover %s, interval %s", resolved, cfg.Mover, cfg.TickInterval)

	s := sim.NewSimulation(sim.Options{
		Selector: bitboard.NewRandomSelector(resolved, nil),
		Mover:    mover,
		Interval: cfg.TickInterval,
	})

	if cfg.Audio {
		player := audio.NewPlayer()
		if err := player.Initialize(); err != nil {
			log.Printf("[trix] Audio initialization failed: %v", err)
		} else {
			defer player.Close()
			s.OnLand(player.Land)
		}
	}

	game := window.NewGame(s, cfg.CellSize)
	width, height := game.Size()

	if cfg.Debug {
		game.Overlay = debugui.NewImguiBackend(cfg.Title, width*3, height)
		game.Frame = debugui.NewPanel(s).Render
	} else {
		ebiten.SetWindowSize(width, height)
		ebiten.SetWindowTitle(cfg.Title)
	}

	if err := ebiten.RunGame(game); err != nil {
		log.Fatalf("[trix] %v", err)
	}
}
