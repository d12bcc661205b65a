// Package audio plays a short tone whenever a piece lands.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/plus3/trix/bitboard"
	"github.com/plus3/trix/sim"
)

const (
	sampleRate   = beep.SampleRate(44100)
	toneDuration = 50 * time.Millisecond

	baseFrequency = 220.0
	topFrequency  = 880.0
)

// Player mixes landing tones into the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker. Calling it twice is a no-op.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// Land queues the tone for a landing. It can be passed to Simulation.OnLand.
func (p *Player) Land(l sim.Landing) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	tone, err := Tone(Frequency(l.Piece.Offset))
	if err != nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(tone)
	speaker.Unlock()
}

// Frequency maps a landing offset to a pitch: the higher the stack, the
// higher the tone.
func Frequency(offset int) float64 {
	offset = max(0, min(offset, bitboard.FloorRow))
	height := float64(bitboard.FloorRow-offset) / float64(bitboard.FloorRow)
	return baseFrequency + height*(topFrequency-baseFrequency)
}

// Tone returns a finite sine burst at freq.
func Tone(freq float64) (beep.Streamer, error) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return nil, err
	}
	return beep.Take(sampleRate.N(toneDuration), sine), nil
}
