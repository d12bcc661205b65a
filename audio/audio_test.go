package audio

import (
	"testing"

	"github.com/plus3/trix/bitboard"
	"github.com/plus3/trix/sim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequency(t *testing.T) {
	assert.InDelta(t, baseFrequency, Frequency(bitboard.FloorRow), 0.001)
	assert.InDelta(t, topFrequency, Frequency(0), 0.001)
	assert.InDelta(t, topFrequency, Frequency(-3), 0.001)
	assert.Greater(t, Frequency(10), Frequency(20))
}

func TestTone(t *testing.T) {
	tone, err := Tone(440)
	require.NoError(t, err)

	want := sampleRate.N(toneDuration)
	samples := make([][2]float64, 512)
	total := 0
	for {
		n, ok := tone.Stream(samples)
		total += n
		for i := 0; i < n; i++ {
			require.LessOrEqual(t, samples[i][0], 1.0)
			require.GreaterOrEqual(t, samples[i][0], -1.0)
		}
		if !ok {
			break
		}
	}
	assert.Equal(t, want, total)
	assert.NoError(t, tone.Err())
}

func TestLandWithoutSpeaker(t *testing.T) {
	p := NewPlayer()
	assert.NotPanics(t, func() {
		p.Land(sim.Landing{Piece: bitboard.Piece{Offset: 12}})
		p.Close()
	})
}
