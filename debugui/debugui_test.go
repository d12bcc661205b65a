package debugui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskString(t *testing.T) {
	assert.Equal(t, "#..............#", MaskString(0x8001))
	assert.Equal(t, "................", MaskString(0))
	assert.Equal(t, "################", MaskString(0xFFFF))
}

func TestPerformanceStatsHistory(t *testing.T) {
	ps := NewPerformanceStats(4)
	ps.Record(0.010)
	ps.Record(0.020)
	ps.Record(0.030)
	ps.Record(0.040)
	assert.InDelta(t, 25.0, ps.AvgFrameTime(), 0.001)

	ps.Record(0.050)
	assert.Equal(t, 1, ps.frameIndex)
	assert.InDelta(t, 35.0, ps.AvgFrameTime(), 0.001)
}
