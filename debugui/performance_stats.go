package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/trix/bitboard"
	"github.com/plus3/trix/sim"
)

// PerformanceStats shows frame times, per-phase scheduler timings and the
// spawn tally.
type PerformanceStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
	timer         *FrameTimer
}

func NewPerformanceStats(historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		historyFrames: historyFrames,
		frameHistory:  make([]float32, historyFrames),
		frameIndex:    0,
		timer:         NewFrameTimer(),
	}
}

// Record stores one frame time in the history ring.
func (ps *PerformanceStats) Record(deltaTime float32) {
	ps.frameHistory[ps.frameIndex] = deltaTime * 1000.0
	ps.frameIndex = (ps.frameIndex + 1) % ps.historyFrames
}

// AvgFrameTime returns the mean of the history in milliseconds.
func (ps *PerformanceStats) AvgFrameTime() float32 {
	var avg float32
	for _, ft := range ps.frameHistory {
		avg += ft
	}
	return avg / float32(ps.historyFrames)
}

func (ps *PerformanceStats) Render(s *sim.Simulation) {
	ps.Record(ps.timer.GetDeltaTime())

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	stats := s.Stats()
	moved, refused := s.Nudges()

	imgui.Text(fmt.Sprintf("Ticks: %d", stats.Ticks))
	imgui.Text(fmt.Sprintf("Landings: %d", s.Tally().Total()))
	imgui.Text(fmt.Sprintf("Nudges: %d moved, %d refused", moved, refused))

	avgFrameTime := ps.AvgFrameTime()
	imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avgFrameTime, 1000.0/avgFrameTime))

	imgui.Separator()
	imgui.Text("Frame Time Graph (ms)")
	imgui.PlotLinesFloatPtr("##frametime", &ps.frameHistory[0], int32(len(ps.frameHistory)))

	if imgui.TreeNodeStr("Phases") {
		const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
		if imgui.BeginTableV("PhaseTable", 4, tableFlags, imgui.NewVec2(0, 0), 0) {
			imgui.TableSetupColumn("System")
			imgui.TableSetupColumn("Avg")
			imgui.TableSetupColumn("Max")
			imgui.TableSetupColumn("Last")
			imgui.TableHeadersRow()

			for _, sys := range stats.Systems {
				imgui.TableNextRow()
				imgui.TableNextColumn()
				imgui.Text(sys.Name)
				imgui.TableNextColumn()
				imgui.Text(sys.AvgDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.MaxDuration.String())
				imgui.TableNextColumn()
				imgui.Text(sys.LastDuration.String())
			}

			imgui.EndTable()
		}
		imgui.TreePop()
	}

	if imgui.TreeNodeStr("Spawns") {
		for _, typ := range bitboard.DefaultPieceTypes {
			imgui.BulletText(fmt.Sprintf("%s: %d", typ.Name, s.Tally().SpawnsOf(typ)))
		}
		imgui.TreePop()
	}

	imgui.End()
}

type FrameTimer struct {
	lastFrameTime time.Time
}

func NewFrameTimer() *FrameTimer {
	return &FrameTimer{
		lastFrameTime: time.Now(),
	}
}

func (ft *FrameTimer) GetDeltaTime() float32 {
	now := time.Now()
	delta := float32(now.Sub(ft.lastFrameTime).Seconds())
	ft.lastFrameTime = now
	return delta
}
