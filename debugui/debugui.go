// Package debugui provides Dear ImGui windows that inspect a running
// simulation: scheduler timings, the tally and the raw row masks.
package debugui

import (
	"github.com/hajimehoshi/ebiten/v2"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/trix/sim"
)

// ImguiBackend wraps the Ebiten-specific Dear ImGui backend implementation.
// It satisfies window.Overlay.
type ImguiBackend struct {
	*ebitenbackend.EbitenBackend
}

// NewImguiBackend creates the backend and its window.
func NewImguiBackend(title string, width, height int) *ImguiBackend {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")
	return &ImguiBackend{EbitenBackend: backend}
}

func (b *ImguiBackend) BeginFrame() {
	b.EbitenBackend.BeginFrame()
}

func (b *ImguiBackend) EndFrame() {
	b.EbitenBackend.EndFrame()
}

func (b *ImguiBackend) Draw(screen *ebiten.Image) {
	b.EbitenBackend.Draw(screen)
}

// Resize forwards the outside window size to ImGui.
func (b *ImguiBackend) Resize(width, height int) {
	b.EbitenBackend.Layout(width, height)
}

// Panel renders every debug window for one simulation.
type Panel struct {
	Simulation *sim.Simulation

	perf  *PerformanceStats
	board *BoardInspector
}

func NewPanel(s *sim.Simulation) *Panel {
	return &Panel{
		Simulation: s,
		perf:       NewPerformanceStats(120),
		board:      &BoardInspector{},
	}
}

// Render draws the windows. Call it between BeginFrame and EndFrame.
func (p *Panel) Render() {
	p.perf.Render(p.Simulation)
	p.board.Render(p.Simulation)
}
