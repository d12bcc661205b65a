package debugui

import (
	"fmt"
	"strings"

	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/plus3/trix/bitboard"
	"github.com/plus3/trix/sim"
)

// BoardInspector lists every row mask next to the falling piece's probe
// window, which is the data the collision test actually reads.
type BoardInspector struct{}

func (bi *BoardInspector) Render(s *sim.Simulation) {
	if !imgui.BeginV("Board Inspector", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	state := s.RenderState()
	imgui.Text(fmt.Sprintf("Piece: %s at offset %d", state.Type, state.Piece.Offset))
	imgui.Text(fmt.Sprintf("Shape: 0x%016X", uint64(state.Piece.Shape)))
	imgui.Text(fmt.Sprintf("Frozen cells: %d", s.Grid().FrozenCount()))
	imgui.Separator()

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("MaskTable", 3, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("Row")
		imgui.TableSetupColumn("Mask")
		imgui.TableSetupColumn("Piece")
		imgui.TableHeadersRow()

		for row := range bitboard.Rows {
			imgui.TableNextRow()
			imgui.TableNextColumn()
			imgui.Text(fmt.Sprintf("%2d", row))
			imgui.TableNextColumn()
			imgui.Text(MaskString(state.Masks[row]))
			imgui.TableNextColumn()
			if slot := row - state.Piece.Offset; slot >= 0 && slot < bitboard.ShapeRows {
				imgui.Text(MaskString(state.Piece.Shape.Row(slot)))
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}

// MaskString draws a row mask with column 0 on the left.
func MaskString(mask uint16) string {
	var b strings.Builder
	for col := range bitboard.Cols {
		if mask&(1<<col) != 0 {
			b.WriteByte('#')
		} else {
			b.WriteByte('.')
		}
	}
	return b.String()
}
