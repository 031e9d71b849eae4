//go:build ebiten

package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HUD draws a one-line status readout over the simulation view.
type HUD struct {
	visible bool
}

// NewHUD constructs a HUD, visible by default.
func NewHUD() *HUD { return &HUD{visible: true} }

// Toggle flips the HUD's visibility.
func (h *HUD) Toggle() {
	if h == nil {
		return
	}
	h.visible = !h.visible
}

// Draw paints the status line in the top-left corner of the screen.
func (h *HUD) Draw(screen *ebiten.Image, st Status) {
	if h == nil || !h.visible {
		return
	}
	state := "running"
	if st.Paused {
		state = "paused"
	}
	line := fmt.Sprintf("gen %d | pop %d | %d tps | %s", st.Generation, st.Population, st.TPS, state)
	ebitenutil.DebugPrintAt(screen, line, 4, 4)
}
