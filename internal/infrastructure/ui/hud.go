package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// HUD is the minimal on-screen overlay shared by the menu scenes: build
// version plus the current tick rate. A nil HUD draws nothing.
type HUD struct {
	Version string
}

// Draw renders the overlay in the bottom-left corner.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	line := fmt.Sprintf("ApexSim %s  TPS %.0f", h.Version, ebiten.ActualTPS())
	ebitenutil.DebugPrintAt(screen, line, 8, screen.Bounds().Dy()-20)
}
