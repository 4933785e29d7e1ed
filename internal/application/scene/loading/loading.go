// Package loading provides the loading screen scene shown at startup.
package loading

import (
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/apexsim/apexsim/internal/application/scene"
	"github.com/apexsim/apexsim/internal/application/state"
)

var (
	colorBG     = color.NRGBA{12, 14, 24, 255}
	colorBarBG  = color.NRGBA{40, 44, 64, 255}
	colorBarFG  = color.NRGBA{120, 160, 255, 255}
	colorTitle  = color.NRGBA{230, 232, 240, 255}
	colorNotice = color.NRGBA{140, 146, 170, 255}
)

// Scene is the loading screen. It takes no input and never transitions on
// its own; the startup flow controller swaps it out when the configured
// delay elapses. The progress bar is cosmetic and tracks that delay.
type Scene struct {
	logger  *log.Logger
	screenW int
	screenH int
	total   float64
	elapsed float64
}

// New creates a loading scene sized for the given screen. total is the
// configured loading duration in seconds, used only to pace the bar.
func New(screenW, screenH int, total float64, logger *log.Logger) *Scene {
	return &Scene{
		logger:  logger,
		screenW: screenW,
		screenH: screenH,
		total:   total,
	}
}

// Update advances the cosmetic progress. The scene never requests a
// transition itself.
func (s *Scene) Update(dt float64) (scene.Scene, error) {
	s.elapsed += dt
	return nil, nil
}

// Progress returns the fraction of the configured delay that has elapsed,
// clamped to [0, 1].
func (s *Scene) Progress() float64 {
	if s.total <= 0 {
		return 1
	}
	return math.Min(1, s.elapsed/s.total)
}

// Draw renders the title and the progress bar.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	title := "A P E X S I M"
	tb := text.BoundString(basicfont.Face7x13, title)
	tx := (s.screenW - tb.Dx()) / 2
	ty := s.screenH/2 - 40
	text.Draw(screen, title, basicfont.Face7x13, tx, ty, colorTitle)

	barW := float64(s.screenW) * 0.4
	barH := 8.0
	barX := (float64(s.screenW) - barW) / 2
	barY := float64(s.screenH) / 2

	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barW), float32(barH), colorBarBG, true)
	vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barW*s.Progress()), float32(barH), colorBarFG, true)

	notice := "LOADING"
	nb := text.BoundString(basicfont.Face7x13, notice)
	text.Draw(screen, notice, basicfont.Face7x13, (s.screenW-nb.Dx())/2, int(barY)+28, colorNotice)
}

// OnEnter logs the scene activation.
func (s *Scene) OnEnter() {
	if s.logger != nil {
		s.logger.Debug("loading screen up", "state", state.StateLoadingScreen, "duration", s.total)
	}
}

// OnExit logs the scene teardown.
func (s *Scene) OnExit() {
	if s.logger != nil {
		s.logger.Debug("loading screen dismissed", "elapsed", s.elapsed)
	}
}
