// Package session provides the race session placeholder scene entered
// from the main menu. The actual simulation is hosted elsewhere; this
// scene only reserves the slot in the flow.
package session

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/apexsim/apexsim/internal/application/scene"
	"github.com/apexsim/apexsim/internal/application/state"
)

var (
	colorBG   = color.NRGBA{8, 10, 16, 255}
	colorText = color.NRGBA{140, 146, 170, 255}
)

// Scene is the placeholder race session. Escape returns to the menu.
type Scene struct {
	logger  *log.Logger
	screenW int
	screenH int

	newMenu    func() scene.Scene
	escPressed func() bool
}

// New creates the session scene. newMenu produces the menu scene to
// return to on Escape; nil leaves the session as a dead end.
func New(screenW, screenH int, newMenu func() scene.Scene, logger *log.Logger) *Scene {
	return &Scene{
		logger:  logger,
		screenW: screenW,
		screenH: screenH,
		newMenu: newMenu,
		escPressed: func() bool {
			return inpututil.IsKeyJustPressed(ebiten.KeyEscape)
		},
	}
}

// Update returns to the menu when Escape is pressed.
func (s *Scene) Update(dt float64) (scene.Scene, error) {
	if s.escPressed() && s.newMenu != nil {
		return s.newMenu(), nil
	}
	return nil, nil
}

// Draw renders the placeholder.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	msg := "RACE SESSION - press Esc for the menu"
	tb := text.BoundString(basicfont.Face7x13, msg)
	text.Draw(screen, msg, basicfont.Face7x13, (s.screenW-tb.Dx())/2, s.screenH/2, colorText)
}

// OnEnter logs session start.
func (s *Scene) OnEnter() {
	if s.logger != nil {
		s.logger.Info("race session entered", "state", state.StateSession)
	}
}

// OnExit logs session end.
func (s *Scene) OnExit() {
	if s.logger != nil {
		s.logger.Debug("race session left")
	}
}

// SetEscape overrides the Escape key source.
// Useful for testing.
func (s *Scene) SetEscape(fn func() bool) {
	s.escPressed = fn
}
