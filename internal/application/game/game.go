// Package game provides the main loop manager that handles Scene
// transitions and hosts the startup flow: it is the flow controller's
// Surface, InputMode, and (through its clock) Scheduler.
package game

import (
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/apexsim/apexsim/internal/application/flow"
	"github.com/apexsim/apexsim/internal/application/scene"
	"github.com/apexsim/apexsim/internal/infrastructure/ui"
)

// Game implements ebiten.Game and manages Scene transitions. Views shown
// through the flow.Surface interface are scenes; a nil current scene
// (before Start, or between Hide and Show) is valid and draws nothing.
type Game struct {
	clock   *ui.Clock
	logger  *log.Logger
	current scene.Scene
	focus   flow.View
	screenW int
	screenH int
	dt      float64

	// setCursor is swapped out in tests; the default drives the real
	// window cursor.
	setCursor func(visible bool)
}

var (
	_ flow.Surface   = (*Game)(nil)
	_ flow.InputMode = (*Game)(nil)
)

// New creates a Game with no scene. The startup flow shows the first one.
func New(screenW, screenH int, clock *ui.Clock, logger *log.Logger) *Game {
	return &Game{
		clock:   clock,
		logger:  logger,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
		setCursor: func(visible bool) {
			if visible {
				ebiten.SetCursorMode(ebiten.CursorModeVisible)
			} else {
				ebiten.SetCursorMode(ebiten.CursorModeHidden)
			}
		},
	}
}

// Update advances the clock (which fires the startup transition when its
// delay elapses), updates the current scene, and handles scene
// transitions. Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.clock != nil {
		g.clock.Advance(g.dt)
	}

	if g.current == nil {
		return nil
	}

	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.current == nil {
		return
	}
	g.current.Draw(screen)
}

// Layout returns the logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Show makes v the current scene. Implements flow.Surface. zOrder is
// accepted for the contract but unused: the host displays one scene at a
// time. Non-scene views are ignored.
func (g *Game) Show(v flow.View, zOrder int) {
	s, ok := v.(scene.Scene)
	if !ok {
		if g.logger != nil {
			g.logger.Warn("surface asked to show a non-scene view")
		}
		return
	}
	if g.current != nil {
		g.current.OnExit()
	}
	g.current = s
	s.OnEnter()
}

// Hide dismisses v if it is the current scene. Implements flow.Surface.
func (g *Game) Hide(v flow.View) {
	s, ok := v.(scene.Scene)
	if !ok || s != g.current {
		return
	}
	s.OnExit()
	g.current = nil
}

// SetUIOnly records the focused view. Implements flow.InputMode. All
// input already goes to the current scene, so capture is a bookkeeping
// concern here.
func (g *Game) SetUIOnly(focus flow.View) {
	g.focus = focus
}

// SetCursorVisible shows or hides the window cursor.
// Implements flow.InputMode.
func (g *Game) SetCursorVisible(visible bool) {
	g.setCursor(visible)
}

// Scene returns the current scene, or nil when none is shown.
func (g *Game) Scene() scene.Scene {
	return g.current
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// SetCursorFunc overrides the cursor-mode setter.
// Useful for testing.
func (g *Game) SetCursorFunc(fn func(visible bool)) {
	g.setCursor = fn
}
