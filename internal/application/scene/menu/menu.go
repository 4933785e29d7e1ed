// Package menu provides the main menu scene: four buttons with hover
// effects wired through the hover effect manager.
package menu

import (
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/apexsim/apexsim/internal/application/hover"
	"github.com/apexsim/apexsim/internal/application/scene"
	"github.com/apexsim/apexsim/internal/application/state"
	"github.com/apexsim/apexsim/internal/infrastructure/ui"
)

var (
	colorBG    = color.NRGBA{16, 18, 30, 255}
	colorTitle = color.NRGBA{230, 232, 240, 255}
)

const (
	buttonW   = 260.0
	buttonH   = 52.0
	buttonGap = 18.0
)

// Scene is the main menu. Pointer input is fed to the buttons each frame;
// enter/leave edges reach the hover manager through the buttons' own
// subscriptions, so the menu never touches hover styling directly.
type Scene struct {
	logger  *log.Logger
	screenW int
	screenH int

	buttons []*ui.Button
	effects *hover.Manager
	hud     *ui.HUD

	newSession func() scene.Scene
	next       scene.Scene
	quit       bool

	pointer     func() (int, int)
	justPressed func() bool
}

// New creates the menu with its four buttons (Play, Settings, Content,
// Quit) registered against a hover manager built from cfg. newSession
// produces the scene entered when Play is clicked; nil disables Play.
func New(screenW, screenH int, cfg hover.Config, newSession func() scene.Scene, logger *log.Logger) *Scene {
	s := &Scene{
		logger:      logger,
		screenW:     screenW,
		screenH:     screenH,
		effects:     hover.NewManager(cfg),
		hud:         &ui.HUD{Version: "dev"},
		newSession:  newSession,
		pointer:     ebiten.CursorPosition,
		justPressed: func() bool { return inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) },
	}

	labels := []struct {
		label   string
		onClick func()
	}{
		{"PLAY", s.play},
		{"SETTINGS", func() { s.unwired("SETTINGS") }},
		{"CONTENT", func() { s.unwired("CONTENT") }},
		{"QUIT", func() { s.quit = true }},
	}

	totalH := float64(len(labels))*buttonH + float64(len(labels)-1)*buttonGap
	x := (float64(screenW) - buttonW) / 2
	y := float64(screenH)/2 - totalH/2 + 30

	for _, l := range labels {
		b := ui.NewButton(x, y, buttonW, buttonH, l.label, ui.DefaultTheme, l.onClick)
		s.effects.Register(b)
		s.buttons = append(s.buttons, b)
		y += buttonH + buttonGap
	}

	return s
}

func (s *Scene) play() {
	if s.newSession == nil {
		s.unwired("PLAY")
		return
	}
	s.next = s.newSession()
}

func (s *Scene) unwired(label string) {
	if s.logger != nil {
		s.logger.Info("menu item has no screen yet", "item", label)
	}
}

// Update feeds pointer state to the buttons and applies any transition
// requested by a click.
func (s *Scene) Update(dt float64) (scene.Scene, error) {
	mx, my := s.pointer()
	pressed := s.justPressed()
	for _, b := range s.buttons {
		b.HandlePointer(float64(mx), float64(my), pressed)
	}

	if s.quit {
		return nil, ebiten.Termination
	}
	if s.next != nil {
		next := s.next
		s.next = nil
		return next, nil
	}
	return nil, nil
}

// Draw renders the background, title, buttons, and HUD overlay.
func (s *Scene) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	title := "A P E X S I M"
	tb := text.BoundString(basicfont.Face7x13, title)
	text.Draw(screen, title, basicfont.Face7x13, (s.screenW-tb.Dx())/2, s.screenH/4, colorTitle)

	for _, b := range s.buttons {
		b.Draw(screen)
	}
	s.hud.Draw(screen)
}

// OnEnter logs menu activation.
func (s *Scene) OnEnter() {
	if s.logger != nil {
		s.logger.Info("main menu ready", "state", state.StateMainMenu, "buttons", len(s.buttons))
	}
}

// OnExit logs menu teardown.
func (s *Scene) OnExit() {
	if s.logger != nil {
		s.logger.Debug("main menu dismissed")
	}
}

// Buttons exposes the menu's buttons.
// Useful for testing.
func (s *Scene) Buttons() []*ui.Button {
	return s.buttons
}

// SetPointer overrides the pointer position source.
// Useful for testing.
func (s *Scene) SetPointer(fn func() (int, int)) {
	s.pointer = fn
}

// SetPressed overrides the click edge source.
// Useful for testing.
func (s *Scene) SetPressed(fn func() bool) {
	s.justPressed = fn
}
