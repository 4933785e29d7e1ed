package game

import (
	"testing"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexsim/apexsim/internal/application/flow"
	"github.com/apexsim/apexsim/internal/application/scene"
	"github.com/apexsim/apexsim/internal/infrastructure/ui"
)

// mockScene is a test double for Scene interface
type mockScene struct {
	updateCalled  int
	drawCalled    int
	onEnterCalled int
	onExitCalled  int
	nextScene     scene.Scene
	updateErr     error
}

func (m *mockScene) Update(dt float64) (scene.Scene, error) {
	m.updateCalled++
	return m.nextScene, m.updateErr
}

func (m *mockScene) Draw(screen *ebiten.Image) {
	m.drawCalled++
}

func (m *mockScene) OnEnter() {
	m.onEnterCalled++
}

func (m *mockScene) OnExit() {
	m.onExitCalled++
}

func newTestGame() *Game {
	g := New(320, 240, ui.NewClock(), nil)
	g.SetCursorFunc(func(bool) {})
	return g
}

func TestNew_NoScene(t *testing.T) {
	g := newTestGame()

	assert.NotNil(t, g)
	assert.Nil(t, g.Scene())
	assert.NoError(t, g.Update(), "updating without a scene is valid")
}

func TestGame_Update_DelegatesToCurrentScene(t *testing.T) {
	g := newTestGame()
	mock := &mockScene{}
	g.Show(mock, 0)

	err := g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, mock.updateCalled, "Update should delegate to current scene")
}

func TestGame_Layout(t *testing.T) {
	g := newTestGame()

	w, h := g.Layout(640, 480)
	assert.Equal(t, 320, w)
	assert.Equal(t, 240, h)
}

func TestGame_SceneTransition(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}

	// scene1 will transition to scene2 on first update
	scene1.nextScene = scene2

	g := newTestGame()
	g.Show(scene1, 0)
	assert.Equal(t, 1, scene1.onEnterCalled, "initial scene OnEnter called")

	// First update triggers transition
	err := g.Update()
	assert.NoError(t, err)

	assert.Equal(t, 1, scene1.updateCalled, "scene1 Update called")
	assert.Equal(t, 1, scene1.onExitCalled, "scene1 OnExit called on transition")
	assert.Equal(t, 1, scene2.onEnterCalled, "scene2 OnEnter called on transition")

	// Second update goes to scene2
	err = g.Update()
	assert.NoError(t, err)
	assert.Equal(t, 1, scene2.updateCalled, "scene2 Update called")
}

func TestGame_NoTransitionWhenNil(t *testing.T) {
	scene1 := &mockScene{nextScene: nil} // Returns nil, no transition

	g := newTestGame()
	g.Show(scene1, 0)

	// Multiple updates, no transition
	for i := 0; i < 5; i++ {
		err := g.Update()
		assert.NoError(t, err)
	}

	assert.Equal(t, 5, scene1.updateCalled, "all updates go to scene1")
	assert.Equal(t, 0, scene1.onExitCalled, "no OnExit when no transition")
}

func TestGame_UpdateError(t *testing.T) {
	scene1 := &mockScene{updateErr: assert.AnError}

	g := newTestGame()
	g.Show(scene1, 0)

	err := g.Update()
	assert.Error(t, err, "error should propagate from scene")
}

func TestGame_ShowReplacesCurrentScene(t *testing.T) {
	scene1 := &mockScene{}
	scene2 := &mockScene{}
	g := newTestGame()

	g.Show(scene1, 0)
	g.Show(scene2, 0)

	assert.Equal(t, 1, scene1.onExitCalled, "replaced scene exits")
	assert.Equal(t, 1, scene2.onEnterCalled)
	assert.Equal(t, scene.Scene(scene2), g.Scene())
}

func TestGame_Hide(t *testing.T) {
	scene1 := &mockScene{}
	g := newTestGame()
	g.Show(scene1, 0)

	g.Hide(scene1)

	assert.Equal(t, 1, scene1.onExitCalled)
	assert.Nil(t, g.Scene())

	// Hiding again, or hiding something never shown, is a no-op
	assert.NotPanics(t, func() {
		g.Hide(scene1)
		g.Hide(&mockScene{})
		g.Hide(nil)
	})
}

func TestGame_CursorVisibility(t *testing.T) {
	g := New(320, 240, ui.NewClock(), nil)
	var calls []bool
	g.SetCursorFunc(func(visible bool) { calls = append(calls, visible) })

	g.SetCursorVisible(false)
	g.SetCursorVisible(true)

	assert.Equal(t, []bool{false, true}, calls)
}

func TestGame_HostsStartupFlow(t *testing.T) {
	clock := ui.NewClock()
	g := New(320, 240, clock, nil)
	g.SetCursorFunc(func(bool) {})

	loading := &mockScene{}
	menu := &mockScene{}

	ctrl := flow.NewController(g, g, clock, nil)
	ctrl.Start(
		func() flow.View { return loading },
		func() flow.View { return menu },
		2*time.Second,
	)

	require.Equal(t, scene.Scene(loading), g.Scene())

	// Just under two seconds of frames: still loading
	for i := 0; i < 119; i++ {
		require.NoError(t, g.Update())
	}
	assert.Equal(t, scene.Scene(loading), g.Scene())

	// Crossing the delay swaps loading for the menu
	require.NoError(t, g.Update())
	require.NoError(t, g.Update())
	assert.Equal(t, scene.Scene(menu), g.Scene())
	assert.Equal(t, 1, loading.onExitCalled)
	assert.Equal(t, 1, menu.onEnterCalled)
}
