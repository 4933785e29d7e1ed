// Package flow implements the startup flow controller: show a loading
// view, wait a configured delay, then replace it with the main menu view.
//
// The controller is independent of any rendering host. Everything it
// touches (view surfaces, input modes, delay scheduling) is injected as a
// collaborator interface, so the whole sequence can be driven from tests
// with fakes.
package flow

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/apexsim/apexsim/internal/application/state"
)

// View is an opaque handle to a displayable unit (loading screen, main
// menu). The controller never looks inside it; the host resolves it to an
// actual surface.
type View any

// Factory produces a view instance. Returning nil is valid and means the
// feature is unconfigured; the controller skips showing it.
type Factory func() View

// Surface presents views on behalf of the controller.
type Surface interface {
	Show(v View, zOrder int)
	Hide(v View)
}

// InputMode configures how the host routes input while a view is up.
type InputMode interface {
	// SetUIOnly captures all input for the UI, focusing the given view.
	SetUIOnly(focus View)
	SetCursorVisible(visible bool)
}

// Scheduler runs a callback once after a delay. The controller never
// cancels; a single-shot fire is all it needs.
type Scheduler interface {
	After(d time.Duration, fn func())
}

// Controller owns the two-phase startup sequence. It holds at most one
// active view at a time and transitions exactly once, from the loading
// screen to the main menu.
//
// All methods must be called from the host's event loop; the controller
// does no locking of its own.
type Controller struct {
	surface   Surface
	input     InputMode
	scheduler Scheduler
	logger    *log.Logger

	menuFactory Factory
	st          state.State
	current     View
	currentID   string
}

// NewController creates a controller in the LoadingScreen state.
// logger may be nil, in which case logging is discarded.
func NewController(surface Surface, input InputMode, scheduler Scheduler, logger *log.Logger) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Controller{
		surface:   surface,
		input:     input,
		scheduler: scheduler,
		logger:    logger,
		st:        state.StateLoadingScreen,
	}
}

// Start shows the loading view (if a factory is configured) and schedules
// the transition to the main menu after delay. While the loading screen is
// up, input is UI-only and the cursor is hidden.
//
// A missing or nil-yielding factory is not an error; the controller
// simply skips that view. The transition is scheduled either way.
func (c *Controller) Start(loadingFactory, menuFactory Factory, delay time.Duration) {
	c.menuFactory = menuFactory

	if loadingFactory != nil {
		if v := loadingFactory(); v != nil {
			c.show(v)
			c.input.SetCursorVisible(false)
		}
	}

	c.logger.Debug("startup flow began", "state", c.st, "delay", delay)
	c.scheduler.After(delay, c.Transition)
}

// Transition replaces the loading view with the main menu. It is invoked
// by the scheduled delay, fires exactly once, and is safe to call again:
// once the controller is in the MainMenu state further calls are no-ops.
func (c *Controller) Transition() {
	if c.st == state.StateMainMenu {
		return
	}
	c.st = state.StateMainMenu

	if c.current != nil {
		c.surface.Hide(c.current)
		c.logger.Debug("view dismissed", "view", c.currentID)
		c.current = nil
		c.currentID = ""
	}

	if c.menuFactory != nil {
		if v := c.menuFactory(); v != nil {
			c.show(v)
			c.input.SetCursorVisible(true)
		}
	}

	c.logger.Info("startup flow complete", "state", c.st)
}

// State returns the controller's current flow state.
func (c *Controller) State() state.State {
	return c.st
}

// CurrentView returns the active view, or nil when none is shown.
func (c *Controller) CurrentView() View {
	return c.current
}

func (c *Controller) show(v View) {
	c.current = v
	c.currentID = uuid.New().String()
	c.surface.Show(v, 0)
	c.input.SetUIOnly(v)
	c.logger.Debug("view shown", "view", c.currentID, "state", c.st)
}
