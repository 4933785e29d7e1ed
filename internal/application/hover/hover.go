// Package hover implements the per-element hover effect manager used by
// the main menu: each registered element gets its baseline style captured
// once, and pointer enter/leave events toggle between that baseline and a
// derived hovered style (uniform scale plus color tint, optionally with a
// sound cue).
package hover

import (
	"time"

	"github.com/apexsim/apexsim/internal/domain/style"
)

// Element is a button-like UI control the manager can style. Identity is
// the interface value itself, so implementations must be comparable
// (in practice, pointers).
type Element interface {
	Transform() style.Transform
	SetTransform(t style.Transform)
	Color() style.Color
	SetColor(c style.Color)

	// OnEnter and OnLeave subscribe a callback to pointer enter/leave
	// notifications for this element.
	OnEnter(fn func())
	OnLeave(fn func())
}

// Sound is a fire-and-forget audio cue.
type Sound interface {
	Play()
}

// Config holds the hover effect parameters. AnimationDuration is carried
// for hosts that interpolate; the manager itself applies styles
// instantaneously.
type Config struct {
	ScaleMultiplier   float64
	ColorTint         style.Color
	AnimationDuration time.Duration
	PlaySoundOnHover  bool
	HoverSound        Sound
}

// DefaultConfig returns the stock ApexSim menu hover parameters.
func DefaultConfig() Config {
	return Config{
		ScaleMultiplier:   1.05,
		ColorTint:         style.Color{R: 1.2, G: 1.2, B: 1.2, A: 1.0},
		AnimationDuration: 150 * time.Millisecond,
	}
}

// Manager owns the element → baseline snapshot mapping. Entries are added
// lazily by Register and never removed for the manager's lifetime.
//
// Every operation tolerates nil or unregistered elements by doing
// nothing; an unconfigured sound is likewise skipped.
type Manager struct {
	cfg       Config
	baselines map[Element]style.Snapshot
}

// NewManager creates a manager with the given effect parameters.
func NewManager(cfg Config) *Manager {
	return &Manager{
		cfg:       cfg,
		baselines: make(map[Element]style.Snapshot),
	}
}

// Register captures el's current transform and color as its baseline and
// subscribes the manager to its enter/leave notifications. Registering
// the same element again keeps the first snapshot: the baseline must
// reflect the true pre-hover style, not one corrupted by an effect
// applied in between.
func (m *Manager) Register(el Element) {
	if el == nil {
		return
	}
	if _, ok := m.baselines[el]; ok {
		return
	}
	m.baselines[el] = style.Snapshot{
		Transform: el.Transform(),
		Color:     el.Color(),
	}
	el.OnEnter(func() { m.HoverEnter(el) })
	el.OnLeave(func() { m.HoverLeave(el) })
}

// HoverEnter applies the derived hover style to el: baseline scale
// multiplied uniformly by the scale multiplier, baseline color multiplied
// componentwise by the tint. Channels are not clamped; over-bright values
// are the renderer's concern.
func (m *Manager) HoverEnter(el Element) {
	if el == nil {
		return
	}
	snap, ok := m.baselines[el]
	if !ok {
		return
	}

	if m.cfg.PlaySoundOnHover && m.cfg.HoverSound != nil {
		m.cfg.HoverSound.Play()
	}

	el.SetTransform(snap.Transform.Scaled(m.cfg.ScaleMultiplier))
	el.SetColor(snap.Color.Mul(m.cfg.ColorTint))
}

// HoverLeave restores el's baseline snapshot verbatim, discarding any
// applied hover style.
func (m *Manager) HoverLeave(el Element) {
	if el == nil {
		return
	}
	snap, ok := m.baselines[el]
	if !ok {
		return
	}
	el.SetTransform(snap.Transform)
	el.SetColor(snap.Color)
}

// Baseline returns the captured snapshot for el, if one exists.
func (m *Manager) Baseline(el Element) (style.Snapshot, bool) {
	snap, ok := m.baselines[el]
	return snap, ok
}
