// Package ui provides the Ebiten-backed widgets and host services the
// menu scenes are built from: buttons, the frame-stepped clock, the hover
// sound cue, and the debug HUD.
package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/apexsim/apexsim/internal/domain/style"
)

// Theme holds the base colors a button is drawn with before any hover
// tint is applied.
type Theme struct {
	Fill   color.NRGBA
	Border color.NRGBA
	Text   color.NRGBA
}

// DefaultTheme is the stock menu look: dark slate fill with a light frame.
var DefaultTheme = Theme{
	Fill:   color.NRGBA{38, 42, 62, 255},
	Border: color.NRGBA{120, 130, 170, 255},
	Text:   color.NRGBA{230, 232, 240, 255},
}

// Button is a hoverable, clickable menu control. Its visual state is the
// pair (render transform, color tint); the hover manager mutates that
// pair through the style accessors while Draw resolves it against the
// theme at render time.
type Button struct {
	Label string
	X, Y  float64
	W, H  float64
	Theme Theme

	transform style.Transform
	tint      style.Color

	hovered bool
	onClick func()

	enterSubs []func()
	leaveSubs []func()
}

// NewButton creates a button with the neutral transform and tint.
// onClick may be nil.
func NewButton(x, y, w, h float64, label string, theme Theme, onClick func()) *Button {
	return &Button{
		Label:     label,
		X:         x,
		Y:         y,
		W:         w,
		H:         h,
		Theme:     theme,
		transform: style.Identity(),
		tint:      style.White,
		onClick:   onClick,
	}
}

// Transform returns the button's current render transform.
func (b *Button) Transform() style.Transform { return b.transform }

// SetTransform replaces the button's render transform.
func (b *Button) SetTransform(t style.Transform) { b.transform = t }

// Color returns the button's current color tint.
func (b *Button) Color() style.Color { return b.tint }

// SetColor replaces the button's color tint.
func (b *Button) SetColor(c style.Color) { b.tint = c }

// OnEnter subscribes fn to pointer-enter notifications.
func (b *Button) OnEnter(fn func()) { b.enterSubs = append(b.enterSubs, fn) }

// OnLeave subscribes fn to pointer-leave notifications.
func (b *Button) OnLeave(fn func()) { b.leaveSubs = append(b.leaveSubs, fn) }

// Hovered reports whether the pointer is currently over the button.
func (b *Button) Hovered() bool { return b.hovered }

// Contains checks if a point is within the button's layout rect. Hit
// testing uses the untransformed rect; the hover scale is purely visual.
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x <= b.X+b.W && y >= b.Y && y <= b.Y+b.H
}

// HandlePointer feeds the current pointer position and click edge into
// the button. Enter/leave subscribers fire on hover edges; onClick fires
// on a press inside the rect.
func (b *Button) HandlePointer(x, y float64, justPressed bool) {
	inside := b.Contains(x, y)

	if inside && !b.hovered {
		b.hovered = true
		for _, fn := range b.enterSubs {
			fn()
		}
	} else if !inside && b.hovered {
		b.hovered = false
		for _, fn := range b.leaveSubs {
			fn()
		}
	}

	if inside && justPressed && b.onClick != nil {
		b.onClick()
	}
}

// Draw renders the button. The transform scales the rect about its
// center; the tint multiplies the theme colors, clamped here because the
// renderer is where out-of-range channels stop being meaningful.
func (b *Button) Draw(screen *ebiten.Image) {
	cx := b.X + b.W/2 + b.transform.TranslateX
	cy := b.Y + b.H/2 + b.transform.TranslateY
	w := b.W * b.transform.ScaleX
	h := b.H * b.transform.ScaleY
	x := cx - w/2
	y := cy - h/2

	fill := tinted(b.Theme.Fill, b.tint)
	border := tinted(b.Theme.Border, b.tint)

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), fill, true)

	borderWidth := float32(2)
	if b.hovered {
		borderWidth = 3
	}
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), borderWidth, border, true)

	bounds := text.BoundString(basicfont.Face7x13, b.Label)
	textX := int(x) + (int(w)-bounds.Dx())/2
	textY := int(y) + (int(h)+bounds.Dy())/2
	text.Draw(screen, b.Label, basicfont.Face7x13, textX+1, textY+1, color.NRGBA{0, 0, 0, 60})
	text.Draw(screen, b.Label, basicfont.Face7x13, textX, textY, tinted(b.Theme.Text, b.tint))
}

// tinted multiplies base by the tint channels, clamping to displayable
// range.
func tinted(base color.NRGBA, tint style.Color) color.NRGBA {
	return color.NRGBA{
		R: clampChannel(float64(base.R) * tint.R),
		G: clampChannel(float64(base.G) * tint.G),
		B: clampChannel(float64(base.B) * tint.B),
		A: clampChannel(float64(base.A) * tint.A),
	}
}

func clampChannel(v float64) uint8 {
	return uint8(math.Min(255, math.Max(0, v)))
}
