// Package style defines the visual value types shared by the UI flow and
// hover components: render transforms, linear colors, and captured
// baseline snapshots.
package style

// Transform is a 2D render transform applied to a UI element.
// Translation is in logical pixels, Angle in degrees.
type Transform struct {
	TranslateX float64
	TranslateY float64
	ScaleX     float64
	ScaleY     float64
	Angle      float64
}

// Identity returns the neutral transform (no offset, unit scale).
func Identity() Transform {
	return Transform{ScaleX: 1, ScaleY: 1}
}

// Scaled returns a copy of t with both scale axes multiplied by factor.
// Translation and angle are preserved.
func (t Transform) Scaled(factor float64) Transform {
	t.ScaleX *= factor
	t.ScaleY *= factor
	return t
}

// Color is a linear RGBA color. Channels are not clamped to [0, 1];
// values above 1 are meaningful as over-bright tints and it is the
// renderer's job to clamp at draw time.
type Color struct {
	R, G, B, A float64
}

// White is the neutral tint.
var White = Color{R: 1, G: 1, B: 1, A: 1}

// Mul multiplies each channel of c by the corresponding channel of tint,
// alpha included. No clamping is performed.
func (c Color) Mul(tint Color) Color {
	return Color{
		R: c.R * tint.R,
		G: c.G * tint.G,
		B: c.B * tint.B,
		A: c.A * tint.A,
	}
}

// Snapshot is the baseline visual state captured for an element the first
// time it is registered. Once captured it is immutable ground truth for
// restore operations.
type Snapshot struct {
	Transform Transform
	Color     Color
}
