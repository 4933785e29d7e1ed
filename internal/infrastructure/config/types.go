package config

// UIConfig is the root config for ui.toml
type UIConfig struct {
	Window  WindowConfig  `toml:"window"`
	Startup StartupConfig `toml:"startup"`
	Hover   HoverConfig   `toml:"hover"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

// StartupConfig configures the loading screen → main menu sequence
type StartupConfig struct {
	// LoadingScreenSeconds is how long the loading screen stays up before
	// the single transition to the main menu fires
	LoadingScreenSeconds float64 `toml:"loading_screen_seconds"`
}

// HoverConfig configures the button hover effect
type HoverConfig struct {
	ScaleMultiplier  float64 `toml:"scale_multiplier"`
	AnimationSeconds float64 `toml:"animation_seconds"`
	// ColorTint is the per-channel multiplier [r, g, b, a] applied to a
	// button's baseline color while hovered
	ColorTint []float64 `toml:"color_tint"`
	PlaySound bool      `toml:"play_sound"`
}
