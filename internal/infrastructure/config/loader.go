package config

import (
	_ "embed"
	"fmt"
	"io/fs"
	"os"

	"github.com/BurntSushi/toml"
)

//go:embed ui.default.toml
var defaultUI []byte

// Loader loads UI configuration from TOML files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadUI loads and validates ui.toml
func (l *Loader) LoadUI() (*UIConfig, error) {
	data, err := fs.ReadFile(l.fsys, "ui.toml")
	if err != nil {
		return nil, fmt.Errorf("failed to read ui.toml: %w", err)
	}

	var cfg UIConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse ui.toml: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid ui.toml: %w", err)
	}

	return &cfg, nil
}

// DefaultUI returns the embedded stock configuration. It panics only if
// the embedded file is broken, which is a build defect.
func DefaultUI() *UIConfig {
	var cfg UIConfig
	if err := toml.Unmarshal(defaultUI, &cfg); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &cfg
}

// Validate checks the loaded values for ranges the UI cannot work with.
func (c *UIConfig) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Startup.LoadingScreenSeconds < 0 {
		return fmt.Errorf("loading_screen_seconds must not be negative, got %v", c.Startup.LoadingScreenSeconds)
	}
	if c.Hover.ScaleMultiplier <= 0 {
		return fmt.Errorf("scale_multiplier must be positive, got %v", c.Hover.ScaleMultiplier)
	}
	if c.Hover.AnimationSeconds < 0 {
		return fmt.Errorf("animation_seconds must not be negative, got %v", c.Hover.AnimationSeconds)
	}
	if len(c.Hover.ColorTint) != 4 {
		return fmt.Errorf("color_tint must have 4 channels, got %d", len(c.Hover.ColorTint))
	}
	return nil
}
