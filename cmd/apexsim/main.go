package main

import (
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/apexsim/apexsim/internal/application/flow"
	"github.com/apexsim/apexsim/internal/application/game"
	"github.com/apexsim/apexsim/internal/application/hover"
	"github.com/apexsim/apexsim/internal/application/scene"
	"github.com/apexsim/apexsim/internal/application/scene/loading"
	"github.com/apexsim/apexsim/internal/application/scene/menu"
	"github.com/apexsim/apexsim/internal/application/scene/session"
	"github.com/apexsim/apexsim/internal/domain/style"
	"github.com/apexsim/apexsim/internal/infrastructure/config"
	"github.com/apexsim/apexsim/internal/infrastructure/ui"
)

func main() {
	configDir := flag.String("config", "", "directory containing ui.toml (embedded defaults when empty)")
	skipLoading := flag.Bool("skip-loading", false, "jump straight to the main menu")
	mute := flag.Bool("mute", false, "disable the hover sound")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "apexsim",
	})
	if *debug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg := config.DefaultUI()
	if *configDir != "" {
		loaded, err := config.NewLoader(*configDir).LoadUI()
		if err != nil {
			logger.Fatal("config load failed", "err", err)
		}
		cfg = loaded
	}
	logger.Debug("config ready",
		"window", cfg.Window.Title,
		"loading_seconds", cfg.Startup.LoadingScreenSeconds,
		"hover_scale", cfg.Hover.ScaleMultiplier,
	)

	hcfg := hover.Config{
		ScaleMultiplier:   cfg.Hover.ScaleMultiplier,
		ColorTint:         tintColor(cfg.Hover.ColorTint),
		AnimationDuration: seconds(cfg.Hover.AnimationSeconds),
		PlaySoundOnHover:  cfg.Hover.PlaySound && !*mute,
	}
	if hcfg.PlaySoundOnHover {
		hcfg.HoverSound = ui.NewBlip(audio.NewContext(ui.BlipSampleRate))
	}

	w, h := cfg.Window.Width, cfg.Window.Height
	clock := ui.NewClock()
	g := game.New(w, h, clock, logger)

	// Menu and session reference each other through factories: Play
	// enters a session, Escape comes back to a fresh menu.
	var newMenu func() scene.Scene
	newSession := func() scene.Scene {
		return session.New(w, h, func() scene.Scene { return newMenu() }, logger)
	}
	newMenu = func() scene.Scene {
		return menu.New(w, h, hcfg, newSession, logger)
	}

	ctrl := flow.NewController(g, g, clock, logger)

	loadingFactory := flow.Factory(func() flow.View {
		return loading.New(w, h, cfg.Startup.LoadingScreenSeconds, logger)
	})
	delay := seconds(cfg.Startup.LoadingScreenSeconds)
	if *skipLoading {
		loadingFactory = nil
		delay = 0
	}
	ctrl.Start(loadingFactory, func() flow.View { return newMenu() }, delay)

	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(g); err != nil {
		logger.Fatal("game loop ended", "err", err)
	}
}

func tintColor(c []float64) style.Color {
	if len(c) != 4 {
		return style.White
	}
	return style.Color{R: c[0], G: c[1], B: c[2], A: c[3]}
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
