package main

import (
	"context"
	"flag"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/lightstrand/internal/config"
	game_log "github.com/ingyamilmolinar/lightstrand/internal/log"
	"github.com/ingyamilmolinar/lightstrand/internal/ui"
)

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger := game_log.New(os.Stderr, game_log.LevelFromString(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		logger.Errorf("%v", err)
		os.Exit(2)
	}

	if cfg.Demo > 0 {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Demo)
		defer cancel()
		if _, err := ui.RunDemo(ctx, cfg, logger); err != nil {
			logger.Errorf("demo: %v", err)
			os.Exit(1)
		}
		return
	}

	g := ui.New(cfg, logger)

	// Window settings are ignored on WASM builds.
	ebiten.SetWindowSize(cfg.WindowW, cfg.WindowH)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		logger.Errorf("run: %v", err)
		os.Exit(1)
	}
}
