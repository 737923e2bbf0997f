package ui

import (
	"context"
	"errors"

	"github.com/ingyamilmolinar/lightstrand/core/engine"
	"github.com/ingyamilmolinar/lightstrand/core/gesture"
	"github.com/ingyamilmolinar/lightstrand/internal/config"
	"github.com/ingyamilmolinar/lightstrand/internal/draw"
	game_log "github.com/ingyamilmolinar/lightstrand/internal/log"
)

type demoStep func(c *gesture.Controller)

// demoScript hangs five lights across the viewport and then drags the middle
// one upwards.
func demoScript(w, h float64) []demoStep {
	var steps []demoStep
	for i := 0; i < 5; i++ {
		x := w * float64(i+1) / 6
		y := h * 0.3
		if i%2 == 1 {
			y = h * 0.45
		}
		steps = append(steps,
			func(c *gesture.Controller) { c.PointerDown(x-20, y, gesture.Primary) },
			func(c *gesture.Controller) { c.PointerMove(x, y) },
			func(c *gesture.Controller) { c.PointerUp(x, y, gesture.Primary) },
		)
	}
	mx, my := w*3/6, h*0.3
	steps = append(steps,
		func(c *gesture.Controller) { c.PointerDown(mx, my, gesture.Primary) },
		func(c *gesture.Controller) { c.PointerMove(mx, my-40) },
		func(c *gesture.Controller) { c.PointerUp(mx, my-40, gesture.Primary) },
	)
	return steps
}

// RunDemo plays demoScript against a headless scene until ctx ends, one
// script step per frame.
func RunDemo(ctx context.Context, cfg config.Config, logger *game_log.Logger) (*Scene, error) {
	w, h := float64(cfg.WindowW), float64(cfg.WindowH)
	s := NewScene(cfg, logger)
	rec := draw.NewRecorder()
	s.SetSurface(rec)
	s.Resize(w, h)

	script := demoScript(w, h)
	next := 0
	e := engine.New(func() {
		if next < len(script) {
			script[next](s.Gesture)
			next++
		}
		rec.Reset()
		s.Frame()
	}, logger)

	err := e.Run(ctx)
	logger.With("DEMO").Infof("Finished: lights=%d ticks=%d renders=%d frames=%d",
		s.Lights.Len(), s.Clock.Ticks(), s.Renders(), e.Frames())
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return s, nil
	}
	return s, err
}
