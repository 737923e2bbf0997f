package ui

import (
	"github.com/ingyamilmolinar/lightstrand/core/clock"
	"github.com/ingyamilmolinar/lightstrand/core/gesture"
	"github.com/ingyamilmolinar/lightstrand/core/model"
	"github.com/ingyamilmolinar/lightstrand/internal/config"
	"github.com/ingyamilmolinar/lightstrand/internal/draw"
	game_log "github.com/ingyamilmolinar/lightstrand/internal/log"
	"github.com/ingyamilmolinar/lightstrand/internal/render"
)

// Scene owns the registry, the gesture controller, the scheduler and the
// render pass. Lifecycle: NewScene, Resize and SetSurface, then Frame once
// per host callback.
type Scene struct {
	Lights  *model.Registry
	Gesture *gesture.Controller
	Clock   *clock.Scheduler

	pass    *render.Pass
	surface draw.Surface
	w, h    float64
	renders int
	logger  *game_log.Logger
}

func NewScene(cfg config.Config, logger *game_log.Logger) *Scene {
	depth := model.DepthModel{BaseRadius: cfg.BaseRadius, Spread: cfg.Spread, MaxDepth: cfg.MaxDepth}
	lights := model.NewRegistry(depth, cfg.PickRadius, logger)

	curve := render.DefaultCurveRenderer()
	curve.SagAmplitude = cfg.SagAmplitude
	curve.RampTicks = cfg.RampTicks
	curve.Thickness = cfg.Thickness
	curve.BlurPerLevel = cfg.BlurPerLevel
	curve.MaxDepth = cfg.MaxDepth
	if cfg.GlyphStyle == config.GlyphGradient {
		curve.Style = render.GlyphGradient
	}

	s := &Scene{
		Lights:  lights,
		Gesture: gesture.NewController(lights, logger),
		pass:    render.NewPass(curve),
		logger:  logger.With("SCENE"),
	}
	s.Clock = clock.NewScheduler(s.tick, logger)
	if cfg.TPS > 0 {
		s.Clock.TickMillis = 1000 / cfg.TPS
	}
	if cfg.Mode == config.ModeSingleStep {
		s.Clock.Mode = clock.SingleStep
	}
	s.logger.Infof("Scene ready: tick=%.3fms mode=%s glyph=%s", s.Clock.TickMillis, s.Clock.Mode, cfg.GlyphStyle)
	return s
}

// Resize is the viewport notifier. It must run before the first render.
func (s *Scene) Resize(w, h float64) {
	s.w, s.h = w, h
	s.Lights.SetViewport(w, h)
	s.logger.Infof("Resized to %.0fx%.0f", w, h)
}

func (s *Scene) SetSurface(surface draw.Surface) { s.surface = surface }

// Frame advances the scheduler; every tick ages the lights and renders.
func (s *Scene) Frame() int {
	return s.Clock.Advance()
}

func (s *Scene) tick() {
	s.Lights.AdvanceTick()
	s.render()
}

func (s *Scene) render() {
	if s.surface == nil {
		return
	}
	lights, preview := s.Lights.Snapshot()
	s.pass.Render(s.surface, s.w, s.h, lights, preview)
	s.renders++
}

// Renders counts completed render passes.
func (s *Scene) Renders() int { return s.renders }
