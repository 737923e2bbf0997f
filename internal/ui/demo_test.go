package ui

import (
	"context"
	"testing"
	"time"

	"github.com/ingyamilmolinar/lightstrand/core/gesture"
	"github.com/ingyamilmolinar/lightstrand/core/model"
	"github.com/ingyamilmolinar/lightstrand/internal/config"
)

func TestDemoScriptBuildsChain(t *testing.T) {
	cfg := config.Default()
	s := NewScene(cfg, testLogger)
	s.Resize(600, 400)
	for _, step := range demoScript(600, 400) {
		step(s.Gesture)
	}

	if n := s.Lights.Len(); n != 5 {
		t.Fatalf("lights=%d want 5", n)
	}
	if s.Lights.PreviewLen() != 0 {
		t.Fatalf("preview left behind")
	}
	if s.Gesture.State() != gesture.Idle {
		t.Fatalf("state=%s want idle", s.Gesture.State())
	}
	mid, _ := s.Lights.Light(model.LightID(2))
	if mid.Y() != 400*0.3-40 {
		t.Fatalf("middle light y=%v want %v", mid.Y(), 400*0.3-40)
	}
}

func TestRunDemoStopsWithContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 400*time.Millisecond)
	defer cancel()
	s, err := RunDemo(ctx, config.Default(), testLogger)
	if err != nil {
		t.Fatalf("RunDemo: %v", err)
	}
	if s.Lights.Len() == 0 {
		t.Fatalf("demo placed no lights")
	}
	if s.Renders() == 0 {
		t.Fatalf("demo never rendered")
	}
}
