package ui

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/ingyamilmolinar/lightstrand/internal/config"
	"github.com/ingyamilmolinar/lightstrand/internal/draw"
	game_log "github.com/ingyamilmolinar/lightstrand/internal/log"
)

// newCanvas allocates the offscreen image the scene renders into. It is a
// variable so tests can swap in a recording surface.
var newCanvas = func(w, h int) (*ebiten.Image, draw.Surface) {
	img := ebiten.NewImage(w, h)
	return img, newEbitenSurface(img)
}

// Game adapts a Scene to ebiten.Game. Update polls the pointer and advances
// the scheduler; every tick re-renders the offscreen canvas, and Draw blits
// the latest canvas to the screen.
type Game struct {
	scene   *Scene
	pointer pointerPoller
	canvas  *ebiten.Image
	hud     bool
	logger  *game_log.Logger

	winW, winH int
}

func New(cfg config.Config, logger *game_log.Logger) *Game {
	return &Game{
		scene:  NewScene(cfg, logger),
		hud:    cfg.HUD,
		logger: logger.With("GAME"),
	}
}

func (g *Game) Scene() *Scene { return g.scene }

// Layout doubles as the resize notifier.
func (g *Game) Layout(w, h int) (int, int) {
	if w == g.winW && h == g.winH {
		return w, h
	}
	g.winW, g.winH = w, h
	g.scene.Resize(float64(w), float64(h))
	if w > 0 && h > 0 {
		if g.canvas != nil {
			g.canvas.Deallocate()
		}
		var surface draw.Surface
		g.canvas, surface = newCanvas(w, h)
		g.scene.SetSurface(surface)
	}
	g.logger.Debugf("Layout: winW=%d winH=%d", w, h)
	return w, h
}

func (g *Game) Update() error {
	g.pointer.poll(g.scene.Gesture)
	g.scene.Frame()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.canvas != nil {
		screen.DrawImage(g.canvas, nil)
	}
	if g.hud {
		g.drawHUD(screen)
	}
}
