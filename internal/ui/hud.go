package ui

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var actualTPS = ebiten.ActualTPS

func (g *Game) hudText() string {
	s := g.scene
	return fmt.Sprintf("lights: %d  preview: %d\nticks: %d  renders: %d\nstate: %s  tps: %.1f",
		s.Lights.Len(), s.Lights.PreviewLen(),
		s.Clock.Ticks(), s.Renders(),
		s.Gesture.State(), actualTPS())
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	ebitenutil.DebugPrintAt(screen, g.hudText(), 4, 4)
}
