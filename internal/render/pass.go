package render

import (
	"image/color"

	"github.com/ingyamilmolinar/lightstrand/core/model"
	"github.com/ingyamilmolinar/lightstrand/internal/draw"
)

// Pass renders one full frame: background, committed chain, preview chain.
type Pass struct {
	Curve      CurveRenderer
	Background color.Color
}

func NewPass(curve CurveRenderer) *Pass {
	return &Pass{Curve: curve, Background: colBackground}
}

func (p *Pass) Render(s draw.Surface, w, h float64, lights, preview []model.Light) {
	s.Save()
	s.SetFill(p.Background)
	s.FillRect(0, 0, w, h)
	s.Restore()

	p.Curve.DrawChain(s, lights)

	var last *model.Light
	if n := len(lights); n > 0 {
		last = &lights[n-1]
	}
	p.Curve.DrawPreview(s, last, preview)
}
