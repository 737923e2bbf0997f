// Package render draws the light chain onto a draw.Surface.
package render

import (
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/ingyamilmolinar/lightstrand/core/model"
	"github.com/ingyamilmolinar/lightstrand/internal/draw"
)

type GlyphStyle int

const (
	GlyphFlat GlyphStyle = iota
	GlyphGradient
)

// CurveRenderer draws the loose strings between chain neighbours and the
// bulb glyph at each light.
type CurveRenderer struct {
	SagAmplitude   float64
	RampTicks      float64
	Thickness      float64
	Style          GlyphStyle
	BlurPerLevel   float64
	MaxDepth       float64
	HighlightWidth float64
}

func DefaultCurveRenderer() CurveRenderer {
	return CurveRenderer{
		SagAmplitude:   10,
		RampTicks:      2,
		Thickness:      1.5,
		Style:          GlyphFlat,
		BlurPerLevel:   1.5,
		MaxDepth:       5,
		HighlightWidth: 2,
	}
}

// Dampening is min(ramp/life, 1), and 1 for a light that has not ticked yet.
func Dampening(life int, ramp float64) float64 {
	if life <= 0 {
		return 1
	}
	return math.Min(ramp/float64(life), 1)
}

// Sag is the vertical depth of the string from prevLife's light to a light
// whose rest length is rest.
func (c CurveRenderer) Sag(rest float64, prevLife int) float64 {
	swing := math.Abs(math.Cos(float64(prevLife) / 5))
	return rest + swing*c.SagAmplitude*Dampening(prevLife, c.RampTicks)
}

// StringPath builds the closed loose-string outline from a to b.
func (c CurveRenderer) StringPath(a, b mgl64.Vec2, sag float64) *draw.Path {
	t := c.Thickness
	p := &draw.Path{}
	p.MoveTo(a[0], a[1])
	p.CubicTo(a[0], a[1]+sag, b[0], b[1]+sag, b[0], b[1])
	p.LineTo(b[0], b[1]+t)
	p.CubicTo(b[0], b[1]+t+sag, a[0], a[1]+t+sag, a[0], a[1]+t)
	p.Close()
	return p
}

// DrawChain renders the committed chain in order.
func (c CurveRenderer) DrawChain(s draw.Surface, lights []model.Light) {
	for i, cur := range lights {
		if i > 0 {
			prev := lights[i-1]
			c.drawString(s, prev.Pos, cur.Pos, c.Sag(cur.ChainLength, prev.Life), colString)
		}
		c.drawGlyph(s, cur, bulbColor(int(cur.ID)), cur.Highlighted)
	}
}

// DrawPreview renders the preview chain hanging off last (nil when nothing
// is committed). Preview strings never animate and never highlight.
func (c CurveRenderer) DrawPreview(s draw.Surface, last *model.Light, preview []model.Light) {
	for i, cur := range preview {
		var from *mgl64.Vec2
		switch {
		case i > 0:
			from = &preview[i-1].Pos
		case last != nil:
			from = &last.Pos
		}
		if from != nil {
			c.drawString(s, *from, cur.Pos, c.Sag(cur.ChainLength, 0), colPreviewString)
		}
		flat := c
		flat.Style = GlyphFlat
		flat.drawGlyph(s, cur, colPreviewGlyph, false)
	}
}

func (c CurveRenderer) drawString(s draw.Surface, a, b mgl64.Vec2, sag float64, col color.RGBA) {
	s.Save()
	defer s.Restore()
	s.SetFill(col)
	s.FillPath(c.StringPath(a, b, sag))
}

func (c CurveRenderer) drawGlyph(s draw.Surface, l model.Light, col color.RGBA, highlighted bool) {
	s.Save()
	defer s.Restore()
	x, y, r := l.X(), l.Y(), l.Radius
	switch c.Style {
	case GlyphGradient:
		s.SetRadialFill(x, y, r, col, fade(col, 0))
		s.SetBlur(c.blur(l.Depth))
	default:
		s.SetFill(col)
		s.SetBlur(0)
	}
	s.FillCircle(x, y, r)
	if highlighted {
		s.SetBlur(0)
		s.SetStroke(colHighlight, c.HighlightWidth)
		s.StrokeCircle(x, y, r)
	}
}

// blur grows as the light moves away from the focal depth.
func (c CurveRenderer) blur(depth float64) float64 {
	return math.Max(0, (c.MaxDepth-depth)*c.BlurPerLevel)
}
