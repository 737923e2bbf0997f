package ui

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ingyamilmolinar/lightstrand/internal/draw"
)

// gradientRings is how many concentric circles approximate a radial fill or
// a blurred edge.
const gradientRings = 8

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

type surfaceState struct {
	fill        color.Color
	radial      bool
	radialOuter color.Color
	stroke      color.Color
	strokeW     float64
	blur        float64
}

// ebitenSurface implements draw.Surface on top of an *ebiten.Image using the
// vector package.
type ebitenSurface struct {
	dst   *ebiten.Image
	state surfaceState
	stack []surfaceState
	vs    []ebiten.Vertex
	is    []uint16
}

func newEbitenSurface(dst *ebiten.Image) *ebitenSurface {
	return &ebitenSurface{
		dst:   dst,
		state: surfaceState{fill: color.Black, stroke: color.Black, strokeW: 1},
	}
}

func (s *ebitenSurface) Save() { s.stack = append(s.stack, s.state) }

func (s *ebitenSurface) Restore() {
	if len(s.stack) == 0 {
		return
	}
	s.state = s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
}

func (s *ebitenSurface) SetFill(c color.Color) {
	s.state.fill = c
	s.state.radial = false
}

func (s *ebitenSurface) SetRadialFill(cx, cy, r float64, inner, outer color.Color) {
	s.state.fill = inner
	s.state.radialOuter = outer
	s.state.radial = true
}

func (s *ebitenSurface) SetStroke(c color.Color, width float64) {
	s.state.stroke = c
	s.state.strokeW = width
}

func (s *ebitenSurface) SetBlur(px float64) { s.state.blur = math.Max(0, px) }

func (s *ebitenSurface) FillRect(x, y, w, h float64) {
	vector.DrawFilledRect(s.dst, float32(x), float32(y), float32(w), float32(h), s.state.fill, false)
}

func (s *ebitenSurface) FillPath(p *draw.Path) {
	s.vs, s.is = toVectorPath(p).AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.drawTriangles(s.state.fill, ebiten.EvenOdd)
}

func (s *ebitenSurface) StrokePath(p *draw.Path) {
	op := &vector.StrokeOptions{Width: float32(s.state.strokeW), LineJoin: vector.LineJoinRound}
	s.vs, s.is = toVectorPath(p).AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], op)
	s.drawTriangles(s.state.stroke, ebiten.FillAll)
}

func (s *ebitenSurface) FillCircle(cx, cy, r float64) {
	st := s.state
	x, y := float32(cx), float32(cy)
	if st.radial {
		// stepped gradient: each smaller ring paints over the previous one
		inner, outer := toRGBA(st.fill), toRGBA(st.radialOuter)
		edge := r + st.blur
		for i := 0; i < gradientRings; i++ {
			t := float64(i) / float64(gradientRings)
			c := lerpRGBA(outer, inner, t)
			vector.DrawFilledCircle(s.dst, x, y, float32(edge*(1-t)), c, true)
		}
		return
	}
	if st.blur > 0 {
		// soft rim: translucent rings around a solid core
		fill := toRGBA(st.fill)
		core := math.Max(r-st.blur/2, 0)
		edge := r + st.blur/2
		for i := 0; i < gradientRings; i++ {
			rr := edge - (edge-core)*float64(i)/float64(gradientRings)
			vector.DrawFilledCircle(s.dst, x, y, float32(rr), withAlpha(fill, 1/float64(gradientRings)), true)
		}
		r = core
	}
	vector.DrawFilledCircle(s.dst, x, y, float32(r), st.fill, true)
}

func (s *ebitenSurface) StrokeCircle(cx, cy, r float64) {
	vector.StrokeCircle(s.dst, float32(cx), float32(cy), float32(r), float32(s.state.strokeW), s.state.stroke, true)
}

func (s *ebitenSurface) drawTriangles(c color.Color, rule ebiten.FillRule) {
	cr, cg, cb, ca := c.RGBA()
	for i := range s.vs {
		s.vs[i].SrcX = 1
		s.vs[i].SrcY = 1
		s.vs[i].ColorR = float32(cr) / 0xffff
		s.vs[i].ColorG = float32(cg) / 0xffff
		s.vs[i].ColorB = float32(cb) / 0xffff
		s.vs[i].ColorA = float32(ca) / 0xffff
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		FillRule:       rule,
		ColorScaleMode: ebiten.ColorScaleModePremultipliedAlpha,
	}
	s.dst.DrawTriangles(s.vs, s.is, whiteSubImage, op)
}

func toVectorPath(p *draw.Path) *vector.Path {
	var vp vector.Path
	for _, seg := range p.Segs {
		switch seg.Op {
		case draw.OpMoveTo:
			vp.MoveTo(float32(seg.Pts[0][0]), float32(seg.Pts[0][1]))
		case draw.OpLineTo:
			vp.LineTo(float32(seg.Pts[0][0]), float32(seg.Pts[0][1]))
		case draw.OpCubicTo:
			vp.CubicTo(
				float32(seg.Pts[0][0]), float32(seg.Pts[0][1]),
				float32(seg.Pts[1][0]), float32(seg.Pts[1][1]),
				float32(seg.Pts[2][0]), float32(seg.Pts[2][1]),
			)
		case draw.OpClose:
			vp.Close()
		}
	}
	return &vp
}

func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func lerpRGBA(a, b color.RGBA, t float64) color.RGBA {
	l := func(x, y uint8) uint8 { return uint8(float64(x) + (float64(y)-float64(x))*t) }
	return color.RGBA{l(a.R, b.R), l(a.G, b.G), l(a.B, b.B), l(a.A, b.A)}
}

// withAlpha scales a premultiplied colour by k.
func withAlpha(c color.RGBA, k float64) color.RGBA {
	m := func(x uint8) uint8 { return uint8(float64(x) * k) }
	return color.RGBA{m(c.R), m(c.G), m(c.B), m(c.A)}
}
