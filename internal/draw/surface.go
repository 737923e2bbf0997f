// Package draw defines the 2D drawing surface the renderer targets.
package draw

import "image/color"

// Surface is a canvas-like immediate-mode target. Fill, stroke, gradient and
// blur settings are draw state; Save and Restore push and pop it.
type Surface interface {
	Save()
	Restore()

	SetFill(c color.Color)
	// SetRadialFill replaces the fill with a gradient from inner at (cx, cy)
	// to outer at radius r.
	SetRadialFill(cx, cy, r float64, inner, outer color.Color)
	SetStroke(c color.Color, width float64)
	SetBlur(px float64)

	FillRect(x, y, w, h float64)
	FillPath(p *Path)
	StrokePath(p *Path)
	FillCircle(cx, cy, r float64)
	StrokeCircle(cx, cy, r float64)
}

type Op int

const (
	OpMoveTo Op = iota
	OpLineTo
	OpCubicTo
	OpClose
)

func (o Op) String() string {
	switch o {
	case OpMoveTo:
		return "M"
	case OpLineTo:
		return "L"
	case OpCubicTo:
		return "C"
	case OpClose:
		return "Z"
	}
	return "?"
}

// Segment is one path command. Pts holds 1 point for M/L, 3 for C, 0 for Z.
type Segment struct {
	Op  Op
	Pts [][2]float64
}

// Path is a surface-independent list of segments.
type Path struct {
	Segs []Segment
}

func (p *Path) MoveTo(x, y float64) {
	p.Segs = append(p.Segs, Segment{Op: OpMoveTo, Pts: [][2]float64{{x, y}}})
}

func (p *Path) LineTo(x, y float64) {
	p.Segs = append(p.Segs, Segment{Op: OpLineTo, Pts: [][2]float64{{x, y}}})
}

func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.Segs = append(p.Segs, Segment{Op: OpCubicTo, Pts: [][2]float64{{c1x, c1y}, {c2x, c2y}, {x, y}}})
}

func (p *Path) Close() {
	p.Segs = append(p.Segs, Segment{Op: OpClose})
}
