package model

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/ingyamilmolinar/lightstrand/internal/utils"
)

// DepthModel maps a scene position to a depth level and a glyph radius.
// Depth grows towards the focal point at (w/2, 0.75h); radius shrinks with
// depth.
type DepthModel struct {
	BaseRadius float64
	Spread     float64
	MaxDepth   float64
}

func DefaultDepthModel() DepthModel {
	return DepthModel{BaseRadius: 10, Spread: 40, MaxDepth: 5}
}

// Focal returns the focal point for a viewport.
func (d DepthModel) Focal(w, h float64) mgl64.Vec2 {
	return mgl64.Vec2{w / 2, h * 0.75}
}

// Depth is in [0, MaxDepth]. A zero-sized viewport yields MaxDepth.
func (d DepthModel) Depth(pos mgl64.Vec2, w, h float64) float64 {
	maxR := mgl64.Vec2{w / 2, h / 2}.Len()
	if maxR == 0 {
		return d.MaxDepth
	}
	dist := utils.Dist(d.Focal(w, h), pos)
	return utils.Clamp((1-dist/maxR)*d.MaxDepth, 0, d.MaxDepth)
}

func (d DepthModel) Radius(depth float64) float64 {
	if d.MaxDepth == 0 {
		return d.BaseRadius + d.Spread
	}
	return d.BaseRadius + d.Spread*(1-depth/d.MaxDepth)
}
