package utils

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Dist is the Euclidean distance between a and b.
func Dist(a, b mgl64.Vec2) float64 {
	return b.Sub(a).Len()
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Pt builds a vector from scalar coordinates.
func Pt(x, y float64) mgl64.Vec2 { return mgl64.Vec2{x, y} }
