package vmath

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec2 aliases mgl64.Vec2 so callers need not import mathgl for literals
type Vec2 = mgl64.Vec2

// Distance returns the Euclidean distance between a and b
func Distance(a, b Vec2) float64 {
	return math.Hypot(a[0]-b[0], a[1]-b[1])
}

// Within reports whether b lies within radius r of a, boundary inclusive
func Within(a, b Vec2, r float64) bool {
	return Distance(a, b) <= r
}

// ReflectAxisX returns velocity reflected off a vertical wall (X axis boundary)
// Use for left/right edge collision
func ReflectAxisX(v Vec2) Vec2 {
	return Vec2{-v[0], v[1]}
}

// ReflectAxisY returns velocity reflected off a horizontal wall (Y axis boundary)
// Use for top/bottom edge collision
func ReflectAxisY(v Vec2) Vec2 {
	return Vec2{v[0], -v[1]}
}

// Div divides both components by d, zero d yields Inf/NaN components
func Div(v Vec2, d float64) Vec2 {
	return Vec2{v[0] / d, v[1] / d}
}

// ClampScalar limits x to [lo, hi]
func ClampScalar(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
