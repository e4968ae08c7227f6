package physics

import "github.com/lixenwraith/collider/vmath"

// Arena is the square region bounded by four infinite-mass walls
// Both axes share the same Lower and Upper limits
type Arena struct {
	Lower, Upper float64
}

// WallPoint projects pos onto the boundary line of w
// The body touches w only when its own coordinate approaches the line, not when some
// part of the disk inside the box reaches it
func (a Arena) WallPoint(pos vmath.Vec2, w Wall) vmath.Vec2 {
	x, y := pos[0], pos[1]
	switch w {
	case WallUpper:
		return vmath.Vec2{x, a.Upper}
	case WallLower:
		return vmath.Vec2{x, a.Lower}
	case WallLeft:
		return vmath.Vec2{a.Lower, y}
	default:
		return vmath.Vec2{a.Upper, y}
	}
}

// Contains reports whether p lies inside the bounds, inclusive
func (a Arena) Contains(p vmath.Vec2) bool {
	return p[0] >= a.Lower && p[0] <= a.Upper && p[1] >= a.Lower && p[1] <= a.Upper
}

// TouchesPoint reports whether p lies within the body's disk
func TouchesPoint(b *Body, p vmath.Vec2) bool {
	return vmath.Within(b.Position, p, b.radius)
}

// Collided reports whether two disks overlap or touch
func Collided(a, b *Body) bool {
	return vmath.Within(a.Position, b.Position, a.radius+b.radius)
}

// TouchesWall reports whether b is in contact with wall w
func (a Arena) TouchesWall(b *Body, w Wall) bool {
	return TouchesPoint(b, a.WallPoint(b.Position, w))
}
