package physics

import "github.com/lixenwraith/collider/vmath"

// ReflectWall inverts the velocity component perpendicular to w
// Walls have infinite mass; restitution does not apply
func ReflectWall(v vmath.Vec2, w Wall) vmath.Vec2 {
	if w.Normal() == AxisY {
		return vmath.ReflectAxisY(v)
	}
	return vmath.ReflectAxisX(v)
}

// ResolvePair returns post-collision velocities under the 1D restitution law applied
// independently to each axis (not decomposed along the line of centers)
//
//	v1 = ((m1 - e·m2)·u1 + (1+e)·m2·u2) / (m1+m2)
//	v2 = ((1+e)·m1·u1 + (m2 - e·m1)·u2) / (m1+m2)
//
// m1+m2 must be positive
func ResolvePair(m1, m2 float64, u1, u2 vmath.Vec2, e float64) (v1, v2 vmath.Vec2) {
	total := m1 + m2
	v1 = vmath.Div(u1.Mul(m1-e*m2).Add(u2.Mul((1+e)*m2)), total)
	v2 = vmath.Div(u1.Mul((1+e)*m1).Add(u2.Mul(m2-e*m1)), total)
	return v1, v2
}

// ResolveAll detects and resolves every contact for this tick, returning one event per contact
// Walls are processed first for every body in order Upper, Lower, Left, Right, then all pairs
// i<j in slice order. Each response is applied immediately, so a later check reads the
// velocities produced by earlier ones. Event descriptions capture the pre-response state
func ResolveAll(bodies []*Body, arena Arena, e float64) []CollisionEvent {
	var events []CollisionEvent

	for _, b := range bodies {
		for _, w := range Walls {
			if !arena.TouchesWall(b, w) {
				continue
			}
			events = append(events, newWallEvent(b, w))
			b.Velocity = ReflectWall(b.Velocity, w)
		}
	}

	for i, b1 := range bodies {
		for _, b2 := range bodies[i+1:] {
			if !Collided(b1, b2) {
				continue
			}
			events = append(events, newPairEvent(b1, b2))
			b1.Velocity, b2.Velocity = ResolvePair(b1.mass, b2.mass, b1.Velocity, b2.Velocity, e)
		}
	}

	return events
}
