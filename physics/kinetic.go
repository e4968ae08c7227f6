package physics

// Integrate advances all bodies by dt
// With gravity on, the selected axis first receives ½·g·dt² displacement and g·dt velocity,
// then every body moves by its (updated) velocity: p = p + v*dt
func Integrate(bodies []*Body, dt float64, gravityOn bool, g float64, dir Direction) {
	axis := dir.Axis()
	sign := dir.Sign()
	at := g * dt
	at2 := 0.5 * g * dt * dt

	for _, b := range bodies {
		if gravityOn {
			b.Position[axis] += sign * at2
			b.Velocity[axis] += sign * at
		}
		b.Position = b.Position.Add(b.Velocity.Mul(dt))
	}
}
