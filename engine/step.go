package engine

import (
	"time"

	"github.com/lixenwraith/collider/physics"
)

// Params is the per-tick simulation input, owned by the caller
type Params struct {
	GravityEnabled bool
	// Gravity is the acceleration magnitude already scaled to per-tick units
	Gravity   float64
	Direction physics.Direction

	// Restitution is the body-body coefficient in [0,1]
	Restitution float64

	// Dt is the fixed tick duration in seconds
	Dt float64

	Paused bool
}

// DtFromInterval converts a tick interval to seconds
func DtFromInterval(d time.Duration) float64 {
	return d.Seconds()
}

// Tick runs one simulation step: detect and resolve collisions, then integrate
// A paused tick does nothing and returns nil
func (w *World) Tick(p Params) []physics.CollisionEvent {
	if p.Paused {
		return nil
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	events := physics.ResolveAll(w.bodies, w.arena, p.Restitution)
	physics.Integrate(w.bodies, p.Dt, p.GravityEnabled, p.Gravity, p.Direction)
	return events
}
