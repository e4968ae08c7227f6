package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/collider/physics"
	"github.com/lixenwraith/collider/vmath"
)

// BodyView is a copy of the body state needed to draw one frame
type BodyView struct {
	ID       uint64
	Color    colorful.Color
	Radius   float64
	Density  float64
	Mass     float64
	Position vmath.Vec2
	Velocity vmath.Vec2
}

// ViewOf copies b
func ViewOf(b *physics.Body) BodyView {
	return BodyView{
		ID:       b.ID,
		Color:    b.Color,
		Radius:   b.Radius(),
		Density:  b.Density(),
		Mass:     b.Mass(),
		Position: b.Position,
		Velocity: b.Velocity,
	}
}

// Preview is the ball being sized before release
type Preview struct {
	Center vmath.Vec2
	Radius float64
	Color  colorful.Color
	Cursor vmath.Vec2
}

// Status is the parameter line content
type Status struct {
	GravityOn   bool
	Direction   physics.Direction
	Planet      string // empty for a custom value
	G           float64
	Restitution float64
	Paused      bool
	Muted       bool
}

// Frame is everything the renderer draws, built by the game under its own locking
type Frame struct {
	Arena    physics.Arena
	Side     float64
	Bodies   []BodyView
	Selected *BodyView
	Preview  *Preview

	SpawnLower, SpawnUpper float64

	ShowVectors  bool
	ShowBox      bool
	ShowControls bool

	Density     float64
	DensityHold bool

	Status Status
}
