package physics

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/collider/vmath"
)

// Body is a point-mass disk
// Radius, density and mass are fixed at construction; Position and Velocity are mutated by
// the integrator and the resolver only
type Body struct {
	ID    uint64
	Color colorful.Color

	Position vmath.Vec2
	Velocity vmath.Vec2

	radius  float64
	density float64
	mass    float64
}

// NewBody creates a body and derives its mass as π·r²·density
// Caller guarantees radius > 0 and density > 0
func NewBody(color colorful.Color, radius float64, position, velocity vmath.Vec2, density float64) *Body {
	return &Body{
		Color:    color,
		Position: position,
		Velocity: velocity,
		radius:   radius,
		density:  density,
		mass:     math.Pi * radius * radius * density,
	}
}

func (b *Body) Radius() float64  { return b.radius }
func (b *Body) Density() float64 { return b.density }
func (b *Body) Mass() float64    { return b.mass }

// String renders the body for collision descriptions and state dumps
func (b *Body) String() string {
	return fmt.Sprintf("Ball(color=%s, radius=%.2f, position=(%.2f, %.2f), velocity=(%.2f, %.2f), density=%.2f)",
		b.Color.Clamped().Hex(), b.radius,
		b.Position[0], b.Position[1],
		b.Velocity[0], b.Velocity[1],
		b.density,
	)
}
