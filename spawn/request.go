package spawn

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/collider/engine"
	"github.com/lixenwraith/collider/physics"
	"github.com/lixenwraith/collider/vmath"
)

// Sentinel errors
var (
	ErrInvalidRadius  = errors.New("radius must be positive")
	ErrInvalidDensity = errors.New("density must be positive")
	ErrOutsideArena   = errors.New("position outside arena")
)

// Request carries everything needed to create one body
type Request struct {
	Color    colorful.Color
	Radius   float64
	Position vmath.Vec2
	Velocity vmath.Vec2
	Density  float64
}

// Validate enforces the preconditions the engine assumes
func (r Request) Validate(arena physics.Arena) error {
	if !(r.Radius > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidRadius, r.Radius)
	}
	if !(r.Density > 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDensity, r.Density)
	}
	if !arena.Contains(r.Position) {
		return fmt.Errorf("%w: (%.2f, %.2f)", ErrOutsideArena, r.Position[0], r.Position[1])
	}
	return nil
}

// Apply validates r and spawns it into w
func Apply(w *engine.World, r Request) (*physics.Body, error) {
	if err := r.Validate(w.Arena()); err != nil {
		return nil, err
	}
	return w.Spawn(r.Color, r.Radius, r.Position, r.Velocity, r.Density), nil
}
