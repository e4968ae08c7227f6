package engine

import (
	"slices"
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/collider/physics"
	"github.com/lixenwraith/collider/vmath"
)

// World owns the live body set
// All access goes through mu so a tick is never observed half-applied
type World struct {
	mu     sync.Mutex
	nextID uint64
	arena  physics.Arena
	bodies []*physics.Body
}

// NewWorld creates an empty world bounded by arena
func NewWorld(arena physics.Arena) *World {
	return &World{
		nextID: 1,
		arena:  arena,
		bodies: make([]*physics.Body, 0),
	}
}

// Arena returns the world bounds
func (w *World) Arena() physics.Arena {
	return w.arena
}

// Spawn creates a body, appends it to the live set and returns its handle
// Caller guarantees radius > 0 and density > 0
func (w *World) Spawn(color colorful.Color, radius float64, position, velocity vmath.Vec2, density float64) *physics.Body {
	b := physics.NewBody(color, radius, position, velocity, density)

	w.mu.Lock()
	defer w.mu.Unlock()

	b.ID = w.nextID
	w.nextID++
	w.bodies = append(w.bodies, b)
	return b
}

// Remove deletes b from the live set, returns false if it was not present
// Clearing any external selection of b is the caller's job
func (w *World) Remove(b *physics.Body) bool {
	if b == nil {
		return false
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	i := slices.Index(w.bodies, b)
	if i < 0 {
		return false
	}
	w.bodies = slices.Delete(w.bodies, i, i+1)
	return true
}

// Clear removes every body and returns how many were removed
func (w *World) Clear() int {
	w.mu.Lock()
	defer w.mu.Unlock()

	n := len(w.bodies)
	clear(w.bodies)
	w.bodies = w.bodies[:0]
	return n
}

// Select returns the first body in insertion order whose disk contains point, or nil
// First match wins, not nearest
func (w *World) Select(point vmath.Vec2) *physics.Body {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, b := range w.bodies {
		if physics.TouchesPoint(b, point) {
			return b
		}
	}
	return nil
}

// Contains reports whether b is still live
func (w *World) Contains(b *physics.Body) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Contains(w.bodies, b)
}

// Bodies returns a snapshot of live handles in insertion order
// The slice is a copy; the bodies are shared
func (w *World) Bodies() []*physics.Body {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Clone(w.bodies)
}

// Len returns the live body count
func (w *World) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.bodies)
}

// View runs fn with the live set under lock, fn must not retain the slice or call back into w
func (w *World) View(fn func(bodies []*physics.Body)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(w.bodies)
}
