package engine

import (
	"testing"
	"time"

	"github.com/lixenwraith/collider/physics"
	"github.com/lixenwraith/collider/vmath"
)

func TestTickPausedDoesNothing(t *testing.T) {
	w := NewWorld(testArena)
	b := w.Spawn(red, 10, vmath.Vec2{100, 0}, vmath.Vec2{3, -3}, 1)

	events := w.Tick(Params{Paused: true, Dt: 1, GravityEnabled: true, Gravity: 10})
	if events != nil {
		t.Errorf("Expected no events while paused, got %v", events)
	}
	if b.Position != (vmath.Vec2{100, 0}) || b.Velocity != (vmath.Vec2{3, -3}) {
		t.Errorf("Expected state untouched, got pos %v vel %v", b.Position, b.Velocity)
	}
}

// Resolution precedes integration: the bounced velocity drives this tick's move
func TestTickResolveThenIntegrate(t *testing.T) {
	w := NewWorld(testArena)
	b := w.Spawn(red, 10, vmath.Vec2{100, 0}, vmath.Vec2{0, -3}, 1)

	events := w.Tick(Params{Dt: 1, Restitution: 1})
	if len(events) != 1 || events[0].Wall != physics.WallLower {
		t.Fatalf("Expected one Lower wall event, got %v", events)
	}
	if b.Velocity != (vmath.Vec2{0, 3}) {
		t.Errorf("Expected velocity (0,3), got %v", b.Velocity)
	}
	if b.Position != (vmath.Vec2{100, 3}) {
		t.Errorf("Expected position (100,3), got %v", b.Position)
	}
}

func TestTickPairScenario(t *testing.T) {
	w := NewWorld(testArena)
	a := w.Spawn(red, 10, vmath.Vec2{95, 100}, vmath.Vec2{5, 0}, 1)
	b := w.Spawn(red, 10, vmath.Vec2{105, 100}, vmath.Vec2{-5, 0}, 1)

	events := w.Tick(Params{Dt: 0.01, Restitution: 1})
	if len(events) != 1 || events[0].Kind != physics.KindBody {
		t.Fatalf("Expected one pair event, got %v", events)
	}
	if events[0].Frequency != physics.Freq1250 {
		t.Errorf("Expected frequency %d, got %d", physics.Freq1250, events[0].Frequency)
	}
	if !near(a.Velocity, vmath.Vec2{-5, 0}) || !near(b.Velocity, vmath.Vec2{5, 0}) {
		t.Errorf("Expected exchange, got %v / %v", a.Velocity, b.Velocity)
	}
}

func TestTickGravityScenario(t *testing.T) {
	w := NewWorld(physics.Arena{Lower: -1000, Upper: 1000})
	b := w.Spawn(red, 1, vmath.Vec2{0, 0}, vmath.Vec2{0, 0}, 1)

	w.Tick(Params{Dt: 0.01, GravityEnabled: true, Gravity: 9.8, Direction: physics.Up})

	if d := b.Velocity[1] - 0.098; d > 1e-12 || d < -1e-12 || b.Velocity[0] != 0 {
		t.Errorf("Expected velocity (0, 0.098), got %v", b.Velocity)
	}
	if d := b.Position[1] - 0.00147; d > 1e-12 || d < -1e-12 || b.Position[0] != 0 {
		t.Errorf("Expected position (0, 0.00147), got %v", b.Position)
	}
}

func TestDtFromInterval(t *testing.T) {
	if dt := DtFromInterval(10 * time.Millisecond); dt != 0.01 {
		t.Errorf("Expected 0.01, got %v", dt)
	}
}

func near(a, b vmath.Vec2) bool {
	return a.ApproxEqualThreshold(b, 1e-9)
}

func BenchmarkTick200(b *testing.B) {
	w := NewWorld(physics.Arena{Lower: 0, Upper: 1000})
	for i := 0; i < 200; i++ {
		x := float64(20 + (i%20)*45)
		y := float64(20 + (i/20)*45)
		w.Spawn(red, 10, vmath.Vec2{x, y}, vmath.Vec2{float64(i%7) - 3, float64(i%5) - 2}, 1)
	}
	p := Params{Dt: 0.01, Restitution: 1, GravityEnabled: true, Gravity: 980, Direction: physics.Down}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Tick(p)
	}
}
