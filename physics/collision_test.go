package physics

import (
	"testing"

	"github.com/lixenwraith/collider/vmath"
)

var testArena = Arena{Lower: 0, Upper: 100}

func TestCollidedSymmetric(t *testing.T) {
	pairs := []struct {
		a, b *Body
		want bool
	}{
		{newTestBody(5, 1, vmath.Vec2{0, 0}, vmath.Vec2{}), newTestBody(5, 1, vmath.Vec2{10, 0}, vmath.Vec2{}), true},
		{newTestBody(5, 1, vmath.Vec2{0, 0}, vmath.Vec2{}), newTestBody(3, 1, vmath.Vec2{8.01, 0}, vmath.Vec2{}), false},
		{newTestBody(2, 1, vmath.Vec2{1, 1}, vmath.Vec2{}), newTestBody(30, 1, vmath.Vec2{20, 20}, vmath.Vec2{}), true},
	}
	for i, p := range pairs {
		ab, ba := Collided(p.a, p.b), Collided(p.b, p.a)
		if ab != ba {
			t.Errorf("pair %d: asymmetric result %v vs %v", i, ab, ba)
		}
		if ab != p.want {
			t.Errorf("pair %d: expected %v, got %v", i, p.want, ab)
		}
	}
}

func TestWallPointProjection(t *testing.T) {
	pos := vmath.Vec2{30, 70}
	want := map[Wall]vmath.Vec2{
		WallUpper: {30, 100},
		WallLower: {30, 0},
		WallLeft:  {0, 70},
		WallRight: {100, 70},
	}
	for _, w := range Walls {
		if got := testArena.WallPoint(pos, w); got != want[w] {
			t.Errorf("%s: expected %v, got %v", w, want[w], got)
		}
	}
}

// Only the body's own coordinate counts, a disk crossing the line with its center inside
// but farther than radius does not touch
func TestTouchesWallUsesProjection(t *testing.T) {
	b := newTestBody(10, 1, vmath.Vec2{50, 10}, vmath.Vec2{})
	if !testArena.TouchesWall(b, WallLower) {
		t.Error("Expected body at radius distance to touch Lower wall")
	}
	b.Position = vmath.Vec2{50, 10.5}
	if testArena.TouchesWall(b, WallLower) {
		t.Error("Expected body beyond radius not to touch Lower wall")
	}
	b.Position = vmath.Vec2{50, -40}
	if testArena.TouchesWall(b, WallLower) {
		t.Error("Expected body far past the line not to touch by projection distance")
	}
}

func TestArenaContains(t *testing.T) {
	if !testArena.Contains(vmath.Vec2{0, 100}) {
		t.Error("Expected corner to be contained")
	}
	if testArena.Contains(vmath.Vec2{-0.1, 50}) {
		t.Error("Expected outside point to be rejected")
	}
}
