package physics

import "fmt"

// CollisionKind distinguishes wall contacts from body pairs
type CollisionKind uint8

const (
	KindWall CollisionKind = iota
	KindBody
)

// CollisionEvent records one contact resolved during a tick
// Events are ephemeral; Body and Other stay live handles and may change after the tick
type CollisionEvent struct {
	Kind  CollisionKind
	Body  *Body
	Other *Body // nil for wall contacts
	Wall  Wall  // valid for KindWall

	// Frequency is the feedback tone class in Hz
	Frequency int

	// Description identifies both parties using their state at contact time
	Description string
}

func (e CollisionEvent) String() string {
	return e.Description
}

func newWallEvent(b *Body, w Wall) CollisionEvent {
	return CollisionEvent{
		Kind:        KindWall,
		Body:        b,
		Wall:        w,
		Frequency:   WallFrequency(b.radius),
		Description: fmt.Sprintf("Collision: %s with %s Wall", b, w),
	}
}

func newPairEvent(b1, b2 *Body) CollisionEvent {
	return CollisionEvent{
		Kind:        KindBody,
		Body:        b1,
		Other:       b2,
		Frequency:   PairFrequency(b1.radius, b2.radius),
		Description: fmt.Sprintf("Collision: %s with %s", b1, b2),
	}
}
