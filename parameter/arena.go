package parameter

import "time"

// Arena geometry, in world units (one unit per canvas pixel)
const (
	// ArenaSide is the edge length of the square canvas
	ArenaSide = 625

	// ArenaBorder is the drawn frame thickness
	ArenaBorder = 20

	// WallLower and WallUpper are the wall positions shared by both axes
	WallLower = ArenaBorder - 7
	WallUpper = ArenaSide - ArenaBorder + 10

	// SpawnLower and SpawnUpper bound the region where a new ball center may be placed
	SpawnLower = ArenaBorder + RadiusMax
	SpawnUpper = ArenaSide - SpawnLower
)

// Simulation timing
const (
	// FPS is the default tick rate; gravity is scaled by it
	FPS = 100

	// TickInterval is the default fixed tick duration
	TickInterval = time.Second / FPS
)

// Restitution defaults and interactive step
const (
	RestitutionDefault = 1.0
	RestitutionStep    = 0.05
)
