package physics

import "math"

// Feedback frequency classes in Hz
const (
	Freq500  = 500
	Freq750  = 750
	Freq1000 = 1000
	Freq1250 = 1250
	Freq1500 = 1500
	Freq1750 = 1750
)

// WallFrequency classifies a wall hit by the body's radius, tightest bound first
func WallFrequency(radius float64) int {
	switch {
	case radius <= 10:
		return Freq1000
	case radius <= 20:
		return Freq750
	default:
		return Freq500
	}
}

// PairFrequency classifies a body-body hit by the smaller and larger radii
func PairFrequency(radius1, radius2 float64) int {
	r1 := math.Min(radius1, radius2)
	r2 := math.Max(radius1, radius2)

	switch {
	case r1 <= 10:
		switch {
		case r2 <= 10:
			return Freq1250
		case r2 <= 20:
			return Freq1500
		default:
			return Freq1750
		}
	case r1 <= 20:
		if r2 <= 20 {
			return Freq750
		}
		return Freq1000
	default:
		return Freq500
	}
}
