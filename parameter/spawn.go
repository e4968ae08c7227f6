package parameter

// Spawn preview radius oscillation 2 -> 30 -> 2
const (
	RadiusMin  = 2.0
	RadiusMax  = 30.0
	RadiusStep = 0.5
)

// Density oscillation 1 -> 15 -> 1
const (
	DensityMin  = 1.0
	DensityMax  = 15.0
	DensityStep = 0.25
)
