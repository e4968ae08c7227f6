package spawn

import (
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// RandomColor returns a uniformly random RGB color
func RandomColor(rng *rand.Rand) colorful.Color {
	return colorful.Color{
		R: float64(rng.Intn(256)) / 255,
		G: float64(rng.Intn(256)) / 255,
		B: float64(rng.Intn(256)) / 255,
	}
}

// ParseColor accepts "#rrggbb"
func ParseColor(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("color %q: %w", hex, err)
	}
	return c, nil
}
