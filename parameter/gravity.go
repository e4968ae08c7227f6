package parameter

import (
	"sort"
	"strings"
)

// Surface gravity (m/s²) of bodies selectable by name
var Planets = map[string]float64{
	"SUN":       273.71,
	"MERCURY":   3.703,
	"VENUS":     8.872,
	"EARTH":     9.8067,
	"MOON":      1.6250,
	"CERES":     0.28,
	"MARS":      3.728,
	"PHOBOS":    0.0057,
	"DEIMOS":    0.003,
	"JUPITER":   25.935,
	"IO":        1.789,
	"GANYMEDE":  1.426,
	"CALLISTO":  1.236,
	"SATURN":    11.19,
	"TITAN":     1.3455,
	"ENCELADUS": 0.113,
	"URANUS":    9.01,
	"TITANIA":   0.3379,
	"NEPTUNE":   11.28,
	"TRITON":    0.779,
	"PLUTO":     0.61,
	"ERIS":      0.801,
}

// Custom gravity bounds and adjustment step
const (
	GravityDefaultPlanet = "EARTH"
	GravityCustomMin     = 0.0
	GravityCustomMax     = 300.0
	GravityCustomStep    = 0.5
)

// LookupPlanet returns the surface gravity for name, case-insensitive
func LookupPlanet(name string) (float64, bool) {
	g, ok := Planets[strings.ToUpper(strings.TrimSpace(name))]
	return g, ok
}

// PlanetNames returns the table keys sorted by ascending gravity, ties by name
func PlanetNames() []string {
	names := make([]string, 0, len(Planets))
	for name := range Planets {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		gi, gj := Planets[names[i]], Planets[names[j]]
		if gi != gj {
			return gi < gj
		}
		return names[i] < names[j]
	})
	return names
}
