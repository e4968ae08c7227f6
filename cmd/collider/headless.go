package main

import (
	"fmt"
	"io"

	"github.com/lixenwraith/collider/game"
)

// runHeadless steps g for ticks ticks and writes one line per collision to w
// Returns the number of collisions seen
func runHeadless(g *game.Game, ticks int, w io.Writer) int {
	total := 0
	for tick := 0; tick < ticks; tick++ {
		for _, e := range g.Step() {
			fmt.Fprintf(w, "%d %s\n", tick, e)
			total++
		}
	}
	return total
}
