package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/lixenwraith/collider/engine"
	"github.com/lixenwraith/collider/parameter"
	"github.com/lixenwraith/collider/physics"
	"github.com/lixenwraith/collider/spawn"
	"github.com/lixenwraith/collider/vmath"
)

var (
	duration = flag.Duration("duration", 10*time.Second, "Benchmark duration")
	balls    = flag.Int("balls", 200, "Number of balls")
	seed     = flag.Int64("seed", 1, "Scene seed")
	gravity  = flag.Bool("gravity", true, "Earth gravity on")
)

// populate spawns n random balls inside the spawn box
func populate(w *engine.World, n int, rng *rand.Rand) {
	span := float64(parameter.SpawnUpper - parameter.SpawnLower)
	for i := 0; i < n; i++ {
		radius := parameter.RadiusMin + rng.Float64()*(parameter.RadiusMax-parameter.RadiusMin)
		density := parameter.DensityMin + rng.Float64()*(parameter.DensityMax-parameter.DensityMin)
		pos := vmath.Vec2{parameter.SpawnLower + rng.Float64()*span, parameter.SpawnLower + rng.Float64()*span}
		vel := vmath.Vec2{rng.Float64()*400 - 200, rng.Float64()*400 - 200}
		w.Spawn(spawn.RandomColor(rng), radius, pos, vel, density)
	}
}

func main() {
	flag.Parse()

	// Signal handling
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	world := engine.NewWorld(physics.Arena{Lower: parameter.WallLower, Upper: parameter.WallUpper})
	populate(world, *balls, rand.New(rand.NewSource(*seed)))

	params := engine.Params{
		GravityEnabled: *gravity,
		Gravity:        parameter.Planets[parameter.GravityDefaultPlanet] * parameter.FPS,
		Direction:      physics.Down,
		Restitution:    parameter.RestitutionDefault,
		Dt:             engine.DtFromInterval(parameter.TickInterval),
	}

	var ticks, collisions int64
	var slowest time.Duration
	start := time.Now()

loop:
	for time.Since(start) < *duration {
		select {
		case <-stop:
			break loop
		default:
		}

		t0 := time.Now()
		collisions += int64(len(world.Tick(params)))
		slowest = max(slowest, time.Since(t0))
		ticks++
	}

	elapsed := time.Since(start)
	if ticks == 0 {
		fmt.Println("No ticks completed")
		return
	}

	fmt.Printf("Benchmark Results:\n")
	fmt.Printf("  Balls:        %d (%d pairs)\n", world.Len(), world.Len()*(world.Len()-1)/2)
	fmt.Printf("  Total Ticks:  %d\n", ticks)
	fmt.Printf("  Total Time:   %v\n", elapsed)
	fmt.Printf("  Ticks/sec:    %.2f (realtime needs %d)\n", float64(ticks)/elapsed.Seconds(), parameter.FPS)
	fmt.Printf("  Avg Tick:     %v\n", elapsed/time.Duration(ticks))
	fmt.Printf("  Slowest Tick: %v\n", slowest)
	fmt.Printf("  Collisions:   %d\n", collisions)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("  Total Alloc:  %d bytes\n", m.TotalAlloc)
	fmt.Printf("  Mallocs:      %d\n", m.Mallocs)
}
