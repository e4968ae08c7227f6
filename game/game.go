package game

import (
	"fmt"
	"math"
	"math/rand"
	"slices"
	"strings"
	"time"

	"github.com/lixenwraith/collider/config"
	"github.com/lixenwraith/collider/engine"
	"github.com/lixenwraith/collider/parameter"
	"github.com/lixenwraith/collider/physics"
	"github.com/lixenwraith/collider/render"
	"github.com/lixenwraith/collider/spawn"
	"github.com/lixenwraith/collider/vmath"
)

// TonePlayer plays collision and interface beeps
type TonePlayer interface {
	Play(freq int, d time.Duration) bool
	ToggleMute() bool
}

type silentPlayer struct{ muted bool }

func (s *silentPlayer) Play(int, time.Duration) bool { return false }
func (s *silentPlayer) ToggleMute() bool             { s.muted = !s.muted; return !s.muted }

// Game holds the interactive state around a World
// All methods are meant for a single goroutine, the World handles its own locking
type Game struct {
	world *engine.World
	tones TonePlayer
	rng   *rand.Rand

	fps          int
	toneDuration time.Duration

	gravityOn   bool
	planet      int // index into planets, -1 for a custom value
	planets     []string
	customG     float64
	direction   physics.Direction
	restitution float64
	paused      bool
	muted       bool

	showVectors  bool
	showBox      bool
	showControls bool

	radius      *spawn.Oscillator
	density     *spawn.Oscillator
	densityHold bool
	densityNow  float64

	preview  *spawn.Request // ball being sized before release, Position is its center
	cursor   vmath.Vec2
	buttons  buttonState
	selected *physics.Body
}

// New builds a game from cfg and spawns its preset balls into world
// A nil tones plays nothing
func New(cfg *config.Config, world *engine.World, tones TonePlayer) (*Game, error) {
	if tones == nil {
		tones = &silentPlayer{}
	}

	seed := cfg.Sim.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	dir, err := cfg.Gravity.Bearing()
	if err != nil {
		return nil, err
	}
	g, err := cfg.Gravity.Magnitude()
	if err != nil {
		return nil, err
	}

	game := &Game{
		world:        world,
		tones:        tones,
		rng:          rand.New(rand.NewSource(seed)),
		fps:          cfg.Sim.FPS,
		toneDuration: time.Duration(cfg.Audio.ToneMs) * time.Millisecond,
		gravityOn:    cfg.Gravity.Enabled,
		planet:       -1,
		planets:      parameter.PlanetNames(),
		customG:      g,
		direction:    dir,
		restitution:  cfg.Sim.Restitution,
		paused:       cfg.Sim.Paused,
		radius:       spawn.NewOscillator(parameter.RadiusMin, parameter.RadiusMax, parameter.RadiusStep),
		density:      spawn.NewOscillator(parameter.DensityMin, parameter.DensityMax, parameter.DensityStep),
		densityNow:   parameter.DensityMin,
	}
	if cfg.Gravity.Planet != "" {
		game.planet = slices.Index(game.planets, strings.ToUpper(strings.TrimSpace(cfg.Gravity.Planet)))
	}

	for i, ball := range cfg.Balls {
		req, err := ball.Request()
		if err != nil {
			return nil, fmt.Errorf("ball %d: %w", i, err)
		}
		b, err := spawn.Apply(world, req)
		if err != nil {
			return nil, fmt.Errorf("ball %d: %w", i, err)
		}
		logf(levelInfo, "Created: %s", b)
	}

	return game, nil
}

// Gravity returns g in m/s² before tick scaling
func (g *Game) Gravity() float64 {
	if g.planet >= 0 {
		return parameter.Planets[g.planets[g.planet]]
	}
	return g.customG
}

// PlanetName returns the selected planet, empty for a custom g
func (g *Game) PlanetName() string {
	if g.planet >= 0 {
		return g.planets[g.planet]
	}
	return ""
}

// Params returns the tick input for the current state
func (g *Game) Params() engine.Params {
	return engine.Params{
		GravityEnabled: g.gravityOn,
		Gravity:        g.Gravity() * float64(g.fps),
		Direction:      g.direction,
		Restitution:    g.restitution,
		Dt:             engine.DtFromInterval(time.Second / time.Duration(g.fps)),
		Paused:         g.paused || g.showControls,
	}
}

// Paused reports whether ticks are currently suspended
func (g *Game) Paused() bool {
	return g.paused || g.showControls
}

// Selected returns the selected ball or nil
func (g *Game) Selected() *physics.Body {
	return g.selected
}

// Step advances the spawn oscillators and runs one world tick
// Every collision is logged and sounded
func (g *Game) Step() []physics.CollisionEvent {
	if g.preview != nil {
		g.preview.Radius = g.radius.Next()
	}
	if g.densityHold {
		g.densityNow = g.density.Next()
	}

	events := g.world.Tick(g.Params())
	for _, e := range events {
		logf(levelInfo, "%s", e)
		g.tones.Play(e.Frequency, g.toneDuration)
	}
	return events
}

// Frame snapshots the state for the renderer
func (g *Game) Frame() *render.Frame {
	f := &render.Frame{
		Arena:        g.world.Arena(),
		Side:         parameter.ArenaSide,
		SpawnLower:   parameter.SpawnLower,
		SpawnUpper:   parameter.SpawnUpper,
		ShowVectors:  g.showVectors,
		ShowBox:      g.showBox,
		ShowControls: g.showControls,
		Density:      g.densityNow,
		DensityHold:  g.densityHold,
		Status: render.Status{
			GravityOn:   g.gravityOn,
			Direction:   g.direction,
			Planet:      g.PlanetName(),
			G:           g.Gravity(),
			Restitution: g.restitution,
			Paused:      g.Paused(),
			Muted:       g.muted,
		},
	}

	g.world.View(func(bodies []*physics.Body) {
		f.Bodies = make([]render.BodyView, len(bodies))
		for i, b := range bodies {
			f.Bodies[i] = render.ViewOf(b)
			if b == g.selected {
				f.Selected = &f.Bodies[i]
			}
		}
	})

	if p := g.preview; p != nil {
		f.Preview = &render.Preview{
			Center: p.Position,
			Radius: p.Radius,
			Color:  p.Color,
			Cursor: g.cursor,
		}
	}
	return f
}

// inSpawnBox reports whether p may be used as a new ball center
func inSpawnBox(p vmath.Vec2) bool {
	return p[0] >= parameter.SpawnLower && p[0] <= parameter.SpawnUpper &&
		p[1] >= parameter.SpawnLower && p[1] <= parameter.SpawnUpper
}

func (g *Game) blip() {
	g.tones.Play(parameter.BlipFrequency, parameter.BlipDuration)
}

// roundStep snaps float drift after repeated fixed-size steps
func roundStep(v float64) float64 {
	return math.Round(v*1000) / 1000
}
