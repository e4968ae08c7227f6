package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/collider/parameter"
	"github.com/lixenwraith/collider/physics"
	"github.com/lixenwraith/collider/spawn"
	"github.com/lixenwraith/collider/vmath"
)

// DefaultPath is the config file looked up when no -config flag is given
const DefaultPath = "collider.toml"

// Sentinel errors
var (
	ErrUnknownKey     = errors.New("unknown config key")
	ErrInvalidFPS     = errors.New("fps must be positive")
	ErrRestitution    = errors.New("restitution must be within [0,1]")
	ErrUnknownPlanet  = errors.New("unknown planet")
	ErrGravityRange   = errors.New("gravity out of range")
	ErrUnknownBearing = errors.New("unknown gravity direction")
)

// Config is the full application configuration
type Config struct {
	Sim     SimConfig     `toml:"sim"`
	Gravity GravityConfig `toml:"gravity"`
	Audio   AudioConfig   `toml:"audio"`
	Log     LogConfig     `toml:"log"`
	Balls   []BallConfig  `toml:"ball"`
}

type SimConfig struct {
	FPS         int     `toml:"fps"`
	Restitution float64 `toml:"restitution"`
	Paused      bool    `toml:"paused"`
	// Seed drives spawn colors, 0 picks a time-based seed
	Seed int64 `toml:"seed"`
}

// GravityConfig selects g by planet name, or by the custom G value when Planet is empty
type GravityConfig struct {
	Enabled   bool    `toml:"enabled"`
	Planet    string  `toml:"planet"`
	G         float64 `toml:"g"`
	Direction string  `toml:"direction"`
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
	// Volume in [0,1]
	Volume float64 `toml:"volume"`
	ToneMs int     `toml:"tone_ms"`
}

type LogConfig struct {
	Enabled bool `toml:"enabled"`
}

// BallConfig is a preset body spawned at startup
type BallConfig struct {
	Color    string     `toml:"color"`
	Radius   float64    `toml:"radius"`
	Density  float64    `toml:"density"`
	Position [2]float64 `toml:"position"`
	Velocity [2]float64 `toml:"velocity"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Sim: SimConfig{
			FPS:         parameter.FPS,
			Restitution: parameter.RestitutionDefault,
		},
		Gravity: GravityConfig{
			Enabled:   true,
			Planet:    parameter.GravityDefaultPlanet,
			Direction: "down",
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  parameter.ToneVolumeDefault,
			ToneMs:  int(parameter.ToneDuration.Milliseconds()),
		},
	}
}

// Load reads path over the defaults, applies environment overrides and validates
// A missing file is not an error
func Load(path string) (*Config, error) {
	cfg := Default()

	meta, err := toml.DecodeFile(path, cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("config %s: %w", path, err)
	default:
		if err := checkUndecoded(meta); err != nil {
			return nil, fmt.Errorf("config %s: %w", path, err)
		}
	}

	ApplyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults without env overrides
func Parse(data string) (*Config, error) {
	cfg := Default()
	meta, err := toml.Decode(data, cfg)
	if err != nil {
		return nil, err
	}
	if err := checkUndecoded(meta); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// checkUndecoded rejects keys that match no Config field
func checkUndecoded(meta toml.MetaData) error {
	undecoded := meta.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	return fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
}

// Validate checks ranges and names
func (c *Config) Validate() error {
	if c.Sim.FPS <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidFPS, c.Sim.FPS)
	}
	if c.Sim.Restitution < 0 || c.Sim.Restitution > 1 {
		return fmt.Errorf("%w: %v", ErrRestitution, c.Sim.Restitution)
	}
	if _, err := c.Gravity.Magnitude(); err != nil {
		return err
	}
	if _, err := c.Gravity.Bearing(); err != nil {
		return err
	}
	arena := physics.Arena{Lower: parameter.WallLower, Upper: parameter.WallUpper}
	for i, b := range c.Balls {
		req, err := b.Request()
		if err != nil {
			return fmt.Errorf("ball %d: %w", i, err)
		}
		if err := req.Validate(arena); err != nil {
			return fmt.Errorf("ball %d: %w", i, err)
		}
	}
	return nil
}

// Magnitude returns g in m/s², unscaled
func (g GravityConfig) Magnitude() (float64, error) {
	if g.Planet != "" {
		v, ok := parameter.LookupPlanet(g.Planet)
		if !ok {
			return 0, fmt.Errorf("%w: %s", ErrUnknownPlanet, g.Planet)
		}
		return v, nil
	}
	if g.G < parameter.GravityCustomMin || g.G > parameter.GravityCustomMax {
		return 0, fmt.Errorf("%w: %v", ErrGravityRange, g.G)
	}
	return g.G, nil
}

// Bearing parses Direction, empty means down
func (g GravityConfig) Bearing() (physics.Direction, error) {
	if g.Direction == "" {
		return physics.Down, nil
	}
	d, ok := physics.ParseDirection(g.Direction)
	if !ok {
		return physics.Down, fmt.Errorf("%w: %s", ErrUnknownBearing, g.Direction)
	}
	return d, nil
}

// Request converts the preset to a spawn request, empty color means white
func (b BallConfig) Request() (spawn.Request, error) {
	req := spawn.Request{
		Radius:   b.Radius,
		Density:  b.Density,
		Position: vmath.Vec2{b.Position[0], b.Position[1]},
		Velocity: vmath.Vec2{b.Velocity[0], b.Velocity[1]},
	}
	req.Color.R, req.Color.G, req.Color.B = 1, 1, 1
	if b.Color != "" {
		c, err := spawn.ParseColor(b.Color)
		if err != nil {
			return spawn.Request{}, err
		}
		req.Color = c
	}
	return req, nil
}
