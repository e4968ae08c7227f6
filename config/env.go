package config

import (
	"os"
	"strconv"
)

// Environment variable overrides
const (
	EnvAudioEnabled = "COLLIDER_AUDIO_ENABLED"
	EnvVolume       = "COLLIDER_VOLUME"
	EnvFPS          = "COLLIDER_FPS"
	EnvRestitution  = "COLLIDER_RESTITUTION"
	EnvPlanet       = "COLLIDER_PLANET"
)

// ApplyEnv overrides cfg from the environment, unparsable values are ignored
func ApplyEnv(cfg *Config) {
	if enabled := os.Getenv(EnvAudioEnabled); enabled != "" {
		if val, err := strconv.ParseBool(enabled); err == nil {
			cfg.Audio.Enabled = val
		}
	}

	// Volume 0-100 converted to 0.0-1.0
	if volume := os.Getenv(EnvVolume); volume != "" {
		if val, err := strconv.Atoi(volume); err == nil {
			cfg.Audio.Volume = float64(val) / 100.0
			if cfg.Audio.Volume < 0 {
				cfg.Audio.Volume = 0
			}
			if cfg.Audio.Volume > 1 {
				cfg.Audio.Volume = 1
			}
		}
	}

	if fps := os.Getenv(EnvFPS); fps != "" {
		if val, err := strconv.Atoi(fps); err == nil && val > 0 {
			cfg.Sim.FPS = val
		}
	}

	if e := os.Getenv(EnvRestitution); e != "" {
		if val, err := strconv.ParseFloat(e, 64); err == nil {
			cfg.Sim.Restitution = val
		}
	}

	if planet := os.Getenv(EnvPlanet); planet != "" {
		cfg.Gravity.Planet = planet
	}
}
