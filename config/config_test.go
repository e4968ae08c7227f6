package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/collider/parameter"
	"github.com/lixenwraith/collider/physics"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{EnvAudioEnabled, EnvVolume, EnvFPS, EnvRestitution, EnvPlanet} {
		t.Setenv(k, "")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Sim.FPS != parameter.FPS {
		t.Errorf("Expected FPS %d, got %d", parameter.FPS, cfg.Sim.FPS)
	}
	if cfg.Sim.Restitution != 1 {
		t.Errorf("Expected restitution 1, got %v", cfg.Sim.Restitution)
	}
	if !cfg.Gravity.Enabled || cfg.Gravity.Planet != "EARTH" {
		t.Errorf("Expected EARTH gravity on, got %+v", cfg.Gravity)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if cfg.Sim.FPS != parameter.FPS {
		t.Errorf("Expected default FPS, got %d", cfg.Sim.FPS)
	}
}

func TestLoadFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "collider.toml")
	data := `
[sim]
fps = 60
restitution = 0.8

[gravity]
enabled = false
planet = ""
g = 12.5
direction = "+x"

[audio]
enabled = false

[[ball]]
color = "#ff8800"
radius = 12.0
density = 2.0
position = [100.0, 200.0]
velocity = [30.0, -10.0]

[[ball]]
radius = 5.0
density = 1.0
position = [300.0, 300.0]
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if cfg.Sim.FPS != 60 || cfg.Sim.Restitution != 0.8 {
		t.Errorf("Expected sim overrides, got %+v", cfg.Sim)
	}
	g, _ := cfg.Gravity.Magnitude()
	if g != 12.5 {
		t.Errorf("Expected custom g 12.5, got %v", g)
	}
	if d, _ := cfg.Gravity.Bearing(); d != physics.Right {
		t.Errorf("Expected Right, got %v", d)
	}
	if len(cfg.Balls) != 2 {
		t.Fatalf("Expected 2 balls, got %d", len(cfg.Balls))
	}
	req, err := cfg.Balls[0].Request()
	if err != nil {
		t.Fatal(err)
	}
	if req.Color.Hex() != "#ff8800" || req.Velocity[1] != -10 {
		t.Errorf("Unexpected first ball request %+v", req)
	}
	req, _ = cfg.Balls[1].Request()
	if req.Color.Hex() != "#ffffff" {
		t.Errorf("Expected default white, got %s", req.Color.Hex())
	}
	// Keys absent from the file keep defaults
	if cfg.Audio.Volume != parameter.ToneVolumeDefault {
		t.Errorf("Expected default volume, got %v", cfg.Audio.Volume)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "collider.toml")
	os.WriteFile(path, []byte("[sim]\nframes = 3\n"), 0644)

	if _, err := Load(path); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Expected ErrUnknownKey, got %v", err)
	}
}

func TestLoadRejectsMalformed(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "collider.toml")
	os.WriteFile(path, []byte("[sim\nfps = 3\n"), 0644)

	if _, err := Load(path); err == nil {
		t.Error("Expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"fps", "[sim]\nfps = 0\n", ErrInvalidFPS},
		{"restitution", "[sim]\nrestitution = 1.5\n", ErrRestitution},
		{"planet", "[gravity]\nplanet = \"krypton\"\n", ErrUnknownPlanet},
		{"custom g", "[gravity]\nplanet = \"\"\ng = 500.0\n", ErrGravityRange},
		{"direction", "[gravity]\ndirection = \"north\"\n", ErrUnknownBearing},
	}
	for _, tt := range tests {
		if _, err := Parse(tt.data); !errors.Is(err, tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, err)
		}
	}

	if _, err := Parse("[[ball]]\nradius = 0.0\ndensity = 1.0\nposition = [100.0, 100.0]\n"); err == nil {
		t.Error("Expected invalid ball to fail validation")
	}
	if _, err := Parse("[[ball]]\nradius = 5.0\ndensity = 1.0\nposition = [1000.0, 100.0]\n"); err == nil {
		t.Error("Expected out-of-arena ball to fail validation")
	}
}

func TestPlanetCaseInsensitive(t *testing.T) {
	cfg, err := Parse("[gravity]\nplanet = \"jupiter\"\n")
	if err != nil {
		t.Fatal(err)
	}
	if g, _ := cfg.Gravity.Magnitude(); g != 25.935 {
		t.Errorf("Expected 25.935, got %v", g)
	}
}

func TestApplyEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvAudioEnabled, "false")
	t.Setenv(EnvVolume, "150")
	t.Setenv(EnvFPS, "30")
	t.Setenv(EnvRestitution, "0.25")
	t.Setenv(EnvPlanet, "mars")

	cfg := Default()
	ApplyEnv(cfg)

	if cfg.Audio.Enabled {
		t.Error("Expected audio disabled")
	}
	if cfg.Audio.Volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", cfg.Audio.Volume)
	}
	if cfg.Sim.FPS != 30 || cfg.Sim.Restitution != 0.25 {
		t.Errorf("Expected sim overrides, got %+v", cfg.Sim)
	}
	if g, _ := cfg.Gravity.Magnitude(); g != 3.728 {
		t.Errorf("Expected MARS gravity, got %v", g)
	}
}

func TestApplyEnvIgnoresInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvFPS, "-5")
	t.Setenv(EnvVolume, "loud")

	cfg := Default()
	ApplyEnv(cfg)

	if cfg.Sim.FPS != parameter.FPS {
		t.Errorf("Expected default FPS kept, got %d", cfg.Sim.FPS)
	}
	if cfg.Audio.Volume != parameter.ToneVolumeDefault {
		t.Errorf("Expected default volume kept, got %v", cfg.Audio.Volume)
	}
}

func TestParseRejectsUnknownKey(t *testing.T) {
	if _, err := Parse("[audio]\nvolum = 0.3\n"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Expected ErrUnknownKey, got %v", err)
	}
	if _, err := Parse("[[ball]]\nradius = 5.0\ndensity = 1.0\nposition = [100.0, 100.0]\nmass = 3.0\n"); !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Expected ErrUnknownKey for ball field, got %v", err)
	}
}
