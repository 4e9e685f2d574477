package config

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg BreakoutConfig
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		t.Fatalf("embedded yaml does not parse: %v", err)
	}
	if cfg != DefaultBreakoutConfig() {
		t.Errorf("embedded defaults differ from DefaultBreakoutConfig:\n%+v\n%+v", cfg, DefaultBreakoutConfig())
	}
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	if fixed := cfg.Validate(); len(fixed) != 0 {
		t.Errorf("defaults should validate cleanly, corrected %v", fixed)
	}
}

func TestLoadBreakoutCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "breakout.yaml")
	data := []byte("paddle:\n  width: 100\nball:\n  base_speed: 4.5\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadBreakout(path)
	if err != nil {
		t.Fatalf("LoadBreakout: %v", err)
	}
	if cfg.Paddle.Width != 100 {
		t.Errorf("paddle width = %v, expected 100", cfg.Paddle.Width)
	}
	if cfg.Ball.BaseSpeed != 4.5 {
		t.Errorf("base speed = %v, expected 4.5", cfg.Ball.BaseSpeed)
	}
	// Untouched keys keep their defaults
	if cfg.Field.Width != 480 || cfg.Bricks.Width != 45 {
		t.Errorf("defaults lost: field %v bricks %v", cfg.Field.Width, cfg.Bricks.Width)
	}
}

func TestLoadBreakoutMissingCustomPath(t *testing.T) {
	_, err := LoadBreakout(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Error("expected error for missing custom config")
	}
}

func TestLoadBreakoutMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("paddle: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadBreakout(path)
	if err == nil {
		t.Error("expected parse error")
	}
	if cfg != DefaultBreakoutConfig() {
		t.Error("malformed config should fall back to defaults")
	}
}

func TestValidateCorrections(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	cfg.Ball.BaseSpeed = -1
	cfg.PowerUps.SpawnChance = 2
	cfg.Gameplay.Lives = 7
	cfg.Paddle.Smoothing = 0

	fixed := cfg.Validate()

	for _, name := range []string{"ball.base_speed", "powerups.spawn_chance", "gameplay.lives", "paddle.smoothing"} {
		if !slices.Contains(fixed, name) {
			t.Errorf("expected %s to be corrected, got %v", name, fixed)
		}
	}
	if cfg.Ball.BaseSpeed != 3.0 {
		t.Errorf("base speed = %v, expected 3.0", cfg.Ball.BaseSpeed)
	}
	if cfg.Gameplay.Lives != 3 {
		t.Errorf("lives = %d, expected 3", cfg.Gameplay.Lives)
	}
}

func TestApplyBreakoutPreset(t *testing.T) {
	tests := []struct {
		preset      DifficultyPreset
		paddleWidth float64
		speed       float64
		enabled     bool
	}{
		{DifficultyEasy, 90, 2.5, true},
		{DifficultyNormal, 75, 3.0, true},
		{DifficultyHard, 60, 3.5, true},
		{DifficultyFixed, 75, 3.0, false},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultBreakoutConfig()
			ApplyBreakoutPreset(&cfg, tc.preset)
			if cfg.Paddle.Width != tc.paddleWidth {
				t.Errorf("paddle width = %v, expected %v", cfg.Paddle.Width, tc.paddleWidth)
			}
			if cfg.Ball.BaseSpeed != tc.speed {
				t.Errorf("base speed = %v, expected %v", cfg.Ball.BaseSpeed, tc.speed)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("difficulty enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
			if fixed := cfg.Validate(); len(fixed) != 0 {
				t.Errorf("preset %s produced invalid config: %v", tc.preset, fixed)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if p, ok := ParsePreset(""); !ok || p != DifficultyNormal {
		t.Errorf("empty preset = %q, %v", p, ok)
	}
	if _, ok := ParsePreset("nightmare"); ok {
		t.Error("unknown preset should be rejected")
	}
	if p, ok := ParsePreset("hard"); !ok || p != DifficultyHard {
		t.Errorf("hard preset = %q, %v", p, ok)
	}
}

func TestSpeedCurve(t *testing.T) {
	cfg := DefaultBreakoutConfig()
	curve := NewSpeedCurve(cfg.Ball.BaseSpeed, cfg.Difficulty)

	tests := []struct {
		level    int
		expected float64
	}{
		{0, 3.0},
		{1, 3.0},
		{2, 3.2},
		{8, 4.4},
	}
	for _, tc := range tests {
		got := curve.Speed(tc.level)
		if diff := got - tc.expected; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("Speed(%d) = %v, expected %v", tc.level, got, tc.expected)
		}
	}

	// Monotonic non-decreasing
	prev := curve.Speed(1)
	for level := 2; level <= 20; level++ {
		s := curve.Speed(level)
		if s < prev {
			t.Fatalf("Speed(%d) = %v decreased from %v", level, s, prev)
		}
		prev = s
	}
}

func TestSpeedCurveCapAndFixed(t *testing.T) {
	capped := NewSpeedCurve(3.0, DifficultyConfig{Enabled: true, SpeedPerLevel: 0.5, MaxSpeed: 4.0})
	if s := capped.Speed(10); s != 4.0 {
		t.Errorf("capped speed = %v, expected 4.0", s)
	}

	fixed := NewSpeedCurve(3.0, DifficultyConfig{Enabled: false, SpeedPerLevel: 0.2})
	if fixed.IsEnabled() {
		t.Error("disabled curve reports enabled")
	}
	if s := fixed.Speed(8); s != 3.0 {
		t.Errorf("fixed speed = %v, expected 3.0", s)
	}
}

func TestGetDefaultYAML(t *testing.T) {
	if len(GetDefaultYAML("breakout")) == 0 {
		t.Error("breakout defaults missing")
	}
	if GetDefaultYAML("snake") != nil {
		t.Error("unknown game should have no defaults")
	}
}
