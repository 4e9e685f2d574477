// Package config provides YAML-based game configuration loading and
// difficulty presets for the breakout game.
package config

// BreakoutConfig contains all tunables for a breakout session.
// Distances are in field units, durations in ticks.
type BreakoutConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Paddle     PaddleConfig     `yaml:"paddle"`
	Ball       BallConfig       `yaml:"ball"`
	Bricks     BricksConfig     `yaml:"bricks"`
	PowerUps   PowerUpConfig    `yaml:"powerups"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig defines the logical playfield size.
type FieldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PaddleConfig defines paddle geometry and movement.
type PaddleConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	BottomOffset  float64 `yaml:"bottom_offset"` // distance from field bottom to paddle top
	Speed         float64 `yaml:"speed"`         // targetX step per move command
	Smoothing     float64 `yaml:"smoothing"`     // fraction of remaining distance covered per tick
	ExtendedWidth float64 `yaml:"extended_width"`
	ExtendTicks   int     `yaml:"extend_ticks"`
}

// BallConfig defines ball geometry and launch parameters.
type BallConfig struct {
	Radius      float64 `yaml:"radius"`
	BaseSpeed   float64 `yaml:"base_speed"`
	AttachGap   float64 `yaml:"attach_gap"`   // gap between attached ball and paddle top
	TrailLength int     `yaml:"trail_length"` // cosmetic trail size
}

// BricksConfig defines brick grid geometry.
type BricksConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Padding float64 `yaml:"padding"`
	Top     float64 `yaml:"top"`
}

// PowerUpConfig defines power-up spawning and effects.
type PowerUpConfig struct {
	Radius         float64 `yaml:"radius"`
	FallSpeed      float64 `yaml:"fall_speed"`
	SpawnChance    float64 `yaml:"spawn_chance"` // probability per destroyed brick
	Bonus          int     `yaml:"bonus"`        // flat score per pickup
	DespawnMargin  float64 `yaml:"despawn_margin"`
	SlowMultiplier float64 `yaml:"slow_multiplier"`
	FastMultiplier float64 `yaml:"fast_multiplier"`
	SlowTicks      int     `yaml:"slow_ticks"`
	FastTicks      int     `yaml:"fast_ticks"`
}

// GameplayConfig defines lives and state timers.
type GameplayConfig struct {
	Lives          int `yaml:"lives"`
	MaxLives       int `yaml:"max_lives"`
	CountdownTicks int `yaml:"countdown_ticks"`
	NextLevelTicks int `yaml:"next_level_ticks"`
}

// DifficultyConfig defines how ball speed grows from level to level.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	SpeedPerLevel float64 `yaml:"speed_per_level"`
	MaxSpeed      float64 `yaml:"max_speed"` // 0 means uncapped
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. Empty input means normal.
func ParsePreset(name string) (DifficultyPreset, bool) {
	switch p := DifficultyPreset(name); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, true
	case "":
		return DifficultyNormal, true
	default:
		return DifficultyNormal, false
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
