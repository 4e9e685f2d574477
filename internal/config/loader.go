package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.breakout/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
//
// Files are decoded over the defaults, so a partial file only overrides the keys it names.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultBreakoutConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "breakout.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBreakoutYAML, &cfg); err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file. Missing or malformed files are skipped.
func tryLoad(path string) (BreakoutConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BreakoutConfig{}, false
	}
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".breakout", "configs", filename)
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Ball.BaseSpeed = 2.5
		cfg.Paddle.Width = 90
		cfg.Paddle.ExtendedWidth = 135
		cfg.PowerUps.SpawnChance = 0.15
		cfg.Difficulty.MaxSpeed = 4.0
	case DifficultyHard:
		cfg.Ball.BaseSpeed = 3.5
		cfg.Paddle.Width = 60
		cfg.Paddle.ExtendedWidth = 90
		cfg.PowerUps.SpawnChance = 0.07
		cfg.Difficulty.SpeedPerLevel = 0.25
	}
}

// Validate replaces nonsensical values with defaults and returns the
// names of the fields it corrected.
func (c *BreakoutConfig) Validate() []string {
	def := DefaultBreakoutConfig()
	var fixed []string

	pos := func(name string, v *float64, fallback float64) {
		if !(*v > 0) {
			*v = fallback
			fixed = append(fixed, name)
		}
	}
	posInt := func(name string, v *int, fallback int) {
		if *v <= 0 {
			*v = fallback
			fixed = append(fixed, name)
		}
	}

	pos("field.width", &c.Field.Width, def.Field.Width)
	pos("field.height", &c.Field.Height, def.Field.Height)

	pos("paddle.width", &c.Paddle.Width, def.Paddle.Width)
	pos("paddle.height", &c.Paddle.Height, def.Paddle.Height)
	pos("paddle.speed", &c.Paddle.Speed, def.Paddle.Speed)
	if c.Paddle.Width > c.Field.Width {
		c.Paddle.Width = c.Field.Width
		fixed = append(fixed, "paddle.width")
	}
	if c.Paddle.Smoothing <= 0 || c.Paddle.Smoothing > 1 {
		c.Paddle.Smoothing = def.Paddle.Smoothing
		fixed = append(fixed, "paddle.smoothing")
	}
	if c.Paddle.ExtendedWidth < c.Paddle.Width || c.Paddle.ExtendedWidth > c.Field.Width {
		c.Paddle.ExtendedWidth = min(c.Paddle.Width*1.5, c.Field.Width)
		fixed = append(fixed, "paddle.extended_width")
	}
	if c.Paddle.BottomOffset < c.Paddle.Height || c.Paddle.BottomOffset >= c.Field.Height {
		c.Paddle.BottomOffset = def.Paddle.BottomOffset
		fixed = append(fixed, "paddle.bottom_offset")
	}
	posInt("paddle.extend_ticks", &c.Paddle.ExtendTicks, def.Paddle.ExtendTicks)

	pos("ball.radius", &c.Ball.Radius, def.Ball.Radius)
	pos("ball.base_speed", &c.Ball.BaseSpeed, def.Ball.BaseSpeed)
	if c.Ball.AttachGap < 0 {
		c.Ball.AttachGap = def.Ball.AttachGap
		fixed = append(fixed, "ball.attach_gap")
	}
	if c.Ball.TrailLength < 0 {
		c.Ball.TrailLength = def.Ball.TrailLength
		fixed = append(fixed, "ball.trail_length")
	}

	pos("bricks.width", &c.Bricks.Width, def.Bricks.Width)
	pos("bricks.height", &c.Bricks.Height, def.Bricks.Height)
	if c.Bricks.Padding < 0 {
		c.Bricks.Padding = def.Bricks.Padding
		fixed = append(fixed, "bricks.padding")
	}
	if c.Bricks.Top < 0 {
		c.Bricks.Top = def.Bricks.Top
		fixed = append(fixed, "bricks.top")
	}

	pos("powerups.radius", &c.PowerUps.Radius, def.PowerUps.Radius)
	pos("powerups.fall_speed", &c.PowerUps.FallSpeed, def.PowerUps.FallSpeed)
	pos("powerups.slow_multiplier", &c.PowerUps.SlowMultiplier, def.PowerUps.SlowMultiplier)
	pos("powerups.fast_multiplier", &c.PowerUps.FastMultiplier, def.PowerUps.FastMultiplier)
	if c.PowerUps.SpawnChance < 0 || c.PowerUps.SpawnChance > 1 {
		c.PowerUps.SpawnChance = def.PowerUps.SpawnChance
		fixed = append(fixed, "powerups.spawn_chance")
	}
	if c.PowerUps.Bonus < 0 {
		c.PowerUps.Bonus = def.PowerUps.Bonus
		fixed = append(fixed, "powerups.bonus")
	}
	if c.PowerUps.DespawnMargin < 0 {
		c.PowerUps.DespawnMargin = def.PowerUps.DespawnMargin
		fixed = append(fixed, "powerups.despawn_margin")
	}
	posInt("powerups.slow_ticks", &c.PowerUps.SlowTicks, def.PowerUps.SlowTicks)
	posInt("powerups.fast_ticks", &c.PowerUps.FastTicks, def.PowerUps.FastTicks)

	posInt("gameplay.max_lives", &c.Gameplay.MaxLives, def.Gameplay.MaxLives)
	if c.Gameplay.MaxLives > def.Gameplay.MaxLives {
		c.Gameplay.MaxLives = def.Gameplay.MaxLives
		fixed = append(fixed, "gameplay.max_lives")
	}
	if c.Gameplay.Lives <= 0 || c.Gameplay.Lives > c.Gameplay.MaxLives {
		c.Gameplay.Lives = c.Gameplay.MaxLives
		fixed = append(fixed, "gameplay.lives")
	}
	if c.Gameplay.CountdownTicks < 0 {
		c.Gameplay.CountdownTicks = def.Gameplay.CountdownTicks
		fixed = append(fixed, "gameplay.countdown_ticks")
	}
	if c.Gameplay.NextLevelTicks < 0 {
		c.Gameplay.NextLevelTicks = def.Gameplay.NextLevelTicks
		fixed = append(fixed, "gameplay.next_level_ticks")
	}

	if c.Difficulty.SpeedPerLevel < 0 {
		c.Difficulty.SpeedPerLevel = def.Difficulty.SpeedPerLevel
		fixed = append(fixed, "difficulty.speed_per_level")
	}
	if c.Difficulty.MaxSpeed < 0 {
		c.Difficulty.MaxSpeed = 0
		fixed = append(fixed, "difficulty.max_speed")
	}

	return fixed
}
