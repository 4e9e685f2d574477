package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the hardcoded Breakout configuration.
// It mirrors defaults/breakout.yaml and is the last fallback of the loader.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Field: FieldConfig{
			Width:  480,
			Height: 360,
		},
		Paddle: PaddleConfig{
			Width:         75,
			Height:        10,
			BottomOffset:  30,
			Speed:         8,
			Smoothing:     0.3,
			ExtendedWidth: 112,
			ExtendTicks:   600, // 10 s
		},
		Ball: BallConfig{
			Radius:      4,
			BaseSpeed:   3.0,
			AttachGap:   5,
			TrailLength: 10,
		},
		Bricks: BricksConfig{
			Width:   45,
			Height:  15,
			Padding: 2,
			Top:     40,
		},
		PowerUps: PowerUpConfig{
			Radius:         8,
			FallSpeed:      2,
			SpawnChance:    0.1,
			Bonus:          150,
			DespawnMargin:  20,
			SlowMultiplier: 0.5,
			FastMultiplier: 1.25,
			SlowTicks:      480, // 8 s
			FastTicks:      360, // 6 s
		},
		Gameplay: GameplayConfig{
			Lives:          3,
			MaxLives:       3,
			CountdownTicks: 300, // 5 s
			NextLevelTicks: 180, // 3 s
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			SpeedPerLevel: 0.2,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "breakout", "breakout_endless":
		return defaultBreakoutYAML
	default:
		return nil
	}
}
