package config

// SpeedCurve maps a level number to the ball's base speed.
type SpeedCurve struct {
	cfg  DifficultyConfig
	base float64
}

// NewSpeedCurve creates a speed curve starting at base for level 1.
func NewSpeedCurve(base float64, cfg DifficultyConfig) *SpeedCurve {
	return &SpeedCurve{cfg: cfg, base: base}
}

// IsEnabled returns whether speed grows with the level.
func (s *SpeedCurve) IsEnabled() bool {
	return s.cfg.Enabled && s.cfg.SpeedPerLevel > 0
}

// Base returns the level-1 speed.
func (s *SpeedCurve) Base() float64 {
	return s.base
}

// Speed returns base + (level-1) * step, capped at MaxSpeed when set.
// Levels below 1 are treated as level 1.
func (s *SpeedCurve) Speed(level int) float64 {
	if !s.IsEnabled() || level <= 1 {
		return s.base
	}
	speed := s.base + float64(level-1)*s.cfg.SpeedPerLevel
	if s.cfg.MaxSpeed > 0 && speed > s.cfg.MaxSpeed {
		speed = max(s.cfg.MaxSpeed, s.base)
	}
	return speed
}
