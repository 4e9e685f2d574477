// Package breakout implements a brick breaker: a ball bouncing between a
// player paddle and a field of bricks, with power-ups, lives and eight
// leveled layouts.
//
// All simulation happens in field units (480x360 by default) on a single
// tick loop. Rendering maps field units onto screen cells.
package breakout

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/tui-breakout/internal/config"
)

// Field is the logical playfield size.
type Field struct {
	W, H float64
}

// GameMode represents the game mode.
type GameMode int

const (
	ModeCampaign GameMode = iota // Play through levels, win at end
	ModeEndless                  // Layouts cycle forever, score until game over
)

// String returns the mode name used on the command line.
func (m GameMode) String() string {
	if m == ModeEndless {
		return "endless"
	}
	return "campaign"
}

// Fallbacks used when state turns out to be unusable.
const (
	fallbackBaseSpeed  = 3.0
	fallbackMultiplier = 1.0
	fallbackBallLift   = 50.0 // fallback ball height above the field bottom
)

var (
	// configPath stores the custom config path set via CLI
	configPath string

	// difficultyPreset stores the difficulty preset set via CLI
	difficultyPreset config.DifficultyPreset

	// startLevel is the level a new game begins at
	startLevel = 1

	// defaultSink receives events from games created after it is set
	defaultSink EventSink

	logger = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, ok := config.ParsePreset(preset)
	if !ok || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = p
}

// SetStartLevel sets the level new games start at.
func SetStartLevel(level int) {
	startLevel = level
}

// SetEventSink sets the sink attached to games on Reset.
func SetEventSink(sink EventSink) {
	defaultSink = sink
}

// SetLogger routes diagnostics of self-healing corrections. Nil discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}
