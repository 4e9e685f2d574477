package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/registry"
)

// Game adapts a Session to the registry.Game interface: it loads the
// config, maps platform actions to session commands and renders snapshots.
type Game struct {
	mode       GameMode
	session    *Session
	runtime    core.RuntimeConfig
	highScore  int
	startLevel int // 0 uses the package default
	sink       EventSink
}

// New creates a new Breakout game instance (campaign mode).
func New() *Game {
	return &Game{mode: ModeCampaign}
}

// NewEndless creates a new Breakout game instance in endless mode.
func NewEndless() *Game {
	return &Game{mode: ModeEndless}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeEndless {
		return "breakout_endless"
	}
	return "breakout"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeEndless {
		return "Breakout (Endless)"
	}
	return "Breakout"
}

// loadConfig loads, adjusts and validates the game config.
func loadConfig() config.BreakoutConfig {
	cfg, err := config.LoadBreakout(configPath)
	if err != nil {
		logger.Warn("cannot load config, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultBreakoutConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyBreakoutPreset(&cfg, difficultyPreset)
	}

	if fixed := cfg.Validate(); len(fixed) > 0 {
		logger.Warn("config values out of range were reset", "fields", fixed)
	}
	return cfg
}

// Reset creates a fresh session on the START screen.
// The high score carries over between sessions.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	if g.session != nil {
		g.highScore = max(g.highScore, g.session.HighScore())
	}

	g.session = NewSession(loadConfig(), g.mode, runtime.Seed)
	level := startLevel
	if g.startLevel != 0 {
		level = g.startLevel
	}
	g.session.SetStartLevel(level)
	g.session.SetHighScore(g.highScore)

	sink := g.sink
	if sink == nil {
		sink = defaultSink
	}
	g.session.SetEventSink(sink)
}

// Resize updates the screen size used to map pointer positions.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
}

// SetStartLevel sets the level this game starts at, overriding the
// package default. It takes effect on the next Reset.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = level
}

// SetHighScore seeds the high score, usually read from storage.
func (g *Game) SetHighScore(score int) {
	g.highScore = max(score, 0)
	if g.session != nil {
		g.session.SetHighScore(score)
	}
}

// SetEventSink attaches a sink to this game, overriding the package default.
func (g *Game) SetEventSink(sink EventSink) {
	g.sink = sink
	if g.session != nil {
		g.session.SetEventSink(sink)
	}
}

// Session returns the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return g.session.Snapshot()
}

// pointerToField converts a screen column to a field x coordinate.
func (g *Game) pointerToField(col int) float64 {
	w := g.runtime.ScreenW
	if w <= 0 {
		return g.session.Field().W / 2
	}
	return (float64(col) + 0.5) / float64(w) * g.session.Field().W
}

// Step applies one frame of input and advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(g.runtime)
	}
	s := g.session

	if in.Has(core.ActionPrimary) {
		s.Primary()
	}
	if in.Has(core.ActionPause) {
		s.TogglePause()
	}
	if in.Has(core.ActionRestart) {
		if !s.ResetToStart() {
			s.Restart()
		}
	}
	if in.Has(core.ActionLeft) {
		s.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		s.MoveRight()
	}
	if in.Pointer.Valid {
		s.MoveTo(g.pointerToField(in.Pointer.X))
	}
	if in.Has(core.ActionLaunch) {
		s.Launch()
	}

	s.Tick()
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{HighScore: g.highScore}
	}
	st := g.session.State()
	return core.GameState{
		Score:     g.session.Score(),
		HighScore: g.session.HighScore(),
		Level:     g.session.Level(),
		GameOver:  st == StateGameOver || st == StateVictory,
		Paused:    st == StatePaused,
	}
}

// Register the games with the registry
func init() {
	registry.Register("breakout", func() registry.Game {
		return New()
	})
	registry.Register("breakout_endless", func() registry.Game {
		return NewEndless()
	})
}
