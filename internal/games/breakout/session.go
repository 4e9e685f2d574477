package breakout

import (
	"math/rand/v2"
	"slices"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

// State is the session state.
type State int

const (
	StateStart State = iota
	StateCountdown
	StatePlaying
	StatePaused
	StateGameOver
	StateVictory
	StateNextLevel
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateCountdown:
		return "countdown"
	case StatePlaying:
		return "playing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "gameover"
	case StateVictory:
		return "victory"
	case StateNextLevel:
		return "nextlevel"
	default:
		return "unknown"
	}
}

// Seed mixing constants for the two RNG streams.
const (
	gameplayStream = 0x9e3779b97f4a7c15
	effectsStream  = 0x517cc1b727220a95
)

// Session owns the whole simulation and is the only writer of its
// collections. It is not safe for concurrent use; drive it from one loop.
type Session struct {
	cfg   config.BreakoutConfig
	field Field
	mode  GameMode

	rng    *rand.Rand
	paddle *Paddle
	balls  []*Ball
	bricks *BrickField
	drops  []*PowerUp
	active *ActiveEffect
	fx     *Effects

	state      State
	score      int
	highScore  int
	lives      int
	firstLevel int

	countdown int
	nextLevel int
	ticks     uint64

	events []Event
	sink   EventSink
}

// NewSession creates a session in the START state.
// The config is expected to be validated.
func NewSession(cfg config.BreakoutConfig, mode GameMode, seed int64) *Session {
	s64 := uint64(seed) //#nosec G115 -- seed bits are reused as is
	s := &Session{
		cfg:        cfg,
		field:      Field{W: cfg.Field.Width, H: cfg.Field.Height},
		mode:       mode,
		rng:        rand.New(rand.NewPCG(s64, s64^gameplayStream)),
		fx:         NewEffects(rand.New(rand.NewPCG(s64, s64^effectsStream))),
		firstLevel: 1,
	}
	s.paddle = NewPaddle(cfg.Paddle, s.field)
	s.bricks = NewBrickField(cfg.Bricks, s.field, config.NewSpeedCurve(cfg.Ball.BaseSpeed, cfg.Difficulty), s.rng)
	s.bricks.SetWrap(mode == ModeEndless)
	s.resetSession()
	return s
}

// SetStartLevel picks the level a new game begins at. Out-of-range values
// fall back to level 1 when the level is loaded.
func (s *Session) SetStartLevel(level int) {
	s.firstLevel = level
	if s.state == StateStart {
		s.resetSession()
	}
}

// SetEventSink attaches a sink that receives every tick's events.
func (s *Session) SetEventSink(sink EventSink) {
	s.sink = sink
}

// SetHighScore seeds the best score known to the host.
func (s *Session) SetHighScore(score int) {
	s.highScore = max(score, 0)
}

// resetSession prepares a fresh game without changing state.
func (s *Session) resetSession() {
	s.lives = s.cfg.Gameplay.Lives
	s.score = 0
	s.active = nil
	s.drops = nil
	s.fx.Clear()
	s.paddle.Center()
	s.bricks.LoadLevel(s.firstLevel)
	s.balls = []*Ball{s.newBall()}
}

// newBall creates an attached ball at the current level speed and effect.
func (s *Session) newBall() *Ball {
	b := NewBall(s.paddle, s.field, s.cfg.Ball.Radius, s.bricks.LevelSpeed(), s.cfg.Ball.AttachGap, s.cfg.Ball.TrailLength)
	b.SpeedMultiplier = s.currentMultiplier()
	b.Reset(s.rng)
	return b
}

// currentMultiplier returns the speed multiplier of the active effect.
func (s *Session) currentMultiplier() float64 {
	if s.active == nil {
		return 1.0
	}
	switch s.active.Kind {
	case PowerUpSlow:
		return s.cfg.PowerUps.SlowMultiplier
	case PowerUpFast:
		return s.cfg.PowerUps.FastMultiplier
	default:
		return 1.0
	}
}

// Start begins a new game from the START screen.
func (s *Session) Start() bool {
	if s.state != StateStart {
		return false
	}
	s.resetSession()
	s.countdown = s.cfg.Gameplay.CountdownTicks
	s.state = StateCountdown
	return true
}

func (s *Session) steerable() bool {
	return s.state == StateCountdown || s.state == StatePlaying
}

// MoveLeft steps the paddle target left.
func (s *Session) MoveLeft() {
	if s.steerable() {
		s.paddle.MoveLeft()
	}
}

// MoveRight steps the paddle target right.
func (s *Session) MoveRight() {
	if s.steerable() {
		s.paddle.MoveRight()
	}
}

// MoveTo aims the paddle center at x in field units.
func (s *Session) MoveTo(x float64) {
	if s.steerable() {
		s.paddle.MoveTo(x)
	}
}

// Launch releases every attached ball. Only works while playing.
func (s *Session) Launch() int {
	if s.state != StatePlaying {
		return 0
	}
	n := 0
	for _, b := range s.balls {
		if b.Launch() {
			n++
		}
	}
	return n
}

// TogglePause switches between PLAYING and PAUSED.
func (s *Session) TogglePause() {
	switch s.state {
	case StatePlaying:
		s.state = StatePaused
	case StatePaused:
		s.state = StatePlaying
	}
}

// Resume continues a paused game.
func (s *Session) Resume() {
	if s.state == StatePaused {
		s.state = StatePlaying
	}
}

// ResetToStart abandons a paused game and returns to the START screen.
func (s *Session) ResetToStart() bool {
	if s.state != StatePaused {
		return false
	}
	s.resetSession()
	s.state = StateStart
	return true
}

// Restart returns to the START screen after the game ended.
func (s *Session) Restart() bool {
	if s.state != StateGameOver && s.state != StateVictory {
		return false
	}
	s.resetSession()
	s.state = StateStart
	return true
}

// Primary performs the context action: start, pause, resume or restart.
func (s *Session) Primary() {
	switch s.state {
	case StateStart:
		s.Start()
	case StatePlaying, StatePaused:
		s.TogglePause()
	case StateGameOver, StateVictory:
		s.Restart()
	}
}

// Tick advances the world by one step and returns the events it produced.
func (s *Session) Tick() []Event {
	s.events = s.events[:0]

	switch s.state {
	case StateCountdown:
		s.countdownTick()
	case StateNextLevel:
		s.fx.Update()
		s.nextLevel--
		if s.nextLevel <= 0 {
			s.state = StatePlaying
		}
	case StatePlaying:
		s.playTick()
	default:
		return nil
	}
	s.ticks++

	if len(s.events) == 0 {
		return nil
	}
	out := slices.Clone(s.events)
	if s.sink != nil {
		for _, ev := range out {
			s.sink.Notify(ev)
		}
	}
	return out
}

func (s *Session) emit(ev Event) {
	s.events = append(s.events, ev)
}

func (s *Session) countdownTick() {
	s.paddle.Update()
	for _, b := range s.balls {
		b.Update(nil, nil)
	}
	s.countdown--
	if s.countdown <= 0 {
		s.countdown = 0
		s.state = StatePlaying
	}
}

// playTick runs paddle, balls, power-ups, timers and the level check in order.
func (s *Session) playTick() {
	s.paddle.Update()

	survivors := make([]*Ball, 0, len(s.balls))
	var grabbed []PowerUpKind
	lost := 0
	for _, b := range s.balls {
		res := b.Update(s.bricks.ActiveBricks(), s.drops)

		if res.WallHit {
			s.emit(Event{Kind: EventWallHit})
		}
		if res.PaddleHit {
			s.emit(Event{Kind: EventPaddleHit, Offset: res.PaddleOffset})
		}
		for _, brick := range res.BricksHit {
			s.onBrickDestroyed(brick)
		}
		if res.PowerUpCollected != nil && s.take(res.PowerUpCollected) {
			grabbed = append(grabbed, res.PowerUpCollected.Kind)
		}
		if res.BallLost {
			lost++
			continue
		}
		survivors = append(survivors, b)
	}
	s.balls = survivors
	// Activated once the ball set is settled so multiball clones are kept
	for _, kind := range grabbed {
		s.activate(kind)
	}

	if len(s.balls) == 0 && lost > 0 {
		s.lives--
		s.emit(Event{Kind: EventBallLost})
		if s.lives <= 0 {
			s.lives = 0
			s.gameOver()
			return
		}
		s.balls = []*Ball{s.newBall()}
	}
	if len(s.balls) == 0 && s.lives > 0 {
		logger.Warn("no balls left in play, spawning a replacement", "lives", s.lives)
		s.balls = []*Ball{s.newBall()}
	}

	s.updateDrops()

	if s.active != nil && s.active.Kind.Timed() {
		s.active.Remaining--
		if s.active.Remaining <= 0 {
			s.deactivate()
		}
	}

	s.fx.Update()

	if s.bricks.IsLevelComplete() {
		s.completeLevel()
	}
}

func (s *Session) onBrickDestroyed(brick *Brick) {
	s.score += brick.Points
	s.fx.BrickBurst(brick)
	s.emit(Event{Kind: EventBrickHit, Points: brick.Points})

	if s.rng.Float64() < s.cfg.PowerUps.SpawnChance {
		cx, cy := brick.Center()
		s.drops = append(s.drops, NewPowerUp(cx, cy, randomKind(s.rng), s.cfg.PowerUps))
	}
}

// updateDrops moves power-ups, collects those touching the paddle and
// removes those that fell out of the field.
func (s *Session) updateDrops() {
	floor := s.field.H + s.cfg.PowerUps.DespawnMargin
	kept := make([]*PowerUp, 0, len(s.drops))
	var caught []*PowerUp
	for _, p := range s.drops {
		p.Update()
		switch {
		case p.CheckPaddleCollision(s.paddle):
			caught = append(caught, p)
		case p.Y >= floor:
		default:
			kept = append(kept, p)
		}
	}
	s.drops = kept
	for _, p := range caught {
		s.activate(p.Kind)
	}
}

// take removes a power-up touched by a ball, reporting whether it was
// still falling.
func (s *Session) take(p *PowerUp) bool {
	i := slices.Index(s.drops, p)
	if i < 0 {
		return false
	}
	s.drops = slices.Delete(s.drops, i, i+1)
	return true
}

func (s *Session) activate(kind PowerUpKind) {
	s.score += s.cfg.PowerUps.Bonus
	s.emit(Event{Kind: EventPowerUpCollected, PowerUp: kind})

	switch kind {
	case PowerUpMultiball:
		for _, b := range slices.Clone(s.balls) {
			if b.Attached {
				continue
			}
			for range 2 {
				c := b.clone()
				if s.rng.Float64() > 0.5 {
					c.DX *= 1.2
				} else {
					c.DX *= 0.8
				}
				s.balls = append(s.balls, c)
			}
		}
	case PowerUpExtend:
		s.paddle.Extend()
		s.active = &ActiveEffect{Kind: kind, Remaining: kind.Duration(s.cfg)}
	case PowerUpSlow, PowerUpFast:
		s.active = &ActiveEffect{Kind: kind, Remaining: kind.Duration(s.cfg)}
		m := s.currentMultiplier()
		for _, b := range s.balls {
			b.SetSpeed(m)
		}
	case PowerUpExtraLife:
		s.lives = min(s.lives+1, s.cfg.Gameplay.MaxLives)
	}
}

// deactivate ends the timed effect. Speed effects return every ball to 1.0
// regardless of what they replaced.
func (s *Session) deactivate() {
	kind := s.active.Kind
	s.active = nil
	if kind == PowerUpSlow || kind == PowerUpFast {
		for _, b := range s.balls {
			b.SetSpeed(1.0)
		}
	}
}

func (s *Session) completeLevel() {
	level := s.bricks.Level()
	s.emit(Event{Kind: EventLevelComplete, Level: level})
	s.fx.LevelBurst(s.field)

	if s.mode == ModeCampaign && level >= levelCount {
		s.state = StateVictory
		s.highScore = max(s.highScore, s.score)
		s.emit(Event{Kind: EventVictory})
		return
	}

	s.bricks.LoadLevel(level + 1)
	s.drops = nil
	s.balls = []*Ball{s.newBall()}
	s.nextLevel = s.cfg.Gameplay.NextLevelTicks
	s.state = StateNextLevel
	if s.nextLevel <= 0 {
		s.state = StatePlaying
	}
}

func (s *Session) gameOver() {
	s.state = StateGameOver
	s.highScore = max(s.highScore, s.score)
	s.emit(Event{Kind: EventGameOver})
}

// State returns the session state.
func (s *Session) State() State { return s.state }

// Score returns the current score.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score seen, including this session's.
func (s *Session) HighScore() int { return s.highScore }

// Lives returns the remaining lives.
func (s *Session) Lives() int { return s.lives }

// Level returns the current level number.
func (s *Session) Level() int { return s.bricks.Level() }

// Mode returns the game mode.
func (s *Session) Mode() GameMode { return s.mode }

// Field returns the playfield size.
func (s *Session) Field() Field { return s.field }

// Paddle returns the paddle. Callers must not mutate it.
func (s *Session) Paddle() *Paddle { return s.paddle }

// Balls returns the balls in play. Callers must not mutate them.
func (s *Session) Balls() []*Ball { return s.balls }

// Bricks returns the brick field.
func (s *Session) Bricks() *BrickField { return s.bricks }

// PowerUps returns the falling power-ups.
func (s *Session) PowerUps() []*PowerUp { return s.drops }

// ActiveEffect returns the timed effect in the slot, if any.
func (s *Session) ActiveEffect() (ActiveEffect, bool) {
	if s.active == nil {
		return ActiveEffect{}, false
	}
	return *s.active, true
}

// Particles returns a copy of the live cosmetic particles.
func (s *Session) Particles() []Particle { return s.fx.Particles() }

// CountdownValue returns the whole seconds left in the countdown.
func (s *Session) CountdownValue() int {
	if s.state != StateCountdown {
		return 0
	}
	return (s.countdown + 59) / 60
}

// Ticks returns the number of ticks the simulation advanced.
func (s *Session) Ticks() uint64 { return s.ticks }
