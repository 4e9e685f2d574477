package breakout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

type recordingSink struct {
	events []Event
}

func (r *recordingSink) Notify(ev Event) {
	r.events = append(r.events, ev)
}

func (r *recordingSink) kinds() []EventKind {
	out := make([]EventKind, len(r.events))
	for i, ev := range r.events {
		out[i] = ev.Kind
	}
	return out
}

func newTestSession(mode GameMode) *Session {
	return NewSession(config.DefaultBreakoutConfig(), mode, 42)
}

// startPlaying starts the game and runs the countdown out.
func startPlaying(t *testing.T, s *Session) {
	t.Helper()
	require.True(t, s.Start())
	for s.State() == StateCountdown {
		s.Tick()
	}
	require.Equal(t, StatePlaying, s.State())
}

// clearAllButOne destroys every brick except the last standing one.
func clearAllButOne(s *Session) *Brick {
	active := s.Bricks().ActiveBricks()
	for _, b := range active[:len(active)-1] {
		b.Hit()
	}
	return active[len(active)-1]
}

// aimAt replaces the balls with one rising into the brick from below.
func aimAt(s *Session, brick *Brick) *Ball {
	b := s.newBall()
	b.Attached = false
	cx, _ := brick.Center()
	b.X = cx
	b.Y = brick.Y + brick.Height + b.Radius + 2
	b.DX, b.DY = 0, -3
	s.balls = []*Ball{b}
	return b
}

func TestNewSession(t *testing.T) {
	s := newTestSession(ModeCampaign)

	assert.Equal(t, StateStart, s.State())
	assert.Equal(t, 3, s.Lives())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 1, s.Level())
	require.Len(t, s.Balls(), 1)
	assert.True(t, s.Balls()[0].Attached)
	assert.Equal(t, 80, s.Bricks().Remaining())
}

func TestTickDoesNothingOnStartScreen(t *testing.T) {
	s := newTestSession(ModeCampaign)
	before := s.Paddle().X

	s.MoveLeft()
	assert.Nil(t, s.Tick())
	assert.Equal(t, uint64(0), s.Ticks())
	assert.Equal(t, before, s.Paddle().TargetX)
	assert.Zero(t, s.Launch())
}

func TestCountdownEntersPlayingWithoutLaunch(t *testing.T) {
	s := newTestSession(ModeCampaign)
	require.True(t, s.Start())
	assert.False(t, s.Start(), "start only works from the start screen")

	assert.Equal(t, 5, s.CountdownValue())
	for range 299 {
		s.Tick()
	}
	assert.Equal(t, StateCountdown, s.State())
	assert.Equal(t, 1, s.CountdownValue())

	s.Tick()
	assert.Equal(t, StatePlaying, s.State())
	assert.True(t, s.Balls()[0].Attached, "ball waits for an explicit launch")
	assert.Equal(t, 0, s.CountdownValue())
}

func TestPaddleMovesDuringCountdown(t *testing.T) {
	s := newTestSession(ModeCampaign)
	s.Start()

	s.MoveLeft()
	s.Tick()

	assert.Less(t, s.Paddle().X, 202.5)
	assert.InDelta(t, s.Paddle().CenterX(), s.Balls()[0].X, 1e-9)
}

func TestLaunchOnlyWhilePlaying(t *testing.T) {
	s := newTestSession(ModeCampaign)
	s.Start()
	assert.Zero(t, s.Launch())

	for s.State() == StateCountdown {
		s.Tick()
	}
	assert.Equal(t, 1, s.Launch())
	assert.False(t, s.Balls()[0].Attached)
	assert.Zero(t, s.Launch())
}

func TestPauseFreezesSimulation(t *testing.T) {
	s := newTestSession(ModeCampaign)
	startPlaying(t, s)
	s.Launch()

	s.TogglePause()
	require.Equal(t, StatePaused, s.State())

	ticks := s.Ticks()
	ball := *s.Balls()[0]
	s.MoveLeft()
	assert.Nil(t, s.Tick())
	assert.Equal(t, ticks, s.Ticks())
	assert.Equal(t, ball.X, s.Balls()[0].X)
	assert.Equal(t, ball.Y, s.Balls()[0].Y)

	s.Primary()
	assert.Equal(t, StatePlaying, s.State())
}

func TestResetToStartFromPause(t *testing.T) {
	s := newTestSession(ModeCampaign)
	startPlaying(t, s)
	s.score = 500

	assert.False(t, s.ResetToStart(), "only from pause")
	s.TogglePause()
	require.True(t, s.ResetToStart())

	assert.Equal(t, StateStart, s.State())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 3, s.Lives())
}

func TestLastBallLostEndsGame(t *testing.T) {
	s := newTestSession(ModeCampaign)
	sink := &recordingSink{}
	s.SetEventSink(sink)
	startPlaying(t, s)
	s.lives = 1
	s.score = 1234

	b := s.Balls()[0]
	b.Attached = false
	b.X, b.Y, b.DX, b.DY = 50, 400, 0, 3

	events := s.Tick()

	assert.Equal(t, StateGameOver, s.State())
	assert.Equal(t, 0, s.Lives())
	assert.Equal(t, 1234, s.HighScore())
	assert.Equal(t, []EventKind{EventBallLost, EventGameOver}, sink.kinds())
	assert.Len(t, events, 2)

	ticks := s.Ticks()
	assert.Nil(t, s.Tick(), "game over is frozen")
	assert.Equal(t, ticks, s.Ticks())
}

func TestLosingOneOfTwoBallsKeepsLives(t *testing.T) {
	s := newTestSession(ModeCampaign)
	startPlaying(t, s)

	lost := s.Balls()[0]
	lost.Attached = false
	lost.X, lost.Y, lost.DX, lost.DY = 50, 400, 0, 3
	s.balls = append(s.balls, s.newBall())

	events := s.Tick()

	assert.Equal(t, 3, s.Lives())
	assert.Len(t, s.Balls(), 1)
	assert.NotContains(t, eventKinds(events), EventBallLost)
}

func TestLosingAllBallsCostsOneLife(t *testing.T) {
	s := newTestSession(ModeCampaign)
	startPlaying(t, s)

	a := s.Balls()[0]
	a.Attached = false
	a.X, a.Y, a.DX, a.DY = 50, 400, 0, 3
	c := a.clone()
	c.X = 100
	s.balls = append(s.balls, c)

	s.Tick()

	assert.Equal(t, 2, s.Lives())
	require.Len(t, s.Balls(), 1)
	assert.True(t, s.Balls()[0].Attached, "a fresh ball waits on the paddle")
	assert.Equal(t, StatePlaying, s.State())
}

func TestSafetyNetSpawnsBall(t *testing.T) {
	s := newTestSession(ModeCampaign)
	startPlaying(t, s)
	s.balls = nil

	s.Tick()

	assert.Len(t, s.Balls(), 1)
	assert.Equal(t, 3, s.Lives())
}

func TestBrickScoresAndNotifies(t *testing.T) {
	s := newTestSession(ModeCampaign)
	sink := &recordingSink{}
	s.SetEventSink(sink)
	startPlaying(t, s)

	target := s.Bricks().ActiveBricks()[79]
	aimAt(s, target)

	s.Tick()

	assert.True(t, target.Destroyed())
	assert.Equal(t, target.Points, s.Score())
	require.NotEmpty(t, sink.events)
	assert.Equal(t, EventBrickHit, sink.events[0].Kind)
	assert.Equal(t, 100, sink.events[0].Points)
	assert.NotEmpty(t, s.Particles())
}

func TestExtraLifeIsCapped(t *testing.T) {
	s := newTestSession(ModeCampaign)
	startPlaying(t, s)

	s.activate(PowerUpExtraLife)
	assert.Equal(t, 3, s.Lives())
	assert.Equal(t, 150, s.Score(), "bonus is still awarded")

	s.lives = 2
	s.activate(PowerUpExtraLife)
	assert.Equal(t, 3, s.Lives())
}

func TestSpeedEffectsReplaceEachOther(t *testing.T) {
	s := newTestSession(ModeCampaign)
	startPlaying(t, s)
	b := s.Balls()[0]

	s.activate(PowerUpSlow)
	assert.InDelta(t, 1.5, b.Speed(), 1e-9)

	s.activate(PowerUpFast)
	eff, ok := s.ActiveEffect()
	require.True(t, ok)
	assert.Equal(t, PowerUpFast, eff.Kind)
	assert.Equal(t, 360, eff.Remaining)
	assert.InDelta(t, 1.25, b.SpeedMultiplier, 1e-9)
	assert.InDelta(t, 3.75, b.Speed(), 1e-9)
}

func TestSpeedEffectExpiryRestoresNormalSpeed(t *testing.T) {
	s := newTestSession(ModeCampaign)
	startPlaying(t, s)
	b := s.Balls()[0]

	s.activate(PowerUpSlow)
	s.active.Remaining = 1
	s.Tick()

	_, ok := s.ActiveEffect()
	assert.False(t, ok)
	assert.InDelta(t, 1.0, b.SpeedMultiplier, 1e-9)
	assert.InDelta(t, 3.0, b.Speed(), 1e-9)
}

func TestExtendReplacesSlowWithoutRestoringSpeed(t *testing.T) {
	s := newTestSession(ModeCampaign)
	startPlaying(t, s)
	b := s.Balls()[0]

	s.activate(PowerUpSlow)
	s.activate(PowerUpExtend)

	eff, _ := s.ActiveEffect()
	assert.Equal(t, PowerUpExtend, eff.Kind)
	assert.True(t, s.Paddle().Extended)
	assert.InDelta(t, 0.5, b.SpeedMultiplier, 1e-9)
}

func TestNewBallUsesActiveMultiplier(t *testing.T) {
	s := newTestSession(ModeCampaign)
	startPlaying(t, s)

	s.activate(PowerUpFast)
	b := s.newBall()

	assert.InDelta(t, 3.75, b.Speed(), 1e-9)
}

func TestMultiballSplitsFreeBalls(t *testing.T) {
	s := newTestSession(ModeCampaign)
	startPlaying(t, s)

	s.activate(PowerUpMultiball)
	assert.Len(t, s.Balls(), 1, "attached balls do not split")

	s.Launch()
	s.activate(PowerUpMultiball)
	require.Len(t, s.Balls(), 3)
	for _, b := range s.Balls()[1:] {
		assert.False(t, b.Attached)
		assert.Equal(t, 0, b.Trail.Len())
	}
}

func TestPaddleCatchesPowerUp(t *testing.T) {
	s := newTestSession(ModeCampaign)
	startPlaying(t, s)
	s.lives = 2

	p := s.Paddle()
	s.drops = []*PowerUp{NewPowerUp(p.CenterX(), p.Y-8, PowerUpExtraLife, s.cfg.PowerUps)}
	events := s.Tick()

	assert.Empty(t, s.PowerUps())
	assert.Equal(t, 3, s.Lives())
	assert.Equal(t, 150, s.Score())
	assert.Contains(t, eventKinds(events), EventPowerUpCollected)
}

func TestMissedPowerUpDespawns(t *testing.T) {
	s := newTestSession(ModeCampaign)
	startPlaying(t, s)

	s.drops = []*PowerUp{NewPowerUp(10, 379, PowerUpFast, s.cfg.PowerUps)}
	s.Tick()

	assert.Empty(t, s.PowerUps())
	_, ok := s.ActiveEffect()
	assert.False(t, ok)
	assert.Equal(t, 0, s.Score())
}

func TestBallCollectsPowerUp(t *testing.T) {
	s := newTestSession(ModeCampaign)
	startPlaying(t, s)

	b := s.Balls()[0]
	b.Attached = false
	b.X, b.Y, b.DX, b.DY = 240, 200, 0, 0
	s.drops = []*PowerUp{NewPowerUp(245, 198, PowerUpExtend, s.cfg.PowerUps)}

	s.Tick()

	assert.Empty(t, s.PowerUps())
	assert.True(t, s.Paddle().Extended)
}

func TestBallCollectsMultiball(t *testing.T) {
	s := newTestSession(ModeCampaign)
	startPlaying(t, s)
	b := s.Balls()[0]
	b.Attached = false
	b.X, b.Y, b.DX, b.DY = 240, 200, 0, 0
	s.drops = []*PowerUp{NewPowerUp(245, 198, PowerUpMultiball, s.cfg.PowerUps)}
	before := s.Score()

	s.Tick()

	assert.Empty(t, s.PowerUps())
	assert.Len(t, s.Balls(), 3)
	assert.Equal(t, before+s.cfg.PowerUps.Bonus, s.Score())
}

func TestLevelCompleteAdvances(t *testing.T) {
	s := newTestSession(ModeCampaign)
	sink := &recordingSink{}
	s.SetEventSink(sink)
	startPlaying(t, s)

	aimAt(s, clearAllButOne(s))
	s.Tick()

	assert.Equal(t, StateNextLevel, s.State())
	assert.Equal(t, 2, s.Level())
	assert.Contains(t, sink.kinds(), EventLevelComplete)
	require.Len(t, s.Balls(), 1)
	assert.True(t, s.Balls()[0].Attached)
	assert.InDelta(t, 3.2, s.Balls()[0].Speed(), 1e-9)
	assert.Empty(t, s.PowerUps())

	for range 180 {
		s.Tick()
	}
	assert.Equal(t, StatePlaying, s.State())
}

func TestFinalLevelWinsCampaign(t *testing.T) {
	s := newTestSession(ModeCampaign)
	s.SetStartLevel(8)
	require.Equal(t, 8, s.Level())
	s.SetHighScore(10)
	startPlaying(t, s)

	aimAt(s, clearAllButOne(s))
	events := s.Tick()

	assert.Equal(t, StateVictory, s.State())
	assert.Equal(t, 8, s.Level())
	assert.Equal(t, s.Score(), s.HighScore())
	assert.Equal(t, []EventKind{EventBrickHit, EventLevelComplete, EventVictory}, eventKinds(events))

	s.Primary()
	assert.Equal(t, StateStart, s.State())
	assert.Equal(t, 0, s.Score())
}

func TestEndlessWrapsLayouts(t *testing.T) {
	s := newTestSession(ModeEndless)
	s.SetStartLevel(8)
	startPlaying(t, s)

	aimAt(s, clearAllButOne(s))
	s.Tick()

	assert.Equal(t, StateNextLevel, s.State())
	assert.Equal(t, 9, s.Level())
	assert.Equal(t, "Block", LevelName(s.Level()))
	assert.InDelta(t, 4.6, s.Bricks().LevelSpeed(), 1e-9)
}

func TestOutOfRangeStartLevel(t *testing.T) {
	s := newTestSession(ModeCampaign)
	s.SetStartLevel(42)
	assert.Equal(t, 1, s.Level())

	s.SetStartLevel(0)
	assert.Equal(t, 1, s.Level())
}

func TestRestartAfterGameOver(t *testing.T) {
	s := newTestSession(ModeCampaign)
	startPlaying(t, s)
	s.gameOver()

	assert.False(t, s.ResetToStart())
	require.True(t, s.Restart())
	assert.Equal(t, StateStart, s.State())
	assert.Equal(t, 3, s.Lives())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "start", StateStart.String())
	assert.Equal(t, "gameover", StateGameOver.String())
	assert.Equal(t, "nextlevel", StateNextLevel.String())
	assert.Equal(t, "brick_hit", EventBrickHit.String())
}

func eventKinds(events []Event) []EventKind {
	out := make([]EventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}
