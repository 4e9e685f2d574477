package breakout

import "math"

// PaddleSnapshot is a read-only copy of the paddle.
type PaddleSnapshot struct {
	X, Y            float64
	Width, Height   float64
	Extended        bool
	ExtendRemaining int
}

// BallSnapshot is a read-only copy of a ball.
type BallSnapshot struct {
	X, Y            float64
	DX, DY          float64
	Radius          float64
	BaseSpeed       float64
	SpeedMultiplier float64
	Attached        bool
	Trail           []Point // newest first
}

// BrickSnapshot is a read-only copy of a brick.
type BrickSnapshot struct {
	X, Y          float64
	Width, Height float64
	Tier          Tier
	Points        int
	Destroyed     bool
}

// PowerUpSnapshot is a read-only copy of a falling power-up.
type PowerUpSnapshot struct {
	X, Y   float64
	Radius float64
	Kind   PowerUpKind
}

// Snapshot is a copy of everything a renderer or a replay check needs.
// Mutating it does not affect the session.
type Snapshot struct {
	Tick      uint64
	State     State
	Mode      GameMode
	Score     int
	HighScore int
	Lives     int
	Level     int
	LevelName string
	Countdown int // whole seconds, COUNTDOWN only

	Field     Field
	Paddle    PaddleSnapshot
	Balls     []BallSnapshot
	Bricks    []BrickSnapshot
	PowerUps  []PowerUpSnapshot
	Particles []Particle

	Effect    ActiveEffect
	HasEffect bool
}

// Snapshot copies the current session state.
func (s *Session) Snapshot() Snapshot {
	p := s.paddle
	snap := Snapshot{
		Tick:      s.ticks,
		State:     s.state,
		Mode:      s.mode,
		Score:     s.score,
		HighScore: s.highScore,
		Lives:     s.lives,
		Level:     s.bricks.Level(),
		LevelName: LevelName(s.bricks.Level()),
		Countdown: s.CountdownValue(),
		Field:     s.field,
		Paddle: PaddleSnapshot{
			X:               p.X,
			Y:               p.Y,
			Width:           p.Width,
			Height:          p.Height,
			Extended:        p.Extended,
			ExtendRemaining: p.ExtendRemaining,
		},
		Balls:     make([]BallSnapshot, len(s.balls)),
		Bricks:    make([]BrickSnapshot, len(s.bricks.Bricks())),
		PowerUps:  make([]PowerUpSnapshot, len(s.drops)),
		Particles: s.fx.Particles(),
	}
	snap.Effect, snap.HasEffect = s.ActiveEffect()

	for i, b := range s.balls {
		snap.Balls[i] = BallSnapshot{
			X:               b.X,
			Y:               b.Y,
			DX:              b.DX,
			DY:              b.DY,
			Radius:          b.Radius,
			BaseSpeed:       b.BaseSpeed,
			SpeedMultiplier: b.SpeedMultiplier,
			Attached:        b.Attached,
			Trail:           b.Trail.Positions(),
		}
	}
	for i, b := range s.bricks.Bricks() {
		snap.Bricks[i] = BrickSnapshot{
			X:         b.X,
			Y:         b.Y,
			Width:     b.Width,
			Height:    b.Height,
			Tier:      b.Tier,
			Points:    b.Points,
			Destroyed: b.Destroyed(),
		}
	}
	for i, pu := range s.drops {
		snap.PowerUps[i] = PowerUpSnapshot{X: pu.X, Y: pu.Y, Radius: pu.Radius, Kind: pu.Kind}
	}
	return snap
}

// BricksRemaining counts standing bricks in the snapshot.
func (snap *Snapshot) BricksRemaining() int {
	n := 0
	for _, b := range snap.Bricks {
		if !b.Destroyed {
			n++
		}
	}
	return n
}

// Hash returns a simple hash of the gameplay state for determinism testing.
// Cosmetic state (trails, particles) is left out.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	mix := func(v uint64) { h = h*31 + v }
	mixF := func(f float64) { mix(math.Float64bits(f)) }
	mixI := func(i int) { mix(uint64(i)) } //#nosec G115 -- hash computation

	mixI(int(snap.State))
	mixI(int(snap.Mode))
	mixI(snap.Score)
	mixI(snap.HighScore)
	mixI(snap.Lives)
	mixI(snap.Level)

	mixF(snap.Paddle.X)
	mixF(snap.Paddle.Width)
	mixI(snap.Paddle.ExtendRemaining)

	for _, b := range snap.Balls {
		mixF(b.X)
		mixF(b.Y)
		mixF(b.DX)
		mixF(b.DY)
		mixF(b.SpeedMultiplier)
		if b.Attached {
			mix(1)
		}
	}
	for _, b := range snap.Bricks {
		if b.Destroyed {
			mix(1)
		} else {
			mix(0)
		}
	}
	for _, p := range snap.PowerUps {
		mixF(p.X)
		mixF(p.Y)
		mixI(int(p.Kind))
	}
	if snap.HasEffect {
		mixI(int(snap.Effect.Kind))
		mixI(snap.Effect.Remaining)
	}
	return h
}
