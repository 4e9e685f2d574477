package breakout

import (
	"math/rand/v2"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// PowerUpKind enumerates power-up effects.
type PowerUpKind int

const (
	PowerUpMultiball PowerUpKind = iota // two clones of every free ball
	PowerUpExtend                       // wider paddle for a while
	PowerUpSlow                         // all balls at the slow multiplier
	PowerUpFast                         // all balls at the fast multiplier
	PowerUpExtraLife                    // one more life, capped
	powerUpKinds                        // Sentinel for counting kinds
)

type kindInfo struct {
	name   string
	symbol rune
	color  core.Color
	timed  bool
}

var kindCatalog = [powerUpKinds]kindInfo{
	PowerUpMultiball: {name: "Multiball", symbol: 'M', color: core.ColorBrightRed},
	PowerUpExtend:    {name: "Extend", symbol: 'E', color: core.ColorBrightGreen, timed: true},
	PowerUpSlow:      {name: "Slow", symbol: 'S', color: core.ColorBrightBlue, timed: true},
	PowerUpFast:      {name: "Fast", symbol: 'F', color: core.ColorOrange, timed: true},
	PowerUpExtraLife: {name: "Life", symbol: '♥', color: core.ColorBrightMagenta},
}

func (k PowerUpKind) info() kindInfo {
	if k < 0 || k >= powerUpKinds {
		return kindInfo{name: "?", symbol: '?'}
	}
	return kindCatalog[k]
}

// String returns the display name.
func (k PowerUpKind) String() string {
	return k.info().name
}

// Symbol returns the glyph drawn for a falling power-up.
func (k PowerUpKind) Symbol() rune {
	return k.info().symbol
}

// Color returns the glyph color.
func (k PowerUpKind) Color() core.Color {
	return k.info().color
}

// Timed reports whether the effect occupies the active effect slot.
func (k PowerUpKind) Timed() bool {
	return k.info().timed
}

// Duration returns how long a timed effect lasts, in ticks.
func (k PowerUpKind) Duration(cfg config.BreakoutConfig) int {
	switch k {
	case PowerUpExtend:
		return cfg.Paddle.ExtendTicks
	case PowerUpSlow:
		return cfg.PowerUps.SlowTicks
	case PowerUpFast:
		return cfg.PowerUps.FastTicks
	default:
		return 0
	}
}

// randomKind draws a kind uniformly.
func randomKind(rng *rand.Rand) PowerUpKind {
	return PowerUpKind(rng.IntN(int(powerUpKinds)))
}

// PowerUp is a falling collectible.
type PowerUp struct {
	X, Y      float64
	Radius    float64
	FallSpeed float64
	Kind      PowerUpKind
}

// NewPowerUp creates a power-up centered at (x, y).
func NewPowerUp(x, y float64, kind PowerUpKind, cfg config.PowerUpConfig) *PowerUp {
	return &PowerUp{X: x, Y: y, Radius: cfg.Radius, FallSpeed: cfg.FallSpeed, Kind: kind}
}

// Update moves the power-up down one tick.
func (p *PowerUp) Update() {
	p.Y += p.FallSpeed
}

// CheckPaddleCollision tests the power-up as a point with vertical extent
// against the paddle rectangle.
func (p *PowerUp) CheckPaddleCollision(paddle *Paddle) bool {
	if paddle == nil {
		return false
	}
	pb := paddle.Bounds()
	pb.Top -= p.Radius
	pb.Bottom += p.Radius
	return pb.Contains(p.X, p.Y)
}

// ActiveEffect is the single timed effect slot.
type ActiveEffect struct {
	Kind      PowerUpKind
	Remaining int // ticks left
}
