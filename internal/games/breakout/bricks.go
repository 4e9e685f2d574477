package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Tier is a brick color tier. Each tier has a fixed point value.
type Tier int

const (
	TierRed Tier = iota
	TierOrange
	TierGreen
	TierBlue
)

// Points returns the score for destroying a brick of this tier.
func (t Tier) Points() int {
	switch t {
	case TierRed:
		return 25
	case TierOrange:
		return 50
	case TierGreen:
		return 75
	case TierBlue:
		return 100
	default:
		return 0
	}
}

// Color returns the display color for this tier.
func (t Tier) Color() core.Color {
	switch t {
	case TierRed:
		return core.ColorBrightRed
	case TierOrange:
		return core.ColorOrange
	case TierGreen:
		return core.ColorBrightGreen
	case TierBlue:
		return core.ColorBrightBlue
	default:
		return core.ColorDefault
	}
}

// String returns the tier name.
func (t Tier) String() string {
	switch t {
	case TierRed:
		return "red"
	case TierOrange:
		return "orange"
	case TierGreen:
		return "green"
	case TierBlue:
		return "blue"
	default:
		return "?"
	}
}

// Brick is a fixed target. Once destroyed it stays destroyed.
type Brick struct {
	X, Y          float64
	Width, Height float64
	Tier          Tier
	Points        int

	destroyed bool
}

// NewBrick creates a live brick of the given tier.
func NewBrick(x, y, w, h float64, tier Tier) *Brick {
	return &Brick{X: x, Y: y, Width: w, Height: h, Tier: tier, Points: tier.Points()}
}

// Hit destroys the brick.
func (b *Brick) Hit() {
	b.destroyed = true
}

// Destroyed reports whether the brick has been hit.
func (b *Brick) Destroyed() bool {
	return b.destroyed
}

// Bounds returns the brick rectangle.
func (b *Brick) Bounds() core.Rect {
	return core.NewRect(b.X, b.Y, b.Width, b.Height)
}

// Center returns the brick center.
func (b *Brick) Center() (float64, float64) {
	return b.X + b.Width/2, b.Y + b.Height/2
}
