package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Paddle is the player's paddle. Y is fixed; X eases toward TargetX.
//
// X stays within [0, field width - Width] after every call.
type Paddle struct {
	X, Y          float64
	Width, Height float64
	TargetX       float64

	Speed         float64 // targetX step per move command
	Smoothing     float64 // fraction of the remaining distance covered per tick
	NormalWidth   float64
	ExtendedWidth float64

	Extended        bool
	ExtendRemaining int

	extendTicks int
	fieldW      float64
}

// NewPaddle creates a centered paddle near the bottom of the field.
func NewPaddle(cfg config.PaddleConfig, field Field) *Paddle {
	p := &Paddle{
		Y:             field.H - cfg.BottomOffset,
		Width:         cfg.Width,
		Height:        cfg.Height,
		Speed:         cfg.Speed,
		Smoothing:     cfg.Smoothing,
		NormalWidth:   cfg.Width,
		ExtendedWidth: cfg.ExtendedWidth,
		extendTicks:   cfg.ExtendTicks,
		fieldW:        field.W,
	}
	p.Center()
	return p
}

// Center places the paddle in the middle of the field at normal width.
func (p *Paddle) Center() {
	p.Width = p.NormalWidth
	p.Extended = false
	p.ExtendRemaining = 0
	p.X = (p.fieldW - p.Width) / 2
	p.clamp()
	p.TargetX = p.X
}

func (p *Paddle) maxX() float64 {
	return max(p.fieldW-p.Width, 0)
}

func (p *Paddle) clamp() {
	p.X = core.ClampF(p.X, 0, p.maxX())
	p.TargetX = core.ClampF(p.TargetX, 0, p.maxX())
}

// MoveLeft shifts the target one step left.
func (p *Paddle) MoveLeft() {
	p.TargetX = core.ClampF(p.TargetX-p.Speed, 0, p.maxX())
}

// MoveRight shifts the target one step right.
func (p *Paddle) MoveRight() {
	p.TargetX = core.ClampF(p.TargetX+p.Speed, 0, p.maxX())
}

// MoveTo aims the paddle center at x.
func (p *Paddle) MoveTo(x float64) {
	if !core.IsFinite(x) {
		return
	}
	p.TargetX = core.ClampF(x-p.Width/2, 0, p.maxX())
}

// Extend widens the paddle and restarts the extension timer.
// Retriggering does not stack.
func (p *Paddle) Extend() {
	p.Extended = true
	p.Width = p.ExtendedWidth
	p.ExtendRemaining = p.extendTicks
	p.clamp()
}

// Update eases toward the target and runs the extension timer.
func (p *Paddle) Update() {
	p.X += (p.TargetX - p.X) * p.Smoothing

	if p.Extended {
		p.ExtendRemaining--
		if p.ExtendRemaining <= 0 {
			p.ExtendRemaining = 0
			p.Extended = false
			p.Width = p.NormalWidth
		}
	}
	p.clamp()
}

// CenterX returns the horizontal center.
func (p *Paddle) CenterX() float64 {
	return p.X + p.Width/2
}

// Bounds returns the paddle rectangle.
func (p *Paddle) Bounds() core.Rect {
	return core.NewRect(p.X, p.Y, p.Width, p.Height)
}

// valid reports whether the paddle can anchor a ball.
func (p *Paddle) valid() bool {
	return p != nil && core.IsFinite(p.X) && core.IsFinite(p.Y) && core.IsFinite(p.Width)
}
