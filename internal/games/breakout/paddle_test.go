package breakout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
)

var testField = Field{W: 480, H: 360}

func newTestPaddle() *Paddle {
	return NewPaddle(config.DefaultBreakoutConfig().Paddle, testField)
}

func TestPaddleStartsCentered(t *testing.T) {
	p := newTestPaddle()

	assert.InDelta(t, 202.5, p.X, 1e-9)
	assert.InDelta(t, 330.0, p.Y, 1e-9)
	assert.InDelta(t, 240.0, p.CenterX(), 1e-9)
	assert.Equal(t, p.X, p.TargetX)
}

func TestPaddleClampsToField(t *testing.T) {
	p := newTestPaddle()

	for range 100 {
		p.MoveLeft()
		p.Update()
	}
	assert.InDelta(t, 0.0, p.X, 1e-6)
	assert.Equal(t, 0.0, p.TargetX)

	for range 200 {
		p.MoveRight()
		p.Update()
		require.LessOrEqual(t, p.X+p.Width, testField.W)
		require.GreaterOrEqual(t, p.X, 0.0)
	}
	assert.InDelta(t, testField.W-p.Width, p.X, 1e-6)
}

func TestPaddleSmoothing(t *testing.T) {
	p := newTestPaddle()
	p.MoveLeft()
	require.InDelta(t, 194.5, p.TargetX, 1e-9)

	p.Update()
	assert.InDelta(t, 202.5+(194.5-202.5)*0.3, p.X, 1e-9)
}

func TestPaddleMoveTo(t *testing.T) {
	p := newTestPaddle()

	p.MoveTo(100)
	assert.InDelta(t, 62.5, p.TargetX, 1e-9)

	p.MoveTo(-50)
	assert.Equal(t, 0.0, p.TargetX)

	p.MoveTo(10_000)
	assert.InDelta(t, testField.W-p.Width, p.TargetX, 1e-9)

	before := p.TargetX
	p.MoveTo(math.NaN())
	p.MoveTo(math.Inf(1))
	assert.Equal(t, before, p.TargetX, "non-finite targets are ignored")
}

func TestPaddleExtendStaysInField(t *testing.T) {
	p := newTestPaddle()
	p.X = p.maxX()
	p.TargetX = p.X

	p.Extend()

	assert.True(t, p.Extended)
	assert.InDelta(t, 112.0, p.Width, 1e-9)
	assert.LessOrEqual(t, p.X+p.Width, testField.W)
}

func TestPaddleExtendExpires(t *testing.T) {
	p := newTestPaddle()
	p.Extend()
	require.Equal(t, 600, p.ExtendRemaining)

	for range 599 {
		p.Update()
	}
	assert.True(t, p.Extended)

	p.Update()
	assert.False(t, p.Extended)
	assert.InDelta(t, 75.0, p.Width, 1e-9)
	assert.Equal(t, 0, p.ExtendRemaining)
}

func TestPaddleExtendDoesNotStack(t *testing.T) {
	p := newTestPaddle()
	p.Extend()
	for range 100 {
		p.Update()
	}
	p.Extend()

	assert.Equal(t, 600, p.ExtendRemaining)
	assert.InDelta(t, 112.0, p.Width, 1e-9)
}

func TestNilPaddleIsInvalid(t *testing.T) {
	var p *Paddle
	assert.False(t, p.valid())

	pu := &PowerUp{X: 10, Y: 10, Radius: 8}
	assert.False(t, pu.CheckPaddleCollision(nil))
}

func TestPowerUpPaddleCatch(t *testing.T) {
	p := newTestPaddle()
	bottom := p.Y + p.Height

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"over the middle", p.CenterX(), p.Y, true},
		{"radius touches the top", p.CenterX(), p.Y - 8, true},
		{"radius touches the bottom", p.CenterX(), bottom + 8, true},
		{"above the reach", p.CenterX(), p.Y - 8.5, false},
		{"left edge", p.X, p.Y, true},
		{"past the right edge", p.X + p.Width + 1, p.Y, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pu := &PowerUp{X: tc.x, Y: tc.y, Radius: 8}
			assert.Equal(t, tc.want, pu.CheckPaddleCollision(p))
		})
	}
}
