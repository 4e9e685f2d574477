package breakout

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestBrickHitSide(t *testing.T) {
	brick := core.NewRect(100, 100, 45, 15)

	tests := []struct {
		name string
		ball core.Rect
		want CollisionSide
	}{
		{"from left", core.RectAround(97, 107, 4), CollisionLeft},
		{"from right", core.RectAround(148, 107, 4), CollisionRight},
		{"from above", core.RectAround(120, 97, 4), CollisionTop},
		{"from below", core.RectAround(120, 118, 4), CollisionBottom},
		{"corner tie goes sideways", core.RectAround(97, 97, 4), CollisionLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, brickHitSide(tt.ball, brick))
		})
	}
}

func TestApplyCollisionBounce(t *testing.T) {
	b := &Ball{DX: 2, DY: 3}

	ApplyCollisionBounce(b, CollisionTop)
	assert.Equal(t, -3.0, b.DY)

	ApplyCollisionBounce(b, CollisionRight)
	assert.Equal(t, -2.0, b.DX)

	ApplyCollisionBounce(b, CollisionNone)
	assert.Equal(t, -2.0, b.DX)
	assert.Equal(t, -3.0, b.DY)
}

func TestPaddleHitOffset(t *testing.T) {
	paddle := core.NewRect(100, 300, 80, 10)

	assert.InDelta(t, -1.0, paddleHitOffset(100, paddle), 1e-9)
	assert.InDelta(t, 0.0, paddleHitOffset(140, paddle), 1e-9)
	assert.InDelta(t, 1.0, paddleHitOffset(180, paddle), 1e-9)
	assert.InDelta(t, -1.0, paddleHitOffset(50, paddle), 1e-9, "clamped")
	assert.InDelta(t, 1.0, paddleHitOffset(500, paddle), 1e-9, "clamped")
	assert.Equal(t, 0.0, paddleHitOffset(10, core.Rect{}))
}

func TestReflectionAngle(t *testing.T) {
	deg := func(r float64) float64 { return r * 180 / math.Pi }

	assert.InDelta(t, -90.0, deg(reflectionAngle(0)), 1e-9)
	assert.InDelta(t, -150.0, deg(reflectionAngle(-1)), 1e-9)
	assert.InDelta(t, -30.0, deg(reflectionAngle(1)), 1e-9)
}
