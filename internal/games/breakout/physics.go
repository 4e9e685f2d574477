package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Reflection cone around straight up.
const (
	straightUp   = -math.Pi / 2
	maxDeflect   = math.Pi / 3 // 60 degrees either side
	launchSpread = math.Pi / 3 // full width of the random launch cone
)

// CollisionSide indicates which side of an object was hit.
type CollisionSide int

const (
	CollisionNone CollisionSide = iota
	CollisionTop
	CollisionBottom
	CollisionLeft
	CollisionRight
)

// brickHitSide picks the side of the shallowest penetration of ball into brick.
// Ties go to the horizontal sides.
func brickHitSide(ball, brick core.Rect) CollisionSide {
	overlapLeft := ball.Right - brick.Left
	overlapRight := brick.Right - ball.Left
	overlapTop := ball.Bottom - brick.Top
	overlapBottom := brick.Bottom - ball.Top

	least := min(overlapLeft, overlapRight, overlapTop, overlapBottom)
	switch least {
	case overlapLeft:
		return CollisionLeft
	case overlapRight:
		return CollisionRight
	case overlapTop:
		return CollisionTop
	default:
		return CollisionBottom
	}
}

// ApplyCollisionBounce flips the velocity component for the hit side.
func ApplyCollisionBounce(ball *Ball, side CollisionSide) {
	switch side {
	case CollisionTop, CollisionBottom:
		ball.DY = -ball.DY
	case CollisionLeft, CollisionRight:
		ball.DX = -ball.DX
	}
}

// paddleHitOffset maps the ball's x across the paddle to [-1, 1].
func paddleHitOffset(x float64, paddle core.Rect) float64 {
	w := paddle.Width()
	if w <= 0 {
		return 0
	}
	rel := core.ClampF((x-paddle.Left)/w, 0, 1)
	return rel*2 - 1
}

// reflectionAngle converts a paddle hit offset into a launch angle.
// Offset 0 is straight up, -1 is 150 degrees and 1 is 30 degrees above the x axis.
func reflectionAngle(offset float64) float64 {
	return straightUp + offset*maxDeflect
}

// velocity returns the components of a vector with the given angle and length.
func velocity(angle, speed float64) (dx, dy float64) {
	return math.Cos(angle) * speed, math.Sin(angle) * speed
}
