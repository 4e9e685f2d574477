package breakout

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Point is a position in field units.
type Point struct {
	X, Y float64
}

// Trail is a fixed-size ring of recent ball positions.
type Trail struct {
	buf  []Point
	head int // index of the newest entry
	n    int
}

// NewTrail creates a trail holding at most size positions.
func NewTrail(size int) Trail {
	return Trail{buf: make([]Point, max(size, 0))}
}

// Push records a position, dropping the oldest one when full.
func (t *Trail) Push(p Point) {
	if len(t.buf) == 0 {
		return
	}
	t.head = (t.head + 1) % len(t.buf)
	t.buf[t.head] = p
	if t.n < len(t.buf) {
		t.n++
	}
}

// Len returns the number of stored positions.
func (t *Trail) Len() int {
	return t.n
}

// Reset drops all positions.
func (t *Trail) Reset() {
	t.n = 0
	t.head = 0
}

// Positions returns the stored positions, newest first.
func (t *Trail) Positions() []Point {
	out := make([]Point, t.n)
	for i := range t.n {
		out[i] = t.buf[(t.head-i+len(t.buf))%len(t.buf)]
	}
	return out
}

// CollisionResult reports what a ball touched during one update.
type CollisionResult struct {
	BricksHit        []*Brick
	PowerUpCollected *PowerUp
	BallLost         bool

	PaddleHit    bool
	PaddleOffset float64 // -1 left edge .. 1 right edge
	WallHit      bool
}

// Ball is a ball either riding the paddle (Attached) or in free flight.
type Ball struct {
	X, Y            float64
	DX, DY          float64
	Radius          float64
	BaseSpeed       float64
	SpeedMultiplier float64
	Attached        bool

	Trail Trail

	paddle *Paddle
	field  Field
	gap    float64 // gap between an attached ball and the paddle top
}

// NewBall creates a ball attached to paddle. Call Reset to aim it.
func NewBall(paddle *Paddle, field Field, radius, baseSpeed, gap float64, trailLen int) *Ball {
	b := &Ball{
		Radius:          radius,
		BaseSpeed:       baseSpeed,
		SpeedMultiplier: fallbackMultiplier,
		Attached:        true,
		Trail:           NewTrail(trailLen),
		paddle:          paddle,
		field:           field,
		gap:             gap,
	}
	b.follow()
	return b
}

// Speed returns the current velocity magnitude.
func (b *Ball) Speed() float64 {
	return math.Hypot(b.DX, b.DY)
}

// Bounds returns the ball's bounding box.
func (b *Ball) Bounds() core.Rect {
	return core.RectAround(b.X, b.Y, b.Radius)
}

// validSpeeds replaces unusable speed values with the fallbacks.
func (b *Ball) validSpeeds() {
	if !core.IsFinite(b.BaseSpeed) || b.BaseSpeed <= 0 {
		logger.Warn("invalid ball base speed, using fallback", "speed", b.BaseSpeed, "fallback", fallbackBaseSpeed)
		b.BaseSpeed = fallbackBaseSpeed
	}
	if !core.IsFinite(b.SpeedMultiplier) || b.SpeedMultiplier <= 0 {
		logger.Warn("invalid speed multiplier, using fallback", "multiplier", b.SpeedMultiplier, "fallback", fallbackMultiplier)
		b.SpeedMultiplier = fallbackMultiplier
	}
}

// Reset re-attaches the ball and aims it at a random angle in the upward
// cone [-120, -60] degrees. A nil rng aims straight up.
func (b *Ball) Reset(rng *rand.Rand) {
	b.validSpeeds()
	if !b.paddle.valid() {
		logger.Warn("ball has no usable paddle, parking it at the field center")
	}
	b.Attached = true
	b.Trail.Reset()
	b.follow()

	angle := straightUp
	if rng != nil {
		angle += (rng.Float64() - 0.5) * launchSpread
	}
	b.DX, b.DY = velocity(angle, b.BaseSpeed*b.SpeedMultiplier)
}

// Launch releases an attached ball. Reports whether anything changed.
func (b *Ball) Launch() bool {
	if !b.Attached {
		return false
	}
	b.Attached = false
	return true
}

// SetSpeed rescales the velocity to BaseSpeed*multiplier keeping its direction.
// A stalled or broken velocity is replaced by a straight-up one.
func (b *Ball) SetSpeed(multiplier float64) {
	if !core.IsFinite(multiplier) || multiplier <= 0 {
		logger.Warn("invalid speed multiplier, using fallback", "multiplier", multiplier, "fallback", fallbackMultiplier)
		multiplier = fallbackMultiplier
	}
	b.SpeedMultiplier = multiplier
	b.validSpeeds()

	target := b.BaseSpeed * b.SpeedMultiplier
	current := b.Speed()
	if current == 0 || !core.IsFinite(current) {
		b.DX, b.DY = 0, -target
		return
	}
	b.DX = b.DX / current * target
	b.DY = b.DY / current * target
}

// follow pins an attached ball above the paddle center.
func (b *Ball) follow() {
	if !b.paddle.valid() {
		b.X = b.field.W / 2
		b.Y = b.field.H - fallbackBallLift
		return
	}
	b.X = b.paddle.CenterX()
	b.Y = b.paddle.Y - b.Radius - b.gap
}

// Update advances the ball by one tick and resolves collisions against the
// walls, the paddle, the first overlapping brick and the power-ups.
// Bricks that are hit are marked destroyed; power-ups are only reported.
func (b *Ball) Update(bricks []*Brick, powerUps []*PowerUp) CollisionResult {
	var res CollisionResult

	if b.Attached {
		b.follow()
		return res
	}

	b.Trail.Push(Point{X: b.X, Y: b.Y})

	b.X += b.DX
	b.Y += b.DY

	// Side walls
	if b.X-b.Radius <= 0 {
		b.DX = math.Abs(b.DX)
		res.WallHit = true
	} else if b.X+b.Radius >= b.field.W {
		b.DX = -math.Abs(b.DX)
		res.WallHit = true
	}
	if res.WallHit {
		b.X = core.ClampF(b.X, b.Radius, b.field.W-b.Radius)
	}

	// Top wall
	if b.Y-b.Radius <= 0 {
		b.DY = math.Abs(b.DY)
		b.Y = b.Radius
		res.WallHit = true
	}

	if b.Y-b.Radius > b.field.H {
		res.BallLost = true
		return res
	}

	bounds := b.Bounds()

	if b.DY > 0 && b.paddle.valid() {
		pb := b.paddle.Bounds()
		if bounds.Intersects(pb) {
			offset := paddleHitOffset(b.X, pb)
			b.DX, b.DY = velocity(reflectionAngle(offset), b.Speed())
			b.Y = pb.Top - b.Radius
			res.PaddleHit = true
			res.PaddleOffset = offset
			return res
		}
	}

	for _, brick := range bricks {
		if brick.Destroyed() {
			continue
		}
		bb := brick.Bounds()
		if !bounds.Intersects(bb) {
			continue
		}
		ApplyCollisionBounce(b, brickHitSide(bounds, bb))
		brick.Hit()
		res.BricksHit = append(res.BricksHit, brick)
		break
	}

	for _, pu := range powerUps {
		if math.Hypot(b.X-pu.X, b.Y-pu.Y) < b.Radius+pu.Radius {
			res.PowerUpCollected = pu
			break
		}
	}

	return res
}

// clone returns a free-flying copy with an empty trail.
func (b *Ball) clone() *Ball {
	c := *b
	c.Trail = NewTrail(len(b.Trail.buf))
	c.Attached = false
	return &c
}
