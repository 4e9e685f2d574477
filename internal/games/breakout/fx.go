package breakout

import (
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// ParticleKind selects a particle's behavior.
type ParticleKind int

const (
	ParticleSpark ParticleKind = iota
	ParticleScorePopup
)

const (
	sparkGravity      = 0.1
	sparkLife         = 40
	burstLife         = 80
	popupLife         = 60
	popupRise         = -1.0
	sparksPerBrick    = 6
	sparksPerLevelEnd = 50
)

var burstColors = []core.Color{core.ColorBrightRed, core.ColorOrange, core.ColorBrightGreen, core.ColorBrightBlue}

// Particle is a short-lived cosmetic effect.
type Particle struct {
	Kind    ParticleKind
	X, Y    float64
	VX, VY  float64
	Life    int
	MaxLife int
	Color   core.Color
	Text    string // score popups only
}

func (p *Particle) update() {
	switch p.Kind {
	case ParticleSpark:
		p.X += p.VX
		p.Y += p.VY
		p.VY += sparkGravity
	case ParticleScorePopup:
		p.Y += p.VY
	}
	p.Life--
}

// Alive reports whether the particle still has life left.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Effects owns all live particles. It draws from its own RNG so cosmetic
// effects never shift the gameplay random sequence.
type Effects struct {
	particles []Particle
	rng       *rand.Rand
}

// NewEffects creates an empty particle system.
func NewEffects(rng *rand.Rand) *Effects {
	return &Effects{rng: rng}
}

func (e *Effects) radial(x, y float64, count int, minSpeed, spread float64, life int, color func() core.Color) {
	for i := range count {
		angle := 2 * math.Pi * float64(i) / float64(count)
		speed := minSpeed + e.rng.Float64()*spread
		e.particles = append(e.particles, Particle{
			Kind:    ParticleSpark,
			X:       x,
			Y:       y,
			VX:      math.Cos(angle) * speed,
			VY:      math.Sin(angle) * speed,
			Life:    life,
			MaxLife: life,
			Color:   color(),
		})
	}
}

// BrickBurst emits sparks from a destroyed brick and a score popup above it.
func (e *Effects) BrickBurst(b *Brick) {
	cx, cy := b.Center()
	color := b.Tier.Color()
	e.radial(cx, cy, sparksPerBrick, 2, 3, sparkLife, func() core.Color { return color })
	e.particles = append(e.particles, Particle{
		Kind:    ParticleScorePopup,
		X:       cx,
		Y:       b.Y,
		VY:      popupRise,
		Life:    popupLife,
		MaxLife: popupLife,
		Color:   core.ColorBrightYellow,
		Text:    "+" + strconv.Itoa(b.Points),
	})
}

// LevelBurst emits a ring of sparks from the field center.
func (e *Effects) LevelBurst(field Field) {
	e.radial(field.W/2, field.H/2, sparksPerLevelEnd, 3, 5, burstLife, func() core.Color {
		return burstColors[e.rng.IntN(len(burstColors))]
	})
}

// Update advances every particle and drops the dead ones.
func (e *Effects) Update() {
	live := e.particles[:0]
	for i := range e.particles {
		p := e.particles[i]
		p.update()
		if p.Alive() {
			live = append(live, p)
		}
	}
	e.particles = live
}

// Clear removes all particles.
func (e *Effects) Clear() {
	e.particles = e.particles[:0]
}

// Particles returns a copy of the live particles.
func (e *Effects) Particles() []Particle {
	out := make([]Particle, len(e.particles))
	copy(out, e.particles)
	return out
}
