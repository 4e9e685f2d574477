package breakout

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual constants
const (
	PaddleChar   = '▀'
	BallChar     = '●'
	TrailChar    = '·'
	BrickChar    = '█'
	SparkChar    = '*'
	BorderHoriz  = '─'
	LifeChar     = '♥'
	hudRows      = 2
	trailVisible = 3
	minScreenW   = 40
	minScreenH   = 16
	ticksPerSec  = 60
)

// viewport maps field units onto the terminal cells below the HUD.
type viewport struct {
	top   int
	w, h  int
	field Field
}

func newViewport(dst *core.Screen, field Field) viewport {
	return viewport{top: hudRows, w: dst.Width(), h: dst.Height() - hudRows, field: field}
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x / v.field.W * float64(v.w)))
}

func (v viewport) row(y float64) int {
	return v.top + int(math.Floor(y/v.field.H*float64(v.h)))
}

// span maps a field interval to cells [from, to), at least one cell wide.
func span(from, to int) (int, int) {
	if to <= from {
		to = from + 1
	}
	return from, to
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}
	if g.session == nil {
		return
	}

	snap := g.session.Snapshot()
	v := newViewport(dst, snap.Field)

	renderHUD(dst, &snap)
	if snap.State != StateStart {
		renderBricks(dst, v, &snap)
		renderPowerUps(dst, v, &snap)
		renderPaddle(dst, v, &snap)
		renderBalls(dst, v, &snap)
		renderParticles(dst, v, &snap)
	}
	renderOverlay(dst, &snap)
}

// renderHUD draws score, level and lives on row 0 and the effect bar on row 1.
func renderHUD(dst *core.Screen, snap *Snapshot) {
	dst.DrawTextColored(1, 0, fmt.Sprintf("Score: %d", snap.Score), core.ColorBrightYellow)
	dst.DrawTextColored(1+len(fmt.Sprintf("Score: %d", snap.Score))+2, 0,
		fmt.Sprintf("Hi: %d", snap.HighScore), core.ColorGray)

	var levelText string
	if snap.Mode == ModeEndless {
		levelText = fmt.Sprintf("Level %d %s", snap.Level, snap.LevelName)
	} else {
		levelText = fmt.Sprintf("Level %d/%d %s", snap.Level, LevelCount(), snap.LevelName)
	}
	dst.DrawTextCentered(0, levelText)

	lives := strings.Repeat(string(LifeChar), max(snap.Lives, 0))
	dst.DrawTextColored(dst.Width()-utf8.RuneCountInString(lives)-1, 0, lives, core.ColorBrightRed)

	if snap.HasEffect {
		secs := (snap.Effect.Remaining + ticksPerSec - 1) / ticksPerSec
		label := fmt.Sprintf("%c %s %ds", snap.Effect.Kind.Symbol(), snap.Effect.Kind, secs)
		dst.DrawTextColored(1, 1, label, snap.Effect.Kind.Color())
		return
	}
	dst.DrawHLine(0, 1, dst.Width(), BorderHoriz)
}

// renderBricks draws all remaining bricks in their tier color.
func renderBricks(dst *core.Screen, v viewport, snap *Snapshot) {
	for _, b := range snap.Bricks {
		if b.Destroyed {
			continue
		}
		c0, c1 := span(v.col(b.X), v.col(b.X+b.Width))
		if c1-c0 >= 3 {
			c1-- // keep a gap between neighbours
		}
		r0, r1 := span(v.row(b.Y), v.row(b.Y+b.Height))
		if r1-r0 >= 2 {
			r1--
		}
		dst.FillCells(c0, r0, c1-c0, r1-r0, BrickChar, b.Tier.Color())
	}
}

// renderPowerUps draws falling power-ups as their symbol.
func renderPowerUps(dst *core.Screen, v viewport, snap *Snapshot) {
	for _, p := range snap.PowerUps {
		dst.SetColored(v.col(p.X), v.row(p.Y), p.Kind.Symbol(), p.Kind.Color())
	}
}

// renderPaddle draws the player's paddle.
func renderPaddle(dst *core.Screen, v viewport, snap *Snapshot) {
	p := snap.Paddle
	c0, c1 := span(v.col(p.X), v.col(p.X+p.Width))
	color := core.ColorBrightWhite
	if p.Extended {
		color = core.ColorBrightCyan
	}
	dst.FillCells(c0, v.row(p.Y), c1-c0, 1, PaddleChar, color)
}

// renderBalls draws balls with a short fading trail.
func renderBalls(dst *core.Screen, v viewport, snap *Snapshot) {
	for _, b := range snap.Balls {
		bx, by := v.col(b.X), v.row(b.Y)
		for i, pt := range b.Trail {
			if i >= trailVisible {
				break
			}
			tx, ty := v.col(pt.X), v.row(pt.Y)
			if tx == bx && ty == by {
				continue
			}
			dst.SetColored(tx, ty, TrailChar, core.ColorGray)
		}
	}
	for _, b := range snap.Balls {
		dst.SetColored(v.col(b.X), v.row(b.Y), BallChar, core.ColorBrightWhite)
	}
}

// renderParticles draws sparks and score popups.
func renderParticles(dst *core.Screen, v viewport, snap *Snapshot) {
	for _, p := range snap.Particles {
		y := v.row(p.Y)
		if y < v.top {
			continue
		}
		switch p.Kind {
		case ParticleSpark:
			dst.SetColored(v.col(p.X), y, SparkChar, p.Color)
		case ParticleScorePopup:
			x := v.col(p.X) - utf8.RuneCountInString(p.Text)/2
			dst.DrawTextColored(x, y, p.Text, p.Color)
		}
	}
}

// renderOverlay draws the message for the current state.
func renderOverlay(dst *core.Screen, snap *Snapshot) {
	switch snap.State {
	case StateStart:
		title := "BREAKOUT"
		if snap.Mode == ModeEndless {
			title = "BREAKOUT ENDLESS"
		}
		drawCenteredBox(dst, core.ColorBrightCyan, title,
			fmt.Sprintf("High score: %d", snap.HighScore),
			"SPACE to start",
			"←/→ or mouse to move, ↑ or click to launch")

	case StateCountdown:
		drawCenteredBox(dst, core.ColorBrightYellow, fmt.Sprintf("%d", snap.Countdown), "Get ready...")

	case StatePlaying:
		for _, b := range snap.Balls {
			if b.Attached {
				dst.DrawTextCenteredColored(dst.Height()-1, "Press ↑ or click to launch", core.ColorGray)
				break
			}
		}

	case StatePaused:
		drawCenteredBox(dst, core.ColorBrightWhite, "PAUSED", "SPACE to resume", "R to quit to title")

	case StateNextLevel:
		drawCenteredBox(dst, core.ColorBrightGreen,
			fmt.Sprintf("LEVEL %d", snap.Level), snap.LevelName)

	case StateGameOver:
		drawCenteredBox(dst, core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Score: %d  Level: %d", snap.Score, snap.Level),
			fmt.Sprintf("High score: %d", snap.HighScore),
			"SPACE to continue")

	case StateVictory:
		drawCenteredBox(dst, core.ColorBrightYellow, "YOU WIN!",
			fmt.Sprintf("Final Score: %d", snap.Score),
			fmt.Sprintf("High score: %d", snap.HighScore),
			"SPACE to continue")
	}
}

// drawCenteredBox draws a centered message box with a title and lines below it.
func drawCenteredBox(dst *core.Screen, color core.Color, title string, lines ...string) {
	w := dst.Width()
	h := dst.Height()

	boxW := utf8.RuneCountInString(title)
	for _, l := range lines {
		boxW = max(boxW, utf8.RuneCountInString(l))
	}
	boxW += 4
	boxH := len(lines) + 4
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillCells(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH, color)

	titleX := boxX + (boxW-utf8.RuneCountInString(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, color)
	for i, l := range lines {
		x := boxX + (boxW-utf8.RuneCountInString(l))/2
		dst.DrawText(x, boxY+3+i, l)
	}
}
