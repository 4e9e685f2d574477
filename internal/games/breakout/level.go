package breakout

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

const (
	levelCount   = 8
	gridColumns  = 10
	scatterRows  = 6
	scatterOdds  = 0.7
	fortressLift = 50.0 // fortress shift to the right, field units
)

var levelNames = [levelCount]string{
	"Block",
	"Checkerboard",
	"Pyramid",
	"Diamond",
	"Wave",
	"Spiral",
	"Scatter",
	"Fortress",
}

// Tier cycles used by the layouts.
var (
	warmFirst = []Tier{TierRed, TierOrange, TierGreen, TierBlue}
	coolFirst = []Tier{TierBlue, TierGreen, TierOrange, TierRed}
)

// spiralCells lists (col, row) cells of the spiral layout in drawing order.
var spiralCells = [][2]int{
	{3, 2}, {4, 2}, {5, 2}, {6, 2},
	{6, 3}, {6, 4}, {6, 5},
	{5, 5}, {4, 5}, {3, 5},
	{3, 4}, {3, 3},
	{4, 3}, {5, 3}, {5, 4}, {4, 4},
}

// LevelCount returns the number of distinct layouts.
func LevelCount() int {
	return levelCount
}

// layoutIndex maps a level number to a layout, wrapping past the last one.
func layoutIndex(level int) int {
	if level < 1 {
		return 0
	}
	return (level - 1) % levelCount
}

// LevelName returns the layout name for a level number.
func LevelName(level int) string {
	return levelNames[layoutIndex(level)]
}

// LevelSpeed returns the default base ball speed for a level.
func LevelSpeed(level int) float64 {
	cfg := config.DefaultBreakoutConfig()
	return config.NewSpeedCurve(cfg.Ball.BaseSpeed, cfg.Difficulty).Speed(level)
}

// BrickField holds the bricks of the active level.
type BrickField struct {
	bricks []*Brick
	level  int
	speed  float64

	cfg   config.BricksConfig
	field Field
	curve *config.SpeedCurve
	rng   *rand.Rand
	wrap  bool // endless mode: levels past the last layout cycle
}

// NewBrickField creates an empty field. Call LoadLevel to populate it.
func NewBrickField(cfg config.BricksConfig, field Field, curve *config.SpeedCurve, rng *rand.Rand) *BrickField {
	return &BrickField{cfg: cfg, field: field, curve: curve, rng: rng}
}

// SetWrap allows level numbers past LevelCount, cycling the layouts.
func (f *BrickField) SetWrap(wrap bool) {
	f.wrap = wrap
}

// LoadLevel replaces the bricks with the layout for level n and sets the
// level's ball speed. Out-of-range levels load level 1. Returns the level loaded.
func (f *BrickField) LoadLevel(n int) int {
	if n < 1 || (n > levelCount && !f.wrap) {
		logger.Warn("level out of range, loading level 1", "level", n)
		n = 1
	}
	f.level = n
	f.speed = f.curve.Speed(n)
	f.bricks = make([]*Brick, 0, gridColumns*8)

	g := f.newGrid()
	switch layoutIndex(n) {
	case 0:
		g.block()
	case 1:
		g.checkerboard()
	case 2:
		g.pyramid()
	case 3:
		g.diamond()
	case 4:
		g.wave()
	case 5:
		g.spiral()
	case 6:
		g.scatter(f.rng)
	case 7:
		g.fortress()
	}

	if g.dropped > 0 {
		logger.Warn("bricks outside the field or overlapping were skipped", "level", n, "count", g.dropped)
	}
	return n
}

// Level returns the current level number.
func (f *BrickField) Level() int {
	return f.level
}

// LevelSpeed returns the base ball speed of the current level.
func (f *BrickField) LevelSpeed() float64 {
	return f.speed
}

// Bricks returns all bricks of the level, destroyed ones included.
func (f *BrickField) Bricks() []*Brick {
	return f.bricks
}

// ActiveBricks returns the bricks that are still standing.
func (f *BrickField) ActiveBricks() []*Brick {
	out := make([]*Brick, 0, len(f.bricks))
	for _, b := range f.bricks {
		if !b.Destroyed() {
			out = append(out, b)
		}
	}
	return out
}

// Remaining returns the number of standing bricks.
func (f *BrickField) Remaining() int {
	n := 0
	for _, b := range f.bricks {
		if !b.Destroyed() {
			n++
		}
	}
	return n
}

// IsLevelComplete reports whether every brick is destroyed.
func (f *BrickField) IsLevelComplete() bool {
	return f.Remaining() == 0
}

// grid places bricks on a ten column lattice centered in the field.
type grid struct {
	f       *BrickField
	startX  float64
	colStep float64
	rowStep float64
	dropped int
}

func (f *BrickField) newGrid() *grid {
	colStep := f.cfg.Width + f.cfg.Padding
	span := gridColumns*f.cfg.Width + (gridColumns-1)*f.cfg.Padding
	return &grid{
		f:       f,
		startX:  max((f.field.W-span)/2, 0),
		colStep: colStep,
		rowStep: f.cfg.Height + f.cfg.Padding,
	}
}

// place adds a brick at a (possibly fractional) column and a row.
// Bricks that would leave the field or cover an earlier brick are skipped.
func (g *grid) place(col float64, row int, tier Tier, shift float64) {
	x := g.startX + col*g.colStep + shift
	y := g.f.cfg.Top + float64(row)*g.rowStep
	b := NewBrick(x, y, g.f.cfg.Width, g.f.cfg.Height, tier)

	if !b.Bounds().Inside(core.NewRect(0, 0, g.f.field.W, g.f.field.H)) {
		g.dropped++
		return
	}
	for _, other := range g.f.bricks {
		if b.Bounds().Overlaps(other.Bounds()) {
			g.dropped++
			return
		}
	}
	g.f.bricks = append(g.f.bricks, b)
}

func (g *grid) block() {
	rows := []Tier{TierRed, TierRed, TierOrange, TierOrange, TierGreen, TierGreen, TierBlue, TierBlue}
	for row, tier := range rows {
		for col := range gridColumns {
			g.place(float64(col), row, tier, 0)
		}
	}
}

func (g *grid) checkerboard() {
	for row := range 8 {
		for col := range gridColumns {
			if (row+col)%2 == 0 {
				g.place(float64(col), row, warmFirst[row%len(warmFirst)], 0)
			}
		}
	}
}

func (g *grid) pyramid() {
	for row := range 7 {
		offset := float64(row) / 2
		for col := range gridColumns - row {
			g.place(offset+float64(col), row, coolFirst[row%len(coolFirst)], 0)
		}
	}
}

func (g *grid) diamond() {
	const rows = 7
	mid := rows / 2
	for row := range rows {
		width := (rows - row) * 2
		if row <= mid {
			width = (row + 1) * 2
		}
		offset := float64(gridColumns-width) / 2
		for col := range width {
			g.place(offset+float64(col), row, warmFirst[row%len(warmFirst)], 0)
		}
	}
}

func (g *grid) wave() {
	for col := range gridColumns {
		height := int(math.Floor(math.Sin(float64(col)*0.8)*2 + 4))
		for row := range height {
			g.place(float64(col), row, warmFirst[(col+row)%len(warmFirst)], 0)
		}
	}
}

func (g *grid) spiral() {
	for i, cell := range spiralCells {
		g.place(float64(cell[0]), cell[1], coolFirst[(i/4)%len(coolFirst)], 0)
	}
}

func (g *grid) scatter(rng *rand.Rand) {
	for row := range scatterRows {
		for col := range gridColumns {
			if rng == nil || rng.Float64() < scatterOdds {
				g.place(float64(col), row, warmFirst[row%len(warmFirst)], 0)
			}
		}
	}
	// An empty draw would complete the level on its first tick.
	if len(g.f.bricks) == 0 {
		g.place(float64(gridColumns/2), 0, TierRed, 0)
	}
}

func (g *grid) fortress() {
	rows := []Tier{TierBlue, TierGreen, TierOrange}
	for row, tier := range rows {
		for col := range 8 {
			g.place(float64(col), row, tier, fortressLift)
		}
	}
}
