package breakout

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

func newTestBrickField(seed uint64) *BrickField {
	cfg := config.DefaultBreakoutConfig()
	curve := config.NewSpeedCurve(cfg.Ball.BaseSpeed, cfg.Difficulty)
	return NewBrickField(cfg.Bricks, testField, curve, rand.New(rand.NewPCG(seed, seed)))
}

func TestTierPoints(t *testing.T) {
	assert.Equal(t, 25, TierRed.Points())
	assert.Equal(t, 50, TierOrange.Points())
	assert.Equal(t, 75, TierGreen.Points())
	assert.Equal(t, 100, TierBlue.Points())
}

func TestBrickDestructionIsMonotonic(t *testing.T) {
	b := NewBrick(0, 0, 45, 15, TierGreen)
	require.Equal(t, 75, b.Points)
	assert.False(t, b.Destroyed())

	b.Hit()
	b.Hit()
	assert.True(t, b.Destroyed())
}

func TestLayoutsFitAndDoNotOverlap(t *testing.T) {
	field := core.NewRect(0, 0, testField.W, testField.H)

	for level := 1; level <= LevelCount(); level++ {
		t.Run(LevelName(level), func(t *testing.T) {
			f := newTestBrickField(uint64(level))
			require.Equal(t, level, f.LoadLevel(level))

			bricks := f.Bricks()
			require.NotEmpty(t, bricks)
			for i, a := range bricks {
				assert.True(t, a.Bounds().Inside(field), "brick %d leaves the field", i)
				for j := i + 1; j < len(bricks); j++ {
					assert.False(t, a.Bounds().Overlaps(bricks[j].Bounds()), "bricks %d and %d overlap", i, j)
				}
			}
		})
	}
}

func TestPlaceSkipsOverlappingBricks(t *testing.T) {
	f := newTestBrickField(1)
	g := f.newGrid()

	g.place(0, 0, TierRed, 0)
	g.place(0, 0, TierBlue, 0)
	g.place(0.5, 0, TierBlue, 0)
	g.place(1, 0, TierGreen, 0)

	require.Len(t, f.Bricks(), 2)
	assert.Equal(t, TierRed, f.Bricks()[0].Tier)
	assert.Equal(t, TierGreen, f.Bricks()[1].Tier)
	assert.Equal(t, 2, g.dropped)
}

func TestLayoutSizes(t *testing.T) {
	f := newTestBrickField(1)

	f.LoadLevel(1)
	assert.Len(t, f.Bricks(), 80)

	f.LoadLevel(6)
	assert.Len(t, f.Bricks(), len(spiralCells))

	f.LoadLevel(8)
	assert.Len(t, f.Bricks(), 24)
}

func TestBlockLayoutTiers(t *testing.T) {
	f := newTestBrickField(1)
	f.LoadLevel(1)

	bricks := f.Bricks()
	assert.Equal(t, TierRed, bricks[0].Tier)
	assert.Equal(t, TierBlue, bricks[len(bricks)-1].Tier)
	assert.InDelta(t, 6.0, bricks[0].X, 1e-9, "grid is centered")
	assert.InDelta(t, 40.0, bricks[0].Y, 1e-9)
}

func TestScatterIsSeeded(t *testing.T) {
	a := newTestBrickField(7)
	b := newTestBrickField(7)
	a.LoadLevel(7)
	b.LoadLevel(7)

	require.Equal(t, len(a.Bricks()), len(b.Bricks()))
	for i := range a.Bricks() {
		assert.Equal(t, a.Bricks()[i].Bounds(), b.Bricks()[i].Bounds())
	}
}

func TestLevelCompleteAfterAllBricksHit(t *testing.T) {
	f := newTestBrickField(1)
	f.LoadLevel(3)

	total := f.Remaining()
	require.Positive(t, total)

	for i, b := range f.Bricks() {
		assert.False(t, f.IsLevelComplete())
		b.Hit()
		assert.Equal(t, total-i-1, f.Remaining())
		assert.Len(t, f.ActiveBricks(), total-i-1)
	}
	assert.True(t, f.IsLevelComplete())
}

func TestLoadLevelOutOfRange(t *testing.T) {
	f := newTestBrickField(1)

	assert.Equal(t, 1, f.LoadLevel(0))
	assert.Equal(t, 1, f.LoadLevel(-3))
	assert.Equal(t, 1, f.LoadLevel(9))
	assert.Equal(t, 1, f.Level())
	assert.InDelta(t, 3.0, f.LevelSpeed(), 1e-9)
}

func TestLoadLevelWraps(t *testing.T) {
	f := newTestBrickField(1)
	f.SetWrap(true)

	assert.Equal(t, 9, f.LoadLevel(9))
	assert.Equal(t, "Block", LevelName(9))
	assert.Len(t, f.Bricks(), 80)
	assert.InDelta(t, 4.6, f.LevelSpeed(), 1e-9)
}

func TestLevelSpeedRises(t *testing.T) {
	assert.InDelta(t, 3.0, LevelSpeed(1), 1e-9)
	assert.InDelta(t, 3.2, LevelSpeed(2), 1e-9)
	assert.InDelta(t, 4.4, LevelSpeed(8), 1e-9)
}

func TestLevelNames(t *testing.T) {
	names := []string{"Block", "Checkerboard", "Pyramid", "Diamond", "Wave", "Spiral", "Scatter", "Fortress"}
	for i, name := range names {
		assert.Equal(t, name, LevelName(i+1))
	}
}
