package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

type stubGame struct {
	id   string
	best int
}

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return "Stub " + g.id }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{HighScore: g.best} }
func (g *stubGame) SetHighScore(score int) { g.best = score }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub_a", func() Game { return &stubGame{id: "stub_a"} })

	require.True(t, Exists("stub_a"))
	g, err := Create("stub_a")
	require.NoError(t, err)
	assert.Equal(t, "stub_a", g.ID())

	aware, ok := g.(HighScoreAware)
	require.True(t, ok)
	aware.SetHighScore(42)
	assert.Equal(t, 42, g.State().HighScore)

	_, ok = g.(Resizable)
	assert.False(t, ok)
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no_such_game")
	assert.Error(t, err)
	assert.False(t, Exists("no_such_game"))
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
	assert.Panics(t, func() {
		Register("stub_dup", func() Game { return &stubGame{id: "stub_dup"} })
	})
}

func TestListIsSorted(t *testing.T) {
	Register("stub_z", func() Game { return &stubGame{id: "stub_z"} })
	Register("stub_m", func() Game { return &stubGame{id: "stub_m"} })

	list := List()
	for i := 1; i < len(list); i++ {
		assert.Less(t, list[i-1].ID, list[i].ID)
	}

	var found bool
	for _, info := range list {
		if info.ID == "stub_m" {
			found = true
			assert.Equal(t, "Stub stub_m", info.Title)
		}
	}
	assert.True(t, found)
}
