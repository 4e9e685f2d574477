package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

func sendMenu(m MenuModel, msg tea.Msg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuListsModesAndLevelPicker(t *testing.T) {
	m := NewMenuModel(nil, testConfig())

	require.Len(t, m.items, 3)
	assert.Equal(t, "breakout", m.items[0].GameID)
	assert.Equal(t, "breakout_endless", m.items[1].GameID)
	assert.True(t, m.items[2].picker)

	view := m.View()
	assert.Contains(t, view, "Breakout (Endless)")
	assert.Contains(t, view, "Select level...")
}

func TestMenuShowsBestScores(t *testing.T) {
	store := openStore(t)
	_, err := store.SaveScore("breakout_endless", 4321, 11)
	require.NoError(t, err)

	m := NewMenuModel(store, testConfig())
	assert.Equal(t, 0, m.items[0].Best)
	assert.Equal(t, 4321, m.items[1].Best)
	assert.Contains(t, m.View(), "best 4321")
}

func TestMenuSelectMode(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)

	require.NotNil(t, m.Selected())
	assert.Equal(t, "breakout_endless", m.Selected().GameID)
	assert.Zero(t, m.Selected().Level)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestMenuLevelPicker(t *testing.T) {
	m := NewMenuModel(nil, testConfig())
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.levels)
	assert.Nil(t, m.Selected())
	assert.Contains(t, m.View(), "SELECT LEVEL")
	assert.Contains(t, m.View(), breakout.LevelName(breakout.LevelCount()))

	// Back returns to the mode list
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyEscape})
	assert.Nil(t, m.levels)

	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyDown})
	m = sendMenu(m, tea.KeyMsg{Type: tea.KeyEnter})

	require.NotNil(t, m.Selected())
	assert.Equal(t, "breakout", m.Selected().GameID)
	assert.Equal(t, 3, m.Selected().Level)
}

func TestLevelPickerStaysInRange(t *testing.T) {
	m := NewLevelSelectModel(80, 24)
	for range breakout.LevelCount() + 5 {
		next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
		m = next.(LevelSelectModel)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, breakout.LevelCount(), next.(LevelSelectModel).Chosen())

	m = NewLevelSelectModel(80, 24)
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	next, _ = next.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, 1, next.(LevelSelectModel).Chosen())
}

func TestMenuScoreboardAndQuit(t *testing.T) {
	m := sendMenu(NewMenuModel(nil, testConfig()), tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, m.WantsScoreboard())

	m = sendMenu(NewMenuModel(nil, testConfig()), runeKey('q'))
	assert.True(t, m.IsQuitting())
	assert.Empty(t, m.View())
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := sendMenu(NewMenuModel(nil, testConfig()), tea.WindowSizeMsg{Width: 132, Height: 50})
	assert.Equal(t, 132, m.Config().ScreenW)
	assert.Equal(t, 50, m.Config().ScreenH)
}

func TestStartGameAppliesLevel(t *testing.T) {
	game, err := StartGame(MenuResult{GameID: "breakout", Level: 4})
	require.NoError(t, err)

	bg, ok := game.(*breakout.Game)
	require.True(t, ok)
	game.Reset(testConfig())
	assert.Equal(t, 4, bg.State().Level)

	_, err = StartGame(MenuResult{GameID: "missing"})
	assert.Error(t, err)
}

func TestCenterTextMeasuresStyledText(t *testing.T) {
	plain := centerText("abcd", 10)
	styled := centerText(levelTitleStyle.Render("abcd"), 10)

	assert.Equal(t, "   abcd", plain)
	assert.Equal(t, "   ", styled[:3])
	assert.Equal(t, "toolong", centerText("toolong", 4))
}
