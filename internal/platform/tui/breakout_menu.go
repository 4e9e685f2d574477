package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

var (
	levelTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	levelCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	levelDimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// LevelSelectModel lets the player pick the campaign level to start at.
type LevelSelectModel struct {
	cursor    int
	width     int
	height    int
	keyMapper *KeyMapper
	level     int // chosen level, 0 while choosing
	quitting  bool
	back      bool
}

// NewLevelSelectModel creates a level picker with the cursor on level 1.
func NewLevelSelectModel(width, height int) LevelSelectModel {
	return LevelSelectModel{
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the model.
func (m LevelSelectModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m LevelSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m LevelSelectModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	levelCount := breakout.LevelCount()

	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < levelCount-1 {
			m.cursor++
		}
	case MenuActionSelect:
		m.level = m.cursor + 1 // 1-indexed
	case MenuActionBack:
		m.back = true
	}

	return m, nil
}

// View renders the level list with each level's ball speed.
func (m LevelSelectModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(levelTitleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	for i := range breakout.LevelCount() {
		level := i + 1
		line := fmt.Sprintf("%2d. %-13s speed %.1f", level, breakout.LevelName(level), breakout.LevelSpeed(level))
		if i == m.cursor {
			line = levelCursorStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(levelDimStyle.Render("Enter: Select  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Chosen returns the chosen level, or 0 while still choosing.
func (m LevelSelectModel) Chosen() int {
	return m.level
}

// IsQuitting returns true if user wants to quit.
func (m LevelSelectModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m LevelSelectModel) WantsBack() bool {
	return m.back
}
