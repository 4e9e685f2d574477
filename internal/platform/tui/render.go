package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// styleFor returns the lipgloss style for a cell color.
func styleFor(c core.Color) lipgloss.Style {
	if code := c.ANSI(); code != "" {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return lipgloss.NewStyle()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells with the same color share one escape sequence, and blank
// runs are written unstyled since only foreground colors are used.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	styles := make(map[core.Color]lipgloss.Style)
	var run strings.Builder

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)
			blank := start.Rune == ' '

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if blank != (cell.Rune == ' ') || (!blank && cell.Color != start.Color) {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if blank || start.Color == core.ColorDefault {
				sb.WriteString(run.String())
				continue
			}
			style, ok := styles[start.Color]
			if !ok {
				style = styleFor(start.Color)
				styles[start.Color] = style
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
