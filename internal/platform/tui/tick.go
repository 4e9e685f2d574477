// Package tui provides the Bubble Tea integration for breakout.
// It handles the terminal UI loop, input mapping, menus and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const defaultTickRate = 60

// TickMsg is sent to trigger a game simulation tick.
// ID names the tick loop that scheduled it; a model drops ticks from
// loops other than its own, so a finished game's last pending tick cannot
// double the speed of the next one.
type TickMsg struct {
	Time time.Time
	ID   uint64
}

var tickLoops atomic.Uint64

// nextTickID allocates an ID for a new tick loop.
func nextTickID() uint64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, id uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
