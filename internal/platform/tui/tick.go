// Package tui provides the Bubble Tea host for letterfall.
// It owns the terminal, polls the frame clock, maps keys to game input and
// renders the game's screen buffer.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is a rendering opportunity for the frame clock.
type TickMsg time.Time

// pollCmd schedules the next rendering opportunity. Opportunities arrive at
// twice the target rate so the frame clock, not the timer, decides when a
// logical step happens.
func pollCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(2*tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
