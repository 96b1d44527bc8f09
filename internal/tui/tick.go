// Package tui provides the Bubble Tea front end: it drives the game from
// key presses, drains board events into animations, and renders the board
// with lipgloss. It also hosts the Wish SSH server for remote play.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickRate is the render loop frequency.
const tickRate = 60

// TickMsg is sent to advance animations and drain board events.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at tickRate.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second/tickRate, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
