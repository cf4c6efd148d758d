// Package tui provides the Bubble Tea integration for snaky.
// It drives the game at a fixed frame rate, maps keys to actions and paints
// the game's screen buffer into the terminal.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snaky/internal/core"
)

// TickMsg is sent to trigger a game frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	interval := time.Second / time.Duration(core.Clamp(tickRate, 1, 240))
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
