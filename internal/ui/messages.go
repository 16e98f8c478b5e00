package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"tradeloop/internal/core"
)

// choiceTimeoutMsg fires when an accept confirmation window elapses.
// It carries the pending accept by value so the decision survives any
// state change made while the timer ran.
type choiceTimeoutMsg struct {
	pending core.PendingAccept
}

func choiceTimeoutCmd(pending core.PendingAccept) tea.Cmd {
	return tea.Tick(core.ChoiceWindow, func(time.Time) tea.Msg {
		return choiceTimeoutMsg{pending: pending}
	})
}
