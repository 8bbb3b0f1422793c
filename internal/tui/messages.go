package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dircast/dircast/internal/adapter"
)

type savedMsg struct {
	path string
	err  error
}

type probeDoneMsg struct {
	status adapter.Status
	err    error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
