package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/RavuAlHemio/icingcake/internal/history"
)

// Run starts the TUI application. hist may be nil when history is disabled.
func Run(querier Querier, hist *history.Store) error {
	model := NewModel(querier, hist)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err := p.Run()
	return err
}
