package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/saltkettle/filmstrip/internal/config"
	"github.com/saltkettle/filmstrip/internal/ui/tui/models"
)

// Run starts the TUI on the given target path.  It blocks until the user
// quits or an unrecoverable error occurs.
func Run(cfg *config.Config, target string) error {
	p := tea.NewProgram(models.NewAppModel(cfg, target), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
