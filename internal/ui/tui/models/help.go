package models

import (
	tea "github.com/charmbracelet/bubbletea"
	kb "github.com/saltkettle/filmstrip/internal/ui/tui/keybindings"
	"github.com/saltkettle/filmstrip/internal/ui/tui/styles"
)

// HelpModel displays contextual help for the view it was opened over
type HelpModel struct {
	width, height int
	context       View
}

// NewHelpModel creates a new help model for the given context
func NewHelpModel(context View) *HelpModel {
	return &HelpModel{
		context: context,
	}
}

func (m *HelpModel) ViewType() View {
	return ViewHelp
}

// Init initializes the model
func (m *HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *HelpModel) Update(msg tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

// Resize updates the dimensions
func (m *HelpModel) Resize(width, height int) {
	m.width = width
	m.height = height
}

// View renders the help content for the context the help was opened over
func (m *HelpModel) View() string {
	header := styles.Header(m.width, "Help")

	content := kb.GetHelpText("Global", kb.ContextBindings[kb.ContextGlobal])
	switch m.context {
	case ViewLibrary:
		content += "\n" + kb.GetHelpText("Library", kb.ContextBindings[kb.ContextLibrary])
		content += "\n" + kb.GetHelpText("Search", kb.ContextBindings[kb.ContextSearchMode])
	case ViewScrubber:
		content += "\n" + kb.GetHelpText("Scrubber", kb.ContextBindings[kb.ContextScrubber])
	}

	box := styles.ContentBox(m.width-2, content, 1)
	footer := styles.StatusBar.Render("esc: Close help")

	return header + "\n\n" + box + "\n" + footer
}
