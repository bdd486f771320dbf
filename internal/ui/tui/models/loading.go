package models

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/saltkettle/filmstrip/internal/ui/tui/styles"
)

// LoadingModel displays a loading indicator with contextual messages
type LoadingModel struct {
	width, height int
	message       string // Primary message displayed with the spinner
	contextInfo   string // Optional additional context
	spinner       spinner.Model
}

// NewLoadingModel creates a new loading model with the required message
func NewLoadingModel(message string) *LoadingModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4"))

	return &LoadingModel{
		message: message,
		spinner: s,
	}
}

// WithContextInfo adds additional context information
func (m *LoadingModel) WithContextInfo(info string) *LoadingModel {
	m.contextInfo = info
	return m
}

// ViewType returns the type of view
func (m *LoadingModel) ViewType() View {
	return ViewLoading
}

// Init initializes the model
func (m *LoadingModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update handles messages
func (m *LoadingModel) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the loading state
func (m *LoadingModel) View() string {
	messageStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Bold(true)

	content := m.spinner.View() + " " + messageStyle.Render(m.message)
	if m.contextInfo != "" {
		content += "\n\n" + styles.Subtle.Render(m.contextInfo)
	}

	box := styles.ContentBox(min(m.width-4, 60), content, 1)
	return styles.CenteredView(m.width, m.height, box)
}

// Resize updates the dimensions of the loading model
func (m *LoadingModel) Resize(width, height int) {
	m.width = width
	m.height = height
}
