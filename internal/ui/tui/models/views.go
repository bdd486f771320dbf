package models

import tea "github.com/charmbracelet/bubbletea"

// View represents a specific UI view in the application
type View string

// Available views in the application
const (
	ViewLibrary  View = "library"
	ViewLoading  View = "loading"
	ViewScrubber View = "scrubber"
	ViewHelp     View = "help"
)

// Modal represents a UI intended to be temporarily shown to the user before returning to the original view
type Modal string

// Available modals in the application
const (
	ModalNone Modal = "none"
	ModalHelp Modal = "help"
)

// Model is the contract implemented by all child models coordinated by AppModel
type Model interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Model, tea.Cmd)
	View() string
	Resize(width, height int)
	ViewType() View
}
