package models

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/saltkettle/filmstrip/internal/config"
	"github.com/saltkettle/filmstrip/internal/log"
	"github.com/saltkettle/filmstrip/internal/player"
)

// playerLoadTimeout bounds how long we wait for the player to launch,
// connect its IPC socket, and load the selected file
const playerLoadTimeout = 60 * time.Second

// AppModel is the main application model that coordinates all child models.  It is the high level wrapper.
type AppModel struct {
	config        *config.Config
	activeModal   Modal // Track the current active 'modal overlay' if any
	width, height int

	// current is the active main view
	current Model

	// libraryModel is kept so closing the scrubber returns to the same list
	libraryModel *LibraryModel
	helpModel    *HelpModel
}

// NewAppModel creates the main application model.  The target is the path
// given on the command line: a media file opens straight into the scrubber,
// a directory (or nothing, meaning the working directory) opens the library.
func NewAppModel(cfg *config.Config, target string) AppModel {
	m := AppModel{
		config:      cfg,
		activeModal: ModalNone,
	}

	if target == "" {
		target = "."
	}

	info, err := os.Stat(target)
	switch {
	case err != nil:
		log.Error("Cannot open target path", "target", target, "error", err)
		m.libraryModel = NewLibraryModel(cfg, ".")
		m.current = m.libraryModel
	case info.IsDir():
		m.libraryModel = NewLibraryModel(cfg, target)
		m.current = m.libraryModel
	default:
		m.current = NewLoadingModel("Opening " + filepath.Base(target)).
			WithContextInfo(target)
		// No library to fall back to when launched on a single file, so the
		// library roots at the file's directory
		m.libraryModel = NewLibraryModel(cfg, filepath.Dir(target))
	}

	return m
}

func (m AppModel) Init() tea.Cmd {
	log.Info("Initialising Filmstrip TUI")

	if m.current.ViewType() == ViewLoading {
		// Launched directly on a file: start the player immediately
		return tea.Batch(m.current.Init(), m.startPlayerCmd(m.libraryTarget()))
	}

	return m.current.Init()
}

// libraryTarget recovers the file path a direct launch was given
func (m AppModel) libraryTarget() string {
	if lm, ok := m.current.(*LoadingModel); ok {
		return lm.contextInfo
	}
	return ""
}

// startPlayerCmd launches the configured player and loads the media file
func (m AppModel) startPlayerCmd(path string) tea.Cmd {
	cfg := m.config
	return func() tea.Msg {
		p, err := player.CreateVideoPlayer(cfg)
		if err != nil {
			return PlayerLoadErrorMsg{Error: fmt.Errorf("failed to create player: %w", err), Path: path}
		}

		ctx, cancel := context.WithTimeout(context.Background(), playerLoadTimeout)
		defer cancel()

		if err := p.Load(ctx, path); err != nil {
			p.Cleanup()
			return PlayerLoadErrorMsg{Error: fmt.Errorf("failed to load media: %w", err), Path: path}
		}

		return PlayerReadyMsg{Player: p, Path: path}
	}
}

// Update handles messages and updates the models as appropriate
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			log.Info("Quit command received.  Shutting down...")
			m.teardownScrubber()
			return m, tea.Quit
		case "ctrl+h":
			log.Debug("Help requested", "active_view", m.current.ViewType())
			// Disable/toggle modal if one already active
			if m.activeModal != ModalNone {
				m.activeModal = ModalNone
			} else {
				m.helpModel = NewHelpModel(m.current.ViewType())
				m.helpModel.Resize(m.width, m.height)
				m.activeModal = ModalHelp
			}
			return m, nil

		// Handle closing modal when esc is pressed if any is active
		case "esc":
			if m.activeModal != ModalNone {
				m.activeModal = ModalNone
				return m, nil
			}
			if m.current.ViewType() == ViewScrubber {
				return m.closeScrubber()
			}
		}

	case tea.WindowSizeMsg:
		log.Debug("Window size changed", "old_width", m.width, "new_width", msg.Width, "old_height", m.height, "new_height", msg.Height)
		m.width = msg.Width
		m.height = msg.Height

		// Propagate new window size to all views so they are aware and can render correctly
		m.current.Resize(msg.Width, msg.Height)
		m.libraryModel.Resize(msg.Width, msg.Height)
		if m.helpModel != nil {
			m.helpModel.Resize(msg.Width, msg.Height)
		}

	case FileSelectedMsg:
		log.Info("File selected", "path", msg.Path)
		loading := NewLoadingModel("Opening " + filepath.Base(msg.Path)).
			WithContextInfo(msg.Path)
		loading.Resize(m.width, m.height)
		m.current = loading
		return m, tea.Batch(loading.Init(), m.startPlayerCmd(msg.Path))

	case PlayerReadyMsg:
		log.Info("Player ready", "path", msg.Path)
		scrubber := NewScrubberModel(m.config, msg.Player, msg.Path)
		scrubber.Resize(m.width, m.height)
		m.current = scrubber
		return m, scrubber.Init()

	case PlayerLoadErrorMsg:
		log.Error("Failed to open media", "path", msg.Path, "error", msg.Error)
		m.current = m.libraryModel
		return m, m.libraryModel.Init()

	case ScrubberClosedMsg:
		m.current = m.libraryModel
		return m, m.libraryModel.Init()
	}

	// Prioritise delegating messages to a modal if one is active
	if m.activeModal == ModalHelp {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			// Help consumes key input until dismissed
			return m, nil
		}
	}

	// Delegate message processing to the active view
	current, cmd := m.current.Update(msg)
	m.current = current
	if current.ViewType() == ViewLibrary {
		m.libraryModel = current.(*LibraryModel)
	}

	return m, cmd
}

// closeScrubber tears the scrubber down and returns to the library
func (m AppModel) closeScrubber() (tea.Model, tea.Cmd) {
	m.teardownScrubber()
	m.current = m.libraryModel
	return m, m.libraryModel.Init()
}

// teardownScrubber stops the player if the scrubber view is active
func (m AppModel) teardownScrubber() {
	if scrubber, ok := m.current.(*ScrubberModel); ok {
		scrubber.Close()
	}
}

func (m AppModel) View() string {
	// If there is an active modal it takes precedence
	if m.activeModal == ModalHelp && m.helpModel != nil {
		return m.helpModel.View()
	}

	return m.current.View()
}
