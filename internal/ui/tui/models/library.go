package models

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/saltkettle/filmstrip/internal/config"
	"github.com/saltkettle/filmstrip/internal/log"
	"github.com/saltkettle/filmstrip/internal/ui/tui/components"
	kb "github.com/saltkettle/filmstrip/internal/ui/tui/keybindings"
	"github.com/saltkettle/filmstrip/internal/ui/tui/styles"
	"github.com/saltkettle/filmstrip/internal/ui/tui/util"
)

// LibraryEntry is a single scannable media file found in the library directory
type LibraryEntry struct {
	Name string
	Path string
	Size int64
}

// LibraryModel lists the media files in a directory and lets the user pick
// one to open in the scrubber
type LibraryModel struct {
	width, height int
	cfg           *config.Config
	dir           string

	entries  []LibraryEntry
	filtered []LibraryEntry
	loading  bool
	loadErr  error

	cursor         int
	viewportOffset int

	searchActive bool
	searchInput  textinput.Model
}

// NewLibraryModel creates a library model rooted at the given directory
func NewLibraryModel(cfg *config.Config, dir string) *LibraryModel {
	ti := textinput.New()
	ti.Placeholder = "Filter files..."
	ti.CharLimit = 100
	ti.Width = 30

	return &LibraryModel{
		cfg:         cfg,
		dir:         dir,
		loading:     true,
		searchInput: ti,
	}
}

func (m *LibraryModel) ViewType() View {
	return ViewLibrary
}

// Init starts the directory scan
func (m *LibraryModel) Init() tea.Cmd {
	return m.scanCmd()
}

// scanCmd walks the library directory and collects files whose extension is
// in the configured list
func (m *LibraryModel) scanCmd() tea.Cmd {
	dir := m.dir
	extensions := m.cfg.UI.LibraryExtensions
	return func() tea.Msg {
		dirEntries, err := os.ReadDir(dir)
		if err != nil {
			return LibraryErrorMsg{Error: fmt.Errorf("failed to read library directory %s: %w", dir, err)}
		}

		var entries []LibraryEntry
		for _, de := range dirEntries {
			if de.IsDir() {
				continue
			}
			ext := strings.ToLower(filepath.Ext(de.Name()))
			if !extensionAllowed(ext, extensions) {
				continue
			}
			info, err := de.Info()
			if err != nil {
				log.Warn("Skipping unreadable library entry", "name", de.Name(), "error", err)
				continue
			}
			entries = append(entries, LibraryEntry{
				Name: de.Name(),
				Path: filepath.Join(dir, de.Name()),
				Size: info.Size(),
			})
		}

		sort.Slice(entries, func(i, j int) bool {
			return strings.ToLower(entries[i].Name) < strings.ToLower(entries[j].Name)
		})

		log.Info("Library scan complete", "dir", dir, "count", len(entries))
		return LibraryLoadedMsg{Entries: entries}
	}
}

func extensionAllowed(ext string, extensions []string) bool {
	for _, allowed := range extensions {
		if ext == strings.ToLower(allowed) {
			return true
		}
	}
	return false
}

// Update handles messages
func (m *LibraryModel) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LibraryLoadedMsg:
		m.loading = false
		m.loadErr = nil
		m.entries = msg.Entries
		m.applyFilter()
		return m, nil

	case LibraryErrorMsg:
		m.loading = false
		m.loadErr = msg.Error
		return m, nil

	case tea.KeyMsg:
		if m.searchActive {
			return m.handleSearchInput(msg)
		}
		return m.handleKeyMsg(msg)
	}

	return m, nil
}

func (m *LibraryModel) handleSearchInput(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch kb.GetActionByKey(msg, kb.ContextSearchMode) {
	case kb.ActionBack:
		m.searchActive = false
		m.searchInput.SetValue("")
		m.searchInput.Blur()
		m.applyFilter()
		return m, nil
	case kb.ActionSearchComplete:
		m.searchActive = false
		m.searchInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applyFilter()
	return m, cmd
}

func (m *LibraryModel) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch kb.GetActionByKey(msg, kb.ContextLibrary) {
	case kb.ActionMoveUp:
		m.moveCursor(-1)
	case kb.ActionMoveDown:
		m.moveCursor(1)
	case kb.ActionPageUp:
		m.moveCursor(-m.visibleRows())
	case kb.ActionPageDown:
		m.moveCursor(m.visibleRows())
	case kb.ActionMoveTop:
		m.cursor = 0
		m.adjustViewport()
	case kb.ActionMoveBottom:
		m.cursor = len(m.filtered) - 1
		m.adjustViewport()
	case kb.ActionRefreshLibrary:
		m.loading = true
		m.loadErr = nil
		return m, m.scanCmd()
	case kb.ActionEnableSearch:
		m.searchActive = true
		m.searchInput.Focus()
		return m, textinput.Blink
	case kb.ActionSelectFile:
		if m.cursor >= 0 && m.cursor < len(m.filtered) {
			selected := m.filtered[m.cursor]
			return m, func() tea.Msg {
				return FileSelectedMsg{Path: selected.Path}
			}
		}
	}

	return m, nil
}

func (m *LibraryModel) moveCursor(delta int) {
	if len(m.filtered) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	m.adjustViewport()
}

func (m *LibraryModel) adjustViewport() {
	rows := m.visibleRows()
	if m.cursor < m.viewportOffset {
		m.viewportOffset = m.cursor
	}
	if m.cursor >= m.viewportOffset+rows {
		m.viewportOffset = m.cursor - rows + 1
	}
	if m.viewportOffset < 0 {
		m.viewportOffset = 0
	}
}

// visibleRows is how many list rows fit between the header and footer
func (m *LibraryModel) visibleRows() int {
	rows := m.height - 8
	if rows < 1 {
		rows = 1
	}
	return rows
}

// applyFilter recomputes the visible entries from the search input
func (m *LibraryModel) applyFilter() {
	query := strings.TrimSpace(m.searchInput.Value())
	if query == "" {
		m.filtered = m.entries
	} else {
		m.filtered = nil
		for _, entry := range m.entries {
			if fuzzy.MatchFold(query, entry.Name) {
				m.filtered = append(m.filtered, entry)
			}
		}
	}

	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	m.adjustViewport()
}

// Resize updates the dimensions
func (m *LibraryModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.adjustViewport()
}

// View renders the library list
func (m *LibraryModel) View() string {
	header := styles.Header(m.width, fmt.Sprintf("Filmstrip - %s", m.dir))

	var body string
	switch {
	case m.loading:
		body = styles.CenteredText(m.width, "Scanning library...")
	case m.loadErr != nil:
		body = styles.CenteredText(m.width, fmt.Sprintf("Error: %v", m.loadErr))
	case len(m.filtered) == 0 && len(m.entries) == 0:
		body = styles.CenteredText(m.width, "No playable files found in this directory")
	case len(m.filtered) == 0:
		body = styles.CenteredText(m.width, "No files match the filter")
	default:
		body = m.renderEntries()
	}

	var search string
	if m.searchActive || m.searchInput.Value() != "" {
		search = "\n" + styles.StatusBar.Render("Search: "+m.searchInput.View())
	}

	footer := m.renderFooter()

	return header + "\n" + body + search + "\n" + footer
}

func (m *LibraryModel) renderEntries() string {
	rows := m.visibleRows()
	end := m.viewportOffset + rows
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	var sb strings.Builder
	for i := m.viewportOffset; i < end; i++ {
		entry := m.filtered[i]
		name := util.TruncateString(entry.Name, m.width-16)
		line := fmt.Sprintf("%s  %s", name, styles.Subtle.Render(util.FormatFileSize(entry.Size)))
		if i == m.cursor {
			line = styles.Title.Render("> " + name)
		} else {
			line = "  " + line
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if len(m.filtered) > rows {
		sb.WriteString(styles.Subtle.Render(fmt.Sprintf("  %d/%d files", m.cursor+1, len(m.filtered))))
	}

	return sb.String()
}

func (m *LibraryModel) renderFooter() string {
	if m.searchActive {
		return components.KeyBindingsBar(m.width, []components.KeyBinding{
			{Key: "enter", Desc: "Apply filter"},
			{Key: "esc", Desc: "Clear filter"},
		})
	}
	return components.KeyBindingsBar(m.width, []components.KeyBinding{
		{Key: "enter", Desc: "Open"},
		{Key: "/", Desc: "Search"},
		{Key: "r", Desc: "Refresh"},
		{Key: "ctrl+h", Desc: "Help"},
	})
}
