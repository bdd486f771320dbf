package keybindings

import tea "github.com/charmbracelet/bubbletea"

// Action represents a specific action that can be triggered by a key
type Action string

// Define all possible actions
const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionToggleHelp Action = "toggle_help"
	ActionBack       Action = "back" // General purpose "go back" or "cancel"

	// Navigation actions
	ActionMoveUp     Action = "move_up"
	ActionMoveDown   Action = "move_down"
	ActionPageUp     Action = "page_up"
	ActionPageDown   Action = "page_down"
	ActionMoveTop    Action = "move_top"
	ActionMoveBottom Action = "move_bottom"

	// Library actions
	ActionSelectFile     Action = "select_file"
	ActionRefreshLibrary Action = "refresh_library"
	ActionEnableSearch   Action = "enable_search"
	ActionSearchComplete Action = "search_complete"

	// Scrubber actions
	ActionScrubLeft      Action = "scrub_left"
	ActionScrubRight     Action = "scrub_right"
	ActionScrubLeftFast  Action = "scrub_left_fast"
	ActionScrubRightFast Action = "scrub_right_fast"
	ActionJumpStart      Action = "jump_start"
	ActionJumpEnd        Action = "jump_end"
	ActionTogglePlayback Action = "toggle_playback"
	ActionCloseScrubber  Action = "close_scrubber"
)

// ContextName represents a specific UI context in the application that has its own keybinds
type ContextName string

const (
	ContextGlobal     ContextName = "global"
	ContextLibrary    ContextName = "library"
	ContextScrubber   ContextName = "scrubber"
	ContextSearchMode ContextName = "search_mode"
	ContextHelp       ContextName = "help"
)

var ContextBindings = map[ContextName][]Binding{
	ContextGlobal:     globalBindings,
	ContextLibrary:    libraryBindings,
	ContextScrubber:   scrubberBindings,
	ContextSearchMode: searchModeBindings,
	ContextHelp:       helpBindings,
}

// KeyMap stores the mappings from actions to key sequences for each context
type KeyMap struct {
	Primary   string
	Secondary string // Optional alternative key
	Help      string // Description for help screen
}

// Binding maps an action to its keys and help text
type Binding struct {
	Action Action
	KeyMap KeyMap
}

// navigationBindings contains general navigation bindings for consistent navigation across the app
var navigationBindings = []Binding{
	{
		Action: ActionMoveUp,
		KeyMap: KeyMap{
			Primary:   "up",
			Secondary: "k",
			Help:      "Move cursor up",
		},
	},
	{
		Action: ActionMoveDown,
		KeyMap: KeyMap{
			Primary:   "down",
			Secondary: "j",
			Help:      "Move cursor down",
		},
	},
	{
		Action: ActionPageUp,
		KeyMap: KeyMap{
			Primary: "pgup",
			Help:    "Move up one page",
		},
	},
	{
		Action: ActionPageDown,
		KeyMap: KeyMap{
			Primary: "pgdown",
			Help:    "Move down one page",
		},
	},
	{
		Action: ActionMoveTop,
		KeyMap: KeyMap{
			Primary: "home",
			Help:    "Move top of view",
		},
	},
	{
		Action: ActionMoveBottom,
		KeyMap: KeyMap{
			Primary: "end",
			Help:    "Move bottom of view",
		},
	},
}

// globalBindings contains key bindings that work across all views
var globalBindings = []Binding{
	{
		Action: ActionQuit,
		KeyMap: KeyMap{
			Primary: "ctrl+c",
			Help:    "Quit application",
		},
	},
	{
		Action: ActionToggleHelp,
		KeyMap: KeyMap{
			Primary: "ctrl+h",
			Help:    "Toggle help screen",
		},
	},
	{
		Action: ActionBack,
		KeyMap: KeyMap{
			Primary: "esc",
			Help:    "Go back/cancel current action",
		},
	},
}

// helpBindings contains key bindings specific to the help view
var helpBindings = withNavigation([]Binding{})

// libraryBindings contains key bindings specific to the library picker view
var libraryBindings = withNavigation([]Binding{
	{
		Action: ActionSelectFile,
		KeyMap: KeyMap{
			Primary:   "enter",
			Secondary: "o",
			Help:      "Open selected file in the scrubber",
		},
	},
	{
		Action: ActionRefreshLibrary,
		KeyMap: KeyMap{
			Primary: "r",
			Help:    "Rescan the library directory",
		},
	},
	{
		Action: ActionEnableSearch,
		KeyMap: KeyMap{
			Primary:   "/",
			Secondary: "ctrl+f",
			Help:      "Filter files",
		},
	},
})

// scrubberBindings contains key bindings specific to the timeline scrubber view
var scrubberBindings = []Binding{
	{
		Action: ActionScrubLeft,
		KeyMap: KeyMap{
			Primary:   "left",
			Secondary: "h",
			Help:      "Scrub backward",
		},
	},
	{
		Action: ActionScrubRight,
		KeyMap: KeyMap{
			Primary:   "right",
			Secondary: "l",
			Help:      "Scrub forward",
		},
	},
	{
		Action: ActionScrubLeftFast,
		KeyMap: KeyMap{
			Primary:   "shift+left",
			Secondary: "H",
			Help:      "Scrub backward in coarse steps",
		},
	},
	{
		Action: ActionScrubRightFast,
		KeyMap: KeyMap{
			Primary:   "shift+right",
			Secondary: "L",
			Help:      "Scrub forward in coarse steps",
		},
	},
	{
		Action: ActionJumpStart,
		KeyMap: KeyMap{
			Primary: "home",
			Help:    "Scrub to the start of the media",
		},
	},
	{
		Action: ActionJumpEnd,
		KeyMap: KeyMap{
			Primary: "end",
			Help:    "Scrub to the end of the media",
		},
	},
	{
		Action: ActionTogglePlayback,
		KeyMap: KeyMap{
			Primary:   " ",
			Secondary: "p",
			Help:      "Toggle play/pause",
		},
	},
	{
		Action: ActionCloseScrubber,
		KeyMap: KeyMap{
			Primary: "q",
			Help:    "Close the scrubber and return to the library",
		},
	},
}

// searchModeBindings contains key bindings specific for when search mode is active
var searchModeBindings = []Binding{
	{
		Action: ActionBack,
		KeyMap: KeyMap{
			Primary:   "esc",
			Secondary: "ctrl+f",
			Help:      "Exit search mode and remove the filter",
		},
	},
	{
		Action: ActionSearchComplete,
		KeyMap: KeyMap{
			Primary: "enter",
			Help:    "Apply the search filter and return control to the original view",
		},
	},
}

// GetActionKey returns the primary key for an action
func GetActionKey(action Action, bindings []Binding) string {
	for _, binding := range bindings {
		if binding.Action == action {
			return binding.KeyMap.Primary
		}
	}
	return ""
}

// GetBindingByKey returns the action and help text for a given key
func GetBindingByKey(key string, bindings []Binding) (Action, string) {
	for _, binding := range bindings {
		if binding.KeyMap.Primary == key || binding.KeyMap.Secondary == key {
			return binding.Action, binding.KeyMap.Help
		}
	}
	return "", ""
}

// GetActionByKey returns just the action for a given key, or an empty Action if not found
func GetActionByKey(keyMsg tea.KeyMsg, name ContextName) Action {
	if bindings, exists := ContextBindings[name]; exists {
		key := keyMsg.String()
		for _, binding := range bindings {
			if binding.KeyMap.Primary == key || binding.KeyMap.Secondary == key {
				return binding.Action
			}
		}
	}
	return ""
}

// FormatKeyHelp formats a key binding for display in help text
func FormatKeyHelp(binding Binding) string {
	if binding.KeyMap.Secondary != "" {
		return displayKey(binding.KeyMap.Primary) + "/" + displayKey(binding.KeyMap.Secondary) + ": " + binding.KeyMap.Help
	}
	return displayKey(binding.KeyMap.Primary) + ": " + binding.KeyMap.Help
}

// GetHelpText generates formatted help text for a set of bindings
func GetHelpText(title string, bindings []Binding) string {
	helpText := "## " + title + "\n\n"
	for _, binding := range bindings {
		helpText += "* " + FormatKeyHelp(binding) + "\n"
	}
	return helpText
}

// displayKey renders a key for help text.  The space key would otherwise be invisible.
func displayKey(key string) string {
	if key == " " {
		return "space"
	}
	return key
}

// withNavigation is a helper function to include navigation bindings in other binding sets
func withNavigation(bindings []Binding) []Binding {
	return append(append([]Binding{}, navigationBindings...), bindings...)
}
