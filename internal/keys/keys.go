// Package keys contains keybinding definitions.
package keys

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// BrowseKeyMap defines the keybindings for the browse view.
type BrowseKeyMap struct {
	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Tree
	Expand   key.Binding
	Collapse key.Binding
	Toggle   key.Binding

	// Panes
	FocusNext key.Binding

	// Actions
	Refresh    key.Binding
	Yank       key.Binding
	ToggleLogs key.Binding

	// General
	Help   key.Binding
	Escape key.Binding
	Quit   key.Binding
}

// Browse holds the active browse keybindings. ApplyConfig rebinds the
// configurable entries in place.
var Browse = DefaultBrowseKeyMap()

// DefaultBrowseKeyMap returns the default keybindings.
func DefaultBrowseKeyMap() BrowseKeyMap {
	return BrowseKeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "go to bottom"),
		),

		// Tree
		Expand: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "expand"),
		),
		Collapse: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/←", "collapse"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle node"),
		),

		// Panes
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch pane"),
		),

		// Actions
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload manifests"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy node path"),
		),
		ToggleLogs: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("ctrl+l", "toggle logs"),
		),

		// General
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "go back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the short help view.
func (k BrowseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Toggle, k.Help, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k BrowseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Top, k.Bottom},               // Navigation
		{k.Expand, k.Collapse, k.Toggle, k.FocusNext}, // Tree
		{k.Refresh, k.Yank, k.ToggleLogs},             // Actions
		{k.Help, k.Escape, k.Quit},                    // General
	}
}

// translateToTerminal normalizes a configured key to the sequence the
// terminal actually reports (ctrl+space arrives as ctrl+@).
func translateToTerminal(configured string) string {
	normalized := strings.ToLower(strings.TrimSpace(configured))
	switch normalized {
	case "ctrl+space", "ctrl+ ":
		return "ctrl+@"
	default:
		return normalized
	}
}

// translateToDisplay maps terminal sequences back to readable help text.
func translateToDisplay(terminal string) string {
	if terminal == "ctrl+@" {
		return "ctrl+space"
	}
	return terminal
}

// ApplyConfig rebinds the configurable browse keys. Empty strings keep the
// defaults.
func ApplyConfig(toggleLogs, refresh string) {
	if toggleLogs != "" {
		terminal := translateToTerminal(toggleLogs)
		Browse.ToggleLogs = key.NewBinding(
			key.WithKeys(terminal),
			key.WithHelp(translateToDisplay(terminal), "toggle logs"),
		)
	}
	if refresh != "" {
		terminal := translateToTerminal(refresh)
		Browse.Refresh = key.NewBinding(
			key.WithKeys(terminal),
			key.WithHelp(translateToDisplay(terminal), "reload manifests"),
		)
	}
}

// ResetForTesting restores the default keymap.
func ResetForTesting() {
	Browse = DefaultBrowseKeyMap()
}
