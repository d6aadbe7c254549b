package chat

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the chat TUI.
// It implements the help.KeyMap interface for contextual help rendering.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding

	// Actions
	Send          key.Binding
	Stop          key.Binding
	Quit          key.Binding
	FocusSidebar  key.Binding
	OpenResources key.Binding
	ToggleMetrics key.Binding
	PrevMetric    key.Binding
	NextMetric    key.Binding
	CopyOutput    key.Binding
	ToggleHelp    key.Binding

	// Menus and modals
	Select key.Binding
	Close  key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "navigate"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "navigate"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "scroll down"),
		),
		Send: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("⏎", "send"),
		),
		Stop: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "stop"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("^C", "quit"),
		),
		FocusSidebar: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "history"),
		),
		OpenResources: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("^R", "resources"),
		),
		ToggleMetrics: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("^G", "metrics"),
		),
		PrevMetric: key.NewBinding(
			key.WithKeys("["),
			key.WithHelp("[", "prev metric"),
		),
		NextMetric: key.NewBinding(
			key.WithKeys("]"),
			key.WithHelp("]", "next metric"),
		),
		CopyOutput: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("^Y", "copy"),
		),
		ToggleHelp: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("F1", "help"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("⏎", "select"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
	}
}

// ShortHelp returns keybindings for the compact footer.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Send, k.FocusSidebar, k.OpenResources, k.ToggleMetrics, k.ToggleHelp, k.Quit,
	}
}

// FullHelp returns keybindings for the help overlay, grouped in columns.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Send, k.Stop, k.CopyOutput, k.Quit},
		{k.FocusSidebar, k.Up, k.Down, k.Select},
		{k.OpenResources, k.Close, k.PageUp, k.PageDown},
		{k.ToggleMetrics, k.PrevMetric, k.NextMetric, k.ToggleHelp},
	}
}
