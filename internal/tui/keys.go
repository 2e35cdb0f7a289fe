package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	Next     key.Binding
	Prev     key.Binding
	About    key.Binding
	Writing  key.Binding
	Now      key.Binding
	Up       key.Binding
	Down     key.Binding
	Enter    key.Binding
	Back     key.Binding
	Replay   key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev"),
		),
		About: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "about"),
		),
		Writing: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "writing"),
		),
		Now: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "now"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "read"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Replay: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "replay"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// PageFooterBindings returns footer bindings for the about and now pages.
func PageFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Next, km.About, km.Writing, km.Now, km.Replay, km.PageDown, km.Quit}
}

// WritingFooterBindings returns footer bindings for the writing index.
func WritingFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Enter, km.Next, km.Replay, km.Quit}
}

// PostFooterBindings returns footer bindings while reading a post.
func PostFooterBindings(km KeyMap) []key.Binding {
	return []key.Binding{km.Back, km.PageUp, km.PageDown, km.Replay, km.Quit}
}
