package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines the key bindings for the playground.
type KeyMap struct {
	// Dropdown
	Toggle    key.Binding
	Placement key.Binding
	Width     key.Binding
	Flip      key.Binding
	Offset    key.Binding
	Separated key.Binding

	// Form
	Prev   key.Binding
	Next   key.Binding
	Submit key.Binding
	Reset  key.Binding

	// View
	ScrollUp   key.Binding
	ScrollDown key.Binding
	Theme      key.Binding

	// Global
	Quit key.Binding
	Help key.Binding
}

// ShortHelp returns a short help message.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Placement, k.Submit, k.Help, k.Quit}
}

// FullHelp returns a full help message.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Placement, k.Width, k.Flip, k.Offset, k.Separated},
		{k.Prev, k.Next, k.Submit, k.Reset},
		{k.ScrollUp, k.ScrollDown, k.Theme, k.Help, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys("o", " "),
			key.WithHelp("o", "open/close menu"),
		),
		Placement: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "cycle placement"),
		),
		Width: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "cycle width mode"),
		),
		Flip: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "toggle flip"),
		),
		Offset: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "cycle offset"),
		),
		Separated: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "toggle separated"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous size"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next size"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		ScrollUp: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		ScrollDown: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "next theme"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}
