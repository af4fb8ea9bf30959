package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/lazyfloat/internal/state"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	Quit       key.Binding
	Left       key.Binding
	Right      key.Binding
	Login      key.Binding
	CycleFocus key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		// ctrl+c is bound too: raw mode swallows SIGINT.
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "Quit"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "Decrement"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "Increment"),
		),
		Login: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Login"),
		),
		CycleFocus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Switch panel"),
		),
	}
}

// ShortHelp returns key bindings for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Login, k.Left, k.Right, k.CycleFocus, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right},
		{k.Login, k.CycleFocus},
		{k.Quit},
	}
}

// Event maps a key press to its logical event. Unbound keys map to
// state.EventNone.
func (k keyMap) Event(msg tea.KeyMsg) state.Event {
	switch {
	case key.Matches(msg, k.Quit):
		return state.EventQuit
	case key.Matches(msg, k.Left):
		return state.EventNavigateLeft
	case key.Matches(msg, k.Right):
		return state.EventNavigateRight
	case key.Matches(msg, k.Login):
		return state.EventLogAction
	case key.Matches(msg, k.CycleFocus):
		return state.EventCycleFocus
	default:
		return state.EventNone
	}
}
