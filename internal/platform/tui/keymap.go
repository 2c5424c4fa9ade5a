package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// KeyMap defines the key bindings for the menu and the board.
// Bindings are built from core.KeyActions so every terminal shell accepts
// the same keys.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Select  key.Binding
	Back    key.Binding
	Restart key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      binding(core.ActionUp, "↑/w/k", "up"),
		Down:    binding(core.ActionDown, "↓/s/j", "down"),
		Left:    binding(core.ActionLeft, "←/a/h", "left"),
		Right:   binding(core.ActionRight, "→/d/l", "right"),
		Select:  binding(core.ActionConfirm, "enter", "select"),
		Back:    binding(core.ActionBack, "esc", "menu"),
		Restart: binding(core.ActionRestart, "r", "restart"),
		Quit:    binding(core.ActionQuit, "q", "quit"),
	}
}

func binding(a core.Action, keys, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(core.KeysFor(a)...),
		key.WithHelp(keys, desc),
	)
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Restart, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Select, k.Restart, k.Back, k.Quit},
	}
}

// MenuHelp returns the bindings shown under the menu.
func (k KeyMap) MenuHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Select):
		return core.ActionConfirm
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	}
	return core.ActionNone
}
