package core

import "sort"

// Action represents a semantic game action, abstracted from physical key presses.
// Every shell decodes its own key events into actions so the engine wiring
// is shared.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // Up arrow, W, K
	ActionDown           // Down arrow, S, J
	ActionLeft           // Left arrow, A, H
	ActionRight          // Right arrow, D, L
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // Escape - end the round, back to menu
	ActionRestart        // R - restart the round
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Symbol returns the raw direction symbol for movement actions
// ("up", "down", "left", "right") and "" for everything else.
func (a Action) Symbol() string {
	switch a {
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	default:
		return ""
	}
}

// IsDirection reports whether the action moves the snake.
func (a Action) IsDirection() bool {
	return a.Symbol() != ""
}

// KeyActions maps key names shared by the terminal shells to actions.
// Names follow Bubble Tea's KeyMsg.String() spelling.
var KeyActions = map[string]Action{
	"up":     ActionUp,
	"w":      ActionUp,
	"k":      ActionUp,
	"down":   ActionDown,
	"s":      ActionDown,
	"j":      ActionDown,
	"left":   ActionLeft,
	"a":      ActionLeft,
	"h":      ActionLeft,
	"right":  ActionRight,
	"d":      ActionRight,
	"l":      ActionRight,
	"enter":  ActionConfirm,
	" ":      ActionConfirm,
	"esc":    ActionBack,
	"r":      ActionRestart,
	"q":      ActionQuit,
	"ctrl+c": ActionQuit,
}

// LookupKey returns the action bound to a key name, or ActionNone.
func LookupKey(name string) Action {
	if a, ok := KeyActions[name]; ok {
		return a
	}
	return ActionNone
}

// KeysFor returns the key names bound to an action, sorted.
func KeysFor(a Action) []string {
	var keys []string
	for name, bound := range KeyActions {
		if bound == a {
			keys = append(keys, name)
		}
	}
	sort.Strings(keys)
	return keys
}
