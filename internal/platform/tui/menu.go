package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/gridsnake/internal/core"
)

// MenuItem is a selectable menu entry.
type MenuItem int

const (
	MenuStart MenuItem = iota
	MenuExit
)

// String returns the label shown in the menu.
func (i MenuItem) String() string {
	switch i {
	case MenuStart:
		return "Start Game"
	case MenuExit:
		return "Exit"
	default:
		return "?"
	}
}

var menuItems = []MenuItem{MenuStart, MenuExit}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	last     *RoundResult
	keys     KeyMap
	help     help.Model
	selected *MenuItem
	quitting bool
}

// NewMenuModel creates a new menu model. last, if set, is shown as the
// result of the previous round.
func NewMenuModel(cfg core.RuntimeConfig, last *RoundResult) MenuModel {
	return MenuModel{
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		last:   last,
		keys:   DefaultKeyMap(),
		help:   help.New(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(menuItems)-1 {
			m.cursor++
		}

	case core.ActionConfirm:
		item := menuItems[m.cursor]
		if item == MenuExit {
			m.quitting = true
			return m, tea.Quit
		}
		m.selected = &item
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("G R I D S N A K E"), m.width))
	b.WriteString("\n\n")

	if m.last != nil {
		line := fmt.Sprintf("Round over  length %d  moves %d", m.last.Length, m.last.Ticks)
		if m.last.Died {
			line = fmt.Sprintf("Game over  length %d  moves %d", m.last.Length, m.last.Ticks)
		}
		b.WriteString(centerText(colorStyles[core.ColorBrightRed].Render(line), m.width))
		b.WriteString("\n\n")
	}

	for i, item := range menuItems {
		line := "  " + item.String()
		if i == m.cursor {
			line = colorStyles[core.ColorSelected].Render("> " + item.String())
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.ShortHelpView(m.keys.MenuHelp()), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen item, or nil if none selected yet.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width, measuring styled text by
// its printable width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
