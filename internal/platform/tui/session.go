package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

func init() {
	registry.Register(ShellID, func() registry.Shell { return Shell{} })
}

// ShellID is the registry ID of the Bubble Tea shell.
const ShellID = "tui"

// SessionModel manages the full flow: menu -> round -> menu.
// It is the top-level model for both local play and SSH sessions.
type SessionModel struct {
	settings snake.Settings
	config   core.RuntimeConfig
	logger   *log.Logger
	now      func() time.Time

	menu      MenuModel
	gameModel *GameModel
	err       error
	quitting  bool
}

// NewSessionModel creates a session that starts at the menu.
func NewSessionModel(settings snake.Settings, cfg core.RuntimeConfig, logger *log.Logger) SessionModel {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return SessionModel{
		settings: settings,
		config:   cfg,
		logger:   logger,
		now:      time.Now,
		menu:     NewMenuModel(cfg, nil),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config = m.config.WithSize(wsm.Width, wsm.Height)
	}

	if m.gameModel != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.logger.Info("quit", "reason", "menu")
		m.quitting = true
		return m, tea.Quit
	}

	if m.menu.Selected() != nil {
		gameModel, err := NewGameModel(m.settings, m.config, m.logger, m.now)
		if err != nil {
			m.err = fmt.Errorf("tui: cannot start round: %w", err)
			m.quitting = true
			return m, tea.Quit
		}
		m.gameModel = &gameModel
		return m, m.gameModel.Init()
	}

	return m, cmd
}

// updateGame handles updates when a round is running.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.gameModel.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.gameModel = &gameModel
	}

	if m.gameModel.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.gameModel.BackToMenu() {
		m.menu = NewMenuModel(m.config, m.gameModel.Result())
		m.gameModel = nil
		return m, m.menu.Init()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.gameModel != nil {
		return m.gameModel.View()
	}
	return m.menu.View()
}

// Err returns the error that ended the session, if any.
func (m SessionModel) Err() error {
	return m.err
}

// InGame reports whether a round is running.
func (m SessionModel) InGame() bool {
	return m.gameModel != nil
}

// Shell runs the Bubble Tea session on the local terminal.
type Shell struct{}

// ID implements registry.Shell.
func (Shell) ID() string { return ShellID }

// Title implements registry.Shell.
func (Shell) Title() string { return "Terminal (Bubble Tea, menu)" }

// Run implements registry.Shell.
func (Shell) Run(ctx context.Context, env registry.Env) error {
	model := NewSessionModel(env.Settings, env.Runtime, env.Logger)

	opts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	}
	if env.In != nil {
		opts = append(opts, tea.WithInput(env.In))
	}
	if env.Out != nil {
		opts = append(opts, tea.WithOutput(env.Out))
	}

	final, err := tea.NewProgram(model, opts...).Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if m, ok := final.(SessionModel); ok && m.Err() != nil {
		return m.Err()
	}
	return nil
}
