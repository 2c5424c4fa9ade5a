package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// RoundResult summarises a finished round for the menu.
type RoundResult struct {
	Length int
	Ticks  uint64
	Died   bool
}

// GameModel is the Bubble Tea model for one round on the board.
// Bubble Tea delivers messages one at a time, so the engine needs no lock.
type GameModel struct {
	engine *snake.Engine
	border []snake.Cell
	screen *core.Screen
	config core.RuntimeConfig
	keys   KeyMap
	help   help.Model
	logger *log.Logger
	now    func() time.Time

	result     *RoundResult
	backToMenu bool
	quitting   bool
}

// NewGameModel starts a round with settings shrunk to fit the terminal.
func NewGameModel(settings snake.Settings, cfg core.RuntimeConfig, logger *log.Logger, now func() time.Time) (GameModel, error) {
	if now == nil {
		now = time.Now
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fitted := settings.FitTo(MaxGridSize(cfg.ScreenW, cfg.ScreenH))
	if fitted.GridSize != settings.GridSize {
		logger.Debug("grid shrunk to fit terminal", "from", settings.GridSize, "to", fitted.GridSize)
	}

	engine, err := snake.NewEngine(fitted, now())
	if err != nil {
		return GameModel{}, err
	}

	h := help.New()
	h.ShortSeparator = "  "

	return GameModel{
		engine: engine,
		border: engine.Grid().Border(),
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config: cfg,
		keys:   DefaultKeyMap(),
		help:   h,
		logger: logger,
		now:    now,
	}, nil
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	m.logger.Info("round started", "grid", m.engine.Settings().GridSize)
	return tickCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config = m.config.WithSize(msg.Width, msg.Height)
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.logger.Info("quit", "reason", "key", "length", m.engine.Snake().Len())
		m.quitting = true
		return m, tea.Quit

	case core.ActionBack:
		m.finish(false)
		return m, nil

	case core.ActionRestart:
		m.logger.Info("round restarted", "length", m.engine.Snake().Len())
		m.engine.Restart(m.now())
		return m, nil
	}

	if dir, ok := snake.FromSymbol(action.Symbol()); ok {
		if _, outcome := m.engine.Turn(dir, m.now()); outcome == snake.Died {
			m.finish(true)
		}
	}
	return m, nil
}

// handleTick advances the engine to the frame time.
func (m GameModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}
	if m.engine.Update(now) == snake.Died {
		m.finish(true)
		return m, nil
	}
	return m, tickCmd(m.config.FrameRate)
}

// finish ends the round and asks the session to show the menu.
func (m *GameModel) finish(died bool) {
	snap := m.engine.Snapshot()
	m.result = &RoundResult{Length: snap.Length, Ticks: snap.Ticks, Died: died}
	m.backToMenu = true

	if died {
		m.logger.Info("snake died", "length", snap.Length, "ticks", snap.Ticks)
	} else {
		m.logger.Info("round abandoned", "length", snap.Length, "ticks", snap.Ticks)
	}
}

// View renders the board.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	DrawBoard(m.screen, m.engine.Snapshot(), m.border)
	out := RenderScreen(m.screen)
	if m.screen.Height() > 0 {
		out = trimLastLine(out) + "\n" + m.help.View(m.keys)
	}
	return out
}

// Result returns the finished round, or nil while it is still running.
func (m GameModel) Result() *RoundResult {
	return m.result
}

// BackToMenu returns true if the round ended and the menu should show.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// trimLastLine drops the final screen row, which the help footer replaces.
func trimLastLine(s string) string {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == '\n' {
			return s[:i]
		}
	}
	return ""
}
