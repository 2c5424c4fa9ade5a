// Package window is the raylib shell: a start menu and rounds drawn with
// sub-cell interpolation at the display frame rate. The engine updates
// once per frame on the render goroutine.
package window

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

func init() {
	registry.Register(ShellID, func() registry.Shell { return Shell{} })
}

// ShellID is the registry ID of the windowed shell.
const ShellID = "window"

const windowTitle = "gridsnake"

// ErrNoWindow is returned when raylib cannot open a window.
var ErrNoWindow = errors.New("window: cannot open window")

var menuItems = []string{"Start Game", "Exit"}

const (
	menuStart = iota
	menuExit
)

// roundResult summarizes a finished round for the menu.
type roundResult struct {
	Length int
	Ticks  uint64
	Died   bool
}

// session is the menu and round state machine. It holds no raylib state.
type session struct {
	settings snake.Settings
	logger   *log.Logger

	engine   *snake.Engine
	selected int
	last     *roundResult
}

// handle applies one action at now and reports whether the shell should
// exit.
func (s *session) handle(a core.Action, now time.Time) (bool, error) {
	if a == core.ActionQuit {
		s.logger.Info("quit", "reason", "key")
		return true, nil
	}
	if s.engine == nil {
		return s.handleMenu(a, now)
	}

	switch a {
	case core.ActionBack:
		s.endRound()
	case core.ActionRestart:
		s.engine.Restart(now)
		s.logger.Debug("round restarted")
	default:
		if dir, ok := snake.FromSymbol(a.Symbol()); ok {
			if _, outcome := s.engine.Turn(dir, now); outcome == snake.Died {
				s.endRound()
			}
		}
	}
	return false, nil
}

func (s *session) handleMenu(a core.Action, now time.Time) (bool, error) {
	switch a {
	case core.ActionUp:
		s.selected = (s.selected + len(menuItems) - 1) % len(menuItems)
	case core.ActionDown:
		s.selected = (s.selected + 1) % len(menuItems)
	case core.ActionConfirm:
		if s.selected == menuExit {
			s.logger.Info("quit", "reason", "menu")
			return true, nil
		}
		e, err := snake.NewEngine(s.settings, now)
		if err != nil {
			return false, fmt.Errorf("window: cannot start round: %w", err)
		}
		s.engine = e
		s.logger.Info("round started", "shell", ShellID, "grid", s.settings.GridSize)
	}
	return false, nil
}

// update advances a running round; a death returns to the menu.
func (s *session) update(now time.Time) {
	if s.engine == nil {
		return
	}
	if s.engine.Update(now) == snake.Died {
		s.endRound()
	}
}

// endRound records the round result and returns to the menu.
func (s *session) endRound() {
	snap := s.engine.Snapshot()
	s.last = &roundResult{Length: snap.Length, Ticks: snap.Ticks, Died: !snap.Alive}
	s.logger.Info("round ended", "length", snap.Length, "moves", snap.Ticks, "died", !snap.Alive)
	s.engine = nil
	s.selected = menuStart
}

// Shell opens a window sized to the grid.
type Shell struct{}

// ID implements registry.Shell.
func (Shell) ID() string { return ShellID }

// Title implements registry.Shell.
func (Shell) Title() string { return "Window (raylib, interpolated)" }

// Run implements registry.Shell. It must be called from the main goroutine.
func (Shell) Run(ctx context.Context, env registry.Env) error {
	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if err := env.Settings.Validate(); err != nil {
		return err
	}

	l := layout{cell: env.Settings.CellSize}
	side := l.boardSide(env.Settings.GridSize)

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(side, side+statusHeight, windowTitle)
	defer rl.CloseWindow()
	if !rl.IsWindowReady() {
		return ErrNoWindow
	}
	// Esc belongs to the game, not to raylib's close handling
	rl.SetExitKey(0)
	if env.Runtime.FrameRate > 0 {
		rl.SetTargetFPS(int32(env.Runtime.FrameRate))
	}

	s := &session{settings: env.Settings, logger: logger}

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil {
			return nil
		}

		now := time.Now()
		for _, a := range pressedActions() {
			quit, err := s.handle(a, now)
			if err != nil {
				return err
			}
			if quit {
				return nil
			}
		}

		s.update(now)

		rl.BeginDrawing()
		rl.ClearBackground(colorBackground)
		if s.engine != nil {
			drawFrame(s.engine.Frame(now), l, s.engine.Snake().Len())
		} else {
			drawMenu(menuItems, s.selected, s.last)
		}
		rl.EndDrawing()
	}

	logger.Info("quit", "reason", "window closed")
	return nil
}
