// Package term is the plain terminal shell: raw-mode keyboard input, a
// background ticker driving a shared engine and ANSI cursor-addressed
// painting. It has no menu; the process ends when the snake dies or the
// player quits.
package term

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	xterm "golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

func init() {
	registry.Register(ShellID, func() registry.Shell { return Shell{} })
}

// ShellID is the registry ID of the raw terminal shell.
const ShellID = "term"

// statusRows is the space kept below the board for the status line and
// the cursor left behind on exit.
const statusRows = 2

// ErrNotTerminal is returned when the input is not an interactive terminal.
var ErrNotTerminal = errors.New("term: input is not a terminal")

// EndReason says why a round stopped.
type EndReason string

const (
	EndQuit     EndReason = "quit"
	EndBack     EndReason = "back"
	EndDied     EndReason = "died"
	EndInput    EndReason = "input closed"
	EndCanceled EndReason = "canceled"
)

// Shell plays one round on the controlling terminal.
type Shell struct{}

// ID implements registry.Shell.
func (Shell) ID() string { return ShellID }

// Title implements registry.Shell.
func (Shell) Title() string { return "Terminal (raw, single round)" }

// Run implements registry.Shell.
func (Shell) Run(ctx context.Context, env registry.Env) error {
	in := env.In
	if in == nil {
		in = os.Stdin
	}
	var out io.Writer = os.Stdout
	if env.Out != nil {
		out = env.Out
	}
	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fd := int(in.Fd())
	if !xterm.IsTerminal(fd) {
		return ErrNotTerminal
	}

	w, h, err := xterm.GetSize(fd)
	if err != nil {
		logger.Warn("cannot read terminal size, using defaults", "err", err)
		w, h = env.Runtime.ScreenW, env.Runtime.ScreenH
	}
	settings := env.Settings.FitTo(min(w, h-statusRows))

	se, err := snake.NewSyncEngine(settings, time.Now())
	if err != nil {
		return err
	}

	oldState, err := xterm.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("term: cannot enter raw mode: %w", err)
	}
	defer func() {
		if err := xterm.Restore(fd, oldState); err != nil {
			logger.Error("cannot restore terminal", "err", err)
		}
	}()

	painter := NewPainter(out, 0, 0)
	defer painter.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	keys := make(chan core.Action, 16)
	readErr := make(chan error, 1)
	// The reader stays blocked in Read after the round ends; the process
	// exits shortly after, the same as any other raw-mode reader.
	go streamKeys(in, keys, readErr, ctx.Done())

	logger.Info("round started", "shell", ShellID, "grid", settings.GridSize)
	reason, err := play(ctx, se, keys, readErr, painter, logger, time.Now)
	if err != nil {
		return err
	}
	snap := se.Snapshot()
	logger.Info("round ended", "reason", reason, "length", snap.Length, "moves", snap.Ticks)
	return nil
}

// play runs the round: a ticker goroutine updates and paints the engine
// while the calling goroutine applies keys. It returns when the player
// quits, the snake dies, input ends or ctx is canceled. Only paint
// failures are returned as errors.
func play(
	ctx context.Context,
	se *snake.SyncEngine,
	keys <-chan core.Action,
	readErr <-chan error,
	painter *Painter,
	logger *log.Logger,
	now func() time.Time,
) (EndReason, error) {
	died := make(chan struct{})
	paintErr := make(chan error, 1)
	stop := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			outcome, wait := se.Update(now())
			if err := painter.Paint(se.Snapshot()); err != nil {
				paintErr <- err
				return
			}
			if outcome == snake.Died {
				close(died)
				return
			}

			timer := time.NewTimer(max(wait, time.Millisecond))
			select {
			case <-stop:
				timer.Stop()
				return
			case <-timer.C:
			}
		}
	}()
	defer func() {
		close(stop)
		wg.Wait()
	}()

	for {
		select {
		case <-ctx.Done():
			return EndCanceled, nil
		case <-died:
			return EndDied, nil
		case err := <-paintErr:
			return "", err
		case err := <-readErr:
			if !errors.Is(err, io.EOF) {
				logger.Warn("input failed", "err", err)
			}
			return EndInput, nil
		case action := <-keys:
			switch action {
			case core.ActionQuit:
				return EndQuit, nil
			case core.ActionBack:
				return EndBack, nil
			case core.ActionRestart:
				se.Restart(now())
				logger.Debug("round restarted")
				continue
			}

			dir, ok := snake.FromSymbol(action.Symbol())
			if !ok {
				continue
			}
			accepted, outcome := se.Turn(dir, now())
			logger.Debug("turn", "dir", dir, "accepted", accepted, "outcome", outcome)
			if outcome == snake.Moved || outcome == snake.Died {
				if err := painter.Paint(se.Snapshot()); err != nil {
					return "", err
				}
			}
			if outcome == snake.Died {
				return EndDied, nil
			}
		}
	}
}
