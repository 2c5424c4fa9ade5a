package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

const defaultShell = "tui"

var playCmd = &cobra.Command{
	Use:   "play [shell]",
	Short: "Play a round",
	Long: `Start the game in the given shell (default: tui).

Shells:
  tui     - Bubble Tea terminal UI with a menu
  term    - Plain raw terminal, one round, exits on death
  window  - Desktop window with smooth movement and a menu

Controls:
  Arrows (WASD/hjkl in terminals) - Steer
  Enter/Space                     - Select
  R                               - Restart
  Esc                             - Back to menu
  Q/Ctrl+C                        - Quit

Speed presets:
  slow, normal, fast - Override step and turn timing
  fixed              - Keep the configured timing

Examples:
  gridsnake play
  gridsnake play term --preset slow
  gridsnake play window --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	shellID := defaultShell
	if len(args) > 0 {
		shellID = args[0]
	}

	if !registry.Exists(shellID) {
		return fmt.Errorf("unknown shell %q (run 'gridsnake list' to see available shells)", shellID)
	}

	settings, err := loadSettings()
	if err != nil {
		return err
	}

	// Terminal shells own the screen, so logs only go to a file
	logger, closeLog, err := newLogger(io.Discard, "gridsnake")
	if err != nil {
		return err
	}
	defer closeLog()

	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc = rc.WithSize(w, h)
	}

	shell, err := registry.Create(shellID)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "shell", shellID, "grid", settings.GridSize, "step", settings.Step)
	return shell.Run(ctx, registry.Env{
		Settings: settings,
		Runtime:  rc,
		Logger:   logger,
		In:       os.Stdin,
		Out:      os.Stdout,
	})
}
