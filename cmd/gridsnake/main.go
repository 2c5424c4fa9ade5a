// gridsnake is a grid snake game with terminal, window and SSH front ends
// sharing one simulation engine.
//
// Usage:
//
//	gridsnake list                 - List available shells
//	gridsnake play [shell]         - Play in a shell (default: tui)
//	gridsnake config show          - Print the effective configuration
//	gridsnake config validate FILE - Check a configuration file
//	gridsnake serve                - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Configuration YAML
//	--preset <name>     - Speed preset: slow, normal, fast, fixed
//	--seed <value>      - RNG seed for reproducible fruit
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
	"github.com/vovakirdan/gridsnake/internal/games/snake"

	// Import shells to register them
	_ "github.com/vovakirdan/gridsnake/internal/platform/term"
	_ "github.com/vovakirdan/gridsnake/internal/platform/tui"
	_ "github.com/vovakirdan/gridsnake/internal/platform/window"
)

var (
	// Global flags
	flagConfig   string
	flagPreset   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridsnake",
	Short: "Grid snake in your terminal, a window or over SSH",
	Long: `gridsnake is the classic snake game on a square grid. One engine
drives every front end, so a round plays the same everywhere.

Available commands:
  list     - Show all available shells
  play     - Play in a shell
  config   - Show or validate configuration
  serve    - Start SSH server for remote play

Examples:
  gridsnake play
  gridsnake play term --preset fast
  gridsnake play window --config ./snake.yaml
  gridsnake serve --ssh :2222`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to configuration YAML")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "Speed preset: slow, normal, fast, fixed")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = use config, then time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the configuration from the global flags.
func loadConfig() (config.SnakeConfig, string, error) {
	cfg, source, err := config.LoadSnakeWithSource(flagConfig)
	if err != nil {
		return cfg, source, err
	}

	preset, err := config.ParsePreset(flagPreset)
	if err != nil {
		return cfg, source, err
	}
	config.ApplySnakePreset(&cfg, preset)

	if flagSeed != 0 {
		cfg.Seed = flagSeed
	}
	if err := cfg.Validate(); err != nil {
		return cfg, source, err
	}
	return cfg, source, nil
}

// loadSettings is loadConfig reduced to engine settings.
func loadSettings() (snake.Settings, error) {
	cfg, _, err := loadConfig()
	if err != nil {
		return snake.Settings{}, err
	}
	return cfg.Settings(), nil
}

// newLogger builds the process logger. Logs go to --log-file when set and
// to fallback otherwise. The returned closer releases the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w := fallback
	closer := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, closer, nil
}
