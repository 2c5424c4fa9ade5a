package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or validate configuration",
	Long: `Inspect the configuration gridsnake would use.

Search order:
  --config, $GRIDSNAKE_CONFIG, ~/.gridsnake/configs/snake.yaml,
  ./configs/snake.yaml, then the built-in defaults.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Check a configuration file",
	Long: `Load and validate a configuration file. Without an argument the
normal search order is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigValidate,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	data, err := cfg.Marshal()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	var (
		cfg    config.SnakeConfig
		source string
		err    error
	)
	if len(args) > 0 {
		source = args[0]
		cfg, err = config.ReadFile(source)
	} else {
		cfg, source, err = config.LoadSnakeWithSource(flagConfig)
	}
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("%s: %w", source, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "ok: %s\n", source)
	return nil
}
