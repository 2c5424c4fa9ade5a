// Package config provides YAML-based game configuration loading and
// static speed presets for gridsnake.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// SnakeConfig contains all configuration for one snake session.
type SnakeConfig struct {
	Grid   GridConfig   `yaml:"grid"`
	Timing TimingConfig `yaml:"timing"`
	Fruit  FruitConfig  `yaml:"fruit"`
	Seed   int64        `yaml:"seed"` // 0 = seed from the clock
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Size     int     `yaml:"size"`      // Cells per side, border included
	CellSize float32 `yaml:"cell_size"` // Pixels per cell in the windowed shell
}

// TimingConfig defines the tick durations.
type TimingConfig struct {
	Step Duration `yaml:"step"` // Time between regular moves
	Turn Duration `yaml:"turn"` // Minimum time before a move after a turn
}

// FruitConfig defines the fruit spawn roll.
type FruitConfig struct {
	CheckInterval Duration `yaml:"check_interval"`
	Chance        float64  `yaml:"chance"` // Probability per check, 0..1
}

// Duration is a time.Duration written as a Go duration string ("180ms").
type Duration time.Duration

// Std returns the value as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler. Bare integers are read as
// milliseconds.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var ms int64
	if err := value.Decode(&ms); err == nil {
		*d = Duration(time.Duration(ms) * time.Millisecond)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("line %d: duration must be a string or integer", value.Line)
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// Settings converts the configuration into engine settings.
func (c SnakeConfig) Settings() snake.Settings {
	return snake.Settings{
		GridSize:      c.Grid.Size,
		CellSize:      c.Grid.CellSize,
		Step:          c.Timing.Step.Std(),
		Turn:          c.Timing.Turn.Std(),
		SpawnInterval: c.Fruit.CheckInterval.Std(),
		SpawnChance:   c.Fruit.Chance,
		Seed:          c.Seed,
	}
}

// Validate reports whether the configuration can start a game.
func (c SnakeConfig) Validate() error {
	if err := c.Settings().Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c SnakeConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// SpeedPreset represents a named speed level.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedFixed  SpeedPreset = "fixed"
)

// Presets lists the accepted preset names.
func Presets() []SpeedPreset {
	return []SpeedPreset{SpeedSlow, SpeedNormal, SpeedFast, SpeedFixed}
}

// ParsePreset converts a flag value to a preset. The empty string means fixed.
func ParsePreset(name string) (SpeedPreset, error) {
	if name == "" {
		return SpeedFixed, nil
	}
	for _, p := range Presets() {
		if string(p) == name {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown preset %q (want slow, normal, fast or fixed)", name)
}

// ApplySnakePreset overrides the timing with the preset's step/turn pair.
// SpeedFixed leaves the loaded configuration untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset SpeedPreset) {
	switch preset {
	case SpeedSlow:
		cfg.Timing.Step = Duration(240 * time.Millisecond)
		cfg.Timing.Turn = Duration(120 * time.Millisecond)
	case SpeedNormal:
		cfg.Timing.Step = Duration(180 * time.Millisecond)
		cfg.Timing.Turn = Duration(90 * time.Millisecond)
	case SpeedFast:
		cfg.Timing.Step = Duration(110 * time.Millisecond)
		cfg.Timing.Turn = Duration(55 * time.Millisecond)
	}
}
