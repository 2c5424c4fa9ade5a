package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Size:     35,
			CellSize: 20,
		},
		Timing: TimingConfig{
			Step: Duration(180 * time.Millisecond),
			Turn: Duration(90 * time.Millisecond),
		},
		Fruit: FruitConfig{
			CheckInterval: Duration(150 * time.Millisecond),
			Chance:        0.05,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
