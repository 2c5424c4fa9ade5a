package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath names the environment variable checked after the --config flag.
const EnvConfigPath = "GRIDSNAKE_CONFIG"

// SourceEmbedded and SourceBuiltin describe configurations not read from disk.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// LoadSnake loads the snake configuration.
// Search order: customPath -> $GRIDSNAKE_CONFIG -> ~/.gridsnake/configs/snake.yaml
// -> ./configs/snake.yaml -> embedded default -> hardcoded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	cfg, _, err := LoadSnakeWithSource(customPath)
	return cfg, err
}

// LoadSnakeWithSource is LoadSnake that also reports where the
// configuration came from: a file path, SourceEmbedded or SourceBuiltin.
func LoadSnakeWithSource(customPath string) (SnakeConfig, string, error) {
	// Explicit paths must exist and parse
	for _, path := range []string{customPath, GetEnv(EnvConfigPath, "")} {
		if path == "" {
			continue
		}
		cfg, err := ReadFile(path)
		if err != nil {
			return cfg, path, err
		}
		return cfg, path, nil
	}

	// Search paths are optional; a broken file falls through
	for _, path := range []string{userConfigPath("snake.yaml"), filepath.Join("configs", "snake.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := ReadFile(path); err == nil {
			return cfg, path, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(bytes.NewReader(defaultSnakeYAML))
	if err != nil {
		return DefaultSnakeConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

// ReadFile reads and parses one configuration file.
func ReadFile(path string) (SnakeConfig, error) {
	f, err := os.Open(path)
	if err != nil {
		return SnakeConfig{}, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the hardcoded defaults, so a file only needs
// the fields it changes. Unknown fields are rejected.
func Parse(r io.Reader) (SnakeConfig, error) {
	cfg := DefaultSnakeConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gridsnake", "configs", filename)
}
