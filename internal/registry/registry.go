// Package registry provides a global registry for gridsnake shells.
// Shells register themselves in init() functions, allowing the CLI to
// discover and run them without hardcoded dependencies.
package registry

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
)

// Shell is a host that drives the snake engine: it owns the clock, the
// input devices and the output surface.
type Shell interface {
	// ID returns a unique identifier used on the command line (e.g. "term").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Run plays until the user quits or, for shells without a menu, the
	// snake dies. It returns only host I/O errors.
	Run(ctx context.Context, env Env) error
}

// Env is everything a shell needs from the CLI.
type Env struct {
	Settings snake.Settings
	Runtime  core.RuntimeConfig
	Logger   *log.Logger
	In       *os.File
	Out      io.Writer
}

// ShellInfo contains metadata about a registered shell.
type ShellInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a shell.
type Factory func() Shell

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a shell factory to the registry.
// Panics if a shell with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: shell %q already registered", id))
	}

	factories[id] = f
	titles[id] = f().Title()
}

// List returns information about all registered shells, sorted by ID.
func List() []ShellInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]ShellInfo, 0, len(factories))
	for id := range factories {
		result = append(result, ShellInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new shell by its ID.
// Returns an error if the shell ID is not registered.
func Create(id string) (Shell, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown shell %q", id)
	}

	return f(), nil
}

// Exists checks if a shell with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// unregister removes a shell; used by tests.
func unregister(id string) {
	mu.Lock()
	defer mu.Unlock()

	delete(factories, id)
	delete(titles, id)
}
