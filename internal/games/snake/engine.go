// Package snake implements the grid snake simulation: the fruit grid, the
// snake with its buffered turns and tick gating, and the engine that drives
// both at a fixed rate. It has no I/O; shells feed it wall-clock times and
// render the snapshots it returns.
package snake

import (
	"fmt"
	"math/rand"
	"time"
)

// Engine owns one snake and one grid for the lifetime of a round.
// It is not safe for concurrent use; see SyncEngine.
type Engine struct {
	settings Settings
	rng      *rand.Rand
	snake    *Snake
	grid     *Grid

	spawnGate TickGate
	gameOver  bool
}

// NewEngine validates the settings and starts a fresh round at now.
func NewEngine(settings Settings, now time.Time) (*Engine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	seed := settings.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	e := &Engine{
		settings: settings,
		rng:      rand.New(rand.NewSource(seed)),
	}
	if err := e.reset(now); err != nil {
		return nil, err
	}
	return e, nil
}

// reset rebuilds the snake and grid from the settings.
func (e *Engine) reset(now time.Time) error {
	s, err := Spawn(e.settings.GridSize, e.settings.Step, e.settings.Turn, now)
	if err != nil {
		return fmt.Errorf("snake: cannot spawn: %w", err)
	}
	e.snake = s
	e.grid = NewGrid(e.settings.GridSize)
	e.spawnGate = NewTickGate(now)
	e.gameOver = false
	return nil
}

// Restart discards the current round and starts a new one.
func (e *Engine) Restart(now time.Time) {
	// Settings were validated in NewEngine, so Spawn cannot fail here.
	_ = e.reset(now)
}

// Update runs one simulation step: a gated snake tick, then an independent
// fruit spawn roll on its own interval. Once the round is over it returns
// Died without touching any state.
func (e *Engine) Update(now time.Time) TickOutcome {
	if e.gameOver {
		return Died
	}

	outcome := e.snake.TryTick(e.grid, now)
	if outcome == Died {
		e.gameOver = true
		return Died
	}

	if e.spawnGate.Ready(now, e.settings.SpawnInterval) {
		if e.rng.Float64() < e.settings.SpawnChance {
			e.grid.SpawnFruit(e.rng)
		}
		e.spawnGate.Mark(now)
	}

	return outcome
}

// Turn requests a direction change and, if accepted, immediately attempts a
// turn tick. The returned outcome is that of the turn tick.
func (e *Engine) Turn(dir Orientation, now time.Time) (bool, TickOutcome) {
	if e.gameOver {
		return false, Died
	}
	if !e.snake.RequestTurn(dir) {
		return false, Continuing
	}

	outcome := e.snake.TryTurnTick(e.grid, now)
	if outcome == Died {
		e.gameOver = true
	}
	return true, outcome
}

// GameOver reports whether the snake has died.
func (e *Engine) GameOver() bool {
	return e.gameOver
}

// NextTickIn returns how long until the next regular tick is due.
func (e *Engine) NextTickIn(now time.Time) time.Duration {
	return e.snake.gate.Remaining(now, e.settings.Step)
}

// NextUpdateIn returns how long until Update has work to do: the next
// regular tick or the next fruit roll, whichever comes first.
func (e *Engine) NextUpdateIn(now time.Time) time.Duration {
	return min(e.NextTickIn(now), e.spawnGate.Remaining(now, e.settings.SpawnInterval))
}

// Settings returns the settings the engine was built with.
func (e *Engine) Settings() Settings {
	return e.settings
}

// Snake exposes the snake for inspection by tests and shells.
func (e *Engine) Snake() *Snake {
	return e.snake
}

// Grid exposes the fruit grid for inspection by tests and shells.
func (e *Engine) Grid() *Grid {
	return e.grid
}
