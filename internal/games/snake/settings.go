package snake

import (
	"errors"
	"fmt"
	"time"
)

// MinGridSize is the smallest grid with a playable interior for the
// starting snake.
const MinGridSize = 5

// ErrInvalidSettings is returned when a game cannot start with the given settings.
var ErrInvalidSettings = errors.New("snake: invalid settings")

// Settings is the static configuration of one session.
type Settings struct {
	GridSize      int           // Cells per side, border included
	CellSize      float32       // Pixels per cell, used for interpolation speed
	Step          time.Duration // Minimum time between regular ticks
	Turn          time.Duration // Minimum time before a turn tick
	SpawnInterval time.Duration // Time between fruit spawn rolls
	SpawnChance   float64       // Probability of a fruit per roll, 0..1
	Seed          int64         // RNG seed; 0 picks one from the clock
}

// DefaultSettings returns the classic configuration.
func DefaultSettings() Settings {
	return Settings{
		GridSize:      35,
		CellSize:      20,
		Step:          180 * time.Millisecond,
		Turn:          90 * time.Millisecond,
		SpawnInterval: 150 * time.Millisecond,
		SpawnChance:   0.05,
	}
}

// Validate reports the first setting that makes the game unplayable.
func (s Settings) Validate() error {
	switch {
	case s.GridSize < MinGridSize:
		return fmt.Errorf("%w: grid size %d is below %d", ErrInvalidSettings, s.GridSize, MinGridSize)
	case s.CellSize <= 0:
		return fmt.Errorf("%w: cell size must be positive, got %g", ErrInvalidSettings, s.CellSize)
	case s.Step <= 0:
		return fmt.Errorf("%w: step duration must be positive, got %s", ErrInvalidSettings, s.Step)
	case s.Turn <= 0:
		return fmt.Errorf("%w: turn duration must be positive, got %s", ErrInvalidSettings, s.Turn)
	case s.Turn > s.Step:
		return fmt.Errorf("%w: turn duration %s exceeds step duration %s", ErrInvalidSettings, s.Turn, s.Step)
	case s.SpawnInterval <= 0:
		return fmt.Errorf("%w: spawn interval must be positive, got %s", ErrInvalidSettings, s.SpawnInterval)
	case s.SpawnChance < 0 || s.SpawnChance > 1:
		return fmt.Errorf("%w: spawn chance %g outside [0, 1]", ErrInvalidSettings, s.SpawnChance)
	}
	return nil
}

// Speed returns the interpolation speed in pixels per millisecond, so that
// a head crosses one cell in exactly one step.
func (s Settings) Speed() float32 {
	ms := s.Step.Milliseconds()
	if ms <= 0 {
		return 0
	}
	return s.CellSize / float32(ms)
}

// FitTo returns a copy whose grid is at most maxSize cells per side, so a
// shell can shrink the board to its surface. Grids never shrink below
// MinGridSize.
func (s Settings) FitTo(maxSize int) Settings {
	if maxSize < s.GridSize {
		s.GridSize = max(maxSize, MinGridSize)
	}
	return s
}
