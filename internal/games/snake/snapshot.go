package snake

import "time"

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StateGameOver GameStateType = "game_over"
)

// Snapshot is a read-only copy of the simulation state, safe to hand to a
// renderer on another goroutine.
type Snapshot struct {
	Size      int
	Body      []Cell // head first
	Fruit     []Cell
	Alive     bool
	Direction Orientation
	Pending   int
	Length    int
	Ticks     uint64
	State     GameStateType
}

// Head returns the head cell, or false for an empty snapshot.
func (s Snapshot) Head() (Cell, bool) {
	if len(s.Body) == 0 {
		return Cell{}, false
	}
	return s.Body[0], true
}

// Occupied returns the body cells as a set.
func (s Snapshot) Occupied() map[Cell]bool {
	set := make(map[Cell]bool, len(s.Body))
	for _, c := range s.Body {
		set[c] = true
	}
	return set
}

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	state := StatePlaying
	if e.gameOver {
		state = StateGameOver
	}
	return Snapshot{
		Size:      e.grid.Size(),
		Body:      e.snake.Body(),
		Fruit:     e.grid.Fruit(),
		Alive:     e.snake.Alive(),
		Direction: e.snake.Direction(),
		Pending:   len(e.snake.pending),
		Length:    e.snake.Len(),
		Ticks:     e.snake.Ticks(),
		State:     state,
	}
}

// Frame is what the windowed shell draws each frame. Static body cells sit
// on the grid; the head and tail squares slide between cells by their
// offsets so movement looks continuous between ticks.
type Frame struct {
	Size int

	Static    []Cell // body without the head
	HeadFrom  Cell   // second body cell; the head square slides out of it
	HeadShift Offset
	TailFrom  Cell // vacated cell; the tail square slides out of it
	TailShift Offset

	Fruit  []Cell
	Border []Cell
	Alive  bool
}

// Frame builds the interpolated drawing data for now. Elapsed time is capped
// at one step so a stalled or dead snake never slides past its cell.
func (e *Engine) Frame(now time.Time) Frame {
	body := e.snake.body
	elapsed := min(e.snake.gate.Elapsed(now), e.settings.Step)
	speed := e.settings.Speed()

	static := make([]Cell, len(body)-1)
	copy(static, body[1:])

	neck := body[1]
	lastTail := e.snake.LastTail()
	tail := body[len(body)-1]

	return Frame{
		Size:      e.grid.Size(),
		Static:    static,
		HeadFrom:  neck,
		HeadShift: FromCells(neck, body[0]).Shift(speed, elapsed),
		TailFrom:  lastTail,
		TailShift: FromCells(lastTail, tail).Shift(speed, elapsed),
		Fruit:     e.grid.Fruit(),
		Border:    e.grid.Border(),
		Alive:     e.snake.Alive(),
	}
}
