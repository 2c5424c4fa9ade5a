package snake

import (
	"errors"
	"fmt"
	"time"
)

// TickOutcome is the result of one tick attempt.
type TickOutcome int

const (
	Continuing TickOutcome = iota // gate not ready, nothing changed
	Moved                         // snake advanced one cell
	Died                          // wall or self collision; terminal
)

func (o TickOutcome) String() string {
	switch o {
	case Continuing:
		return "continuing"
	case Moved:
		return "moved"
	case Died:
		return "died"
	default:
		return "unknown"
	}
}

// maxPending bounds the turn queue. The second slot keeps a quick double
// key-press from losing its first turn between ticks.
const maxPending = 2

// ErrInvalidBody is returned when a snake cannot be built from a body.
var ErrInvalidBody = errors.New("snake: invalid body")

// Snake owns the body, the committed direction, the pending turn queue and
// the tick timing.
type Snake struct {
	n        int
	body     []Cell // head at index 0
	occupied map[Cell]struct{}
	lastTail Cell

	dir     Orientation
	pending []Orientation

	gate  TickGate
	step  time.Duration
	turn  time.Duration
	alive bool
	ticks uint64
}

// Spawn creates the starting snake for an n×n grid: two cells near the
// bottom centre, heading up.
func Spawn(n int, step, turn time.Duration, now time.Time) (*Snake, error) {
	body := []Cell{
		{X: n / 2, Y: n - 4},
		{X: n / 2, Y: n - 3},
	}
	return NewSnake(n, body, Up, step, turn, now)
}

// NewSnake creates a snake on an n×n grid from a head-first body.
func NewSnake(n int, body []Cell, dir Orientation, step, turn time.Duration, now time.Time) (*Snake, error) {
	if len(body) < 2 {
		return nil, fmt.Errorf("%w: length %d, need at least 2", ErrInvalidBody, len(body))
	}
	if dir == Rest {
		return nil, fmt.Errorf("%w: direction must not be rest", ErrInvalidBody)
	}

	occupied := make(map[Cell]struct{}, len(body))
	for i, c := range body {
		if !interior(n, c) {
			return nil, fmt.Errorf("%w: cell (%d,%d) outside interior", ErrInvalidBody, c.X, c.Y)
		}
		if _, dup := occupied[c]; dup {
			return nil, fmt.Errorf("%w: cell (%d,%d) repeated", ErrInvalidBody, c.X, c.Y)
		}
		if i > 0 && !adjacent(body[i-1], c) {
			return nil, fmt.Errorf("%w: cells %d and %d not adjacent", ErrInvalidBody, i-1, i)
		}
		occupied[c] = struct{}{}
	}

	// Heading straight back into the neck would die on the first tick.
	if dir == FromCells(body[0], body[1]) {
		return nil, fmt.Errorf("%w: direction %s points into the body", ErrInvalidBody, dir)
	}

	tail := body[len(body)-1]
	beforeTail := body[len(body)-2]

	s := &Snake{
		n:        n,
		body:     append(make([]Cell, 0, len(body)+8), body...),
		occupied: occupied,
		lastTail: tail.Add(tail.X-beforeTail.X, tail.Y-beforeTail.Y),
		dir:      dir,
		pending:  make([]Orientation, 0, maxPending),
		gate:     NewTickGate(now),
		step:     step,
		turn:     turn,
		alive:    true,
	}
	return s, nil
}

// RequestTurn queues a direction change to be committed on a later tick.
// It returns false when the request is ignored: rest, a repeat or reversal
// of the newest requested direction, a full queue, or a dead snake.
func (s *Snake) RequestTurn(dir Orientation) bool {
	if !s.alive || dir == Rest {
		return false
	}
	if len(s.pending) >= maxPending {
		return false
	}

	ref := s.dir
	if len(s.pending) > 0 {
		ref = s.pending[len(s.pending)-1]
	}
	if dir == ref {
		return false
	}
	if dir == ref.Inverse() && len(s.body) > 1 {
		return false
	}

	s.pending = append(s.pending, dir)
	return true
}

// TryTick advances the snake one cell if a full step has elapsed.
// Below the threshold it is a cheap no-op and may be called every frame.
func (s *Snake) TryTick(grid *Grid, now time.Time) TickOutcome {
	if !s.alive {
		return Died
	}
	if !s.gate.Ready(now, s.step) {
		return Continuing
	}
	return s.advance(grid, now)
}

// TryTurnTick advances the snake if a turn is pending and the shorter turn
// duration has elapsed. Shells call it right after an accepted RequestTurn
// so direction changes take effect sooner than the steady step.
func (s *Snake) TryTurnTick(grid *Grid, now time.Time) TickOutcome {
	if !s.alive {
		return Died
	}
	if len(s.pending) == 0 || !s.gate.Ready(now, s.turn) {
		return Continuing
	}
	return s.advance(grid, now)
}

// advance performs one tick: commit a pending turn, move or grow, or die.
func (s *Snake) advance(grid *Grid, now time.Time) TickOutcome {
	if len(s.pending) > 0 {
		s.dir = s.pending[0]
		copy(s.pending, s.pending[1:])
		s.pending = s.pending[:len(s.pending)-1]
	}

	dx, dy := s.dir.Delta()
	next := s.body[0].Add(dx, dy)
	s.lastTail = s.body[len(s.body)-1]

	if !interior(s.n, next) || s.Contains(next) {
		s.alive = false
		s.gate.Mark(now)
		return Died
	}

	if grid.Consume(next) {
		s.body = append(s.body, Cell{})
		copy(s.body[1:], s.body)
	} else {
		tail := s.body[len(s.body)-1]
		delete(s.occupied, tail)
		copy(s.body[1:], s.body[:len(s.body)-1])
	}
	s.body[0] = next
	s.occupied[next] = struct{}{}

	s.ticks++
	s.gate.Mark(now)
	return Moved
}

// Contains reports whether c is part of the body.
func (s *Snake) Contains(c Cell) bool {
	_, ok := s.occupied[c]
	return ok
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []Cell {
	out := make([]Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Head returns the head cell.
func (s *Snake) Head() Cell {
	return s.body[0]
}

// Tail returns the last body cell.
func (s *Snake) Tail() Cell {
	return s.body[len(s.body)-1]
}

// Len returns the body length.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the committed direction.
func (s *Snake) Direction() Orientation {
	return s.dir
}

// Pending returns a copy of the queued turns, oldest first.
func (s *Snake) Pending() []Orientation {
	out := make([]Orientation, len(s.pending))
	copy(out, s.pending)
	return out
}

// Alive reports whether the snake can still move.
func (s *Snake) Alive() bool {
	return s.alive
}

// LastTail returns the cell vacated (or about to be vacated) by the most
// recent tick. Only meaningful for interpolated drawing.
func (s *Snake) LastTail() Cell {
	return s.lastTail
}

// LastTick returns the time of the last accepted tick.
func (s *Snake) LastTick() time.Time {
	return s.gate.Last()
}

// Ticks returns the number of successful moves.
func (s *Snake) Ticks() uint64 {
	return s.ticks
}

func interior(n int, c Cell) bool {
	return c.X >= 1 && c.X <= n-2 && c.Y >= 1 && c.Y <= n-2
}

func adjacent(a, b Cell) bool {
	dx, dy := a.X-b.X, a.Y-b.Y
	return dx*dx+dy*dy == 1
}
