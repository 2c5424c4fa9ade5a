package snake

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

const (
	testStep = 180 * time.Millisecond
	testTurn = 90 * time.Millisecond
)

var t0 = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

func newTestSnake(t *testing.T, n int, body []Cell, dir Orientation) *Snake {
	t.Helper()
	s, err := NewSnake(n, body, dir, testStep, testTurn, t0)
	if err != nil {
		t.Fatalf("NewSnake() error = %v", err)
	}
	return s
}

func TestSpawn(t *testing.T) {
	s, err := Spawn(10, testStep, testTurn, t0)
	if err != nil {
		t.Fatalf("Spawn() error = %v", err)
	}

	want := []Cell{{5, 6}, {5, 7}}
	if got := s.Body(); !reflect.DeepEqual(got, want) {
		t.Errorf("Body() = %v, expected %v", got, want)
	}
	if s.Direction() != Up {
		t.Errorf("Direction() = %v, expected up", s.Direction())
	}
	if s.LastTail() != (Cell{5, 8}) {
		t.Errorf("LastTail() = %v, expected (5,8)", s.LastTail())
	}
	if !s.Alive() {
		t.Error("new snake should be alive")
	}
}

func TestNewSnakeRejectsBadBodies(t *testing.T) {
	tests := []struct {
		name string
		body []Cell
		dir  Orientation
	}{
		{"too short", []Cell{{5, 5}}, Up},
		{"rest direction", []Cell{{5, 5}, {5, 6}}, Rest},
		{"on border", []Cell{{5, 0}, {5, 1}}, Up},
		{"repeated cell", []Cell{{5, 5}, {5, 6}, {5, 5}}, Up},
		{"gap", []Cell{{5, 5}, {5, 7}}, Up},
		{"diagonal", []Cell{{5, 5}, {6, 6}}, Up},
		{"facing neck", []Cell{{5, 5}, {5, 6}}, Down},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSnake(10, tt.body, tt.dir, testStep, testTurn, t0)
			if !errors.Is(err, ErrInvalidBody) {
				t.Errorf("NewSnake() error = %v, expected ErrInvalidBody", err)
			}
		})
	}
}

func TestTickGating(t *testing.T) {
	s := newTestSnake(t, 10, []Cell{{5, 6}, {5, 7}}, Up)
	g := NewGrid(10)

	if got := s.TryTick(g, at(179)); got != Continuing {
		t.Errorf("TryTick(179ms) = %v, expected continuing", got)
	}
	if s.Head() != (Cell{5, 6}) {
		t.Errorf("head moved before step elapsed: %v", s.Head())
	}

	if got := s.TryTick(g, at(180)); got != Moved {
		t.Errorf("TryTick(180ms) = %v, expected moved", got)
	}
	if got := s.TryTick(g, at(181)); got != Continuing {
		t.Errorf("TryTick(181ms) = %v, expected continuing", got)
	}
	if got := s.TryTick(g, at(360)); got != Moved {
		t.Errorf("TryTick(360ms) = %v, expected moved", got)
	}
	if s.Ticks() != 2 {
		t.Errorf("Ticks() = %d, expected 2", s.Ticks())
	}
}

func TestMoveShiftsBody(t *testing.T) {
	s := newTestSnake(t, 10, []Cell{{5, 6}, {5, 7}}, Up)
	g := NewGrid(10)

	if got := s.TryTick(g, at(180)); got != Moved {
		t.Fatalf("TryTick() = %v, expected moved", got)
	}

	want := []Cell{{5, 5}, {5, 6}}
	if got := s.Body(); !reflect.DeepEqual(got, want) {
		t.Errorf("Body() = %v, expected %v", got, want)
	}
	if s.LastTail() != (Cell{5, 7}) {
		t.Errorf("LastTail() = %v, expected (5,7)", s.LastTail())
	}
	if s.Contains(Cell{5, 7}) {
		t.Error("vacated tail cell still marked as occupied")
	}
}

func TestWallCollision(t *testing.T) {
	s := newTestSnake(t, 10, []Cell{{5, 6}, {5, 7}}, Up)
	g := NewGrid(10)

	for i := 1; i <= 5; i++ {
		if got := s.TryTick(g, at(180*i)); got != Moved {
			t.Fatalf("tick %d = %v, expected moved", i, got)
		}
	}
	if s.Head() != (Cell{5, 1}) {
		t.Fatalf("Head() = %v, expected (5,1)", s.Head())
	}

	if got := s.TryTick(g, at(180*6)); got != Died {
		t.Fatalf("TryTick() into wall = %v, expected died", got)
	}

	want := []Cell{{5, 1}, {5, 2}}
	if got := s.Body(); !reflect.DeepEqual(got, want) {
		t.Errorf("Body() after death = %v, expected %v", got, want)
	}
	if s.Alive() {
		t.Error("snake should be dead")
	}

	// Dead snakes stay dead and unchanged
	if got := s.TryTick(g, at(180*10)); got != Died {
		t.Errorf("TryTick() after death = %v, expected died", got)
	}
	if got := s.Body(); !reflect.DeepEqual(got, want) {
		t.Errorf("Body() changed after death: %v", got)
	}
	if s.RequestTurn(Left) {
		t.Error("dead snake accepted a turn")
	}
}

func TestSelfCollision(t *testing.T) {
	tests := []struct {
		name string
		body []Cell
		dir  Orientation
		turn Orientation
	}{
		{
			name: "into body",
			body: []Cell{{3, 3}, {4, 3}, {4, 4}, {3, 4}, {2, 4}},
			dir:  Left,
			turn: Down,
		},
		{
			// The tail has not moved yet when the new head is checked
			name: "into tail",
			body: []Cell{{3, 3}, {4, 3}, {4, 4}, {3, 4}},
			dir:  Left,
			turn: Down,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestSnake(t, 10, tt.body, tt.dir)
			g := NewGrid(10)

			if !s.RequestTurn(tt.turn) {
				t.Fatalf("RequestTurn(%v) rejected", tt.turn)
			}
			if got := s.TryTick(g, at(180)); got != Died {
				t.Errorf("TryTick() = %v, expected died", got)
			}
			if got := s.Body(); !reflect.DeepEqual(got, tt.body) {
				t.Errorf("Body() = %v, expected unchanged %v", got, tt.body)
			}
		})
	}
}

func TestGrowOnFruit(t *testing.T) {
	s := newTestSnake(t, 10, []Cell{{5, 6}, {5, 7}}, Up)
	g := NewGrid(10)
	g.Place(Cell{5, 5})

	if got := s.TryTick(g, at(180)); got != Moved {
		t.Fatalf("TryTick() = %v, expected moved", got)
	}

	want := []Cell{{5, 5}, {5, 6}, {5, 7}}
	if got := s.Body(); !reflect.DeepEqual(got, want) {
		t.Errorf("Body() = %v, expected %v", got, want)
	}
	if g.HasFruit(Cell{5, 5}) {
		t.Error("fruit was not consumed")
	}

	// Next tick moves without growing
	s.TryTick(g, at(360))
	if s.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", s.Len())
	}
}

func TestRequestTurn(t *testing.T) {
	s := newTestSnake(t, 10, []Cell{{5, 6}, {5, 7}}, Up)

	if s.RequestTurn(Up) {
		t.Error("repeat of current direction accepted")
	}
	if s.RequestTurn(Down) {
		t.Error("reversal accepted")
	}
	if s.RequestTurn(Rest) {
		t.Error("rest accepted")
	}

	if !s.RequestTurn(Left) {
		t.Fatal("RequestTurn(Left) rejected")
	}
	// Compared against the newest pending turn, not the committed direction
	if s.RequestTurn(Right) {
		t.Error("reversal of pending turn accepted")
	}
	if !s.RequestTurn(Down) {
		t.Fatal("RequestTurn(Down) after Left rejected")
	}
	if s.RequestTurn(Right) {
		t.Error("turn accepted with full queue")
	}

	want := []Orientation{Left, Down}
	if got := s.Pending(); !reflect.DeepEqual(got, want) {
		t.Errorf("Pending() = %v, expected %v", got, want)
	}
	if s.Direction() != Up {
		t.Errorf("Direction() = %v, expected up until next tick", s.Direction())
	}
}

func TestPendingTurnsCommitOnePerTick(t *testing.T) {
	s := newTestSnake(t, 10, []Cell{{5, 6}, {5, 7}}, Up)
	g := NewGrid(10)

	s.RequestTurn(Left)
	s.RequestTurn(Down)

	s.TryTick(g, at(180))
	if s.Direction() != Left || s.Head() != (Cell{4, 6}) {
		t.Errorf("after tick 1: dir=%v head=%v, expected left (4,6)", s.Direction(), s.Head())
	}

	s.TryTick(g, at(360))
	if s.Direction() != Down || s.Head() != (Cell{4, 7}) {
		t.Errorf("after tick 2: dir=%v head=%v, expected down (4,7)", s.Direction(), s.Head())
	}
	if len(s.Pending()) != 0 {
		t.Errorf("Pending() = %v, expected empty", s.Pending())
	}
}

func TestTurnTick(t *testing.T) {
	s := newTestSnake(t, 10, []Cell{{5, 6}, {5, 7}}, Up)
	g := NewGrid(10)

	// Without a pending turn the turn tick never fires
	if got := s.TryTurnTick(g, at(170)); got != Continuing {
		t.Errorf("TryTurnTick() without pending = %v, expected continuing", got)
	}

	s.RequestTurn(Left)
	if got := s.TryTurnTick(g, at(50)); got != Continuing {
		t.Errorf("TryTurnTick(50ms) = %v, expected continuing", got)
	}
	if got := s.TryTurnTick(g, at(90)); got != Moved {
		t.Fatalf("TryTurnTick(90ms) = %v, expected moved", got)
	}
	if s.Head() != (Cell{4, 6}) {
		t.Errorf("Head() = %v, expected (4,6)", s.Head())
	}

	// Regular step is measured from the turn tick
	if got := s.TryTick(g, at(180)); got != Continuing {
		t.Errorf("TryTick(180ms) = %v, expected continuing", got)
	}
	if got := s.TryTick(g, at(270)); got != Moved {
		t.Errorf("TryTick(270ms) = %v, expected moved", got)
	}
}

func TestOrientation(t *testing.T) {
	tests := []struct {
		u, v Cell
		want Orientation
	}{
		{Cell{5, 5}, Cell{5, 4}, Up},
		{Cell{5, 5}, Cell{5, 6}, Down},
		{Cell{5, 5}, Cell{4, 5}, Left},
		{Cell{5, 5}, Cell{6, 5}, Right},
		{Cell{5, 5}, Cell{5, 5}, Rest},
	}

	for _, tt := range tests {
		got := FromCells(tt.u, tt.v)
		if got != tt.want {
			t.Errorf("FromCells(%v, %v) = %v, expected %v", tt.u, tt.v, got, tt.want)
		}
		if got.Inverse().Inverse() != got {
			t.Errorf("%v inverse is not an involution", got)
		}
	}

	for _, sym := range []string{"up", "down", "left", "right"} {
		o, ok := FromSymbol(sym)
		if !ok || o.String() != sym {
			t.Errorf("FromSymbol(%q) = %v, %v", sym, o, ok)
		}
	}
	if _, ok := FromSymbol("north"); ok {
		t.Error("FromSymbol accepted an unknown symbol")
	}
}

func TestShift(t *testing.T) {
	off := Up.Shift(0.5, 40*time.Millisecond)
	if off.DX != 0 || off.DY != -20 {
		t.Errorf("Up.Shift() = %+v, expected {0 -20}", off)
	}
	off = Right.Shift(0.5, 40*time.Millisecond)
	if off.DX != 20 || off.DY != 0 {
		t.Errorf("Right.Shift() = %+v, expected {20 0}", off)
	}
	if off := Rest.Shift(0.5, time.Second); off != (Offset{}) {
		t.Errorf("Rest.Shift() = %+v, expected zero", off)
	}
}
