package snake

import (
	"errors"
	"math"
	"reflect"
	"testing"
	"time"
)

func testSettings() Settings {
	s := DefaultSettings()
	s.GridSize = 10
	s.SpawnChance = 0
	s.Seed = 42
	return s
}

func newTestEngine(t *testing.T, s Settings) *Engine {
	t.Helper()
	e, err := NewEngine(s, t0)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func TestNewEngineRejectsInvalidSettings(t *testing.T) {
	s := testSettings()
	s.GridSize = 3
	if _, err := NewEngine(s, t0); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("NewEngine() error = %v, expected ErrInvalidSettings", err)
	}
}

func TestEngineScenarioFirstTick(t *testing.T) {
	e := newTestEngine(t, testSettings())

	if got := e.Update(at(180)); got != Moved {
		t.Fatalf("Update() = %v, expected moved", got)
	}
	want := []Cell{{5, 5}, {5, 6}}
	if got := e.Snapshot().Body; !reflect.DeepEqual(got, want) {
		t.Errorf("Body = %v, expected %v", got, want)
	}
}

func TestEngineScenarioWallDeath(t *testing.T) {
	e := newTestEngine(t, testSettings())

	for i := 1; i <= 5; i++ {
		if got := e.Update(at(180 * i)); got != Moved {
			t.Fatalf("Update() tick %d = %v, expected moved", i, got)
		}
	}
	if got := e.Update(at(180 * 6)); got != Died {
		t.Fatalf("Update() = %v, expected died", got)
	}

	snap := e.Snapshot()
	want := []Cell{{5, 1}, {5, 2}}
	if !reflect.DeepEqual(snap.Body, want) {
		t.Errorf("Body = %v, expected %v", snap.Body, want)
	}
	if snap.State != StateGameOver || snap.Alive {
		t.Errorf("State = %v, Alive = %v, expected game over", snap.State, snap.Alive)
	}
	if !e.GameOver() {
		t.Error("GameOver() = false, expected true")
	}

	// Further updates and turns change nothing
	if got := e.Update(at(180 * 20)); got != Died {
		t.Errorf("Update() after death = %v, expected died", got)
	}
	if ok, got := e.Turn(Left, at(180*21)); ok || got != Died {
		t.Errorf("Turn() after death = %v, %v, expected false, died", ok, got)
	}
	if !reflect.DeepEqual(e.Snapshot().Body, want) {
		t.Error("body changed after death")
	}
}

func TestEngineScenarioEatFruit(t *testing.T) {
	e := newTestEngine(t, testSettings())
	e.Grid().Place(Cell{5, 5})

	e.Update(at(180))

	snap := e.Snapshot()
	want := []Cell{{5, 5}, {5, 6}, {5, 7}}
	if !reflect.DeepEqual(snap.Body, want) {
		t.Errorf("Body = %v, expected %v", snap.Body, want)
	}
	if snap.Length != 3 {
		t.Errorf("Length = %d, expected 3", snap.Length)
	}
	if len(snap.Fruit) != 0 {
		t.Errorf("Fruit = %v, expected consumed", snap.Fruit)
	}
}

func TestEngineFruitSpawnInterval(t *testing.T) {
	s := testSettings()
	s.SpawnChance = 1
	e := newTestEngine(t, s)

	e.Update(at(149))
	if got := len(e.Grid().Fruit()); got != 0 {
		t.Errorf("fruit before interval = %d, expected 0", got)
	}

	e.Update(at(150))
	fruit := e.Grid().Fruit()
	if len(fruit) != 1 {
		t.Fatalf("fruit after interval = %d, expected 1", len(fruit))
	}
	if !e.Grid().InInterior(fruit[0]) {
		t.Errorf("fruit %v outside interior", fruit[0])
	}

	// One roll per interval
	e.Update(at(151))
	if got := len(e.Grid().Fruit()); got > 1 {
		t.Errorf("fruit = %d, expected at most 1 within one interval", got)
	}
}

func TestEngineNoFruitWithZeroChance(t *testing.T) {
	e := newTestEngine(t, testSettings())
	for i := 1; i <= 4; i++ {
		e.Update(at(150 * i))
	}
	if got := len(e.Grid().Fruit()); got != 0 {
		t.Errorf("fruit = %d, expected 0", got)
	}
}

func TestEngineDeterministicSeed(t *testing.T) {
	s := testSettings()
	s.SpawnChance = 0.5
	s.GridSize = 35

	e1 := newTestEngine(t, s)
	e2 := newTestEngine(t, s)
	for i := 1; i <= 40; i++ {
		e1.Update(at(150 * i))
		e2.Update(at(150 * i))
	}

	if !reflect.DeepEqual(e1.Snapshot(), e2.Snapshot()) {
		t.Error("engines with the same seed diverged")
	}
}

func TestEngineTurn(t *testing.T) {
	e := newTestEngine(t, testSettings())

	ok, got := e.Turn(Left, at(100))
	if !ok || got != Moved {
		t.Fatalf("Turn(Left) = %v, %v, expected true, moved", ok, got)
	}
	if head, _ := e.Snapshot().Head(); head != (Cell{4, 6}) {
		t.Errorf("Head = %v, expected (4,6)", head)
	}

	// Accepted but too soon for another turn tick
	ok, got = e.Turn(Up, at(120))
	if !ok || got != Continuing {
		t.Errorf("Turn(Up) = %v, %v, expected true, continuing", ok, got)
	}

	// Rejected reversal
	ok, got = e.Turn(Down, at(130))
	if ok || got != Continuing {
		t.Errorf("Turn(Down) = %v, %v, expected false, continuing", ok, got)
	}
}

func TestEngineRestart(t *testing.T) {
	e := newTestEngine(t, testSettings())
	for i := 1; i <= 6; i++ {
		e.Update(at(180 * i))
	}
	if !e.GameOver() {
		t.Fatal("expected game over")
	}

	e.Restart(at(2000))
	snap := e.Snapshot()
	if snap.State != StatePlaying || !snap.Alive {
		t.Errorf("State = %v, Alive = %v after restart", snap.State, snap.Alive)
	}
	want := []Cell{{5, 6}, {5, 7}}
	if !reflect.DeepEqual(snap.Body, want) {
		t.Errorf("Body = %v, expected %v", snap.Body, want)
	}
	if got := e.Update(at(2100)); got != Continuing {
		t.Errorf("Update() before step = %v, expected continuing", got)
	}
	if got := e.Update(at(2180)); got != Moved {
		t.Errorf("Update() after step = %v, expected moved", got)
	}
}

func TestEngineNextTickIn(t *testing.T) {
	e := newTestEngine(t, testSettings())

	if got := e.NextTickIn(at(30)); got != 150*time.Millisecond {
		t.Errorf("NextTickIn(30ms) = %v, expected 150ms", got)
	}
	e.Update(at(200))
	if got := e.NextTickIn(at(250)); got != 130*time.Millisecond {
		t.Errorf("NextTickIn(250ms) = %v, expected 130ms", got)
	}
	if got := e.NextTickIn(at(900)); got != 0 {
		t.Errorf("NextTickIn(900ms) = %v, expected 0", got)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	e := newTestEngine(t, testSettings())
	snap := e.Snapshot()
	snap.Body[0] = Cell{1, 1}

	if head, _ := e.Snapshot().Head(); head != (Cell{5, 6}) {
		t.Errorf("engine head = %v after mutating snapshot", head)
	}
}

func approx(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestFrameInterpolation(t *testing.T) {
	s := testSettings()
	s.CellSize = 36
	e := newTestEngine(t, s)

	f := e.Frame(at(90))
	if f.HeadFrom != (Cell{5, 7}) {
		t.Errorf("HeadFrom = %v, expected (5,7)", f.HeadFrom)
	}
	if !approx(f.HeadShift.DY, -18) || f.HeadShift.DX != 0 {
		t.Errorf("HeadShift = %+v, expected {0 -18}", f.HeadShift)
	}
	if f.TailFrom != (Cell{5, 8}) {
		t.Errorf("TailFrom = %v, expected (5,8)", f.TailFrom)
	}
	if !approx(f.TailShift.DY, -18) {
		t.Errorf("TailShift = %+v, expected {0 -18}", f.TailShift)
	}
	if !reflect.DeepEqual(f.Static, []Cell{{5, 7}}) {
		t.Errorf("Static = %v, expected [(5,7)]", f.Static)
	}
	if len(f.Border) != 4*(10-1) {
		t.Errorf("len(Border) = %d, expected %d", len(f.Border), 4*(10-1))
	}

	// Offsets never exceed one cell
	f = e.Frame(at(5000))
	if !approx(f.HeadShift.DY, -36) {
		t.Errorf("HeadShift = %+v, expected clamped to one cell", f.HeadShift)
	}
}

func TestEngineNextUpdateIn(t *testing.T) {
	e := newTestEngine(t, testSettings())

	// Fruit roll at 150ms comes before the tick at 180ms
	if got := e.NextUpdateIn(at(100)); got != 50*time.Millisecond {
		t.Errorf("NextUpdateIn(100ms) = %v, expected 50ms", got)
	}
	e.Update(at(150))
	if got := e.NextUpdateIn(at(160)); got != 20*time.Millisecond {
		t.Errorf("NextUpdateIn(160ms) = %v, expected 20ms", got)
	}
}
