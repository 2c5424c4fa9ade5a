package snake

import (
	"sync"
	"time"
)

// SyncEngine shares one Engine between goroutines. Each method holds the
// lock for a single operation and the engine itself never escapes.
type SyncEngine struct {
	mu     sync.Mutex
	engine *Engine
}

// NewSyncEngine wraps a new engine built from settings.
func NewSyncEngine(settings Settings, now time.Time) (*SyncEngine, error) {
	e, err := NewEngine(settings, now)
	if err != nil {
		return nil, err
	}
	return &SyncEngine{engine: e}, nil
}

// Update runs one engine step and returns its outcome together with how
// long the caller should sleep before the next tick or fruit roll is due.
// The wait is measured from the times the engine recorded, so lock
// contention does not accumulate as drift.
func (s *SyncEngine) Update(now time.Time) (TickOutcome, time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	outcome := s.engine.Update(now)
	return outcome, s.engine.NextUpdateIn(now)
}

// Turn requests a direction change and attempts the immediate turn tick
// under the same lock.
func (s *SyncEngine) Turn(dir Orientation, now time.Time) (bool, TickOutcome) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.engine.Turn(dir, now)
}

// Restart starts a new round.
func (s *SyncEngine) Restart(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine.Restart(now)
}

// GameOver reports whether the round has ended.
func (s *SyncEngine) GameOver() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.engine.GameOver()
}

// Snapshot returns a copy of the current state.
func (s *SyncEngine) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.engine.Snapshot()
}

// Settings returns the engine settings.
func (s *SyncEngine) Settings() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.engine.Settings()
}
