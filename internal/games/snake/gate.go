package snake

import "time"

// TickGate admits an action only once a minimum duration has elapsed since
// the last accepted one. The zero value admits immediately.
type TickGate struct {
	last time.Time
}

// NewTickGate returns a gate whose last accepted tick is now.
func NewTickGate(now time.Time) TickGate {
	return TickGate{last: now}
}

// Ready reports whether at least d has elapsed since the last accepted tick.
func (g TickGate) Ready(now time.Time, d time.Duration) bool {
	return now.Sub(g.last) >= d
}

// Mark records now as the last accepted tick.
func (g *TickGate) Mark(now time.Time) {
	g.last = now
}

// Last returns the time of the last accepted tick.
func (g TickGate) Last() time.Time {
	return g.last
}

// Elapsed returns the time since the last accepted tick, never negative.
func (g TickGate) Elapsed(now time.Time) time.Duration {
	return max(0, now.Sub(g.last))
}

// Remaining returns how long until d has elapsed since the last accepted
// tick, clamped at zero.
func (g TickGate) Remaining(now time.Time, d time.Duration) time.Duration {
	return max(0, d-now.Sub(g.last))
}
