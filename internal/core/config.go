package core

// RuntimeConfig contains configuration passed to shells at startup.
type RuntimeConfig struct {
	ScreenW   int // Terminal width in characters
	ScreenH   int // Terminal height in characters
	FrameRate int // Redraws per second for frame-driven shells
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: 60,
	}
}

// WithSize returns a copy with the given screen size. Non-positive values
// keep the current size.
func (c RuntimeConfig) WithSize(w, h int) RuntimeConfig {
	if w > 0 {
		c.ScreenW = w
	}
	if h > 0 {
		c.ScreenH = h
	}
	return c
}
