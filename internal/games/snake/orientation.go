package snake

import "time"

// Orientation is a compass direction on the grid, or Rest for no movement.
type Orientation int

const (
	Rest Orientation = iota
	Up
	Down
	Left
	Right
)

// Offset is a sub-cell pixel displacement used for interpolated rendering.
type Offset struct {
	DX, DY float32
}

// FromCells derives the orientation of the step from u to v, where v is the
// cell closer to the head. Vertical movement takes precedence.
func FromCells(u, v Cell) Orientation {
	switch {
	case v.Y < u.Y:
		return Up
	case v.Y > u.Y:
		return Down
	case v.X < u.X:
		return Left
	case v.X > u.X:
		return Right
	default:
		return Rest
	}
}

// FromSymbol converts a raw direction symbol to an orientation.
// Unknown symbols report false; callers ignore them.
func FromSymbol(sym string) (Orientation, bool) {
	switch sym {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	}
	return Rest, false
}

// Inverse returns the opposite orientation. Rest is its own inverse.
func (o Orientation) Inverse() Orientation {
	switch o {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	default:
		return Rest
	}
}

// Delta returns the unit grid step for this orientation.
func (o Orientation) Delta() (dx, dy int) {
	switch o {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	default:
		return 0, 0
	}
}

// Shift returns the pixel offset covered after elapsed time at the given
// speed in pixels per millisecond. Only used for drawing between ticks.
func (o Orientation) Shift(speed float32, elapsed time.Duration) Offset {
	delta := speed * float32(elapsed.Milliseconds())
	switch o {
	case Up:
		return Offset{DY: -delta}
	case Down:
		return Offset{DY: delta}
	case Left:
		return Offset{DX: -delta}
	case Right:
		return Offset{DX: delta}
	default:
		return Offset{}
	}
}

func (o Orientation) String() string {
	switch o {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Rest:
		return "rest"
	default:
		return "unknown"
	}
}
