package board

// Direction is one of the eight compass directions a ray can travel on the
// grid. The enumeration is closed: Directions lists every value and Inverse
// is total.
type Direction int

const (
	Up Direction = iota
	UpRight
	Right
	DownRight
	Down
	DownLeft
	Left
	UpLeft
)

// Directions lists all eight directions in scan order.
var Directions = [8]Direction{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}

// Inverse returns the opposite direction. The mapping is involutive:
// d.Inverse().Inverse() == d for every direction.
func (d Direction) Inverse() Direction {
	switch d {
	case Up:
		return Down
	case UpRight:
		return DownLeft
	case Right:
		return Left
	case DownRight:
		return UpLeft
	case Down:
		return Up
	case DownLeft:
		return UpRight
	case Left:
		return Right
	case UpLeft:
		return DownRight
	default:
		return d
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case UpRight:
		return "UpRight"
	case Right:
		return "Right"
	case DownRight:
		return "DownRight"
	case Down:
		return "Down"
	case DownLeft:
		return "DownLeft"
	case Left:
		return "Left"
	case UpLeft:
		return "UpLeft"
	default:
		return "Unknown"
	}
}

// delta returns the row and column displacement of k steps in this
// direction. Row deltas are negative upward, column deltas negative
// leftward.
func (d Direction) delta(k int) (dRow, dCol int) {
	switch d {
	case Up:
		return -k, 0
	case UpRight:
		return -k, k
	case Right:
		return 0, k
	case DownRight:
		return k, k
	case Down:
		return k, 0
	case DownLeft:
		return k, -k
	case Left:
		return 0, -k
	case UpLeft:
		return -k, -k
	default:
		return 0, 0
	}
}
