package physics

// Axis indexes a vector component
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
)

// Direction is the gravity direction in y-up world coordinates
type Direction uint8

const (
	Down Direction = iota
	Up
	Left
	Right
)

// Axis returns the component gravity acts on
func (d Direction) Axis() Axis {
	switch d {
	case Left, Right:
		return AxisX
	default:
		return AxisY
	}
}

// Sign returns +1 for Up/Right, -1 for Down/Left
func (d Direction) Sign() float64 {
	switch d {
	case Up, Right:
		return 1
	default:
		return -1
	}
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return "Down"
	}
}

// Arrow returns a single glyph for status display
func (d Direction) Arrow() rune {
	switch d {
	case Up:
		return '↑'
	case Left:
		return '←'
	case Right:
		return '→'
	default:
		return '↓'
	}
}

// ParseDirection accepts direction names and the signed axis shorthand (+y, -x, ...)
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "down", "Down", "DOWN", "-y":
		return Down, true
	case "up", "Up", "UP", "+y":
		return Up, true
	case "left", "Left", "LEFT", "-x":
		return Left, true
	case "right", "Right", "RIGHT", "+x":
		return Right, true
	}
	return Down, false
}

// Wall names one of the four arena boundaries
type Wall uint8

const (
	WallUpper Wall = iota
	WallLower
	WallLeft
	WallRight
	wallCount
)

// Walls lists the boundaries in detection order
var Walls = [wallCount]Wall{WallUpper, WallLower, WallLeft, WallRight}

func (w Wall) String() string {
	switch w {
	case WallUpper:
		return "Upper"
	case WallLower:
		return "Lower"
	case WallLeft:
		return "Left"
	case WallRight:
		return "Right"
	}
	return "Unknown"
}

// Normal returns the axis perpendicular to the wall
func (w Wall) Normal() Axis {
	if w == WallUpper || w == WallLower {
		return AxisY
	}
	return AxisX
}
