package types

// Axis is the axis of motion for a Direction.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

// Direction represents navigation direction
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// Axis returns the axis the direction moves along.
func (d Direction) Axis() Axis {
	if d == DirLeft || d == DirRight {
		return Horizontal
	}
	return Vertical
}

// Sign returns -1 for left/up and +1 for right/down.
func (d Direction) Sign() int {
	if d == DirLeft || d == DirUp {
		return -1
	}
	return 1
}

// Forward reports whether the direction moves toward higher coordinates.
func (d Direction) Forward() bool {
	return d.Sign() > 0
}

// Char returns the single-character form used by Hyprland dispatchers.
func (d Direction) Char() string {
	switch d {
	case DirLeft:
		return "l"
	case DirRight:
		return "r"
	case DirUp:
		return "u"
	default:
		return "d"
	}
}

// String returns the string representation of a Direction
func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// MarshalText makes Direction render as its name in JSON output.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDirection converts a string to Direction. Accepts both the
// single-character dispatcher form and the full word.
func ParseDirection(s string) (Direction, bool) {
	switch s {
	case "l", "left":
		return DirLeft, true
	case "r", "right":
		return DirRight, true
	case "u", "up":
		return DirUp, true
	case "d", "down":
		return DirDown, true
	default:
		return 0, false
	}
}

// Rect represents pixel bounds on screen
type Rect struct {
	X      int // Left edge (pixels from screen left)
	Y      int // Top edge (pixels from screen top)
	Width  int // Width in pixels
	Height int // Height in pixels
}

// Point represents a 2D coordinate
type Point struct {
	X int
	Y int
}

// Center returns the center point of a Rect
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Right returns the right edge coordinate.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the bottom edge coordinate.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Contains checks if a point is inside the rect
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() &&
		p.Y >= r.Y && p.Y <= r.Bottom()
}

// OverlapX returns the horizontal overlap extent between two Rects.
func (r Rect) OverlapX(other Rect) int {
	left := max(r.X, other.X)
	right := min(r.Right(), other.Right())
	if left >= right {
		return 0
	}
	return right - left
}

// OverlapY returns the vertical overlap extent between two Rects.
func (r Rect) OverlapY(other Rect) int {
	top := max(r.Y, other.Y)
	bottom := min(r.Bottom(), other.Bottom())
	if top >= bottom {
		return 0
	}
	return bottom - top
}
