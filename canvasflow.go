package canvasflow

// Vec2 is a 2D vector used for positions, tap points and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// EventType identifies a kind of stage event.
type EventType uint8

const (
	EventTap      EventType = iota // fires on press then release without exceeding the drag dead zone
	EventDragMove                  // fires each frame while the drag surface is being dragged
	EventDragEnd                   // fires when the pointer is released after dragging
)

// String returns the event name used in bindings and debug output.
func (e EventType) String() string {
	switch e {
	case EventTap:
		return "tap"
	case EventDragMove:
		return "dragmove"
	case EventDragEnd:
		return "dragend"
	default:
		return "unknown"
	}
}

// Event is the normalized payload delivered to bound handlers.
type Event struct {
	Type EventType

	// X, Y is the position of the pointer that produced the event.
	X, Y float64

	// Taps lists every contact point that was down when a tap completed,
	// including the releasing one. A single-point tap has exactly one entry.
	Taps []Vec2

	// DraggedX, DraggedY is the cumulative drag since the press. Drag
	// handlers act on EventDragMove alone; a stage delivers a final move
	// for the release position before EventDragEnd, so the end event may
	// leave these zero.
	DraggedX, DraggedY float64

	// DeltaX, DeltaY is the movement since the previous drag event.
	DeltaX, DeltaY float64

	PointerID int
}

// SettleState is the state of the settle animation.
type SettleState uint8

const (
	Idle     SettleState = iota // no settle in flight
	Settling                    // a settle is moving items toward the center
)

func (s SettleState) String() string {
	if s == Settling {
		return "settling"
	}
	return "idle"
}
