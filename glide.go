package glide

import "time"

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left of the document, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Bottom returns the Y coordinate of the rectangle's lower edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Range is a general-purpose min/max range.
// Used for the scrollable extent in ScrollState.
type Range struct {
	Min, Max float64
}

// Clamp restricts v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Direction is the current scroll direction.
type Direction uint8

const (
	DirectionDown Direction = iota // toward larger offsets (default)
	DirectionUp                    // toward smaller offsets
)

func (d Direction) String() string {
	if d == DirectionUp {
		return "up"
	}
	return "down"
}

// Policy selects how a binding reacts to scroll progress through its region.
type Policy uint8

const (
	PolicyToggle  Policy = iota // scrubs forward and backward every update
	PolicyOnce                  // completes once and then freezes
	PolicyReverse               // plays entering the region, reverses leaving it
)

func (p Policy) String() string {
	switch p {
	case PolicyOnce:
		return "once"
	case PolicyReverse:
		return "reverse"
	default:
		return "toggle"
	}
}

// ScrollState is a snapshot of the emulated scroll position. Values are
// copied to every subscriber; nothing outside the Emulator mutates it.
type ScrollState struct {
	// RealPosition is the target the input drives toward.
	RealPosition float64
	// VirtualPosition is the eased coordinate everything renders with.
	VirtualPosition float64
	// Velocity is the virtual position's rate of change in px/s.
	Velocity  float64
	Direction Direction
	// Bounds is the current scrollable extent.
	Bounds Range
	// Time is the loop time of the tick that produced this snapshot.
	Time time.Duration
}

// TuningParameters tune the Emulator. They are owned by the
// ResponsivenessController and read by the Emulator once per tick.
type TuningParameters struct {
	// Smoothing is the time constant, in seconds, of the exponential
	// approach of the virtual position toward its target. Lower is snappier.
	Smoothing             float64
	VelocityThresholdHigh float64
	VelocityThresholdLow  float64
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
