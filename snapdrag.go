package snapdrag

import (
	"image/color"
	"math"
)

// Vec2 is a 2D vector used for pointer samples, positions and deltas
// throughout the API.
type Vec2 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

// Size is a width/height pair for viewports and dragged objects.
type Size struct {
	Width, Height float64
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

// Center returns the geometric center of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// toRGBA converts to a premultiplied color.RGBA for ebiten.
func (c Color) toRGBA() color.RGBA {
	clamp := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return color.RGBA{
		R: clamp(c.R * c.A),
		G: clamp(c.G * c.A),
		B: clamp(c.B * c.A),
		A: clamp(c.A),
	}
}

// Zone identifies the viewport region containing a dragged object's center.
type Zone uint8

const (
	ZoneTopLeft Zone = iota
	ZoneTopRight
	ZoneBottomLeft
	ZoneBottomRight

	// ZonesHalves mode
	ZoneLeft
	ZoneRight
)

// IsLeft reports whether the zone lies on the left side of the viewport.
func (z Zone) IsLeft() bool {
	return z == ZoneTopLeft || z == ZoneBottomLeft || z == ZoneLeft
}

func (z Zone) String() string {
	switch z {
	case ZoneLeft:
		return "left"
	case ZoneRight:
		return "right"
	case ZoneTopLeft:
		return "top-left"
	case ZoneTopRight:
		return "top-right"
	case ZoneBottomLeft:
		return "bottom-left"
	case ZoneBottomRight:
		return "bottom-right"
	default:
		return "unknown"
	}
}

// ZoneMode selects how the viewport is partitioned for zone classification.
type ZoneMode uint8

const (
	ZonesQuadrants ZoneMode = iota // four quadrants around the viewport center
	ZonesHalves                    // left and right halves only
)

func (m ZoneMode) String() string {
	if m == ZonesHalves {
		return "halves"
	}
	return "quadrants"
}

// State is the drag state machine's current state.
type State uint8

const (
	StateIdle     State = iota // no gesture in progress
	StateDragging              // pointer is down and moving the object
	StateSnapping              // released; easing toward a side edge
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	case StateSnapping:
		return "snapping"
	default:
		return "unknown"
	}
}

// EventType identifies a kind of drag lifecycle event.
type EventType uint8

const (
	EventDragStart EventType = iota // fires on press, before any movement
	EventDrag                       // fires after each clamped move
	EventRelease                    // fires when the pointer is released
	EventSnapEnd                    // fires when a snap animation lands on its edge
	EventPersist                    // fires after the final position has been stored
)

func (e EventType) String() string {
	switch e {
	case EventDragStart:
		return "dragstart"
	case EventDrag:
		return "drag"
	case EventRelease:
		return "release"
	case EventSnapEnd:
		return "snapend"
	case EventPersist:
		return "persist"
	default:
		return "unknown"
	}
}
