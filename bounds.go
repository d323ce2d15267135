package snapdrag

// Bounds is the legal range for a dragged object's top-left corner.
// Left <= Right and Top <= Bottom always hold.
type Bounds struct {
	Left, Right, Top, Bottom float64
}

// ComputeBounds derives the legal top-left range for an object of size obj
// inside viewport, keeping gap pixels clear of every edge. When the object
// does not fit, the range on that axis collapses to the single point gap.
func ComputeBounds(viewport, obj Size, gap float64) Bounds {
	b := Bounds{
		Left:   gap,
		Right:  viewport.Width - obj.Width - gap,
		Top:    gap,
		Bottom: viewport.Height - obj.Height - gap,
	}
	if b.Right < b.Left {
		b.Right = b.Left
	}
	if b.Bottom < b.Top {
		b.Bottom = b.Top
	}
	return b
}

// Clamp applies the edge policy to a candidate position. Each axis is checked
// independently: a leading edge at or before the margin pins to Left/Top, then
// a trailing edge at or beyond the far margin pins to Right/Bottom. The far
// check runs second, so it wins when both trigger. Clamp is idempotent.
func (b Bounds) Clamp(p Vec2) Vec2 {
	if p.X <= b.Left {
		p.X = b.Left
	}
	if p.X >= b.Right {
		p.X = b.Right
	}
	if p.Y <= b.Top {
		p.Y = b.Top
	}
	if p.Y >= b.Bottom {
		p.Y = b.Bottom
	}
	return p
}

// Contains reports whether p is already a legal position.
func (b Bounds) Contains(p Vec2) bool {
	return p.X >= b.Left && p.X <= b.Right && p.Y >= b.Top && p.Y <= b.Bottom
}

// EdgeFor returns the horizontal snap target for zone.
func (b Bounds) EdgeFor(z Zone) float64 {
	if z.IsLeft() {
		return b.Left
	}
	return b.Right
}

// Classify returns the zone containing the center of an object of size obj
// placed at pos. Centers exactly on a midpoint belong to the left/top side.
// In ZonesHalves mode only ZoneLeft and ZoneRight are produced.
func Classify(pos Vec2, obj, viewport Size, mode ZoneMode) Zone {
	cx := pos.X + obj.Width/2
	cy := pos.Y + obj.Height/2
	left := cx <= viewport.Width/2
	if mode == ZonesHalves {
		if left {
			return ZoneLeft
		}
		return ZoneRight
	}
	top := cy <= viewport.Height/2

	switch {
	case left && top:
		return ZoneTopLeft
	case top:
		return ZoneTopRight
	case left:
		return ZoneBottomLeft
	default:
		return ZoneBottomRight
	}
}
