package snapdrag

import "testing"

func TestComputeBounds(t *testing.T) {
	tests := []struct {
		name     string
		viewport Size
		obj      Size
		gap      float64
		want     Bounds
	}{
		{"fits", Size{400, 300}, Size{50, 50}, 10, Bounds{10, 340, 10, 240}},
		{"zero gap", Size{400, 300}, Size{50, 50}, 0, Bounds{0, 350, 0, 250}},
		{"too wide", Size{100, 100}, Size{200, 50}, 10, Bounds{10, 10, 10, 40}},
		{"too tall", Size{100, 100}, Size{50, 95}, 10, Bounds{10, 40, 10, 10}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeBounds(tt.viewport, tt.obj, tt.gap)
			if got != tt.want {
				t.Errorf("ComputeBounds = %+v, want %+v", got, tt.want)
			}
			if got.Left > got.Right || got.Top > got.Bottom {
				t.Errorf("bounds invariant violated: %+v", got)
			}
		})
	}
}

func TestBoundsClamp(t *testing.T) {
	b := Bounds{Left: 10, Right: 340, Top: 10, Bottom: 240}
	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"inside", Vec2{100, 100}, Vec2{100, 100}},
		{"left edge past gap", Vec2{5, 100}, Vec2{10, 100}},
		{"exactly at gap", Vec2{10, 100}, Vec2{10, 100}},
		{"right overflow", Vec2{390, 100}, Vec2{340, 100}},
		{"top overflow", Vec2{100, -20}, Vec2{100, 10}},
		{"bottom overflow", Vec2{100, 260}, Vec2{100, 240}},
		{"corner", Vec2{-5, 999}, Vec2{10, 240}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := b.Clamp(tt.in); got != tt.want {
				t.Errorf("Clamp(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestBoundsClampDegenerateFarEdgeWins(t *testing.T) {
	b := ComputeBounds(Size{100, 100}, Size{200, 50}, 10)
	got := b.Clamp(Vec2{-50, 500})
	if got != (Vec2{10, 40}) {
		t.Errorf("Clamp = %v, want {10 40}", got)
	}
}

func TestBoundsClampIdempotent(t *testing.T) {
	bounds := []Bounds{
		{10, 340, 10, 240},
		{10, 10, 10, 40},
	}
	for _, b := range bounds {
		for x := -100.0; x <= 500; x += 37 {
			for y := -100.0; y <= 400; y += 41 {
				once := b.Clamp(Vec2{x, y})
				if twice := b.Clamp(once); twice != once {
					t.Fatalf("Clamp not idempotent at (%v, %v): %v then %v", x, y, once, twice)
				}
				if !b.Contains(once) {
					t.Fatalf("Clamp(%v, %v) = %v outside %+v", x, y, once, b)
				}
			}
		}
	}
}

func TestClassify(t *testing.T) {
	vp := Size{400, 300}
	obj := Size{50, 50}
	tests := []struct {
		name string
		pos  Vec2
		mode ZoneMode
		want Zone
	}{
		{"top-left", Vec2{10, 10}, ZonesQuadrants, ZoneTopLeft},
		{"top-right", Vec2{300, 10}, ZonesQuadrants, ZoneTopRight},
		{"bottom-left", Vec2{10, 200}, ZonesQuadrants, ZoneBottomLeft},
		{"bottom-right", Vec2{300, 200}, ZonesQuadrants, ZoneBottomRight},
		{"center tie goes left/top", Vec2{175, 125}, ZonesQuadrants, ZoneTopLeft},
		{"just past midpoint", Vec2{176, 126}, ZonesQuadrants, ZoneBottomRight},
		{"halves left", Vec2{10, 240}, ZonesHalves, ZoneLeft},
		{"halves right", Vec2{300, 240}, ZonesHalves, ZoneRight},
		{"halves tie goes left", Vec2{175, 10}, ZonesHalves, ZoneLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.pos, obj, vp, tt.mode); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestEdgeFor(t *testing.T) {
	b := Bounds{Left: 10, Right: 340}
	if got := b.EdgeFor(ZoneBottomLeft); got != 10 {
		t.Errorf("EdgeFor(bottom-left) = %v, want 10", got)
	}
	if got := b.EdgeFor(ZoneTopRight); got != 340 {
		t.Errorf("EdgeFor(top-right) = %v, want 340", got)
	}
	if got := b.EdgeFor(ZoneLeft); got != 10 {
		t.Errorf("EdgeFor(left) = %v, want 10", got)
	}
	if got := b.EdgeFor(ZoneRight); got != 340 {
		t.Errorf("EdgeFor(right) = %v, want 340", got)
	}
}
