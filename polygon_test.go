package collage

import (
	"math"
	"testing"
)

func TestRegularPolygonVertices(t *testing.T) {
	pts := RegularPolygonVertices(6, 10, HexStartAngle)
	if len(pts) != 6 {
		t.Fatalf("len = %d, want 6", len(pts))
	}
	if !pts[0].ApproxEqual(Pt(0, -10), 1e-9) {
		t.Errorf("first vertex = %v, want (0,-10) (top)", pts[0])
	}
	for i, p := range pts {
		if d := math.Hypot(p.X, p.Y); math.Abs(d-10) > 1e-9 {
			t.Errorf("vertex %d at distance %v, want 10", i, d)
		}
	}

	// Shoelace area is positive for clockwise order with y pointing down.
	var area float64
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		area += a.X*b.Y - b.X*a.Y
	}
	if area <= 0 {
		t.Errorf("signed area = %v, want > 0 (clockwise on screen)", area)
	}

	want := 6 * 10 * 10 * math.Sqrt(3) / 4 * 2 // 2 * (3*sqrt(3)/2 * r^2)
	if math.Abs(area-want) > 1e-6 {
		t.Errorf("2*area = %v, want %v", area, want)
	}
}

func TestRegularPolygonVerticesDegenerate(t *testing.T) {
	tests := []struct {
		name   string
		sides  int
		radius float64
	}{
		{"two sides", 2, 10},
		{"zero radius", 6, 0},
		{"negative radius", 4, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RegularPolygonVertices(tt.sides, tt.radius, 0); got != nil {
				t.Errorf("RegularPolygonVertices(%d, %v) = %v, want nil", tt.sides, tt.radius, got)
			}
		})
	}
}

func TestIsWithinBounds(t *testing.T) {
	tests := []struct {
		name   string
		center Point
		size   float64
		want   bool
	}{
		{"centered", Pt(50, 50), 10, true},
		{"touching top-left", Pt(10, 10), 10, true},
		{"touching bottom-right", Pt(90, 90), 10, true},
		{"past left", Pt(9.5, 50), 10, false},
		{"past bottom", Pt(50, 90.5), 10, false},
		{"larger than canvas", Pt(50, 50), 60, false},
		{"zero size", Pt(50, 50), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWithinBounds(tt.center, tt.size, 100, 100); got != tt.want {
				t.Errorf("IsWithinBounds(%v, %v) = %v, want %v", tt.center, tt.size, got, tt.want)
			}
		})
	}
}

func TestCellContains(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		p    Point
		want bool
	}{
		{"hex center", Cell{Shape: ShapeHexagon, Center: Pt(50, 50), Size: 10}, Pt(50, 50), true},
		{"hex top vertex", Cell{Shape: ShapeHexagon, Center: Pt(50, 50), Size: 10}, Pt(50, 40), true},
		{"hex bounding corner", Cell{Shape: ShapeHexagon, Center: Pt(50, 50), Size: 10}, Pt(58, 41), false},
		{"square corner", Cell{Shape: ShapeSquare, Center: Pt(50, 50), Size: 10}, Pt(60, 60), true},
		{"square outside", Cell{Shape: ShapeSquare, Center: Pt(50, 50), Size: 10}, Pt(61, 50), false},
		{"circle edge", Cell{Shape: ShapeCircle, Center: Pt(50, 50), Size: 10}, Pt(60, 50), true},
		{"circle bounding corner", Cell{Shape: ShapeCircle, Center: Pt(50, 50), Size: 10}, Pt(59, 59), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cell.Contains(tt.p); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestCellBoundsHexagon(t *testing.T) {
	c := Cell{Shape: ShapeHexagon, Center: Pt(100, 100), Size: 45}
	b := c.Bounds()
	if w := b.Max.X - b.Min.X; math.Abs(w-45*math.Sqrt(3)) > 1e-9 {
		t.Errorf("width = %v, want %v", w, 45*math.Sqrt(3))
	}
	if h := b.Max.Y - b.Min.Y; math.Abs(h-90) > 1e-9 {
		t.Errorf("height = %v, want 90", h)
	}
}

func TestShapeKindText(t *testing.T) {
	for _, k := range []ShapeKind{ShapeHexagon, ShapeSquare, ShapeCircle} {
		text, err := k.MarshalText()
		if err != nil {
			t.Fatalf("MarshalText(%v) = %v", k, err)
		}
		var got ShapeKind
		if err := got.UnmarshalText(text); err != nil || got != k {
			t.Errorf("UnmarshalText(%q) = %v, %v; want %v", text, got, err, k)
		}
	}
	var k ShapeKind
	if err := k.UnmarshalText([]byte("triangle")); err == nil {
		t.Error("UnmarshalText(triangle) should fail")
	}
}
