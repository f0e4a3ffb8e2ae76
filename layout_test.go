package collage

import (
	"errors"
	"math"
	"testing"
)

const coordEpsilon = 1e-6

var layoutCases = []struct {
	name          string
	width, height int
	layout        Layout
}{
	{"hex 7x8", 600, 600, Layout{Kind: LayoutHexagonal, Columns: 7, Rows: 8}},
	{"hex 16x16", 800, 700, Layout{Kind: LayoutHexagonal, Columns: 16, Rows: 16}},
	{"hex clamped low", 600, 600, Layout{Kind: LayoutHexagonal, Columns: 1, Rows: 0}},
	{"square 4x5", 600, 400, Layout{Kind: LayoutSquare, Rows: 4, Columns: 5}},
	{"square clamped", 600, 600, Layout{Kind: LayoutSquare, Rows: 40, Columns: -3}},
	{"circular 12", 600, 600, Layout{Kind: LayoutCircular, Count: 12}},
	{"circular 32", 1000, 1000, Layout{Kind: LayoutCircular, Count: 32}},
	{"center-focus 8", 600, 600, Layout{Kind: LayoutCenterFocus, Count: 8}},
	{"center-focus small canvas", 260, 260, Layout{Kind: LayoutCenterFocus, Count: 16}},
}

func TestGenerateDeterministic(t *testing.T) {
	for _, tt := range layoutCases {
		t.Run(tt.name, func(t *testing.T) {
			a, err := Generate(tt.width, tt.height, tt.layout)
			if err != nil {
				t.Fatalf("Generate() = %v", err)
			}
			b, _ := Generate(tt.width, tt.height, tt.layout)
			if len(a) != len(b) {
				t.Fatalf("cell counts differ: %d vs %d", len(a), len(b))
			}
			for i := range a {
				if a[i].Index != b[i].Index || a[i].Shape != b[i].Shape ||
					!a[i].Center.ApproxEqual(b[i].Center, coordEpsilon) ||
					math.Abs(a[i].Size-b[i].Size) > coordEpsilon {
					t.Errorf("cell %d differs: %+v vs %+v", i, a[i], b[i])
				}
			}
		})
	}
}

func TestGenerateInvariants(t *testing.T) {
	for _, tt := range layoutCases {
		t.Run(tt.name, func(t *testing.T) {
			cells, err := Generate(tt.width, tt.height, tt.layout)
			if err != nil {
				t.Fatalf("Generate() = %v", err)
			}
			w, h := float64(tt.width), float64(tt.height)
			for i, c := range cells {
				if c.Index != i {
					t.Errorf("cell %d has Index %d", i, c.Index)
				}
				if !(c.Size > 0) {
					t.Errorf("cell %d has size %v", i, c.Size)
				}
				if !IsWithinBounds(c.Center, c.Size, w, h) {
					t.Errorf("cell %d (%v, %v) is out of bounds", i, c.Center, c.Size)
				}
				if c.Shape != cells[0].Shape {
					t.Errorf("cell %d shape %v, want %v", i, c.Shape, cells[0].Shape)
				}
			}
			if len(cells) > tt.layout.Capacity() {
				t.Errorf("len = %d exceeds capacity %d", len(cells), tt.layout.Capacity())
			}
		})
	}
}

func TestHexagonalExample(t *testing.T) {
	cells := Hexagonal(600, 600, 7, 8)

	r := HexRadius(600, 7)
	if r != 45 {
		t.Fatalf("HexRadius = %v, want 45", r)
	}
	if len(cells) != 8*7-4 {
		t.Fatalf("len = %d, want %d", len(cells), 8*7-4)
	}

	// Rows alternate 7, 6, 7, 6, ...
	rowStep := 45 * math.Sqrt(3) * 0.75
	perRow := map[int]int{}
	startY := cells[0].Center.Y
	for _, c := range cells {
		row := int(math.Round((c.Center.Y - startY) / rowStep))
		perRow[row]++
		if c.Center.X < 45-coordEpsilon || c.Center.X > 555+coordEpsilon ||
			c.Center.Y < 45-coordEpsilon || c.Center.Y > 555+coordEpsilon {
			t.Errorf("cell %d center %v outside [45,555]^2", c.Index, c.Center)
		}
	}
	for row := range 8 {
		want := 7
		if row%2 == 1 {
			want = 6
		}
		if perRow[row] != want {
			t.Errorf("row %d has %d cells, want %d", row, perRow[row], want)
		}
	}

	// Brick offset: first cell of row 1 is shifted by 0.75 * radius.
	if dx := cells[7].Center.X - cells[0].Center.X; math.Abs(dx-0.75*45) > coordEpsilon {
		t.Errorf("odd-row offset = %v, want %v", dx, 0.75*45)
	}
	if got, want := cells[0].Center.X, (600-6*67.5)/2; math.Abs(got-want) > coordEpsilon {
		t.Errorf("startX = %v, want %v", got, want)
	}
}

func TestHexagonalRadiusShrinks(t *testing.T) {
	if r := HexRadius(600, 16); math.Abs(r-560.0/24) > coordEpsilon {
		t.Errorf("HexRadius(600, 16) = %v, want %v", r, 560.0/24)
	}
	if r := HexRadius(600, 100); r != HexRadius(600, MaxHexColumns) {
		t.Errorf("HexRadius should clamp columns, got %v", r)
	}
}

func TestSquareLayout(t *testing.T) {
	cells := Square(600, 600, 3, 4)
	if len(cells) != 12 {
		t.Fatalf("len = %d, want 12", len(cells))
	}
	pitch := 600.0 / 5
	for _, c := range cells {
		if math.Abs(c.Size-pitch*0.45) > coordEpsilon {
			t.Errorf("cell %d size = %v, want %v", c.Index, c.Size, pitch*0.45)
		}
	}
	// Row-major order.
	if cells[1].Center.Y != cells[0].Center.Y || cells[1].Center.X <= cells[0].Center.X {
		t.Errorf("cells 0 and 1 not left-to-right in one row: %v %v", cells[0].Center, cells[1].Center)
	}
	if cells[4].Center.Y <= cells[3].Center.Y {
		t.Errorf("cell 4 should start the second row: %v", cells[4].Center)
	}
	// Grid is centered.
	first, last := cells[0].Center, cells[len(cells)-1].Center
	if mid := first.Add(last).Mul(0.5); !mid.ApproxEqual(Pt(300, 300), coordEpsilon) {
		t.Errorf("grid midpoint = %v, want (300,300)", mid)
	}
	// Squares never overlap thanks to the gutter.
	for i := range cells {
		for j := i + 1; j < len(cells); j++ {
			a, b := cells[i], cells[j]
			if math.Abs(a.Center.X-b.Center.X) < a.Size+b.Size-coordEpsilon &&
				math.Abs(a.Center.Y-b.Center.Y) < a.Size+b.Size-coordEpsilon {
				t.Errorf("cells %d and %d overlap", i, j)
			}
		}
	}
}

func TestCircularExample(t *testing.T) {
	cells := Circular(600, 600, 12)
	if len(cells) != 12 {
		t.Fatalf("len = %d, want 12", len(cells))
	}
	if !cells[0].Center.ApproxEqual(Pt(480, 300), coordEpsilon) {
		t.Errorf("cell 0 = %v, want (480,300)", cells[0].Center)
	}
	if !cells[3].Center.ApproxEqual(Pt(300, 480), coordEpsilon) {
		t.Errorf("cell 3 = %v, want (300,480)", cells[3].Center)
	}
	for _, c := range cells {
		if c.Shape != ShapeCircle || c.Size != RingCellSize {
			t.Errorf("cell %d = %+v, want circle of size %v", c.Index, c, RingCellSize)
		}
	}
}

func TestCenterFocusLayout(t *testing.T) {
	cells := CenterFocus(600, 600, 6)
	if len(cells) != 7 {
		t.Fatalf("len = %d, want 7", len(cells))
	}
	focus := cells[0]
	if !focus.CenterFocus || focus.Size != FocusCenterSize || !focus.Center.ApproxEqual(Pt(300, 300), coordEpsilon) {
		t.Errorf("cell 0 = %+v, want centerpiece at (300,300)", focus)
	}
	for _, c := range cells[1:] {
		if c.CenterFocus {
			t.Errorf("cell %d flagged as centerpiece", c.Index)
		}
		if d := c.Center.Distance(focus.Center); math.Abs(d-FocusRingRadius) > coordEpsilon {
			t.Errorf("cell %d at distance %v, want %v", c.Index, d, FocusRingRadius)
		}
		if c.Size != FocusRingCellSize {
			t.Errorf("cell %d size %v, want %v", c.Index, c.Size, FocusRingCellSize)
		}
	}
	if !cells[1].Center.ApproxEqual(Pt(420, 300), coordEpsilon) {
		t.Errorf("cell 1 = %v, want (420,300)", cells[1].Center)
	}
}

func TestGenerateEmptyGrid(t *testing.T) {
	tests := []struct {
		name   string
		w, h   int
		layout Layout
	}{
		{"hex narrow", 40, 600, Layout{Kind: LayoutHexagonal, Columns: 5, Rows: 5}},
		{"circular tiny", 50, 50, Layout{Kind: LayoutCircular, Count: 8}},
		{"center-focus tiny", 100, 100, Layout{Kind: LayoutCenterFocus, Count: 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells, err := Generate(tt.w, tt.h, tt.layout)
			if err != nil {
				t.Fatalf("Generate() = %v, want nil error", err)
			}
			if len(cells) != 0 {
				t.Errorf("len = %d, want 0", len(cells))
			}
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	if _, err := Generate(0, 100, Layout{}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Generate(0, 100) = %v, want ErrInvalidParameter", err)
	}
	if _, err := Generate(100, -1, Layout{}); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("Generate(100, -1) = %v, want ErrInvalidParameter", err)
	}
	if _, err := Generate(100, 100, Layout{Kind: LayoutKind(42)}); !errors.Is(err, ErrUnknownLayout) {
		t.Errorf("Generate(kind 42) = %v, want ErrUnknownLayout", err)
	}
}

func TestLayoutClamp(t *testing.T) {
	tests := []struct {
		in, want Layout
	}{
		{Layout{Kind: LayoutHexagonal, Columns: 99, Rows: 1, Count: 5}, Layout{Kind: LayoutHexagonal, Columns: 16, Rows: 3}},
		{Layout{Kind: LayoutSquare, Columns: 1, Rows: 17}, Layout{Kind: LayoutSquare, Columns: 2, Rows: 16}},
		{Layout{Kind: LayoutCircular, Count: 0, Rows: 4}, Layout{Kind: LayoutCircular, Count: 1}},
		{Layout{Kind: LayoutCenterFocus, Count: 50}, Layout{Kind: LayoutCenterFocus, Count: 16}},
	}
	for _, tt := range tests {
		if got := tt.in.Clamp(); got != tt.want {
			t.Errorf("%+v.Clamp() = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseLayoutKind(t *testing.T) {
	tests := []struct {
		in   string
		want LayoutKind
	}{
		{"hexagonal", LayoutHexagonal},
		{"Square", LayoutSquare},
		{" circular ", LayoutCircular},
		{"center_focus", LayoutCenterFocus},
		{"center-focus", LayoutCenterFocus},
	}
	for _, tt := range tests {
		got, err := ParseLayoutKind(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseLayoutKind(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
	if _, err := ParseLayoutKind("spiral"); !errors.Is(err, ErrUnknownLayout) {
		t.Errorf("ParseLayoutKind(spiral) = %v, want ErrUnknownLayout", err)
	}
}
