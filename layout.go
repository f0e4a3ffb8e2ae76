package collage

import (
	"fmt"
	"strings"
)

// LayoutKind selects one of the tessellation generators.
type LayoutKind uint8

// Layout kinds.
const (
	LayoutHexagonal LayoutKind = iota
	LayoutSquare
	LayoutCircular
	LayoutCenterFocus
)

var layoutNames = [...]string{
	LayoutHexagonal:   "hexagonal",
	LayoutSquare:      "square",
	LayoutCircular:    "circular",
	LayoutCenterFocus: "center-focus",
}

// String returns the name used in configuration files and flags.
func (k LayoutKind) String() string {
	if int(k) < len(layoutNames) {
		return layoutNames[k]
	}
	return fmt.Sprintf("LayoutKind(%d)", uint8(k))
}

// ParseLayoutKind parses a layout name. Matching ignores case, and "_" is
// accepted in place of "-".
func ParseLayoutKind(s string) (LayoutKind, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, name := range layoutNames {
		if name == norm {
			return LayoutKind(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownLayout, s)
}

// MarshalText implements encoding.TextMarshaler.
func (k LayoutKind) MarshalText() ([]byte, error) {
	if int(k) >= len(layoutNames) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownLayout, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *LayoutKind) UnmarshalText(text []byte) error {
	v, err := ParseLayoutKind(string(text))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Parameter ranges. Generators clamp into these silently.
const (
	MinHexColumns, MaxHexColumns       = 3, 16
	MinHexRows, MaxHexRows             = 3, 16
	MinSquareRows, MaxSquareRows       = 2, 16
	MinSquareColumns, MaxSquareColumns = 2, 16
	MinCircularCount, MaxCircularCount = 1, 32
	MinFocusCount, MaxFocusCount       = 1, 16
)

// Layout is a layout selection with its parameters. Rows and Columns are
// used by the hexagonal and square layouts, Count by the circular and
// center-focus layouts.
type Layout struct {
	Kind    LayoutKind `yaml:"kind"`
	Rows    int        `yaml:"rows,omitempty"`
	Columns int        `yaml:"columns,omitempty"`
	Count   int        `yaml:"count,omitempty"`
}

// Clamp returns a copy of l with every parameter the kind uses clamped into
// its documented range. Unused parameters are zeroed so that equal layouts
// compare equal.
func (l Layout) Clamp() Layout {
	out := Layout{Kind: l.Kind}
	switch l.Kind {
	case LayoutHexagonal:
		out.Columns = clamp(l.Columns, MinHexColumns, MaxHexColumns)
		out.Rows = clamp(l.Rows, MinHexRows, MaxHexRows)
	case LayoutSquare:
		out.Columns = clamp(l.Columns, MinSquareColumns, MaxSquareColumns)
		out.Rows = clamp(l.Rows, MinSquareRows, MaxSquareRows)
	case LayoutCircular:
		out.Count = clamp(l.Count, MinCircularCount, MaxCircularCount)
	case LayoutCenterFocus:
		out.Count = clamp(l.Count, MinFocusCount, MaxFocusCount)
	}
	return out
}

// Capacity returns the number of cells the clamped layout requests before
// out-of-bounds cells are dropped.
func (l Layout) Capacity() int {
	l = l.Clamp()
	switch l.Kind {
	case LayoutHexagonal:
		// Odd rows hold one fewer column.
		odd := l.Rows / 2
		return l.Rows*l.Columns - odd
	case LayoutSquare:
		return l.Rows * l.Columns
	case LayoutCircular:
		return l.Count
	case LayoutCenterFocus:
		return l.Count + 1
	}
	return 0
}

// Generate produces the ordered cell list for a canvas of width x height
// pixels. Parameters are clamped first. An empty result is valid and means
// the canvas is too small for the layout.
func Generate(width, height int, l Layout) ([]Cell, error) {
	if width <= 0 {
		return nil, &ParameterError{Name: "canvas width", Value: width}
	}
	if height <= 0 {
		return nil, &ParameterError{Name: "canvas height", Value: height}
	}
	w, h := float64(width), float64(height)
	l = l.Clamp()

	var cells []Cell
	switch l.Kind {
	case LayoutHexagonal:
		cells = Hexagonal(w, h, l.Columns, l.Rows)
	case LayoutSquare:
		cells = Square(w, h, l.Rows, l.Columns)
	case LayoutCircular:
		cells = Circular(w, h, l.Count)
	case LayoutCenterFocus:
		cells = CenterFocus(w, h, l.Count)
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownLayout, uint8(l.Kind))
	}

	if dropped := l.Capacity() - len(cells); dropped > 0 {
		Logger().Debug("collage: dropped out-of-bounds cells",
			"layout", l.Kind.String(),
			"requested", l.Capacity(),
			"dropped", dropped)
	}
	return cells, nil
}

func clamp(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

// appendCell assigns the next contiguous index and appends c.
func appendCell(cells []Cell, c Cell) []Cell {
	c.Index = len(cells)
	return append(cells, c)
}
