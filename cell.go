package collage

import (
	"fmt"
	"math"
	"strings"

	"github.com/jbeda/geom"
)

// ShapeKind selects the outline of a cell, and with it the fit and clip
// algorithm.
type ShapeKind uint8

// Shape kinds.
const (
	// ShapeHexagon is a regular hexagon; Size is its circumradius.
	ShapeHexagon ShapeKind = iota

	// ShapeSquare is an axis-aligned square; Size is its half-side.
	ShapeSquare

	// ShapeCircle is a circle; Size is its radius.
	ShapeCircle
)

var shapeNames = [...]string{
	ShapeHexagon: "hexagon",
	ShapeSquare:  "square",
	ShapeCircle:  "circle",
}

// String returns the lower-case name of the shape.
func (k ShapeKind) String() string {
	if int(k) < len(shapeNames) {
		return shapeNames[k]
	}
	return fmt.Sprintf("ShapeKind(%d)", uint8(k))
}

// Valid reports whether k is one of the defined shape kinds.
func (k ShapeKind) Valid() bool {
	return int(k) < len(shapeNames)
}

// MarshalText implements encoding.TextMarshaler.
func (k ShapeKind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, &ParameterError{Name: "shape", Value: k.String()}
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *ShapeKind) UnmarshalText(text []byte) error {
	s := strings.ToLower(strings.TrimSpace(string(text)))
	for i, name := range shapeNames {
		if name == s {
			*k = ShapeKind(i)
			return nil
		}
	}
	return &ParameterError{Name: "shape", Value: string(text)}
}

// Cell is a single tile of the collage grid.
//
// Cells are produced by the generators and never carry images themselves;
// the Registry records which image occupies which cell.
type Cell struct {
	// Index is the position in generation order, starting at 0. It is the
	// join key to submissions: the n-th photo belongs in cell n.
	Index int

	// Shape is the outline of the cell.
	Shape ShapeKind

	// Center is the centroid in canvas coordinates.
	Center Point

	// Size is the characteristic radius: hexagon circumradius, circle
	// radius, or square half-side. Always > 0.
	Size float64

	// CenterFocus marks the single enlarged centerpiece of the
	// center-focus layout.
	CenterFocus bool
}

// Vertices returns the outline vertices in canvas coordinates for polygonal
// shapes, in clockwise screen order. Circles return nil.
func (c Cell) Vertices() []Point {
	var local []Point
	switch c.Shape {
	case ShapeHexagon:
		local = RegularPolygonVertices(6, c.Size, HexStartAngle)
	case ShapeSquare:
		local = []Point{
			{X: -c.Size, Y: -c.Size},
			{X: c.Size, Y: -c.Size},
			{X: c.Size, Y: c.Size},
			{X: -c.Size, Y: c.Size},
		}
	default:
		return nil
	}
	for i := range local {
		local[i] = local[i].Add(c.Center)
	}
	return local
}

// Bounds returns the tight axis-aligned bounding box of the cell's shape.
func (c Cell) Bounds() geom.Rect {
	if c.Shape != ShapeHexagon {
		return squareBounds(c.Center, c.Size)
	}
	// Vertex-up hexagon: full circumradius vertically, inradius horizontally.
	half := c.Size * math.Sqrt(3) / 2
	return geom.Rect{
		Min: geom.Coord{X: c.Center.X - half, Y: c.Center.Y - c.Size},
		Max: geom.Coord{X: c.Center.X + half, Y: c.Center.Y + c.Size},
	}
}

// Contains reports whether p lies inside or on the cell's outline.
func (c Cell) Contains(p Point) bool {
	if c.Shape == ShapeCircle {
		return p.Distance(c.Center) <= c.Size+1e-9
	}
	return pointInPolygon(p, c.Vertices())
}

// Clip returns the clip shape congruent to the cell's outline.
func (c Cell) Clip() ClipShape {
	return ClipShape{Shape: c.Shape, Center: c.Center, Size: c.Size}
}

// newCell builds a cell and reports whether it is placeable: positive size
// and inside the canvas.
func newCell(shape ShapeKind, center Point, size, width, height float64) (Cell, bool) {
	if !(size > 0) || !IsWithinBounds(center, size, width, height) {
		return Cell{}, false
	}
	return Cell{Shape: shape, Center: center, Size: size}, true
}
