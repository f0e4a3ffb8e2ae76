package collage

import (
	"math"

	"github.com/jbeda/geom"
)

// HexStartAngle is the start angle used for hexagon outlines: the first
// vertex sits directly above the center.
const HexStartAngle = -math.Pi / 2

// boundsTolerance absorbs floating-point noise for cells that touch the
// canvas edge exactly.
const boundsTolerance = 1e-9

// RegularPolygonVertices returns the vertices of a regular polygon with the
// given number of sides and circumradius, centered on the origin.
//
// The first vertex is at startAngle (radians) and the following vertices
// advance by increasing angle. With y pointing down that is clockwise on
// screen for every caller. It returns nil for fewer than three sides or a
// non-positive radius.
func RegularPolygonVertices(sides int, radius, startAngle float64) []Point {
	if sides < 3 || radius <= 0 {
		return nil
	}
	step := 2 * math.Pi / float64(sides)
	pts := make([]Point, sides)
	for i := range pts {
		a := startAngle + step*float64(i)
		pts[i] = Point{X: radius * math.Cos(a), Y: radius * math.Sin(a)}
	}
	return pts
}

// IsWithinBounds reports whether the bounding square
// [center-size, center+size] lies entirely inside [0,width] x [0,height].
func IsWithinBounds(center Point, size, width, height float64) bool {
	if size <= 0 || width <= 0 || height <= 0 {
		return false
	}
	canvas := geom.Rect{
		Min: geom.Coord{X: -boundsTolerance, Y: -boundsTolerance},
		Max: geom.Coord{X: width + boundsTolerance, Y: height + boundsTolerance},
	}
	return canvas.ContainsRect(squareBounds(center, size))
}

// squareBounds returns the axis-aligned square of half-side size around c.
func squareBounds(c Point, size float64) geom.Rect {
	return geom.Rect{
		Min: c.Sub(Pt(size, size)).coord(),
		Max: c.Add(Pt(size, size)).coord(),
	}
}

// pointInPolygon reports whether p lies inside the closed polygon pts
// (even-odd rule, boundary counted as inside within eps).
func pointInPolygon(p Point, pts []Point) bool {
	const eps = 1e-9
	inside := false
	n := len(pts)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if onSegment(p, a, b, eps) {
			return true
		}
		if (a.Y > p.Y) != (b.Y > p.Y) {
			x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
			if p.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

func onSegment(p, a, b Point, eps float64) bool {
	ab := b.Sub(a)
	ap := p.Sub(a)
	cross := ab.X*ap.Y - ab.Y*ap.X
	if math.Abs(cross) > eps*math.Max(1, math.Hypot(ab.X, ab.Y)) {
		return false
	}
	dot := ab.X*ap.X + ab.Y*ap.Y
	return dot >= -eps && dot <= ab.X*ab.X+ab.Y*ab.Y+eps
}
