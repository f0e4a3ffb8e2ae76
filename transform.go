package collage

import (
	"math"

	"github.com/jbeda/geom"
)

// Transform maps the canonical collage canvas onto a secondary surface,
// such as the scaled-down print area of a garment mockup. It is a uniform
// scale about the origin followed by an offset.
type Transform struct {
	Scale  float64
	Offset Point
}

// IdentityTransform returns the transform that leaves coordinates unchanged.
func IdentityTransform() Transform {
	return Transform{Scale: 1}
}

// FitRect returns the transform that places a width x height canvas inside
// dst, scaled uniformly to fit and centered. A degenerate canvas or
// destination yields the identity.
func FitRect(width, height float64, dst geom.Rect) Transform {
	dw, dh := dst.Width(), dst.Height()
	if width <= 0 || height <= 0 || dw <= 0 || dh <= 0 {
		return IdentityTransform()
	}
	s := math.Min(dw/width, dh/height)
	return Transform{
		Scale: s,
		Offset: Point{
			X: dst.Min.X + (dw-width*s)/2,
			Y: dst.Min.Y + (dh-height*s)/2,
		},
	}
}

// Matrix returns the transform as an affine matrix.
func (t Transform) Matrix() Matrix {
	return Translate(t.Offset.X, t.Offset.Y).Multiply(Scale(t.Scale, t.Scale))
}

// Point maps a canvas point.
func (t Transform) Point(p Point) Point {
	return p.Mul(t.Scale).Add(t.Offset)
}

// Cell maps a cell's center and size. Index, shape and focus flag are kept.
func (t Transform) Cell(c Cell) Cell {
	c.Center = t.Point(c.Center)
	c.Size *= t.Scale
	return c
}

// Cells maps every cell into a new slice.
func (t Transform) Cells(cells []Cell) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = t.Cell(c)
	}
	return out
}

// Fit maps a fit result. Because the transform is uniform, the mapped fit
// equals fitting the photo into the mapped cell.
func (t Transform) Fit(r FitResult) FitResult {
	r.Scale *= t.Scale
	r.Placement = t.Point(r.Placement)
	r.Clip.Center = t.Point(r.Clip.Center)
	r.Clip.Size *= t.Scale
	return r
}

// Then returns the transform that applies t and then u.
func (t Transform) Then(u Transform) Transform {
	return Transform{
		Scale:  t.Scale * u.Scale,
		Offset: u.Point(t.Offset),
	}
}
