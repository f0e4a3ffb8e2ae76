package collage

import (
	"fmt"
	"math"

	"github.com/jbeda/geom"
)

// Default over-scan factors. Both are empirical and tunable through Fitter.
//
// For a vertex-up hexagon of circumradius r the bounding box is
// sqrt(3)*r x 2r, so any hexagon factor >= 2 covers it; 2.3 leaves 15%
// margin on the tall axis. The round factor is applied on top of an exact
// cover fit of the shape's bounding square.
const (
	DefaultHexOverscan   = 2.3
	DefaultRoundOverscan = 1.2
)

// Smallest over-scan factors that still cover the cell. Fitter raises
// smaller non-zero factors to these floors.
const (
	MinHexOverscan   = 2.0
	MinRoundOverscan = 1.0
)

// Fitter computes how a photo is scaled and clipped into a cell.
// The zero value uses the default over-scan factors.
type Fitter struct {
	// HexOverscan multiplies the hexagon circumradius to get the length the
	// photo's shorter side is scaled to. Values below MinHexOverscan are
	// raised to it.
	HexOverscan float64

	// RoundOverscan multiplies the cover-fit scale of circles and squares.
	// Values below MinRoundOverscan are raised to it.
	RoundOverscan float64
}

// DefaultFitter uses DefaultHexOverscan and DefaultRoundOverscan.
var DefaultFitter = Fitter{
	HexOverscan:   DefaultHexOverscan,
	RoundOverscan: DefaultRoundOverscan,
}

// Fit computes the fit of an imgW x imgH photo into cell using DefaultFitter.
func Fit(cell Cell, imgW, imgH int) (FitResult, error) {
	return DefaultFitter.Fit(cell, imgW, imgH)
}

// Fit computes the uniform scale that makes an imgW x imgH photo, centered on
// the cell, cover the cell's shape, plus the clip shape that masks it.
//
// Zero or negative image dimensions return an error wrapping ErrImageLoad.
func (f Fitter) Fit(cell Cell, imgW, imgH int) (FitResult, error) {
	if imgW <= 0 || imgH <= 0 {
		return FitResult{}, fmt.Errorf("%w: image is %dx%d", ErrImageLoad, imgW, imgH)
	}
	if !(cell.Size > 0) {
		return FitResult{}, &ParameterError{Name: "cell size", Value: cell.Size}
	}

	w, h := float64(imgW), float64(imgH)
	var scale float64
	switch cell.Shape {
	case ShapeHexagon:
		target := f.hexOverscan() * cell.Size
		minDim, maxDim := math.Min(w, h), math.Max(w, h)
		scale = math.Max(target/minDim, target/maxDim)
	case ShapeCircle, ShapeSquare:
		// Size is the radius or half-side; cover the full extent.
		extent := 2 * cell.Size
		scale = math.Max(extent/w, extent/h) * f.roundOverscan()
	default:
		return FitResult{}, &ParameterError{Name: "shape", Value: cell.Shape}
	}

	return FitResult{
		Scale:       scale,
		Placement:   cell.Center,
		Clip:        cell.Clip(),
		ImageWidth:  imgW,
		ImageHeight: imgH,
	}, nil
}

func (f Fitter) hexOverscan() float64 {
	if f.HexOverscan > 0 {
		return math.Max(f.HexOverscan, MinHexOverscan)
	}
	return DefaultHexOverscan
}

func (f Fitter) roundOverscan() float64 {
	if f.RoundOverscan > 0 {
		return math.Max(f.RoundOverscan, MinRoundOverscan)
	}
	return DefaultRoundOverscan
}

// FitResult is the scale, placement and clip geometry needed to draw one
// photo inside one cell. It is a value: a new fit replaces an old one.
type FitResult struct {
	// Scale is the uniform scale applied to the photo. Always > 0.
	Scale float64

	// Placement is where the photo's center is drawn; equal to the cell
	// center.
	Placement Point

	// Clip is congruent to the cell outline; no photo content may be
	// visible outside it.
	Clip ClipShape

	// ImageWidth and ImageHeight are the photo's natural dimensions.
	ImageWidth, ImageHeight int
}

// ScaledSize returns the drawn width and height of the photo.
func (r FitResult) ScaledSize() (w, h float64) {
	return float64(r.ImageWidth) * r.Scale, float64(r.ImageHeight) * r.Scale
}

// Origin returns the top-left corner of the drawn photo. The photo is
// anchored at its own center, so scaling is symmetric around Placement.
func (r FitResult) Origin() Point {
	w, h := r.ScaledSize()
	return r.Placement.Sub(Pt(w/2, h/2))
}

// Matrix maps photo pixel coordinates to canvas coordinates.
func (r FitResult) Matrix() Matrix {
	o := r.Origin()
	return Translate(o.X, o.Y).Multiply(Scale(r.Scale, r.Scale))
}

// Bounds returns the canvas rectangle covered by the drawn photo.
func (r FitResult) Bounds() geom.Rect {
	w, h := r.ScaledSize()
	o := r.Origin()
	return geom.Rect{
		Min: o.coord(),
		Max: geom.Coord{X: o.X + w, Y: o.Y + h},
	}
}

// Covers reports whether the drawn photo's bounding box contains the clip
// shape's bounding box, i.e. no part of the cell is left uncovered.
func (r FitResult) Covers() bool {
	const eps = 1e-9
	photo := r.Bounds()
	photo.Min.X -= eps
	photo.Min.Y -= eps
	photo.Max.X += eps
	photo.Max.Y += eps
	return photo.ContainsRect(r.Clip.Bounds())
}

// ClipShape is the mask geometry of a fit: same shape and size as the cell,
// centered on the cell.
type ClipShape struct {
	Shape  ShapeKind
	Center Point
	Size   float64
}

func (c ClipShape) cell() Cell {
	return Cell{Shape: c.Shape, Center: c.Center, Size: c.Size}
}

// Path returns the clip outline as a closed path in canvas coordinates.
func (c ClipShape) Path() *Path {
	p := NewPath()
	if c.Shape == ShapeCircle {
		p.Circle(c.Center.X, c.Center.Y, c.Size)
		return p
	}
	p.Polygon(c.cell().Vertices())
	return p
}

// Contains reports whether pt is inside or on the clip outline.
func (c ClipShape) Contains(pt Point) bool {
	return c.cell().Contains(pt)
}

// Bounds returns the tight bounding box of the clip shape.
func (c ClipShape) Bounds() geom.Rect {
	return c.cell().Bounds()
}
