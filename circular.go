package collage

import "math"

// Ring layout constants.
const (
	// RingRadiusFactor scales min(width, height) into the ring radius of
	// the circular layout.
	RingRadiusFactor = 0.3

	// RingCellSize is the radius of each circle in the circular layout.
	RingCellSize = 35.0

	// FocusCenterSize is the radius of the centerpiece cell.
	FocusCenterSize = 60.0

	// FocusRingRadius is the distance from the canvas center to the
	// surrounding cells of the center-focus layout.
	FocusRingRadius = 120.0

	// FocusRingCellSize is the radius of each surrounding cell.
	FocusRingCellSize = 30.0
)

// Circular places count circles evenly on one ring around the canvas
// center. Cell i sits at angle 2*pi*i/count, starting on the positive x
// axis.
func Circular(width, height float64, count int) []Cell {
	count = clamp(count, MinCircularCount, MaxCircularCount)
	center := Pt(width/2, height/2)
	radius := RingRadiusFactor * math.Min(width, height)

	cells := make([]Cell, 0, count)
	return appendRing(cells, center, radius, RingCellSize, count, width, height)
}

// CenterFocus places one enlarged centerpiece at the canvas center (index 0,
// CenterFocus set) and count smaller circles on a ring around it, indexed
// from 1 in increasing angle.
func CenterFocus(width, height float64, count int) []Cell {
	count = clamp(count, MinFocusCount, MaxFocusCount)
	center := Pt(width/2, height/2)

	cells := make([]Cell, 0, count+1)
	if c, ok := newCell(ShapeCircle, center, FocusCenterSize, width, height); ok {
		c.CenterFocus = true
		cells = appendCell(cells, c)
	}
	return appendRing(cells, center, FocusRingRadius, FocusRingCellSize, count, width, height)
}

// appendRing appends count circles of radius size on a ring, skipping those
// that leave the canvas.
func appendRing(cells []Cell, center Point, radius, size float64, count int, width, height float64) []Cell {
	for i := range count {
		a := 2 * math.Pi * float64(i) / float64(count)
		if c, ok := newCell(ShapeCircle, center.Polar(radius, a), size, width, height); ok {
			cells = appendCell(cells, c)
		}
	}
	return cells
}
