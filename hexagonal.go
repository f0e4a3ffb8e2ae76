package collage

import "math"

// Hexagon grid constants.
const (
	// MaxHexRadius caps the hexagon circumradius so small grids do not
	// produce oversized cells.
	MaxHexRadius = 45.0

	// hexMargin is the horizontal canvas margin reserved before sizing.
	hexMargin = 40.0
)

// HexRadius returns the circumradius used for a hexagonal grid of the given
// column count on a canvas of the given width. It may be <= 0 for tiny
// canvases, in which case no cell is placeable.
func HexRadius(width float64, columns int) float64 {
	columns = clamp(columns, MinHexColumns, MaxHexColumns)
	return math.Min(MaxHexRadius, (width-hexMargin)/(float64(columns)*1.5))
}

// Hexagonal generates a brick-offset grid of hexagons.
//
// Even rows hold columns cells; odd rows hold one fewer and are shifted
// right by 0.75 radius. Rows advance by 0.75 of the row height
// (radius * sqrt(3)). The grid is centered on the canvas and traversed
// row-major, top to bottom and left to right. Cells that would leave the
// canvas are skipped, so the result may hold fewer cells than requested.
func Hexagonal(width, height float64, columns, rows int) []Cell {
	columns = clamp(columns, MinHexColumns, MaxHexColumns)
	rows = clamp(rows, MinHexRows, MaxHexRows)

	r := HexRadius(width, columns)
	if !(r > 0) {
		return []Cell{}
	}

	rowHeight := r * math.Sqrt(3)
	rowStep := rowHeight * 0.75
	colStep := r * 1.5
	startX := (width - float64(columns-1)*colStep) / 2
	startY := (height - float64(rows)*rowStep) / 2

	cells := make([]Cell, 0, rows*columns)
	for row := range rows {
		n := columns
		offset := 0.0
		if row%2 == 1 {
			n--
			offset = 0.75 * r
		}
		y := startY + float64(row)*rowStep
		for col := range n {
			x := startX + offset + float64(col)*colStep
			if c, ok := newCell(ShapeHexagon, Pt(x, y), r, width, height); ok {
				cells = appendCell(cells, c)
			}
		}
	}
	return cells
}
