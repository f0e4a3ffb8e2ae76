package collage

import "math"

// squareGutter is the fraction of the grid pitch a square occupies; the
// rest is a visible gutter.
const squareGutter = 0.9

// Square generates a centered grid of squares traversed row-major.
//
// The pitch is min(width, height) / (max(rows, columns) + 1) and each square
// is drawn at 0.9 of the pitch, so Cell.Size (the half-side) is 0.45 of it.
func Square(width, height float64, rows, columns int) []Cell {
	rows = clamp(rows, MinSquareRows, MaxSquareRows)
	columns = clamp(columns, MinSquareColumns, MaxSquareColumns)

	pitch := math.Min(width, height) / float64(max(rows, columns)+1)
	size := pitch * squareGutter / 2
	if !(size > 0) {
		return []Cell{}
	}

	startX := (width - float64(columns-1)*pitch) / 2
	startY := (height - float64(rows-1)*pitch) / 2

	cells := make([]Cell, 0, rows*columns)
	for row := range rows {
		y := startY + float64(row)*pitch
		for col := range columns {
			x := startX + float64(col)*pitch
			if c, ok := newCell(ShapeSquare, Pt(x, y), size, width, height); ok {
				cells = appendCell(cells, c)
			}
		}
	}
	return cells
}
