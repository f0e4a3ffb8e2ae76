package collage

// Renderer is the rendering surface the Registry drives. Calls for one cell
// always arrive as RemoveImage before AddImage, so a surface never shows two
// photos in one cell.
//
// The Registry serializes calls; implementations need no locking for the
// Registry's sake.
type Renderer interface {
	// AddImage draws img into the cell with the given index using fit.
	AddImage(index int, img *Image, fit FitResult)

	// RemoveImage removes the photo drawn in the cell, if any.
	RemoveImage(index int)
}

// GridRenderer is an optional interface for surfaces that draw cell
// outlines before photos arrive. Registry.Reset calls SetCells after every
// tracked photo has been removed.
type GridRenderer interface {
	Renderer

	SetCells(cells []Cell)
}

// MultiRenderer returns a Renderer that forwards every call to each of rs in
// order. GridRenderer calls are forwarded to those that implement it.
func MultiRenderer(rs ...Renderer) GridRenderer {
	return multiRenderer(append([]Renderer(nil), rs...))
}

type multiRenderer []Renderer

func (m multiRenderer) AddImage(index int, img *Image, fit FitResult) {
	for _, r := range m {
		r.AddImage(index, img, fit)
	}
}

func (m multiRenderer) RemoveImage(index int) {
	for _, r := range m {
		r.RemoveImage(index)
	}
}

func (m multiRenderer) SetCells(cells []Cell) {
	for _, r := range m {
		if g, ok := r.(GridRenderer); ok {
			g.SetCells(cells)
		}
	}
}

// TransformRenderer returns a Renderer that maps cells and fits through t
// before forwarding them to r. Use it for secondary surfaces that show the
// collage at a different scale and offset.
func TransformRenderer(r Renderer, t Transform) GridRenderer {
	return &transformRenderer{next: r, t: t}
}

type transformRenderer struct {
	next Renderer
	t    Transform
}

func (tr *transformRenderer) AddImage(index int, img *Image, fit FitResult) {
	tr.next.AddImage(index, img, tr.t.Fit(fit))
}

func (tr *transformRenderer) RemoveImage(index int) {
	tr.next.RemoveImage(index)
}

func (tr *transformRenderer) SetCells(cells []Cell) {
	if g, ok := tr.next.(GridRenderer); ok {
		g.SetCells(tr.t.Cells(cells))
	}
}

// nopRenderer backs registries created without a surface.
type nopRenderer struct{}

func (nopRenderer) AddImage(int, *Image, FitResult) {}
func (nopRenderer) RemoveImage(int)                 {}
