package collage

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// Ticket identifies one assignment request. It captures the grid generation
// and the issuance order at request time; Resolve applies the result only
// if the ticket is still the newest request for its cell in the current
// generation.
type Ticket struct {
	Index      int
	Generation uint64
	seq        uint64
}

// Assignment is the photo currently occupying a cell.
type Assignment struct {
	Index int
	Image *Image
	Fit   FitResult
}

// AssignResult reports the outcome of an asynchronous assignment.
// Err wraps ErrStaleAssignment when a newer request or a grid regeneration
// superseded this one; such results are safe to ignore.
type AssignResult struct {
	Ticket Ticket
	Fit    FitResult
	Err    error
}

// RegistryOption configures a Registry during creation.
type RegistryOption func(*Registry)

// WithFitter sets the fitter used to compute fit results.
func WithFitter(f Fitter) RegistryOption {
	return func(r *Registry) {
		r.fitter = f
	}
}

// Registry tracks which photo occupies which cell of the current grid.
//
// Every cell holds at most one photo. Assignments are two-phase: Request
// issues a ticket synchronously, the photo is decoded elsewhere, and Resolve
// applies it. Per cell the most recently issued request wins regardless of
// completion order, and Reset acts as a barrier: tickets from a discarded
// grid are never applied.
//
// Registry is safe for concurrent use. Renderer calls are made while the
// registry lock is held, so a surface sees them strictly in order.
type Registry struct {
	mu       sync.Mutex
	renderer Renderer
	fitter   Fitter

	cells      []Cell
	generation uint64
	seq        uint64
	latest     map[int]uint64 // cell index -> newest unresolved request
	slots      map[int]Assignment
}

// NewRegistry creates an empty registry drawing onto r. A nil renderer is
// allowed; assignments are then tracked without being drawn.
func NewRegistry(r Renderer, opts ...RegistryOption) *Registry {
	if r == nil {
		r = nopRenderer{}
	}
	reg := &Registry{
		renderer: r,
		fitter:   DefaultFitter,
		latest:   make(map[int]uint64),
		slots:    make(map[int]Assignment),
	}
	for _, opt := range opts {
		opt(reg)
	}
	return reg
}

// Reset discards the current grid and installs cells as the new one.
// Every tracked photo is removed from the surface first, pending requests
// become stale, and the generation counter advances. It returns the new
// generation.
func (r *Registry) Reset(cells []Cell) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.clearAllLocked()
	r.generation++
	r.cells = slices.Clone(cells)
	if g, ok := r.renderer.(GridRenderer); ok {
		g.SetCells(slices.Clone(cells))
	}

	Logger().Debug("collage: grid regenerated",
		"generation", r.generation,
		"cells", len(cells))
	return r.generation
}

// Generation returns the current grid generation. It is 0 before the first
// Reset.
func (r *Registry) Generation() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation
}

// Cells returns a copy of the current grid.
func (r *Registry) Cells() []Cell {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.cells)
}

// Request issues a ticket for assigning a photo to the cell with the given
// index. Any earlier unresolved request for that cell becomes stale.
func (r *Registry) Request(index int) (Ticket, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.checkIndexLocked(index); err != nil {
		return Ticket{}, err
	}
	r.seq++
	r.latest[index] = r.seq
	return Ticket{Index: index, Generation: r.generation, seq: r.seq}, nil
}

// Resolve completes the request identified by t with a decoded photo.
//
// If t has been superseded, by a newer request for the same cell, a Clear,
// or a Reset, the photo is dropped and the error wraps ErrStaleAssignment.
// A nil photo, one without pixels, or one with a zero dimension returns an error wrapping
// ErrImageLoad and leaves the cell untouched. Otherwise the previous photo,
// if any, is removed from the surface before the new one is added.
func (r *Registry) Resolve(t Ticket, img *Image) (FitResult, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.currentLocked(t) {
		Logger().Debug("collage: dropped stale assignment",
			"cell", t.Index,
			"image", imageID(img),
			"generation", t.Generation)
		return FitResult{}, fmt.Errorf("%w: cell %d", ErrStaleAssignment, t.Index)
	}
	// The request is complete either way; later completions of older
	// requests stay stale.
	delete(r.latest, t.Index)

	if img == nil || img.Pixels == nil {
		return FitResult{}, r.loadFailedLocked(t, fmt.Errorf("%w: no pixels", ErrImageLoad))
	}
	fit, err := r.fitter.Fit(r.cells[t.Index], img.Width, img.Height)
	if err != nil {
		return FitResult{}, r.loadFailedLocked(t, err)
	}

	if prev, ok := r.slots[t.Index]; ok {
		Logger().Debug("collage: replacing photo",
			"cell", t.Index,
			"old", prev.Image.ID,
			"image", img.ID)
		r.renderer.RemoveImage(t.Index)
	}
	r.renderer.AddImage(t.Index, img, fit)
	Logger().Debug("collage: photo assigned",
		"cell", t.Index,
		"image", img.ID,
		"scale", fit.Scale)
	r.slots[t.Index] = Assignment{Index: t.Index, Image: img, Fit: fit}
	return fit, nil
}

// Fail completes the request identified by t with a load error. The cell is
// left untouched. The returned error wraps ErrStaleAssignment if t was
// already superseded; otherwise it is err, wrapped with ErrImageLoad unless
// it is a context error or already wraps it.
func (r *Registry) Fail(t Ticket, err error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.currentLocked(t) {
		return fmt.Errorf("%w: cell %d", ErrStaleAssignment, t.Index)
	}
	delete(r.latest, t.Index)

	if !errors.Is(err, ErrImageLoad) &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded) {
		err = fmt.Errorf("%w: %w", ErrImageLoad, err)
	}
	return r.loadFailedLocked(t, err)
}

// Assign synchronously assigns an already decoded photo to a cell. It is
// Request followed by Resolve.
func (r *Registry) Assign(index int, img *Image) (FitResult, error) {
	t, err := r.Request(index)
	if err != nil {
		return FitResult{}, err
	}
	return r.Resolve(t, img)
}

// AssignAsync issues a request for the cell synchronously, then loads the
// photo on a new goroutine and resolves the request when loading finishes.
// The returned channel receives exactly one result and is then closed. A
// nil loader yields a result wrapping ErrInvalidParameter.
func (r *Registry) AssignAsync(ctx context.Context, index int, l Loader) <-chan AssignResult {
	ch := make(chan AssignResult, 1)

	if l == nil {
		ch <- AssignResult{Err: &ParameterError{Name: "loader", Value: nil}}
		close(ch)
		return ch
	}
	t, err := r.Request(index)
	if err != nil {
		ch <- AssignResult{Ticket: t, Err: err}
		close(ch)
		return ch
	}

	go func() {
		defer close(ch)

		img, err := l.Load(ctx)
		if err != nil {
			ch <- AssignResult{Ticket: t, Err: r.Fail(t, err)}
			return
		}
		fit, err := r.Resolve(t, img)
		ch <- AssignResult{Ticket: t, Fit: fit, Err: err}
	}()
	return ch
}

// Clear removes the photo in the cell, if any, and makes any pending
// request for the cell stale. Clearing an empty or unknown cell is a no-op.
func (r *Registry) Clear(index int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.latest, index)
	if _, ok := r.slots[index]; ok {
		r.renderer.RemoveImage(index)
		delete(r.slots, index)
	}
}

// ClearAll removes every tracked photo from the surface and makes every
// pending request stale. The grid itself is kept.
func (r *Registry) ClearAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearAllLocked()
}

// Lookup returns the photo occupying the cell, if any.
func (r *Registry) Lookup(index int) (Assignment, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a, ok := r.slots[index]
	return a, ok
}

// Assignments returns every occupied cell ordered by index.
func (r *Registry) Assignments() []Assignment {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Assignment, 0, len(r.slots))
	for _, a := range r.slots {
		out = append(out, a)
	}
	slices.SortFunc(out, func(a, b Assignment) int { return a.Index - b.Index })
	return out
}

// Len returns the number of occupied cells.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}

// Pending reports whether the cell has an unresolved request.
func (r *Registry) Pending(index int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.latest[index]
	return ok
}

func (r *Registry) checkIndexLocked(index int) error {
	if len(r.cells) == 0 {
		return ErrEmptyGrid
	}
	if index < 0 || index >= len(r.cells) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrCellOutOfRange, index, len(r.cells))
	}
	return nil
}

func (r *Registry) currentLocked(t Ticket) bool {
	return t.seq != 0 &&
		t.Generation == r.generation &&
		r.latest[t.Index] == t.seq
}

func (r *Registry) loadFailedLocked(t Ticket, err error) error {
	Logger().Warn("collage: photo failed to load",
		"cell", t.Index,
		"err", err)
	return err
}

func (r *Registry) clearAllLocked() {
	indices := make([]int, 0, len(r.slots))
	for i := range r.slots {
		indices = append(indices, i)
	}
	slices.Sort(indices)
	for _, i := range indices {
		r.renderer.RemoveImage(i)
	}
	clear(r.slots)
	clear(r.latest)
}

func imageID(img *Image) any {
	if img == nil {
		return nil
	}
	return img.ID
}
