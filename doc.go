// Package collage provides the grid tessellation and image-fit engine used to
// build group photo collages.
//
// # Overview
//
// A collage is a fixed canvas split into cells. Each participant contributes
// one photo, and each photo is fitted into exactly one cell: scaled so that
// it covers the cell's shape, centered on the cell, and clipped to the cell's
// outline. The engine computes geometry only; drawing is delegated to a
// rendering surface implementing [Renderer] (see the surface sub-package).
//
// # Quick Start
//
//	cells, err := collage.Generate(600, 600, collage.Layout{
//	    Kind:    collage.LayoutHexagonal,
//	    Columns: 7,
//	    Rows:    8,
//	})
//	if err != nil {
//	    return err
//	}
//
//	reg := collage.NewRegistry(canvas) // canvas implements collage.Renderer
//	reg.Reset(cells)
//
//	// Decode off the caller's goroutine, apply last-writer-wins per cell.
//	res := <-reg.AssignAsync(ctx, 0, collage.FileLoader("alice.jpg"))
//	if res.Err != nil && !errors.Is(res.Err, collage.ErrStaleAssignment) {
//	    return res.Err
//	}
//
// # Layouts
//
// Four generators produce ordered cell lists: [Hexagonal], [Square],
// [Circular] and [CenterFocus]. All of them are deterministic, clamp their
// parameters to documented ranges, and drop cells that would leave the
// canvas rather than clipping them. The order of the returned cells is the
// submission order: the n-th photo lands in the cell with Index n.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians, 0 is right
//
// # Secondary Surfaces
//
// A garment mockup shows the same collage smaller and offset. Rather than
// regenerating cells, derive a [Transform] with [FitRect] and wrap the
// mockup surface in [TransformRenderer].
package collage
