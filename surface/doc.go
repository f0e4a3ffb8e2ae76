// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides software rendering surfaces for collages.
//
// A Canvas implements collage.GridRenderer: the registry hands it cells as
// soon as a grid is generated, so outlines (and submission numbers) show
// before any photo arrives, and then adds and removes photos as
// assignments resolve. Photos are resampled with golang.org/x/image/draw
// and masked by the clip shape of their fit, rasterized with
// golang.org/x/image/vector.
//
// # Usage
//
//	canvas := surface.NewCanvas(600, 600,
//	    surface.WithBackground(color.White),
//	    surface.WithOutline(color.Gray{Y: 80}, 2),
//	)
//	reg := collage.NewRegistry(canvas)
//	reg.Reset(cells)
//	// ... assignments ...
//	err := canvas.SavePNG("collage.png")
//
// # Mockups
//
// A Mockup is a Canvas with a garment photo as background and a
// collage.Transform that maps the collage into the garment's print area.
// Register it next to the main canvas with collage.MultiRenderer:
//
//	mock := surface.NewMockup(400, 480, shirt, printArea, 600, 600)
//	reg := collage.NewRegistry(collage.MultiRenderer(canvas, mock.Renderer()))
//
// Surfaces are safe for concurrent use: rendering may run on a different
// goroutine than the registry.
package surface
