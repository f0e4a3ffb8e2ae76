// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"github.com/jbeda/geom"

	"github.com/gogpu/collage"
)

// Mockup is a garment preview: the collage drawn, scaled down, into the
// print area of a garment photo.
//
// The Registry only knows canonical canvas coordinates. Wire a mockup next
// to the main canvas with collage.MultiRenderer(canvas, mockup.Renderer()).
type Mockup struct {
	*Canvas
	transform collage.Transform
}

// NewMockup creates a width x height preview. The garment photo is scaled
// to the full preview; the collageW x collageH canvas is fitted and
// centered inside printArea, given in preview pixels. A nil garment leaves
// the plain background.
func NewMockup(width, height int, garment *collage.Image, printArea geom.Rect, collageW, collageH int, opts ...Option) *Mockup {
	if garment != nil && garment.Pixels != nil {
		opts = append([]Option{WithBackgroundImage(garment.Pixels)}, opts...)
	}
	return &Mockup{
		Canvas:    NewCanvas(width, height, opts...),
		transform: collage.FitRect(float64(collageW), float64(collageH), printArea),
	}
}

// Transform returns the mapping from collage canvas to preview
// coordinates.
func (m *Mockup) Transform() collage.Transform {
	return m.transform
}

// Renderer returns a renderer that accepts collage canvas coordinates and
// draws into the preview.
func (m *Mockup) Renderer() collage.GridRenderer {
	return collage.TransformRenderer(m.Canvas, m.transform)
}
