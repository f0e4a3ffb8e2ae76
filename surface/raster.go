// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/gogpu/collage"
)

// circleStrokeSegments is the polygon resolution used when stroking
// circles.
const circleStrokeSegments = 72

// newRasterizer feeds path into a rasterizer covering bounds.
// Coordinates are shifted so that bounds.Min maps to the rasterizer origin.
func newRasterizer(path *collage.Path, bounds image.Rectangle) *vector.Rasterizer {
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())
	ox, oy := float32(bounds.Min.X), float32(bounds.Min.Y)
	for _, elem := range path.Elements() {
		switch e := elem.(type) {
		case collage.MoveTo:
			z.MoveTo(float32(e.Point.X)-ox, float32(e.Point.Y)-oy)
		case collage.LineTo:
			z.LineTo(float32(e.Point.X)-ox, float32(e.Point.Y)-oy)
		case collage.CubicTo:
			z.CubeTo(
				float32(e.Control1.X)-ox, float32(e.Control1.Y)-oy,
				float32(e.Control2.X)-ox, float32(e.Control2.Y)-oy,
				float32(e.Point.X)-ox, float32(e.Point.Y)-oy,
			)
		case collage.Close:
			z.ClosePath()
		}
	}
	return z
}

// clipMask rasterizes the clip shape into an alpha mask with the given
// bounds. Pixels outside the shape are fully transparent.
func clipMask(clip collage.ClipShape, bounds image.Rectangle) *image.Alpha {
	mask := image.NewAlpha(bounds)
	if bounds.Empty() {
		return mask
	}
	z := newRasterizer(clip.Path(), bounds)
	z.Draw(mask, bounds, image.Opaque, image.Point{})
	return mask
}

// fillPath fills path with c over dst.
func fillPath(dst *image.RGBA, path *collage.Path, c color.Color) {
	if c == nil || path.IsEmpty() {
		return
	}
	b := dst.Bounds()
	z := newRasterizer(path, b)
	z.DrawOp = draw.Over
	z.Draw(dst, b, image.NewUniform(c), image.Point{})
}

// strokeClip strokes the outline of clip with a band of the given width
// centered on the outline.
func strokeClip(dst *image.RGBA, clip collage.ClipShape, c color.Color, width float64) {
	if c == nil || width <= 0 {
		return
	}
	fillPath(dst, outlineBand(clip, width), c)
}

// outlineBand returns a closed band between the outline grown and shrunk
// by width/2. The inner ring runs in the opposite direction so that its
// interior winds to zero.
func outlineBand(clip collage.ClipShape, width float64) *collage.Path {
	var (
		local   []collage.Point
		apothem float64
	)
	switch clip.Shape {
	case collage.ShapeHexagon:
		local = collage.RegularPolygonVertices(6, clip.Size, collage.HexStartAngle)
		apothem = clip.Size * math.Cos(math.Pi/6)
	case collage.ShapeSquare:
		local = collage.RegularPolygonVertices(4, clip.Size*math.Sqrt2, -3*math.Pi/4)
		apothem = clip.Size
	default:
		local = collage.RegularPolygonVertices(circleStrokeSegments, clip.Size, 0)
		apothem = clip.Size
	}

	half := width / 2
	outer := scaleAbout(local, clip.Center, (apothem+half)/apothem)
	inner := scaleAbout(local, clip.Center, math.Max(apothem-half, 0)/apothem)

	p := collage.NewPath()
	p.Polygon(outer)
	for i, j := 0, len(inner)-1; i < j; i, j = i+1, j-1 {
		inner[i], inner[j] = inner[j], inner[i]
	}
	p.Polygon(inner)
	return p
}

func scaleAbout(local []collage.Point, center collage.Point, k float64) []collage.Point {
	out := make([]collage.Point, len(local))
	for i, p := range local {
		out[i] = p.Mul(k).Add(center)
	}
	return out
}

// maskBounds returns the pixel rectangle covering the clip shape,
// intersected with the canvas.
func maskBounds(clip collage.ClipShape, canvas image.Rectangle) image.Rectangle {
	b := clip.Bounds()
	r := image.Rect(
		int(math.Floor(b.Min.X)), int(math.Floor(b.Min.Y)),
		int(math.Ceil(b.Max.X)), int(math.Ceil(b.Max.Y)),
	)
	return r.Intersect(canvas)
}
