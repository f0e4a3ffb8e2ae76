// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/gogpu/collage"
)

// newLabelFace loads Go Regular at the given size. If the embedded font
// cannot be parsed it falls back to the fixed 7x13 bitmap face.
func newLabelFace(size float64) font.Face {
	f, err := opentype.Parse(goregular.TTF)
	if err == nil {
		face, ferr := opentype.NewFace(f, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if ferr == nil {
			return face
		}
		err = ferr
	}
	collage.Logger().Warn("surface: label font unavailable, using basic face", "err", err)
	return basicfont.Face7x13
}

// drawLabel draws text centered on at.
func drawLabel(dst *image.RGBA, face font.Face, c color.Color, at collage.Point, text string) {
	if c == nil {
		return
	}
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
	}
	adv := d.MeasureString(text)
	m := face.Metrics()
	x := fixed.Int26_6(at.X*64) - adv/2
	y := fixed.Int26_6(at.Y*64) + (m.Ascent-m.Descent)/2
	d.Dot = fixed.Point26_6{X: x, Y: y}
	d.DrawString(text)
}
