// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"
)

// Option configures a Canvas during creation.
//
// Example:
//
//	c := surface.NewCanvas(600, 600,
//	    surface.WithBackground(color.White),
//	    surface.WithLabels(false),
//	)
type Option func(*options)

// options holds optional configuration for Canvas creation.
type options struct {
	background      color.Color
	backgroundImage image.Image
	outline         color.Color
	outlineWidth    float64
	emptyFill       color.Color
	labels          bool
	labelColor      color.Color
	labelSize       float64
	interp          xdraw.Interpolator
}

// defaultOptions returns the default canvas options.
func defaultOptions() options {
	return options{
		background:   color.White,
		outline:      color.RGBA{R: 64, G: 64, B: 64, A: 255},
		outlineWidth: 2,
		emptyFill:    color.RGBA{R: 230, G: 230, B: 230, A: 255},
		labels:       true,
		labelColor:   color.RGBA{R: 96, G: 96, B: 96, A: 255},
		labelSize:    14,
		interp:       xdraw.CatmullRom,
	}
}

// WithBackground sets the color the canvas is cleared to.
func WithBackground(c color.Color) Option {
	return func(o *options) {
		o.background = c
	}
}

// WithBackgroundImage draws img, scaled to the canvas, under everything
// else. Mockups use it for the garment photo.
func WithBackgroundImage(img image.Image) Option {
	return func(o *options) {
		o.backgroundImage = img
	}
}

// WithOutline sets the cell outline color and stroke width in pixels.
// A width of 0 disables outlines.
func WithOutline(c color.Color, width float64) Option {
	return func(o *options) {
		o.outline = c
		o.outlineWidth = width
	}
}

// WithEmptyFill sets the fill color of cells that hold no photo.
// nil leaves empty cells transparent.
func WithEmptyFill(c color.Color) Option {
	return func(o *options) {
		o.emptyFill = c
	}
}

// WithLabels toggles submission numbers on empty cells.
func WithLabels(enabled bool) Option {
	return func(o *options) {
		o.labels = enabled
	}
}

// WithLabelStyle sets the label color and font size in points.
func WithLabelStyle(c color.Color, size float64) Option {
	return func(o *options) {
		o.labelColor = c
		if size > 0 {
			o.labelSize = size
		}
	}
}

// WithInterpolator sets the resampling kernel used for photos.
// Default is xdraw.CatmullRom.
func WithInterpolator(i xdraw.Interpolator) Option {
	return func(o *options) {
		if i != nil {
			o.interp = i
		}
	}
}
