// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"bufio"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"

	"github.com/gogpu/collage"
)

// Canvas is a software rendering surface for a collage grid.
//
// Canvas keeps a retained scene: the current cells and one photo layer per
// cell. Render rasterizes the scene into a new RGBA image, so the canvas can
// be rendered any number of times while assignments keep arriving.
//
// Canvas is safe for concurrent use.
//
// Example usage:
//
//	c := surface.NewCanvas(600, 600)
//	reg := collage.NewRegistry(c)
//	reg.Reset(cells)
//	...
//	err := c.SavePNG("collage.png")
type Canvas struct {
	mu     sync.Mutex
	width  int
	height int
	opts   options
	face   font.Face
	cells  []collage.Cell
	layers map[int]Layer
}

// Layer is one photo drawn into one cell.
type Layer struct {
	Image *collage.Image
	Fit   collage.FitResult
}

var _ collage.GridRenderer = (*Canvas)(nil)

// NewCanvas creates a canvas with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewCanvas(width, height int, opts ...Option) *Canvas {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	c := &Canvas{
		width:  width,
		height: height,
		opts:   o,
		layers: make(map[int]Layer),
	}
	if o.labels {
		c.face = newLabelFace(o.labelSize)
	}
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// SetCells replaces the grid. Photo layers are kept only for indices that
// still exist; the Registry removes them before calling SetCells anyway.
func (c *Canvas) SetCells(cells []collage.Cell) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.cells = append(c.cells[:0:0], cells...)
	for idx := range c.layers {
		if idx < 0 || idx >= len(c.cells) {
			delete(c.layers, idx)
		}
	}
}

// Cells returns a copy of the current grid.
func (c *Canvas) Cells() []collage.Cell {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]collage.Cell(nil), c.cells...)
}

// AddImage places img into the cell with the given index, replacing any
// photo already there.
func (c *Canvas) AddImage(index int, img *collage.Image, fit collage.FitResult) {
	if img == nil || img.Pixels == nil {
		collage.Logger().Warn("surface: ignoring photo without pixels", "cell", index)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if prev, ok := c.layers[index]; ok {
		collage.Logger().Debug("surface: replacing layer without removal",
			"cell", index,
			"old", prev.Image.ID,
			"image", img.ID)
	}
	c.layers[index] = Layer{Image: img, Fit: fit}
}

// RemoveImage removes the photo in the cell with the given index.
// Removing an empty cell is a no-op.
func (c *Canvas) RemoveImage(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.layers, index)
}

// Layer returns the photo layer drawn in the cell, if any.
func (c *Canvas) Layer(index int) (Layer, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.layers[index]
	return l, ok
}

// Layers returns the indices of cells holding a photo, in ascending order.
func (c *Canvas) Layers() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return sortedKeys(c.layers)
}

// Render rasterizes the canvas. Drawing order is background, empty cells
// with their labels, photos clipped to their cells, then outlines.
func (c *Canvas) Render() *image.RGBA {
	c.mu.Lock()
	defer c.mu.Unlock()

	dst := image.NewRGBA(image.Rect(0, 0, c.width, c.height))
	c.drawBackground(dst)

	for _, cell := range c.cells {
		if _, ok := c.layers[cell.Index]; ok {
			continue
		}
		fillPath(dst, cell.Clip().Path(), c.opts.emptyFill)
		if c.face != nil {
			drawLabel(dst, c.face, c.opts.labelColor, cell.Center, strconv.Itoa(cell.Index+1))
		}
	}

	for _, idx := range sortedKeys(c.layers) {
		c.drawLayer(dst, c.layers[idx])
	}

	for _, cell := range c.cells {
		strokeClip(dst, cell.Clip(), c.opts.outline, c.opts.outlineWidth)
	}
	return dst
}

func (c *Canvas) drawBackground(dst *image.RGBA) {
	if c.opts.background != nil {
		draw.Draw(dst, dst.Bounds(), image.NewUniform(c.opts.background), image.Point{}, draw.Src)
	}
	if bg := c.opts.backgroundImage; bg != nil {
		xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), bg, bg.Bounds(), xdraw.Over, nil)
	}
}

// drawLayer draws one photo, scaled by its fit and masked to its clip.
func (c *Canvas) drawLayer(dst *image.RGBA, l Layer) {
	region := maskBounds(l.Fit.Clip, dst.Bounds())
	if region.Empty() {
		return
	}
	src := l.Image.Pixels
	sb := src.Bounds()
	m := l.Fit.Matrix().Multiply(collage.Translate(-float64(sb.Min.X), -float64(sb.Min.Y)))
	mask := clipMask(l.Fit.Clip, region)
	c.opts.interp.Transform(dst, m.Aff3(), src, sb, xdraw.Over, &xdraw.Options{
		DstMask: mask,
	})
}

// EncodePNG renders the canvas and writes it to w as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, c.Render()); err != nil {
		return fmt.Errorf("surface: encode png: %w", err)
	}
	return nil
}

// SavePNG renders the canvas and writes it to the named file.
func (c *Canvas) SavePNG(path string) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("surface: create %s: %w", path, err)
	}
	bw := bufio.NewWriter(f)
	if err := c.EncodePNG(bw); err != nil {
		_ = f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return fmt.Errorf("surface: write %s: %w", path, err)
	}
	return f.Close()
}

func sortedKeys(m map[int]Layer) []int {
	return slices.Sorted(maps.Keys(m))
}
