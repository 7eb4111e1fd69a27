/*
 * Copyright © 2026, QRGen Lab.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package render exposes a built QR symbol as text, markup, and image
// encodings. Renderers are pure read-side views: they consume only the
// module count and per-module darkness of a Matrix.
package render

import "image/color"

// Matrix is the read-only view renderers consume. *qrsymbol.Symbol
// implements it after Make.
type Matrix interface {
	// ModuleCount reports the symbol width and height in modules.
	ModuleCount() int

	// IsDark reports whether the module at (row, col) is dark. Both
	// coordinates are in [0, ModuleCount).
	IsDark(row, col int) bool
}

type options struct {
	cellSize int
	margin   int // -1 selects the renderer's default.
	fg, bg   color.RGBA
	colors   bool
}

// Option configures a renderer.
type Option func(*options)

// WithCellSize sets the edge length of one module: pixels for image and
// SVG renderers, characters/lines for ASCII. An ASCII cell size below 2
// selects half-block output.
func WithCellSize(size int) Option {
	return func(o *options) {
		o.cellSize = size
	}
}

// WithMargin sets the quiet zone width: pixels for image and SVG
// renderers (default 4 cell sizes), modules for ASCII (default 2).
func WithMargin(margin int) Option {
	return func(o *options) {
		o.margin = margin
	}
}

// WithColors sets the foreground (dark module) and background colors.
// The PNG renderer switches from grayscale to RGB when colors are set,
// and the SVG document renderer uses them for its fills. SVGPath emits
// bare geometry and the text renderers are monochrome; both ignore them.
func WithColors(fg, bg color.RGBA) Option {
	return func(o *options) {
		o.fg = fg
		o.bg = bg
		o.colors = true
	}
}

func newOptions(opts []Option) options {
	o := options{
		cellSize: 2,
		margin:   -1,
		fg:       color.RGBA{A: 0xFF},
		bg:       color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.cellSize < 1 {
		o.cellSize = 1
	}

	return o
}

// pixelMargin resolves the quiet zone for pixel-based renderers.
func (o *options) pixelMargin() int {
	if o.margin < 0 {
		return o.cellSize * 4
	}

	return o.margin
}

// pixelGrid precomputes the pixel geometry shared by the GIF, PNG, and
// SVG renderers.
type pixelGrid struct {
	m        Matrix
	cellSize int
	margin   int
	size     int
}

func newPixelGrid(m Matrix, o *options) pixelGrid {
	margin := o.pixelMargin()

	return pixelGrid{
		m:        m,
		cellSize: o.cellSize,
		margin:   margin,
		size:     m.ModuleCount()*o.cellSize + margin*2,
	}
}

// dark reports whether the pixel at (x, y) falls on a dark module.
func (g *pixelGrid) dark(x, y int) bool {
	col := (x - g.margin) / g.cellSize
	row := (y - g.margin) / g.cellSize
	if x < g.margin || y < g.margin || row >= g.m.ModuleCount() || col >= g.m.ModuleCount() {
		return false
	}

	return g.m.IsDark(row, col)
}
