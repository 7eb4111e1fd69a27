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

package render

import (
	"fmt"
	"image/color"
	"strings"
)

// SVGPath renders the symbol as a path-d string: one closed square
// subpath per dark module, in pixel coordinates. The result is pure
// geometry: consumers wrap it in <path d="..."/> and choose the fill.
// Colors set with WithColors are applied by SVG, not here.
func SVGPath(m Matrix, opts ...Option) string {
	o := newOptions(opts)
	g := newPixelGrid(m, &o)
	n := m.ModuleCount()

	var sb strings.Builder
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if !m.IsDark(row, col) {
				continue
			}
			x := g.margin + col*g.cellSize
			y := g.margin + row*g.cellSize
			s := g.cellSize
			fmt.Fprintf(&sb, "M%d,%d l%d,0 0,%d -%d,0 0,-%d z ", x, y, s, s, s, s)
		}
	}

	return sb.String()
}

// SVG renders the symbol as a complete SVG document: a backdrop
// rectangle in the background color and a single path in the foreground
// color covering the dark modules. Colors default to black on white.
func SVG(m Matrix, opts ...Option) string {
	o := newOptions(opts)
	g := newPixelGrid(m, &o)

	var sb strings.Builder
	fmt.Fprintf(&sb,
		"<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\" viewBox=\"0 0 %[1]d %[1]d\" stroke=\"none\">\n",
		g.size)
	fmt.Fprintf(&sb, "\t<rect width=\"100%%\" height=\"100%%\" fill=\"%s\"/>\n", hexColor(o.bg))
	fmt.Fprintf(&sb, "\t<path d=\"%s\" fill=\"%s\"/>\n",
		strings.TrimRight(SVGPath(m, opts...), " "), hexColor(o.fg))
	sb.WriteString("</svg>\n")

	return sb.String()
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
