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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVGPath(t *testing.T) {
	s := testSymbol(t, "PATH")
	n := s.ModuleCount()

	path := SVGPath(s, WithCellSize(1), WithMargin(0))

	// Module (0,0) is the dark finder corner.
	assert.True(t, strings.HasPrefix(path, "M0,0 l1,0 0,1 -1,0 0,-1 z "))

	dark := 0
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if s.IsDark(row, col) {
				dark++
			}
		}
	}
	assert.Equal(t, dark, strings.Count(path, "M"))
	assert.Equal(t, dark, strings.Count(path, "z"))
}

func TestSVGPathGeometry(t *testing.T) {
	s := testSymbol(t, "GEOMETRY")
	const cellSize, margin = 4, 8

	path := SVGPath(s, WithCellSize(cellSize), WithMargin(margin))

	// The first subpath is the top-left finder corner shifted by the
	// margin, with cellSize-length edges.
	want := fmt.Sprintf("M%d,%d l%d,0 0,%d -%d,0 0,-%d z ", margin, margin, cellSize, cellSize, cellSize, cellSize)
	assert.True(t, strings.HasPrefix(path, want))
}

func TestSVGColors(t *testing.T) {
	s := testSymbol(t, "COLORS")

	svg := SVG(s, WithColors(
		color.RGBA{R: 0xFF, A: 0xFF},
		color.RGBA{G: 0xFF, A: 0xFF}))

	assert.Contains(t, svg, "<rect width=\"100%\" height=\"100%\" fill=\"#00FF00\"/>")
	assert.Contains(t, svg, "fill=\"#FF0000\"")
	assert.NotContains(t, svg, "#000000")
	assert.NotContains(t, svg, "#FFFFFF")
}

func TestSVGDocument(t *testing.T) {
	s := testSymbol(t, "DOCUMENT")
	n := s.ModuleCount()

	svg := SVG(s, WithCellSize(1), WithMargin(4))
	size := n + 8

	require.True(t, strings.HasPrefix(svg, "<svg xmlns=\"http://www.w3.org/2000/svg\""))
	assert.Contains(t, svg, fmt.Sprintf("viewBox=\"0 0 %d %d\"", size, size))
	assert.Contains(t, svg, "<rect width=\"100%\" height=\"100%\" fill=\"#FFFFFF\"/>")
	assert.Contains(t, svg, "<path d=\"M4,4 l1,0")
	assert.Contains(t, svg, "fill=\"#000000\"")
	assert.True(t, strings.HasSuffix(svg, "</svg>\n"))
}
