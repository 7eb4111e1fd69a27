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

import "strings"

// ASCII renders the symbol as terminal text. With a cell size of 2 or
// more, every module becomes cellSize lines of cellSize "██"/"  " pairs.
// A cell size of 1 (or 0, which is normalized to 1) selects half-block
// output: one character per module column, two module rows per text line,
// using the characters █ ▀ ▄ and space. The margin is counted in modules
// and defaults to 2.
func ASCII(m Matrix, opts ...Option) string {
	o := newOptions(opts)
	margin := o.margin
	if margin < 0 {
		margin = 2
	}

	if o.cellSize < 2 {
		return asciiHalfBlock(m, margin)
	}

	return asciiFullBlock(m, o.cellSize, margin)
}

func asciiFullBlock(m Matrix, cellSize, margin int) string {
	n := m.ModuleCount()
	total := n + margin*2

	var sb strings.Builder
	for row := 0; row < total; row++ {
		var line strings.Builder
		for col := 0; col < total; col++ {
			unit := "  "
			if moduleAt(m, row-margin, col-margin) {
				unit = "██"
			}
			line.WriteString(strings.Repeat(unit, cellSize))
		}
		text := line.String() + "\n"
		for i := 0; i < cellSize; i++ {
			sb.WriteString(text)
		}
	}

	return sb.String()
}

// asciiHalfBlock folds pairs of module rows into single text lines. Rows
// past the bottom edge read as light.
func asciiHalfBlock(m Matrix, margin int) string {
	n := m.ModuleCount()
	total := n + margin*2

	var sb strings.Builder
	for row := 0; row < total; row += 2 {
		for col := 0; col < total; col++ {
			up := moduleAt(m, row-margin, col-margin)
			down := row+1 < total && moduleAt(m, row+1-margin, col-margin)
			switch {
			case up && down:
				sb.WriteString("█")
			case up:
				sb.WriteString("▀")
			case down:
				sb.WriteString("▄")
			default:
				sb.WriteString(" ")
			}
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// moduleAt reads a module, treating the margin area outside the symbol as
// light.
func moduleAt(m Matrix, row, col int) bool {
	n := m.ModuleCount()
	if row < 0 || row >= n || col < 0 || col >= n {
		return false
	}

	return m.IsDark(row, col)
}
