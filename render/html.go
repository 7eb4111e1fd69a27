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
	"strings"
)

// HTMLTable renders the symbol as a table with one cell per module,
// styled inline so the markup is self-contained. The cell size is in
// pixels; the margin (also pixels) becomes the table's CSS margin.
func HTMLTable(m Matrix, opts ...Option) string {
	o := newOptions(opts)
	n := m.ModuleCount()

	var sb strings.Builder
	fmt.Fprintf(&sb,
		"<table style=\"border-width: 0px; border-style: none; border-collapse: collapse; padding: 0px; margin: %dpx;\">\n",
		o.pixelMargin())
	sb.WriteString("<tbody>\n")
	for row := 0; row < n; row++ {
		sb.WriteString("<tr>")
		for col := 0; col < n; col++ {
			color := "#ffffff"
			if m.IsDark(row, col) {
				color = "#000000"
			}
			fmt.Fprintf(&sb,
				"<td style=\"border-width: 0px; border-style: none; border-collapse: collapse; padding: 0px; margin: 0px; width: %[1]dpx; height: %[1]dpx; background-color: %[2]s;\"></td>",
				o.cellSize, color)
		}
		sb.WriteString("</tr>\n")
	}
	sb.WriteString("</tbody>\n</table>\n")

	return sb.String()
}
