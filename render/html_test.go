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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTMLTable(t *testing.T) {
	s := testSymbol(t, "TABLE")
	n := s.ModuleCount()

	html := HTMLTable(s, WithCellSize(3), WithMargin(12))

	require.True(t, strings.HasPrefix(html, "<table"))
	assert.Contains(t, html, "margin: 12px;")
	assert.Contains(t, html, "width: 3px; height: 3px;")
	assert.Equal(t, n, strings.Count(html, "<tr>"))
	assert.Equal(t, n*n, strings.Count(html, "<td "))

	dark := 0
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			if s.IsDark(row, col) {
				dark++
			}
		}
	}
	assert.Equal(t, dark, strings.Count(html, "#000000"))
	assert.Equal(t, n*n-dark, strings.Count(html, "#ffffff"))
}

func TestHTMLTableDefaultMargin(t *testing.T) {
	s := testSymbol(t, "DEFAULTS")
	html := HTMLTable(s)
	assert.Contains(t, html, fmt.Sprintf("margin: %dpx;", 2*4))
}
