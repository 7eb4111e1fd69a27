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

package qrsymbol

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumDataCodewords(t *testing.T) {
	cases := [][3]int{
		{3, 1, 44},
		{3, 2, 34},
		{3, 3, 26},
		{6, 0, 136},
		{7, 0, 156},
		{9, 0, 232},
		{9, 1, 182},
		{12, 3, 158},
		{15, 0, 523},
		{16, 2, 325},
		{19, 3, 341},
		{21, 0, 932},
		{22, 0, 1006},
		{22, 1, 782},
		{22, 3, 442},
		{24, 0, 1174},
		{24, 3, 514},
		{28, 0, 1531},
		{30, 3, 745},
		{32, 3, 845},
		{33, 0, 2071},
		{33, 3, 901},
		{35, 0, 2306},
		{35, 1, 1812},
		{35, 2, 1286},
		{36, 3, 1054},
		{37, 3, 1096},
		{39, 1, 2216},
		{40, 1, 2334},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestNumDataCodewords %v", tc), func(t *testing.T) {
			assert.Equal(t, numDataCodewords[tc[1]][tc[0]], tc[2])
		})
	}
}

func TestNumRawDataModules(t *testing.T) {
	cases := [][2]int{
		{1, 208},
		{2, 359},
		{3, 567},
		{6, 1383},
		{7, 1568},
		{12, 3728},
		{15, 5243},
		{18, 7211},
		{22, 10068},
		{26, 13652},
		{32, 19723},
		{37, 25568},
		{40, 29648},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("TestNumRawDataModules %v", tc), func(t *testing.T) {
			assert.Equal(t, numRawDataModules[tc[0]], tc[1])
		})
	}
}

func TestRSBlockLayouts(t *testing.T) {
	// Spot checks against the standard block table.
	assert.Equal(t, []rsBlock{{26, 19}}, rsBlocks(1, Low))
	assert.Equal(t, []rsBlock{{26, 9}}, rsBlocks(1, High))
	assert.Equal(t, []rsBlock{{33, 11}, {33, 11}, {34, 12}, {34, 12}}, rsBlocks(5, High))
	assert.Equal(t, []rsBlock{{98, 78}, {98, 78}}, rsBlocks(7, Low))

	// Version 40-L: 19 blocks of 148 total/118 data and 6 of 149/119.
	layout := rsBlocks(40, Low)
	assert.Equal(t, 25, len(layout))
	for i, block := range layout {
		if i < 19 {
			assert.Equal(t, rsBlock{148, 118}, block)
		} else {
			assert.Equal(t, rsBlock{149, 119}, block)
		}
	}
}

func TestRSBlockLayoutInvariants(t *testing.T) {
	for level := Low; level <= High; level++ {
		for v := 1; v <= MaxVersion; v++ {
			t.Run(fmt.Sprintf("version %d level %s", v, level), func(t *testing.T) {
				layout := rsBlocks(v, level)
				assert.Equal(t, numErrorCorrectionBlocks[level][v], len(layout))

				totalSum, dataSum := 0, 0
				for _, block := range layout {
					totalSum += block.totalCount
					dataSum += block.dataCount
					// EC codeword count is identical for every block of a
					// level.
					assert.Equal(t, eccCodewordsPerBlock[level][v], block.totalCount-block.dataCount)
				}
				assert.Equal(t, numRawDataModules[v]/8, totalSum)
				assert.Equal(t, numDataCodewords[level][v], dataSum)
			})
		}
	}
}

func TestAlignmentPatternPositions(t *testing.T) {
	cases := []struct {
		version int
		want    []int
	}{
		{1, []int{}},
		{2, []int{6, 18}},
		{3, []int{6, 22}},
		{7, []int{6, 22, 38}},
		{14, []int{6, 26, 46, 66}},
		{21, []int{6, 28, 50, 72, 94}},
		{32, []int{6, 34, 60, 86, 112, 138}},
		{40, []int{6, 30, 58, 86, 114, 142, 170}},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("version %d", tc.version), func(t *testing.T) {
			assert.Equal(t, tc.want, alignmentPatternPositions[tc.version])
		})
	}
}

func TestCharCountBits(t *testing.T) {
	cases := []struct {
		mode    Mode
		version int
		want    int
	}{
		{Numeric, 1, 10},
		{Numeric, 9, 10},
		{Numeric, 10, 12},
		{Numeric, 26, 12},
		{Numeric, 27, 14},
		{Numeric, 40, 14},
		{Alphanumeric, 1, 9},
		{Alphanumeric, 10, 11},
		{Alphanumeric, 27, 13},
		{Byte, 1, 8},
		{Byte, 10, 16},
		{Byte, 40, 16},
		{Kanji, 9, 8},
		{Kanji, 26, 10},
		{Kanji, 27, 12},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s version %d", tc.mode, tc.version), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.mode.charCountBits(tc.version))
		})
	}
}
