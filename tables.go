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
 *
 * See https://www.thonky.com/qr-code-tutorial/introduction and
 * https://en.wikipedia.org/wiki/QR_code for an explanation of how QR codes
 * are formatted.
 */

package qrsymbol

// The maximum and minimum versions (QR code sizes) for a QR code symbol.
// Version 1 = 21 modules, squared, and version 40 = 177 modules, squared.
const (
	MaxVersion = 40
	MinVersion = 1
)

// rsBlock describes one Reed-Solomon block of a (version, level) layout:
// dataCount data codewords followed by totalCount-dataCount error
// correction codewords.
type rsBlock struct {
	totalCount int
	dataCount  int
}

var (
	alignmentPatternPositions [41][]int

	eccCodewordsPerBlock = [4][41]int{
		// Version: (note that index 0 is for padding, and is set to an illegal
		// value)
		//       0,  1,  2,  3,  4,  5,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40      Error correction level
		{-1, 7, 10, 15, 20, 26, 18, 20, 24, 30, 18, 20, 24, 26, 30, 22, 24, 28, 30, 28, 28, 28, 28, 30, 30, 26, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30},  // Low
		{-1, 10, 16, 26, 18, 24, 16, 18, 22, 22, 26, 30, 22, 22, 24, 24, 28, 28, 26, 26, 26, 26, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28, 28}, // Medium
		{-1, 13, 22, 18, 26, 18, 24, 18, 22, 20, 24, 28, 26, 24, 20, 30, 24, 28, 28, 26, 30, 28, 30, 30, 30, 30, 28, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // Quartile
		{-1, 17, 28, 22, 16, 22, 28, 26, 26, 24, 28, 24, 28, 22, 24, 24, 30, 28, 28, 26, 28, 30, 24, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30, 30}, // High
	}

	numDataCodewords [4][41]int

	numErrorCorrectionBlocks = [4][41]int{
		// Version: (note that index 0 is for padding, and is set to an illegal
		// value)
		//       0, 1, 2, 3, 4, 5, 6, 7, 8, 9,10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31, 32, 33, 34, 35, 36, 37, 38, 39, 40      Error correction level
		{-1, 1, 1, 1, 1, 1, 2, 2, 2, 2, 4, 4, 4, 4, 4, 6, 6, 6, 6, 7, 8, 8, 9, 9, 10, 12, 12, 12, 13, 14, 15, 16, 17, 18, 19, 19, 20, 21, 22, 24, 25},              // Low
		{-1, 1, 1, 1, 2, 2, 4, 4, 4, 5, 5, 5, 8, 9, 9, 10, 10, 11, 13, 14, 16, 17, 17, 18, 20, 21, 23, 25, 26, 28, 29, 31, 33, 35, 37, 38, 40, 43, 45, 47, 49},     // Medium
		{-1, 1, 1, 2, 2, 4, 4, 6, 6, 8, 8, 8, 10, 12, 16, 12, 17, 16, 18, 21, 20, 23, 23, 25, 27, 29, 34, 34, 35, 38, 40, 43, 45, 48, 51, 53, 56, 59, 62, 65, 68},  // Quartile
		{-1, 1, 1, 2, 4, 4, 4, 5, 6, 8, 8, 11, 11, 16, 16, 18, 16, 19, 21, 25, 25, 25, 34, 30, 32, 35, 37, 40, 42, 45, 48, 51, 54, 57, 60, 63, 66, 70, 74, 77, 81}, // High
	}

	numRawDataModules [41]int

	rsBlockLayouts [4][41][]rsBlock
)

func init() {
	// Initialize the numRawDataModules table for each version number [1, 40].
	// numRawDataModules contains the number of data bits that can be stored in
	// a QR code for each version number, after all function modules are
	// excluded. This includes remainder bits, so it might not be a multiple of
	// 8. The result is in the range [208, 29648].
	for v := 1; v <= MaxVersion; v++ {
		result := (16*v+128)*v + 64
		if v >= 2 {
			numAlign := v/7 + 2
			result -= (25*numAlign-10)*numAlign - 55 // Subtract alignment patterns.
			if v >= 7 {
				result -= 36 // Subtract version information.
			}
		}
		if result < 208 || result > 29648 {
			panic("numRawDataModules miscalculated")
		}
		numRawDataModules[v] = result
	}

	// Initialize the numDataCodewords table and the per-(version, level)
	// Reed-Solomon block layouts. A layout lists every block in order;
	// rawCodewords%numBlocks of them carry one extra data codeword, and the
	// error correction codeword count is identical for every block of a
	// level. Expanded this way the layouts reproduce the full standard block
	// table for all 160 (version, level) combinations.
	for level := Low; level <= High; level++ {
		for v := 1; v <= MaxVersion; v++ {
			numDataCodewords[level][v] = numRawDataModules[v]/8 - eccCodewordsPerBlock[level][v]*numErrorCorrectionBlocks[level][v]

			numBlocks := numErrorCorrectionBlocks[level][v]
			blockECCLen := eccCodewordsPerBlock[level][v]
			rawCodewords := numRawDataModules[v] / 8
			numShortBlocks := numBlocks - rawCodewords%numBlocks
			shortBlockLen := rawCodewords / numBlocks

			layout := make([]rsBlock, numBlocks)
			for i := range layout {
				extra := 0
				if i >= numShortBlocks {
					extra = 1
				}
				layout[i] = rsBlock{
					totalCount: shortBlockLen + extra,
					dataCount:  shortBlockLen - blockECCLen + extra,
				}
			}
			rsBlockLayouts[level][v] = layout
		}
	}

	// Initialize the alignment pattern positions for each version in [1, 40].
	for v := 1; v <= MaxVersion; v++ {
		alignmentPatternPositions[v] = getAlignmentPatternPositions(v)
	}
}

// rsBlocks returns the Reed-Solomon block layout for the (version, level)
// pair. The returned slice is shared; callers must not modify it.
func rsBlocks(version int, level Level) []rsBlock {
	if version < MinVersion || version > MaxVersion || level < Low || level > High {
		panic("qrsymbol: version or level out of table range")
	}

	return rsBlockLayouts[level][version]
}

// getAlignmentPatternPositions returns an ascending list of positions of
// alignment patterns for this version number. Each position is in the range
// [0, 177), and is used on both the row and column axes.
func getAlignmentPatternPositions(version int) []int {
	if version == 1 {
		return []int{}
	}

	numAlign := version/7 + 2
	var step int
	if version == 32 { // Special snowflake.
		step = 26
	} else { // step = ceil[(size - 13) / (numAlign * 2 - 2)] * 2.
		step = (version*4 + numAlign*2 + 1) / (numAlign*2 - 2) * 2
	}
	result := make([]int, numAlign)
	result[0] = 6
	for i, pos := len(result)-1, version*4+17-7; i >= 1; i-- {
		result[i] = pos
		pos -= step
	}

	return result
}

func abs(a int) int {
	if a >= 0 {
		return a
	}

	return -a
}
