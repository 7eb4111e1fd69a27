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

// Data padding bytes, appended alternately until the capacity is reached.
const (
	padByte0 = 0xEC
	padByte1 = 0x11
)

// buildCodewords runs the segment-to-codeword pipeline for one (version,
// level) pair: emit every segment with its mode indicator and character
// count field, terminate, pad, Reed-Solomon encode per block, and
// interleave. The result is the full codeword stream of length
// sum(totalCount).
func buildCodewords(version int, level Level, segments []Segment) ([]byte, error) {
	blocks := rsBlocks(version, level)
	totalDataCount := 0
	for _, block := range blocks {
		totalDataCount += block.dataCount
	}
	capacity := totalDataCount * 8

	buf := &BitBuffer{}
	for _, seg := range segments {
		width := seg.Mode().charCountBits(version)
		count := seg.CharCount()
		if count >= 1<<uint(width) {
			// The count field cannot hold the segment length at this
			// version; the data cannot fit either.
			return nil, &CodeOverflowError{Bits: buf.Len(), Capacity: capacity}
		}
		buf.Put(int(seg.Mode().bits), 4)
		buf.Put(count, width)
		if err := seg.writeBits(buf); err != nil {
			return nil, err
		}
	}

	if buf.Len() > capacity {
		return nil, &CodeOverflowError{Bits: buf.Len(), Capacity: capacity}
	}

	// Terminator, if there is room.
	if buf.Len()+4 <= capacity {
		buf.Put(0, 4)
	}

	// Zero-pad to a byte boundary.
	for buf.Len()%8 != 0 {
		buf.PutBit(false)
	}

	// Alternating padding bytes up to the capacity.
	for buf.Len() < capacity {
		buf.Put(padByte0, 8)
		if buf.Len() < capacity {
			buf.Put(padByte1, 8)
		}
	}

	return rsEncodeAndInterleave(buf, blocks), nil
}

// rsEncodeAndInterleave splits the data codewords into blocks, appends the
// Reed-Solomon remainder to each, and interleaves: the i-th data codeword
// of every block in block order, then the i-th error correction codeword of
// every block, skipping blocks that have run out.
func rsEncodeAndInterleave(buf *BitBuffer, blocks []rsBlock) []byte {
	totalCount := 0
	maxDataCount, maxECCount := 0, 0
	data := make([][]byte, len(blocks))
	ecc := make([][]byte, len(blocks))

	offset := 0
	for r, block := range blocks {
		dataCount := block.dataCount
		ecCount := block.totalCount - block.dataCount
		totalCount += block.totalCount
		maxDataCount = max(maxDataCount, dataCount)
		maxECCount = max(maxECCount, ecCount)

		data[r] = buf.Bytes()[offset : offset+dataCount]
		offset += dataCount

		generator := errorCorrectPolynomial(ecCount)
		remainder := newPolynomial(data[r], len(generator)-1).mod(generator)

		// The remainder may be shorter than ecCount once leading zeros are
		// stripped; left-pad it back out.
		ecc[r] = make([]byte, len(generator)-1)
		for i := range ecc[r] {
			index := i + len(remainder) - len(ecc[r])
			if index >= 0 {
				ecc[r][i] = remainder[index]
			}
		}
	}

	result := make([]byte, 0, totalCount)
	for i := 0; i < maxDataCount; i++ {
		for r := range blocks {
			if i < len(data[r]) {
				result = append(result, data[r][i])
			}
		}
	}
	for i := 0; i < maxECCount; i++ {
		for r := range blocks {
			if i < len(ecc[r]) {
				result = append(result, ecc[r][i])
			}
		}
	}

	return result
}
