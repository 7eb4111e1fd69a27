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
	"bytes"
	"encoding/base64"
	"io"
)

// GIF writes the symbol as a GIF87a image over a two-colour palette:
// index 0 black (dark modules), index 1 white.
func GIF(w io.Writer, m Matrix, opts ...Option) error {
	o := newOptions(opts)
	g := newPixelGrid(m, &o)

	var out bytes.Buffer
	out.WriteString("GIF87a")

	// Logical screen descriptor: global colour table present, 2 entries.
	writeGIFWord(&out, g.size)
	writeGIFWord(&out, g.size)
	out.WriteByte(0x80)
	out.WriteByte(0)
	out.WriteByte(0)

	// Global colour table: black, white.
	out.Write([]byte{0x00, 0x00, 0x00, 0xFF, 0xFF, 0xFF})

	// Image descriptor, no local colour table.
	out.WriteByte(',')
	writeGIFWord(&out, 0)
	writeGIFWord(&out, 0)
	writeGIFWord(&out, g.size)
	writeGIFWord(&out, g.size)
	out.WriteByte(0)

	pixels := make([]byte, g.size*g.size)
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			if !g.dark(x, y) {
				pixels[y*g.size+x] = 1
			}
		}
	}

	out.WriteByte(lzwMinCodeSize)
	raster := lzwEncode(pixels)
	for offset := 0; offset < len(raster); offset += 255 {
		n := min(len(raster)-offset, 255)
		out.WriteByte(byte(n))
		out.Write(raster[offset : offset+n])
	}
	out.WriteByte(0x00)
	out.WriteByte(';')

	_, err := w.Write(out.Bytes())

	return err
}

// GIFDataURL renders the symbol as a base64 GIF data URL.
func GIFDataURL(m Matrix, opts ...Option) string {
	var buf bytes.Buffer
	if err := GIF(&buf, m, opts...); err != nil {
		panic(err) // bytes.Buffer writes cannot fail.
	}

	return "data:image/gif;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

func writeGIFWord(out *bytes.Buffer, v int) {
	out.WriteByte(byte(v))
	out.WriteByte(byte(v >> 8))
}

// lzwMinCodeSize is the LZW minimum code size byte declared in the image
// data. It fixes the code space every decoder derives from it: literal
// codes 0..3, clear code 4, end code 5, new dictionary codes from 6.
// Decoders reject a minimum code size below 2.
const lzwMinCodeSize = 2

// lzwEncode compresses 1-bit pixel indices as a GIF raster LZW stream.
// Codes start lzwMinCodeSize+1 bits wide. The next-code counter advances
// once per emitted code, the same bookkeeping decoders run: the width
// grows just after the last code at the old width, and a clear code
// resets the dictionary when the counter reaches the 12-bit ceiling.
func lzwEncode(pixels []byte) []byte {
	const (
		clearCode = 1 << lzwMinCodeSize
		endCode   = clearCode + 1
		maxCode   = 1<<12 - 1
	)

	out := &lzwBitWriter{}
	width := lzwMinCodeSize + 1
	hi := endCode
	overflow := 1 << uint(width)
	table := make(map[string]int)

	// incHi advances the next-code counter after an emitted code. It
	// reports true when the dictionary was cleared, in which case no
	// entry may be inserted for the code just written.
	incHi := func() bool {
		hi++
		if hi == overflow {
			width++
			overflow <<= 1
		}
		if hi == maxCode {
			out.write(clearCode, width)
			width = lzwMinCodeSize + 1
			hi = endCode
			overflow = 1 << uint(width)
			table = make(map[string]int)
			return true
		}

		return false
	}

	out.write(clearCode, width)

	if len(pixels) > 0 {
		prefix := string(pixels[0:1])
		for _, p := range pixels[1:] {
			extended := prefix + string([]byte{p})
			if _, ok := table[extended]; ok {
				prefix = extended
				continue
			}
			out.write(lzwCode(table, prefix), width)
			if !incHi() {
				table[extended] = hi
			}
			prefix = string([]byte{p})
		}
		out.write(lzwCode(table, prefix), width)
		incHi()
	}

	out.write(endCode, width)

	return out.flush()
}

// lzwCode resolves a pixel string to its code: single pixels are literal
// codes, longer strings come from the dictionary.
func lzwCode(table map[string]int, s string) int {
	if len(s) == 1 {
		return int(s[0])
	}

	return table[s]
}

// lzwBitWriter packs variable-width codes least significant bit first, the
// order the GIF grammar expects.
type lzwBitWriter struct {
	data []byte
	cur  int
	bits int
}

func (w *lzwBitWriter) write(code, width int) {
	for i := 0; i < width; i++ {
		w.cur |= code >> uint(i) & 1 << uint(w.bits)
		w.bits++
		if w.bits == 8 {
			w.data = append(w.data, byte(w.cur))
			w.cur = 0
			w.bits = 0
		}
	}
}

func (w *lzwBitWriter) flush() []byte {
	if w.bits > 0 {
		w.data = append(w.data, byte(w.cur))
		w.cur = 0
		w.bits = 0
	}

	return w.data
}
