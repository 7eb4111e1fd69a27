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
	"compress/flate"
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"hash/adler32"
	"hash/crc32"
	"io"
)

var pngSignature = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

// PNG writes the symbol as a PNG image: grayscale by default, RGB when
// colors were set with WithColors. Scanlines use filter type 0 and the
// IDAT payload is a zlib stream (0x78 0x9C header, raw deflate, Adler-32
// of the uncompressed scanlines).
func PNG(w io.Writer, m Matrix, opts ...Option) error {
	o := newOptions(opts)
	g := newPixelGrid(m, &o)

	channels := 1
	if o.colors {
		channels = 3
	}

	scanlines := make([]byte, 0, g.size*(1+g.size*channels))
	for y := 0; y < g.size; y++ {
		scanlines = append(scanlines, 0) // Filter type 0.
		for x := 0; x < g.size; x++ {
			dark := g.dark(x, y)
			if !o.colors {
				if dark {
					scanlines = append(scanlines, 0x00)
				} else {
					scanlines = append(scanlines, 0xFF)
				}
				continue
			}
			c := o.bg
			if dark {
				c = o.fg
			}
			scanlines = append(scanlines, c.R, c.G, c.B)
		}
	}

	var deflated bytes.Buffer
	fw, err := flate.NewWriter(&deflated, flate.BestCompression)
	if err != nil {
		return fmt.Errorf("render: creating deflate writer: %w", err)
	}
	if _, err := fw.Write(scanlines); err != nil {
		return fmt.Errorf("render: deflating scanlines: %w", err)
	}
	if err := fw.Close(); err != nil {
		return fmt.Errorf("render: deflating scanlines: %w", err)
	}

	idat := make([]byte, 0, deflated.Len()+6)
	idat = append(idat, 0x78, 0x9C)
	idat = append(idat, deflated.Bytes()...)
	idat = binary.BigEndian.AppendUint32(idat, adler32.Checksum(scanlines))

	var colorType byte
	if o.colors {
		colorType = 2
	}
	ihdr := make([]byte, 0, 13)
	ihdr = binary.BigEndian.AppendUint32(ihdr, uint32(g.size))
	ihdr = binary.BigEndian.AppendUint32(ihdr, uint32(g.size))
	ihdr = append(ihdr, 8, colorType, 0, 0, 0)

	if _, err := w.Write(pngSignature); err != nil {
		return err
	}
	if err := writePNGChunk(w, "IHDR", ihdr); err != nil {
		return err
	}
	if err := writePNGChunk(w, "IDAT", idat); err != nil {
		return err
	}

	return writePNGChunk(w, "IEND", nil)
}

// PNGDataURL renders the symbol as a base64 PNG data URL.
func PNGDataURL(m Matrix, opts ...Option) string {
	var buf bytes.Buffer
	if err := PNG(&buf, m, opts...); err != nil {
		panic(err) // bytes.Buffer writes cannot fail.
	}

	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes())
}

// writePNGChunk frames one chunk: big-endian length, 4-byte type, data,
// and the CRC-32 of type plus data.
func writePNGChunk(w io.Writer, typ string, data []byte) error {
	chunk := make([]byte, 0, len(data)+12)
	chunk = binary.BigEndian.AppendUint32(chunk, uint32(len(data)))
	chunk = append(chunk, typ...)
	chunk = append(chunk, data...)
	chunk = binary.BigEndian.AppendUint32(chunk, crc32.ChecksumIEEE(chunk[4:]))
	_, err := w.Write(chunk)

	return err
}
