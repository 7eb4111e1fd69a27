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
	"strconv"
	"strings"

	"golang.org/x/text/encoding/japanese"
)

// Segment is one input chunk of a QR symbol: a mode, a character count in
// mode units, and a payload bit emitter. Input validation happens when the
// bits are written, so malformed text surfaces during Make, at the write
// step.
type Segment interface {
	// Mode reports the encoding mode of the segment.
	Mode() Mode

	// CharCount reports the character count in mode units: bytes/2 for
	// Kanji, characters for all other modes.
	CharCount() int

	writeBits(b *BitBuffer) error
}

// NewSegment creates a segment of the given mode over text.
func NewSegment(mode Mode, text string) (Segment, error) {
	switch mode {
	case Numeric:
		return &numericSegment{text: text}, nil
	case Alphanumeric:
		return &alphanumericSegment{text: text}, nil
	case Byte:
		return &byteSegment{data: []byte(text)}, nil
	case Kanji:
		return &kanjiSegment{text: text}, nil
	default:
		return nil, ErrBadMode
	}
}

// NewByteSegment creates a Byte mode segment over raw bytes, bypassing the
// UTF-8 conversion NewSegment applies to text.
func NewByteSegment(data []byte) Segment {
	return &byteSegment{data: data}
}

const alphanumericCharset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

// numericSegment packs runs of 3 decimal digits into 10 bits; a 2-digit
// tail takes 7 bits and a 1-digit tail takes 4.
type numericSegment struct {
	text string
}

func (s *numericSegment) Mode() Mode { return Numeric }

func (s *numericSegment) CharCount() int { return len(s.text) }

func (s *numericSegment) writeBits(b *BitBuffer) error {
	for i := 0; i < len(s.text); i++ {
		if s.text[i] < '0' || s.text[i] > '9' {
			return &BadCharacterError{Mode: Numeric, Offset: i}
		}
	}

	for i := 0; i < len(s.text); {
		n := min(len(s.text)-i, 3)
		d, _ := strconv.Atoi(s.text[i : i+n]) // Cannot fail: the digits were checked above.
		b.Put(d, n*3+1)
		i += n
	}

	return nil
}

// alphanumericSegment packs pairs of charset symbols as 45*first+second
// into 11 bits; a single trailing symbol takes 6.
type alphanumericSegment struct {
	text string
}

func (s *alphanumericSegment) Mode() Mode { return Alphanumeric }

func (s *alphanumericSegment) CharCount() int { return len(s.text) }

func (s *alphanumericSegment) writeBits(b *BitBuffer) error {
	values := make([]int, len(s.text))
	for i := 0; i < len(s.text); i++ {
		v := strings.IndexByte(alphanumericCharset, s.text[i])
		if v < 0 {
			return &BadCharacterError{Mode: Alphanumeric, Offset: i}
		}
		values[i] = v
	}

	var i int
	for i = 0; i+1 < len(values); i += 2 {
		b.Put(values[i]*45+values[i+1], 11)
	}
	if i < len(values) {
		b.Put(values[i], 6)
	}

	return nil
}

// byteSegment emits each byte as 8 bits. Text is converted through Go's
// native UTF-8 representation.
type byteSegment struct {
	data []byte
}

func (s *byteSegment) Mode() Mode { return Byte }

func (s *byteSegment) CharCount() int { return len(s.data) }

func (s *byteSegment) writeBits(b *BitBuffer) error {
	for _, v := range s.data {
		b.Put(int(v), 8)
	}

	return nil
}

// kanjiSegment converts text to Shift JIS and packs each double-byte code
// point into 13 bits. The two legal ranges 0x8140-0x9FFC and 0xE040-0xEBBF
// are rebased and recomposed as hi*0xC0+lo.
type kanjiSegment struct {
	text string

	data    []byte
	dataErr error
	encoded bool
}

func (s *kanjiSegment) Mode() Mode { return Kanji }

func (s *kanjiSegment) CharCount() int {
	data, err := s.shiftJIS()
	if err != nil {
		return 0
	}

	return len(data) / 2
}

func (s *kanjiSegment) writeBits(b *BitBuffer) error {
	data, err := s.shiftJIS()
	if err != nil {
		return err
	}

	var i int
	for i = 0; i+1 < len(data); i += 2 {
		p := int(data[i])<<8 | int(data[i+1])
		switch {
		case 0x8140 <= p && p <= 0x9FFC:
			p -= 0x8140
		case 0xE040 <= p && p <= 0xEBBF:
			p -= 0xC140
		default:
			return &BadKanjiError{Offset: i}
		}
		b.Put((p>>8)*0xC0+p&0xFF, 13)
	}
	if i < len(data) {
		return &BadKanjiError{Offset: i}
	}

	return nil
}

// shiftJIS converts the segment text rune by rune so an unmappable rune
// reports the Shift JIS offset reached so far. The result is cached; a
// symbol is not used concurrently.
func (s *kanjiSegment) shiftJIS() ([]byte, error) {
	if s.encoded {
		return s.data, s.dataErr
	}
	s.encoded = true

	enc := japanese.ShiftJIS.NewEncoder()
	var data []byte
	for _, r := range s.text {
		b, err := enc.Bytes([]byte(string(r)))
		if err != nil {
			s.dataErr = &BadKanjiError{Offset: len(data)}
			return nil, s.dataErr
		}
		data = append(data, b...)
	}
	s.data = data

	return s.data, nil
}
