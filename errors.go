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
	"errors"
	"fmt"
)

// Sentinel errors returned (or carried by panics, in the case of
// ErrOutOfRange) by symbol construction and reading.
var (
	// ErrBadErrorLevel indicates an unknown error correction level name.
	ErrBadErrorLevel = errors.New("qrsymbol: unknown error correction level")

	// ErrBadMode indicates an unknown segment encoding mode name.
	ErrBadMode = errors.New("qrsymbol: unknown encoding mode")

	// ErrOutOfRange indicates a module read outside [0, N) or before Make.
	// IsDark panics with this value; it is a programming error, not a
	// recoverable condition.
	ErrOutOfRange = errors.New("qrsymbol: module coordinate out of range")
)

// BadCharacterError reports an input character that is not legal for the
// segment's encoding mode. Offset is the byte offset of the character in
// the segment text.
type BadCharacterError struct {
	Mode   Mode
	Offset int
}

func (e *BadCharacterError) Error() string {
	return fmt.Sprintf("qrsymbol: illegal character for %s mode at offset %d", e.Mode, e.Offset)
}

// BadKanjiError reports Shift JIS data that cannot be packed as a Kanji
// segment: an odd byte length, a code point outside both double-byte
// ranges, or a rune the encoding cannot represent. Offset is the byte
// offset into the Shift JIS stream.
type BadKanjiError struct {
	Offset int
}

func (e *BadKanjiError) Error() string {
	return fmt.Sprintf("qrsymbol: invalid kanji data at offset %d", e.Offset)
}

// CodeOverflowError reports that the encoded segments do not fit the data
// capacity of the chosen version and level.
type CodeOverflowError struct {
	Bits     int // Encoded length in bits at the point of failure.
	Capacity int // Data capacity of the (version, level) pair in bits.
}

func (e *CodeOverflowError) Error() string {
	return fmt.Sprintf("qrsymbol: code length overflow (%d bits > %d bits)", e.Bits, e.Capacity)
}
