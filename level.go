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

// Level represents the error correction level of the QR code.
type Level int8

// Level values.
const (
	Low      Level = iota // Low error correction level (recovers 7% of data).
	Medium                // Medium error correction level (recovers 15% of data).
	Quartile              // Quartile error correction level (recovers 25% of data).
	High                  // High error correction level (recovers 30% of data).
)

// ParseLevel maps a level name ("L", "M", "Q", "H") to its Level value.
func ParseLevel(name string) (Level, error) {
	switch name {
	case "L":
		return Low, nil
	case "M":
		return Medium, nil
	case "Q":
		return Quartile, nil
	case "H":
		return High, nil
	default:
		return 0, ErrBadErrorLevel
	}
}

func (l Level) String() string {
	switch l {
	case Low:
		return "L"
	case Medium:
		return "M"
	case Quartile:
		return "Q"
	case High:
		return "H"
	default:
		return "?"
	}
}

// formatBits returns the 2-bit level indicator XOR-ed into the 15-bit
// format information. The mapping L=1, M=0, Q=3, H=2 is fixed by the
// standard and must stay bit-exact.
func (l Level) formatBits() int {
	switch l {
	case Low:
		return 1
	case Medium:
		return 0
	case Quartile:
		return 3
	case High:
		return 2
	default:
		panic("qrsymbol: unknown error correction level")
	}
}
