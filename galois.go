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

// GF(256) arithmetic over the primitive polynomial x^8 + x^4 + x^3 + x^2 + 1.
// The exp/log tables are built once at init and are read-only afterwards.

var (
	gfExpTable [256]byte
	gfLogTable [256]int
)

func init() {
	for i := 0; i < 8; i++ {
		gfExpTable[i] = 1 << uint(i)
	}
	for i := 8; i < 256; i++ {
		gfExpTable[i] = gfExpTable[i-4] ^ gfExpTable[i-5] ^ gfExpTable[i-6] ^ gfExpTable[i-8]
	}
	for i := 0; i < 255; i++ {
		gfLogTable[gfExpTable[i]] = i
	}
}

// gexp returns the field element with exponent n, wrapping n into [0, 254].
func gexp(n int) byte {
	n %= 255
	if n < 0 {
		n += 255
	}

	return gfExpTable[n]
}

// glog returns the exponent of the non-zero field element x.
func glog(x int) int {
	if x < 1 || x > 255 {
		panic("qrsymbol: glog of non-positive field element")
	}

	return gfLogTable[x]
}

// polynomial is a GF(256) polynomial with coefficients stored most
// significant first.
type polynomial []byte

// newPolynomial strips leading zero coefficients and appends shift trailing
// zeros (i.e. multiplies by x^shift). A polynomial with no surviving
// coefficients collapses to the single-element zero polynomial.
func newPolynomial(coefficients []byte, shift int) polynomial {
	offset := 0
	for offset < len(coefficients) && coefficients[offset] == 0 {
		offset++
	}

	p := make(polynomial, len(coefficients)-offset+shift)
	copy(p, coefficients[offset:])
	if len(p) == 0 {
		p = polynomial{0}
	}

	return p
}

// multiply returns the product p*q: convolution under XOR, with each
// non-zero coefficient pair multiplied through the exp/log tables.
func (p polynomial) multiply(q polynomial) polynomial {
	coefficients := make([]byte, len(p)+len(q)-1)
	for i, a := range p {
		if a == 0 {
			continue
		}
		for j, b := range q {
			if b == 0 {
				continue
			}
			coefficients[i+j] ^= gexp(glog(int(a)) + glog(int(b)))
		}
	}

	return newPolynomial(coefficients, 0)
}

// mod returns the remainder of p divided by divisor, by classical long
// division: cancel the leading term, renormalize, repeat.
func (p polynomial) mod(divisor polynomial) polynomial {
	for len(p) >= len(divisor) && p[0] != 0 {
		ratio := glog(int(p[0])) - glog(int(divisor[0]))
		next := make([]byte, len(p))
		copy(next, p)
		for i, d := range divisor {
			if d == 0 {
				continue
			}
			next[i] ^= gexp(glog(int(d)) + ratio)
		}
		p = newPolynomial(next, 0)
	}

	return p
}

// errorCorrectPolynomial returns the Reed-Solomon generator polynomial
// G(x) = (x - a^0)(x - a^1)...(x - a^(n-1)) for n error correction
// codewords. Results are cached at init for every block size the version
// tables use.
func errorCorrectPolynomial(n int) polynomial {
	if g, ok := generatorPolynomials[n]; ok {
		return g
	}

	return computeGeneratorPolynomial(n)
}

func computeGeneratorPolynomial(n int) polynomial {
	g := newPolynomial([]byte{1}, 0)
	for i := 0; i < n; i++ {
		g = g.multiply(newPolynomial([]byte{1, gexp(i)}, 0))
	}

	return g
}

var generatorPolynomials = make(map[int]polynomial)

func init() {
	for level := Low; level <= High; level++ {
		for v := 1; v <= MaxVersion; v++ {
			n := eccCodewordsPerBlock[level][v]
			if _, ok := generatorPolynomials[n]; !ok {
				generatorPolynomials[n] = computeGeneratorPolynomial(n)
			}
		}
	}
}
