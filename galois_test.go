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

func TestGaloisTables(t *testing.T) {
	// Seed values and first recurrence step of the primitive polynomial
	// x^8 + x^4 + x^3 + x^2 + 1.
	assert.Equal(t, byte(1), gexp(0))
	assert.Equal(t, byte(2), gexp(1))
	assert.Equal(t, byte(128), gexp(7))
	assert.Equal(t, byte(0x1D), gexp(8))

	// The exponent wraps modulo 255.
	assert.Equal(t, byte(1), gexp(255))
	assert.Equal(t, byte(2), gexp(256))
	assert.Equal(t, byte(128), gexp(-248))
}

func TestGaloisRoundTrip(t *testing.T) {
	for x := 1; x <= 255; x++ {
		assert.Equal(t, byte(x), gexp(glog(x)), "gexp(glog(%d))", x)
	}
	for n := 0; n <= 254; n++ {
		assert.Equal(t, n, glog(int(gexp(n))), "glog(gexp(%d))", n)
	}
}

func TestGlogOfZero(t *testing.T) {
	assert.Panics(t, func() { glog(0) })
	assert.Panics(t, func() { glog(-1) })
}

func TestNewPolynomial(t *testing.T) {
	assert.Equal(t, polynomial{1, 2, 3}, newPolynomial([]byte{1, 2, 3}, 0))
	assert.Equal(t, polynomial{1, 2, 3}, newPolynomial([]byte{0, 0, 1, 2, 3}, 0))
	assert.Equal(t, polynomial{1, 2, 3, 0, 0}, newPolynomial([]byte{1, 2, 3}, 2))
	assert.Equal(t, polynomial{0}, newPolynomial([]byte{}, 0))
	assert.Equal(t, polynomial{0}, newPolynomial([]byte{0, 0}, 0))
}

func TestPolynomialMultiply(t *testing.T) {
	// (x + 1)(x + 2) = x^2 + 3x + 2 under XOR coefficients.
	p := newPolynomial([]byte{1, 1}, 0)
	q := newPolynomial([]byte{1, 2}, 0)
	assert.Equal(t, polynomial{1, 3, 2}, p.multiply(q))

	// Multiplying by the constant 1 is the identity.
	one := newPolynomial([]byte{1}, 0)
	r := newPolynomial([]byte{7, 0, 13}, 0)
	assert.Equal(t, r, r.multiply(one))
}

// evaluate computes p(alpha^n) over GF(256).
func evaluate(p polynomial, n int) byte {
	var result byte
	for i, c := range p {
		if c == 0 {
			continue
		}
		degree := len(p) - 1 - i
		result ^= gexp(glog(int(c)) + n*degree)
	}

	return result
}

func TestErrorCorrectPolynomial(t *testing.T) {
	for _, degree := range []int{1, 7, 10, 13, 15, 17, 22, 28, 30} {
		t.Run(fmt.Sprintf("degree %d", degree), func(t *testing.T) {
			g := errorCorrectPolynomial(degree)
			assert.Equal(t, degree+1, len(g))
			assert.Equal(t, byte(1), g[0])

			// G(x) must vanish at every root a^0 .. a^(degree-1).
			for i := 0; i < degree; i++ {
				assert.Equal(t, byte(0), evaluate(g, i), "G(a^%d)", i)
			}
			assert.NotEqual(t, byte(0), evaluate(g, degree))
		})
	}
}

func TestPolynomialMod(t *testing.T) {
	for _, degree := range []int{7, 10, 17} {
		g := errorCorrectPolynomial(degree)
		data := newPolynomial([]byte{0x40, 0x14, 0x10, 0xEC, 0x11}, degree)
		remainder := data.mod(g)
		assert.Less(t, len(remainder), len(g), "remainder degree must be below the divisor degree")
	}

	// A polynomial shorter than the divisor is returned unchanged.
	g := errorCorrectPolynomial(10)
	short := newPolynomial([]byte{1, 2}, 0)
	assert.Equal(t, short, short.mod(g))
}

func TestSystematicEncodingProperty(t *testing.T) {
	// Appending the Reed-Solomon remainder to the shifted data polynomial
	// yields a codeword polynomial divisible by the generator.
	const degree = 10
	g := errorCorrectPolynomial(degree)
	data := []byte{0x10, 0x20, 0x0C, 0x56, 0x61, 0x80, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11, 0xEC, 0x11}

	remainder := newPolynomial(data, degree).mod(g)
	codeword := make([]byte, len(data)+degree)
	copy(codeword, data)
	for i := range remainder {
		codeword[len(codeword)-len(remainder)+i] = remainder[i]
	}

	c := newPolynomial(codeword, 0)
	for i := 0; i < degree; i++ {
		assert.Equal(t, byte(0), evaluate(c, i), "C(a^%d)", i)
	}
}
