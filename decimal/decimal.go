// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package decimal implements a fixed-precision decimal: a 96-bit unsigned
// coefficient, a scale between 0 and 28, and a sign.
//
// The value of a [Decimal] is (−1)^sign × coefficient / 10^scale. The same
// number can have several representations: 1.5 and 1.50 differ only in
// scale, and [Decimal.String] preserves the difference.
package decimal

import (
	"math"
	"math/bits"
)

const (
	// MaxScale is the largest number of fractional digits a Decimal holds.
	MaxScale = 28

	// MaxPrecision is the number of decimal digits in the largest
	// coefficient, 2^96 − 1 = 79228162514264337593543950335.
	MaxPrecision = 29
)

var (
	// Max is the largest Decimal.
	Max = Decimal{hi: math.MaxUint32, lo: math.MaxUint64}
	// Min is the smallest Decimal.
	Min = Decimal{hi: math.MaxUint32, lo: math.MaxUint64, neg: true}
)

// Decimal is a fixed-precision decimal number. The zero value is 0.
type Decimal struct {
	hi    uint32
	lo    uint64
	scale uint8
	neg   bool
}

// New returns coefficient / 10^scale, negated if negative.
//
// Returns false if scale is outside [0, MaxScale].
func New(coefficient uint64, scale int, negative bool) (Decimal, bool) {
	if scale < 0 || scale > MaxScale {
		return Decimal{}, false
	}
	return Decimal{lo: coefficient, scale: uint8(scale), neg: negative}, true
}

// FromDigits builds a Decimal from a decimal numeral: ASCII digits with the
// decimal point scale digits from their start. Digits past what fits are
// rounded half to even; nonZeroTail reports that non-zero digits were already
// dropped after the last one in digits.
//
// Returns false if the value does not fit. Values with more than MaxScale
// fractional digits are rounded to MaxScale digits, and a value that rounds
// to zero keeps the largest scale.
func FromDigits(digits []byte, scale int, negative, nonZeroTail bool) (Decimal, bool) {
	p := 0
	next := func() byte {
		p++
		if p < len(digits) {
			return digits[p]
		}
		return 0
	}

	e := scale
	var c byte
	if len(digits) > 0 {
		c = digits[0]
	}
	if c == 0 {
		return Decimal{scale: uint8(min(max(-e, 0), MaxScale)), neg: negative}, true
	}
	if e > MaxPrecision {
		return Decimal{}, false
	}

	// Accumulate as much as fits into 64 bits first.
	var lo uint64
	for e > -MaxScale {
		e--
		lo = lo*10 + uint64(c-'0')
		c = next()
		if lo >= math.MaxUint64/10 {
			break
		}
		if c == 0 {
			for e > 0 {
				e--
				lo *= 10
				if lo >= math.MaxUint64/10 {
					break
				}
			}
			break
		}
	}

	// Then spill into the high word, stopping before 2^96 would overflow.
	var hi uint32
	const loLimit = 0x9999999999999999 // (2^96 − 1) / 10, low 64 bits.
	for (e > 0 || (c != 0 && e > -MaxScale)) &&
		(hi < math.MaxUint32/10 || (hi == math.MaxUint32/10 &&
			(lo < loLimit || (lo == loLimit && c <= '5')))) {
		// 96-bit multiply by 10, in 32-bit limbs.
		t0 := (lo & math.MaxUint32) * 10
		t1 := (lo>>32)*10 + t0>>32
		lo = t0&math.MaxUint32 + t1<<32
		hi = uint32(t1>>32) + hi*10

		if c != 0 {
			d := uint64(c - '0')
			var carry uint64
			lo, carry = bits.Add64(lo, d, 0)
			hi += uint32(carry)
			c = next()
		}
		e--
	}

	if c >= '5' {
		round := true
		if c == '5' && lo&1 == 0 {
			// Exactly half: round to even, unless anything non-zero follows.
			zeroTail := !nonZeroTail
			for c = next(); c != 0 && zeroTail; c = next() {
				zeroTail = c == '0'
			}
			round = !zeroTail
		}
		if round {
			var carry uint64
			lo, carry = bits.Add64(lo, 1, 0)
			if carry != 0 {
				hi++
				if hi == 0 {
					// Rounding carried out of 96 bits: drop a digit.
					lo, hi = loLimit+1, math.MaxUint32/10
					e++
				}
			}
		}
	}
	return finish(hi, lo, e, negative)
}

func finish(hi uint32, lo uint64, e int, negative bool) (Decimal, bool) {
	if e > 0 {
		return Decimal{}, false
	}
	if e <= -MaxPrecision {
		// Only zeros and values that round to zero get here.
		return Decimal{scale: MaxScale, neg: negative}, true
	}
	return Decimal{hi: hi, lo: lo, scale: uint8(-e), neg: negative}, true
}
