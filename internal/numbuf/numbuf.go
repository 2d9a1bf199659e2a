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

// Package numbuf defines [Buffer], the fixed-capacity decimal numeral that
// the lexer produces and the type converters consume.
package numbuf

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxDigits is the number of significant digits a [Buffer] can hold.
const MaxDigits = 50

// Buffer is a decimal numeral: a digit string, the position of the decimal
// point relative to it, and a sign. Its value is
//
//	Digits[:Precision] × 10^(Scale − Precision)
//
// with the sign applied. Digits beyond Precision are zeros that are implied
// rather than stored.
//
// A Buffer is a plain value; it is meant to live on the stack of a single
// parse or format call.
type Buffer struct {
	// ASCII digits (hex digits for hexadecimal parses), NUL terminated at
	// Precision.
	Digits [MaxDigits + 1]byte

	Precision int
	Scale     int
	Negative  bool

	// Set when a non-zero digit did not fit and was dropped.
	NonZeroTail bool
}

// Bytes returns the significant digits.
func (b *Buffer) Bytes() []byte {
	return b.Digits[:b.Precision]
}

// Digit returns the i-th significant digit, or 0 (NUL) past the end.
func (b *Buffer) Digit(i int) byte {
	if i < 0 || i >= b.Precision {
		return 0
	}
	return b.Digits[i]
}

// IsZero returns whether the buffer holds no significant digits.
func (b *Buffer) IsZero() bool {
	return b.Precision == 0
}

// IsDecimal reports whether every significant digit is a decimal digit,
// that is, whether the buffer was not scanned as hexadecimal.
func (b *Buffer) IsDecimal() bool {
	for _, c := range b.Bytes() {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// SetDigits loads a digit string. Leading zeros are skipped and trailing
// zeros are dropped from the precision; digits past [MaxDigits] are
// truncated.
//
// scale is the position of the decimal point relative to the start of
// digits, before leading zeros are skipped.
func (b *Buffer) SetDigits(digits string, scale int, negative bool) {
	*b = Buffer{Negative: negative}

	trimmed := strings.TrimLeft(digits, "0")
	scale -= len(digits) - len(trimmed)
	trimmed = strings.TrimRight(trimmed, "0")
	if trimmed == "" {
		return
	}

	n := min(len(trimmed), MaxDigits)
	copy(b.Digits[:], trimmed[:n])
	if strings.Trim(trimmed[n:], "0") != "" {
		b.NonZeroTail = true
	}
	b.Precision = n
	b.Scale = scale
	b.trim()
}

// SetUint64 loads an integer.
func (b *Buffer) SetUint64(v uint64, negative bool) {
	var scratch [20]byte
	digits := strconv.AppendUint(scratch[:0], v, 10)
	b.SetDigits(string(digits), len(digits), negative)
}

// SetFloat loads the shortest decimal representation of a finite float that
// round-trips at the given bit size (32 or 64).
func (b *Buffer) SetFloat(f float64, bitSize int) {
	var scratch [32]byte
	text := strconv.AppendFloat(scratch[:0], f, 'e', -1, bitSize)

	negative := text[0] == '-'
	if negative {
		text = text[1:]
	}
	mant, exp, _ := strings.Cut(string(text), "e")
	e, _ := strconv.Atoi(exp)

	// mant is d or d.ddd, with the decimal point after the first digit.
	digits := strings.Replace(mant, ".", "", 1)
	b.SetDigits(digits, e+1, negative)
	if b.IsZero() {
		b.Negative = negative
	}
}

// Round rounds the buffer half away from zero so that it keeps no digits
// past pos, where pos counts digits from the start of Digits. A buffer that
// rounds to nothing becomes a positive zero.
func (b *Buffer) Round(pos int) {
	i := 0
	for i < pos && i < b.Precision {
		i++
	}

	if i == pos && b.Digit(i) >= '5' {
		for i > 0 && b.Digits[i-1] == '9' {
			i--
		}
		if i > 0 {
			b.Digits[i-1]++
		} else {
			b.Scale++
			b.Digits[0] = '1'
			i = 1
		}
	} else {
		for i > 0 && b.Digits[i-1] == '0' {
			i--
		}
	}

	if i == 0 {
		b.Scale = 0
		b.Negative = false
	}
	b.Precision = i
	b.NonZeroTail = false
	b.Digits[i] = 0
}

// String implements [fmt.Stringer], for debugging.
func (b *Buffer) String() string {
	sign := '+'
	if b.Negative {
		sign = '-'
	}
	return fmt.Sprintf("%c0.%se%d", sign, b.Bytes(), b.Scale)
}

// trim drops trailing zeros from the precision and re-terminates the digits.
func (b *Buffer) trim() {
	for b.Precision > 0 && b.Digits[b.Precision-1] == '0' {
		b.Precision--
	}
	b.Digits[b.Precision] = 0
	if b.Precision == 0 {
		b.Scale = 0
	}
}
