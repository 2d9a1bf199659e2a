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

// Package format renders a [numbuf.Buffer] as culture-specific text.
//
// Every numeric type is formatted by loading it into a buffer first, so that
// the same rendering code, and the same rounding, serves all of them.
package format

import (
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/bufbuild/numparse/culture"
	"github.com/bufbuild/numparse/internal/ext/unicodex"
	"github.com/bufbuild/numparse/internal/numbuf"
)

// Kind is the type a buffer was loaded from. It picks the defaults for G.
type Kind int

const (
	Integer Kind = iota
	Float32
	Float64
	Decimal
)

// Significant digits below which G never switches to scientific notation
// for floats.
const (
	float32Digits = 7
	float64Digits = 15
)

// Append renders buf according to v and appends the text to dst.
//
// buf is rounded in place. v must not be an X verb; hexadecimal output does
// not go through a decimal buffer, see [AppendHex].
func Append(dst []byte, buf *numbuf.Buffer, kind Kind, v Verb, info *culture.Info) []byte {
	info = culture.OrInvariant(info)
	switch v.Letter {
	case 'N':
		return appendNumber(dst, buf, v, info)
	case 'F':
		return appendFixed(dst, buf, v, info)
	default:
		return appendGeneral(dst, buf, kind, v, info)
	}
}

// AppendHex renders the two's complement bits of an integer in base 16,
// padded with zeros to at least v.Precision digits.
func AppendHex(dst []byte, bits uint64, v Verb) []byte {
	var scratch [16]byte
	i := len(scratch)
	for {
		i--
		scratch[i] = unicodex.DigitChar(byte(bits&0xf), v.Upper)
		bits >>= 4
		if bits == 0 {
			break
		}
	}
	for n := len(scratch) - i; n < v.Precision; n++ {
		dst = append(dst, '0')
	}
	return append(dst, scratch[i:]...)
}

func appendGeneral(dst []byte, buf *numbuf.Buffer, kind Kind, v Verb, info *culture.Info) []byte {
	maxDigits := v.Precision
	suppressExp := false
	if maxDigits <= 0 {
		switch kind {
		case Float32:
			maxDigits = max(buf.Precision, float32Digits)
		case Float64:
			maxDigits = max(buf.Precision, float64Digits)
		case Decimal:
			suppressExp = true
			maxDigits = math.MaxInt
		default:
			maxDigits = math.MaxInt
		}
	} else {
		buf.Round(maxDigits)
	}

	if buf.Negative {
		dst = append(dst, info.NegativeSign...)
	}

	if !suppressExp && (buf.Scale > maxDigits || buf.Scale < -3) {
		// d.dddE+XX
		dst = append(dst, digit(buf, 0))
		if buf.Precision > 1 {
			dst = append(dst, info.NumberDecimalSeparator...)
			dst = append(dst, buf.Digits[1:buf.Precision]...)
		}
		marker := byte('E')
		if !v.Upper {
			marker = 'e'
		}
		return appendExponent(append(dst, marker), buf.Scale-1, info)
	}

	dst = appendInteger(dst, buf, nil, "")
	if frac := buf.Precision - buf.Scale; frac > 0 {
		dst = append(dst, info.NumberDecimalSeparator...)
		dst = appendFraction(dst, buf, frac)
	}
	return dst
}

func appendNumber(dst []byte, buf *numbuf.Buffer, v Verb, info *culture.Info) []byte {
	frac := v.Precision
	if frac < 0 {
		frac = info.NumberDecimalDigits
	}
	buf.Round(buf.Scale + frac)

	var body []byte
	body = appendInteger(body, buf, info.NumberGroupSizes, info.NumberGroupSeparator)
	if frac > 0 {
		body = append(body, info.NumberDecimalSeparator...)
		body = appendFraction(body, buf, frac)
	}

	if !buf.Negative {
		return append(dst, body...)
	}
	switch info.NumberNegativePattern {
	case 0:
		dst = append(dst, '(')
		dst = append(dst, body...)
		return append(dst, ')')
	case 2:
		dst = append(dst, info.NegativeSign...)
		dst = append(dst, ' ')
		return append(dst, body...)
	case 3:
		dst = append(dst, body...)
		return append(dst, info.NegativeSign...)
	case 4:
		dst = append(dst, body...)
		dst = append(dst, ' ')
		return append(dst, info.NegativeSign...)
	default:
		dst = append(dst, info.NegativeSign...)
		return append(dst, body...)
	}
}

func appendFixed(dst []byte, buf *numbuf.Buffer, v Verb, info *culture.Info) []byte {
	frac := v.Precision
	if frac < 0 {
		frac = info.NumberDecimalDigits
	}
	buf.Round(buf.Scale + frac)

	if buf.Negative {
		dst = append(dst, info.NegativeSign...)
	}
	dst = appendInteger(dst, buf, nil, "")
	if frac > 0 {
		dst = append(dst, info.NumberDecimalSeparator...)
		dst = appendFraction(dst, buf, frac)
	}
	return dst
}

// appendInteger appends the digits before the decimal point, or a single
// zero if there are none, grouped according to sizes.
func appendInteger(dst []byte, buf *numbuf.Buffer, sizes []int, sep string) []byte {
	if buf.Scale <= 0 {
		return append(dst, '0')
	}

	var digits []byte
	for i := range buf.Scale {
		digits = append(digits, digit(buf, i))
	}
	if len(sizes) == 0 || sep == "" {
		return append(dst, digits...)
	}

	// Split off groups from the right. The last size repeats; a size of
	// zero leaves the rest ungrouped.
	var groups []string
	end, i, size := len(digits), 0, sizes[0]
	for size > 0 && end > size {
		groups = append(groups, string(digits[end-size:end]))
		end -= size
		if i+1 < len(sizes) {
			i++
			size = sizes[i]
		}
	}
	groups = append(groups, string(digits[:end]))
	slices.Reverse(groups)
	return append(dst, strings.Join(groups, sep)...)
}

// appendFraction appends n digits after the decimal point.
func appendFraction(dst []byte, buf *numbuf.Buffer, n int) []byte {
	for i := range n {
		dst = append(dst, digit(buf, buf.Scale+i))
	}
	return dst
}

func appendExponent(dst []byte, exp int, info *culture.Info) []byte {
	if exp < 0 {
		dst = append(dst, info.NegativeSign...)
		exp = -exp
	} else {
		dst = append(dst, info.PositiveSign...)
	}
	if exp < 10 {
		dst = append(dst, '0')
	}
	return strconv.AppendInt(dst, int64(exp), 10)
}

// digit returns the digit at position i, counting from the start of the
// buffer, with the implied zeros on either side.
func digit(buf *numbuf.Buffer, i int) byte {
	if c := buf.Digit(i); c != 0 {
		return c
	}
	return '0'
}
