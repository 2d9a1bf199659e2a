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

package decimal

import (
	"math/bits"
	"strconv"
	"strings"
)

// Scale returns the number of fractional digits.
func (d Decimal) Scale() int {
	return int(d.scale)
}

// IsZero returns whether d is zero, at any scale and with either sign.
func (d Decimal) IsZero() bool {
	return d.hi == 0 && d.lo == 0
}

// Sign returns -1, 0, or +1.
func (d Decimal) Sign() int {
	switch {
	case d.IsZero():
		return 0
	case d.neg:
		return -1
	default:
		return 1
	}
}

// Negative returns whether the sign bit is set. Unlike Sign, this is true for
// a negative zero.
func (d Decimal) Negative() bool {
	return d.neg
}

// Neg returns −d.
func (d Decimal) Neg() Decimal {
	d.neg = !d.neg
	return d
}

// Coefficient returns the 96-bit coefficient as its high 32 and low 64 bits.
func (d Decimal) Coefficient() (hi uint32, lo uint64) {
	return d.hi, d.lo
}

// Digits returns the decimal digits of the coefficient, without leading
// zeros. A zero coefficient is "0".
func (d Decimal) Digits() string {
	var buf [MaxPrecision]byte
	i := len(buf)
	hi, lo := uint64(d.hi), d.lo
	for hi != 0 || lo != 0 {
		var r uint64
		hi, r = bits.Div64(0, hi, 10)
		lo, r = bits.Div64(r, lo, 10)
		i--
		buf[i] = byte('0' + r)
	}
	if i == len(buf) {
		return "0"
	}
	return string(buf[i:])
}

// String implements [fmt.Stringer]. The output uses "." and "-" regardless
// of culture, and has exactly Scale fractional digits. Like the "G" format,
// it keeps the sign of a negative zero.
func (d Decimal) String() string {
	var out strings.Builder
	if d.neg {
		out.WriteByte('-')
	}

	digits := d.Digits()
	scale := int(d.scale)
	if pad := scale + 1 - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	out.WriteString(digits[:len(digits)-scale])
	if scale > 0 {
		out.WriteByte('.')
		out.WriteString(digits[len(digits)-scale:])
	}
	return out.String()
}

// Float64 returns the float64 nearest to d.
func (d Decimal) Float64() float64 {
	f, _ := strconv.ParseFloat(d.String(), 64)
	if d.neg && f == 0 {
		f = -f
	}
	return f
}
