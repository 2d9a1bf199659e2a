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

// Package convert turns a scanned [numbuf.Buffer] into a typed value.
//
// Converters only report success. A buffer that does not fit the target,
// including one with fractional digits for an integer target, is always an
// overflow from the caller's point of view.
package convert

import (
	"math/bits"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/bufbuild/numparse/internal/ext/unicodex"
	"github.com/bufbuild/numparse/internal/numbuf"
)

// Signed converts buf to a signed integer. The most negative value of T is
// accepted even though its magnitude has no positive counterpart.
func Signed[T constraints.Signed](buf *numbuf.Buffer) (T, bool) {
	limit := uint64(1)<<(bitSize[T]()-1) - 1
	if buf.Negative {
		limit++
	}

	n, ok := accumulate(buf, 10, limit)
	if !ok {
		return 0, false
	}
	v := T(n)
	if buf.Negative {
		v = -v
	}
	return v, true
}

// Unsigned converts buf to an unsigned integer. A negative buffer never
// converts, not even a negative zero.
func Unsigned[T constraints.Unsigned](buf *numbuf.Buffer) (T, bool) {
	if buf.Negative {
		return 0, false
	}
	n, ok := accumulate(buf, 10, uint64(^T(0)))
	return T(n), ok
}

// Hex converts a buffer of hexadecimal digits to an unsigned integer. Signed
// targets reinterpret the bits of the unsigned type of the same width.
func Hex[T constraints.Unsigned](buf *numbuf.Buffer) (T, bool) {
	n, ok := accumulate(buf, 16, uint64(^T(0)))
	return T(n), ok
}

// bitSize returns the width of T in bits.
func bitSize[T constraints.Integer]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// accumulate computes the integer value of buf in the given base, failing
// if it has a fractional part or exceeds limit.
func accumulate(buf *numbuf.Buffer, base byte, limit uint64) (uint64, bool) {
	// No more integer digits than limit has, and every stored digit must
	// come before the decimal point.
	i := buf.Scale
	if i > maxDigits(limit, base) || i < buf.Precision {
		return 0, false
	}

	var n uint64
	for p := 0; i > 0; i-- {
		if n > limit/uint64(base) {
			return 0, false
		}
		n *= uint64(base)

		c := buf.Digit(p)
		if c == 0 {
			continue
		}
		p++
		d, ok := unicodex.Digit(rune(c), base)
		if !ok {
			return 0, false
		}
		var carry uint64
		n, carry = bits.Add64(n, uint64(d), 0)
		if carry != 0 || n > limit {
			return 0, false
		}
	}
	return n, true
}

// maxDigits returns the number of digits in limit, written in base.
func maxDigits(limit uint64, base byte) int {
	n := 1
	for limit >= uint64(base) {
		limit /= uint64(base)
		n++
	}
	return n
}
