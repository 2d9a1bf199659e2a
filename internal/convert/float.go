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

package convert

import (
	"math"
	"strconv"

	"github.com/bufbuild/numparse/decimal"
	"github.com/bufbuild/numparse/internal/numbuf"
)

// Float64 converts buf to the nearest float64.
//
// Fails only when the value rounds to an infinity; values too small to
// represent become a zero of the same sign.
func Float64(buf *numbuf.Buffer) (float64, bool) {
	if buf.IsZero() {
		if buf.Negative {
			return math.Copysign(0, -1), true
		}
		return 0, true
	}

	// Render the buffer as 0.DIGITSeSCALE, which is exactly its value, and
	// let strconv round it. Digits that were dropped for not fitting are
	// stood in for by a single trailing 1, which is enough to break a tie
	// in the right direction.
	var scratch [numbuf.MaxDigits + 16]byte
	text := scratch[:0]
	if buf.Negative {
		text = append(text, '-')
	}
	text = append(text, "0."...)
	text = append(text, buf.Bytes()...)
	if buf.NonZeroTail {
		text = append(text, '1')
	}
	text = append(text, 'e')
	text = strconv.AppendInt(text, int64(buf.Scale), 10)

	f, err := strconv.ParseFloat(string(text), 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// Float32 converts buf to a float32, by way of float64.
func Float32(buf *numbuf.Buffer) (float32, bool) {
	f, ok := Float64(buf)
	if !ok {
		return 0, false
	}
	narrow := float32(f)
	if math.IsInf(float64(narrow), 0) {
		return 0, false
	}
	return narrow, true
}

// Decimal converts buf to a [decimal.Decimal]. The buffer should come from
// an exact scan, so that trailing zeros survive as scale.
func Decimal(buf *numbuf.Buffer) (decimal.Decimal, bool) {
	return decimal.FromDigits(buf.Bytes(), buf.Scale, buf.Negative, buf.NonZeroTail)
}
