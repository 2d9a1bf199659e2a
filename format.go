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

package numparse

import (
	"fmt"
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"

	"github.com/bufbuild/numparse/culture"
	"github.com/bufbuild/numparse/decimal"
	"github.com/bufbuild/numparse/internal/format"
	"github.com/bufbuild/numparse/internal/numbuf"
)

// FormatInt renders v according to layout, one of "G", "N", "F" or "X",
// optionally followed by a precision, as in "N2" or "X8". An empty layout
// means "G".
//
// G output parses back to v under [styles.Integer], and X output under
// [styles.HexNumber].
func FormatInt[T constraints.Signed](v T, layout string, info *culture.Info) (string, error) {
	verb, err := format.ParseVerb(layout)
	if err != nil {
		return "", err
	}
	if verb.Letter == 'X' {
		bits := uint64(v) & (math.MaxUint64 >> (64 - 8*unsafe.Sizeof(v)))
		return string(format.AppendHex(nil, bits, verb)), nil
	}

	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}
	var buf numbuf.Buffer
	buf.SetUint64(mag, v < 0)
	return string(format.Append(nil, &buf, format.Integer, verb, info)), nil
}

// FormatUint renders v according to layout. See [FormatInt].
func FormatUint[T constraints.Unsigned](v T, layout string, info *culture.Info) (string, error) {
	verb, err := format.ParseVerb(layout)
	if err != nil {
		return "", err
	}
	if verb.Letter == 'X' {
		return string(format.AppendHex(nil, uint64(v), verb)), nil
	}

	var buf numbuf.Buffer
	buf.SetUint64(uint64(v), false)
	return string(format.Append(nil, &buf, format.Integer, verb, info)), nil
}

// FormatFloat renders v according to layout, one of "G", "N" or "F" with an
// optional precision. NaN and the infinities are rendered with the culture's
// symbols.
//
// G without a precision uses the fewest digits that parse back to v under
// [styles.Float].
func FormatFloat[T float32 | float64](v T, layout string, info *culture.Info) (string, error) {
	verb, err := format.ParseVerb(layout)
	if err != nil {
		return "", err
	}
	if verb.Letter == 'X' {
		return "", fmt.Errorf("numparse: format %q is only valid for integers", layout)
	}

	info = culture.OrInvariant(info)
	f := float64(v)
	switch {
	case math.IsNaN(f):
		return info.NaNSymbol, nil
	case math.IsInf(f, 1):
		return info.PositiveInfinitySymbol, nil
	case math.IsInf(f, -1):
		return info.NegativeInfinitySymbol, nil
	}

	kind, bitSize := format.Float64, 64
	if unsafe.Sizeof(v) == 4 {
		kind, bitSize = format.Float32, 32
	}
	var buf numbuf.Buffer
	buf.SetFloat(f, bitSize)
	return string(format.Append(nil, &buf, kind, verb, info)), nil
}

// FormatDecimal renders d according to layout. See [decimal.Decimal.Format].
func FormatDecimal(d decimal.Decimal, layout string, info *culture.Info) (string, error) {
	return d.Format(layout, info)
}
