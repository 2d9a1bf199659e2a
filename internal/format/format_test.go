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

package format_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/numparse/culture"
	"github.com/bufbuild/numparse/internal/format"
	"github.com/bufbuild/numparse/internal/numbuf"
)

func formatInt(t *testing.T, v int64, verb string, info *culture.Info) string {
	t.Helper()
	var buf numbuf.Buffer
	mag := uint64(v)
	if v < 0 {
		mag = -mag
	}
	buf.SetUint64(mag, v < 0)
	return render(t, &buf, format.Integer, verb, info)
}

func formatFloat(t *testing.T, v float64, verb string, info *culture.Info) string {
	t.Helper()
	var buf numbuf.Buffer
	buf.SetFloat(v, 64)
	return render(t, &buf, format.Float64, verb, info)
}

func render(t *testing.T, buf *numbuf.Buffer, kind format.Kind, verb string, info *culture.Info) string {
	t.Helper()
	v, err := format.ParseVerb(verb)
	require.NoError(t, err)
	return string(format.Append(nil, buf, kind, v, info))
}

func TestParseVerb(t *testing.T) {
	t.Parallel()

	v, err := format.ParseVerb("")
	require.NoError(t, err)
	assert.Equal(t, format.General, v)

	v, err = format.ParseVerb("n2")
	require.NoError(t, err)
	assert.Equal(t, format.Verb{Letter: 'N', Precision: 2}, v)
	assert.Equal(t, "n2", v.String())

	v, err = format.ParseVerb("X")
	require.NoError(t, err)
	assert.Equal(t, format.Verb{Letter: 'X', Upper: true, Precision: -1}, v)
	assert.Equal(t, "X", v.String())

	for _, bad := range []string{"Q", "F100", "G-1", "X+2", "N2.5", "e"} {
		_, err := format.ParseVerb(bad)
		assert.Error(t, err, bad)
	}
}

func TestGeneral(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "1234", formatInt(t, 1234, "", nil))
	assert.Equal(t, "-1234", formatInt(t, -1234, "G", nil))
	assert.Equal(t, "0", formatInt(t, 0, "", nil))
	assert.Equal(t, "1000000", formatInt(t, 1000000, "", nil))
	assert.Equal(t, "-9223372036854775808", formatInt(t, math.MinInt64, "", nil))
	assert.Equal(t, "1.23E+06", formatInt(t, 1234567, "G3", nil))

	assert.Equal(t, "1.5", formatFloat(t, 1.5, "", nil))
	assert.Equal(t, "-0", formatFloat(t, math.Copysign(0, -1), "", nil))
	assert.Equal(t, "100000000000000", formatFloat(t, 1e14, "", nil))
	assert.Equal(t, "1E+15", formatFloat(t, 1e15, "", nil))
	assert.Equal(t, "0.0001", formatFloat(t, 1e-4, "", nil))
	assert.Equal(t, "1E-05", formatFloat(t, 1e-5, "", nil))
	assert.Equal(t, "1.25e-07", formatFloat(t, 1.25e-7, "g", nil))
	assert.Equal(t, "1.7976931348623157E+308", formatFloat(t, math.MaxFloat64, "", nil))
	assert.Equal(t, "5E-324", formatFloat(t, math.SmallestNonzeroFloat64, "", nil))
	assert.Equal(t, "1.2346E+05", formatFloat(t, 123456, "G5", nil))
	a, b := 0.1, 0.2
	assert.Equal(t, "0.30000000000000004", formatFloat(t, a+b, "", nil))

	deDE, ok := culture.Default().Lookup("de-DE")
	require.True(t, ok)
	assert.Equal(t, "-1234,5", formatFloat(t, -1234.5, "", deDE))

	nbNO, ok := culture.Default().Lookup("nb-NO")
	require.True(t, ok)
	assert.Equal(t, "1E−05", formatFloat(t, 1e-5, "", nbNO))
}

func TestNumber(t *testing.T) {
	t.Parallel()

	enIN, _ := culture.Default().Lookup("en-IN")
	deDE, _ := culture.Default().Lookup("de-DE")
	frFR, _ := culture.Default().Lookup("fr-FR")
	nbNO, _ := culture.Default().Lookup("nb-NO")

	assert.Equal(t, "1,234,567.00", formatInt(t, 1234567, "N", nil))
	assert.Equal(t, "123", formatInt(t, 123, "N0", nil))
	assert.Equal(t, "12,34,567", formatInt(t, 1234567, "N0", enIN))
	assert.Equal(t, "1.234,50", formatFloat(t, 1234.5, "N2", deDE))
	assert.Equal(t, "1\u00a0234,5", formatFloat(t, 1234.5, "N1", frFR))
	assert.Equal(t, "− 1\u00a0234,50", formatFloat(t, -1234.5, "N", nbNO))
	assert.Equal(t, "0.001", formatFloat(t, 0.0005, "N3", nil))

	parens := *culture.Invariant
	parens.NumberNegativePattern = 0
	assert.Equal(t, "(1.00)", formatInt(t, -1, "N", &parens))
	trailing := *culture.Invariant
	trailing.NumberNegativePattern = 4
	assert.Equal(t, "1.00 -", formatInt(t, -1, "N", &trailing))

	ungrouped := *culture.Invariant
	ungrouped.NumberGroupSizes = []int{3, 0}
	assert.Equal(t, "1234567,890", formatInt(t, 1234567890, "N0", &ungrouped))
}

func TestFixed(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "0.01", formatFloat(t, 0.005, "F2", nil))
	assert.Equal(t, "3", formatFloat(t, 2.5, "F0", nil))
	assert.Equal(t, "0.0", formatFloat(t, -0.04, "F1", nil))
	assert.Equal(t, "1.500", formatFloat(t, 1.5, "F3", nil))
	assert.Equal(t, "1234567.00", formatInt(t, 1234567, "F", nil))
	assert.Equal(t, "-10.0", formatFloat(t, -9.96, "f1", nil))
	assert.Equal(t, "100000000000000000000.0", formatFloat(t, 1e20, "F1", nil))
}

func TestHex(t *testing.T) {
	t.Parallel()

	hex := func(bits uint64, verb string) string {
		v, err := format.ParseVerb(verb)
		require.NoError(t, err)
		return string(format.AppendHex(nil, bits, v))
	}
	assert.Equal(t, "FF", hex(255, "X"))
	assert.Equal(t, "00ff", hex(255, "x4"))
	assert.Equal(t, "0", hex(0, "X"))
	assert.Equal(t, "00", hex(0, "X2"))
	assert.Equal(t, "FFFFFFFF", hex(math.MaxUint32, "X"))
	assert.Equal(t, "ffffffffffffffff", hex(math.MaxUint64, "x"))
}
