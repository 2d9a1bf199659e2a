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

package decimal_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/numparse/culture"
	"github.com/bufbuild/numparse/decimal"
)

func TestFromDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		digits   string
		scale    int
		negative bool
		tail     bool
		want     string // Empty means overflow.
	}{
		{digits: "15", scale: 1, want: "1.5"},
		{digits: "123450", scale: 4, want: "1234.50"},
		{digits: "123450", scale: 4, negative: true, want: "-1234.50"},
		{digits: "", scale: -3, want: "0.000"},
		{digits: "", scale: 5, want: "0"},
		{digits: "", scale: -40, want: "0." + strings.Repeat("0", 28)},
		{digits: "1", scale: 20, want: "1" + strings.Repeat("0", 19)},
		{digits: "79228162514264337593543950335", scale: 29, want: "79228162514264337593543950335"},
		{digits: "79228162514264337593543950336", scale: 29},
		{digits: "1", scale: 30},
		{digits: "7922816251426433759354395033", scale: 1, want: "7.922816251426433759354395033"},
		// Past 28 fractional digits, round half to even.
		{digits: "15", scale: -27, want: "0." + strings.Repeat("0", 27) + "2"},
		{digits: "25", scale: -27, want: "0." + strings.Repeat("0", 27) + "2"},
		{digits: "25", scale: -27, tail: true, want: "0." + strings.Repeat("0", 27) + "3"},
		{digits: "2500001", scale: -27, want: "0." + strings.Repeat("0", 27) + "3"},
		{digits: "9", scale: -28, want: "0." + strings.Repeat("0", 27) + "1"},
		{digits: "1", scale: -30, want: "0." + strings.Repeat("0", 28)},
		// Past 29 significant digits, round too.
		{digits: "12345678901234567890123456789", scale: 1, want: "1.2345678901234567890123456789"},
		{digits: "123456789012345678901234567895", scale: 2, want: "12.345678901234567890123456790"},
	}
	for _, tt := range tests {
		d, ok := decimal.FromDigits([]byte(tt.digits), tt.scale, tt.negative, tt.tail)
		if tt.want == "" {
			assert.False(t, ok, "FromDigits(%q, %d)", tt.digits, tt.scale)
			continue
		}
		if assert.True(t, ok, "FromDigits(%q, %d)", tt.digits, tt.scale) {
			assert.Equal(t, tt.want, d.String(), "FromDigits(%q, %d)", tt.digits, tt.scale)
		}
	}
}

func TestAccessors(t *testing.T) {
	t.Parallel()

	d, ok := decimal.New(12345, 3, true)
	require.True(t, ok)
	assert.Equal(t, "-12.345", d.String())
	assert.Equal(t, 3, d.Scale())
	assert.Equal(t, -1, d.Sign())
	assert.Equal(t, "12345", d.Digits())
	assert.Equal(t, "12.345", d.Neg().String())
	assert.InDelta(t, -12.345, d.Float64(), 1e-12)

	hi, lo := decimal.Max.Coefficient()
	assert.Equal(t, uint32(math.MaxUint32), hi)
	assert.Equal(t, uint64(math.MaxUint64), lo)
	assert.Equal(t, "-79228162514264337593543950335", decimal.Min.String())

	zero, ok := decimal.New(0, 2, true)
	require.True(t, ok)
	assert.True(t, zero.IsZero())
	assert.True(t, zero.Negative())
	assert.Equal(t, 0, zero.Sign())
	assert.Equal(t, "-0.00", zero.String())
	assert.Equal(t, "0.00", zero.Neg().String())
	assert.True(t, math.Signbit(zero.Float64()))

	_, ok = decimal.New(1, 29, false)
	assert.False(t, ok)
	_, ok = decimal.New(1, -1, false)
	assert.False(t, ok)
}

func TestDecompose(t *testing.T) {
	t.Parallel()

	d, ok := decimal.New(1500, 3, true)
	require.True(t, ok)

	buf := make([]byte, 0, 16)
	form, negative, coeff, exp := d.Decompose(buf)
	assert.Equal(t, byte(0), form)
	assert.True(t, negative)
	assert.Equal(t, []byte{0x05, 0xdc}, coeff)
	assert.Equal(t, int32(-3), exp)

	var back decimal.Decimal
	require.NoError(t, back.Compose(form, negative, coeff, exp))
	assert.Equal(t, d, back)

	_, _, coeff, exp = decimal.Max.Decompose(nil)
	assert.Len(t, coeff, 12)
	assert.Equal(t, int32(0), exp)
}

func TestCompose(t *testing.T) {
	t.Parallel()

	var d decimal.Decimal
	require.NoError(t, d.Compose(0, false, []byte{5}, 2))
	assert.Equal(t, "500", d.String())

	require.NoError(t, d.Compose(0, false, []byte{0x05, 0xdc}, -30))
	assert.Equal(t, "0."+strings.Repeat("0", 26)+"15", d.String())

	assert.ErrorContains(t, d.Compose(0, false, []byte{1}, -30), "out of range")
	assert.ErrorContains(t, d.Compose(0, false, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, 0), "out of range")
	_, _, maxCoeff, _ := decimal.Max.Decompose(nil)
	assert.ErrorContains(t, d.Compose(0, false, maxCoeff, 1), "out of range")
	assert.Error(t, d.Compose(1, false, nil, 0))
	assert.Error(t, d.Compose(2, false, nil, 0))
	assert.Error(t, d.Compose(3, false, nil, 0))
}

func TestFormat(t *testing.T) {
	t.Parallel()

	deDE, ok := culture.Default().Lookup("de-DE")
	require.True(t, ok)

	d, ok := decimal.New(1234567, 3, true)
	require.True(t, ok)

	tests := []struct {
		layout string
		info *culture.Info
		want string
	}{
		{layout: "", want: "-1234.567"},
		{layout: "G", info: deDE, want: "-1234,567"},
		{layout: "N", want: "-1,234.57"},
		{layout: "N1", info: deDE, want: "-1.234,6"},
		{layout: "F5", want: "-1234.56700"},
		{layout: "F0", want: "-1235"},
		{layout: "G4", want: "-1235"},
		{layout: "G2", want: "-1.2E+03"},
	}
	for _, tt := range tests {
		got, err := d.Format(tt.layout, tt.info)
		require.NoError(t, err, tt.layout)
		assert.Equal(t, tt.want, got, tt.layout)
	}

	small, _ := decimal.FromDigits([]byte("1"), -27, false, false)
	got, err := small.Format("", nil)
	require.NoError(t, err)
	assert.Equal(t, "0."+strings.Repeat("0", 27)+"1", got)

	zero, _ := decimal.New(0, 2, true)
	got, err = zero.Format("G", nil)
	require.NoError(t, err)
	assert.Equal(t, "-0.00", got)

	trailing, _ := decimal.New(150, 2, false)
	got, err = trailing.Format("", nil)
	require.NoError(t, err)
	assert.Equal(t, "1.50", got)

	_, err = d.Format("X", nil)
	assert.Error(t, err)
	_, err = d.Format("Z", nil)
	assert.Error(t, err)
}
