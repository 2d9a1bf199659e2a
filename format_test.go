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

package numparse_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/numparse"
	"github.com/bufbuild/numparse/culture"
	"github.com/bufbuild/numparse/decimal"
	"github.com/bufbuild/numparse/styles"
)

func cultures(t *testing.T) []*culture.Info {
	t.Helper()
	var all []*culture.Info
	for info := range culture.Default().All() {
		all = append(all, info)
	}
	require.NotEmpty(t, all)
	return all
}

func TestRoundTripIntegers(t *testing.T) {
	t.Parallel()

	ints := []int64{0, 1, -1, 7, 100, -100, 12345, math.MaxInt32, math.MinInt32, math.MaxInt64, math.MinInt64}
	for _, info := range cultures(t) {
		for _, v := range ints {
			text, err := numparse.FormatInt(v, "G", info)
			require.NoError(t, err)
			got, ok := numparse.TryParseInt64(text, styles.Integer, info)
			assert.True(t, ok, "%q in %q", text, info.Name)
			assert.Equal(t, v, got, "%q in %q", text, info.Name)

			if v >= math.MinInt32 && v <= math.MaxInt32 {
				text, err := numparse.FormatInt(int32(v), "", info)
				require.NoError(t, err)
				got, ok := numparse.TryParseInt32(text, styles.Integer, info)
				assert.True(t, ok, "%q in %q", text, info.Name)
				assert.Equal(t, int32(v), got)

				hex, err := numparse.FormatInt(int32(v), "X", info)
				require.NoError(t, err)
				got, ok = numparse.TryParseInt32(hex, styles.HexNumber, info)
				assert.True(t, ok, "%q", hex)
				assert.Equal(t, int32(v), got, "%q", hex)
			}

			hex, err := numparse.FormatInt(v, "x", info)
			require.NoError(t, err)
			got, ok = numparse.TryParseInt64(hex, styles.HexNumber, info)
			assert.True(t, ok, "%q", hex)
			assert.Equal(t, v, got, "%q", hex)
		}

		for _, v := range []uint64{0, 1, math.MaxUint32, math.MaxUint64} {
			text, err := numparse.FormatUint(v, "G", info)
			require.NoError(t, err)
			got, ok := numparse.TryParseUint64(text, styles.Integer, info)
			assert.True(t, ok, "%q", text)
			assert.Equal(t, v, got)
		}
	}
}

func TestRoundTripFloats(t *testing.T) {
	t.Parallel()

	floats := []float64{
		0, 1, -1.5, 0.1, 0.1 + 0.2, 1e14, 1e15, 1e-4, 1e-5, 123456789.125,
		1e300, -2.5e-300, math.MaxFloat64, math.SmallestNonzeroFloat64,
		math.Pi, -math.E,
	}
	for _, info := range cultures(t) {
		for _, v := range floats {
			text, err := numparse.FormatFloat(v, "", info)
			require.NoError(t, err)
			got, ok := numparse.TryParseFloat64(text, styles.Float, info)
			assert.True(t, ok, "%q in %q", text, info.Name)
			assert.InDelta(t, v, got, 0, "%q in %q", text, info.Name)
		}

		for _, v := range []float32{0, 0.1, -3.75, math.MaxFloat32, math.SmallestNonzeroFloat32, 16777216} {
			text, err := numparse.FormatFloat(v, "", info)
			require.NoError(t, err)
			got, ok := numparse.TryParseFloat32(text, styles.Float, info)
			assert.True(t, ok, "%q in %q", text, info.Name)
			assert.InDelta(t, v, got, 0, "%q in %q", text, info.Name)
		}

		for _, v := range []float64{math.Inf(1), math.Inf(-1)} {
			text, err := numparse.FormatFloat(v, "", info)
			require.NoError(t, err)
			got, ok := numparse.TryParseFloat64(text, styles.Float, info)
			assert.True(t, ok, "%q in %q", text, info.Name)
			assert.Equal(t, v, got)
		}

		text, err := numparse.FormatFloat(math.NaN(), "", info)
		require.NoError(t, err)
		got, ok := numparse.TryParseFloat64(text, styles.Float, info)
		assert.True(t, ok, "%q in %q", text, info.Name)
		assert.True(t, math.IsNaN(got))
	}
}

func TestRoundTripDecimals(t *testing.T) {
	t.Parallel()

	var values []decimal.Decimal
	for _, text := range []string{"1.50", "-0.001", "0", "-0.00", "12345678901234567890", "0.0000000000000000000000000001"} {
		d, err := numparse.ParseDecimal(text, styles.Number, nil)
		require.NoError(t, err)
		values = append(values, d)
	}
	values = append(values, decimal.Max, decimal.Min)

	for _, info := range cultures(t) {
		for _, v := range values {
			text, err := numparse.FormatDecimal(v, "G", info)
			require.NoError(t, err)
			got, ok := numparse.TryParseDecimal(text, styles.Number, info)
			assert.True(t, ok, "%q in %q", text, info.Name)
			assert.Equal(t, v, got, "%q in %q", text, info.Name)
		}
	}
}

func TestFormat(t *testing.T) {
	t.Parallel()

	deDE := lookup(t, "de-DE")

	text, err := numparse.FormatInt(int32(-1234567), "N", deDE)
	require.NoError(t, err)
	assert.Equal(t, "-1.234.567,00", text)

	text, err = numparse.FormatInt(int8(-1), "X", nil)
	require.NoError(t, err)
	assert.Equal(t, "FF", text)

	text, err = numparse.FormatInt(int16(-2), "x8", nil)
	require.NoError(t, err)
	assert.Equal(t, "0000fffe", text)

	text, err = numparse.FormatUint(uint16(65535), "N0", nil)
	require.NoError(t, err)
	assert.Equal(t, "65,535", text)

	text, err = numparse.FormatFloat(float32(0.1), "", nil)
	require.NoError(t, err)
	assert.Equal(t, "0.1", text)

	text, err = numparse.FormatFloat(2.0/3, "F3", deDE)
	require.NoError(t, err)
	assert.Equal(t, "0,667", text)

	text, err = numparse.FormatFloat(math.Inf(-1), "N2", lookup(t, "en-US"))
	require.NoError(t, err)
	assert.Equal(t, "-∞", text)

	_, err = numparse.FormatFloat(1.0, "X", nil)
	require.Error(t, err)
	_, err = numparse.FormatInt(1, "Y", nil)
	require.Error(t, err)
	_, err = numparse.FormatDecimal(decimal.Max, "X", nil)
	require.Error(t, err)
}
