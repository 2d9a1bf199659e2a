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

package styles_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/numparse/styles"
)

func TestPresets(t *testing.T) {
	t.Parallel()

	// Callers depend on the exact bits of each preset.
	tests := []struct {
		preset styles.Styles
		want   uint32
	}{
		{styles.Integer, 0x007},
		{styles.HexNumber, 0x203},
		{styles.Number, 0x06f},
		{styles.Float, 0x0a7},
		{styles.Currency, 0x17f},
		{styles.Any, 0x1ff},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, uint32(tt.preset), "%v", tt.preset)
	}

	assert.Equal(t,
		styles.AllowLeadingWhite|styles.AllowTrailingWhite|styles.AllowLeadingSign|
			styles.AllowDecimalPoint|styles.AllowExponent,
		styles.Float,
	)
}

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		s    styles.Styles
		want string
	}{
		{styles.None, "None"},
		{styles.Float, "Float"},
		{styles.HexNumber, "HexNumber"},
		{styles.AllowExponent, "AllowExponent"},
		{styles.Float | styles.AllowThousands, "AllowLeadingWhite|AllowTrailingWhite|AllowLeadingSign|AllowDecimalPoint|AllowThousands|AllowExponent"},
		{styles.AllowHexSpecifier | 0x1000, "AllowHexSpecifier|0x1000"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.s.String())
	}
}

func TestParse(t *testing.T) {
	t.Parallel()

	s, err := styles.Parse("float | allowthousands")
	require.NoError(t, err)
	assert.Equal(t, styles.Float|styles.AllowThousands, s)

	s, err = styles.Parse("HexNumber,AllowLeadingSign")
	require.NoError(t, err)
	assert.Equal(t, styles.HexNumber|styles.AllowLeadingSign, s)

	s, err = styles.Parse("")
	require.NoError(t, err)
	assert.Equal(t, styles.None, s)

	_, err = styles.Parse("Float|Bogus")
	assert.ErrorContains(t, err, `"Bogus"`)

	for _, s := range []styles.Styles{styles.Integer, styles.Any, styles.Number | styles.AllowExponent} {
		back, err := styles.Parse(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, back)
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, styles.Any.Validate())
	require.NoError(t, styles.HexNumber.Validate())
	require.NoError(t, styles.AllowHexSpecifier.Validate())

	assert.Error(t, (styles.HexNumber | styles.AllowExponent).Validate())
	assert.Error(t, (styles.HexNumber | styles.AllowLeadingSign).Validate())
	assert.ErrorContains(t, styles.Styles(0x4000).Validate(), "0x4000")
	assert.True(t, styles.Currency.Has(styles.AllowParentheses|styles.AllowCurrencySymbol))
	assert.False(t, styles.Float.Has(styles.AllowThousands))
}
