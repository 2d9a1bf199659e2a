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
	"math/big"
	"strings"

	"github.com/bufbuild/numparse/culture"
	"github.com/bufbuild/numparse/internal/lexer"
	"github.com/bufbuild/numparse/internal/numbuf"
	"github.com/bufbuild/numparse/styles"
)

// MaxBigExponent bounds the power of the base that ParseBigInt multiplies the
// digits by. Exponents beyond it are not scanned exactly, so they are
// reported as an overflow.
const MaxBigExponent = 1000

// ParseBigInt parses an integer of any size. Digits after a decimal point
// must all be zero.
//
// With [styles.AllowHexSpecifier], the digits are read as an unsigned
// hexadecimal magnitude.
func ParseBigInt[S Text](text S, s styles.Styles, info *culture.Info) (*big.Int, error) {
	return wrap("ParseBigInt", text, s, info, parseBigInt)
}

// TryParseBigInt is like [ParseBigInt], but only reports whether it
// succeeded.
func TryParseBigInt[S Text](text S, s styles.Styles, info *culture.Info) (*big.Int, bool) {
	return try(text, s, info, parseBigInt)
}

func parseBigInt(text string, s styles.Styles, info *culture.Info) (*big.Int, int, error) {
	var (
		buf  numbuf.Buffer
		sink strings.Builder
	)
	lex := lexer.Lexer{Styles: s, Info: info, Sink: &sink}
	end, ok := lex.Scan(text, &buf)
	if !ok || strings.Trim(text[end:], "\x00") != "" {
		return nil, end, ErrFormat
	}

	base := 10
	if s.Has(styles.AllowHexSpecifier) {
		base = 16
	}

	// The sink holds every digit, including trailing zeros past Precision.
	// Those before the decimal point are part of the value; the rest must
	// be zero.
	digits := sink.String()
	if buf.Precision > buf.Scale && buf.Precision > 0 {
		return nil, 0, ErrOverflow
	}
	exp := buf.Scale - buf.Precision
	if exp > MaxBigExponent {
		return nil, 0, ErrOverflow
	}

	v := new(big.Int)
	if buf.Precision > 0 {
		v.SetString(digits[:buf.Precision], base)
	}
	if exp > 0 && v.Sign() != 0 {
		scale := new(big.Int).Exp(big.NewInt(int64(base)), big.NewInt(int64(exp)), nil)
		v.Mul(v, scale)
	}
	if buf.Negative {
		v.Neg(v)
	}
	return v, 0, nil
}
