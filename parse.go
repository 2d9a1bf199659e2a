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
	"math"
	"strings"

	"golang.org/x/exp/constraints"

	"github.com/bufbuild/numparse/culture"
	"github.com/bufbuild/numparse/decimal"
	"github.com/bufbuild/numparse/internal/convert"
	"github.com/bufbuild/numparse/internal/lexer"
	"github.com/bufbuild/numparse/internal/numbuf"
	"github.com/bufbuild/numparse/styles"
)

// Text is the input to a parse. A nil []byte is a missing input, which is an
// error distinct from an empty one.
type Text interface {
	string | []byte
}

// ParseInt32 parses text as an int32. With [styles.AllowHexSpecifier], the
// digits are the two's complement bits of the result.
func ParseInt32[S Text](text S, s styles.Styles, info *culture.Info) (int32, error) {
	return wrap("ParseInt32", text, s, info, parseSigned[int32, uint32])
}

// TryParseInt32 is like [ParseInt32], but only reports whether it succeeded.
func TryParseInt32[S Text](text S, s styles.Styles, info *culture.Info) (int32, bool) {
	return try(text, s, info, parseSigned[int32, uint32])
}

// ParseInt64 parses text as an int64. With [styles.AllowHexSpecifier], the
// digits are the two's complement bits of the result.
func ParseInt64[S Text](text S, s styles.Styles, info *culture.Info) (int64, error) {
	return wrap("ParseInt64", text, s, info, parseSigned[int64, uint64])
}

// TryParseInt64 is like [ParseInt64], but only reports whether it succeeded.
func TryParseInt64[S Text](text S, s styles.Styles, info *culture.Info) (int64, bool) {
	return try(text, s, info, parseSigned[int64, uint64])
}

// ParseUint32 parses text as a uint32.
func ParseUint32[S Text](text S, s styles.Styles, info *culture.Info) (uint32, error) {
	return wrap("ParseUint32", text, s, info, parseUnsigned[uint32])
}

// TryParseUint32 is like [ParseUint32], but only reports whether it succeeded.
func TryParseUint32[S Text](text S, s styles.Styles, info *culture.Info) (uint32, bool) {
	return try(text, s, info, parseUnsigned[uint32])
}

// ParseUint64 parses text as a uint64.
func ParseUint64[S Text](text S, s styles.Styles, info *culture.Info) (uint64, error) {
	return wrap("ParseUint64", text, s, info, parseUnsigned[uint64])
}

// TryParseUint64 is like [ParseUint64], but only reports whether it succeeded.
func TryParseUint64[S Text](text S, s styles.Styles, info *culture.Info) (uint64, bool) {
	return try(text, s, info, parseUnsigned[uint64])
}

// ParseFloat32 parses text as a float32.
//
// Besides numerals, the culture's spellings of NaN and the infinities are
// accepted, optionally surrounded by whitespace. Values too large for a
// float32 are an overflow rather than an infinity.
func ParseFloat32[S Text](text S, s styles.Styles, info *culture.Info) (float32, error) {
	return wrap("ParseFloat32", text, s, info, parseFloat[float32])
}

// TryParseFloat32 is like [ParseFloat32], but only reports whether it
// succeeded.
func TryParseFloat32[S Text](text S, s styles.Styles, info *culture.Info) (float32, bool) {
	return try(text, s, info, parseFloat[float32])
}

// ParseFloat64 parses text as a float64. See [ParseFloat32].
func ParseFloat64[S Text](text S, s styles.Styles, info *culture.Info) (float64, error) {
	return wrap("ParseFloat64", text, s, info, parseFloat[float64])
}

// TryParseFloat64 is like [ParseFloat64], but only reports whether it
// succeeded.
func TryParseFloat64[S Text](text S, s styles.Styles, info *culture.Info) (float64, bool) {
	return try(text, s, info, parseFloat[float64])
}

// ParseDecimal parses text as a [decimal.Decimal], keeping trailing zeros
// after the decimal point as scale: "1.50" and "1.5" parse to different
// representations of the same value.
func ParseDecimal[S Text](text S, s styles.Styles, info *culture.Info) (decimal.Decimal, error) {
	return wrap("ParseDecimal", text, s, info, parseDecimal)
}

// TryParseDecimal is like [ParseDecimal], but only reports whether it
// succeeded.
func TryParseDecimal[S Text](text S, s styles.Styles, info *culture.Info) (decimal.Decimal, bool) {
	return try(text, s, info, parseDecimal)
}

// Each Parse/TryParse pair shares one fallible implementation, which returns
// a bare sentinel error and, for ErrFormat, the offset at which scanning
// stopped. wrap and try adapt it to the two calling conventions.

func wrap[T any, S Text](
	fn string, text S, s styles.Styles, info *culture.Info,
	parse func(string, styles.Styles, *culture.Info) (T, int, error),
) (T, error) {
	var zero T
	str, ok := toString(text)
	if !ok {
		return zero, &Error{Func: fn, Err: ErrNilInput}
	}
	v, offset, err := parse(str, s, info)
	if err != nil {
		return zero, &Error{Func: fn, Input: str, Offset: offset, Err: err}
	}
	return v, nil
}

func try[T any, S Text](
	text S, s styles.Styles, info *culture.Info,
	parse func(string, styles.Styles, *culture.Info) (T, int, error),
) (T, bool) {
	var zero T
	str, ok := toString(text)
	if !ok {
		return zero, false
	}
	v, _, err := parse(str, s, info)
	if err != nil {
		return zero, false
	}
	return v, true
}

// toString converts text to a string, reporting false for a nil input.
func toString[S Text](text S) (string, bool) {
	if b, ok := any(text).([]byte); ok && b == nil {
		return "", false
	}
	return string(text), true
}

// scan runs the lexer over text and checks that nothing but NULs is left
// over.
//
// Trailing NULs are tolerated because fixed-size, NUL-padded buffers have
// historically been passed in as-is. Only NUL qualifies; any other leftover
// character is a format error.
func scan(text string, s styles.Styles, info *culture.Info, exact bool, buf *numbuf.Buffer) (int, bool) {
	lex := lexer.Lexer{Styles: s, Info: info, Exact: exact}
	end, ok := lex.Scan(text, buf)
	if !ok {
		return end, false
	}
	if strings.Trim(text[end:], "\x00") != "" {
		return end, false
	}
	return end, true
}

func parseSigned[T constraints.Signed, U constraints.Unsigned](text string, s styles.Styles, info *culture.Info) (T, int, error) {
	var buf numbuf.Buffer
	if end, ok := scan(text, s, info, false, &buf); !ok {
		return 0, end, ErrFormat
	}

	var v T
	var ok bool
	if s.Has(styles.AllowHexSpecifier) {
		var bits U
		bits, ok = convert.Hex[U](&buf)
		v = T(bits)
	} else {
		v, ok = convert.Signed[T](&buf)
	}
	if !ok {
		return 0, 0, ErrOverflow
	}
	return v, 0, nil
}

func parseUnsigned[T constraints.Unsigned](text string, s styles.Styles, info *culture.Info) (T, int, error) {
	var buf numbuf.Buffer
	if end, ok := scan(text, s, info, false, &buf); !ok {
		return 0, end, ErrFormat
	}

	conv := convert.Unsigned[T]
	if s.Has(styles.AllowHexSpecifier) {
		conv = convert.Hex[T]
	}
	v, ok := conv(&buf)
	if !ok {
		return 0, 0, ErrOverflow
	}
	return v, 0, nil
}

func parseFloat[T float32 | float64](text string, s styles.Styles, info *culture.Info) (T, int, error) {
	var buf numbuf.Buffer
	end, ok := scan(text, s, info, false, &buf)
	if !ok || !buf.IsDecimal() {
		if v, ok := parseSpecial[T](text, info); ok {
			return v, 0, nil
		}
		return 0, end, ErrFormat
	}

	var v T
	switch p := any(&v).(type) {
	case *float32:
		*p, ok = convert.Float32(&buf)
	case *float64:
		*p, ok = convert.Float64(&buf)
	}
	if !ok {
		return 0, 0, ErrOverflow
	}
	return v, 0, nil
}

// parseSpecial matches the culture's spellings of the non-finite values,
// ignoring surrounding whitespace.
func parseSpecial[T float32 | float64](text string, info *culture.Info) (T, bool) {
	info = culture.OrInvariant(info)
	text = strings.TrimSpace(text)
	switch {
	case text == "":
		return 0, false
	case text == info.PositiveInfinitySymbol:
		return T(math.Inf(1)), true
	case text == info.NegativeInfinitySymbol:
		return T(math.Inf(-1)), true
	case text == info.NaNSymbol:
		return T(math.NaN()), true
	default:
		return 0, false
	}
}

func parseDecimal(text string, s styles.Styles, info *culture.Info) (decimal.Decimal, int, error) {
	var buf numbuf.Buffer
	end, ok := scan(text, s, info, true, &buf)
	if !ok || !buf.IsDecimal() {
		return decimal.Decimal{}, end, ErrFormat
	}

	v, ok := convert.Decimal(&buf)
	if !ok {
		return decimal.Decimal{}, 0, ErrOverflow
	}
	return v, 0, nil
}
