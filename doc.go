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

// Package numparse converts between numeric text and numbers, following the
// separators, signs and symbols of a culture.
//
// # Parsing
//
// Each target type has a pair of entry points: ParseT returns an [*Error]
// that wraps [ErrFormat], [ErrOverflow] or [ErrNilInput], and TryParseT only
// reports success. Both take the text as a string or a []byte, a set of
// [styles.Styles] saying which lexical features are allowed, and a
// [culture.Info], which may be nil for the invariant culture:
//
//	v, err := numparse.ParseInt32("  -1,234  ", styles.Number, nil)
//	d, ok := numparse.TryParseDecimal("1.234,50 €", styles.Currency, deDE)
//
// Parsing happens in two steps. A lexer scans the text into a fixed-size
// decimal buffer of digits, scale and sign, rejecting anything the styles do
// not allow; then a converter turns the buffer into the target type,
// rejecting values it cannot represent. The first step fails with
// ErrFormat, the second with ErrOverflow.
//
// The lexer accepts a numeral followed by NUL characters and nothing else,
// for compatibility with NUL-padded fixed-size buffers. Any other leftover
// text is a format error.
//
// # Formatting
//
// FormatInt, FormatUint, FormatFloat and FormatDecimal render numbers with a
// short layout string: "G" for the general form, "N" for grouped digits, "F"
// for a fixed number of fraction digits, and "X" for hexadecimal integers.
// The general form of a value parses back to the same value.
package numparse
