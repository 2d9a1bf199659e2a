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

// Package styles defines the set of lexical features a numeric parse call
// accepts.
//
// A [Styles] value is a plain bit set. The lexer reads the bits one by one
// and never reconciles combinations that make no sense together, such as
// [AllowHexSpecifier] with [AllowExponent]; callers that accept styles from
// untrusted input should call [Styles.Validate] first.
package styles

import (
	"fmt"
	"strings"
)

//go:generate go run github.com/bufbuild/numparse/internal/enum styles.yaml

// Styles is a set of lexical permissions for the numeric lexer.
type Styles uint32

const (
	None Styles = 0

	AllowLeadingWhite   Styles = 0x0001 // Leading whitespace: U+0020 and U+0009 through U+000D.
	AllowTrailingWhite  Styles = 0x0002 // Trailing whitespace, same set as above.
	AllowLeadingSign    Styles = 0x0004 // A culture sign before the digits.
	AllowTrailingSign   Styles = 0x0008 // A culture sign after the digits.
	AllowParentheses    Styles = 0x0010 // (123) as an alternate spelling of -123.
	AllowDecimalPoint   Styles = 0x0020 // A single culture decimal separator.
	AllowThousands      Styles = 0x0040 // Culture group separators in the integer part.
	AllowExponent       Styles = 0x0080 // A trailing E or e exponent.
	AllowCurrencySymbol Styles = 0x0100 // A single culture currency symbol.
	AllowHexSpecifier   Styles = 0x0200 // Hexadecimal digits; no 0x prefix is accepted.

	Integer   = AllowLeadingWhite | AllowTrailingWhite | AllowLeadingSign
	HexNumber = AllowLeadingWhite | AllowTrailingWhite | AllowHexSpecifier
	Number    = Integer | AllowTrailingSign | AllowDecimalPoint | AllowThousands
	Float     = Integer | AllowDecimalPoint | AllowExponent
	Currency  = Number | AllowParentheses | AllowCurrencySymbol
	Any       = Currency | AllowExponent

	all = Any | AllowHexSpecifier

	// Flags that make no sense for a hexadecimal parse.
	notHex = all &^ HexNumber
)

// Has returns whether every flag in flags is set in s.
func (s Styles) Has(flags Styles) bool {
	return s&flags == flags
}

// Validate returns an error if s contains unknown bits, or combines
// [AllowHexSpecifier] with any flag other than the whitespace flags.
func (s Styles) Validate() error {
	if s&^all != 0 {
		return fmt.Errorf("styles: unknown flag bits %#x", uint32(s&^all))
	}
	if s.Has(AllowHexSpecifier) && s&notHex != 0 {
		return fmt.Errorf("styles: %v cannot be combined with %v", AllowHexSpecifier, s&notHex)
	}
	return nil
}

// String implements [fmt.Stringer].
//
// A value equal to one of the presets prints as that preset's name; anything
// else prints as its flags joined with |, with any unknown bits last.
func (s Styles) String() string {
	for _, p := range stylesPresets {
		if s == p.value {
			return p.name
		}
	}

	var out strings.Builder
	rest := s
	for _, f := range stylesFlags {
		if rest&f.value == 0 {
			continue
		}
		if out.Len() > 0 {
			out.WriteByte('|')
		}
		out.WriteString(f.name)
		rest &^= f.value
	}
	if rest != 0 {
		if out.Len() > 0 {
			out.WriteByte('|')
		}
		fmt.Fprintf(&out, "%#x", uint32(rest))
	}
	return out.String()
}

// Parse parses a list of flag and preset names separated by | or commas, such
// as "Float|AllowThousands". Names are matched case-insensitively.
func Parse(text string) (Styles, error) {
	var s Styles
	for name := range strings.FieldsFuncSeq(text, func(r rune) bool {
		return r == '|' || r == ','
	}) {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		flag, ok := Lookup(name)
		if !ok {
			return None, fmt.Errorf("styles: unknown style %q", name)
		}
		s |= flag
	}
	return s, nil
}
