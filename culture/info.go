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

// Package culture supplies the locale-specific strings that the numeric
// lexer and formatter read: separators, signs, the currency symbol, and the
// spellings of NaN and the infinities.
//
// An [Info] is read-only once it has been handed to a parse or format call,
// and may be shared by any number of concurrent calls.
package culture

import (
	"errors"
	"fmt"
)

// Info is the numeric part of a culture.
type Info struct {
	// The culture's BCP 47 name; empty for the invariant culture.
	Name string `yaml:"name"`

	NumberDecimalSeparator string `yaml:"number_decimal_separator"`
	NumberGroupSeparator   string `yaml:"number_group_separator"`
	// Digits per group, from the decimal point outward. The last size
	// repeats; a trailing 0 means the rest of the digits are not grouped.
	NumberGroupSizes    []int `yaml:"number_group_sizes"`
	NumberDecimalDigits int   `yaml:"number_decimal_digits"`
	// Selects how negative numbers are written: 0 "(n)", 1 "-n", 2 "- n",
	// 3 "n-", 4 "n -". Pattern 2 also lets the lexer skip whitespace between
	// a leading sign and the digits.
	NumberNegativePattern int `yaml:"number_negative_pattern"`

	CurrencyDecimalSeparator string `yaml:"currency_decimal_separator"`
	CurrencyGroupSeparator   string `yaml:"currency_group_separator"`
	CurrencySymbol           string `yaml:"currency_symbol"`
	// A legacy spelling of the currency symbol that the lexer also accepts.
	ANSICurrencySymbol string `yaml:"ansi_currency_symbol"`

	PositiveSign string `yaml:"positive_sign"`
	NegativeSign string `yaml:"negative_sign"`

	NaNSymbol              string `yaml:"nan_symbol"`
	PositiveInfinitySymbol string `yaml:"positive_infinity_symbol"`
	NegativeInfinitySymbol string `yaml:"negative_infinity_symbol"`
}

// Invariant is the culture used when a caller does not supply one.
//
// It must not be modified; copy it to derive a new culture.
var Invariant = &Info{
	NumberDecimalSeparator: ".",
	NumberGroupSeparator:   ",",
	NumberGroupSizes:       []int{3},
	NumberDecimalDigits:    2,
	NumberNegativePattern:  1,

	CurrencyDecimalSeparator: ".",
	CurrencyGroupSeparator:   ",",
	CurrencySymbol:           "¤",

	PositiveSign: "+",
	NegativeSign: "-",

	NaNSymbol:              "NaN",
	PositiveInfinitySymbol: "Infinity",
	NegativeInfinitySymbol: "-Infinity",
}

// OrInvariant returns info, or [Invariant] if info is nil.
func OrInvariant(info *Info) *Info {
	if info == nil {
		return Invariant
	}
	return info
}

// Validate checks that the strings the lexer depends on are present.
func (info *Info) Validate() error {
	var errs []error
	check := func(field, value string) {
		if value == "" {
			errs = append(errs, fmt.Errorf("culture %q: %s must not be empty", info.Name, field))
		}
	}
	check("number_decimal_separator", info.NumberDecimalSeparator)
	check("currency_decimal_separator", info.CurrencyDecimalSeparator)
	check("positive_sign", info.PositiveSign)
	check("negative_sign", info.NegativeSign)
	check("nan_symbol", info.NaNSymbol)
	check("positive_infinity_symbol", info.PositiveInfinitySymbol)
	check("negative_infinity_symbol", info.NegativeInfinitySymbol)

	if info.NumberNegativePattern < 0 || info.NumberNegativePattern > 4 {
		errs = append(errs, fmt.Errorf("culture %q: number_negative_pattern %d out of range [0, 4]",
			info.Name, info.NumberNegativePattern))
	}
	for i, size := range info.NumberGroupSizes {
		if size < 0 || size > 9 || (size == 0 && i != len(info.NumberGroupSizes)-1) {
			errs = append(errs, fmt.Errorf("culture %q: invalid number_group_sizes %v", info.Name, info.NumberGroupSizes))
			break
		}
	}
	return errors.Join(errs...)
}
