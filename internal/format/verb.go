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

package format

import (
	"fmt"
	"strconv"
)

// MaxPrecision is the largest precision a [Verb] accepts.
const MaxPrecision = 99

// Verb is a parsed format string: a letter and an optional precision.
//
// The letters are:
//
//	G  general: the shortest fixed or scientific rendering.
//	N  number: group separators and a fixed number of fraction digits.
//	F  fixed: a fixed number of fraction digits.
//	X  hexadecimal, integers only; the case of the letter picks the case
//	   of the digits.
//
// For G, the case of the letter also picks the case of the exponent marker.
type Verb struct {
	Letter    byte // One of 'G', 'N', 'F' or 'X'.
	Upper     bool
	Precision int // -1 if absent.
}

// General is the Verb for an empty format string.
var General = Verb{Letter: 'G', Upper: true, Precision: -1}

// ParseVerb parses a format string such as "", "G", "n2" or "X8".
func ParseVerb(text string) (Verb, error) {
	if text == "" {
		return General, nil
	}

	v := Verb{Precision: -1}
	switch c := text[0]; c {
	case 'G', 'N', 'F', 'X':
		v.Letter, v.Upper = c, true
	case 'g', 'n', 'f', 'x':
		v.Letter = c - 'a' + 'A'
	default:
		return Verb{}, fmt.Errorf("format: unknown format %q", text)
	}

	if digits := text[1:]; digits != "" {
		p, err := strconv.Atoi(digits)
		if err != nil || p < 0 || p > MaxPrecision || digits[0] == '+' || digits[0] == '-' {
			return Verb{}, fmt.Errorf("format: invalid precision in %q", text)
		}
		v.Precision = p
	}
	return v, nil
}

// String implements [fmt.Stringer].
func (v Verb) String() string {
	letter := v.Letter
	if !v.Upper {
		letter += 'a' - 'A'
	}
	if v.Precision < 0 {
		return string(letter)
	}
	return string(letter) + strconv.Itoa(v.Precision)
}
