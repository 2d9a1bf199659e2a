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

package decimal

import (
	"fmt"
	"strings"

	"github.com/bufbuild/numparse/culture"
	"github.com/bufbuild/numparse/internal/format"
	"github.com/bufbuild/numparse/internal/numbuf"
)

// Format renders d with a format string ("G", "N2", "F0", ...) using the
// separators and signs of info, which may be nil for the invariant culture.
//
// G keeps every digit of the coefficient, including trailing zeros, and
// never uses scientific notation, so its output parses back to an identical
// Decimal. Negative zero keeps its sign for the same reason.
func (d Decimal) Format(layout string, info *culture.Info) (string, error) {
	verb, err := format.ParseVerb(layout)
	if err != nil {
		return "", err
	}
	if verb.Letter == 'X' {
		return "", fmt.Errorf("decimal: format %q is only valid for integers", layout)
	}

	var buf numbuf.Buffer
	d.Load(&buf)
	return string(format.Append(nil, &buf, format.Decimal, verb, info)), nil
}

// Load stores d in buf the way an exact scan would: trailing zeros of the
// coefficient stay significant and the scale of a zero is kept.
func (d Decimal) Load(buf *numbuf.Buffer) {
	digits := strings.TrimLeft(d.Digits(), "0")
	*buf = numbuf.Buffer{
		Precision: len(digits),
		Scale:     len(digits) - int(d.scale),
		Negative:  d.neg,
	}
	copy(buf.Digits[:], digits)
}
