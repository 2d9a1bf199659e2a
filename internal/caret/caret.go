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

// Package caret renders a line of input with a caret under one position,
// for pointing at where a parse went wrong.
package caret

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// TabstopWidth is the size we render all tabstops as.
const TabstopWidth int = 4

// NonPrint defines whether or not a rune is considered unprintable for the
// purposes of a snippet, that is, whether it will be replaced with <U+NNNN>.
//
// Newlines are unprintable, so a snippet is always a single line.
func NonPrint(r rune) bool {
	return r != '\t' && !unicode.IsPrint(r)
}

// Snippet returns text followed by a second line with a caret under the
// character that begins at byte offset. An offset at or past the end points
// just after the last character.
func Snippet(text string, offset int) string {
	offset = min(max(offset, 0), len(text))

	var out strings.Builder
	w := Width{Out: &out}
	w.WriteString(text[:offset])
	column := w.Column
	w.WriteString(text[offset:])

	out.WriteByte('\n')
	out.WriteString(strings.Repeat(" ", column))
	out.WriteByte('^')
	return out.String()
}

// Width is used for calculating the approximate width of a string in terminal
// columns.
type Width struct {
	// The column at which the text is being rendered. This is necessary for
	// tabstop calculations.
	Column int

	// The width of a tabstop in columns. If set to zero, a default value will
	// be selected.
	Tabstop int

	// If non-nil, text will be output here, converting tabs to spaces and
	// escaping unprintables.
	Out *strings.Builder
}

// WriteString writes the given text, advancing w.Column and writing to w.Out.
func (w *Width) WriteString(text string) {
	tabstop := w.Tabstop
	if tabstop <= 0 {
		tabstop = TabstopWidth
	}

	// chunk is the run of printable text not yet measured.
	start := 0
	flush := func(end int) {
		chunk := text[start:end]
		w.Column += uniseg.StringWidth(chunk)
		w.write(chunk)
	}

	for i := 0; i < len(text); {
		r, n := utf8.DecodeRuneInString(text[i:])
		if r != '\t' && !(r == utf8.RuneError && n == 1) && !NonPrint(r) {
			i += n
			continue
		}

		// Tab stops depend on the width of everything before the tab.
		flush(i)
		var escape string
		switch {
		case r == '\t':
			escape = strings.Repeat(" ", tabstop-w.Column%tabstop)
		case r == utf8.RuneError && n == 1:
			escape = fmt.Sprintf("<%02X>", text[i])
		default:
			escape = fmt.Sprintf("<U+%04X>", r)
		}

		w.Column += len(escape)
		w.write(escape)
		i += n
		start = i
	}
	flush(len(text))
}

func (w *Width) write(s string) {
	if w.Out != nil {
		w.Out.WriteString(s)
	}
}
