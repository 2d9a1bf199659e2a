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

// Package lexer scans numeric text into a [numbuf.Buffer].
//
// The scan is a single pass with no backtracking, except for a rewind over
// an exponent marker that turns out not to be followed by digits. It never
// fails loudly: it reports whether the text scanned and where it stopped,
// and leaves the choice of error to its caller.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/numparse/culture"
	"github.com/bufbuild/numparse/internal/numbuf"
	"github.com/bufbuild/numparse/styles"
)

// Lexer is the configuration for a scan.
type Lexer struct {
	Styles styles.Styles
	Info   *culture.Info // Nil means culture.Invariant.

	// If true, trailing zeros stay significant and scale is kept for zero
	// values; this is what a fixed-point decimal target needs.
	Exact bool

	// If not nil, digits are appended here instead of to the buffer, and
	// there is no limit on how many are kept. In hex mode, leading zeros are
	// kept too.
	Sink *strings.Builder
}

// Scan scans text into buf.
//
// Returns the byte offset at which scanning stopped and whether text began
// with a well-formed number. Text after end is not examined; callers decide
// whether leftovers are acceptable.
func (l *Lexer) Scan(text string, buf *numbuf.Buffer) (end int, ok bool) {
	lex := &lexer{
		Lexer: l,
		info:  culture.OrInvariant(l.Info),
		text:  text,
		buf:   buf,
	}
	*buf = numbuf.Buffer{}
	ok = lex.scan()
	return lex.cursor, ok
}

// lexer is the actual lexer book-keeping used in this package.
type lexer struct {
	*Lexer
	info *culture.Info

	text   string
	cursor int
	buf    *numbuf.Buffer
	state  state
}

// rest returns the remaining unscanned text.
func (l *lexer) rest() string {
	return l.text[l.cursor:]
}

// done returns whether or not we're done scanning runes.
func (l *lexer) done() bool {
	return l.rest() == ""
}

// peek peeks the next character.
//
// Returns -1 if l.done().
func (l *lexer) peek() rune {
	if l.done() {
		return -1
	}
	r, _ := utf8.DecodeRuneInString(l.rest())
	return r
}

// pop consumes the next character.
//
// Returns -1 if l.done().
func (l *lexer) pop() rune {
	r := l.peek()
	if r != -1 {
		_, n := utf8.DecodeRuneInString(l.rest())
		l.cursor += n
	}
	return r
}

// match consumes token if the remaining text starts with it.
//
// An empty token never matches. A no-break space in token matches an
// ordinary space in the text, since cultures that group digits with U+00A0
// are routinely typed with U+0020.
func (l *lexer) match(token string) bool {
	if token == "" {
		return false
	}

	rest := l.rest()
	n := 0
	for _, want := range token {
		got, size := utf8.DecodeRuneInString(rest[n:])
		if size == 0 {
			return false
		}
		if got != want && (want != '\u00a0' || got != ' ') {
			return false
		}
		n += size
	}
	l.cursor += n
	return true
}

// mustProgress returns a progress checker for this lexer.
func (l *lexer) mustProgress() mustProgress {
	return mustProgress{l, -1}
}

// isWhite reports whether r is whitespace for the purposes of the
// AllowLeadingWhite and AllowTrailingWhite styles.
func isWhite(r rune) bool {
	return r == ' ' || (r >= '\t' && r <= '\r')
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isHexLetter(r rune) bool {
	return (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
