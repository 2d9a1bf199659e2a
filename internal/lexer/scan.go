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

package lexer

import (
	"math"

	"github.com/bufbuild/numparse/internal/numbuf"
	"github.com/bufbuild/numparse/styles"
)

// state records which parts of a number the lexer has seen so far.
type state uint8

const (
	sawSign     state = 1 << iota // A sign, or an opening parenthesis.
	sawParens                     // An opening parenthesis not yet closed.
	sawDigits                     // Any digit, including zero.
	sawNonZero                    // A digit that was stored.
	sawDecimal                    // The decimal separator.
	sawCurrency                   // The currency symbol, before the digits.
)

// Exponents larger than this are clamped to maxExponent, which is large
// enough to overflow every target type.
const (
	exponentClamp = 1000
	maxExponent   = 9999
)

func (l *lexer) has(s styles.Styles) bool {
	return l.Styles.Has(s)
}

func (l *lexer) scan() bool {
	// Currency parses look for the currency separators first and fall back
	// to the number separators, but only until a currency symbol shows up.
	decSep, groupSep := l.info.NumberDecimalSeparator, l.info.NumberGroupSeparator
	var currency, ansiCurrency, altDecSep, altGroupSep string
	if l.has(styles.AllowCurrencySymbol) {
		currency, ansiCurrency = l.info.CurrencySymbol, l.info.ANSICurrencySymbol
		altDecSep, altGroupSep = decSep, groupSep
		decSep, groupSep = l.info.CurrencyDecimalSeparator, l.info.CurrencyGroupSeparator
	}

	// matchCurrency consumes the currency symbol. It matches at most once per
	// scan.
	matchCurrency := func() bool {
		if l.match(currency) || l.match(ansiCurrency) {
			currency, ansiCurrency = "", ""
			return true
		}
		return false
	}
	// matchSign consumes a sign if the style flag allows one and no sign has
	// been seen yet.
	matchSign := func(flag styles.Styles) bool {
		if !l.has(flag) || l.state&sawSign != 0 {
			return false
		}
		switch {
		case l.match(l.info.PositiveSign):
		case l.match(l.info.NegativeSign):
			l.buf.Negative = true
		default:
			return false
		}
		l.state |= sawSign
		return true
	}

	mp := l.mustProgress()
prefix:
	for {
		mp.check()
		r := l.peek()
		switch {
		case isWhite(r) && l.has(styles.AllowLeadingWhite) &&
			// "-$ 12" is fine, but "- 12" is not, unless the culture writes
			// negative numbers that way.
			(l.state&sawSign == 0 || l.state&sawCurrency != 0 || l.info.NumberNegativePattern == 2):
			l.pop()
		case matchSign(styles.AllowLeadingSign):
		case r == '(' && l.has(styles.AllowParentheses) && l.state&sawSign == 0:
			l.pop()
			l.state |= sawSign | sawParens
			l.buf.Negative = true
		case matchCurrency():
			l.state |= sawCurrency
		default:
			break prefix
		}
	}

	if !l.digits(decSep, groupSep, altDecSep, altGroupSep) {
		return false
	}
	l.exponent()

	mp = l.mustProgress()
suffix:
	for {
		mp.check()
		r := l.peek()
		switch {
		case isWhite(r) && l.has(styles.AllowTrailingWhite):
			l.pop()
		case matchSign(styles.AllowTrailingSign):
		case r == ')' && l.state&sawParens != 0:
			l.pop()
			l.state &^= sawParens
		case matchCurrency():
		default:
			break suffix
		}
	}

	if l.state&sawParens != 0 {
		return false
	}
	if l.state&sawNonZero == 0 {
		if !l.Exact {
			l.buf.Scale = 0
		}
		if l.state&sawDecimal == 0 {
			l.buf.Negative = false
		}
	}
	return true
}

// digits scans the mantissa. Returns false if no digit was found.
func (l *lexer) digits(decSep, groupSep, altDecSep, altGroupSep string) bool {
	hex := l.has(styles.AllowHexSpecifier)
	keepZeros := hex && l.Sink != nil
	maxDigits := numbuf.MaxDigits
	if l.Sink != nil {
		maxDigits = math.MaxInt
	}

	// count is the number of digits stored so far; end is the count as of the
	// last significant one.
	var count, end int
	mp := l.mustProgress()
	for {
		mp.check()
		r := l.peek()
		switch {
		case isDigit(r) || (hex && isHexLetter(r)):
			l.pop()
			l.state |= sawDigits

			if r == '0' && l.state&sawNonZero == 0 && !keepZeros {
				// A leading zero. After the decimal point it still moves
				// the first significant digit further out.
				if l.state&sawDecimal != 0 {
					l.buf.Scale--
				}
				continue
			}

			if count < maxDigits {
				if l.Sink != nil {
					l.Sink.WriteByte(byte(r))
				} else {
					l.buf.Digits[count] = byte(r)
				}
				count++
				if r != '0' || l.Exact {
					end = count
				}
			} else if r != '0' {
				l.buf.NonZeroTail = true
			}
			if l.state&sawDecimal == 0 {
				l.buf.Scale++
			}
			l.state |= sawNonZero

		case l.has(styles.AllowDecimalPoint) && l.state&sawDecimal == 0 &&
			(l.match(decSep) || (altDecSep != "" && l.state&sawCurrency == 0 && l.match(altDecSep))):
			l.state |= sawDecimal

		case l.has(styles.AllowThousands) && l.state&sawDigits != 0 && l.state&sawDecimal == 0 &&
			(l.match(groupSep) || (altGroupSep != "" && l.state&sawCurrency == 0 && l.match(altGroupSep))):
			// Group separators carry no value.

		default:
			l.buf.Precision = end
			if l.Sink == nil {
				l.buf.Digits[end] = 0
			}
			return l.state&sawDigits != 0
		}
	}
}

// exponent scans an optional exponent and folds it into the scale. If the
// exponent marker is not followed by digits, nothing is consumed.
func (l *lexer) exponent() {
	if !l.has(styles.AllowExponent) {
		return
	}
	if r := l.peek(); r != 'e' && r != 'E' {
		return
	}

	start := l.cursor
	l.pop()

	negative := false
	if !l.match(l.info.PositiveSign) && l.match(l.info.NegativeSign) {
		negative = true
	}
	if !isDigit(l.peek()) {
		l.cursor = start
		return
	}

	exp := 0
	for isDigit(l.peek()) {
		exp = exp*10 + int(l.pop()-'0')
		if exp > exponentClamp {
			exp = maxExponent
			for isDigit(l.peek()) {
				l.pop()
			}
		}
	}
	if negative {
		exp = -exp
	}
	l.buf.Scale += exp
}
